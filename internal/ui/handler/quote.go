package handler

import (
	"net/http"

	"cryptoquote/internal/ui/page"
	"cryptoquote/internal/widget"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	renderer   *Renderer
	sessions   *Sessions
	currencies []Currency
}

func NewQuoteHandler(renderer *Renderer, sessions *Sessions, currencies []Currency) *QuoteHandler {
	return &QuoteHandler{
		renderer:   renderer,
		sessions:   sessions,
		currencies: currencies,
	}
}

type IndexPageData struct {
	Title      string
	PageTitle  string
	Currencies []Currency
	Selection  widget.Selection
	View       page.View
}

func (h *QuoteHandler) Index(c *gin.Context) {
	sess := sessionFrom(c)
	h.sessions.LoadPage(c.Request.Context(), sess)

	data := IndexPageData{
		Title:      "Cryptocurrency Quote",
		PageTitle:  "Get the current price of a cryptocurrency",
		Currencies: h.currencies,
		Selection:  sess.Widget.Selection(),
		View:       sess.Page.View(),
	}
	h.renderer.HTML(c, http.StatusOK, "index", data)
}

// Selection handles change events of the two selectors.
func (h *QuoteHandler) Selection(c *gin.Context) {
	sess := sessionFrom(c)
	if err := c.Request.ParseForm(); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	for _, field := range []string{widget.FieldCurrency, widget.FieldCryptocurrency} {
		if values, ok := c.Request.PostForm[field]; ok && len(values) > 0 {
			_ = sess.Widget.Select(field, values[0])
		}
	}
	c.Status(http.StatusNoContent)
}

// Submit validates the stored selection and starts the quote request. The
// response is the state partial: either the notice or the loader.
func (h *QuoteHandler) Submit(c *gin.Context) {
	sess := sessionFrom(c)
	_ = sess.Widget.Submit()
	h.renderer.Partial(c, http.StatusOK, "state", sess.Page.View())
}

func (h *QuoteHandler) State(c *gin.Context) {
	sess := sessionFrom(c)
	h.renderer.Partial(c, http.StatusOK, "state", sess.Page.View())
}

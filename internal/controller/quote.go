package controller

import (
	"errors"
	"net/http"
	"strings"

	"cryptoquote/pkg/integrations/cryptocompare"
	"cryptoquote/pkg/types/quotes"

	"github.com/gin-gonic/gin"
)

type QuoteResponse struct {
	Cryptocurrency string          `json:"cryptocurrency"`
	Currency       string          `json:"currency"`
	Snapshot       quotes.Snapshot `json:"snapshot"`
	Cards          []quotes.Card   `json:"cards"`
}

// GetQuote godoc
// @Summary Get a quote
// @Description Display-formatted quote of a cryptocurrency in a fiat currency
// @Tags quotes
// @Produce json
// @Param fsym query string true "Cryptocurrency symbol (e.g., BTC)"
// @Param tsym query string true "Currency code (e.g., USD)"
// @Success 200 {object} QuoteResponse
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Failure 502 {object} APIError
// @Router /api/quote [get]
func (c *Controller) GetQuote(ctx *gin.Context) {
	fsym := strings.ToUpper(strings.TrimSpace(ctx.Query("fsym")))
	tsym := strings.ToUpper(strings.TrimSpace(ctx.Query("tsym")))
	if fsym == "" || tsym == "" {
		badRequest(ctx, "fsym and tsym are required")
		return
	}

	snapshot, err := c.fetcher.FetchQuote(ctx.Request.Context(), fsym, tsym)
	switch {
	case errors.Is(err, cryptocompare.ErrQuoteNotFound):
		notFound(ctx, "quote not found")
		return
	case err != nil:
		c.logger.Error("failed to fetch quote", "fsym", fsym, "tsym", tsym, "error", err)
		badGateway(ctx, "failed to fetch quote", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, QuoteResponse{
		Cryptocurrency: fsym,
		Currency:       tsym,
		Snapshot:       snapshot,
		Cards:          snapshot.Cards(),
	})
}

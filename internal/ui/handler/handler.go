package handler

import (
	"errors"
	"io/fs"

	"cryptoquote/internal/ui/templates"

	"github.com/gin-gonic/gin"
)

var (
	ErrNilEngine   = errors.New("engine is required")
	ErrNilSessions = errors.New("sessions are required")
)

// Currency is one entry of the fiat currency selector.
type Currency struct {
	Code string
	Name string
}

type WebHandler struct {
	engine     *gin.Engine
	sessions   *Sessions
	currencies []Currency
	files      fs.FS
	renderer   *Renderer
}

type Option func(*WebHandler)

func WithEngine(engine *gin.Engine) Option {
	return func(h *WebHandler) {
		h.engine = engine
	}
}

func WithSessions(s *Sessions) Option {
	return func(h *WebHandler) {
		h.sessions = s
	}
}

func WithCurrencies(c []Currency) Option {
	return func(h *WebHandler) {
		h.currencies = c
	}
}

func WithTemplates(files fs.FS) Option {
	return func(h *WebHandler) {
		h.files = files
	}
}

func New(opts ...Option) (*WebHandler, error) {
	h := &WebHandler{
		files: templates.FS(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.engine == nil {
		return nil, ErrNilEngine
	}
	if h.sessions == nil {
		return nil, ErrNilSessions
	}

	renderer, err := NewRenderer(h.files)
	if err != nil {
		return nil, err
	}
	h.renderer = renderer
	return h, nil
}

func (h *WebHandler) Setup() error {
	quote := NewQuoteHandler(h.renderer, h.sessions, h.currencies)

	h.engine.GET("/api/health", h.Health)

	ui := h.engine.Group("/", h.sessions.Middleware())
	ui.GET("/", quote.Index)
	ui.POST("/partials/selection", quote.Selection)
	ui.POST("/partials/quote", quote.Submit)
	ui.GET("/partials/state", quote.State)

	return nil
}

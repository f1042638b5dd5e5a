package handler

import (
	"errors"
	"log/slog"

	"cryptoquote/internal/controller"
	"cryptoquote/pkg/types/quotes"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	ErrNilEngine  = errors.New("engine is required")
	ErrNilFetcher = errors.New("fetcher is required")
)

type Handler struct {
	engine            *gin.Engine
	logger            *slog.Logger
	fetcher           quotes.Fetcher
	catalogLimit      int
	referenceCurrency string
	swagger           bool
}

func (h *Handler) IsValid() error {
	if h.engine == nil {
		return ErrNilEngine
	}
	if h.fetcher == nil {
		return ErrNilFetcher
	}
	return nil
}

type Option func(*Handler)

func WithEngine(engine *gin.Engine) Option {
	return func(h *Handler) {
		h.engine = engine
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

func WithFetcher(f quotes.Fetcher) Option {
	return func(h *Handler) {
		h.fetcher = f
	}
}

func WithCatalog(limit int, referenceCurrency string) Option {
	return func(h *Handler) {
		h.catalogLimit = limit
		h.referenceCurrency = referenceCurrency
	}
}

// WithSwagger serves the generated API docs under /swagger.
func WithSwagger() Option {
	return func(h *Handler) {
		h.swagger = true
	}
}

func New(opts ...Option) (*Handler, error) {
	h := &Handler{
		logger:            slog.Default(),
		catalogLimit:      10,
		referenceCurrency: "USD",
	}
	for _, opt := range opts {
		opt(h)
	}
	if err := h.IsValid(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handler) Setup() error {
	ctrl, err := controller.New(
		controller.WithLogger(h.logger),
		controller.WithFetcher(h.fetcher),
		controller.WithCatalogLimit(h.catalogLimit),
		controller.WithReferenceCurrency(h.referenceCurrency),
	)
	if err != nil {
		return err
	}

	api := h.engine.Group("/api")
	api.GET("/catalog", ctrl.ListCatalog)
	api.GET("/quote", ctrl.GetQuote)

	if h.swagger {
		h.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return nil
}

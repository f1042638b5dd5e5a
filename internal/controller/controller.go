package controller

import (
	"log/slog"

	"cryptoquote/pkg/types/quotes"
)

const (
	defaultCatalogLimit      = 10
	defaultReferenceCurrency = "USD"
)

type Controller struct {
	logger            *slog.Logger
	fetcher           quotes.Fetcher
	catalogLimit      int
	referenceCurrency string
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func WithFetcher(f quotes.Fetcher) Option {
	return func(c *Controller) {
		c.fetcher = f
	}
}

func WithCatalogLimit(limit int) Option {
	return func(c *Controller) {
		c.catalogLimit = limit
	}
}

func WithReferenceCurrency(currency string) Option {
	return func(c *Controller) {
		c.referenceCurrency = currency
	}
}

func (c *Controller) IsValid() error {
	if c.fetcher == nil {
		return ErrNilFetcher
	}
	if c.catalogLimit <= 0 {
		return ErrInvalidCatalogLimit
	}
	return nil
}

func New(opts ...Option) (*Controller, error) {
	c := &Controller{
		logger:            slog.Default(),
		catalogLimit:      defaultCatalogLimit,
		referenceCurrency: defaultReferenceCurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.IsValid(); err != nil {
		return nil, err
	}
	return c, nil
}

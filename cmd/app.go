package main

import (
	"context"
	"log/slog"

	"cryptoquote/internal/config"
	uihandler "cryptoquote/internal/ui/handler"
	"cryptoquote/internal/widget"
	"cryptoquote/pkg/integrations/cryptocompare"
	"cryptoquote/pkg/types/quotes"
)

func newClient(c *config.Config) *cryptocompare.Client {
	return cryptocompare.New(
		cryptocompare.WithBaseURL(c.CryptoCompare.BaseURL),
		cryptocompare.WithAPIKey(c.CryptoCompare.APIKey),
		cryptocompare.WithTimeout(c.CryptoCompare.Timeout),
	)
}

func newWidget(ctx context.Context, c *config.Config, logger *slog.Logger, fetcher quotes.Fetcher, r quotes.Renderer) (*widget.Widget, error) {
	return widget.New(
		widget.WithContext(ctx),
		widget.WithLogger(logger),
		widget.WithFetcher(fetcher),
		widget.WithRenderer(r),
		widget.WithCatalogLimit(c.Catalog.Limit),
		widget.WithReferenceCurrency(c.Catalog.ReferenceCurrency),
		widget.WithNoticeDuration(c.Widget.NoticeDuration),
	)
}

func currencies(c *config.Config) []uihandler.Currency {
	out := make([]uihandler.Currency, 0, len(c.Widget.Currencies))
	for _, cur := range c.Widget.Currencies {
		out = append(out, uihandler.Currency{Code: cur.Code, Name: cur.Name})
	}
	return out
}

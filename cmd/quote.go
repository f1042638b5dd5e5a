package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cryptoquote/internal/config"
	"cryptoquote/internal/ui/terminal"
	"cryptoquote/internal/widget"

	"github.com/spf13/cobra"
)

var (
	errNoQuote   = errors.New("no quote available")
	errNoCatalog = errors.New("no cryptocurrencies available")
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a quote for a cryptocurrency in a fiat currency",
	Long: `Print the five quote cards for one pair.

Examples:
  cryptoquote quote --currency USD --crypto BTC
  cryptoquote quote --currency eur --crypto eth`,
	RunE: func(cmd *cobra.Command, args []string) error {
		currency, _ := cmd.Flags().GetString("currency")
		crypto, _ := cmd.Flags().GetString("crypto")
		return runQuote(cmd.Context(), cfg, appLogger, cmd.OutOrStdout(), currency, crypto)
	},
}

func init() {
	quoteCmd.Flags().String("currency", "", "fiat currency code (e.g., USD)")
	quoteCmd.Flags().String("crypto", "", "cryptocurrency symbol (e.g., BTC)")
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the top cryptocurrencies by market capitalization",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalog(cmd.Context(), cfg, appLogger, cmd.OutOrStdout())
	},
}

// runQuote drives one widget submission against a terminal renderer. A
// missing field prints the notice and fails; a failed request leaves only the
// loader on screen.
func runQuote(ctx context.Context, c *config.Config, logger *slog.Logger, out io.Writer, currency, crypto string) error {
	r := terminal.New(out)
	w, err := newWidget(ctx, c, logger, newClient(c), r)
	if err != nil {
		return err
	}
	defer w.Close()

	currency = strings.ToUpper(strings.TrimSpace(currency))
	crypto = strings.ToUpper(strings.TrimSpace(crypto))

	if err := w.Select(widget.FieldCurrency, currency); err != nil {
		return err
	}
	if err := w.Select(widget.FieldCryptocurrency, crypto); err != nil {
		return err
	}

	if err := w.Submit(); err != nil {
		return err
	}
	w.Wait()

	if !r.RenderedQuote() {
		return fmt.Errorf("%w for %s/%s", errNoQuote, crypto, currency)
	}
	return nil
}

func runCatalog(ctx context.Context, c *config.Config, logger *slog.Logger, out io.Writer) error {
	r := terminal.New(out)
	w, err := newWidget(ctx, c, logger, newClient(c), r)
	if err != nil {
		return err
	}
	defer w.Close()

	w.LoadCatalog(ctx)
	if !r.RenderedCatalog() {
		return errNoCatalog
	}
	return nil
}

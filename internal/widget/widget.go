package widget

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cryptoquote/pkg/types/quotes"

	"github.com/pkg/errors"
)

const (
	FieldCurrency       = "currency"
	FieldCryptocurrency = "cryptocurrency"

	MsgBothFieldsRequired = "Both fields are required"

	DefaultCatalogLimit      = 10
	DefaultReferenceCurrency = "USD"
	DefaultNoticeDuration    = 2 * time.Second
)

var (
	ErrInvalidWidgetConfig = errors.New("invalid widget config")
	ErrUnknownField        = errors.New("unknown selection field")
	ErrIncompleteSelection = errors.New("both fields are required")
)

// Selection is the user's current choice of fiat currency and cryptocurrency.
type Selection struct {
	Currency       string
	Cryptocurrency string
}

func (s Selection) Complete() bool {
	return s.Currency != "" && s.Cryptocurrency != ""
}

// Widget wires the selection record, the market data fetcher and a renderer.
type Widget struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger

	fetcher  quotes.Fetcher
	renderer quotes.Renderer

	catalogLimit      int
	referenceCurrency string
	noticeDuration    time.Duration

	mu          sync.Mutex
	selection   Selection
	noticeShown bool

	inflight sync.WaitGroup
}

type Option func(*Widget)

func WithContext(ctx context.Context) Option {
	return func(w *Widget) {
		w.ctx = ctx
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Widget) {
		w.logger = l
	}
}

func WithFetcher(f quotes.Fetcher) Option {
	return func(w *Widget) {
		w.fetcher = f
	}
}

func WithRenderer(r quotes.Renderer) Option {
	return func(w *Widget) {
		w.renderer = r
	}
}

func WithCatalogLimit(n int) Option {
	return func(w *Widget) {
		w.catalogLimit = n
	}
}

func WithReferenceCurrency(c string) Option {
	return func(w *Widget) {
		w.referenceCurrency = c
	}
}

func WithNoticeDuration(d time.Duration) Option {
	return func(w *Widget) {
		w.noticeDuration = d
	}
}

func (w *Widget) IsValid() error {
	switch {
	case w.ctx == nil:
		return errors.Wrap(ErrInvalidWidgetConfig, "ctx cannot be nil")
	case w.logger == nil:
		return errors.Wrap(ErrInvalidWidgetConfig, "logger cannot be nil")
	case w.fetcher == nil:
		return errors.Wrap(ErrInvalidWidgetConfig, "fetcher cannot be nil")
	case w.renderer == nil:
		return errors.Wrap(ErrInvalidWidgetConfig, "renderer cannot be nil")
	case w.catalogLimit <= 0:
		return errors.Wrap(ErrInvalidWidgetConfig, "catalog limit must be positive")
	case w.referenceCurrency == "":
		return errors.Wrap(ErrInvalidWidgetConfig, "reference currency cannot be empty")
	case w.noticeDuration <= 0:
		return errors.Wrap(ErrInvalidWidgetConfig, "notice duration must be positive")
	default:
		return nil
	}
}

func New(opts ...Option) (*Widget, error) {
	w := &Widget{
		catalogLimit:      DefaultCatalogLimit,
		referenceCurrency: DefaultReferenceCurrency,
		noticeDuration:    DefaultNoticeDuration,
	}

	for _, opt := range opts {
		opt(w)
	}

	if err := w.IsValid(); err != nil {
		return nil, err
	}

	w.ctx, w.cancel = context.WithCancel(w.ctx)
	return w, nil
}

// LoadCatalog fills the cryptocurrency selector. Failures are logged only.
func (w *Widget) LoadCatalog(ctx context.Context) {
	entries, err := w.fetcher.FetchCatalog(ctx, w.catalogLimit, w.referenceCurrency)
	if err != nil {
		w.logger.Error("failed to fetch cryptocurrencies", "error", err)
		return
	}
	if len(entries) == 0 {
		w.logger.Error("empty cryptocurrency list", "reference_currency", w.referenceCurrency)
		return
	}
	w.renderer.RenderCatalog(entries)
}

// Select records the value of the named selection control.
func (w *Widget) Select(name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch name {
	case FieldCurrency:
		w.selection.Currency = value
	case FieldCryptocurrency:
		w.selection.Cryptocurrency = value
	default:
		return errors.Wrap(ErrUnknownField, name)
	}
	return nil
}

func (w *Widget) Selection() Selection {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selection
}

// Submit validates the selection and starts a quote request. The loader is
// shown before Submit returns; the request settles in the background.
func (w *Widget) Submit() error {
	sel := w.Selection()
	if !sel.Complete() {
		w.showNotice(MsgBothFieldsRequired)
		return ErrIncompleteSelection
	}

	w.renderer.ShowLoader()

	w.inflight.Add(1)
	go w.fetchQuote(sel)
	return nil
}

func (w *Widget) fetchQuote(sel Selection) {
	defer w.inflight.Done()

	snapshot, err := w.fetcher.FetchQuote(w.ctx, sel.Cryptocurrency, sel.Currency)
	if err != nil {
		w.logger.Error("failed to fetch quote",
			"cryptocurrency", sel.Cryptocurrency,
			"currency", sel.Currency,
			"error", err,
		)
		return
	}
	w.renderer.RenderQuote(snapshot)
}

func (w *Widget) showNotice(message string) {
	w.mu.Lock()
	if w.noticeShown {
		w.mu.Unlock()
		return
	}
	w.noticeShown = true
	w.mu.Unlock()

	w.renderer.ShowNotice(message)

	time.AfterFunc(w.noticeDuration, func() {
		w.renderer.HideNotice()
		w.mu.Lock()
		w.noticeShown = false
		w.mu.Unlock()
	})
}

// Wait blocks until every started quote request has settled.
func (w *Widget) Wait() {
	w.inflight.Wait()
}

// Close aborts in-flight quote requests.
func (w *Widget) Close() {
	w.cancel()
}

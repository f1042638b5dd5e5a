package widget

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"cryptoquote/pkg/integrations/cryptocompare"
	"cryptoquote/pkg/types/quotes"
	"cryptoquote/pkg/types/quotes/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	widget   *Widget
	fetcher  *mocks.MockFetcher
	renderer *mocks.MockRenderer
	logs     *bytes.Buffer
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		fetcher:  mocks.NewMockFetcher(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		logs:     &bytes.Buffer{},
	}

	base := []Option{
		WithContext(t.Context()),
		WithLogger(slog.New(slog.NewTextHandler(f.logs, nil))),
		WithFetcher(f.fetcher),
		WithRenderer(f.renderer),
		WithNoticeDuration(50 * time.Millisecond),
	}
	w, err := New(append(base, opts...)...)
	require.NoError(t, err)
	f.widget = w
	return f
}

func TestNew_InvalidConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)
	ctx := context.Background()

	tests := []struct {
		name string
		opts []Option
	}{
		{"no context", []Option{WithLogger(discardLogger), WithFetcher(fetcher), WithRenderer(renderer)}},
		{"no logger", []Option{WithContext(ctx), WithFetcher(fetcher), WithRenderer(renderer)}},
		{"no fetcher", []Option{WithContext(ctx), WithLogger(discardLogger), WithRenderer(renderer)}},
		{"no renderer", []Option{WithContext(ctx), WithLogger(discardLogger), WithFetcher(fetcher)}},
		{"zero limit", []Option{WithContext(ctx), WithLogger(discardLogger), WithFetcher(fetcher), WithRenderer(renderer), WithCatalogLimit(0)}},
		{"empty reference currency", []Option{WithContext(ctx), WithLogger(discardLogger), WithFetcher(fetcher), WithRenderer(renderer), WithReferenceCurrency("")}},
		{"zero notice duration", []Option{WithContext(ctx), WithLogger(discardLogger), WithFetcher(fetcher), WithRenderer(renderer), WithNoticeDuration(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(tt.opts...)
			assert.ErrorIs(t, err, ErrInvalidWidgetConfig)
			assert.Nil(t, w)
		})
	}
}

func TestWidget_LoadCatalog(t *testing.T) {
	f := newFixture(t)

	entries := []quotes.CatalogEntry{
		{Symbol: "BTC", DisplayName: "Bitcoin"},
		{Symbol: "ETH", DisplayName: "Ethereum"},
		{Symbol: "XRP", DisplayName: "XRP"},
	}
	f.fetcher.EXPECT().FetchCatalog(gomock.Any(), DefaultCatalogLimit, DefaultReferenceCurrency).Return(entries, nil)
	f.renderer.EXPECT().RenderCatalog(entries).Times(1)

	f.widget.LoadCatalog(t.Context())
}

func TestWidget_LoadCatalog_CustomLimit(t *testing.T) {
	f := newFixture(t, WithCatalogLimit(5), WithReferenceCurrency("EUR"))

	f.fetcher.EXPECT().FetchCatalog(gomock.Any(), 5, "EUR").Return(quotes.SampleCatalog, nil)
	f.renderer.EXPECT().RenderCatalog(quotes.SampleCatalog)

	f.widget.LoadCatalog(t.Context())
}

func TestWidget_LoadCatalog_Empty(t *testing.T) {
	f := newFixture(t)

	f.fetcher.EXPECT().FetchCatalog(gomock.Any(), gomock.Any(), gomock.Any()).Return([]quotes.CatalogEntry{}, nil)
	f.renderer.EXPECT().RenderCatalog(gomock.Any()).Times(0)

	assert.NotPanics(t, func() { f.widget.LoadCatalog(t.Context()) })
	assert.Contains(t, f.logs.String(), "empty cryptocurrency list")
}

func TestWidget_LoadCatalog_Error(t *testing.T) {
	f := newFixture(t)

	f.fetcher.EXPECT().
		FetchCatalog(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &cryptocompare.StatusError{Code: 500, Status: "500 Internal Server Error"})
	f.renderer.EXPECT().RenderCatalog(gomock.Any()).Times(0)

	f.widget.LoadCatalog(t.Context())
	assert.Contains(t, f.logs.String(), "500 Internal Server Error")
}

func TestWidget_Select(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.widget.Select(FieldCurrency, "USD"))
	require.NoError(t, f.widget.Select(FieldCryptocurrency, "BTC"))
	assert.Equal(t, Selection{Currency: "USD", Cryptocurrency: "BTC"}, f.widget.Selection())

	require.NoError(t, f.widget.Select(FieldCurrency, ""))
	assert.Equal(t, "", f.widget.Selection().Currency)

	err := f.widget.Select("amount", "1")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, "BTC", f.widget.Selection().Cryptocurrency)
}

func TestWidget_Submit_Incomplete(t *testing.T) {
	tests := []struct {
		name      string
		selection map[string]string
	}{
		{"both empty", nil},
		{"no currency", map[string]string{FieldCryptocurrency: "BTC"}},
		{"no cryptocurrency", map[string]string{FieldCurrency: "USD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			for k, v := range tt.selection {
				require.NoError(t, f.widget.Select(k, v))
			}

			hidden := make(chan struct{})
			f.fetcher.EXPECT().FetchQuote(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			f.renderer.EXPECT().ShowLoader().Times(0)
			f.renderer.EXPECT().ShowNotice(MsgBothFieldsRequired).Times(1)
			f.renderer.EXPECT().HideNotice().Do(func() { close(hidden) }).Times(1)

			for range 3 {
				assert.ErrorIs(t, f.widget.Submit(), ErrIncompleteSelection)
			}

			select {
			case <-hidden:
			case <-time.After(time.Second):
				t.Fatal("notice was not removed")
			}
		})
	}
}

func TestWidget_Notice_ShowsAgainAfterRemoval(t *testing.T) {
	f := newFixture(t)

	hidden := make(chan struct{}, 2)
	f.renderer.EXPECT().ShowNotice(MsgBothFieldsRequired).Times(2)
	f.renderer.EXPECT().HideNotice().Do(func() { hidden <- struct{}{} }).Times(2)

	assert.Error(t, f.widget.Submit())
	<-hidden

	require.Eventually(t, func() bool {
		f.widget.mu.Lock()
		defer f.widget.mu.Unlock()
		return !f.widget.noticeShown
	}, time.Second, 5*time.Millisecond)

	assert.Error(t, f.widget.Submit())
	<-hidden
}

func TestWidget_Submit_RendersQuote(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.widget.Select(FieldCurrency, "USD"))
	require.NoError(t, f.widget.Select(FieldCryptocurrency, "BTC"))

	gomock.InOrder(
		f.renderer.EXPECT().ShowLoader(),
		f.fetcher.EXPECT().FetchQuote(gomock.Any(), "BTC", "USD").Return(quotes.SampleSnapshot, nil),
		f.renderer.EXPECT().RenderQuote(quotes.SampleSnapshot),
	)

	require.NoError(t, f.widget.Submit())
	f.widget.Wait()

	assert.Equal(t, Selection{Currency: "USD", Cryptocurrency: "BTC"}, f.widget.Selection())
}

func TestWidget_Submit_HTTPErrorLeavesLoader(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.widget.Select(FieldCurrency, "USD"))
	require.NoError(t, f.widget.Select(FieldCryptocurrency, "BTC"))

	f.renderer.EXPECT().ShowLoader().Times(1)
	f.fetcher.EXPECT().
		FetchQuote(gomock.Any(), "BTC", "USD").
		Return(quotes.Snapshot{}, &cryptocompare.StatusError{Code: 429, Status: "429 Too Many Requests"})
	f.renderer.EXPECT().RenderQuote(gomock.Any()).Times(0)
	f.renderer.EXPECT().ShowNotice(gomock.Any()).Times(0)

	require.NoError(t, f.widget.Submit())
	f.widget.Wait()

	assert.Contains(t, f.logs.String(), "failed to fetch quote")
	assert.Contains(t, f.logs.String(), "429 Too Many Requests")
}

func TestWidget_Submit_NetworkError(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.widget.Select(FieldCurrency, "EUR"))
	require.NoError(t, f.widget.Select(FieldCryptocurrency, "ETH"))

	f.renderer.EXPECT().ShowLoader()
	f.fetcher.EXPECT().FetchQuote(gomock.Any(), "ETH", "EUR").Return(quotes.Snapshot{}, errors.New("dial tcp: network unreachable"))

	require.NoError(t, f.widget.Submit())
	f.widget.Wait()

	assert.Contains(t, f.logs.String(), "network unreachable")
}

func TestWidget_OverlappingSubmissions_LastCompletedWins(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.widget.Select(FieldCurrency, "USD"))
	require.NoError(t, f.widget.Select(FieldCryptocurrency, "BTC"))

	first := quotes.Snapshot{Price: "first"}
	second := quotes.Snapshot{Price: "second"}
	secondDone := make(chan struct{})

	var mu sync.Mutex
	var rendered []quotes.Snapshot

	f.renderer.EXPECT().ShowLoader().Times(2)
	f.renderer.EXPECT().RenderQuote(gomock.Any()).Do(func(s quotes.Snapshot) {
		mu.Lock()
		rendered = append(rendered, s)
		mu.Unlock()
		if s == second {
			close(secondDone)
		}
	}).Times(2)

	gomock.InOrder(
		f.fetcher.EXPECT().FetchQuote(gomock.Any(), "BTC", "USD").DoAndReturn(
			func(ctx context.Context, _, _ string) (quotes.Snapshot, error) {
				<-secondDone
				return first, nil
			}),
		f.fetcher.EXPECT().FetchQuote(gomock.Any(), "BTC", "USD").Return(second, nil),
	)

	require.NoError(t, f.widget.Submit())
	require.NoError(t, f.widget.Submit())
	f.widget.Wait()

	require.Len(t, rendered, 2)
	assert.Equal(t, second, rendered[0])
	assert.Equal(t, first, rendered[1])
}

func TestWidget_Close_AbortsInFlight(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.widget.Select(FieldCurrency, "USD"))
	require.NoError(t, f.widget.Select(FieldCryptocurrency, "BTC"))

	started := make(chan struct{})
	f.renderer.EXPECT().ShowLoader()
	f.renderer.EXPECT().RenderQuote(gomock.Any()).Times(0)
	f.fetcher.EXPECT().FetchQuote(gomock.Any(), "BTC", "USD").DoAndReturn(
		func(ctx context.Context, _, _ string) (quotes.Snapshot, error) {
			close(started)
			<-ctx.Done()
			return quotes.Snapshot{}, ctx.Err()
		})

	require.NoError(t, f.widget.Submit())
	<-started
	f.widget.Close()
	f.widget.Wait()

	assert.Contains(t, f.logs.String(), context.Canceled.Error())
}

package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"cryptoquote/pkg/types/quotes"
)

var _ quotes.Renderer = (*Renderer)(nil)

// Renderer prints the widget to a terminal. Each call appends to the output;
// a terminal cannot take back what it already printed.
type Renderer struct {
	mu      sync.Mutex
	out     io.Writer
	catalog bool
	quote   bool
}

func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) RenderCatalog(entries []quotes.CatalogEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Symbol))
	}
	for i, e := range entries {
		fmt.Fprintf(r.out, "%2d. %-*s  %s\n", i+1, width, e.Symbol, e.DisplayName)
	}
	r.catalog = true
}

func (r *Renderer) ShowLoader() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, "Loading...")
}

func (r *Renderer) RenderQuote(snapshot quotes.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cards := snapshot.Cards()
	width := 0
	for _, c := range cards {
		width = max(width, utf8.RuneCountInString(c.Title), utf8.RuneCountInString(c.Data))
	}

	border := "+" + strings.Repeat("-", width+2) + "+"
	for _, c := range cards {
		fmt.Fprintln(r.out, border)
		fmt.Fprintf(r.out, "| %s |\n", pad(c.Title, width))
		fmt.Fprintf(r.out, "| %s |\n", pad(c.Data, width))
	}
	fmt.Fprintln(r.out, border)
	r.quote = true
}

func (r *Renderer) ShowNotice(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "! %s\n", message)
}

func (r *Renderer) HideNotice() {}

// RenderedCatalog reports whether a catalog has been printed.
func (r *Renderer) RenderedCatalog() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.catalog
}

// RenderedQuote reports whether a quote has been printed.
func (r *Renderer) RenderedQuote() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quote
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
}

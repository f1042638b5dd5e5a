package page

import (
	"sync"

	"cryptoquote/pkg/types/quotes"
)

var _ quotes.Renderer = (*Page)(nil)

type OutputState int

const (
	StateIdle OutputState = iota
	StateLoading
	StateRendered
)

func (s OutputState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	default:
		return "idle"
	}
}

// Page is the server-side model of the widget's page: the cryptocurrency
// options, the form notice and the output area.
type Page struct {
	mu      sync.RWMutex
	options []quotes.CatalogEntry
	state   OutputState
	cards   []quotes.Card
	notice  string
}

func New() *Page {
	return &Page{}
}

// View is an immutable copy of the page, safe to hand to templates.
type View struct {
	Options []quotes.CatalogEntry
	State   OutputState
	Cards   []quotes.Card
	Notice  string
}

func (v View) Loading() bool {
	return v.State == StateLoading
}

func (v View) HasNotice() bool {
	return v.Notice != ""
}

func (p *Page) View() View {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return View{
		Options: append([]quotes.CatalogEntry(nil), p.options...),
		State:   p.state,
		Cards:   append([]quotes.Card(nil), p.cards...),
		Notice:  p.notice,
	}
}

func (p *Page) RenderCatalog(entries []quotes.CatalogEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.options = append(p.options, entries...)
}

// ResetOptions empties the cryptocurrency options ahead of a new page load.
func (p *Page) ResetOptions() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.options = nil
}

func (p *Page) ShowLoader() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cards = nil
	p.state = StateLoading
}

func (p *Page) RenderQuote(snapshot quotes.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cards = snapshot.Cards()
	p.state = StateRendered
}

func (p *Page) ShowNotice(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notice = message
}

func (p *Page) HideNotice() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notice = ""
}

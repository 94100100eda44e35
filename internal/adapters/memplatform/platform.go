package memplatform

// Package memplatform is an in-memory ports.Platform: an address bar plus a
// native history list with popstate dispatch. It backs unit tests, dev mode,
// and the server-driven shell, emulating platform semantics faithfully
// (branch truncation on push, payload-carrying entries, synchronous popstate).

import (
	"net/url"
	"sync"

	"github.com/campusware/campus-admin/internal/ports"
)

type entry struct {
	href  string
	state *ports.HistoryState // nil for entries predating the runtime
}

// Platform implements ports.Platform in memory.
type Platform struct {
	mu      sync.Mutex
	entries []entry
	cursor  int
	title   string
	scrolls int
	handler func(state *ports.HistoryState)
}

var _ ports.Platform = (*Platform)(nil)

// New creates a platform whose address bar shows initialHref. The seed entry
// carries no state payload, like a page loaded before the runtime ran.
func New(initialHref string) *Platform {
	if initialHref == "" {
		initialHref = "/"
	}
	return &Platform{entries: []entry{{href: initialHref}}}
}

// Location returns the current address-bar URL.
func (p *Platform) Location() *url.URL {
	p.mu.Lock()
	defer p.mu.Unlock()
	u, err := url.Parse(p.entries[p.cursor].href)
	if err != nil {
		return &url.URL{Path: "/"}
	}
	return u
}

// PushState appends a history entry, discarding any forward branch first.
func (p *Platform) PushState(state ports.HistoryState, href string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	st := state
	p.entries = append(p.entries[:p.cursor+1], entry{href: href, state: &st})
	p.cursor++
}

// ReplaceState overwrites the current entry in place.
func (p *Platform) ReplaceState(state ports.HistoryState, href string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	st := state
	p.entries[p.cursor] = entry{href: href, state: &st}
}

// Back moves one entry toward the oldest and dispatches popstate. No-op at
// the oldest entry, like the platform primitive.
func (p *Platform) Back() {
	p.mu.Lock()
	if p.cursor == 0 {
		p.mu.Unlock()
		return
	}
	p.cursor--
	state := p.entries[p.cursor].state
	handler := p.handler
	p.mu.Unlock()

	if handler != nil {
		handler(state)
	}
}

// Forward is the symmetric counterpart of Back.
func (p *Platform) Forward() {
	p.mu.Lock()
	if p.cursor >= len(p.entries)-1 {
		p.mu.Unlock()
		return
	}
	p.cursor++
	state := p.entries[p.cursor].state
	handler := p.handler
	p.mu.Unlock()

	if handler != nil {
		handler(state)
	}
}

// OnPopState registers the single popstate handler.
func (p *Platform) OnPopState(handler func(state *ports.HistoryState)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handler = handler
}

// SetTitle records the document title.
func (p *Platform) SetTitle(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.title = title
}

// ScrollToTop counts viewport resets; tests assert on the count.
func (p *Platform) ScrollToTop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scrolls++
}

// Title returns the current document title.
func (p *Platform) Title() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title
}

// ScrollCount returns how many times the viewport was reset.
func (p *Platform) ScrollCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scrolls
}

// Depth returns the number of native history entries.
func (p *Platform) Depth() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// SeedBareEntry appends a payload-less entry, emulating history written
// before this runtime owned it. Test helper.
func (p *Platform) SeedBareEntry(href string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = append(p.entries[:p.cursor+1], entry{href: href})
	p.cursor++
}

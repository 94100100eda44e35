package nav

// DefaultHistoryCapacity bounds the in-memory history stack. It mirrors the
// platform's own practical back/forward depth; exceeding it evicts the oldest
// entry rather than refusing the push.
const DefaultHistoryCapacity = 50

// History is a bounded, linear, cursor-addressed stack of visited entries.
// It mirrors platform back/forward semantics: pushing while the cursor is not
// at the end truncates the forward branch first.
//
// Invariants: the stack is never empty (seeded at construction) and
// 0 <= cursor < len(entries) <= capacity.
//
// Concurrency: History is not safe for concurrent use; it is owned exclusively
// by a single router engine, which serializes access.
type History struct {
	entries  []Entry
	cursor   int
	capacity int
}

// HistoryConfig groups constructor options.
type HistoryConfig struct {
	Seed     Entry
	Capacity int
}

// NewHistory creates a history stack seeded with the initial entry.
// A non-positive capacity falls back to DefaultHistoryCapacity.
func NewHistory(cfg HistoryConfig) *History {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	h := &History{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
	}
	h.entries = append(h.entries, cfg.Seed)
	return h
}

// Push records a new entry: everything after the cursor is discarded, the
// entry is appended, and the oldest entry is evicted when over capacity. The
// cursor ends on the pushed entry either way.
func (h *History) Push(e Entry) {
	h.entries = append(h.entries[:h.cursor+1], e)
	h.cursor++
	if len(h.entries) > h.capacity {
		h.entries = h.entries[1:]
		h.cursor--
	}
}

// Back moves the cursor one step toward the oldest entry and returns the
// entry there. It returns false without moving when already at the oldest.
func (h *History) Back() (Entry, bool) {
	if !h.CanGoBack() {
		return Entry{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Forward moves the cursor one step toward the newest entry and returns the
// entry there. It returns false without moving when already at the newest.
func (h *History) Forward() (Entry, bool) {
	if !h.CanGoForward() {
		return Entry{}, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// CanGoBack reports whether Back would succeed.
func (h *History) CanGoBack() bool { return h.cursor > 0 }

// CanGoForward reports whether Forward would succeed.
func (h *History) CanGoForward() bool { return h.cursor < len(h.entries)-1 }

// Current returns the entry at the cursor.
func (h *History) Current() Entry { return h.entries[h.cursor] }

// Len returns the number of entries currently held.
func (h *History) Len() int { return len(h.entries) }

// Reset discards all entries and re-seeds the stack. Used when the platform
// history payload, not the in-memory stack, is the source of truth on restore.
func (h *History) Reset(seed Entry) {
	h.entries = h.entries[:0]
	h.entries = append(h.entries, seed)
	h.cursor = 0
}

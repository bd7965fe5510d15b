package repl

// History keeps the expressions entered during one session, oldest first.
// It is session-scoped only; nothing is persisted across runs.
type History struct {
	entries []string
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Add appends an entry, skipping blanks and consecutive duplicates.
func (h *History) Add(entry string) {
	if entry == "" {
		return
	}

	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return
	}

	h.entries = append(h.entries, entry)
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Get returns the entry at index i, oldest first.
// Out-of-range indices return an empty string.
func (h *History) Get(i int) string {
	if i < 0 || i >= len(h.entries) {
		return ""
	}

	return h.entries[i]
}

package engine

import "lotto/internal/models"

// history is a fixed-capacity ring of draw results. When full, pushing a
// new result overwrites the oldest one.
type history struct {
	items []models.DrawResult
	head  int // index of the most recent entry
	size  int
}

func newHistory(capacity int) *history {
	return &history{items: make([]models.DrawResult, capacity), head: -1}
}

func (h *history) push(r models.DrawResult) {
	h.head = (h.head + 1) % len(h.items)
	h.items[h.head] = r
	if h.size < len(h.items) {
		h.size++
	}
}

func (h *history) count() int {
	return h.size
}

// list returns the results most recent first.
func (h *history) list() []models.DrawResult {
	out := make([]models.DrawResult, 0, h.size)
	for i := 0; i < h.size; i++ {
		idx := (h.head - i + len(h.items)) % len(h.items)
		out = append(out, cloneResult(h.items[idx]))
	}
	return out
}

func cloneResult(r models.DrawResult) models.DrawResult {
	r.WinningNumbers = append([]int(nil), r.WinningNumbers...)
	r.PlayerNumbers = append([]int(nil), r.PlayerNumbers...)
	return r
}

package domain

import "fmt"

// Selection is a bounded FIFO tracker over object ids, driving the
// "pick two objects" workflow. When full, selecting evicts the oldest
// entry (index 0), never the most recent. Selecting an id already
// present is a new selection event; no deduplication happens.
type Selection struct {
	capacity int
	ids      []string
}

func NewSelection(capacity int) (*Selection, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("new selection: capacity must be positive, got %d", capacity)
	}
	return &Selection{capacity: capacity}, nil
}

// Select appends id to the selection. If the selection is at capacity
// the oldest id is evicted first and returned with true; otherwise the
// second return is false.
func (s *Selection) Select(id string) (string, bool) {
	if len(s.ids) < s.capacity {
		s.ids = append(s.ids, id)
		return "", false
	}

	evicted := s.ids[0]
	s.ids = append(s.ids[1:], id)
	return evicted, true
}

// Clear empties the selection. Idempotent.
func (s *Selection) Clear() {
	s.ids = nil
}

// Current returns the selected ids oldest-first. The returned slice is
// a copy; mutating it does not affect the selection.
func (s *Selection) Current() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *Selection) IsFull() bool { return len(s.ids) == s.capacity }

func (s *Selection) Capacity() int { return s.capacity }

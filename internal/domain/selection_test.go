package domain

import (
	"reflect"
	"testing"
)

func TestSelectionEvictsOldestFirst(t *testing.T) {
	sel, err := NewSelection(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, evicted := sel.Select("earth"); evicted {
		t.Fatalf("first select should not evict")
	}
	if _, evicted := sel.Select("moon"); evicted {
		t.Fatalf("second select should not evict")
	}
	if !sel.IsFull() {
		t.Fatalf("selection should be full after two selects")
	}

	evictedID, evicted := sel.Select("sun")
	if !evicted {
		t.Fatalf("third select should evict")
	}
	if evictedID != "earth" {
		t.Fatalf("evicted = %q, want %q", evictedID, "earth")
	}

	got := sel.Current()
	want := []string{"moon", "sun"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("current = %v, want %v", got, want)
	}
}

func TestSelectionNoDeduplication(t *testing.T) {
	sel, _ := NewSelection(2)

	sel.Select("earth")
	sel.Select("earth")

	// A repeated id is a new selection event; the oldest copy is the
	// one evicted next.
	evictedID, evicted := sel.Select("moon")
	if !evicted || evictedID != "earth" {
		t.Fatalf("evicted = %q (%v), want %q", evictedID, evicted, "earth")
	}

	got := sel.Current()
	want := []string{"earth", "moon"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("current = %v, want %v", got, want)
	}
}

func TestSelectionArbitraryCapacity(t *testing.T) {
	sel, err := NewSelection(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range []string{"a", "b", "c"} {
		if _, evicted := sel.Select(id); evicted {
			t.Fatalf("select %q should not evict below capacity", id)
		}
	}

	evictedID, evicted := sel.Select("d")
	if !evicted || evictedID != "a" {
		t.Fatalf("evicted = %q (%v), want %q", evictedID, evicted, "a")
	}

	got := sel.Current()
	want := []string{"b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("current = %v, want %v", got, want)
	}
}

func TestSelectionClearIsIdempotent(t *testing.T) {
	sel, _ := NewSelection(2)
	sel.Select("earth")
	sel.Select("moon")

	sel.Clear()
	if len(sel.Current()) != 0 {
		t.Fatalf("selection should be empty after clear")
	}

	// Clearing again must not fail or change anything.
	sel.Clear()
	if len(sel.Current()) != 0 || sel.IsFull() {
		t.Fatalf("selection should remain empty after second clear")
	}
}

func TestSelectionCurrentReturnsCopy(t *testing.T) {
	sel, _ := NewSelection(2)
	sel.Select("earth")

	got := sel.Current()
	got[0] = "mutated"

	if sel.Current()[0] != "earth" {
		t.Fatalf("mutating the returned slice must not affect the selection")
	}
}

func TestSelectionRejectsNonPositiveCapacity(t *testing.T) {
	if _, err := NewSelection(0); err == nil {
		t.Fatalf("expected error for capacity 0")
	}
	if _, err := NewSelection(-1); err == nil {
		t.Fatalf("expected error for negative capacity")
	}
}

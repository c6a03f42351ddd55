package services

import (
	"reflect"
	"testing"
)

func TestSessionManagerSelectionLifecycle(t *testing.T) {
	mgr, err := NewSessionManager(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	update, err := mgr.Select("s1", "earth")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if update.HasEvicted || update.Ready {
		t.Fatalf("first select: evicted=%v ready=%v, want neither", update.HasEvicted, update.Ready)
	}

	update, _ = mgr.Select("s1", "moon")
	if !update.Ready {
		t.Fatalf("selection should be ready after a full pair")
	}

	update, _ = mgr.Select("s1", "sun")
	if !update.HasEvicted || update.Evicted != "earth" {
		t.Fatalf("evicted = %q (%v), want %q", update.Evicted, update.HasEvicted, "earth")
	}
	if !reflect.DeepEqual(update.Current, []string{"moon", "sun"}) {
		t.Fatalf("current = %v, want [moon sun]", update.Current)
	}

	mgr.Clear("s1")
	if got := mgr.Current("s1"); len(got) != 0 {
		t.Fatalf("current after clear = %v, want empty", got)
	}
}

func TestSessionManagerIsolatesSessions(t *testing.T) {
	mgr, _ := NewSessionManager(2)

	mgr.Select("s1", "earth")
	mgr.Select("s2", "sun")

	if got := mgr.Current("s1"); !reflect.DeepEqual(got, []string{"earth"}) {
		t.Fatalf("s1 current = %v, want [earth]", got)
	}
	if got := mgr.Current("s2"); !reflect.DeepEqual(got, []string{"sun"}) {
		t.Fatalf("s2 current = %v, want [sun]", got)
	}
}

func TestSessionManagerUnknownSessionReadsEmpty(t *testing.T) {
	mgr, _ := NewSessionManager(2)

	if got := mgr.Current("ghost"); len(got) != 0 {
		t.Fatalf("unknown session current = %v, want empty", got)
	}
	if mgr.IsFull("ghost") {
		t.Fatalf("unknown session must not read as full")
	}

	// Clearing a session that was never created is a no-op.
	mgr.Clear("ghost")
}

func TestSessionManagerValidatesInput(t *testing.T) {
	if _, err := NewSessionManager(0); err == nil {
		t.Fatalf("expected error for non-positive capacity")
	}

	mgr, _ := NewSessionManager(2)
	if _, err := mgr.Select("", "earth"); err == nil {
		t.Fatalf("expected error for empty session id")
	}
	if _, err := mgr.Select("s1", ""); err == nil {
		t.Fatalf("expected error for empty object id")
	}
}

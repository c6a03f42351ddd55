package domain

import (
	"math"
	"testing"
)

func testIndex() *DistanceIndex {
	records := []DistanceRecord{
		{FromID: "earth", ToID: "moon", DistanceMeters: 384400000},
		{FromID: "earth", ToID: "sun", DistanceMeters: 1.496e11},
	}
	return BuildDistanceIndex(records, 299792458)
}

func TestDistanceIndexLookupIsSymmetric(t *testing.T) {
	ix := testIndex()

	forward, ok := ix.Lookup("earth", "moon")
	if !ok {
		t.Fatalf("expected hit for earth -> moon")
	}

	reverse, ok := ix.Lookup("moon", "earth")
	if !ok {
		t.Fatalf("expected hit for moon -> earth")
	}

	if forward != reverse {
		t.Fatalf("lookup(a,b) = %+v, lookup(b,a) = %+v; want identical records", forward, reverse)
	}
	if forward.DistanceMeters != 384400000 {
		t.Fatalf("distance = %g, want 384400000", forward.DistanceMeters)
	}
}

func TestDistanceIndexMissIsNotAnError(t *testing.T) {
	ix := testIndex()

	if _, ok := ix.Lookup("moon", "sun"); ok {
		t.Fatalf("expected miss for unrecorded pair")
	}
	if _, ok := ix.Lookup("earth", "nonexistent"); ok {
		t.Fatalf("expected miss for unknown object")
	}
}

func TestDistanceIndexDerivesLightSeconds(t *testing.T) {
	ix := testIndex()

	rec, ok := ix.Lookup("earth", "sun")
	if !ok {
		t.Fatalf("expected hit for earth -> sun")
	}

	want := 1.496e11 / 299792458
	if math.Abs(rec.LightSeconds-want) > 1e-9 {
		t.Fatalf("light seconds = %g, want %g", rec.LightSeconds, want)
	}
}

func TestDistanceIndexLastWriteWinsOnDuplicates(t *testing.T) {
	records := []DistanceRecord{
		{FromID: "earth", ToID: "moon", DistanceMeters: 1},
		{FromID: "earth", ToID: "moon", DistanceMeters: 384400000},
	}
	ix := BuildDistanceIndex(records, 299792458)

	if ix.Len() != 1 {
		t.Fatalf("len = %d, want 1", ix.Len())
	}

	rec, _ := ix.Lookup("earth", "moon")
	if rec.DistanceMeters != 384400000 {
		t.Fatalf("distance = %g, want the later record to win", rec.DistanceMeters)
	}
}

package domain

// Represents the recorded distance between an unordered pair of objects.
// Records are stored single-direction by convention; lookups resolve
// both query orientations against the stored direction.
type DistanceRecord struct {
	FromID string
	ToID   string
	// DistanceMeters is the real gap between the two objects in meters.
	DistanceMeters float64
	// LightSeconds is the light-travel time across the gap, derived at
	// index build time from the configured speed of light.
	LightSeconds float64
}

// DistanceIndex is an immutable order-independent lookup over distance
// records. It is built once per comparison session from catalog data and
// owned by that session; no distance is ever synthesized.
type DistanceIndex struct {
	records map[string]DistanceRecord
}

func pairKey(a, b string) string { return a + "-" + b }

// BuildDistanceIndex constructs an index from the supplied records,
// deriving light-travel seconds from speedOfLight (m/s) when it is
// positive. Duplicate pairs are a caller error; the last record wins.
func BuildDistanceIndex(records []DistanceRecord, speedOfLight float64) *DistanceIndex {
	m := make(map[string]DistanceRecord, len(records))
	for _, rec := range records {
		if speedOfLight > 0 {
			rec.LightSeconds = rec.DistanceMeters / speedOfLight
		}
		m[pairKey(rec.FromID, rec.ToID)] = rec
	}
	return &DistanceIndex{records: m}
}

// Lookup returns the record for the pair {idA, idB} regardless of
// argument order. The boolean reports whether the pair is known; a miss
// is a routine outcome, not an error (many pairs have no recorded
// distance).
func (ix *DistanceIndex) Lookup(idA, idB string) (DistanceRecord, bool) {
	if rec, ok := ix.records[pairKey(idA, idB)]; ok {
		return rec, true
	}
	if rec, ok := ix.records[pairKey(idB, idA)]; ok {
		return rec, true
	}
	return DistanceRecord{}, false
}

// Len returns the number of stored records.
func (ix *DistanceIndex) Len() int { return len(ix.records) }

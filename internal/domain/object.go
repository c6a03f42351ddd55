package domain

// Represents a single cosmic object known to the catalog.
// Diameter is in meters and is validated as strictly positive at the
// data-loading boundary, so sizing math downstream may assume a
// well-typed positive real (degenerate values are still rendered
// safely, never rejected mid-computation).
type CosmicObject struct {
	ObjectID string
	Name     string
	// DiameterMeters is the real physical diameter in meters.
	DiameterMeters float64
	// Color is a display hint for the embedding client (e.g. "#2e6f9e").
	Color string
}

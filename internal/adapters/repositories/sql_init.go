package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the catalog schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createObjectsQuery := `
	CREATE TABLE IF NOT EXISTS cosmic_objects (
		object_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		diameter_meters DOUBLE PRECISION NOT NULL CHECK (diameter_meters > 0),
		color TEXT NOT NULL DEFAULT ''
	);
	`

	createDistancesQuery := `
	CREATE TABLE IF NOT EXISTS object_distances (
		from_id TEXT NOT NULL REFERENCES cosmic_objects(object_id),
		to_id TEXT NOT NULL REFERENCES cosmic_objects(object_id),
		distance_meters DOUBLE PRECISION NOT NULL CHECK (distance_meters > 0),
		PRIMARY KEY (from_id, to_id)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_object_distances_to_from
	ON object_distances(to_id, from_id);
	`

	statements := []string{
		createObjectsQuery,
		createDistancesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type ObjectSeed struct {
	ObjectID       string  `json:"id"`
	Name           string  `json:"name"`
	DiameterMeters float64 `json:"diameter_meters"`
	Color          string  `json:"color"`
}

type DistanceSeed struct {
	FromID         string  `json:"from"`
	ToID           string  `json:"to"`
	DistanceMeters float64 `json:"distance_meters"`
}

type CatalogSeed struct {
	Objects   []ObjectSeed   `json:"objects"`
	Distances []DistanceSeed `json:"distances"`
}

// Populate the catalog from a JSON seed file. All "is this a legal
// number" validation happens here, at the boundary, so the pure scale
// and planning math can assume positive reals.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed catalog: read %q: %w", jsonPath, err)
	}

	var seed CatalogSeed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return fmt.Errorf("seed catalog: parse json: %w", err)
	}

	known := make(map[string]struct{}, len(seed.Objects))
	for i, obj := range seed.Objects {
		id := strings.TrimSpace(obj.ObjectID)
		if id == "" {
			return fmt.Errorf("seed catalog: object at index %d: id cannot be empty", i+1)
		}
		if obj.DiameterMeters <= 0 {
			return fmt.Errorf("seed catalog: object %q: diameter must be positive, got %g", id, obj.DiameterMeters)
		}
		if _, dup := known[id]; dup {
			return fmt.Errorf("seed catalog: duplicate object id %q", id)
		}
		known[id] = struct{}{}
	}

	for i, d := range seed.Distances {
		if _, ok := known[d.FromID]; !ok {
			return fmt.Errorf("seed catalog: distance at index %d references unknown object %q", i+1, d.FromID)
		}
		if _, ok := known[d.ToID]; !ok {
			return fmt.Errorf("seed catalog: distance at index %d references unknown object %q", i+1, d.ToID)
		}
		if d.DistanceMeters <= 0 {
			return fmt.Errorf("seed catalog: distance %q -> %q must be positive, got %g", d.FromID, d.ToID, d.DistanceMeters)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	objectStmt, err := tx.Prepare(`
	INSERT INTO cosmic_objects (object_id, name, diameter_meters, color)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (object_id) DO UPDATE
	SET name = EXCLUDED.name,
		diameter_meters = EXCLUDED.diameter_meters,
		color = EXCLUDED.color;
	`)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare object insert: %w", err)
	}
	defer objectStmt.Close()

	for _, obj := range seed.Objects {
		if _, err := objectStmt.Exec(obj.ObjectID, obj.Name, obj.DiameterMeters, obj.Color); err != nil {
			return fmt.Errorf("seed catalog: insert object %q: %w", obj.ObjectID, err)
		}
	}

	distanceStmt, err := tx.Prepare(`
	INSERT INTO object_distances (from_id, to_id, distance_meters)
	VALUES ($1, $2, $3)
	ON CONFLICT (from_id, to_id) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters;
	`)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare distance insert: %w", err)
	}
	defer distanceStmt.Close()

	for _, d := range seed.Distances {
		if _, err := distanceStmt.Exec(d.FromID, d.ToID, d.DistanceMeters); err != nil {
			return fmt.Errorf("seed catalog: insert distance %q -> %q: %w", d.FromID, d.ToID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}

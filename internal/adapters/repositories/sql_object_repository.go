package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/renotari/powers-explorer/internal/domain"
	"github.com/renotari/powers-explorer/internal/platform/obs"
)

// SQL-backed implementation of the ObjectRepository port.
type SQLObjectRepository struct{ DB *sql.DB }

func NewSQLObjectRepository(db *sql.DB) *SQLObjectRepository {
	return &SQLObjectRepository{DB: db}
}

// Return all cosmic objects stored in the catalog.
func (s *SQLObjectRepository) ListObjects(ctx context.Context) (_ []domain.CosmicObject, err error) {
	defer obs.Time(ctx, "repo.ListObjects")(&err)

	if s.DB == nil {
		return nil, errors.New("object repository: DB is nil")
	}

	query := `
	SELECT
		object_id,
		name,
		diameter_meters,
		color
	FROM cosmic_objects
	ORDER BY diameter_meters;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list objects: query cosmic_objects table: %w", err)
	}
	defer rows.Close()

	objects := make([]domain.CosmicObject, 0, 64)
	for rows.Next() {
		var obj domain.CosmicObject
		if err := rows.Scan(&obj.ObjectID, &obj.Name, &obj.DiameterMeters, &obj.Color); err != nil {
			return nil, fmt.Errorf("list objects: scan row: %w", err)
		}
		objects = append(objects, obj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list objects: row iteration: %w", err)
	}

	return objects, nil
}

// Return the object with the given id; the boolean reports existence.
func (s *SQLObjectRepository) GetObject(ctx context.Context, id string) (domain.CosmicObject, bool, error) {
	if s.DB == nil {
		return domain.CosmicObject{}, false, errors.New("object repository: DB is nil")
	}

	query := `
	SELECT
		object_id,
		name,
		diameter_meters,
		color
	FROM cosmic_objects
	WHERE object_id = $1;
	`
	var obj domain.CosmicObject
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&obj.ObjectID, &obj.Name, &obj.DiameterMeters, &obj.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CosmicObject{}, false, nil
	}
	if err != nil {
		return domain.CosmicObject{}, false, fmt.Errorf("get object %q: %w", id, err)
	}

	return obj, true, nil
}

// Return all recorded pair distances. Records are stored
// single-direction; the in-memory index resolves both orientations.
func (s *SQLObjectRepository) ListDistances(ctx context.Context) (_ []domain.DistanceRecord, err error) {
	defer obs.Time(ctx, "repo.ListDistances")(&err)

	if s.DB == nil {
		return nil, errors.New("object repository: DB is nil")
	}

	query := `
	SELECT
		from_id,
		to_id,
		distance_meters
	FROM object_distances
	ORDER BY from_id, to_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list distances: query object_distances table: %w", err)
	}
	defer rows.Close()

	records := make([]domain.DistanceRecord, 0, 64)
	for rows.Next() {
		var rec domain.DistanceRecord
		if err := rows.Scan(&rec.FromID, &rec.ToID, &rec.DistanceMeters); err != nil {
			return nil, fmt.Errorf("list distances: scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list distances: row iteration: %w", err)
	}

	return records, nil
}

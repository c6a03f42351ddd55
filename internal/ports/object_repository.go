package ports

import (
	"context"

	"github.com/renotari/powers-explorer/internal/domain"
)

// Port: a boundary for retrieving the cosmic object catalog and its
// recorded distances from a data source.
type ObjectRepository interface {
	// Retrieve all catalog objects.
	ListObjects(ctx context.Context) ([]domain.CosmicObject, error)
	// Retrieve the object with the given id; the boolean reports
	// whether it exists.
	GetObject(ctx context.Context, id string) (domain.CosmicObject, bool, error)
	// Retrieve all recorded pair distances (stored single-direction).
	ListDistances(ctx context.Context) ([]domain.DistanceRecord, error)
}

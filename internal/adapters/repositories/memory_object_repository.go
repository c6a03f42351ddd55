package repositories

import (
	"context"

	"github.com/renotari/powers-explorer/internal/domain"
)

// In-memory implementation of the ObjectRepository port, used as a test
// fixture and for demo runs without a database.
type MemoryObjectRepository struct {
	objects   map[string]domain.CosmicObject
	order     []string
	distances []domain.DistanceRecord
}

func NewMemoryObjectRepository(objects []domain.CosmicObject, distances []domain.DistanceRecord) *MemoryObjectRepository {
	m := make(map[string]domain.CosmicObject, len(objects))
	order := make([]string, 0, len(objects))
	for _, obj := range objects {
		if _, dup := m[obj.ObjectID]; !dup {
			order = append(order, obj.ObjectID)
		}
		m[obj.ObjectID] = obj
	}
	return &MemoryObjectRepository{objects: m, order: order, distances: distances}
}

func (r *MemoryObjectRepository) ListObjects(ctx context.Context) ([]domain.CosmicObject, error) {
	out := make([]domain.CosmicObject, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.objects[id])
	}
	return out, nil
}

func (r *MemoryObjectRepository) GetObject(ctx context.Context, id string) (domain.CosmicObject, bool, error) {
	obj, ok := r.objects[id]
	return obj, ok, nil
}

func (r *MemoryObjectRepository) ListDistances(ctx context.Context) ([]domain.DistanceRecord, error) {
	out := make([]domain.DistanceRecord, len(r.distances))
	copy(out, r.distances)
	return out, nil
}

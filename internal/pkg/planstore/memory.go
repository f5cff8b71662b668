package planstore

import (
	"context"
	"sync"

	"github.com/hazzler78/stromsjef-sub000/app/models"
)

// MemoryStore is an in-process Store used in tests and local development
// without Redis.
type MemoryStore struct {
	mu    sync.RWMutex
	plans []models.Plan
}

func NewMemoryStore(plans []models.Plan) *MemoryStore {
	s := &MemoryStore{}
	s.plans = clonePlans(plans)
	return s
}

func (s *MemoryStore) All(ctx context.Context) ([]models.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePlans(s.plans), nil
}

func (s *MemoryStore) ReplaceAll(ctx context.Context, plans []models.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans = clonePlans(plans)
	return nil
}

func clonePlans(plans []models.Plan) []models.Plan {
	out := make([]models.Plan, len(plans))
	copy(out, plans)
	return out
}

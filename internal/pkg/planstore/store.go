package planstore

import (
	"context"
	"errors"

	"github.com/hazzler78/stromsjef-sub000/app/models"
)

// ErrNotFound is returned when a plan ID does not exist in the collection.
var ErrNotFound = errors.New("plan not found")

// Store holds the full plan collection as one opaque blob. There is no
// per-record update primitive: every write replaces the whole collection,
// so concurrent writers can clobber each other (last write wins).
type Store interface {
	// All returns the current plan collection.
	All(ctx context.Context) ([]models.Plan, error)
	// ReplaceAll overwrites the stored collection.
	ReplaceAll(ctx context.Context, plans []models.Plan) error
}

// FindByID returns a pointer into plans for the plan with the given ID.
func FindByID(plans []models.Plan, id string) (*models.Plan, bool) {
	for i := range plans {
		if plans[i].ID == id {
			return &plans[i], true
		}
	}
	return nil, false
}

// SetFeatured flips the featured flag of one plan and persists the
// collection. Returns ErrNotFound when the ID is unknown.
func SetFeatured(ctx context.Context, s Store, id string, featured bool) (*models.Plan, error) {
	plans, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	plan, ok := FindByID(plans, id)
	if !ok {
		return nil, ErrNotFound
	}
	plan.Featured = featured
	if err := s.ReplaceAll(ctx, plans); err != nil {
		return nil, err
	}
	return plan, nil
}

package planstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hazzler78/stromsjef-sub000/app/models"
)

// plansKey holds the whole catalog as one JSON array.
const plansKey = "stromsjef:plans"

// RedisStore persists the plan collection as a single JSON blob in Redis.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// All loads the collection. A missing key is treated as first run and the
// default seed catalog is written and returned.
func (s *RedisStore) All(ctx context.Context) ([]models.Plan, error) {
	raw, err := s.client.Get(ctx, plansKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			plans := DefaultPlans()
			if err := s.ReplaceAll(ctx, plans); err != nil {
				return nil, err
			}
			return plans, nil
		}
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}

	var plans []models.Plan
	if err := json.Unmarshal([]byte(raw), &plans); err != nil {
		return nil, fmt.Errorf("failed to decode plan collection: %w", err)
	}
	return plans, nil
}

// ReplaceAll overwrites the stored collection in one write.
func (s *RedisStore) ReplaceAll(ctx context.Context, plans []models.Plan) error {
	raw, err := json.Marshal(plans)
	if err != nil {
		return fmt.Errorf("failed to encode plan collection: %w", err)
	}
	if err := s.client.Set(ctx, plansKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save plans: %w", err)
	}
	return nil
}

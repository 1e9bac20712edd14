package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/erfan-rahmanian/barnameh/internal/config"
	"github.com/erfan-rahmanian/barnameh/internal/model"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

// PlannerStateRepository keeps the whole planner state as one JSON blob under
// a fixed key. Every save rewrites the blob; last write wins.
type PlannerStateRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
	key    string
}

func NewPlannerStateRepository(pool *redis.Pool, logger *zap.SugaredLogger) *PlannerStateRepository {
	return &PlannerStateRepository{
		pool:   pool,
		logger: logger,
		key:    config.PlannerStateKey(),
	}
}

// Load reads the state blob. A missing key or a malformed blob yields an
// empty state, never an error.
func (r *PlannerStateRepository) Load(ctx context.Context) (model.PlannerState, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", r.key))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return model.PlannerState{}, nil
		}
		return nil, fmt.Errorf("GET %q: %w", r.key, err)
	}

	state := model.DecodePlannerState(data)
	if len(state) == 0 && len(data) > 0 {
		r.logger.Warnw("discarded unreadable planner state", "key", r.key)
	}

	return state, nil
}

func (r *PlannerStateRepository) Save(ctx context.Context, state model.PlannerState) error {
	data, err := model.EncodePlannerState(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("SET", r.key, data); err != nil {
		return fmt.Errorf("SET %q: %w", r.key, err)
	}

	return nil
}

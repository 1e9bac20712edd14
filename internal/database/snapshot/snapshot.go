// Package snapshot is the Postgres backend for the planner state blob. It
// keeps the same one-value-per-key layout as the redis backend:
//
//	create table planner_snapshots (key text primary key, data text not null);
package snapshot

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/erfan-rahmanian/barnameh/internal/config"
	"github.com/erfan-rahmanian/barnameh/internal/database"
	"github.com/erfan-rahmanian/barnameh/internal/model"
	"github.com/jackc/pgx/v4"
	"go.uber.org/zap"
)

type Repository struct {
	db     database.PGX
	logger *zap.SugaredLogger
	key    string
}

func NewRepository(db database.PGX, logger *zap.SugaredLogger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
		key:    config.PlannerStateKey(),
	}
}

// Load reads the state blob. A missing row or a malformed blob yields an
// empty state, never an error.
func (r *Repository) Load(ctx context.Context) (model.PlannerState, error) {
	qb := database.PSQL.
		Select("data").
		From(database.SnapshotsTable).
		Where(sq.Eq{"key": r.key})

	var data string
	if err := r.db.Get(ctx, &data, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PlannerState{}, nil
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	state := model.DecodePlannerState([]byte(data))
	if len(state) == 0 && len(data) > 0 {
		r.logger.Warnw("discarded unreadable planner state", "key", r.key)
	}

	return state, nil
}

func (r *Repository) Save(ctx context.Context, state model.PlannerState) error {
	data, err := model.EncodePlannerState(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	qb := database.PSQL.
		Insert(database.SnapshotsTable).
		Columns("key", "data").
		Values(r.key, string(data)).
		Suffix("on conflict (key) do update set data = excluded.data")

	if _, err := r.db.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

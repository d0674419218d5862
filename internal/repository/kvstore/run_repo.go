package kvstore

import (
	"context"

	"github.com/theo/arena-forge/internal/domain"
	"github.com/theo/arena-forge/internal/kv"
)

type RunRepo struct {
	store kv.Store
}

func (r *RunRepo) Get(ctx context.Context, playerID string) (*domain.Run, error) {
	var run domain.Run
	found, err := getJSON(ctx, r.store, keyRun(playerID), &run)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrRunNotFound
	}
	return &run, nil
}

func (r *RunRepo) Save(ctx context.Context, run *domain.Run) error {
	return setJSON(ctx, r.store, keyRun(run.PlayerID), run)
}

func (r *RunRepo) Clear(ctx context.Context, playerID string) error {
	return r.store.Delete(ctx, keyRun(playerID))
}

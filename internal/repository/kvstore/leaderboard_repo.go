package kvstore

import (
	"context"

	"github.com/theo/arena-forge/internal/domain"
	"github.com/theo/arena-forge/internal/kv"
)

type LeaderboardRepo struct {
	store kv.Store
}

func (r *LeaderboardRepo) Save(ctx context.Context, arenaType domain.ArenaType, seasonID string, rows []domain.LeaderboardRow) error {
	return setJSON(ctx, r.store, keyLeaderboard(string(arenaType), seasonID), rows)
}

func (r *LeaderboardRepo) Get(ctx context.Context, arenaType domain.ArenaType, seasonID string) ([]domain.LeaderboardRow, error) {
	var rows []domain.LeaderboardRow
	if _, err := getJSON(ctx, r.store, keyLeaderboard(string(arenaType), seasonID), &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.LeaderboardRow{}
	}
	return rows, nil
}

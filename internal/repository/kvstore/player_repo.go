package kvstore

import (
	"context"

	"github.com/theo/arena-forge/internal/domain"
	"github.com/theo/arena-forge/internal/kv"
)

type PlayerRepo struct {
	store kv.Store
}

func (r *PlayerRepo) Get(ctx context.Context, playerID string) (*domain.Player, error) {
	var player domain.Player
	found, err := getJSON(ctx, r.store, keyPlayer(playerID), &player)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrPlayerNotFound
	}
	return &player, nil
}

func (r *PlayerRepo) Save(ctx context.Context, player *domain.Player) error {
	return setJSON(ctx, r.store, keyPlayer(player.PlayerID), player)
}

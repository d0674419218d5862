package service

import (
	"context"
	"errors"

	"github.com/theo/arena-forge/internal/domain"
	"github.com/theo/arena-forge/internal/engine"
	"github.com/theo/arena-forge/internal/repository"
)

type PlayerService struct {
	playerRepo repository.PlayerRepository
	runRepo    repository.RunRepository
}

func NewPlayerService(playerRepo repository.PlayerRepository, runRepo repository.RunRepository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		runRepo:    runRepo,
	}
}

// GetOrCreate loads the player, creating one with defaults on first contact.
func (s *PlayerService) GetOrCreate(ctx context.Context, playerID string) (*domain.Player, error) {
	player, err := s.playerRepo.Get(ctx, playerID)
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, err
	}

	created := domain.NewPlayer(playerID)
	if err := s.playerRepo.Save(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *PlayerService) Save(ctx context.Context, player *domain.Player) error {
	return s.playerRepo.Save(ctx, player)
}

// Profile is the player summary returned to the client.
type Profile struct {
	Player         *domain.Player           `json:"player"`
	ActiveRun      *domain.Run              `json:"activeRun"`
	ArenaEntryCost map[domain.ArenaType]int `json:"arenaEntryCost"`
}

func (s *PlayerService) Profile(ctx context.Context, playerID string) (*Profile, error) {
	player, err := s.GetOrCreate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	run, err := s.runRepo.Get(ctx, playerID)
	if err != nil && !errors.Is(err, domain.ErrRunNotFound) {
		return nil, err
	}

	return &Profile{
		Player:         player,
		ActiveRun:      run,
		ArenaEntryCost: engine.EntryCosts(),
	}, nil
}

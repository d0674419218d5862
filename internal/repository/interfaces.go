package repository

import (
	"context"

	"github.com/theo/arena-forge/internal/domain"
)

type PlayerRepository interface {
	Get(ctx context.Context, playerID string) (*domain.Player, error)
	Save(ctx context.Context, player *domain.Player) error
}

// RunRepository keys runs by playerId, which is what enforces the
// one-active-run-per-player rule.
type RunRepository interface {
	Get(ctx context.Context, playerID string) (*domain.Run, error)
	Save(ctx context.Context, run *domain.Run) error
	Clear(ctx context.Context, playerID string) error
}

type BuildRepository interface {
	Get(ctx context.Context, buildID string) (*domain.Build, error)
	// Save stores the build and claims its slot; a build already in that
	// slot is dropped from the player's slot index.
	Save(ctx context.Context, build *domain.Build) error
	ListByPlayer(ctx context.Context, playerID string) ([]*domain.Build, error)
}

type EntryRepository interface {
	Save(ctx context.Context, entry *domain.ArenaEntry) error
	ListSeason(ctx context.Context, arenaType domain.ArenaType, seasonID string) ([]*domain.ArenaEntry, error)
}

type LeaderboardRepository interface {
	Save(ctx context.Context, arenaType domain.ArenaType, seasonID string, rows []domain.LeaderboardRow) error
	Get(ctx context.Context, arenaType domain.ArenaType, seasonID string) ([]domain.LeaderboardRow, error)
}

type Repositories struct {
	Player      PlayerRepository
	Run         RunRepository
	Build       BuildRepository
	Entry       EntryRepository
	Leaderboard LeaderboardRepository
}

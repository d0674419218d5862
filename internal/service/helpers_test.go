package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/theo/arena-forge/internal/domain"
	"github.com/theo/arena-forge/internal/kv"
	"github.com/theo/arena-forge/internal/repository"
	"github.com/theo/arena-forge/internal/repository/kvstore"
	"github.com/theo/arena-forge/internal/service"
)

type settledCall struct {
	arenaType domain.ArenaType
	seasonID  string
	rows      []domain.LeaderboardRow
}

type stubNotifier struct {
	mu    sync.Mutex
	calls []settledCall
}

func (n *stubNotifier) NotifySettled(arenaType domain.ArenaType, seasonID string, rows []domain.LeaderboardRow) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, settledCall{arenaType: arenaType, seasonID: seasonID, rows: rows})
}

func (n *stubNotifier) callCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

type testEnv struct {
	repos    *repository.Repositories
	services *service.Services
	notifier *stubNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repos := kvstore.NewRepositories(kv.NewMemoryStore())
	notifier := &stubNotifier{}
	return &testEnv{
		repos:    repos,
		services: service.NewServices(repos, zerolog.Nop(), notifier),
		notifier: notifier,
	}
}

// seedBuild stores a banked build for the player, bypassing the run flow.
func seedBuild(t *testing.T, env *testEnv, playerID string, powerScore int) *domain.Build {
	t.Helper()
	build := &domain.Build{
		BuildID:    uuid.NewString(),
		PlayerID:   playerID,
		RunID:      uuid.NewString(),
		Traits:     []string{"t_warlord"},
		Units:      []string{"u_knight"},
		Modifiers:  []string{},
		PowerScore: powerScore,
		Seed:       uuid.NewString(),
		SlotIndex:  0,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, env.repos.Build.Save(context.Background(), build))
	return build
}

// seedPlayer creates the player and sets their soft currency balance.
func seedPlayer(t *testing.T, env *testEnv, playerID string, coins int) *domain.Player {
	t.Helper()
	ctx := context.Background()
	player, err := env.services.Player.GetOrCreate(ctx, playerID)
	require.NoError(t, err)
	player.CurrencySoft = coins
	require.NoError(t, env.services.Player.Save(ctx, player))
	return player
}

// seedEntry stores a pending arena entry directly, with full control over
// resultAt so settlement due-ness can be staged in the past or future.
func seedEntry(t *testing.T, env *testEnv, arenaType domain.ArenaType, seasonID, playerID, buildID string, powerScore int, createdAt, resultAt time.Time) *domain.ArenaEntry {
	t.Helper()
	entry := &domain.ArenaEntry{
		EntryID:    uuid.NewString(),
		ArenaType:  arenaType,
		SeasonID:   seasonID,
		PlayerID:   playerID,
		BuildID:    buildID,
		PowerScore: powerScore,
		LockAt:     resultAt,
		ResultAt:   resultAt,
		Status:     domain.EntryStatusPending,
		CreatedAt:  createdAt,
		EntryCost:  20,
	}
	require.NoError(t, env.repos.Entry.Save(context.Background(), entry))
	return entry
}

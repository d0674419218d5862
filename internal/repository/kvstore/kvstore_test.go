package kvstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theo/arena-forge/internal/domain"
	"github.com/theo/arena-forge/internal/kv"
	"github.com/theo/arena-forge/internal/repository"
	"github.com/theo/arena-forge/internal/repository/kvstore"
)

func newRepos() *repository.Repositories {
	return kvstore.NewRepositories(kv.NewMemoryStore())
}

func TestPlayerRepo_Roundtrip(t *testing.T) {
	repos := newRepos()
	ctx := context.Background()

	_, err := repos.Player.Get(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	player := domain.NewPlayer("wallet-abc123")
	player.CurrencySoft = 75
	require.NoError(t, repos.Player.Save(ctx, player))

	got, err := repos.Player.Get(ctx, "wallet-abc123")
	require.NoError(t, err)
	assert.Equal(t, "Player-wallet", got.Nickname)
	assert.Equal(t, 75, got.CurrencySoft)
	assert.Equal(t, domain.DefaultMMR, got.MMRSmall)
}

func TestRunRepo_OneRunPerPlayer(t *testing.T) {
	repos := newRepos()
	ctx := context.Background()

	first := &domain.Run{RunID: "run-1", PlayerID: "p1", Status: domain.RunStatusActive}
	second := &domain.Run{RunID: "run-2", PlayerID: "p1", Status: domain.RunStatusActive}
	require.NoError(t, repos.Run.Save(ctx, first))
	require.NoError(t, repos.Run.Save(ctx, second))

	got, err := repos.Run.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "run-2", got.RunID, "saving keyed by player replaces the run")

	require.NoError(t, repos.Run.Clear(ctx, "p1"))
	_, err = repos.Run.Get(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestBuildRepo_SlotOverwrite(t *testing.T) {
	repos := newRepos()
	ctx := context.Background()

	old := &domain.Build{BuildID: "b-old", PlayerID: "p1", SlotIndex: 2, PowerScore: 10}
	require.NoError(t, repos.Build.Save(ctx, old))

	replacement := &domain.Build{BuildID: "b-new", PlayerID: "p1", SlotIndex: 2, PowerScore: 50}
	require.NoError(t, repos.Build.Save(ctx, replacement))

	other := &domain.Build{BuildID: "b-zero", PlayerID: "p1", SlotIndex: 0, PowerScore: 30}
	require.NoError(t, repos.Build.Save(ctx, other))

	builds, err := repos.Build.ListByPlayer(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, builds, 2, "slot 2 holds only the replacement")
	assert.Equal(t, "b-zero", builds[0].BuildID)
	assert.Equal(t, "b-new", builds[1].BuildID)
}

func TestBuildRepo_ListSortedBySlot(t *testing.T) {
	repos := newRepos()
	ctx := context.Background()

	for _, b := range []*domain.Build{
		{BuildID: "b7", PlayerID: "p1", SlotIndex: 7},
		{BuildID: "b1", PlayerID: "p1", SlotIndex: 1},
		{BuildID: "b4", PlayerID: "p1", SlotIndex: 4},
	} {
		require.NoError(t, repos.Build.Save(ctx, b))
	}

	builds, err := repos.Build.ListByPlayer(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, builds, 3)
	assert.Equal(t, []int{1, 4, 7}, []int{builds[0].SlotIndex, builds[1].SlotIndex, builds[2].SlotIndex})
}

func TestEntryRepo_SeasonIndex(t *testing.T) {
	repos := newRepos()
	ctx := context.Background()
	now := time.Now().UTC()

	entry := &domain.ArenaEntry{
		EntryID:   "e1",
		ArenaType: domain.ArenaSmall,
		SeasonID:  "small:2026-03-14T10:00:00Z",
		PlayerID:  "p1",
		Status:    domain.EntryStatusPending,
		CreatedAt: now,
	}
	require.NoError(t, repos.Entry.Save(ctx, entry))

	// Saving again (status flip at settlement) must not duplicate the index.
	entry.Status = domain.EntryStatusResolved
	require.NoError(t, repos.Entry.Save(ctx, entry))

	entries, err := repos.Entry.ListSeason(ctx, domain.ArenaSmall, "small:2026-03-14T10:00:00Z")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.EntryStatusResolved, entries[0].Status)

	other, err := repos.Entry.ListSeason(ctx, domain.ArenaSmall, "small:2026-03-14T10:15:00Z")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestLeaderboardRepo_Roundtrip(t *testing.T) {
	repos := newRepos()
	ctx := context.Background()

	rows, err := repos.Leaderboard.Get(ctx, domain.ArenaDaily, "daily:2026-03-14")
	require.NoError(t, err)
	assert.Empty(t, rows)

	snapshot := []domain.LeaderboardRow{
		{Rank: 1, Score: 120, PlayerID: "p1", Nickname: "Player-p1"},
		{Rank: 2, Score: 90, PlayerID: "p2", Nickname: "Player-p2"},
	}
	require.NoError(t, repos.Leaderboard.Save(ctx, domain.ArenaDaily, "daily:2026-03-14", snapshot))

	rows, err = repos.Leaderboard.Get(ctx, domain.ArenaDaily, "daily:2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, snapshot, rows)
}

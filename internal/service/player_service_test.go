package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theo/arena-forge/internal/domain"
)

func TestPlayerService_GetOrCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	player, err := env.services.Player.GetOrCreate(ctx, "alice-123")
	require.NoError(t, err)
	assert.Equal(t, "alice-123", player.PlayerID)
	assert.Equal(t, "Player-alice-", player.Nickname)
	assert.Equal(t, domain.DefaultMMR, player.MMRSmall)
	assert.Equal(t, domain.DefaultMMR, player.MMRDaily)
	assert.Equal(t, domain.DefaultMMR, player.MMRWeekly)
	assert.Equal(t, 0, player.CurrencySoft)

	// Second call returns the stored player, not a fresh one.
	player.CurrencySoft = 77
	require.NoError(t, env.services.Player.Save(ctx, player))

	again, err := env.services.Player.GetOrCreate(ctx, "alice-123")
	require.NoError(t, err)
	assert.Equal(t, 77, again.CurrencySoft)
}

func TestPlayerService_Profile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	profile, err := env.services.Player.Profile(ctx, "bob-456")
	require.NoError(t, err)
	assert.Equal(t, "bob-456", profile.Player.PlayerID)
	assert.Nil(t, profile.ActiveRun)
	assert.Equal(t, 20, profile.ArenaEntryCost[domain.ArenaSmall])
	assert.Equal(t, 80, profile.ArenaEntryCost[domain.ArenaDaily])
	assert.Equal(t, 200, profile.ArenaEntryCost[domain.ArenaWeekly])

	run, err := env.services.Run.Start(ctx, "bob-456")
	require.NoError(t, err)

	profile, err = env.services.Player.Profile(ctx, "bob-456")
	require.NoError(t, err)
	require.NotNil(t, profile.ActiveRun)
	assert.Equal(t, run.RunID, profile.ActiveRun.RunID)
}

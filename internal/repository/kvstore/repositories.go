// Package kvstore implements the repositories over the opaque key-value
// collaborator. All values are JSON; list-shaped data (a player's build
// slots, a season's entry ids) is kept as explicit index keys because the
// store cannot scan.
package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/theo/arena-forge/internal/kv"
	"github.com/theo/arena-forge/internal/repository"
)

func NewRepositories(store kv.Store) *repository.Repositories {
	return &repository.Repositories{
		Player:      &PlayerRepo{store: store},
		Run:         &RunRepo{store: store},
		Build:       &BuildRepo{store: store},
		Entry:       &EntryRepo{store: store},
		Leaderboard: &LeaderboardRepo{store: store},
	}
}

func keyPlayer(playerID string) string { return "player:" + playerID }
func keyRun(playerID string) string    { return "run:" + playerID }
func keyBuild(buildID string) string   { return "build:" + buildID }
func keySlots(playerID string) string  { return "build_slots:" + playerID }
func keyEntry(entryID string) string   { return "arena_entry:" + entryID }

func keySeason(arenaType, seasonID string) string {
	return fmt.Sprintf("season_entries:%s:%s", arenaType, seasonID)
}
func keyLeaderboard(arenaType, seasonID string) string {
	return fmt.Sprintf("leaderboard:%s:%s", arenaType, seasonID)
}

// getJSON loads and decodes one key. found is false when the key is absent.
func getJSON(ctx context.Context, store kv.Store, key string, out any) (bool, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func setJSON(ctx context.Context, store kv.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Set(ctx, key, raw, 0)
}

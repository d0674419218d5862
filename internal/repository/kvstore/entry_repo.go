package kvstore

import (
	"context"
	"slices"

	"github.com/theo/arena-forge/internal/domain"
	"github.com/theo/arena-forge/internal/kv"
)

type EntryRepo struct {
	store kv.Store
}

func (r *EntryRepo) Save(ctx context.Context, entry *domain.ArenaEntry) error {
	if err := setJSON(ctx, r.store, keyEntry(entry.EntryID), entry); err != nil {
		return err
	}

	seasonKey := keySeason(string(entry.ArenaType), entry.SeasonID)
	var ids []string
	if _, err := getJSON(ctx, r.store, seasonKey, &ids); err != nil {
		return err
	}
	if !slices.Contains(ids, entry.EntryID) {
		ids = append(ids, entry.EntryID)
		return setJSON(ctx, r.store, seasonKey, ids)
	}
	return nil
}

func (r *EntryRepo) ListSeason(ctx context.Context, arenaType domain.ArenaType, seasonID string) ([]*domain.ArenaEntry, error) {
	var ids []string
	if _, err := getJSON(ctx, r.store, keySeason(string(arenaType), seasonID), &ids); err != nil {
		return nil, err
	}

	entries := make([]*domain.ArenaEntry, 0, len(ids))
	for _, id := range ids {
		var entry domain.ArenaEntry
		found, err := getJSON(ctx, r.store, keyEntry(id), &entry)
		if err != nil {
			return nil, err
		}
		if found {
			entries = append(entries, &entry)
		}
	}
	return entries, nil
}

package kvstore

import (
	"context"
	"sort"

	"github.com/theo/arena-forge/internal/domain"
	"github.com/theo/arena-forge/internal/kv"
)

type BuildRepo struct {
	store kv.Store
}

// slotRef points a player's slot at the build occupying it.
type slotRef struct {
	BuildID   string `json:"buildId"`
	SlotIndex int    `json:"slotIndex"`
}

func (r *BuildRepo) Get(ctx context.Context, buildID string) (*domain.Build, error) {
	var build domain.Build
	found, err := getJSON(ctx, r.store, keyBuild(buildID), &build)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrBuildNotFound
	}
	return &build, nil
}

func (r *BuildRepo) Save(ctx context.Context, build *domain.Build) error {
	if err := setJSON(ctx, r.store, keyBuild(build.BuildID), build); err != nil {
		return err
	}

	var slots []slotRef
	if _, err := getJSON(ctx, r.store, keySlots(build.PlayerID), &slots); err != nil {
		return err
	}

	// One build per slot: replace whatever held this slot before.
	filtered := slots[:0]
	for _, s := range slots {
		if s.SlotIndex != build.SlotIndex {
			filtered = append(filtered, s)
		}
	}
	filtered = append(filtered, slotRef{BuildID: build.BuildID, SlotIndex: build.SlotIndex})

	return setJSON(ctx, r.store, keySlots(build.PlayerID), filtered)
}

func (r *BuildRepo) ListByPlayer(ctx context.Context, playerID string) ([]*domain.Build, error) {
	var slots []slotRef
	if _, err := getJSON(ctx, r.store, keySlots(playerID), &slots); err != nil {
		return nil, err
	}

	builds := make([]*domain.Build, 0, len(slots))
	for _, s := range slots {
		var build domain.Build
		found, err := getJSON(ctx, r.store, keyBuild(s.BuildID), &build)
		if err != nil {
			return nil, err
		}
		if found {
			builds = append(builds, &build)
		}
	}

	sort.Slice(builds, func(i, j int) bool { return builds[i].SlotIndex < builds[j].SlotIndex })
	return builds, nil
}

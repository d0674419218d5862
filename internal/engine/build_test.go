package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/theo/arena-forge/internal/domain"
	"github.com/theo/arena-forge/internal/engine"
)

func pick(ct domain.ChoiceType, id string) domain.Choice {
	return domain.Choice{
		ChoiceID: string(ct) + ":" + id,
		Type:     ct,
		Item:     domain.Item{ID: id, Label: id},
	}
}

func TestBuildSnapshot_PartitionsPicks(t *testing.T) {
	run := &domain.Run{
		RunID:    "run-1",
		PlayerID: "player-1",
		Seed:     "seed-1",
		Power:    40,
		Economy:  6,
		Picks: []domain.Choice{
			pick(domain.ChoiceTypeTrait, "berserk"),
			pick(domain.ChoiceTypeUnit, "ember_mage"),
			pick(domain.ChoiceTypeModifier, "crit_core"),
			pick(domain.ChoiceTypeTrait, "arcane"),
		},
	}

	build := engine.BuildSnapshot(run, 3)

	assert.Equal(t, []string{"berserk", "arcane"}, build.Traits)
	assert.Equal(t, []string{"ember_mage"}, build.Units)
	assert.Equal(t, []string{"crit_core"}, build.Modifiers)
	assert.Equal(t, 3, build.SlotIndex)
	assert.Equal(t, "player-1", build.PlayerID)
	assert.Equal(t, "run-1", build.RunID)
	assert.Equal(t, "seed-1", build.Seed)
	assert.False(t, build.Locked)
	assert.Empty(t, build.LockedByArenaEntryID)
}

func TestBuildSnapshot_Scoring(t *testing.T) {
	tests := []struct {
		name      string
		picks     []domain.Choice
		power     int
		economy   int
		wantScore int
	}{
		{
			name: "no duplicates means no synergy",
			picks: []domain.Choice{
				pick(domain.ChoiceTypeTrait, "berserk"),
				pick(domain.ChoiceTypeTrait, "arcane"),
				pick(domain.ChoiceTypeUnit, "ember_mage"),
				pick(domain.ChoiceTypeUnit, "void_hunter"),
			},
			power:     30,
			economy:   5,
			wantScore: 35,
		},
		{
			name: "trait pair adds 5",
			picks: []domain.Choice{
				pick(domain.ChoiceTypeTrait, "berserk"),
				pick(domain.ChoiceTypeTrait, "berserk"),
			},
			power:     20,
			economy:   0,
			wantScore: 25,
		},
		{
			name: "unit triple adds 12",
			picks: []domain.Choice{
				pick(domain.ChoiceTypeUnit, "orb_knight"),
				pick(domain.ChoiceTypeUnit, "orb_knight"),
				pick(domain.ChoiceTypeUnit, "orb_knight"),
			},
			power:     10,
			economy:   2,
			wantScore: 24,
		},
		{
			name: "modifier duplicates never stack",
			picks: []domain.Choice{
				pick(domain.ChoiceTypeModifier, "crit_core"),
				pick(domain.ChoiceTypeModifier, "crit_core"),
			},
			power:     15,
			economy:   3,
			wantScore: 18,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := &domain.Run{Power: tt.power, Economy: tt.economy, Picks: tt.picks}
			build := engine.BuildSnapshot(run, 0)
			assert.Equal(t, tt.wantScore, build.PowerScore)
		})
	}
}

func TestBuildSnapshot_Deterministic(t *testing.T) {
	run := &domain.Run{
		Power:   22,
		Economy: 4,
		Picks: []domain.Choice{
			pick(domain.ChoiceTypeTrait, "swift"),
			pick(domain.ChoiceTypeUnit, "storm_scout"),
			pick(domain.ChoiceTypeUnit, "storm_scout"),
		},
	}

	a := engine.BuildSnapshot(run, 5)
	b := engine.BuildSnapshot(run, 5)

	// Ids and timestamps are fresh each call; everything derived is stable.
	assert.Equal(t, a.PowerScore, b.PowerScore)
	assert.Equal(t, a.Traits, b.Traits)
	assert.Equal(t, a.Units, b.Units)
	assert.Equal(t, a.Modifiers, b.Modifiers)
	assert.Equal(t, a.SlotIndex, b.SlotIndex)
}

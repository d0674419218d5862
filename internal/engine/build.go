package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/theo/arena-forge/internal/domain"
)

// countDupes scores intentional repetition: each id contributes count-1 once
// it appears more than once.
func countDupes(ids []string) int {
	counts := make(map[string]int, len(ids))
	for _, id := range ids {
		counts[id]++
	}
	score := 0
	for _, c := range counts {
		if c > 1 {
			score += c - 1
		}
	}
	return score
}

// BuildSnapshot converts a finished run into a scored build for the given
// slot. Synergy rewards repeated traits and units; modifiers never stack.
func BuildSnapshot(run *domain.Run, slotIndex int) *domain.Build {
	var traitIDs, unitIDs, modifierIDs []string
	for _, p := range run.Picks {
		switch p.Type {
		case domain.ChoiceTypeTrait:
			traitIDs = append(traitIDs, p.Item.ID)
		case domain.ChoiceTypeUnit:
			unitIDs = append(unitIDs, p.Item.ID)
		case domain.ChoiceTypeModifier:
			modifierIDs = append(modifierIDs, p.Item.ID)
		}
	}

	synergy := countDupes(traitIDs)*5 + countDupes(unitIDs)*6

	return &domain.Build{
		BuildID:    uuid.NewString(),
		PlayerID:   run.PlayerID,
		RunID:      run.RunID,
		Traits:     traitIDs,
		Units:      unitIDs,
		Modifiers:  modifierIDs,
		PowerScore: run.Power + run.Economy + synergy,
		Seed:       run.Seed,
		SlotIndex:  slotIndex,
		CreatedAt:  time.Now().UTC(),
	}
}

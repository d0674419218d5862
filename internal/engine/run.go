package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/theo/arena-forge/internal/domain"
)

const (
	// MaxRounds is how many rounds a run survives before it can be banked.
	MaxRounds = 10

	startHP    = 100
	startPower = 12
)

// StartRun creates a fresh run for the player with a random seed and the
// round-1 draft already rolled.
func StartRun(playerID string) *domain.Run {
	seed := uuid.NewString()
	return &domain.Run{
		RunID:          uuid.NewString(),
		PlayerID:       playerID,
		Seed:           seed,
		StartedAt:      time.Now().UTC(),
		Round:          0,
		HP:             startHP,
		Economy:        0,
		Power:          startPower,
		Picks:          []domain.Choice{},
		Status:         domain.RunStatusActive,
		CurrentChoices: RoundChoices(seed, 1),
	}
}

// ApplyChoice applies one of the current draft's cards to the run and plays
// the combat tick for the new round. The run transitions to failed when hp
// reaches zero and to ready_to_finish after MaxRounds; both are terminal and
// clear the draft.
func ApplyChoice(run *domain.Run, choiceIndex int) error {
	if choiceIndex < 0 || choiceIndex >= len(run.CurrentChoices) {
		return domain.ErrInvalidChoice
	}
	choice := run.CurrentChoices[choiceIndex]

	run.Picks = append(run.Picks, choice)
	run.Power += choice.Item.Power
	run.HP += choice.Item.HP
	run.Economy += choice.Item.Economy

	round := run.Round + 1
	enemyPower := 14 + round*4 + seededRange(run.Seed, fmt.Sprintf("enemy:%d", round), 8)
	playerRoll := run.Power + seededRange(run.Seed, fmt.Sprintf("player:%d", round), 6)

	if diff := enemyPower - playerRoll; diff > 0 {
		run.HP -= diff / 2
		if run.HP < 0 {
			run.HP = 0
		}
	}
	run.Round = round

	switch {
	case run.HP <= 0:
		run.Status = domain.RunStatusFailed
		run.CurrentChoices = []domain.Choice{}
	case run.Round >= MaxRounds:
		run.Status = domain.RunStatusReadyToFinish
		run.CurrentChoices = []domain.Choice{}
	default:
		run.CurrentChoices = RoundChoices(run.Seed, run.Round+1)
	}
	return nil
}

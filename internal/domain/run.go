package domain

import "time"

type RunStatus string

const (
	RunStatusActive        RunStatus = "active"
	RunStatusFailed        RunStatus = "failed"
	RunStatusReadyToFinish RunStatus = "ready_to_finish"
)

type ChoiceType string

const (
	ChoiceTypeTrait    ChoiceType = "trait"
	ChoiceTypeUnit     ChoiceType = "unit"
	ChoiceTypeModifier ChoiceType = "modifier"
)

// Item is one catalog card: a trait, unit or modifier with its stat deltas.
type Item struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Power   int    `json:"power"`
	HP      int    `json:"hp,omitempty"`
	Economy int    `json:"economy,omitempty"`
}

// Choice is one of the three cards offered in a round. It is a pure function
// of (seed, round, slot) and never changes once drafted.
type Choice struct {
	ChoiceID string     `json:"choiceId"`
	Type     ChoiceType `json:"type"`
	Item     Item       `json:"item"`
}

// Run is one playthrough. A player has at most one: the run store is keyed
// by playerId, so starting a new run replaces any unfinished one.
type Run struct {
	RunID          string    `json:"runId"`
	PlayerID       string    `json:"playerId"`
	Seed           string    `json:"seed"`
	StartedAt      time.Time `json:"startedAt"`
	Round          int       `json:"round"`
	HP             int       `json:"hp"`
	Economy        int       `json:"economy"`
	Power          int       `json:"power"`
	Picks          []Choice  `json:"picks"`
	Status         RunStatus `json:"status"`
	CurrentChoices []Choice  `json:"currentChoices"`
}

// Terminal reports whether the run can no longer accept choices.
func (r *Run) Terminal() bool {
	return r.Status != RunStatusActive
}

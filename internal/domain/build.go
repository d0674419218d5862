package domain

import "time"

// MaxBuildSlots is the number of build slots each player owns.
const MaxBuildSlots = 10

// Build is a scored snapshot of a finished run's picks, held in one of the
// player's fixed slots. Saving to an occupied slot overwrites it.
type Build struct {
	BuildID              string    `json:"buildId"`
	PlayerID             string    `json:"playerId"`
	RunID                string    `json:"runId"`
	Traits               []string  `json:"traits"`
	Units                []string  `json:"units"`
	Modifiers            []string  `json:"modifiers"`
	PowerScore           int       `json:"powerScore"`
	Seed                 string    `json:"seed"`
	SlotIndex            int       `json:"slotIndex"`
	CreatedAt            time.Time `json:"createdAt"`
	Locked               bool      `json:"locked"`
	LockedByArenaEntryID string    `json:"lockedByArenaEntryId,omitempty"`
}

package domain

import "time"

type ArenaType string

const (
	ArenaSmall  ArenaType = "small"
	ArenaDaily  ArenaType = "daily"
	ArenaWeekly ArenaType = "weekly"
)

// ArenaTypes lists the supported cadences.
var ArenaTypes = []ArenaType{ArenaSmall, ArenaDaily, ArenaWeekly}

// Valid reports whether t is a known cadence.
func (t ArenaType) Valid() bool {
	switch t {
	case ArenaSmall, ArenaDaily, ArenaWeekly:
		return true
	}
	return false
}

// ArenaWindow identifies one concrete season of a recurring arena. It is
// derived from wall-clock time and never persisted.
type ArenaWindow struct {
	ArenaType     ArenaType `json:"arenaType"`
	SeasonID      string    `json:"seasonId"`
	LockAt        time.Time `json:"lockAt"`
	ResultAt      time.Time `json:"resultAt"`
	WindowStartAt time.Time `json:"windowStartAt"`
}

type EntryStatus string

const (
	EntryStatusPending  EntryStatus = "pending"
	EntryStatusResolved EntryStatus = "resolved"
	// EntryStatusCancelled is checked by the duplicate-entry guard but no
	// flow sets it yet; reserved for a refund path.
	EntryStatusCancelled EntryStatus = "cancelled"
)

// Reward is what one entry earned at settlement.
type Reward struct {
	Coins int `json:"coins"`
	Cups  int `json:"cups"`
	MMR   int `json:"mmr"`
}

// ArenaEntry is one build submitted into one season. Entries are resolved
// exactly once and never deleted.
type ArenaEntry struct {
	EntryID    string      `json:"entryId"`
	ArenaType  ArenaType   `json:"arenaType"`
	SeasonID   string      `json:"seasonId"`
	PlayerID   string      `json:"playerId"`
	BuildID    string      `json:"buildId"`
	PowerScore int         `json:"powerScore"`
	LockAt     time.Time   `json:"lockAt"`
	ResultAt   time.Time   `json:"resultAt"`
	Status     EntryStatus `json:"status"`
	Rank       int         `json:"rank,omitempty"`
	Reward     *Reward     `json:"reward,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	ResolvedAt *time.Time  `json:"resolvedAt,omitempty"`
	EntryCost  int         `json:"entryCost"`
}

// LeaderboardRow is one line of a season's published snapshot.
type LeaderboardRow struct {
	Rank     int    `json:"rank"`
	Score    int    `json:"score"`
	PlayerID string `json:"playerId"`
	Nickname string `json:"nickname"`
}

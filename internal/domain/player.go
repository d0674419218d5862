package domain

// DefaultMMR is the rating every player starts with in each arena cadence.
const DefaultMMR = 1000

type PlayerStats struct {
	RunsStarted  int `json:"runsStarted"`
	RunsFinished int `json:"runsFinished"`
	ArenaEntries int `json:"arenaEntries"`
	Wins         int `json:"wins"`
}

type Player struct {
	PlayerID          string      `json:"playerId"`
	Nickname          string      `json:"nickname"`
	Wallet            string      `json:"wallet,omitempty"`
	CurrencySoft      int         `json:"currency_soft"`
	CurrencyHard      int         `json:"currency_hard"`
	Cups              int         `json:"cups"`
	LeaderboardPoints int         `json:"leaderboard_points"`
	MMRSmall          int         `json:"mmr_small"`
	MMRDaily          int         `json:"mmr_daily"`
	MMRWeekly         int         `json:"mmr_weekly"`
	Stats             PlayerStats `json:"stats"`
}

// NewPlayer returns a player with starting defaults. Players are created
// lazily the first time an id shows up.
func NewPlayer(playerID string) *Player {
	nick := playerID
	if len(nick) > 6 {
		nick = nick[:6]
	}
	return &Player{
		PlayerID:  playerID,
		Nickname:  "Player-" + nick,
		MMRSmall:  DefaultMMR,
		MMRDaily:  DefaultMMR,
		MMRWeekly: DefaultMMR,
	}
}

// AddMMR credits rating for the given cadence.
func (p *Player) AddMMR(arenaType ArenaType, delta int) {
	switch arenaType {
	case ArenaSmall:
		p.MMRSmall += delta
	case ArenaDaily:
		p.MMRDaily += delta
	case ArenaWeekly:
		p.MMRWeekly += delta
	}
}

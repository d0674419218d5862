package engine

import "github.com/theo/arena-forge/internal/domain"

// Top-5 coin payouts per cadence; everyone else gets the floor.
var coinPools = map[domain.ArenaType][]int{
	domain.ArenaSmall:  {120, 90, 70, 50, 35},
	domain.ArenaDaily:  {500, 350, 250, 150, 80},
	domain.ArenaWeekly: {2000, 1200, 800, 500, 250},
}

const coinFloor = 20

var entryCosts = map[domain.ArenaType]int{
	domain.ArenaSmall:  20,
	domain.ArenaDaily:  80,
	domain.ArenaWeekly: 200,
}

// RewardForRank computes the payout for a settled rank. Coins are strictly
// decreasing across the top five, cups and mmr taper but never drop below 1.
func RewardForRank(arenaType domain.ArenaType, rank int) domain.Reward {
	coins := coinFloor
	if pool, ok := coinPools[arenaType]; ok && rank >= 1 && rank <= len(pool) {
		coins = pool[rank-1]
	}
	return domain.Reward{
		Coins: coins,
		Cups:  max(1, 12-rank),
		MMR:   max(1, 15-rank),
	}
}

// EntryCost returns the soft-currency price of entering a cadence.
func EntryCost(arenaType domain.ArenaType) int {
	if cost, ok := entryCosts[arenaType]; ok {
		return cost
	}
	return entryCosts[domain.ArenaSmall]
}

// EntryCosts returns the full price table, keyed by cadence.
func EntryCosts() map[domain.ArenaType]int {
	out := make(map[domain.ArenaType]int, len(entryCosts))
	for t, c := range entryCosts {
		out[t] = c
	}
	return out
}

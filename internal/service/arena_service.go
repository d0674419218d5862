package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/theo/arena-forge/internal/domain"
	"github.com/theo/arena-forge/internal/engine"
	"github.com/theo/arena-forge/internal/repository"
)

// SettlementNotifier is told when a season's leaderboard is published.
// The websocket hub implements it; a nil notifier disables broadcasts.
type SettlementNotifier interface {
	NotifySettled(arenaType domain.ArenaType, seasonID string, rows []domain.LeaderboardRow)
}

// ArenaService admits builds into seasons and performs lazy settlement:
// there is no scheduler, the first request that observes now >= resultAt
// settles the season. A per-season mutex serializes settlement and entry
// admission within the process; the store itself offers no transactions, so
// cross-instance exclusivity is not guaranteed.
type ArenaService struct {
	entryRepo       repository.EntryRepository
	buildRepo       repository.BuildRepository
	leaderboardRepo repository.LeaderboardRepository
	players         *PlayerService
	notifier        SettlementNotifier
	seasonLocks     *keyedMutex
	logger          zerolog.Logger
}

func NewArenaService(
	entryRepo repository.EntryRepository,
	buildRepo repository.BuildRepository,
	leaderboardRepo repository.LeaderboardRepository,
	players *PlayerService,
	notifier SettlementNotifier,
	logger zerolog.Logger,
) *ArenaService {
	return &ArenaService{
		entryRepo:       entryRepo,
		buildRepo:       buildRepo,
		leaderboardRepo: leaderboardRepo,
		players:         players,
		notifier:        notifier,
		seasonLocks:     newKeyedMutex(),
		logger:          logger.With().Str("service", "arena").Logger(),
	}
}

type EnterArenaInput struct {
	ArenaType domain.ArenaType
	PlayerID  string
	BuildID   string
}

// Enter admits a build into the current season. Checks run in order: arena
// type, build existence/ownership/lock, duplicate entry, funds. Entries are
// accepted until resultAt; lockAt is informational only.
func (s *ArenaService) Enter(ctx context.Context, in EnterArenaInput) (*domain.ArenaEntry, error) {
	if !in.ArenaType.Valid() {
		return nil, domain.ErrUnknownArenaType
	}

	build, err := s.buildRepo.Get(ctx, in.BuildID)
	if err != nil {
		return nil, err
	}
	if build.PlayerID != in.PlayerID {
		return nil, domain.ErrBuildNotOwned
	}
	if build.Locked {
		return nil, domain.ErrBuildLocked
	}

	window, err := engine.ArenaWindow(in.ArenaType, time.Now())
	if err != nil {
		return nil, err
	}

	unlock := s.seasonLocks.Lock(window.SeasonID)
	defer unlock()

	if _, err := s.resolveLocked(ctx, in.ArenaType, window.SeasonID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListSeason(ctx, in.ArenaType, window.SeasonID)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.PlayerID == in.PlayerID && e.Status != domain.EntryStatusCancelled {
			return nil, domain.ErrAlreadyEntered
		}
	}

	player, err := s.players.GetOrCreate(ctx, in.PlayerID)
	if err != nil {
		return nil, err
	}
	entryCost := engine.EntryCost(in.ArenaType)
	if player.CurrencySoft < entryCost {
		return nil, domain.ErrInsufficientFunds
	}

	entry := &domain.ArenaEntry{
		EntryID:    uuid.NewString(),
		ArenaType:  in.ArenaType,
		SeasonID:   window.SeasonID,
		PlayerID:   in.PlayerID,
		BuildID:    build.BuildID,
		PowerScore: build.PowerScore,
		LockAt:     window.LockAt,
		ResultAt:   window.ResultAt,
		Status:     domain.EntryStatusPending,
		CreatedAt:  time.Now().UTC(),
		EntryCost:  entryCost,
	}

	build.Locked = true
	build.LockedByArenaEntryID = entry.EntryID
	if err := s.buildRepo.Save(ctx, build); err != nil {
		return nil, err
	}
	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	player.CurrencySoft -= entryCost
	player.Stats.ArenaEntries++
	if err := s.players.Save(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("player_id", in.PlayerID).
		Str("season_id", window.SeasonID).
		Str("entry_id", entry.EntryID).
		Int("power_score", entry.PowerScore).
		Msg("arena entered")

	return entry, nil
}

// ArenaState is the live view of the current season for one player.
type ArenaState struct {
	Window              domain.ArenaWindow   `json:"window"`
	TotalEntries        int                  `json:"totalEntries"`
	MyEntries           []*domain.ArenaEntry `json:"myEntries"`
	EntryCost           int                  `json:"entryCost"`
	SecondsUntilResolve int64                `json:"secondsUntilResolve"`
}

func (s *ArenaService) State(ctx context.Context, arenaType domain.ArenaType, playerID string) (*ArenaState, error) {
	if !arenaType.Valid() {
		return nil, domain.ErrUnknownArenaType
	}
	window, err := engine.ArenaWindow(arenaType, time.Now())
	if err != nil {
		return nil, err
	}

	if _, err := s.ResolveArenaIfNeeded(ctx, arenaType, window.SeasonID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListSeason(ctx, arenaType, window.SeasonID)
	if err != nil {
		return nil, err
	}
	mine := make([]*domain.ArenaEntry, 0, 1)
	for _, e := range entries {
		if e.PlayerID == playerID {
			mine = append(mine, e)
		}
	}

	untilResolve := window.ResultAt.Unix() - time.Now().Unix()
	if untilResolve < 0 {
		untilResolve = 0
	}

	return &ArenaState{
		Window:              window,
		TotalEntries:        len(entries),
		MyEntries:           mine,
		EntryCost:           engine.EntryCost(arenaType),
		SecondsUntilResolve: untilResolve,
	}, nil
}

// Leaderboard holds the published rows of the current season.
type Leaderboard struct {
	SeasonID string                  `json:"seasonId"`
	Rows     []domain.LeaderboardRow `json:"rows"`
}

func (s *ArenaService) Leaderboard(ctx context.Context, arenaType domain.ArenaType) (*Leaderboard, error) {
	if !arenaType.Valid() {
		return nil, domain.ErrUnknownArenaType
	}
	window, err := engine.ArenaWindow(arenaType, time.Now())
	if err != nil {
		return nil, err
	}

	if _, err := s.ResolveArenaIfNeeded(ctx, arenaType, window.SeasonID); err != nil {
		return nil, err
	}

	rows, err := s.leaderboardRepo.Get(ctx, arenaType, window.SeasonID)
	if err != nil {
		return nil, err
	}
	return &Leaderboard{SeasonID: window.SeasonID, Rows: rows}, nil
}

// ResolveArenaIfNeeded settles the season if it is due, holding the season
// lock. Returns whether the season is settled after the call.
func (s *ArenaService) ResolveArenaIfNeeded(ctx context.Context, arenaType domain.ArenaType, seasonID string) (bool, error) {
	unlock := s.seasonLocks.Lock(seasonID)
	defer unlock()
	return s.resolveLocked(ctx, arenaType, seasonID)
}

// resolveLocked runs the settlement algorithm. Callers must hold the season
// lock. The sequence is: skip when empty, skip while the window is open,
// short-circuit when every entry is already resolved, otherwise rank by
// power score (earlier entry wins ties), credit rewards in rank order and
// publish the leaderboard snapshot. Store failures abort mid-loop and leave
// partial writes in place; the resolved flags make the next trigger resume
// idempotently for entries already paid.
func (s *ArenaService) resolveLocked(ctx context.Context, arenaType domain.ArenaType, seasonID string) (bool, error) {
	entries, err := s.entryRepo.ListSeason(ctx, arenaType, seasonID)
	if err != nil {
		return false, err
	}
	if len(entries) == 0 {
		return false, nil
	}
	if time.Now().Before(entries[0].ResultAt) {
		return false, nil
	}

	allResolved := true
	for _, e := range entries {
		if e.Status != domain.EntryStatusResolved {
			allResolved = false
			break
		}
	}
	if allResolved {
		return true, nil
	}

	sorted := make([]*domain.ArenaEntry, len(entries))
	copy(sorted, entries)
	sortEntries(sorted)

	rows := make([]domain.LeaderboardRow, 0, len(sorted))
	for i, entry := range sorted {
		rank := i + 1
		reward := engine.RewardForRank(arenaType, rank)
		resolvedAt := time.Now().UTC()

		entry.Rank = rank
		entry.Reward = &reward
		entry.Status = domain.EntryStatusResolved
		entry.ResolvedAt = &resolvedAt
		if err := s.entryRepo.Save(ctx, entry); err != nil {
			return false, err
		}

		player, err := s.players.GetOrCreate(ctx, entry.PlayerID)
		if err != nil {
			return false, err
		}
		player.CurrencySoft += reward.Coins
		player.Cups += reward.Cups
		player.LeaderboardPoints += reward.Cups
		player.AddMMR(arenaType, reward.MMR)
		if rank == 1 {
			player.Stats.Wins++
		}
		if err := s.players.Save(ctx, player); err != nil {
			return false, err
		}

		if err := s.unlockBuild(ctx, entry.BuildID); err != nil {
			return false, err
		}

		rows = append(rows, domain.LeaderboardRow{
			Rank:     rank,
			Score:    entry.PowerScore,
			PlayerID: entry.PlayerID,
			Nickname: player.Nickname,
		})
	}

	if err := s.leaderboardRepo.Save(ctx, arenaType, seasonID, rows); err != nil {
		return false, err
	}

	s.logger.Info().
		Str("season_id", seasonID).
		Str("arena_type", string(arenaType)).
		Int("entries", len(rows)).
		Msg("season settled")

	if s.notifier != nil {
		s.notifier.NotifySettled(arenaType, seasonID, rows)
	}
	return true, nil
}

// unlockBuild releases the settled entry's build. A build overwritten since
// entry is simply gone; that is not an error.
func (s *ArenaService) unlockBuild(ctx context.Context, buildID string) error {
	build, err := s.buildRepo.Get(ctx, buildID)
	if err != nil {
		if errors.Is(err, domain.ErrBuildNotFound) {
			return nil
		}
		return err
	}
	build.Locked = false
	build.LockedByArenaEntryID = ""
	return s.buildRepo.Save(ctx, build)
}

// sortEntries orders by power score descending, then by creation time
// ascending so the earlier entry wins ties.
func sortEntries(entries []*domain.ArenaEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0; j-- {
			a, b := entries[j-1], entries[j]
			if b.PowerScore > a.PowerScore ||
				(b.PowerScore == a.PowerScore && b.CreatedAt.Before(a.CreatedAt)) {
				entries[j-1], entries[j] = b, a
			} else {
				break
			}
		}
	}
}

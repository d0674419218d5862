package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/theo/arena-forge/internal/domain"
	"github.com/theo/arena-forge/internal/engine"
	"github.com/theo/arena-forge/internal/repository"
)

// Payout for banking a run: a flat base plus a bonus per round survived.
const (
	finishBaseReward     = 25
	finishPerRoundReward = 3
)

type RunService struct {
	runRepo   repository.RunRepository
	buildRepo repository.BuildRepository
	players   *PlayerService
	logger    zerolog.Logger
}

func NewRunService(runRepo repository.RunRepository, buildRepo repository.BuildRepository, players *PlayerService, logger zerolog.Logger) *RunService {
	return &RunService{
		runRepo:   runRepo,
		buildRepo: buildRepo,
		players:   players,
		logger:    logger.With().Str("service", "run").Logger(),
	}
}

// Start begins a fresh run. Any unfinished run the player had is replaced,
// since the run store keys by player.
func (s *RunService) Start(ctx context.Context, playerID string) (*domain.Run, error) {
	player, err := s.players.GetOrCreate(ctx, playerID)
	if err != nil {
		return nil, err
	}
	player.Stats.RunsStarted++
	if err := s.players.Save(ctx, player); err != nil {
		return nil, err
	}

	run := engine.StartRun(playerID)
	if err := s.runRepo.Save(ctx, run); err != nil {
		return nil, err
	}

	s.logger.Info().Str("player_id", playerID).Str("run_id", run.RunID).Msg("run started")
	return run, nil
}

// ApplyChoice advances the player's active run by one round.
func (s *RunService) ApplyChoice(ctx context.Context, playerID string, choiceIndex int) (*domain.Run, error) {
	if choiceIndex < 0 || choiceIndex > 2 {
		return nil, domain.ErrInvalidChoice
	}

	run, err := s.runRepo.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if run.Status != domain.RunStatusActive {
		return nil, domain.ErrRunNotActive
	}

	if err := engine.ApplyChoice(run, choiceIndex); err != nil {
		return nil, err
	}
	if err := s.runRepo.Save(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// RunResult summarizes a finished run for the client.
type RunResult struct {
	Status          domain.RunStatus `json:"status"`
	RoundsCompleted int              `json:"roundsCompleted"`
	HPLeft          int              `json:"hpLeft"`
}

// Finish banks a terminal run into a build slot, clears the run and pays
// out soft currency proportional to rounds survived. Failed runs may be
// banked too; their low power score is its own penalty.
func (s *RunService) Finish(ctx context.Context, playerID string, slotIndex int) (*domain.Build, *RunResult, error) {
	if slotIndex < 0 || slotIndex >= domain.MaxBuildSlots {
		return nil, nil, domain.ErrInvalidSlot
	}

	run, err := s.runRepo.Get(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	if run.Status != domain.RunStatusFailed && run.Status != domain.RunStatusReadyToFinish {
		return nil, nil, domain.ErrRunNotFinished
	}

	build := engine.BuildSnapshot(run, slotIndex)
	if err := s.buildRepo.Save(ctx, build); err != nil {
		return nil, nil, err
	}
	if err := s.runRepo.Clear(ctx, playerID); err != nil {
		return nil, nil, err
	}

	player, err := s.players.GetOrCreate(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	player.Stats.RunsFinished++
	player.CurrencySoft += finishBaseReward + run.Round*finishPerRoundReward
	if err := s.players.Save(ctx, player); err != nil {
		return nil, nil, err
	}

	s.logger.Info().
		Str("player_id", playerID).
		Str("build_id", build.BuildID).
		Int("power_score", build.PowerScore).
		Int("slot", slotIndex).
		Msg("run banked")

	return build, &RunResult{
		Status:          run.Status,
		RoundsCompleted: run.Round,
		HPLeft:          run.HP,
	}, nil
}

// Builds lists the player's banked builds ordered by slot.
func (s *RunService) Builds(ctx context.Context, playerID string) ([]*domain.Build, error) {
	return s.buildRepo.ListByPlayer(ctx, playerID)
}

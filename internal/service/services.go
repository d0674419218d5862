package service

import (
	"github.com/rs/zerolog"
	"github.com/theo/arena-forge/internal/repository"
)

type Services struct {
	Player *PlayerService
	Run    *RunService
	Arena  *ArenaService
}

func NewServices(repos *repository.Repositories, logger zerolog.Logger, notifier SettlementNotifier) *Services {
	player := NewPlayerService(repos.Player, repos.Run)
	return &Services{
		Player: player,
		Run:    NewRunService(repos.Run, repos.Build, player, logger),
		Arena:  NewArenaService(repos.Entry, repos.Build, repos.Leaderboard, player, notifier, logger),
	}
}

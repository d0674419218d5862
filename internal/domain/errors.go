package domain

import "errors"

// Run errors
var (
	ErrRunNotFound    = errors.New("active run not found")
	ErrRunNotActive   = errors.New("run is not active")
	ErrRunNotFinished = errors.New("run is not ready to finish")
	ErrInvalidChoice  = errors.New("choice index must be 0, 1 or 2")
	ErrInvalidSlot    = errors.New("slot index out of range")
)

// Build errors
var (
	ErrBuildNotFound = errors.New("build not found")
	ErrBuildNotOwned = errors.New("build does not belong to player")
	ErrBuildLocked   = errors.New("build is already locked in arena")
)

// Arena errors
var (
	ErrUnknownArenaType  = errors.New("unknown arena type")
	ErrAlreadyEntered    = errors.New("player already entered this arena season")
	ErrInsufficientFunds = errors.New("not enough coins for arena entry")
)

// Player errors
var (
	ErrPlayerNotFound = errors.New("player not found")
)

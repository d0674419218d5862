package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/theo/arena-forge/internal/domain"
)

type envelope map[string]interface{}

func respondJSON(w http.ResponseWriter, status int, data envelope) {
	body := envelope{"ok": true}
	for k, v := range data {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	status, code := errorStatus(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{
		"ok": false,
		"error": envelope{
			"code":    code,
			"message": err.Error(),
		},
	})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrRunNotFound):
		return http.StatusNotFound, "run_not_found"
	case errors.Is(err, domain.ErrBuildNotFound):
		return http.StatusNotFound, "build_not_found"
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, "player_not_found"
	case errors.Is(err, domain.ErrInvalidChoice):
		return http.StatusBadRequest, "invalid_choice"
	case errors.Is(err, domain.ErrInvalidSlot):
		return http.StatusBadRequest, "invalid_slot"
	case errors.Is(err, domain.ErrUnknownArenaType):
		return http.StatusBadRequest, "unknown_arena_type"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, "insufficient_funds"
	case errors.Is(err, domain.ErrRunNotActive):
		return http.StatusConflict, "run_not_active"
	case errors.Is(err, domain.ErrRunNotFinished):
		return http.StatusConflict, "run_not_finished"
	case errors.Is(err, domain.ErrBuildLocked):
		return http.StatusConflict, "build_locked"
	case errors.Is(err, domain.ErrAlreadyEntered):
		return http.StatusConflict, "already_entered"
	case errors.Is(err, domain.ErrBuildNotOwned):
		return http.StatusForbidden, "build_not_owned"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

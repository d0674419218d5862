package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/theo/arena-forge/internal/api/middleware"
	"github.com/theo/arena-forge/internal/domain"
	"github.com/theo/arena-forge/internal/service"
)

type ArenaHandler struct {
	arenaService *service.ArenaService
}

func NewArenaHandler(arenaService *service.ArenaService) *ArenaHandler {
	return &ArenaHandler{arenaService: arenaService}
}

type EnterArenaRequest struct {
	BuildID string `json:"buildId"`
}

func (h *ArenaHandler) Enter(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req EnterArenaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.arenaService.Enter(r.Context(), service.EnterArenaInput{
		ArenaType: domain.ArenaType(chi.URLParam(r, "arenaType")),
		PlayerID:  playerID,
		BuildID:   req.BuildID,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{"entry": entry})
}

func (h *ArenaHandler) State(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	state, err := h.arenaService.State(r.Context(), domain.ArenaType(chi.URLParam(r, "arenaType")), playerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{"state": state})
}

func (h *ArenaHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.arenaService.Leaderboard(r.Context(), domain.ArenaType(chi.URLParam(r, "arenaType")))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{"leaderboard": board})
}

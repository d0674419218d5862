package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/theo/arena-forge/internal/api/middleware"
	"github.com/theo/arena-forge/internal/service"
)

type RunHandler struct {
	runService *service.RunService
}

func NewRunHandler(runService *service.RunService) *RunHandler {
	return &RunHandler{runService: runService}
}

type ChoiceRequest struct {
	ChoiceIndex int `json:"choiceIndex"`
}

type FinishRequest struct {
	SlotIndex int `json:"slotIndex"`
}

func (h *RunHandler) Start(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	run, err := h.runService.Start(r.Context(), playerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{"run": run})
}

func (h *RunHandler) Choice(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req ChoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	run, err := h.runService.ApplyChoice(r.Context(), playerID, req.ChoiceIndex)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{"run": run})
}

func (h *RunHandler) Finish(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req FinishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	build, result, err := h.runService.Finish(r.Context(), playerID, req.SlotIndex)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{"build": build, "result": result})
}

func (h *RunHandler) Builds(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	builds, err := h.runService.Builds(r.Context(), playerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{"builds": builds})
}

package handler

import (
	"net/http"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/leaderboard"
	model "github.com/MassBabyGeek/GeoGuess-backend/internal/models"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/utils"
	"github.com/gorilla/mux"
)

// GetLeaderboard récupère un classement avec le rang de chaque entrée
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	kind, err := leaderboard.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		respondError(w, err)
		return
	}

	entries, err := h.boards.Read(r.Context(), kind)
	if err != nil {
		respondError(w, err)
		return
	}
	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}

	utils.Success(w, entries)
}

// ResetLeaderboard supprime un classement (admin)
func (h *Handler) ResetLeaderboard(w http.ResponseWriter, r *http.Request) {
	kind, err := leaderboard.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.boards.Reset(r.Context(), kind); err != nil {
		respondError(w, err)
		return
	}

	utils.Message(w, "leaderboard "+string(kind)+" reset")
}

// ResetAllLeaderboards supprime le quotidien du jour et le cumulatif (admin)
func (h *Handler) ResetAllLeaderboards(w http.ResponseWriter, r *http.Request) {
	if err := h.boards.ResetAll(r.Context()); err != nil {
		respondError(w, err)
		return
	}

	utils.Message(w, "all leaderboards reset")
}

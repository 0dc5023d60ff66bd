package handler

import (
	"math"
	"net/http"
	"time"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/apperrors"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/game"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/leaderboard"
	model "github.com/MassBabyGeek/GeoGuess-backend/internal/models"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/utils"
	"github.com/gorilla/mux"
)

type submitScoreRequest struct {
	Identity    string        `json:"identity,omitempty"`
	DisplayName string        `json:"displayName"`
	DistanceKm  float64       `json:"distanceKm"`
	Position    *model.LatLng `json:"position,omitempty"`
}

// SubmitScore enregistre une tentative : calcul du score, fusion dans les
// deux classements, puis marquage de la participation. Une deuxième
// soumission dans la même manche est rejetée comme duplicate-play (409),
// jamais comme une erreur serveur.
func (h *Handler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	var req submitScoreRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Validation avant tout accès au store.
	if req.DisplayName == "" {
		respondError(w, apperrors.Validation("displayName is required"))
		return
	}
	if req.DistanceKm < 0 || math.IsNaN(req.DistanceKm) || math.IsInf(req.DistanceKm, 0) {
		respondError(w, apperrors.Validation("distanceKm must be a number >= 0"))
		return
	}

	ctx := r.Context()

	round, err := h.clock.Current(ctx)
	if err != nil {
		respondError(w, err)
		return
	}

	// Les joueurs anonymes ne sont pas soumis au verrou une-fois-par-manche.
	if req.Identity != "" {
		played, err := h.gate.HasPlayed(ctx, req.Identity, round.StartedAt)
		if err != nil {
			respondError(w, err)
			return
		}
		if played {
			respondError(w, &apperrors.DuplicatePlayError{Identity: req.Identity})
			return
		}
	}

	// Distance arrondie au km entier avant le calcul du score.
	distance := math.Round(req.DistanceKm)
	entry := model.LeaderboardEntry{
		Identity:   req.Identity,
		Name:       req.DisplayName,
		DistanceKm: distance,
		Score:      game.ComputeScore(distance),
		Position:   req.Position,
		Timestamp:  time.Now().UnixMilli(),
	}

	if err := h.boards.Submit(ctx, leaderboard.Daily, entry); err != nil {
		respondError(w, err)
		return
	}
	if err := h.boards.Submit(ctx, leaderboard.AllTime, entry); err != nil {
		respondError(w, err)
		return
	}

	if req.Identity != "" {
		if err := h.gate.RecordPlay(ctx, req.Identity); err != nil {
			respondError(w, err)
			return
		}
	}

	utils.Success(w, entry)
}

// GetPlayStatus retourne l'état de participation d'une identité et le
// compte à rebours de la manche.
func (h *Handler) GetPlayStatus(w http.ResponseWriter, r *http.Request) {
	identity := mux.Vars(r)["identity"]
	if identity == "" {
		respondError(w, apperrors.Validation("identity is required"))
		return
	}

	ctx := r.Context()

	round, err := h.clock.Current(ctx)
	if err != nil {
		respondError(w, err)
		return
	}

	played, err := h.gate.HasPlayed(ctx, identity, round.StartedAt)
	if err != nil {
		respondError(w, err)
		return
	}

	remaining, err := h.clock.TimeUntilNextRound(ctx, h.cfg.RoundDuration)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.Success(w, model.PlayStatus{
		HasPlayed:          played,
		TimeUntilNextRound: remaining.Milliseconds(),
	})
}

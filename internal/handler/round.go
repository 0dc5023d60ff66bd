package handler

import (
	"net/http"
	"time"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/utils"
)

// Notification envoyée à chaque rotation de manche.
const (
	roundStartTitle = "GeoGuess"
	roundStartBody  = "A new mystery location just dropped. Come take your guess!"
)

type roundResponse struct {
	Index              int     `json:"index"`
	Hint               string  `json:"hint"`
	StartedAt          *string `json:"startedAt,omitempty"`
	TimeUntilNextRound int64   `json:"timeUntilNextRound"`
}

// GetCurrentRound expose la manche active : index, indice et compte à
// rebours. La réponse (Answer) n'est jamais renvoyée aux joueurs.
func (h *Handler) GetCurrentRound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	round, err := h.clock.Current(ctx)
	if err != nil {
		respondError(w, err)
		return
	}

	location, err := h.catalog.Resolve(round.Index)
	if err != nil {
		respondError(w, err)
		return
	}

	remaining, err := h.clock.TimeUntilNextRound(ctx, h.cfg.RoundDuration)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := roundResponse{
		Index:              round.Index,
		Hint:               location.Hint,
		TimeUntilNextRound: remaining.Milliseconds(),
	}
	if !round.StartedAt.IsZero() {
		stamp := round.StartedAt.UTC().Format(time.RFC3339)
		resp.StartedAt = &stamp
	}

	utils.Success(w, resp)
}

// AdvanceRound fait tourner la manche puis notifie tous les abonnés.
// Un échec du fanout est loggé mais n'annule jamais la rotation déjà
// appliquée.
func (h *Handler) AdvanceRound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	round, location, err := h.clock.Advance(ctx)
	if err != nil {
		respondError(w, err)
		return
	}

	notified, err := h.fanout.FanoutAll(ctx, roundStartTitle, roundStartBody)
	if err != nil {
		utils.LogError("round advanced but fanout failed: %v", err)
	}

	utils.Success(w, map[string]interface{}{
		"index":         round.Index,
		"startedAt":     round.StartedAt.UTC().Format(time.RFC3339),
		"answer":        location.Answer,
		"hint":          location.Hint,
		"notifications": notified,
	})
}

type setIndexRequest struct {
	Index *int `json:"index"`
}

// SetRoundIndex est l'override administratif de l'index actif.
func (h *Handler) SetRoundIndex(w http.ResponseWriter, r *http.Request) {
	var req setIndexRequest
	if err := utils.DecodeJSON(r, &req); err != nil || req.Index == nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body, expected {\"index\": n}")
		return
	}

	round, location, err := h.clock.SetIndex(r.Context(), *req.Index)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"index":     round.Index,
		"startedAt": round.StartedAt.UTC().Format(time.RFC3339),
		"answer":    location.Answer,
	})
}

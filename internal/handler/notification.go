package handler

import (
	"net/http"
	"net/url"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/apperrors"
	model "github.com/MassBabyGeek/GeoGuess-backend/internal/models"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/utils"
	"github.com/gorilla/mux"
)

// Subscribe enregistre l'abonnement push d'une identité (une seule par
// identité, écrasée en cas de ré-abonnement).
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var record model.SubscriptionRecord
	if err := utils.DecodeJSON(r, &record); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if record.Identity == "" || record.DeliveryToken == "" {
		respondError(w, apperrors.Validation("identity and deliveryToken are required"))
		return
	}
	if u, err := url.Parse(record.DeliveryTarget); err != nil || u.Scheme == "" || u.Host == "" {
		respondError(w, apperrors.Validation("deliveryTarget must be an absolute URL"))
		return
	}

	if err := h.fanout.Subscribe(r.Context(), record); err != nil {
		respondError(w, err)
		return
	}

	utils.Message(w, "subscribed "+record.Identity)
}

// Unsubscribe désactive les notifications d'une identité.
func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	identity := mux.Vars(r)["identity"]
	if identity == "" {
		respondError(w, apperrors.Validation("identity is required"))
		return
	}

	if err := h.fanout.Unsubscribe(r.Context(), identity); err != nil {
		respondError(w, err)
		return
	}

	utils.Message(w, "unsubscribed "+identity)
}

type broadcastRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Broadcast envoie une notification manuelle à tous les abonnés (admin).
func (h *Handler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req broadcastRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Title == "" || req.Body == "" {
		respondError(w, apperrors.Validation("title and body are required"))
		return
	}

	result, err := h.fanout.FanoutAll(r.Context(), req.Title, req.Body)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.Success(w, result)
}

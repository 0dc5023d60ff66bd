package handler

import (
	"errors"
	"net/http"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/apperrors"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/config"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/game"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/leaderboard"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/notify"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/utils"
)

// Handler porte les composants du jeu. Chaque composant reçoit le store en
// dépendance explicite à la construction, aucun état global.
type Handler struct {
	cfg     *config.Config
	catalog *game.Catalog
	clock   *game.Clock
	gate    *game.PlayGate
	boards  *leaderboard.Store
	fanout  *notify.Fanout
}

func New(
	cfg *config.Config,
	catalog *game.Catalog,
	clock *game.Clock,
	gate *game.PlayGate,
	boards *leaderboard.Store,
	fanout *notify.Fanout,
) *Handler {
	return &Handler{
		cfg:     cfg,
		catalog: catalog,
		clock:   clock,
		gate:    gate,
		boards:  boards,
		fanout:  fanout,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}

// respondError convertit une erreur métier en statut HTTP.
func respondError(w http.ResponseWriter, err error) {
	var (
		validation *apperrors.ValidationError
		authz      *apperrors.AuthorizationError
		notFound   *apperrors.NotFoundError
		duplicate  *apperrors.DuplicatePlayError
		storage    *apperrors.StorageError
	)

	switch {
	case errors.As(err, &validation):
		utils.ErrorSimple(w, http.StatusBadRequest, validation.Msg)
	case errors.As(err, &authz):
		utils.ErrorSimple(w, http.StatusForbidden, authz.Msg)
	case errors.As(err, &notFound):
		utils.ErrorSimple(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &duplicate):
		// Issue normale du jeu, distincte d'une erreur serveur.
		utils.ErrorSimple(w, http.StatusConflict, "already played this round")
	case errors.As(err, &storage):
		utils.Error(w, http.StatusInternalServerError, "storage unavailable, retry later", err)
	default:
		utils.Error(w, http.StatusInternalServerError, "internal error", err)
	}
}

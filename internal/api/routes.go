package api

import (
	"net/http"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/config"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/handler"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/middleware"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter(h *handler.Handler, cfg *config.Config) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	// Routes admin : secret partagé vérifié avant tout accès au store
	adminRoutes := r.PathPrefix("/").Subrouter()
	adminRoutes.Use(middleware.AdminAuth(cfg))

	// Root - API documentation
	r.HandleFunc("/", h.RootHandler).Methods(http.MethodGet)

	// Rounds
	r.HandleFunc("/rounds/current", h.GetCurrentRound).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/rounds/advance", h.AdvanceRound).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/rounds/index", h.SetRoundIndex).Methods(http.MethodPut)

	// Play / scores
	r.HandleFunc("/play/{identity}", h.GetPlayStatus).Methods(http.MethodGet)
	r.HandleFunc("/scores", h.SubmitScore).Methods(http.MethodPost)

	// Leaderboard
	r.HandleFunc("/leaderboard/{kind}", h.GetLeaderboard).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/leaderboard/{kind}", h.ResetLeaderboard).Methods(http.MethodDelete)
	adminRoutes.HandleFunc("/leaderboard", h.ResetAllLeaderboards).Methods(http.MethodDelete)

	// Notifications
	r.HandleFunc("/notifications/subscribe", h.Subscribe).Methods(http.MethodPost)
	r.HandleFunc("/notifications/{identity}", h.Unsubscribe).Methods(http.MethodDelete)
	adminRoutes.HandleFunc("/notifications/broadcast", h.Broadcast).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}

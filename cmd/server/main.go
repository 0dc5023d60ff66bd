package main

import (
	"net/http"
	"os"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/api"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/config"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/database"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/game"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/handler"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/kv"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/leaderboard"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/logger"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/middleware"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/notify"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Load the location catalog
	catalog := game.DefaultCatalog()
	if cfg.LocationsFile != "" {
		catalog, err = game.LoadCatalog(cfg.LocationsFile)
		if err != nil {
			logger.Error("Could not load locations: %v", err)
			os.Exit(1)
		}
	}
	logger.Info("Catalog loaded with %d locations", catalog.Len())

	// Connect the shared key-value store
	var store kv.Store
	if cfg.UseMemoryStore() {
		logger.Warning("DB_HOST not set, using in-memory store (state is lost on restart)")
		store = kv.NewMemory()
	} else {
		pool, err := database.ConnectPostgres(cfg)
		if err != nil {
			logger.Error("Database connection failed: %v", err)
			os.Exit(1)
		}
		defer pool.Close()
		store = kv.NewPostgres(pool)
	}

	// Wire the game components, store passed explicitly
	h := handler.New(
		cfg,
		catalog,
		game.NewClock(store, catalog),
		game.NewPlayGate(store),
		leaderboard.New(store),
		notify.New(store, cfg.PushTimeout),
	)

	// Initialize routes
	router := api.SetupRouter(h, cfg)

	// Wrap router with CORS middleware
	wrapped := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, wrapped); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}

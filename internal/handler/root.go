package handler

import (
	"net/http"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "GeoGuess API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"rounds": []map[string]string{
				{"method": "GET", "path": "/rounds/current", "description": "Manche active (indice + compte à rebours)"},
				{"method": "POST", "path": "/rounds/advance", "description": "Passer au lieu suivant et notifier (admin)"},
				{"method": "PUT", "path": "/rounds/index", "description": "Forcer un index de lieu (admin)"},
			},
			"play": []map[string]string{
				{"method": "GET", "path": "/play/{identity}", "description": "Statut de participation de la manche"},
				{"method": "POST", "path": "/scores", "description": "Soumettre une tentative (une par manche)"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard/{kind}", "description": "Classement daily ou all-time"},
				{"method": "DELETE", "path": "/leaderboard/{kind}", "description": "Réinitialiser un classement (admin)"},
				{"method": "DELETE", "path": "/leaderboard", "description": "Réinitialiser les deux classements (admin)"},
			},
			"notifications": []map[string]string{
				{"method": "POST", "path": "/notifications/subscribe", "description": "Activer les notifications de manche"},
				{"method": "DELETE", "path": "/notifications/{identity}", "description": "Désactiver les notifications"},
				{"method": "POST", "path": "/notifications/broadcast", "description": "Diffusion manuelle (admin)"},
			},
			"system": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check"},
			},
		},
	}

	utils.Success(w, routes)
}

package middleware

import (
	"net/http"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/config"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const adminSecretHeader = "X-Admin-Secret"

// AdminAuth protège les routes administratives (rotation de manche, resets,
// broadcast). Le secret est comparé à son hash bcrypt avant tout accès au
// store ; un secret absent ou invalide est rejeté immédiatement.
func AdminAuth(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			secret := r.Header.Get(adminSecretHeader)
			if secret == "" {
				utils.ErrorSimple(w, http.StatusUnauthorized, "missing admin secret")
				return
			}

			if err := bcrypt.CompareHashAndPassword(
				[]byte(cfg.AdminSecretHash), []byte(secret),
			); err != nil {
				utils.ErrorSimple(w, http.StatusForbidden, "invalid admin secret")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

// Config regroupe toute la configuration du serveur, chargée depuis
// l'environnement.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"geoguess"`

	// Secret partagé des routes admin. Soit ADMIN_SECRET_HASH contient
	// directement un hash bcrypt, soit ADMIN_SECRET est haché au démarrage.
	AdminSecret     string `env:"ADMIN_SECRET"`
	AdminSecretHash string `env:"ADMIN_SECRET_HASH"`

	// Durée d'une manche, utilisée uniquement pour le compte à rebours :
	// la rotation reste déclenchée par un appel externe.
	RoundDuration time.Duration `env:"ROUND_DURATION" envDefault:"24h"`

	// Timeout d'un envoi de notification vers un deliveryTarget.
	PushTimeout time.Duration `env:"PUSH_TIMEOUT" envDefault:"10s"`

	// Fichier JSON optionnel remplaçant le catalogue de lieux embarqué.
	LocationsFile string `env:"LOCATIONS_FILE"`
}

// LoadConfig charge et valide la configuration.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not parse environment: %w", err)
	}

	if cfg.AdminSecretHash == "" {
		if cfg.AdminSecret == "" {
			return nil, fmt.Errorf("ADMIN_SECRET or ADMIN_SECRET_HASH must be set")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminSecret), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("could not hash admin secret: %w", err)
		}
		cfg.AdminSecretHash = string(hash)
	}

	return cfg, nil
}

// UseMemoryStore indique qu'aucune base n'est configurée (dev local).
func (c *Config) UseMemoryStore() bool {
	return c.DBHost == ""
}

package game

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/apperrors"
	model "github.com/MassBabyGeek/GeoGuess-backend/internal/models"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/kv"
)

// Clés du store pour l'état de la manche. Deux scalaires indépendants :
// les deux écritures de Advance ne sont pas atomiques entre elles, un
// lecteur concurrent peut voir le nouvel index avec l'ancien horodatage.
const (
	keyRoundIndex   = "current-location-index"
	keyRoundStarted = "location-last-updated"
)

// Clock possède l'index du lieu actif et l'horodatage de début de manche.
// La manche n'expire jamais d'elle-même : seul un appel externe à Advance
// ou SetIndex la fait tourner.
type Clock struct {
	store   kv.Store
	catalog *Catalog
	now     func() time.Time
}

func NewClock(store kv.Store, catalog *Catalog) *Clock {
	return &Clock{store: store, catalog: catalog, now: time.Now}
}

// Current lit la manche active. Si l'index n'a jamais été écrit, le système
// n'est pas initialisé : on retourne un index pseudo-aléatoire (comportement
// défini, pas une erreur) avec un horodatage zéro.
func (c *Clock) Current(ctx context.Context) (model.Round, error) {
	raw, ok, err := c.store.Get(ctx, keyRoundIndex)
	if err != nil {
		return model.Round{}, err
	}
	if !ok {
		return model.Round{Index: rand.Intn(c.catalog.Len())}, nil
	}

	var index int
	if err := json.Unmarshal(raw, &index); err != nil {
		return model.Round{}, apperrors.Storage("decode "+keyRoundIndex, err)
	}

	round := model.Round{Index: index}

	raw, ok, err = c.store.Get(ctx, keyRoundStarted)
	if err != nil {
		return model.Round{}, err
	}
	if ok {
		var stamp string
		if err := json.Unmarshal(raw, &stamp); err != nil {
			return model.Round{}, apperrors.Storage("decode "+keyRoundStarted, err)
		}
		startedAt, err := time.Parse(time.RFC3339Nano, stamp)
		if err != nil {
			return model.Round{}, apperrors.Storage("parse "+keyRoundStarted, err)
		}
		round.StartedAt = startedAt
	}

	return round, nil
}

// Advance passe au lieu suivant : (index + 1) mod N, horodatage = maintenant.
// Ni idempotent ni protégé contre deux appels simultanés ; le déclenchement
// doit rester une source planifiée unique.
func (c *Clock) Advance(ctx context.Context) (model.Round, model.Location, error) {
	current, err := c.Current(ctx)
	if err != nil {
		return model.Round{}, model.Location{}, err
	}
	next := (current.Index + 1) % c.catalog.Len()
	return c.write(ctx, next)
}

// SetIndex est l'override administratif : même effet qu'Advance mais avec
// l'index fourni par l'appelant.
func (c *Clock) SetIndex(ctx context.Context, index int) (model.Round, model.Location, error) {
	if index < 0 || index >= c.catalog.Len() {
		return model.Round{}, model.Location{}, apperrors.Validation(
			"index %d out of range [0, %d)", index, c.catalog.Len())
	}
	return c.write(ctx, index)
}

func (c *Clock) write(ctx context.Context, index int) (model.Round, model.Location, error) {
	startedAt := c.now().UTC()

	if err := c.store.Set(ctx, keyRoundIndex, index); err != nil {
		return model.Round{}, model.Location{}, err
	}
	// Précision nanoseconde : la comparaison strictement-après du PlayGate
	// ne doit pas dépendre d'un arrondi à la seconde.
	if err := c.store.Set(ctx, keyRoundStarted, startedAt.Format(time.RFC3339Nano)); err != nil {
		// L'index est déjà écrit : état mixte transitoire, assumé.
		return model.Round{}, model.Location{}, err
	}

	location, err := c.catalog.Resolve(index)
	if err != nil {
		return model.Round{}, model.Location{}, err
	}
	return model.Round{Index: index, StartedAt: startedAt}, location, nil
}

// TimeUntilNextRound retourne le temps restant avant la fin théorique de la
// manche : max(0, startedAt + duration - now). Zéro si rien n'est initialisé.
// Atteindre zéro n'a aucun effet tant qu'Advance n'est pas appelé.
func (c *Clock) TimeUntilNextRound(ctx context.Context, duration time.Duration) (time.Duration, error) {
	current, err := c.Current(ctx)
	if err != nil {
		return 0, err
	}
	if current.StartedAt.IsZero() {
		return 0, nil
	}
	remaining := current.StartedAt.Add(duration).Sub(c.now())
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

package game

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/apperrors"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/kv"
)

const playKeyPrefix = "user-play:"

// PlayGate garantit au plus une participation enregistrée par identité et
// par manche. Le PlayRecord n'est jamais supprimé : on compare simplement
// son horodatage au début de la manche courante.
type PlayGate struct {
	store kv.Store
	now   func() time.Time
}

func NewPlayGate(store kv.Store) *PlayGate {
	return &PlayGate{store: store, now: time.Now}
}

// HasPlayed retourne vrai ssi l'identité a un PlayRecord strictement
// postérieur à roundStart. Une participation d'une manche précédente ne
// compte pas, même si le record existe toujours.
func (g *PlayGate) HasPlayed(ctx context.Context, identity string, roundStart time.Time) (bool, error) {
	raw, ok, err := g.store.Get(ctx, playKeyPrefix+identity)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	var playedMs int64
	if err := json.Unmarshal(raw, &playedMs); err != nil {
		return false, apperrors.Storage("decode "+playKeyPrefix+identity, err)
	}

	return time.UnixMilli(playedMs).After(roundStart), nil
}

// RecordPlay écrase inconditionnellement le PlayRecord avec maintenant.
// Le contrat n'empêche pas un double enregistrement : l'appelant doit
// vérifier HasPlayed avant d'accepter une soumission (course documentée).
func (g *PlayGate) RecordPlay(ctx context.Context, identity string) error {
	return g.store.Set(ctx, playKeyPrefix+identity, g.now().UnixMilli())
}

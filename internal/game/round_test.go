package game

import (
	"context"
	"testing"
	"time"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/apperrors"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClock(t *testing.T) (*Clock, *Catalog) {
	t.Helper()
	catalog := DefaultCatalog()
	return NewClock(kv.NewMemory(), catalog), catalog
}

func TestCurrentUninitialized(t *testing.T) {
	clock, catalog := newTestClock(t)

	// Système jamais initialisé : index pseudo-aléatoire valide, pas d'erreur.
	round, err := clock.Current(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, round.Index, 0)
	assert.Less(t, round.Index, catalog.Len())
	assert.True(t, round.StartedAt.IsZero())
}

func TestAdvanceFullRotation(t *testing.T) {
	clock, catalog := newTestClock(t)
	ctx := context.Background()

	_, _, err := clock.SetIndex(ctx, 0)
	require.NoError(t, err)

	previous := time.Time{}
	for i := 1; i <= catalog.Len(); i++ {
		round, location, err := clock.Advance(ctx)
		require.NoError(t, err)

		want := i % catalog.Len()
		assert.Equal(t, want, round.Index)
		assert.False(t, round.StartedAt.Before(previous), "startedAt must be non-decreasing")
		previous = round.StartedAt

		expected, err := catalog.Resolve(want)
		require.NoError(t, err)
		assert.Equal(t, expected.Answer, location.Answer)
	}
}

func TestSetIndexOutOfRange(t *testing.T) {
	clock, catalog := newTestClock(t)
	ctx := context.Background()

	var validation *apperrors.ValidationError

	_, _, err := clock.SetIndex(ctx, -1)
	assert.ErrorAs(t, err, &validation)

	_, _, err = clock.SetIndex(ctx, catalog.Len())
	assert.ErrorAs(t, err, &validation)

	// Les bornes valides passent.
	_, _, err = clock.SetIndex(ctx, catalog.Len()-1)
	assert.NoError(t, err)
}

func TestTimeUntilNextRound(t *testing.T) {
	clock, _ := newTestClock(t)
	ctx := context.Background()

	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock.now = func() time.Time { return started }
	_, _, err := clock.SetIndex(ctx, 0)
	require.NoError(t, err)

	duration := 24 * time.Hour

	// Le compte à rebours décroît avec l'horloge murale.
	clock.now = func() time.Time { return started.Add(1 * time.Hour) }
	remaining, err := clock.TimeUntilNextRound(ctx, duration)
	require.NoError(t, err)
	assert.Equal(t, 23*time.Hour, remaining)

	clock.now = func() time.Time { return started.Add(10 * time.Hour) }
	shorter, err := clock.TimeUntilNextRound(ctx, duration)
	require.NoError(t, err)
	assert.Less(t, shorter, remaining)

	// Passé la durée configurée : zéro, jamais négatif, et ça reste zéro
	// tant qu'Advance n'est pas rappelé.
	clock.now = func() time.Time { return started.Add(48 * time.Hour) }
	expired, err := clock.TimeUntilNextRound(ctx, duration)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), expired)

	clock.now = func() time.Time { return started.Add(96 * time.Hour) }
	stillExpired, err := clock.TimeUntilNextRound(ctx, duration)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), stillExpired)
}

func TestTimeUntilNextRoundUninitialized(t *testing.T) {
	clock, _ := newTestClock(t)

	remaining, err := clock.TimeUntilNextRound(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), remaining)
}

func TestCatalogResolveOutOfRange(t *testing.T) {
	catalog := DefaultCatalog()

	var notFound *apperrors.NotFoundError
	_, err := catalog.Resolve(catalog.Len())
	assert.ErrorAs(t, err, &notFound)
	_, err = catalog.Resolve(-1)
	assert.ErrorAs(t, err, &notFound)
}

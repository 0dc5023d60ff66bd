package game

import (
	"context"
	"testing"
	"time"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasPlayedWithoutRecord(t *testing.T) {
	gate := NewPlayGate(kv.NewMemory())

	played, err := gate.HasPlayed(context.Background(), "42", time.Now())
	require.NoError(t, err)
	assert.False(t, played)
}

func TestPlayGateAcrossRounds(t *testing.T) {
	gate := NewPlayGate(kv.NewMemory())
	ctx := context.Background()

	roundOne := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	gate.now = func() time.Time { return roundOne.Add(2 * time.Hour) }
	require.NoError(t, gate.RecordPlay(ctx, "42"))

	played, err := gate.HasPlayed(ctx, "42", roundOne)
	require.NoError(t, err)
	assert.True(t, played)

	// Nouvelle manche : le record existe toujours mais il est antérieur
	// au nouveau début, donc l'identité peut rejouer.
	roundTwo := roundOne.Add(24 * time.Hour)
	played, err = gate.HasPlayed(ctx, "42", roundTwo)
	require.NoError(t, err)
	assert.False(t, played)

	// Rejouer dans la nouvelle manche referme le verrou.
	gate.now = func() time.Time { return roundTwo.Add(time.Minute) }
	require.NoError(t, gate.RecordPlay(ctx, "42"))

	played, err = gate.HasPlayed(ctx, "42", roundTwo)
	require.NoError(t, err)
	assert.True(t, played)
}

func TestHasPlayedBoundaryIsStrict(t *testing.T) {
	gate := NewPlayGate(kv.NewMemory())
	ctx := context.Background()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	gate.now = func() time.Time { return start }
	require.NoError(t, gate.RecordPlay(ctx, "7"))

	// lastPlayedAt == startedAt n'est pas strictement après : pas joué.
	played, err := gate.HasPlayed(ctx, "7", start)
	require.NoError(t, err)
	assert.False(t, played)
}

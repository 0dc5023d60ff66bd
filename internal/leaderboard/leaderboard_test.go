package leaderboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/apperrors"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/game"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/kv"
	model "github.com/MassBabyGeek/GeoGuess-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(kv.NewMemory())
	// Date figée : le quotidien ne doit pas basculer pendant un test.
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func entryFor(identity string, distanceKm float64) model.LeaderboardEntry {
	return model.LeaderboardEntry{
		Identity:   identity,
		Name:       "player " + identity,
		DistanceKm: distanceKm,
		Score:      game.ComputeScore(distanceKm),
		Timestamp:  time.Now().UnixMilli(),
	}
}

func TestDailyKeepsBestScore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Submit(ctx, Daily, entryFor("a", 500)))
	require.NoError(t, s.Submit(ctx, Daily, entryFor("a", 100)))

	entries, err := s.Read(ctx, Daily)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Identity)
	assert.Equal(t, game.ComputeScore(100), entries[0].Score)
	assert.Equal(t, 100.0, entries[0].DistanceKm)
	assert.Equal(t, 1, entries[0].Rank)

	// Une soumission moins bonne ne remplace pas l'existante.
	require.NoError(t, s.Submit(ctx, Daily, entryFor("a", 2000)))
	entries, err = s.Read(ctx, Daily)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, game.ComputeScore(100), entries[0].Score)
}

func TestAllTimeAccumulates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Submit(ctx, AllTime, entryFor("a", 500)))
	second := entryFor("a", 100)
	second.Timestamp = 12345
	require.NoError(t, s.Submit(ctx, AllTime, second))

	entries, err := s.Read(ctx, AllTime)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.InDelta(t, game.ComputeScore(500)+game.ComputeScore(100), entries[0].Score, 1e-9)
	assert.Equal(t, 600.0, entries[0].DistanceKm)
	assert.Equal(t, int64(12345), entries[0].Timestamp)
}

func TestAnonymousEntriesNeverMerge(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Submit(ctx, Daily, entryFor("", 500)))
	require.NoError(t, s.Submit(ctx, Daily, entryFor("", 500)))

	entries, err := s.Read(ctx, Daily)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLeaderboardTruncatesToTop100(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// 150 identités distinctes, les scores croissent avec i.
	for i := 0; i < 150; i++ {
		e := entryFor(fmt.Sprintf("id-%d", i), float64(15000-i*100))
		require.NoError(t, s.Submit(ctx, Daily, e))
	}

	entries, err := s.Read(ctx, Daily)
	require.NoError(t, err)
	require.Len(t, entries, 100)

	// Les 100 meilleures, triées décroissantes, rangs 1..100.
	for i := range entries {
		assert.Equal(t, i+1, entries[i].Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, entries[i-1].Score, entries[i].Score)
		}
	}
	assert.Equal(t, "id-149", entries[0].Identity)
	assert.Equal(t, "id-50", entries[99].Identity)
}

func TestReadEmptyLeaderboard(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.Read(context.Background(), AllTime)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResetAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Submit(ctx, Daily, entryFor("a", 100)))
	require.NoError(t, s.Submit(ctx, AllTime, entryFor("a", 100)))

	require.NoError(t, s.ResetAll(ctx))

	daily, err := s.Read(ctx, Daily)
	require.NoError(t, err)
	assert.Empty(t, daily)

	allTime, err := s.Read(ctx, AllTime)
	require.NoError(t, err)
	assert.Empty(t, allTime)
}

// failingDeleteStore fait échouer Delete sur une clé précise pour vérifier
// que ResetAll tente quand même l'autre branche.
type failingDeleteStore struct {
	kv.Store
	failKey string
}

func (f *failingDeleteStore) Delete(ctx context.Context, key string) error {
	if key == f.failKey {
		return apperrors.Storage("delete "+key, fmt.Errorf("boom"))
	}
	return f.Store.Delete(ctx, key)
}

func TestResetAllDoesNotSuppressOtherBranch(t *testing.T) {
	mem := kv.NewMemory()
	s := New(&failingDeleteStore{Store: mem, failKey: "leaderboard:all-time"})
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	require.NoError(t, s.Submit(ctx, Daily, entryFor("a", 100)))
	require.NoError(t, s.Submit(ctx, AllTime, entryFor("a", 100)))

	err := s.ResetAll(ctx)
	require.Error(t, err)

	// La branche quotidienne a bien été supprimée malgré l'échec all-time.
	daily, readErr := s.Read(ctx, Daily)
	require.NoError(t, readErr)
	assert.Empty(t, daily)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("daily")
	require.NoError(t, err)
	assert.Equal(t, Daily, kind)

	kind, err = ParseKind("all-time")
	require.NoError(t, err)
	assert.Equal(t, AllTime, kind)

	var validation *apperrors.ValidationError
	_, err = ParseKind("weekly")
	assert.ErrorAs(t, err, &validation)
}

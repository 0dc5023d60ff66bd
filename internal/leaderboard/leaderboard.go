// Package leaderboard maintient les deux classements du jeu : le quotidien
// (meilleur score par identité, clé datée UTC) et le cumulatif (sommes
// courantes, clé unique persistante).
package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/apperrors"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/kv"
	model "github.com/MassBabyGeek/GeoGuess-backend/internal/models"
)

// Kind distingue les deux politiques de fusion.
type Kind string

const (
	Daily   Kind = "daily"
	AllTime Kind = "all-time"
)

// maxEntries borne la taille d'un classement persisté.
const maxEntries = 100

// ParseKind valide un kind venant de l'extérieur.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Daily, AllTime:
		return Kind(s), nil
	}
	return "", apperrors.Validation("unknown leaderboard kind %q", s)
}

// Store lit et écrit des listes complètes d'entrées dans le store partagé.
// Le read-modify-write de Submit n'est pas transactionnel : deux soumissions
// simultanées peuvent se perdre mutuellement une entrée (comportement connu,
// rayon d'impact borné).
type Store struct {
	store kv.Store
	now   func() time.Time
}

func New(store kv.Store) *Store {
	return &Store{store: store, now: time.Now}
}

// key retourne la clé du classement : le quotidien bascule tout seul à
// minuit UTC, indépendamment des manches.
func (s *Store) key(kind Kind) string {
	if kind == Daily {
		return "leaderboard:daily:" + s.now().UTC().Format("2006-01-02")
	}
	return "leaderboard:all-time"
}

// Submit fusionne une entrée selon la politique du classement puis réécrit
// la liste triée et tronquée à 100.
//
// daily : remplace l'entrée existante seulement si le nouveau score est
// meilleur. all-time : additionne score et distance, reprend le nouvel
// horodatage. Les entrées sans identité sont toujours ajoutées telles quelles.
func (s *Store) Submit(ctx context.Context, kind Kind, entry model.LeaderboardEntry) error {
	entries, err := s.load(ctx, s.key(kind))
	if err != nil {
		return err
	}

	merged := false
	if entry.Identity != "" {
		for i := range entries {
			if entries[i].Identity != entry.Identity {
				continue
			}
			switch kind {
			case Daily:
				if entry.Score > entries[i].Score {
					entries[i] = entry
				}
			case AllTime:
				entries[i].Score += entry.Score
				entries[i].DistanceKm += entry.DistanceKm
				entries[i].Timestamp = entry.Timestamp
			}
			merged = true
			break
		}
	}
	if !merged {
		entries = append(entries, entry)
	}

	// Tri stable : à score égal, l'ordre d'arrivée est conservé.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	return s.store.Set(ctx, s.key(kind), entries)
}

// Read retourne le classement avec le rang 1-based de chaque entrée.
func (s *Store) Read(ctx context.Context, kind Kind) ([]model.LeaderboardEntry, error) {
	entries, err := s.load(ctx, s.key(kind))
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// Reset supprime entièrement un classement.
func (s *Store) Reset(ctx context.Context, kind Kind) error {
	return s.store.Delete(ctx, s.key(kind))
}

// ResetAll supprime le quotidien du jour et le cumulatif. Un échec d'une
// branche ne masque pas l'autre : les deux sont tentées, les erreurs jointes.
func (s *Store) ResetAll(ctx context.Context) error {
	return errors.Join(
		s.Reset(ctx, Daily),
		s.Reset(ctx, AllTime),
	)
}

func (s *Store) load(ctx context.Context, key string) ([]model.LeaderboardEntry, error) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var entries []model.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, apperrors.Storage("decode "+key, err)
	}
	return entries, nil
}

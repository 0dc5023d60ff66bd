package model

import "time"

// Round est la manche active : index dans le catalogue + horodatage de début.
// Persisté en deux clés séparées dans le store (voir internal/game/round.go).
type Round struct {
	Index     int       `json:"index"`
	StartedAt time.Time `json:"startedAt"` // zéro si le système n'est pas initialisé
}

// PlayStatus est la réponse de GET /play/{identity}
type PlayStatus struct {
	HasPlayed          bool  `json:"hasPlayed"`
	TimeUntilNextRound int64 `json:"timeUntilNextRound"` // millisecondes, jamais négatif
}

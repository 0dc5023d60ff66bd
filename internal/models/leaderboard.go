package model

// LeaderboardEntry est une ligne de classement. Identity est optionnelle :
// les entrées anonymes ne sont jamais dédupliquées.
type LeaderboardEntry struct {
	Identity   string  `json:"identity,omitempty"`
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distance"`
	Score      float64 `json:"score"`
	Position   *LatLng `json:"position,omitempty"`
	Timestamp  int64   `json:"timestamp"`      // epoch millisecondes
	Rank       int     `json:"rank,omitempty"` // 1-based, calculé à la lecture
}

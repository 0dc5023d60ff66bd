package model

// LatLng est une paire de coordonnées GPS (degrés décimaux)
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location est un lieu du catalogue fixe. Immutable, chargé au démarrage.
type Location struct {
	Position LatLng `json:"position"`
	Answer   string `json:"answer"` // nom du lieu, jamais exposé aux joueurs
	Hint     string `json:"hint"`
}

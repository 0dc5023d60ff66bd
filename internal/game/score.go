package game

import "math"

// ComputeScore convertit une distance (km) en score : 100 * e^(-d/2000).
// 0 km → 100 points, strictement décroissant, tend vers 0 sans l'atteindre.
// Les appelants arrondissent la distance au km entier avant l'appel.
func ComputeScore(distanceKm float64) float64 {
	return 100 * math.Exp(-distanceKm/2000)
}

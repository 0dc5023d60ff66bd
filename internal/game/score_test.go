package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScoreZeroDistance(t *testing.T) {
	assert.Equal(t, 100.0, ComputeScore(0))
}

func TestComputeScoreRange(t *testing.T) {
	distances := []float64{0, 1, 10, 100, 500, 1000, 2000, 5000, 10000, 20000}
	for _, d := range distances {
		score := ComputeScore(d)
		assert.Greater(t, score, 0.0, "distance %v", d)
		assert.LessOrEqual(t, score, 100.0, "distance %v", d)
	}
}

func TestComputeScoreStrictlyDecreasing(t *testing.T) {
	distances := []float64{0, 1, 10, 100, 500, 1000, 2000, 5000, 10000, 20000}
	for i := 1; i < len(distances); i++ {
		assert.Less(t, ComputeScore(distances[i]), ComputeScore(distances[i-1]),
			"score must decrease between %v and %v km", distances[i-1], distances[i])
	}
}

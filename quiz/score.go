package quiz

import (
	"math"

	"github.com/a-h/scentquiz/models"
)

const (
	MinMatchPercent = 10
	MaxMatchPercent = 99
)

// CosineSimilarity converts the squared euclidean distance between two
// L2-normalized vectors into their cosine similarity.
func CosineSimilarity(distance float64) float64 {
	return 1 - distance/2
}

// MatchPercent maps a squared distance onto a display percentage. Cosine
// similarity in [0.5, 1] maps linearly onto [0, 100], and the result is
// clamped to [MinMatchPercent, MaxMatchPercent].
func MatchPercent(distance float64) int {
	raw := (CosineSimilarity(distance) - 0.5) * 200
	if math.IsNaN(raw) {
		return MinMatchPercent
	}
	raw = math.Max(MinMatchPercent, math.Min(MaxMatchPercent, raw))
	return int(math.Round(raw))
}

// ResultMatch returns the percentage to display for a result. A percentage
// computed by the engine takes precedence over a distance.
func ResultMatch(r models.QuizResult) (percent int, ok bool) {
	if r.Match != nil {
		if math.IsNaN(*r.Match) || math.IsInf(*r.Match, 0) {
			return 0, false
		}
		return int(math.Round(*r.Match)), true
	}
	if r.Distance != nil {
		return MatchPercent(*r.Distance), true
	}
	return 0, false
}

package metrics

import "math"

// Confidence maps an observation count to a confidence value in [0, 1] using
// a logistic curve: 1 / (1 + e^(-k*(n - optimal/2))) with steepness
// k = 6/optimal. It is 0.0 at n = 0, reaches 0.5 at n = optimal/2, and
// approaches 1.0 as n approaches optimal and beyond.
func Confidence(sampleSize, optimalSize int) float64 {
	if sampleSize == 0 {
		return 0.0
	}
	k := 6.0 / float64(optimalSize)
	mid := float64(optimalSize) / 2.0
	confidence := 1.0 / (1.0 + math.Exp(-k*(float64(sampleSize)-mid)))
	return math.Min(1.0, confidence)
}

package gacha

import "math"

// validateWeights returns the weight total.
func validateWeights(weights []float64) (float64, error) {
	var total float64
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return 0, ErrInvalidWeights
		}
		total += w
	}
	if total <= 0 {
		return 0, ErrInvalidWeights
	}
	return total, nil
}

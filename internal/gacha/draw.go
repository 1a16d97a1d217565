package gacha

import "errors"

var ErrInvalidWeights = errors.New("invalid weights; need at least one positive finite weight")

// pick returns an index chosen proportionally to weights.
// Zero weights are never chosen.
func pick(weights []float64, rng RandomSource) (int, error) {
	total, err := validateWeights(weights)
	if err != nil {
		return -1, err
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	target := rng.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if target < w {
			return i, nil
		}
		target -= w
	}
	// float rounding can leave target just past the final bucket
	return last, nil
}

package utils

import (
	"fmt"

	"cosmossdk.io/math"
)

// SplitProRata divides amount across weights proportionally.
//
// Every share except the last is floor(amount * weight / totalWeight); the last
// share absorbs the remainder so that the shares always sum to amount exactly.
// Weights must be non-negative and sum to a positive total.
//
//	SplitProRata(10, [1, 1, 1]) == [3, 3, 4]
//	SplitProRata(-10, [1, 1, 1]) == [-4, -4, -2]
func SplitProRata(amount math.Int, weights []math.Int) ([]math.Int, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("no weights to split %s across", amount)
	}
	total := math.ZeroInt()
	for _, w := range weights {
		if w.IsNegative() {
			return nil, fmt.Errorf("invalid input: negative weight %s", w)
		}
		total = total.Add(w)
	}
	if !total.IsPositive() {
		return nil, fmt.Errorf("invalid input: total weight must be positive")
	}

	shares := make([]math.Int, len(weights))
	allocated := math.ZeroInt()
	for i := 0; i < len(weights)-1; i++ {
		shares[i] = MulDivInt(amount, weights[i], total)
		allocated = allocated.Add(shares[i])
	}
	shares[len(weights)-1] = amount.Sub(allocated)
	return shares, nil
}

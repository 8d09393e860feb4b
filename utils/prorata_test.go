package utils_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/utils"
)

func ints(vals ...int64) []math.Int {
	out := make([]math.Int, len(vals))
	for i, v := range vals {
		out[i] = math.NewInt(v)
	}
	return out
}

func TestSplitProRata(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		weights  []math.Int
		expected []math.Int
		errMsg   string
	}{
		{
			name:     "single weight takes everything",
			amount:   1_000,
			weights:  ints(7),
			expected: ints(1_000),
		},
		{
			name:     "remainder goes to last",
			amount:   10,
			weights:  ints(1, 1, 1),
			expected: ints(3, 3, 4),
		},
		{
			name:     "negative amounts floor toward negative infinity",
			amount:   -10,
			weights:  ints(1, 1, 1),
			expected: ints(-4, -4, -2),
		},
		{
			name:     "zero weight gets nothing",
			amount:   100,
			weights:  ints(0, 3, 1),
			expected: ints(0, 75, 25),
		},
		{
			name:    "no weights",
			amount:  1,
			weights: nil,
			errMsg:  "no weights",
		},
		{
			name:    "negative weight",
			amount:  1,
			weights: ints(2, -1),
			errMsg:  "negative weight",
		},
		{
			name:    "zero total",
			amount:  1,
			weights: ints(0, 0),
			errMsg:  "total weight must be positive",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			shares, err := utils.SplitProRata(math.NewInt(tc.amount), tc.weights)
			if tc.errMsg != "" {
				require.ErrorContains(t, err, tc.errMsg)
				return
			}
			require.NoError(t, err)
			require.Len(t, shares, len(tc.expected))
			for i := range shares {
				require.Equal(t, tc.expected[i].String(), shares[i].String(), "share %d", i)
			}

			sum := math.ZeroInt()
			for _, s := range shares {
				sum = sum.Add(s)
			}
			require.Equal(t, math.NewInt(tc.amount).String(), sum.String(), "shares must sum to the amount")
		})
	}
}

package utils_test

import (
	"slices"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/utils"
)

func TestFilterMapSum(t *testing.T) {
	liquidity := []int64{5, -3, 0, 12, 7}

	positive := slices.Collect(utils.Filter(liquidity, func(v int64) bool { return v > 0 }))
	require.Equal(t, []int64{5, 12, 7}, positive, "Filter")

	mapped := slices.Collect(utils.Map(positive, math.NewInt))
	require.Len(t, mapped, 3, "Map")

	tests := []struct {
		name     string
		values   []math.Int
		expected string
	}{
		{name: "empty", values: nil, expected: "0"},
		{name: "mapped", values: mapped, expected: "24"},
		{name: "mixed signs", values: []math.Int{math.NewInt(-10), math.NewInt(4), math.NewIntWithDecimal(1, 30)}, expected: "999999999999999999999999999994"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, utils.SumInts(slices.Values(tc.values)).String(), "SumInts")
		})
	}
}

func TestFilterStopsEarly(t *testing.T) {
	var seen []int
	for v := range utils.Filter([]int{1, 2, 3, 4}, func(int) bool { return true }) {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	require.Equal(t, []int{1, 2}, seen, "Filter yields until the consumer stops")
}

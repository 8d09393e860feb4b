package types_test

import (
	"sort"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/types"
)

func validVamm() types.Vamm {
	return types.Vamm{
		Immutable: types.VammImmutableConfig{MarketID: 1, Maturity: 1_800_000_000, MaxLiquidityPerTick: sdkmath.NewInt(1_000), TickSpacing: 60},
		Mutable:   types.DefaultVammMutableConfig(),
		State: types.VammState{
			SqrtPriceX96:               sdkmath.NewInt(1 << 40),
			Tick:                       -16096,
			Liquidity:                  sdkmath.ZeroInt(),
			ObservationCardinality:     1,
			ObservationCardinalityNext: 1,
		},
	}
}

func TestVamm_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(v *types.Vamm)
		expErrStr string
	}{
		{name: "valid"},
		{name: "zero market", mutate: func(v *types.Vamm) { v.Immutable.MarketID = 0 }, expErrStr: "market id must be positive"},
		{name: "nil phi", mutate: func(v *types.Vamm) { v.Mutable.PriceImpactPhi = sdkmath.LegacyDec{} }, expErrStr: "price impact phi must be non-negative"},
		{name: "negative inactive window", mutate: func(v *types.Vamm) { v.Mutable.InactiveWindowBeforeMaturity = -1 }, expErrStr: "inactive window"},
		{name: "inverted allowed range", mutate: func(v *types.Vamm) { v.Mutable.MinTickAllowed, v.Mutable.MaxTickAllowed = 0, -60 }, expErrStr: "allowed tick range"},
		{name: "allowed range beyond tick bounds", mutate: func(v *types.Vamm) { v.Mutable.MaxTickAllowed = types.MaxTick + 1 }, expErrStr: "allowed tick range"},
		{name: "zero sqrt price", mutate: func(v *types.Vamm) { v.State.SqrtPriceX96 = sdkmath.ZeroInt() }, expErrStr: "sqrt price must be positive"},
		{name: "negative liquidity", mutate: func(v *types.Vamm) { v.State.Liquidity = sdkmath.NewInt(-1) }, expErrStr: "liquidity must be non-negative"},
		{name: "tick outside allowed range", mutate: func(v *types.Vamm) { v.Mutable.MaxTickAllowed = -17000 }, expErrStr: "current tick -16096 outside"},
		{name: "no observations", mutate: func(v *types.Vamm) { v.State.ObservationCardinality = 0 }, expErrStr: "observation cardinality"},
		{name: "shrinking cardinality", mutate: func(v *types.Vamm) { v.State.ObservationCardinality = 4 }, expErrStr: "observation cardinality 4/1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := validVamm()
			if tc.mutate != nil {
				tc.mutate(&v)
			}
			err := v.Validate()
			if tc.expErrStr == "" {
				require.NoError(t, err, "Validate")
				return
			}
			require.ErrorContains(t, err, tc.expErrStr, "Validate")
		})
	}
}

func TestVamm_CheckTickRange(t *testing.T) {
	v := validVamm()
	v.Mutable.MinTickAllowed = -18000
	v.Mutable.MaxTickAllowed = -6000

	tests := []struct {
		name         string
		lower, upper int32
		expErr       bool
	}{
		{name: "aligned inside", lower: -17040, upper: -15000},
		{name: "whole allowed range", lower: -18000, upper: -6000},
		{name: "empty", lower: -15000, upper: -15000, expErr: true},
		{name: "inverted", lower: -15000, upper: -17040, expErr: true},
		{name: "below allowed", lower: -18060, upper: -15000, expErr: true},
		{name: "above allowed", lower: -15000, upper: -5940, expErr: true},
		{name: "unaligned lower", lower: -17050, upper: -15000, expErr: true},
		{name: "unaligned upper", lower: -17040, upper: -15001, expErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.CheckTickRange(tc.lower, tc.upper)
			if tc.expErr {
				require.ErrorIs(t, err, types.ErrInvalidTick, "CheckTickRange")
				return
			}
			require.NoError(t, err, "CheckTickRange")
		})
	}
}

func TestRangeKey(t *testing.T) {
	ranges := [][2]int32{
		{types.MinTick, types.MaxTick},
		{-60, 60},
		{-60, 120},
		{0, 60},
		{-120, -60},
		{60, 120},
	}
	keys := make([]uint64, len(ranges))
	for i, r := range ranges {
		keys[i] = types.RangeKey(r[0], r[1])
		lower, upper := types.SplitRangeKey(keys[i])
		require.Equal(t, r[0], lower, "lower of %v", r)
		require.Equal(t, r[1], upper, "upper of %v", r)
	}

	// keys sort by lower tick then upper tick
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	var ordered [][2]int32
	for _, k := range keys {
		lower, upper := types.SplitRangeKey(k)
		ordered = append(ordered, [2]int32{lower, upper})
	}
	require.Equal(t, [][2]int32{
		{types.MinTick, types.MaxTick},
		{-120, -60},
		{-60, 60},
		{-60, 120},
		{0, 60},
		{60, 120},
	}, ordered, "range key order")
}

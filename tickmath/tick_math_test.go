package tickmath_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/tickmath"
	"github.com/provlabs/datedirs/types"
)

func TestSqrtRatioAtTick(t *testing.T) {
	tests := []struct {
		name     string
		tick     int32
		expected string
		err      error
	}{
		{name: "zero tick is 2^96", tick: 0, expected: "79228162514264337593543950336"},
		{name: "tick 1", tick: 1, expected: "79232123823359799118286999568"},
		{name: "tick -1", tick: -1, expected: "79224201403219477170569942574"},
		{name: "five percent", tick: -16096, expected: "35430465601290701888012765807"},
		{name: "min tick", tick: tickmath.MinTick, expected: "4295128739"},
		{name: "max tick", tick: tickmath.MaxTick, expected: "1461446703485210103287273052203988822378723970342"},
		{name: "below min tick", tick: tickmath.MinTick - 1, err: types.ErrInvalidTick},
		{name: "above max tick", tick: tickmath.MaxTick + 1, err: types.ErrInvalidTick},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := tickmath.SqrtRatioAtTick(tc.tick)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, r.String())
		})
	}
}

func TestTickAtSqrtRatio(t *testing.T) {
	for _, tick := range []int32{tickmath.MinTick, -19500, -16096, -11040, -1, 0, 1, 60, 887000} {
		r := tickmath.MustSqrtRatioAtTick(tick)
		got, err := tickmath.TickAtSqrtRatio(r)
		require.NoError(t, err)
		require.Equal(t, tick, got, "exact ratio of tick %d", tick)

		if tick > tickmath.MinTick {
			got, err = tickmath.TickAtSqrtRatio(r.SubRaw(1))
			require.NoError(t, err)
			require.Equal(t, tick-1, got, "ratio just below tick %d", tick)
		}
	}

	got, err := tickmath.TickAtSqrtRatio(mustInt("37003954451033645982734144870"))
	require.NoError(t, err)
	require.Equal(t, int32(-15227), got)

	_, err = tickmath.TickAtSqrtRatio(math.NewInt(4295128738))
	require.ErrorIs(t, err, types.ErrInvalidTick)
}

func TestAlignTick(t *testing.T) {
	tests := []struct {
		tick, spacing, expected int32
	}{
		{tick: -16095, spacing: 60, expected: -16080},
		{tick: -16110, spacing: 60, expected: -16140},
		{tick: -16109, spacing: 60, expected: -16080},
		{tick: 29, spacing: 60, expected: 0},
		{tick: 30, spacing: 60, expected: 60},
		{tick: 120, spacing: 60, expected: 120},
		{tick: -7, spacing: 1, expected: -7},
	}
	for _, tc := range tests {
		require.Equal(t, tc.expected, tickmath.AlignTick(tc.tick, tc.spacing), "align %d to %d", tc.tick, tc.spacing)
	}
}

func mustInt(s string) math.Int {
	v, ok := math.NewIntFromString(s)
	if !ok {
		panic(s)
	}
	return v
}

package tickmath_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/tickmath"
	"github.com/provlabs/datedirs/types"
)

func TestPriceAtTick(t *testing.T) {
	tests := []struct {
		tick     int32
		expected string
	}{
		{tick: 0, expected: "0.010000000000000000"},
		{tick: -16096, expected: "0.050004080813062821"},
		{tick: -19500, expected: "0.070280023626359201"},
		{tick: -11040, expected: "0.030160402745274904"},
	}
	for _, tc := range tests {
		p, err := tickmath.PriceAtTick(tc.tick)
		require.NoError(t, err)
		require.Equal(t, tc.expected, p.String(), "price at tick %d", tc.tick)
	}

	_, err := tickmath.PriceAtTick(tickmath.MaxTick + 1)
	require.ErrorIs(t, err, types.ErrInvalidTick)
}

func TestPriceDecreasesWithTick(t *testing.T) {
	prev, err := tickmath.PriceAtTick(-30000)
	require.NoError(t, err)
	for tick := int32(-29990); tick <= 30000; tick += 10 {
		p, err := tickmath.PriceAtTick(tick)
		require.NoError(t, err)
		require.True(t, p.LT(prev), "price at %d should be below the price at %d", tick, tick-10)
		prev = p
	}
}

func TestTickAtPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		spacing  int32
		expected int32
		errIs    error
	}{
		{name: "one percent", price: "0.01", spacing: 1, expected: 0},
		{name: "five percent nearest", price: "0.05", spacing: 1, expected: -16095},
		{name: "five percent aligned", price: "0.05", spacing: 60, expected: -16080},
		{name: "seven percent", price: "0.07", spacing: 1, expected: -19460},
		{name: "zero price", price: "0", spacing: 1, errIs: types.ErrInvalidTick},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tick, err := tickmath.TickAtPrice(math.LegacyMustNewDecFromStr(tc.price), tc.spacing)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, tick)
		})
	}
}

func TestAveragePriceBetweenEndpoints(t *testing.T) {
	a := tickmath.MustSqrtRatioAtTick(-16096)
	b := tickmath.MustSqrtRatioAtTick(-15227)
	avg := tickmath.AveragePrice(a, b)
	require.True(t, avg.LT(tickmath.PriceAtSqrtRatio(a)))
	require.True(t, avg.GT(tickmath.PriceAtSqrtRatio(b)))
	require.Equal(t, tickmath.PriceAtSqrtRatio(a).String(), tickmath.AveragePrice(a, a).String())
}

package tickmath_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/tickmath"
	"github.com/provlabs/datedirs/types"
)

func TestLiquidityForBase(t *testing.T) {
	lower := tickmath.MustSqrtRatioAtTick(-19500)
	upper := tickmath.MustSqrtRatioAtTick(-11040)
	current := tickmath.MustSqrtRatioAtTick(-16096)

	liquidity, err := tickmath.LiquidityForBase(math.NewInt(10_000_000_000), lower, upper)
	require.NoError(t, err)
	require.Equal(t, "50351905911", liquidity.String())

	// argument order does not matter
	swapped, err := tickmath.LiquidityForBase(math.NewInt(10_000_000_000), upper, lower)
	require.NoError(t, err)
	require.Equal(t, liquidity.String(), swapped.String())

	require.Equal(t, "3523858284", tickmath.BaseForLiquidity(liquidity, lower, current).String())
	require.Equal(t, "6476141715", tickmath.BaseForLiquidity(liquidity, current, upper).String())
	require.Equal(t, "3523858285", tickmath.BaseForLiquidityRoundingUp(liquidity, lower, current).String())

	_, err = tickmath.LiquidityForBase(math.NewInt(1), lower, lower)
	require.ErrorIs(t, err, types.ErrInvalidTick)
	_, err = tickmath.LiquidityForBase(math.NewInt(-1), lower, upper)
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestSqrtDeltaForBase(t *testing.T) {
	liquidity := math.NewInt(50351905911)
	delta := tickmath.SqrtDeltaForBase(math.NewInt(1_000_000_000), liquidity)
	start := tickmath.MustSqrtRatioAtTick(-16096)
	require.Equal(t, "37003954451033645982734144870", start.Add(delta).String())
	// moving by the rounded-up delta always delivers at least the requested base
	require.True(t, tickmath.BaseForLiquidity(liquidity, start, start.Add(delta)).GTE(math.NewInt(1_000_000_000)))
}

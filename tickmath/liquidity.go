package tickmath

import (
	"cosmossdk.io/math"

	"github.com/provlabs/datedirs/types"
	"github.com/provlabs/datedirs/utils"
)

// LiquidityForBase returns floor(base * 2^96 / |sqrtB - sqrtA|), the liquidity
// that spreads base evenly in sqrt price space over the range.
func LiquidityForBase(base, sqrtA, sqrtB math.Int) (math.Int, error) {
	diff := sqrtB.Sub(sqrtA).Abs()
	if diff.IsZero() {
		return math.Int{}, types.ErrInvalidTick.Wrap("empty range")
	}
	if base.IsNegative() {
		return math.Int{}, types.ErrInvalidRequest.Wrapf("negative base %s", base)
	}
	return utils.MulDivInt(base, Q96(), diff), nil
}

// BaseForLiquidity returns floor(liquidity * |sqrtB - sqrtA| / 2^96).
func BaseForLiquidity(liquidity, sqrtA, sqrtB math.Int) math.Int {
	return utils.MulDivInt(liquidity, sqrtB.Sub(sqrtA).Abs(), Q96())
}

// BaseForLiquidityRoundingUp returns ceil(liquidity * |sqrtB - sqrtA| / 2^96).
func BaseForLiquidityRoundingUp(liquidity, sqrtA, sqrtB math.Int) math.Int {
	return math.NewIntFromBigInt(utils.MulDivRoundingUp(liquidity.BigInt(), sqrtB.Sub(sqrtA).Abs().BigInt(), utils.Q96))
}

// SqrtDeltaForBase returns ceil(base * 2^96 / liquidity), the sqrt price move
// needed to deliver base from liquidity. liquidity must be positive.
func SqrtDeltaForBase(base, liquidity math.Int) math.Int {
	return math.NewIntFromBigInt(utils.MulDivRoundingUp(base.BigInt(), utils.Q96, liquidity.BigInt()))
}

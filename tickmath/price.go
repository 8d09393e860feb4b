package tickmath

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/provlabs/datedirs/types"
)

// priceNumerator is 0.01 (as 1e16 in an 18 decimal value) scaled by 2^192.
var priceNumerator = new(big.Int).Lsh(big.NewInt(1e16), 192)

// PriceAtSqrtRatio returns the fixed rate 0.01 / (sqrt / 2^96)^2 as an 18 decimal
// value, rounded down.
func PriceAtSqrtRatio(sqrtPriceX96 math.Int) math.LegacyDec {
	s := sqrtPriceX96.BigInt()
	return math.LegacyNewDecFromBigIntWithPrec(new(big.Int).Quo(priceNumerator, new(big.Int).Mul(s, s)), math.LegacyPrecision)
}

// PriceAtTick returns the fixed rate quoted at tick.
func PriceAtTick(tick int32) (math.LegacyDec, error) {
	s, err := SqrtRatioAtTick(tick)
	if err != nil {
		return math.LegacyDec{}, err
	}
	return PriceAtSqrtRatio(s), nil
}

// AveragePrice returns the mean fixed rate paid while the sqrt price moves
// between sqrtA and sqrtB, 0.01 * 2^192 / (sqrtA * sqrtB), rounded down.
func AveragePrice(sqrtA, sqrtB math.Int) math.LegacyDec {
	den := new(big.Int).Mul(sqrtA.BigInt(), sqrtB.BigInt())
	return math.LegacyNewDecFromBigIntWithPrec(new(big.Int).Quo(priceNumerator, den), math.LegacyPrecision)
}

// TickAtPrice returns the spacing-aligned tick whose rate is nearest to price.
func TickAtPrice(price math.LegacyDec, spacing int32) (int32, error) {
	if !price.IsPositive() {
		return 0, types.ErrInvalidTick.Wrapf("price %s must be positive", price)
	}
	// sqrt = sqrt(0.01 * 2^192 / price)
	sq := new(big.Int).Quo(priceNumerator, price.BigInt())
	sq.Sqrt(sq)
	if sq.Cmp(MinSqrtRatio) < 0 {
		sq.Set(MinSqrtRatio)
	}
	if sq.Cmp(MaxSqrtRatio) > 0 {
		sq.Set(MaxSqrtRatio)
	}
	tick, err := TickAtSqrtRatio(math.NewIntFromBigInt(sq))
	if err != nil {
		return 0, err
	}
	// pick the closer of tick and tick+1 before aligning
	if tick < MaxTick {
		lower, _ := PriceAtTick(tick)
		upper, _ := PriceAtTick(tick + 1)
		if lower.Sub(price).Abs().GT(price.Sub(upper).Abs()) {
			tick++
		}
	}
	return AlignTick(tick, spacing), nil
}

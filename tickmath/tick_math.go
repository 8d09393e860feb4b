// Package tickmath converts between discrete ticks, Q64.96 square root prices
// and the 18 decimal fixed rates quoted by the dated swap pools.
//
// A tick t corresponds to sqrtPrice = sqrt(1.0001^t) * 2^96 and to the fixed
// rate 1.0001^-t / 100, so lower ticks mean higher rates.
package tickmath

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"

	"github.com/provlabs/datedirs/types"
	"github.com/provlabs/datedirs/utils"
)

const (
	MinTick = types.MinTick
	MaxTick = types.MaxTick
)

var (
	// MinSqrtRatio is SqrtRatioAtTick(MinTick).
	MinSqrtRatio = big.NewInt(4295128739)
	// MaxSqrtRatio is SqrtRatioAtTick(MaxTick).
	MaxSqrtRatio = mustBig("1461446703485210103287273052203988822378723970342")

	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	q32Mask    = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 32), big.NewInt(1))

	ratioOdd  = mustHex("fffcb933bd6fad37aa2d162d1a594001")
	ratioEven = mustHex("100000000000000000000000000000000")

	// bitRatios[i] is 2^128 / sqrt(1.0001^(2^(i+1))) in Q128.128.
	bitRatios = []*big.Int{
		mustHex("fff97272373d413259a46990580e213a"),
		mustHex("fff2e50f5f656932ef12357cf3c7fdcc"),
		mustHex("ffe5caca7e10e4e61c3624eaa0941cd0"),
		mustHex("ffcb9843d60f6159c9db58835c926644"),
		mustHex("ff973b41fa98c081472e6896dfb254c0"),
		mustHex("ff2ea16466c96a3843ec78b326b52861"),
		mustHex("fe5dee046a99a2a811c461f1969c3053"),
		mustHex("fcbe86c7900a88aedcffc83b479aa3a4"),
		mustHex("f987a7253ac413176f2b074cf7815e54"),
		mustHex("f3392b0822b70005940c7a398e4b70f3"),
		mustHex("e7159475a2c29b7443b29c7fa6e889d9"),
		mustHex("d097f3bdfd2022b8845ad8f792aa5825"),
		mustHex("a9f746462d870fdf8a65dc1f90e061e5"),
		mustHex("70d869a156d2a1b890bb3df62baf32f7"),
		mustHex("31be135f97d08fd981231505542fcfa6"),
		mustHex("9aa508b5b7a84e1c677de54f3e99bc9"),
		mustHex("5d6af8dedb81196699c329225ee604"),
		mustHex("2216e584f5fa1ea926041bedfe98"),
		mustHex("48a170391f7dc42444e8fa2"),
	}
)

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic(fmt.Sprintf("invalid hex constant %q", s))
	}
	return v
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("invalid decimal constant %q", s))
	}
	return v
}

// CheckTick returns ErrInvalidTick when tick is outside [MinTick, MaxTick].
func CheckTick(tick int32) error {
	if tick < MinTick || tick > MaxTick {
		return types.ErrInvalidTick.Wrapf("tick %d outside [%d, %d]", tick, MinTick, MaxTick)
	}
	return nil
}

// SqrtRatioAtTick returns sqrt(1.0001^tick) as a Q64.96 value, rounded up.
func SqrtRatioAtTick(tick int32) (math.Int, error) {
	r, err := sqrtRatioAtTick(tick)
	if err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(r), nil
}

// MustSqrtRatioAtTick is SqrtRatioAtTick for ticks already known to be valid.
func MustSqrtRatioAtTick(tick int32) math.Int {
	r, err := SqrtRatioAtTick(tick)
	if err != nil {
		panic(err)
	}
	return r
}

func sqrtRatioAtTick(tick int32) (*big.Int, error) {
	if err := CheckTick(tick); err != nil {
		return nil, err
	}
	absTick := int64(tick)
	if absTick < 0 {
		absTick = -absTick
	}

	ratio := new(big.Int)
	if absTick&1 != 0 {
		ratio.Set(ratioOdd)
	} else {
		ratio.Set(ratioEven)
	}
	for i, c := range bitRatios {
		if absTick&(int64(2)<<i) != 0 {
			ratio.Mul(ratio, c)
			ratio.Rsh(ratio, 128)
		}
	}
	if tick > 0 {
		ratio.Quo(maxUint256, ratio)
	}

	// Q128.128 -> Q64.96, rounding up so TickAtSqrtRatio stays consistent.
	roundUp := new(big.Int).And(ratio, q32Mask).Sign() != 0
	ratio.Rsh(ratio, 32)
	if roundUp {
		ratio.Add(ratio, big.NewInt(1))
	}
	return ratio, nil
}

// TickAtSqrtRatio returns the greatest tick whose sqrt ratio is <= sqrtPriceX96.
func TickAtSqrtRatio(sqrtPriceX96 math.Int) (int32, error) {
	s := sqrtPriceX96.BigInt()
	if s.Cmp(MinSqrtRatio) < 0 || s.Cmp(MaxSqrtRatio) > 0 {
		return 0, types.ErrInvalidTick.Wrapf("sqrt price %s outside [%s, %s]", s, MinSqrtRatio, MaxSqrtRatio)
	}

	lo, hi := MinTick, MaxTick
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		r, _ := sqrtRatioAtTick(mid)
		if r.Cmp(s) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, nil
}

// AlignTick rounds tick to the nearest multiple of spacing, ties away from zero.
func AlignTick(tick, spacing int32) int32 {
	if spacing <= 1 {
		return tick
	}
	rem := tick % spacing
	if rem == 0 {
		return tick
	}
	base := tick - rem
	if rem > 0 {
		if 2*rem >= spacing {
			return base + spacing
		}
		return base
	}
	if -2*rem >= spacing {
		return base - spacing
	}
	return base
}

// Q96 returns 2^96 as a math.Int.
func Q96() math.Int {
	return math.NewIntFromBigInt(utils.Q96)
}

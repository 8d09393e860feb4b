package utils

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// Q96 is the fixed point scale of sqrt prices (Q64.96).
var Q96 = new(big.Int).Lsh(big.NewInt(1), 96)

// Wad is the 1e18 scale shared by rate indices, prices and spreads.
var Wad = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// MulDiv returns floor(a * b / d) computed with full precision.
// Signed operands round toward negative infinity. d must be positive.
//
//	MulDiv(-7, 1, 2) == -4
func MulDiv(a, b, d *big.Int) *big.Int {
	if d.Sign() <= 0 {
		panic(fmt.Sprintf("mul div by non-positive denominator %s", d))
	}
	p := new(big.Int).Mul(a, b)
	q, m := new(big.Int).QuoRem(p, d, new(big.Int))
	if m.Sign() < 0 {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

// MulDivRoundingUp returns ceil(a * b / d). d must be positive.
func MulDivRoundingUp(a, b, d *big.Int) *big.Int {
	if d.Sign() <= 0 {
		panic(fmt.Sprintf("mul div by non-positive denominator %s", d))
	}
	p := new(big.Int).Mul(a, b)
	q, m := new(big.Int).QuoRem(p, d, new(big.Int))
	if m.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// MulDivInt is MulDiv over math.Int operands.
func MulDivInt(a, b, d math.Int) math.Int {
	return math.NewIntFromBigInt(MulDiv(a.BigInt(), b.BigInt(), d.BigInt()))
}

// MulWad returns floor(amount * dec), where dec is an 18 decimal fixed point value.
func MulWad(amount math.Int, dec math.LegacyDec) math.Int {
	return math.NewIntFromBigInt(MulDiv(amount.BigInt(), dec.BigInt(), Wad))
}

// MulWad2 returns floor(amount * x * y) for two 18 decimal values, rounding once.
func MulWad2(amount math.Int, x, y math.LegacyDec) math.Int {
	xy := new(big.Int).Mul(x.BigInt(), y.BigInt())
	return math.NewIntFromBigInt(MulDiv(amount.BigInt(), xy, new(big.Int).Mul(Wad, Wad)))
}

// Abs returns |x| as a new big.Int.
func Abs(x *big.Int) *big.Int {
	return new(big.Int).Abs(x)
}

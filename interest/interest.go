package interest

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"

	"github.com/provlabs/datedirs/types"
	"github.com/provlabs/datedirs/utils"
)

const (
	SecondsPerYear = 31_536_000
	EulerPrecision = 18
)

var (
	ln2  = math.LegacyMustNewDecFromStr("0.693147180559945309")
	half = math.LegacyNewDecWithPrec(5, 1)
)

// YearFraction returns seconds / SecondsPerYear.
func YearFraction(seconds int64) math.LegacyDec {
	return math.LegacyNewDec(seconds).QuoInt64(SecondsPerYear)
}

// IndexAt projects a rate index forward by seconds under the given model.
//
//	compounding: index * (1 + apy)^(seconds / year)
//	linear:      index + apy * seconds / year
func IndexAt(model types.RateModel, index, apy math.LegacyDec, seconds int64) (math.LegacyDec, error) {
	if seconds < 0 {
		return math.LegacyDec{}, fmt.Errorf("cannot project index %s backwards by %d seconds", index, seconds)
	}
	if seconds == 0 || apy.IsZero() {
		return index, nil
	}

	switch model {
	case types.RateModelCompounding:
		growth, err := PowDec(math.LegacyOneDec().Add(apy), YearFraction(seconds))
		if err != nil {
			return math.LegacyDec{}, err
		}
		return index.Mul(growth), nil
	case types.RateModelLinear:
		return index.Add(apy.MulInt64(seconds).QuoInt64(SecondsPerYear)), nil
	default:
		return math.LegacyDec{}, fmt.Errorf("unknown rate model %d", model)
	}
}

// Interpolate returns the index at t on the straight line through (t0, i0) and (t1, i1).
func Interpolate(t0 int64, i0 math.LegacyDec, t1 int64, i1 math.LegacyDec, t int64) math.LegacyDec {
	if t1 <= t0 || t <= t0 {
		return i0
	}
	if t >= t1 {
		return i1
	}
	return i0.Add(i1.Sub(i0).MulInt64(t - t0).QuoInt64(t1 - t0))
}

// Accrue returns floor(base * (toIndex - fromIndex)), the variable leg earned
// by base while the index moved. Long base earns a rising index.
func Accrue(base math.Int, fromIndex, toIndex math.LegacyDec) math.Int {
	return utils.MulWad(base, toIndex.Sub(fromIndex))
}

// AnnualizedNotional returns floor(base * index * secondsToMaturity / year).
func AnnualizedNotional(base math.Int, index math.LegacyDec, secondsToMaturity int64) math.Int {
	if secondsToMaturity <= 0 {
		return math.ZeroInt()
	}
	den := new(big.Int).Mul(utils.Wad, big.NewInt(SecondsPerYear))
	return math.NewIntFromBigInt(utils.MulDiv(base.MulRaw(secondsToMaturity).BigInt(), index.BigInt(), den))
}

// SpreadCharge returns ceil(2 * |base| * index * spread), the quote a taker
// pays on top of the pool price. Rounding favors the makers.
func SpreadCharge(base math.Int, index, spread math.LegacyDec) math.Int {
	if !spread.IsPositive() || base.IsZero() {
		return math.ZeroInt()
	}
	amount := new(big.Int).Lsh(base.Abs().BigInt(), 1)
	rate := new(big.Int).Mul(index.BigInt(), spread.BigInt())
	return math.NewIntFromBigInt(utils.MulDivRoundingUp(amount, rate, new(big.Int).Mul(utils.Wad, utils.Wad)))
}

// UnfilledQuote returns floor(base * index * price * secondsToMaturity / year),
// the quote of base traded at price over the remaining term.
func UnfilledQuote(base math.Int, index, price math.LegacyDec, secondsToMaturity int64) math.Int {
	if secondsToMaturity <= 0 {
		return math.ZeroInt()
	}
	rate := new(big.Int).Mul(index.BigInt(), price.BigInt())
	den := new(big.Int).Mul(new(big.Int).Mul(utils.Wad, utils.Wad), big.NewInt(SecondsPerYear))
	return math.NewIntFromBigInt(utils.MulDiv(base.MulRaw(secondsToMaturity).BigInt(), rate, den))
}

// ExpDec calculates e^x using Maclaurin series expansion up to `terms` terms.
// Accurate for |x| <= 1/2; use Exp for larger arguments.
func ExpDec(x math.LegacyDec, terms int) math.LegacyDec {
	result := math.LegacyOneDec()    // starts at 1
	power := math.LegacyOneDec()     // x^0
	factorial := math.LegacyOneDec() // 0! = 1

	for i := 1; i <= terms; i++ {
		power = power.Mul(x)                     // x^i
		factorial = factorial.MulInt64(int64(i)) // i!
		term := power.Quo(factorial)             // x^i / i!
		result = result.Add(term)
	}

	return result
}

// Exp calculates e^x by halving x into the convergent range of ExpDec and
// squaring the result back.
func Exp(x math.LegacyDec) math.LegacyDec {
	halvings := 0
	for x.Abs().GT(half) {
		x = x.QuoInt64(2)
		halvings++
	}
	r := ExpDec(x, EulerPrecision)
	for i := 0; i < halvings; i++ {
		r = r.Mul(r)
	}
	return r
}

// LnDec calculates the natural logarithm of x > 0.
//
// x is scaled by powers of two into [1, 2) and the remainder uses
// ln(m) = 2 * atanh((m-1)/(m+1)).
func LnDec(x math.LegacyDec) (math.LegacyDec, error) {
	if !x.IsPositive() {
		return math.LegacyDec{}, fmt.Errorf("ln of non-positive value %s", x)
	}
	one := math.LegacyOneDec()
	two := math.LegacyNewDec(2)

	var k int64
	for x.GTE(two) {
		x = x.QuoInt64(2)
		k++
	}
	for x.LT(one) {
		x = x.MulInt64(2)
		k--
	}

	y := x.Sub(one).Quo(x.Add(one))
	y2 := y.Mul(y)
	sum := math.LegacyZeroDec()
	term := y
	for i := int64(1); !term.IsZero(); i += 2 {
		sum = sum.Add(term.QuoInt64(i))
		term = term.Mul(y2)
	}
	return sum.MulInt64(2).Add(ln2.MulInt64(k)), nil
}

// PowDec calculates base^exp for base >= 0.
func PowDec(base, exp math.LegacyDec) (math.LegacyDec, error) {
	switch {
	case exp.IsZero():
		return math.LegacyOneDec(), nil
	case base.IsZero():
		if exp.IsNegative() {
			return math.LegacyDec{}, fmt.Errorf("zero raised to negative power %s", exp)
		}
		return math.LegacyZeroDec(), nil
	case base.Equal(math.LegacyOneDec()):
		return base, nil
	}
	ln, err := LnDec(base)
	if err != nil {
		return math.LegacyDec{}, err
	}
	return Exp(exp.Mul(ln)), nil
}

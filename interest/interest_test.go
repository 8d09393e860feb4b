package interest_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/interest"
	"github.com/provlabs/datedirs/types"
)

func dec(s string) sdkmath.LegacyDec {
	return sdkmath.LegacyMustNewDecFromStr(s)
}

func requireClose(t *testing.T, expected, actual sdkmath.LegacyDec, tolerance string, msgAndArgs ...interface{}) {
	t.Helper()
	diff := actual.Sub(expected).Abs()
	require.True(t, diff.LTE(dec(tolerance)), "expected %s, got %s (diff %s): %v", expected, actual, diff, msgAndArgs)
}

func TestYearFraction(t *testing.T) {
	require.Equal(t, "1.000000000000000000", interest.YearFraction(interest.SecondsPerYear).String(), "one year")
	require.Equal(t, "0.500000000000000000", interest.YearFraction(interest.SecondsPerYear/2).String(), "half a year")
	require.Equal(t, "0.000000000000000000", interest.YearFraction(0).String(), "zero")
}

func TestIndexAt(t *testing.T) {
	half := int64(interest.SecondsPerYear / 2)

	tests := []struct {
		name             string
		model            types.RateModel
		index            string
		apy              string
		seconds          int64
		expected         string
		tolerance        string
		expectedErrorMsg string
	}{
		{
			name:     "linear half a year",
			model:    types.RateModelLinear,
			index:    "1.0",
			apy:      "0.0365",
			seconds:  half,
			expected: "1.01825",
		},
		{
			name:     "linear adds to the current index",
			model:    types.RateModelLinear,
			index:    "1.5",
			apy:      "0.1",
			seconds:  interest.SecondsPerYear,
			expected: "1.6",
		},
		{
			name:      "compounding half a year",
			model:     types.RateModelCompounding,
			index:     "1.0",
			apy:       "0.21",
			seconds:   half,
			expected:  "1.1",
			tolerance: "0.000000000001",
		},
		{
			name:      "compounding scales the current index",
			model:     types.RateModelCompounding,
			index:     "2.0",
			apy:       "0.05",
			seconds:   interest.SecondsPerYear,
			expected:  "2.1",
			tolerance: "0.000000000001",
		},
		{
			name:     "zero seconds",
			model:    types.RateModelCompounding,
			index:    "1.3",
			apy:      "0.05",
			expected: "1.3",
		},
		{
			name:     "zero apy",
			model:    types.RateModelCompounding,
			index:    "1.3",
			apy:      "0",
			seconds:  half,
			expected: "1.3",
		},
		{
			name:             "negative seconds",
			model:            types.RateModelLinear,
			index:            "1.0",
			apy:              "0.05",
			seconds:          -1,
			expectedErrorMsg: "backwards",
		},
		{
			name:             "unknown model",
			model:            types.RateModelUnspecified,
			index:            "1.0",
			apy:              "0.05",
			seconds:          half,
			expectedErrorMsg: "unknown rate model",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := interest.IndexAt(tc.model, dec(tc.index), dec(tc.apy), tc.seconds)
			if tc.expectedErrorMsg != "" {
				require.ErrorContains(t, err, tc.expectedErrorMsg, "IndexAt error")
				return
			}
			require.NoError(t, err, "IndexAt")
			if tc.tolerance != "" {
				requireClose(t, dec(tc.expected), actual, tc.tolerance, "IndexAt")
				return
			}
			require.Equal(t, dec(tc.expected).String(), actual.String(), "IndexAt")
		})
	}
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		t0, t1   int64
		at       int64
		expected string
	}{
		{name: "quarter of the way", t0: 100, t1: 200, at: 125, expected: "1.25"},
		{name: "at the start", t0: 100, t1: 200, at: 100, expected: "1.0"},
		{name: "before the start", t0: 100, t1: 200, at: 50, expected: "1.0"},
		{name: "at the end", t0: 100, t1: 200, at: 200, expected: "2.0"},
		{name: "after the end", t0: 100, t1: 200, at: 300, expected: "2.0"},
		{name: "degenerate span", t0: 200, t1: 200, at: 200, expected: "1.0"},
		{name: "repeating fraction truncates", t0: 0, t1: 3, at: 1, expected: "1.333333333333333333"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := interest.Interpolate(tc.t0, dec("1.0"), tc.t1, dec("2.0"), tc.at)
			require.Equal(t, dec(tc.expected).String(), actual.String(), "Interpolate")
		})
	}
}

func TestAccrue(t *testing.T) {
	tests := []struct {
		name     string
		base     int64
		from, to string
		expected int64
	}{
		{name: "short pays a rising index", base: -1_000_000_000, from: "1.01", to: "1.02", expected: -10_000_000},
		{name: "long earns a rising index", base: 1_000_000_000, from: "1.01", to: "1.02", expected: 10_000_000},
		{name: "rounds toward negative infinity", base: -3, from: "1.0", to: "1.5", expected: -2},
		{name: "positive rounds down", base: 3, from: "1.0", to: "1.5", expected: 1},
		{name: "unchanged index", base: 1_000_000, from: "1.1", to: "1.1", expected: 0},
		{name: "no base", base: 0, from: "1.0", to: "2.0", expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := interest.Accrue(sdkmath.NewInt(tc.base), dec(tc.from), dec(tc.to))
			require.Equal(t, sdkmath.NewInt(tc.expected).String(), actual.String(), "Accrue")
		})
	}
}

func TestSpreadCharge(t *testing.T) {
	tests := []struct {
		name     string
		base     int64
		index    string
		spread   string
		expected int64
	}{
		{name: "short half a year out", base: -1_000_000_000, index: "1.01", spread: "0.001611084158415841", expected: 3_254_390},
		{name: "long pays the same as short", base: 100_000_000, index: "1.0", spread: "0.003", expected: 600_000},
		{name: "rounds up", base: 1, index: "1.0", spread: "0.000000000000000001", expected: 1},
		{name: "zero spread", base: 1_000_000_000, index: "1.01", spread: "0", expected: 0},
		{name: "zero base", base: 0, index: "1.01", spread: "0.01", expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := interest.SpreadCharge(sdkmath.NewInt(tc.base), dec(tc.index), dec(tc.spread))
			require.Equal(t, sdkmath.NewInt(tc.expected).String(), actual.String(), "SpreadCharge")
		})
	}
}

func TestUnfilledQuote(t *testing.T) {
	half := int64(interest.SecondsPerYear / 2)

	require.Equal(t, "25250000", interest.UnfilledQuote(sdkmath.NewInt(1_000_000_000), dec("1.01"), dec("0.05"), half).String(), "half a year out")
	require.Equal(t, "50500000", interest.UnfilledQuote(sdkmath.NewInt(1_000_000_000), dec("1.01"), dec("0.05"), interest.SecondsPerYear).String(), "a year out")
	require.Equal(t, "-1", interest.UnfilledQuote(sdkmath.NewInt(-1), dec("1.0"), dec("1.0"), 1).String(), "rounds toward negative infinity")
	require.True(t, interest.UnfilledQuote(sdkmath.NewInt(1_000_000), dec("1.0"), dec("0.05"), 0).IsZero(), "at maturity")
}

func TestAnnualizedNotional(t *testing.T) {
	half := int64(interest.SecondsPerYear / 2)

	require.Equal(t, "-505000000", interest.AnnualizedNotional(sdkmath.NewInt(-1_000_000_000), dec("1.01"), half).String(), "short half a year out")
	require.Equal(t, "1010000000", interest.AnnualizedNotional(sdkmath.NewInt(1_000_000_000), dec("1.01"), interest.SecondsPerYear).String(), "long a year out")
	require.Equal(t, "-1", interest.AnnualizedNotional(sdkmath.NewInt(-1), dec("1.0"), 1).String(), "rounds toward negative infinity")
	require.True(t, interest.AnnualizedNotional(sdkmath.NewInt(1_000_000), dec("1.0"), 0).IsZero(), "at maturity")
	require.True(t, interest.AnnualizedNotional(sdkmath.NewInt(1_000_000), dec("1.0"), -10).IsZero(), "past maturity")
}

func TestLnDec(t *testing.T) {
	tests := []struct {
		name             string
		x                string
		expected         string
		expectedErrorMsg string
	}{
		{name: "one", x: "1", expected: "0"},
		{name: "two", x: "2", expected: "0.693147180559945309"},
		{name: "half", x: "0.5", expected: "-0.693147180559945309"},
		{name: "e", x: "2.718281828459045235", expected: "1"},
		{name: "large", x: "1000000", expected: "13.815510557964274104"},
		{name: "zero", x: "0", expectedErrorMsg: "non-positive"},
		{name: "negative", x: "-1", expectedErrorMsg: "non-positive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := interest.LnDec(dec(tc.x))
			if tc.expectedErrorMsg != "" {
				require.ErrorContains(t, err, tc.expectedErrorMsg, "LnDec error")
				return
			}
			require.NoError(t, err, "LnDec")
			requireClose(t, dec(tc.expected), actual, "0.000000000000001", "LnDec(%s)", tc.x)
		})
	}
}

func TestExp(t *testing.T) {
	tests := []struct {
		x        string
		expected string
	}{
		{x: "0", expected: "1"},
		{x: "0.25", expected: "1.284025416687741484"},
		{x: "1", expected: "2.718281828459045235"},
		{x: "-1", expected: "0.367879441171442322"},
		{x: "3", expected: "20.085536923187667741"},
	}

	for _, tc := range tests {
		t.Run(tc.x, func(t *testing.T) {
			requireClose(t, dec(tc.expected), interest.Exp(dec(tc.x)), "0.000000000001", "Exp(%s)", tc.x)
		})
	}
}

func TestPowDec(t *testing.T) {
	tests := []struct {
		name             string
		base             string
		exp              string
		expected         string
		expectedErrorMsg string
	}{
		{name: "zero exponent", base: "7.5", exp: "0", expected: "1"},
		{name: "zero base", base: "0", exp: "2", expected: "0"},
		{name: "one base", base: "1", exp: "12.5", expected: "1"},
		{name: "square root", base: "1.21", exp: "0.5", expected: "1.1"},
		{name: "fractional power above one", base: "4", exp: "1.5", expected: "8"},
		{name: "negative exponent", base: "2", exp: "-1", expected: "0.5"},
		{name: "zero base negative exponent", base: "0", exp: "-1", expectedErrorMsg: "negative power"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := interest.PowDec(dec(tc.base), dec(tc.exp))
			if tc.expectedErrorMsg != "" {
				require.ErrorContains(t, err, tc.expectedErrorMsg, "PowDec error")
				return
			}
			require.NoError(t, err, "PowDec")
			requireClose(t, dec(tc.expected), actual, "0.000000000001", "PowDec(%s, %s)", tc.base, tc.exp)
		})
	}
}

// TestExpDecDrift compounds a rate daily for a year and compares the result
// with a single year of growth.
func TestExpDecDrift(t *testing.T) {
	apy := dec("0.05")
	daily := int64(interest.SecondsPerYear / 365)

	index := dec("1.0")
	for i := 0; i < 365; i++ {
		next, err := interest.IndexAt(types.RateModelCompounding, index, apy, daily)
		require.NoError(t, err, "IndexAt day %d", i)
		index = next
	}
	requireClose(t, dec("1.05"), index, "0.000000001", "compounded daily")
}

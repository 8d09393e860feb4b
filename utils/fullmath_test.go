package utils_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/utils"
)

func TestMulDiv(t *testing.T) {
	tests := []struct {
		name    string
		a, b, d int64
		floor   int64
		ceiling int64
	}{
		{name: "exact", a: 6, b: 4, d: 3, floor: 8, ceiling: 8},
		{name: "positive remainder", a: 7, b: 1, d: 2, floor: 3, ceiling: 4},
		{name: "negative remainder", a: -7, b: 1, d: 2, floor: -4, ceiling: -3},
		{name: "negative exact", a: -9, b: 2, d: 3, floor: -6, ceiling: -6},
		{name: "zero", a: 0, b: 5, d: 7, floor: 0, ceiling: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b, d := big.NewInt(tc.a), big.NewInt(tc.b), big.NewInt(tc.d)
			require.Equal(t, tc.floor, utils.MulDiv(a, b, d).Int64(), "floor")
			require.Equal(t, tc.ceiling, utils.MulDivRoundingUp(a, b, d).Int64(), "ceiling")
		})
	}
}

func TestMulDivOverflowsIntermediate(t *testing.T) {
	// (2^200 * 2^100) / 2^150 would not fit a 256 bit intermediate.
	a := new(big.Int).Lsh(big.NewInt(1), 200)
	b := new(big.Int).Lsh(big.NewInt(1), 100)
	d := new(big.Int).Lsh(big.NewInt(1), 150)
	require.Equal(t, 0, new(big.Int).Lsh(big.NewInt(1), 150).Cmp(utils.MulDiv(a, b, d)))
}

func TestMulDivPanicsOnNonPositiveDenominator(t *testing.T) {
	require.Panics(t, func() { utils.MulDiv(big.NewInt(1), big.NewInt(1), big.NewInt(0)) })
	require.Panics(t, func() { utils.MulDivRoundingUp(big.NewInt(1), big.NewInt(1), big.NewInt(-1)) })
}

func TestMulWad(t *testing.T) {
	require.Equal(t, "1010000", utils.MulWad(math.NewInt(1_000_000), math.LegacyMustNewDecFromStr("1.01")).String())
	require.Equal(t, "-1010001", utils.MulWad(math.NewInt(-1_010_000), math.LegacyMustNewDecFromStr("1.0000001")).String())
	require.Equal(t, "-505000000",
		utils.MulWad2(math.NewInt(-1_000_000_000), math.LegacyMustNewDecFromStr("1.01"), math.LegacyMustNewDecFromStr("0.5")).String())
}

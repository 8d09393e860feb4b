package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/types"
	"github.com/provlabs/datedirs/utils/mocks"
)

func TestAdjustPrice(t *testing.T) {
	config := func(spread, phi, beta string) types.VammMutableConfig {
		cfg := types.DefaultVammMutableConfig()
		cfg.Spread = sdkmath.LegacyMustNewDecFromStr(spread)
		cfg.PriceImpactPhi = sdkmath.LegacyMustNewDecFromStr(phi)
		cfg.PriceImpactBeta = sdkmath.LegacyMustNewDecFromStr(beta)
		return cfg
	}

	tests := []struct {
		name     string
		size     int64
		cfg      types.VammMutableConfig
		expected string
	}{
		{
			name:     "zero size ignores spread",
			size:     0,
			cfg:      config("0.001", "0.0001", "0"),
			expected: "0.050000000000000000",
		},
		{
			name:     "long with linear impact and spread",
			size:     1_000_000_000,
			cfg:      config("0.001", "0.0001", "0"),
			expected: "0.056000000000000000",
		},
		{
			name:     "short with linear impact and spread",
			size:     -1_000_000_000,
			cfg:      config("0.001", "0.0001", "0"),
			expected: "0.044000000000000000",
		},
		{
			name:     "short clamped at zero",
			size:     -1_000_000_000,
			cfg:      config("0", "0.01", "0"),
			expected: "0.000000000000000000",
		},
		{
			name:     "spread only",
			size:     -5,
			cfg:      config("0.002", "0", "0"),
			expected: "0.048000000000000000",
		},
	}

	_, k, _, _ := mocks.NewKeeper(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := k.TestAccessor_adjustPrice(t, sdkmath.LegacyMustNewDecFromStr("0.05"), sdkmath.NewInt(tc.size), 6, tc.cfg)
			require.NoError(t, err, "adjustPrice")
			require.Equal(t, tc.expected, actual.String(), "adjusted price")
		})
	}
}

func TestAdjustPriceWithImpactExponent(t *testing.T) {
	cfg := types.DefaultVammMutableConfig()
	cfg.PriceImpactPhi = sdkmath.LegacyMustNewDecFromStr("0.001")
	cfg.PriceImpactBeta = sdkmath.LegacyMustNewDecFromStr("0.5")

	// 100 whole units: impact = 0.001 * sqrt(100) = 0.01
	_, k, _, _ := mocks.NewKeeper(t)
	actual, err := k.TestAccessor_adjustPrice(t, sdkmath.LegacyMustNewDecFromStr("0.05"), sdkmath.NewInt(100_000_000), 6, cfg)
	require.NoError(t, err, "adjustPrice")
	diff := actual.Sub(sdkmath.LegacyMustNewDecFromStr("0.0505")).Abs()
	require.True(t, diff.LTE(sdkmath.LegacyMustNewDecFromStr("0.000000000001")), "adjusted price %s should be about 0.0505", actual)
}

func (s *TestSuite) TestTwapTick() {
	s.setupPool()
	maker, taker := s.createAccount(), s.createAccount()
	s.mint(maker, -19500, -11040, 10_000_000_000)

	vamm, err := s.k.GetVamm(s.ctx, marketID, maturity)
	s.Require().NoError(err, "GetVamm")
	tick, err := s.k.TwapTick(s.ctx, vamm, 0)
	s.Require().NoError(err, "TwapTick without lookback")
	s.Assert().Equal(initTick, tick, "current tick")

	swapAt := t0 + year/2
	s.setBlockTime(swapAt)
	s.recordIndex("1.01")
	s.swap(taker, -1_000_000_000)

	vamm, err = s.k.GetVamm(s.ctx, marketID, maturity)
	s.Require().NoError(err, "GetVamm")
	s.Require().Equal(int32(-15227), vamm.State.Tick, "tick after swap")
	tick, err = s.k.TwapTick(s.ctx, vamm, 120)
	s.Require().NoError(err, "TwapTick at swap time")
	s.Assert().Equal(initTick, tick, "twap before any time passed at the new tick")

	// half the window at each tick, rounded toward negative infinity
	s.setBlockTime(swapAt + 60)
	tick, err = s.k.TwapTick(s.ctx, vamm, 120)
	s.Require().NoError(err, "TwapTick a minute later")
	s.Assert().Equal(int32(-15662), tick, "twap straddling the swap")

	s.setBlockTime(swapAt + 600)
	tick, err = s.k.TwapTick(s.ctx, vamm, 120)
	s.Require().NoError(err, "TwapTick ten minutes later")
	s.Assert().Equal(int32(-15227), tick, "twap after the window passed")
}

func (s *TestSuite) TestTwapTickBeyondHistory() {
	s.setupPool()
	vamm, err := s.k.GetVamm(s.ctx, marketID, maturity)
	s.Require().NoError(err, "GetVamm")
	_, err = s.k.TwapTick(s.ctx, vamm, 3601)
	s.Require().ErrorIs(err, types.ErrObservationTooOld, "TwapTick")
}

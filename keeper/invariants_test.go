package keeper_test

import (
	"fmt"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/datedirs/keeper"
	"github.com/provlabs/datedirs/types"
)

func (s *TestSuite) TestInvariantsDetectCorruption() {
	tests := []struct {
		name    string
		corrupt func()
		expMsg  string
	}{
		{
			name: "unbalanced fills",
			corrupt: func() {
				s.corruptPosition(1, func(p *types.AccountPosition) { p.FilledQuote = p.FilledQuote.AddRaw(1) })
			},
			expMsg: "zero-sum-fills",
		},
		{
			name: "collected spread drift",
			corrupt: func() {
				s.Require().NoError(s.k.CollectedSpread.Set(s.ctx, pool(), intOf(1)), "CollectedSpread.Set")
			},
			expMsg: "collected spread 1",
		},
		{
			name: "open interest drift",
			corrupt: func() {
				s.Require().NoError(s.k.OpenInterest.Set(s.ctx, pool(), intOf(1)), "OpenInterest.Set")
			},
			expMsg: "open-interest",
		},
		{
			name: "active liquidity drift",
			corrupt: func() {
				vamm, err := s.k.GetVamm(s.ctx, marketID, maturity)
				s.Require().NoError(err, "GetVamm")
				vamm.State.Liquidity = vamm.State.Liquidity.AddRaw(1)
				s.Require().NoError(s.k.SetVamm(s.ctx, vamm), "SetVamm")
			},
			expMsg: "tick-liquidity",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.setupTrade()
			s.assertInvariants()

			tc.corrupt()
			msg, broken := keeper.AllInvariants(s.k)(s.ctx)
			s.Require().True(broken, "invariants should be broken")
			s.Assert().Contains(msg, tc.expMsg, "broken invariant")
		})
	}
}

func (s *TestSuite) TestOpenInterestInvariantPerPool() {
	s.setupPool()
	second := maturity + year
	_, err := s.k.CreateVamm(s.ctx, keeper.CreateVammParams{
		MarketID:            marketID,
		Maturity:            second,
		InitTick:            initTick,
		MaxLiquidityPerTick: sdkmath.NewIntWithDecimal(1, 30),
		TickSpacing:         60,
		Config:              types.DefaultVammMutableConfig(),
	})
	s.Require().NoError(err, "CreateVamm second maturity")

	maker, taker := s.createAccount(), s.createAccount()
	s.mint(maker, -19500, -11040, 10_000_000_000)
	s.swap(taker, 1_000_000_000)
	_, err = s.k.ExecuteMakerOrder(s.ctx, keeper.MakerOrder{AccountID: maker, MarketID: marketID, Maturity: second, TickLower: -19500, TickUpper: -11040, BaseAmount: intOf(10_000_000_000)})
	s.Require().NoError(err, "ExecuteMakerOrder second maturity")
	_, err = s.k.ExecuteTakerOrder(s.ctx, keeper.TakerOrder{AccountID: taker, MarketID: marketID, Maturity: second, BaseAmount: intOf(-2_000_000_000)})
	s.Require().NoError(err, "ExecuteTakerOrder second maturity")

	for _, tc := range []struct {
		maturity int64
		expected string
	}{
		{maturity: maturity, expected: "1000000000"},
		{maturity: second, expected: "2000000000"},
	} {
		oi, err := s.k.GetOpenInterest(s.ctx, marketID, tc.maturity)
		s.Require().NoError(err, "GetOpenInterest(%d)", tc.maturity)
		s.Assert().Equal(tc.expected, oi.String(), "open interest of maturity %d", tc.maturity)
	}
	msg, broken := keeper.OpenInterestInvariant(s.k)(s.ctx)
	s.Require().False(broken, msg)
	msg, broken = keeper.ZeroSumFillsInvariant(s.k)(s.ctx)
	s.Require().False(broken, msg)

	s.Require().NoError(s.k.OpenInterest.Set(s.ctx, collections.Join(marketID, second), intOf(1)), "OpenInterest.Set")
	msg, broken = keeper.OpenInterestInvariant(s.k)(s.ctx)
	s.Require().True(broken, "open interest invariant after drift")
	s.Assert().Contains(msg, fmt.Sprintf("%d/%d: tracked 1, positions 2000000000", marketID, second), "broken pool")
	s.Assert().NotContains(msg, fmt.Sprintf("%d/%d:", marketID, maturity), "untouched pool")
}

func (s *TestSuite) corruptPosition(accountID uint64, fn func(p *types.AccountPosition)) {
	key := collections.Join3(marketID, maturity, accountID)
	pos, err := s.k.AccountPositions.Get(s.ctx, key)
	s.Require().NoError(err, "AccountPositions.Get")
	fn(&pos)
	s.Require().NoError(s.k.AccountPositions.Set(s.ctx, key, pos), "AccountPositions.Set")
}

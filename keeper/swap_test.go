package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/datedirs/keeper"
	"github.com/provlabs/datedirs/tickmath"
	"github.com/provlabs/datedirs/types"
)

func (s *TestSuite) TestExecuteTakerOrderValidation() {
	tests := []struct {
		name       string
		setup      func()
		noLiquid   bool
		base       int64
		priceLimit sdkmath.Int
		expErr     error
	}{
		{
			name:   "zero base",
			base:   0,
			expErr: types.ErrInvalidRequest,
		},
		{
			name:     "empty book",
			noLiquid: true,
			base:     1_000_000,
			expErr:   types.ErrInsufficientLiquidity,
		},
		{
			name:   "larger than the book",
			base:   20_000_000_000,
			expErr: types.ErrInsufficientLiquidity,
		},
		{
			name:       "price limit reached",
			base:       10_000_000_000,
			priceLimit: tickmath.MustSqrtRatioAtTick(-17000),
			expErr:     types.ErrPriceLimitReached,
		},
		{
			name:       "price limit on the wrong side",
			base:       1_000_000,
			priceLimit: tickmath.MustSqrtRatioAtTick(-15000),
			expErr:     types.ErrInvalidPriceLimit,
		},
		{
			name:       "price limit beyond the allowed range",
			base:       -1_000_000,
			priceLimit: sdkmath.NewIntFromBigInt(tickmath.MaxSqrtRatio).AddRaw(1),
			expErr:     types.ErrInvalidPriceLimit,
		},
		{
			name:       "price limit not reached",
			base:       1_000_000_000,
			priceLimit: tickmath.MustSqrtRatioAtTick(-19000),
		},
		{
			name: "size below the lower limit",
			setup: func() {
				cfg := types.DefaultMarketConfiguration()
				cfg.PositionSizeLowerLimit = intOf(1_000_000)
				s.Require().NoError(s.k.SetMarketConfiguration(s.ctx, marketID, cfg), "SetMarketConfiguration")
			},
			base:   -999_999,
			expErr: types.ErrLimitExceeded,
		},
		{
			name: "open interest above the limit",
			setup: func() {
				cfg := types.DefaultMarketConfiguration()
				cfg.OpenInterestUpperLimit = intOf(500_000_000)
				s.Require().NoError(s.k.SetMarketConfiguration(s.ctx, marketID, cfg), "SetMarketConfiguration")
			},
			base:   1_000_000_000,
			expErr: types.ErrLimitExceeded,
		},
		{
			name: "open interest within the limit",
			setup: func() {
				cfg := types.DefaultMarketConfiguration()
				cfg.OpenInterestUpperLimit = intOf(1_000_000_000)
				s.Require().NoError(s.k.SetMarketConfiguration(s.ctx, marketID, cfg), "SetMarketConfiguration")
			},
			base: 1_000_000_000,
		},
		{
			name: "mark price band exceeded",
			setup: func() {
				cfg := types.DefaultMarketConfiguration()
				cfg.MarkPriceBand = dec("0.001")
				s.Require().NoError(s.k.SetMarketConfiguration(s.ctx, marketID, cfg), "SetMarketConfiguration")
			},
			base:   -1_000_000_000,
			expErr: types.ErrMarkPriceBandExceeded,
		},
		{
			name: "mark price band respected",
			setup: func() {
				cfg := types.DefaultMarketConfiguration()
				cfg.MarkPriceBand = dec("0.01")
				s.Require().NoError(s.k.SetMarketConfiguration(s.ctx, marketID, cfg), "SetMarketConfiguration")
			},
			base: -1_000_000_000,
		},
		{
			name: "disabled market",
			setup: func() {
				s.flags.SetEnabled(marketID, maturity, false)
			},
			base:   1_000_000,
			expErr: types.ErrMarketDisabled,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.setupPool()
			maker, taker := s.createAccount(), s.createAccount()
			if !tc.noLiquid {
				s.mint(maker, -19500, -11040, 10_000_000_000)
			}
			if tc.setup != nil {
				tc.setup()
			}
			before, err := s.k.GetVamm(s.ctx, marketID, maturity)
			s.Require().NoError(err, "GetVamm")

			res, err := s.k.ExecuteTakerOrder(s.ctx, keeper.TakerOrder{
				AccountID:         taker,
				MarketID:          marketID,
				Maturity:          maturity,
				BaseAmount:        intOf(tc.base),
				SqrtPriceLimitX96: tc.priceLimit,
			})
			if tc.expErr == nil {
				s.Require().NoError(err, "ExecuteTakerOrder")
				s.Assert().Equal(intOf(tc.base).String(), res.ExecutedBase.String(), "executed base")
				s.assertInvariants()
				return
			}
			s.Require().ErrorIs(err, tc.expErr, "ExecuteTakerOrder")

			after, err := s.k.GetVamm(s.ctx, marketID, maturity)
			s.Require().NoError(err, "GetVamm")
			s.Assert().Equal(before, after, "vamm should be unchanged by a failed order")
			s.assertFilled(taker, 0, 0, 0)
			s.assertFilled(maker, 0, 0, 0)
			oi, err := s.k.GetOpenInterest(s.ctx, marketID, maturity)
			s.Require().NoError(err, "GetOpenInterest")
			s.Assert().True(oi.IsZero(), "open interest after a failed order")
		})
	}
}

func (s *TestSuite) TestExecuteTakerOrderWithSpread() {
	s.setupMarket(types.RateModelLinear, "0")
	cfg := types.DefaultVammMutableConfig()
	cfg.Spread = dec("0.003")
	s.setupVamm(cfg)
	maker, long, short := s.createAccount(), s.createAccount(), s.createAccount()
	s.mint(maker, -19500, -11040, 10_000_000_000)

	// each side is charged ceil(2 * 1e8 * 1.0 * 0.003) on top of the pool price
	paid := s.swap(long, 100_000_000)
	received := s.swap(short, -100_000_000)
	s.Assert().Equal("600000", paid.SpreadCharge.String(), "long spread charge")
	s.Assert().Equal("600000", received.SpreadCharge.String(), "short spread charge")
	s.Assert().True(paid.ExecutedQuote.IsNegative(), "long quote %s", paid.ExecutedQuote)
	s.Assert().True(received.ExecutedQuote.IsPositive(), "short quote %s", received.ExecutedQuote)

	filled := s.filled(maker)
	makerQuote := paid.ExecutedQuote.Add(paid.SpreadCharge).Add(received.ExecutedQuote).Add(received.SpreadCharge).Neg()
	s.Assert().True(filled.Base.IsZero(), "maker base after a round trip")
	s.Assert().Equal(makerQuote.String(), filled.Quote.String(), "maker quote after a round trip")
	s.Assert().Equal("1200000", filled.AccruedInterest.String(), "maker spread credit")

	collected, err := s.k.GetCollectedSpread(s.ctx, marketID, maturity)
	s.Require().NoError(err, "GetCollectedSpread")
	s.Assert().Equal("1200000", collected.String(), "collected spread")
	s.assertInvariants()
}

func (s *TestSuite) TestCreditSpreadProRata() {
	tests := []struct {
		name      string
		charge    int64
		makerBase map[uint64]int64
		expected  map[uint64]int64
	}{
		{
			name:      "single maker takes the whole charge",
			charge:    3_254_390,
			makerBase: map[uint64]int64{1: 1_000_000_000},
			expected:  map[uint64]int64{1: 3_254_390},
		},
		{
			name:      "split by absolute base",
			charge:    1_000,
			makerBase: map[uint64]int64{1: -300, 2: -100},
			expected:  map[uint64]int64{1: 750, 2: 250},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			bases := make(map[uint64]sdkmath.Int, len(tc.makerBase))
			for id, base := range tc.makerBase {
				bases[id] = intOf(base)
			}
			credits, err := s.k.TestAccessor_creditSpread(s.T(), intOf(tc.charge), bases)
			s.Require().NoError(err, "creditSpread")
			total := sdkmath.ZeroInt()
			for id, expected := range tc.expected {
				s.Assert().Equal(intOf(expected).String(), credits[id].String(), "maker %d credit", id)
				total = total.Add(credits[id])
			}
			s.Assert().Equal(intOf(tc.charge).String(), total.String(), "credits add up to the charge")
		})
	}
}

func (s *TestSuite) TestExecuteTakerOrderAllowedTickBounds() {
	s.setupMarket(types.RateModelLinear, "0")
	cfg := types.DefaultVammMutableConfig()
	cfg.MinTickAllowed = -17040
	s.setupVamm(cfg)
	maker, taker := s.createAccount(), s.createAccount()
	s.mint(maker, -17040, -11040, 10_000_000_000)

	available := s.unfilled(maker).BaseLong
	s.Require().True(available.IsPositive(), "unfilled base long")
	res, err := s.k.ExecuteTakerOrder(s.ctx, keeper.TakerOrder{AccountID: taker, MarketID: marketID, Maturity: maturity, BaseAmount: available})
	s.Require().NoError(err, "ExecuteTakerOrder for the whole long side")
	s.Assert().Equal(int32(-17040), res.Tick, "tick stops at the lowest allowed tick")
	s.assertUnfilledBase(maker, 0, 10_000_000_000-1)

	_, err = s.k.ExecuteTakerOrder(s.ctx, keeper.TakerOrder{AccountID: taker, MarketID: marketID, Maturity: maturity, BaseAmount: intOf(1)})
	s.Require().ErrorIs(err, types.ErrInsufficientLiquidity, "order beyond the lowest allowed tick")

	vamm, err := s.k.GetVamm(s.ctx, marketID, maturity)
	s.Require().NoError(err, "GetVamm")
	s.Assert().Equal(int32(-17040), vamm.State.Tick, "tick")
	s.Assert().False(vamm.State.Liquidity.IsZero(), "range stays active at its lower bound")

	res = s.swap(taker, -1_000_000_000)
	s.Assert().Greater(res.Tick, int32(-17040), "tick after moving back up")
	s.Require().NoError(s.k.CheckLiquidity(s.ctx, marketID, maturity), "CheckLiquidity")
	s.assertInvariants()
}

func (s *TestSuite) TestTakerPositionsPerAccountLimit() {
	s.setupPool()
	cfg := types.DefaultMarketConfiguration()
	cfg.TakerPositionsPerAccountLimit = 1
	s.Require().NoError(s.k.SetMarketConfiguration(s.ctx, marketID, cfg), "SetMarketConfiguration")

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
	_, err = s.k.ExecuteMakerOrder(s.ctx, keeper.MakerOrder{AccountID: maker, MarketID: marketID, Maturity: second, TickLower: -19500, TickUpper: -11040, BaseAmount: intOf(10_000_000_000)})
	s.Require().NoError(err, "ExecuteMakerOrder second maturity")

	s.swap(taker, 1_000_000)
	s.swap(taker, -1_000_000)
	_, err = s.k.ExecuteTakerOrder(s.ctx, keeper.TakerOrder{AccountID: taker, MarketID: marketID, Maturity: second, BaseAmount: intOf(1_000_000)})
	s.Require().ErrorIs(err, types.ErrLimitExceeded, "taker order in a second maturity")
}

func (s *TestSuite) TestTakerOrderLifecycleWindows() {
	s.setupMarket(types.RateModelLinear, "0")
	cfg := types.DefaultVammMutableConfig()
	cfg.InactiveWindowBeforeMaturity = 3600
	s.setupVamm(cfg)
	maker, taker := s.createAccount(), s.createAccount()
	s.mint(maker, -19500, -11040, 10_000_000_000)
	order := keeper.TakerOrder{AccountID: taker, MarketID: marketID, Maturity: maturity, BaseAmount: intOf(1_000_000)}

	s.setBlockTime(maturity - 3601)
	_, err := s.k.ExecuteTakerOrder(s.ctx, order)
	s.Require().NoError(err, "order before the inactive window")

	s.setBlockTime(maturity - 3600)
	_, err = s.k.ExecuteTakerOrder(s.ctx, order)
	s.Require().ErrorIs(err, types.ErrCloseToMaturity, "order inside the inactive window")

	s.setBlockTime(maturity)
	_, err = s.k.ExecuteTakerOrder(s.ctx, order)
	s.Require().ErrorIs(err, types.ErrMaturityReached, "order at maturity")
}

func (s *TestSuite) TestSettleValidation() {
	s.setupPool()
	maker, taker, idle := s.createAccount(), s.createAccount(), s.createAccount()
	s.mint(maker, -19500, -11040, 10_000_000_000)
	s.swap(taker, 1_000_000_000)

	_, err := s.k.Settle(s.ctx, marketID, maturity, taker)
	s.Require().ErrorIs(err, types.ErrNotYetMatured, "settle before maturity")

	s.setBlockTime(maturity)
	_, err = s.k.Settle(s.ctx, marketID, maturity, idle)
	s.Require().ErrorIs(err, types.ErrNotFound, "settle without a position")
	_, err = s.k.Settle(s.ctx, marketID, maturity-1, taker)
	s.Require().ErrorIs(err, types.ErrNotFound, "settle an unknown maturity")

	s.flags.SetEnabled(marketID, maturity, false)
	_, err = s.k.Settle(s.ctx, marketID, maturity, taker)
	s.Require().ErrorIs(err, types.ErrMarketDisabled, "settle a disabled market")
	s.flags.SetEnabled(marketID, maturity, true)

	takerCashflow := s.settle(taker)
	makerCashflow := s.settle(maker)
	s.Assert().True(takerCashflow.Add(makerCashflow).IsZero(), "settlement sum %s", takerCashflow.Add(makerCashflow))
	_, err = s.k.Settle(s.ctx, marketID, maturity, maker)
	s.Require().ErrorIs(err, types.ErrAlreadySettled, "second settlement")
}

package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/datedirs/keeper"
	"github.com/provlabs/datedirs/types"
)

func (s *TestSuite) TestExecuteMakerOrderValidation() {
	tests := []struct {
		name   string
		setup  func(accountID uint64)
		lower  int32
		upper  int32
		base   sdkmath.Int
		expErr error
	}{
		{
			name:   "zero base",
			lower:  -19500,
			upper:  -11040,
			base:   sdkmath.ZeroInt(),
			expErr: types.ErrInvalidRequest,
		},
		{
			name:   "inverted range",
			lower:  -11040,
			upper:  -19500,
			base:   intOf(1_000_000),
			expErr: types.ErrInvalidTick,
		},
		{
			name:   "range not aligned to spacing",
			lower:  -19510,
			upper:  -11040,
			base:   intOf(1_000_000),
			expErr: types.ErrInvalidTick,
		},
		{
			name: "range outside the allowed ticks",
			setup: func(uint64) {
				cfg := types.DefaultVammMutableConfig()
				cfg.MinTickAllowed = -18000
				s.Require().NoError(s.k.SetMarketMaturityConfiguration(s.ctx, marketID, maturity, cfg), "SetMarketMaturityConfiguration")
			},
			lower:  -19500,
			upper:  -11040,
			base:   intOf(1_000_000),
			expErr: types.ErrInvalidTick,
		},
		{
			name: "size below the lower limit",
			setup: func(uint64) {
				cfg := types.DefaultMarketConfiguration()
				cfg.PositionSizeLowerLimit = intOf(10_000_000)
				s.Require().NoError(s.k.SetMarketConfiguration(s.ctx, marketID, cfg), "SetMarketConfiguration")
			},
			lower:  -19500,
			upper:  -11040,
			base:   intOf(1_000_000),
			expErr: types.ErrLimitExceeded,
		},
		{
			name: "size above the upper limit",
			setup: func(uint64) {
				cfg := types.DefaultMarketConfiguration()
				cfg.PositionSizeUpperLimit = intOf(10_000_000)
				s.Require().NoError(s.k.SetMarketConfiguration(s.ctx, marketID, cfg), "SetMarketConfiguration")
			},
			lower:  -19500,
			upper:  -11040,
			base:   intOf(10_000_001),
			expErr: types.ErrLimitExceeded,
		},
		{
			name: "too many ranges",
			setup: func(accountID uint64) {
				cfg := types.DefaultMarketConfiguration()
				cfg.MakerPositionsPerAccountLimit = 1
				s.Require().NoError(s.k.SetMarketConfiguration(s.ctx, marketID, cfg), "SetMarketConfiguration")
				s.mint(accountID, -16200, -15000, 1_000_000)
			},
			lower:  -19500,
			upper:  -11040,
			base:   intOf(1_000_000),
			expErr: types.ErrLimitExceeded,
		},
		{
			name: "adding to an existing range within the limit",
			setup: func(accountID uint64) {
				cfg := types.DefaultMarketConfiguration()
				cfg.MakerPositionsPerAccountLimit = 1
				s.Require().NoError(s.k.SetMarketConfiguration(s.ctx, marketID, cfg), "SetMarketConfiguration")
				s.mint(accountID, -19500, -11040, 1_000_000)
			},
			lower: -19500,
			upper: -11040,
			base:  intOf(1_000_000),
		},
		{
			name:   "burning a range that was never minted",
			lower:  -19500,
			upper:  -11040,
			base:   intOf(-1_000_000),
			expErr: types.ErrInsufficientPositionLiquidity,
		},
		{
			name: "burning more than the range holds",
			setup: func(accountID uint64) {
				s.mint(accountID, -19500, -11040, 1_000_000)
			},
			lower:  -19500,
			upper:  -11040,
			base:   intOf(-2_000_000),
			expErr: types.ErrInsufficientPositionLiquidity,
		},
		{
			name: "disabled market",
			setup: func(uint64) {
				s.flags.SetEnabled(marketID, maturity, false)
			},
			lower:  -19500,
			upper:  -11040,
			base:   intOf(1_000_000),
			expErr: types.ErrMarketDisabled,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.setupPool()
			accountID := s.createAccount()
			if tc.setup != nil {
				tc.setup(accountID)
			}
			before, err := s.k.GetVamm(s.ctx, marketID, maturity)
			s.Require().NoError(err, "GetVamm")

			_, err = s.k.ExecuteMakerOrder(s.ctx, keeper.MakerOrder{
				AccountID:  accountID,
				MarketID:   marketID,
				Maturity:   maturity,
				TickLower:  tc.lower,
				TickUpper:  tc.upper,
				BaseAmount: tc.base,
			})
			if tc.expErr == nil {
				s.Require().NoError(err, "ExecuteMakerOrder")
				return
			}
			s.Require().ErrorIs(err, tc.expErr, "ExecuteMakerOrder")
			after, err := s.k.GetVamm(s.ctx, marketID, maturity)
			s.Require().NoError(err, "GetVamm")
			s.Assert().Equal(before, after, "vamm should be unchanged by a failed order")
		})
	}
}

func (s *TestSuite) TestExecuteMakerOrderLiquidityOverflow() {
	s.setupMarket(types.RateModelLinear, "0")
	_, err := s.k.CreateVamm(s.ctx, keeper.CreateVammParams{
		MarketID:            marketID,
		Maturity:            maturity,
		InitTick:            initTick,
		MaxLiquidityPerTick: intOf(60_000_000_000),
		TickSpacing:         60,
		Config:              types.DefaultVammMutableConfig(),
	})
	s.Require().NoError(err, "CreateVamm")
	maker := s.createAccount()

	// the wide range leaves room on -19500 but a second range sharing it overflows
	s.mint(maker, -19500, -11040, 10_000_000_000)
	_, err = s.k.ExecuteMakerOrder(s.ctx, keeper.MakerOrder{
		AccountID:  maker,
		MarketID:   marketID,
		Maturity:   maturity,
		TickLower:  -19500,
		TickUpper:  -16200,
		BaseAmount: intOf(10_000_000_000),
	})
	s.Require().ErrorIs(err, types.ErrLiquidityOverflow, "ExecuteMakerOrder")

	positions, err := s.k.GetMakerPositions(s.ctx, marketID, maturity, maker)
	s.Require().NoError(err, "GetMakerPositions")
	s.Assert().Len(positions, 1, "maker positions")
	tick, err := s.k.GetTick(s.ctx, marketID, maturity, -16200)
	s.Require().NoError(err, "GetTick")
	s.Assert().False(tick.Initialized, "upper tick of the rejected range")
	s.assertInvariants()
}

func (s *TestSuite) TestMakerOrderLifecycleWindows() {
	s.setupMarket(types.RateModelLinear, "0")
	cfg := types.DefaultVammMutableConfig()
	cfg.InactiveWindowBeforeMaturity = 3600
	s.setupVamm(cfg)
	maker := s.createAccount()
	s.mint(maker, -19500, -11040, 2_000_000_000)

	mint := keeper.MakerOrder{AccountID: maker, MarketID: marketID, Maturity: maturity, TickLower: -19500, TickUpper: -11040, BaseAmount: intOf(1_000_000_000)}
	burn := mint
	burn.BaseAmount = intOf(-1_000_000_000)

	s.setBlockTime(maturity - 1800)
	_, err := s.k.ExecuteMakerOrder(s.ctx, mint)
	s.Require().ErrorIs(err, types.ErrCloseToMaturity, "mint inside the inactive window")
	_, err = s.k.ExecuteMakerOrder(s.ctx, burn)
	s.Require().NoError(err, "burn inside the inactive window")

	s.setBlockTime(maturity)
	_, err = s.k.ExecuteMakerOrder(s.ctx, mint)
	s.Require().ErrorIs(err, types.ErrMaturityReached, "mint at maturity")
	_, err = s.k.ExecuteMakerOrder(s.ctx, burn)
	s.Require().NoError(err, "burn at maturity")

	s.Assert().True(s.settle(maker).IsZero(), "cashflow of a maker that never filled")
	_, err = s.k.ExecuteMakerOrder(s.ctx, burn)
	s.Require().ErrorIs(err, types.ErrAlreadySettled, "burn after settlement")
	s.Require().NoError(s.k.CheckLiquidity(s.ctx, marketID, maturity), "CheckLiquidity")
}

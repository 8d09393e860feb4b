package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/datedirs/types"
)

// TestSingleMakerLifecycle runs one maker range against one short taker through
// settlement.
func (s *TestSuite) TestSingleMakerLifecycle() {
	s.setupPool()
	maker, taker := s.createAccount(), s.createAccount()

	res := s.mint(maker, -19500, -11040, 10_000_000_000)
	s.Assert().Equal("50351905911", res.LiquidityDelta.String(), "liquidity delta")
	s.Assert().Equal("50351905911", res.Liquidity.String(), "range liquidity")

	unfilled := s.unfilled(maker)
	s.Assert().Equal("3523858284", unfilled.BaseLong.String(), "base long after mint")
	s.Assert().Equal("6476141715", unfilled.BaseShort.String(), "base short after mint")
	s.Assert().Equal("176207294", unfilled.QuoteLong.String(), "quote long after mint")
	s.Assert().Equal("323833513", unfilled.QuoteShort.String(), "quote short after mint")
	s.Assert().Equal("3523858284", unfilled.AnnualizedNotionalLong.String(), "annualized long after mint")
	s.Assert().Equal("6476141715", unfilled.AnnualizedNotionalShort.String(), "annualized short after mint")
	s.assertFilled(maker, 0, 0, 0)

	s.setBlockTime(t0 + year/2)
	s.recordIndex("1.01")
	swap := s.swap(taker, -1_000_000_000)
	s.Assert().Equal("-1000000000", swap.ExecutedBase.String(), "executed base")
	s.Assert().Equal("48356576", swap.ExecutedQuote.String(), "executed quote")
	s.Assert().Equal("-505000000", swap.AnnualizedNotional.String(), "annualized notional")
	s.Assert().Equal(int32(-15227), swap.Tick, "tick after swap")

	s.assertFilled(taker, -1_000_000_000, 48_356_576, 0)
	s.assertFilled(maker, 1_000_000_000, -48_356_576, 0)
	unfilled = s.unfilled(maker)
	s.Assert().Equal("4523858284", unfilled.BaseLong.String(), "base long after swap")
	s.Assert().Equal("5476141715", unfilled.BaseShort.String(), "base short after swap")
	// half a year to maturity halves the unfilled quotes at the same price
	s.Assert().Equal("114236744", unfilled.QuoteLong.String(), "quote long after swap")
	s.Assert().Equal("138283863", unfilled.QuoteShort.String(), "quote short after swap")
	s.Assert().Equal("2284548433", unfilled.AnnualizedNotionalLong.String(), "annualized long after swap")
	s.Assert().Equal("2765451566", unfilled.AnnualizedNotionalShort.String(), "annualized short after swap")

	oi, err := s.k.GetOpenInterest(s.ctx, marketID, maturity)
	s.Require().NoError(err, "GetOpenInterest")
	s.Assert().Equal("1000000000", oi.String(), "open interest")
	s.assertInvariants()

	s.setBlockTime(maturity)
	s.recordIndex("1.02")
	s.assertFilled(taker, -1_000_000_000, 48_356_576, -10_000_000)
	s.assertFilled(maker, 1_000_000_000, -48_356_576, 10_000_000)

	makerCashflow := s.settle(maker)
	takerCashflow := s.settle(taker)
	s.Assert().Equal("-38356576", makerCashflow.String(), "maker cashflow")
	s.Assert().Equal("38356576", takerCashflow.String(), "taker cashflow")

	sum, n, err := s.k.SettlementSum(s.ctx, marketID, maturity)
	s.Require().NoError(err, "SettlementSum")
	s.Assert().Equal(2, n, "settled accounts")
	s.Assert().True(sum.IsZero(), "settlement sum %s", sum)

	index, err := s.k.MaturityIndices.Get(s.ctx, pool())
	s.Require().NoError(err, "maturity index")
	s.Assert().Equal(dec("1.02").String(), index.String(), "maturity index")

	s.setBlockTime(maturity + 100)
	s.recordIndex("1.03")
	_, err = s.k.Settle(s.ctx, marketID, maturity, taker)
	s.Require().ErrorIs(err, types.ErrAlreadySettled, "second settlement")
	index, err = s.k.MaturityIndices.Get(s.ctx, pool())
	s.Require().NoError(err, "maturity index after second settlement")
	s.Assert().Equal(dec("1.02").String(), index.String(), "maturity index after second settlement")

	// balances are retained after settlement
	s.assertFilled(taker, -1_000_000_000, 48_356_576, -10_000_000)
	s.assertUnfilledBase(maker, 4_523_858_284, 5_476_141_715)
	cashflow, found, err := s.k.GetSettlement(s.ctx, marketID, maturity, taker)
	s.Require().NoError(err, "GetSettlement")
	s.Assert().True(found, "settlement found")
	s.Assert().Equal("38356576", cashflow.String(), "recorded cashflow")
}

// TestSpreadChargeOnShortTaker charges the taker of the lifecycle swap a spread
// and credits it to the maker's accrued interest.
func (s *TestSuite) TestSpreadChargeOnShortTaker() {
	s.setupMarket(types.RateModelLinear, "0")
	cfg := types.DefaultVammMutableConfig()
	cfg.Spread = dec("0.001611084158415841")
	s.setupVamm(cfg)
	maker, taker := s.createAccount(), s.createAccount()
	s.mint(maker, -19500, -11040, 10_000_000_000)

	s.setBlockTime(t0 + year/2)
	s.recordIndex("1.01")
	swap := s.swap(taker, -1_000_000_000)
	s.Assert().Equal("-1000000000", swap.ExecutedBase.String(), "executed base")
	s.Assert().Equal("45102186", swap.ExecutedQuote.String(), "executed quote")
	s.Assert().Equal("3254390", swap.SpreadCharge.String(), "spread charge")
	s.Assert().Equal("-505000000", swap.AnnualizedNotional.String(), "annualized notional")

	s.assertFilled(taker, -1_000_000_000, 45_102_186, 0)
	s.assertFilled(maker, 1_000_000_000, -48_356_576, 3_254_390)
	collected, err := s.k.GetCollectedSpread(s.ctx, marketID, maturity)
	s.Require().NoError(err, "GetCollectedSpread")
	s.Assert().Equal("3254390", collected.String(), "collected spread")
	s.assertInvariants()

	s.setBlockTime(maturity)
	s.recordIndex("1.02")
	takerCashflow := s.settle(taker)
	makerCashflow := s.settle(maker)
	s.Assert().Equal("35102186", takerCashflow.String(), "taker cashflow")
	s.Assert().Equal("-35102186", makerCashflow.String(), "maker cashflow")
	sum, _, err := s.k.SettlementSum(s.ctx, marketID, maturity)
	s.Require().NoError(err, "SettlementSum")
	s.Assert().True(sum.IsZero(), "settlement sum %s", sum)
}

// TestOverlappingMakersCrossingTicks trades through the boundaries of a narrow
// range nested in a wide one in both directions.
func (s *TestSuite) TestOverlappingMakersCrossingTicks() {
	s.setupPool()
	wide, narrow := s.createAccount(), s.createAccount()
	short, long := s.createAccount(), s.createAccount()

	s.Assert().Equal("50351905911", s.mint(wide, -19500, -11040, 10_000_000_000).LiquidityDelta.String(), "wide liquidity")
	s.Assert().Equal("72705636852", s.mint(narrow, -16200, -15000, 2_000_000_000).LiquidityDelta.String(), "narrow liquidity")
	vamm, err := s.k.GetVamm(s.ctx, marketID, maturity)
	s.Require().NoError(err, "GetVamm")
	s.Assert().Equal("123057542763", vamm.State.Liquidity.String(), "active liquidity")
	s.assertUnfilledBase(wide, 3_523_858_284, 6_476_141_715)
	s.assertUnfilledBase(narrow, 168_623_604, 1_831_376_395)

	s.setBlockTime(t0 + year/4)
	s.recordIndex("1.005")
	res := s.swap(short, -4_000_000_000)
	s.Assert().Equal("-4000000000", res.ExecutedBase.String(), "short executed base")
	s.Assert().Equal("186534873", res.ExecutedQuote.String(), "short executed quote")
	s.Assert().Equal("-3015000000", res.AnnualizedNotional.String(), "short annualized notional")
	s.Assert().Equal(int32(-14257), res.Tick, "tick after short")
	s.assertFilled(wide, 2_168_623_604, -99_408_232, 0)
	s.assertFilled(narrow, 1_831_376_396, -87_126_641, 0)
	s.assertFilled(short, -4_000_000_000, 186_534_873, 0)
	vamm, err = s.k.GetVamm(s.ctx, marketID, maturity)
	s.Require().NoError(err, "GetVamm")
	s.Assert().Equal("50351905911", vamm.State.Liquidity.String(), "active liquidity above the narrow range")
	s.assertInvariants()

	s.setBlockTime(t0 + year/2)
	s.recordIndex("1.01")
	res = s.swap(long, 6_000_000_000)
	s.Assert().Equal("6000000000", res.ExecutedBase.String(), "long executed base")
	s.Assert().Equal("-296704166", res.ExecutedQuote.String(), "long executed quote")
	s.Assert().Equal("3030000000", res.AnnualizedNotional.String(), "long annualized notional")
	s.Assert().Equal(int32(-17793), res.Tick, "tick after long")
	s.assertFilled(wide, -1_831_376_397, 101_175_242, 10_843_118)
	s.assertFilled(narrow, -168_623_603, 8_994_051, 9_156_881)
	s.assertFilled(short, -4_000_000_000, 186_534_873, -20_000_000)
	s.assertFilled(long, 6_000_000_000, -296_704_166, 0)
	s.assertUnfilledBase(wide, 1_692_481_888, 8_307_518_111)
	s.assertUnfilledBase(narrow, 0, 1_999_999_999)

	oi, err := s.k.GetOpenInterest(s.ctx, marketID, maturity)
	s.Require().NoError(err, "GetOpenInterest")
	s.Assert().Equal("6000000000", oi.String(), "open interest")
	s.Require().NoError(s.k.CheckLiquidity(s.ctx, marketID, maturity), "CheckLiquidity")
	s.assertInvariants()

	s.setBlockTime(maturity)
	s.recordIndex("1.015")
	expected := map[uint64]int64{wide: 102_861_478, narrow: 17_307_813, short: 146_534_873, long: -266_704_166}
	total := sdkmath.ZeroInt()
	for _, id := range []uint64{wide, narrow, short, long} {
		cashflow := s.settle(id)
		s.Assert().Equal(intOf(expected[id]).String(), cashflow.String(), "account %d cashflow", id)
		total = total.Add(cashflow)
	}
	s.Assert().True(total.Abs().LTE(intOf(4)), "settlement sum %s within rounding", total)
}

// TestRoundTripLiquidity mints and burns the same range and expects the tick
// book to return to empty.
func (s *TestSuite) TestRoundTripLiquidity() {
	s.setupPool()
	maker := s.createAccount()

	s.mint(maker, -19500, -11040, 10_000_000_000)
	res := s.mint(maker, -19500, -11040, -10_000_000_000)
	s.Assert().Equal("-50351905911", res.LiquidityDelta.String(), "burned liquidity")
	s.Assert().True(res.Liquidity.IsZero(), "range liquidity after burn")

	for _, tick := range []int32{-19500, -11040} {
		t, err := s.k.GetTick(s.ctx, marketID, maturity, tick)
		s.Require().NoError(err, "GetTick(%d)", tick)
		s.Assert().False(t.Initialized, "tick %d initialized", tick)
		s.Assert().True(t.LiquidityGross.IsZero(), "tick %d gross", tick)
		s.Assert().True(t.LiquidityNet.IsZero(), "tick %d net", tick)
	}
	vamm, err := s.k.GetVamm(s.ctx, marketID, maturity)
	s.Require().NoError(err, "GetVamm")
	s.Assert().True(vamm.State.Liquidity.IsZero(), "active liquidity")
	positions, err := s.k.GetMakerPositions(s.ctx, marketID, maturity, maker)
	s.Require().NoError(err, "GetMakerPositions")
	s.Assert().Empty(positions, "maker positions")
	s.assertUnfilledBase(maker, 0, 0)
	s.assertInvariants()
}

// TestCompoundingMaturityIndexProjection settles a pool whose oracle stopped
// reporting before maturity.
func (s *TestSuite) TestCompoundingMaturityIndexProjection() {
	market := s.setupMarket(types.RateModelCompounding, "0.05")
	s.setupVamm(types.DefaultVammMutableConfig())

	s.setBlockTime(maturity + 10)
	index, err := s.k.CacheMaturityIndex(s.ctx, marketID, maturity)
	s.Require().NoError(err, "CacheMaturityIndex")
	s.Assert().True(index.Sub(dec("1.05")).Abs().LTE(dec("0.000000001")), "maturity index %s should be about 1.05", index)

	again, cached, err := s.k.MaturityIndex(s.ctx, market, maturity)
	s.Require().NoError(err, "MaturityIndex")
	s.Assert().True(cached, "maturity index cached")
	s.Assert().Equal(index.String(), again.String(), "cached maturity index")
}

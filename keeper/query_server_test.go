package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"

	"github.com/provlabs/datedirs/keeper"
	"github.com/provlabs/datedirs/tickmath"
	"github.com/provlabs/datedirs/types"
	querytest "github.com/provlabs/datedirs/utils/query"
)

// expectedMarket is the market created by setupMarket.
func expectedMarket(model types.RateModel) types.Market {
	return types.Market{
		ID:                         marketID,
		QuoteDenom:                 "usdc",
		QuoteDecimals:              6,
		Type:                       model,
		OracleID:                   oracleID,
		MaturityIndexCachingWindow: 3600,
		Config:                     types.DefaultMarketConfiguration(),
	}
}

// setupTrade mints one range for account 1 and fills a short for account 2
// half way to maturity.
func (s *TestSuite) setupTrade() {
	s.setupPool()
	maker, taker := s.createAccount(), s.createAccount()
	s.mint(maker, -19500, -11040, 10_000_000_000)
	s.setBlockTime(t0 + year/2)
	s.recordIndex("1.01")
	s.swap(taker, -1_000_000_000)
}

func (s *TestSuite) TestQueryServer_Market() {
	testDef := querytest.TestDef[types.QueryMarketRequest, types.QueryMarketResponse]{
		QueryName: "Market",
		Query:     keeper.NewQueryServer(s.k).Market,
	}

	tests := []querytest.TestCase[types.QueryMarketRequest, types.QueryMarketResponse]{
		{
			Name:         "market found",
			Setup:        s.setupPool,
			Req:          &types.QueryMarketRequest{MarketID: marketID},
			ExpectedResp: &types.QueryMarketResponse{Market: expectedMarket(types.RateModelLinear)},
		},
		{
			Name:               "market not found",
			Req:                &types.QueryMarketRequest{MarketID: 9},
			ExpectedCode:       codes.NotFound,
			ExpectedErrSubstrs: []string{"market 9"},
		},
		{
			Name:               "nil request",
			ExpectedErrSubstrs: []string{"invalid request"},
		},
	}

	for _, tc := range tests {
		s.Run(tc.Name, func() {
			querytest.RunTestCase(s, testDef, tc)
		})
	}
}

func (s *TestSuite) TestQueryServer_Markets() {
	testDef := querytest.TestDef[types.QueryMarketsRequest, types.QueryMarketsResponse]{
		QueryName: "Markets",
		Query:     keeper.NewQueryServer(s.k).Markets,
	}

	tests := []querytest.TestCase[types.QueryMarketsRequest, types.QueryMarketsResponse]{
		{
			Name:  "one market",
			Setup: s.setupPool,
			Req:   &types.QueryMarketsRequest{Pagination: &query.PageRequest{Limit: 10}},
			ExpectedResp: &types.QueryMarketsResponse{
				Markets:    []types.Market{expectedMarket(types.RateModelLinear)},
				Pagination: &query.PageResponse{},
			},
		},
		{
			Name:               "nil request",
			ExpectedErrSubstrs: []string{"invalid request"},
		},
	}

	for _, tc := range tests {
		s.Run(tc.Name, func() {
			querytest.RunTestCase(s, testDef, tc)
		})
	}
}

func (s *TestSuite) TestQueryServer_VammTick() {
	testDef := querytest.TestDef[types.QueryVammTickRequest, types.QueryVammTickResponse]{
		QueryName: "VammTick",
		Query:     keeper.NewQueryServer(s.k).VammTick,
	}
	sqrt := tickmath.MustSqrtRatioAtTick(initTick)

	tests := []querytest.TestCase[types.QueryVammTickRequest, types.QueryVammTickResponse]{
		{
			Name:  "initial tick",
			Setup: s.setupPool,
			Req:   &types.QueryVammTickRequest{MarketID: marketID, Maturity: maturity},
			ExpectedResp: &types.QueryVammTickResponse{
				Tick:         initTick,
				SqrtPriceX96: sqrt,
				Price:        tickmath.PriceAtSqrtRatio(sqrt),
			},
		},
		{
			Name:         "unknown maturity",
			Setup:        s.setupPool,
			Req:          &types.QueryVammTickRequest{MarketID: marketID, Maturity: maturity + 1},
			ExpectedCode: codes.NotFound,
		},
	}

	for _, tc := range tests {
		s.Run(tc.Name, func() {
			querytest.RunTestCase(s, testDef, tc)
		})
	}
}

func (s *TestSuite) TestQueryServer_RateIndexCurrent() {
	testDef := querytest.TestDef[types.QueryRateIndexCurrentRequest, types.QueryRateIndexCurrentResponse]{
		QueryName: "RateIndexCurrent",
		Query:     keeper.NewQueryServer(s.k).RateIndexCurrent,
	}

	tests := []querytest.TestCase[types.QueryRateIndexCurrentRequest, types.QueryRateIndexCurrentResponse]{
		{
			Name: "projected from the last observation",
			Setup: func() {
				s.setupMarket(types.RateModelLinear, "0.0365")
				s.setBlockTime(t0 + year/2)
			},
			Req:          &types.QueryRateIndexCurrentRequest{MarketID: marketID},
			ExpectedResp: &types.QueryRateIndexCurrentResponse{Index: dec("1.01825")},
		},
		{
			Name: "market without oracle",
			Setup: func() {
				_, err := s.k.CreateMarket(s.ctx, marketID, "usdc", types.RateModelLinear)
				s.Require().NoError(err, "CreateMarket")
			},
			Req:                &types.QueryRateIndexCurrentRequest{MarketID: marketID},
			ExpectedCode:       codes.FailedPrecondition,
			ExpectedErrSubstrs: []string{"not initialized"},
		},
	}

	for _, tc := range tests {
		s.Run(tc.Name, func() {
			querytest.RunTestCase(s, testDef, tc)
		})
	}
}

func (s *TestSuite) TestQueryServer_RateIndexMaturity() {
	testDef := querytest.TestDef[types.QueryRateIndexMaturityRequest, types.QueryRateIndexMaturityResponse]{
		QueryName: "RateIndexMaturity",
		Query:     keeper.NewQueryServer(s.k).RateIndexMaturity,
	}

	tests := []querytest.TestCase[types.QueryRateIndexMaturityRequest, types.QueryRateIndexMaturityResponse]{
		{
			Name: "projection before maturity",
			Setup: func() {
				s.setupMarket(types.RateModelLinear, "0.0365")
				s.setupVamm(types.DefaultVammMutableConfig())
			},
			Req:          &types.QueryRateIndexMaturityRequest{MarketID: marketID, Maturity: maturity},
			ExpectedResp: &types.QueryRateIndexMaturityResponse{Index: dec("1.0365"), Cached: false},
		},
		{
			Name: "cached after maturity",
			Setup: func() {
				s.setupPool()
				s.setBlockTime(maturity)
				s.recordIndex("1.02")
				_, err := s.k.CacheMaturityIndex(s.ctx, marketID, maturity)
				s.Require().NoError(err, "CacheMaturityIndex")
			},
			Req:          &types.QueryRateIndexMaturityRequest{MarketID: marketID, Maturity: maturity},
			ExpectedResp: &types.QueryRateIndexMaturityResponse{Index: dec("1.02"), Cached: true},
		},
		{
			Name:         "unknown market",
			Req:          &types.QueryRateIndexMaturityRequest{MarketID: marketID, Maturity: maturity},
			ExpectedCode: codes.NotFound,
		},
	}

	for _, tc := range tests {
		s.Run(tc.Name, func() {
			querytest.RunTestCase(s, testDef, tc)
		})
	}
}

func (s *TestSuite) TestQueryServer_AdjustedTwap() {
	testDef := querytest.TestDef[types.QueryAdjustedTwapRequest, types.QueryAdjustedTwapResponse]{
		QueryName: "AdjustedTwap",
		Query:     keeper.NewQueryServer(s.k).AdjustedTwap,
	}
	price, err := tickmath.PriceAtTick(initTick)
	s.Require().NoError(err, "PriceAtTick")

	tests := []querytest.TestCase[types.QueryAdjustedTwapRequest, types.QueryAdjustedTwapResponse]{
		{
			Name:         "unadjusted twap of a flat history",
			Setup:        s.setupPool,
			Req:          &types.QueryAdjustedTwapRequest{MarketID: marketID, Maturity: maturity},
			ExpectedResp: &types.QueryAdjustedTwapResponse{Price: price},
		},
		{
			Name:         "explicit zero order size and lookback override",
			Setup:        s.setupPool,
			Req:          &types.QueryAdjustedTwapRequest{MarketID: marketID, Maturity: maturity, OrderSize: sdkmath.ZeroInt(), Lookback: 1800},
			ExpectedResp: &types.QueryAdjustedTwapResponse{Price: price},
		},
		{
			Name:         "lookback beyond the oldest observation",
			Setup:        s.setupPool,
			Req:          &types.QueryAdjustedTwapRequest{MarketID: marketID, Maturity: maturity, Lookback: 7200},
			ExpectedCode: codes.FailedPrecondition,
		},
	}

	for _, tc := range tests {
		s.Run(tc.Name, func() {
			querytest.RunTestCase(s, testDef, tc)
		})
	}
}

func (s *TestSuite) TestQueryServer_AccountBalances() {
	server := keeper.NewQueryServer(s.k)
	filledDef := querytest.TestDef[types.QueryAccountFilledBalancesRequest, types.QueryAccountFilledBalancesResponse]{
		QueryName: "AccountFilledBalances",
		Query:     server.AccountFilledBalances,
	}
	filledTests := []querytest.TestCase[types.QueryAccountFilledBalancesRequest, types.QueryAccountFilledBalancesResponse]{
		{
			Name:  "taker",
			Setup: s.setupTrade,
			Req:   &types.QueryAccountFilledBalancesRequest{MarketID: marketID, Maturity: maturity, AccountID: 2},
			ExpectedResp: &types.QueryAccountFilledBalancesResponse{Balances: types.FilledBalances{
				Base:            intOf(-1_000_000_000),
				Quote:           intOf(48_356_576),
				AccruedInterest: intOf(0),
			}},
		},
		{
			Name:  "account without a position",
			Setup: s.setupTrade,
			Req:   &types.QueryAccountFilledBalancesRequest{MarketID: marketID, Maturity: maturity, AccountID: 7},
			ExpectedResp: &types.QueryAccountFilledBalancesResponse{Balances: types.FilledBalances{
				Base:            intOf(0),
				Quote:           intOf(0),
				AccruedInterest: intOf(0),
			}},
		},
	}
	for _, tc := range filledTests {
		s.Run(filledDef.QueryName+" "+tc.Name, func() {
			querytest.RunTestCase(s, filledDef, tc)
		})
	}

	unfilledDef := querytest.TestDef[types.QueryAccountUnfilledBaseAndQuoteRequest, types.QueryAccountUnfilledBaseAndQuoteResponse]{
		QueryName: "AccountUnfilledBaseAndQuote",
		Query:     server.AccountUnfilledBaseAndQuote,
	}
	unfilledTests := []querytest.TestCase[types.QueryAccountUnfilledBaseAndQuoteRequest, types.QueryAccountUnfilledBaseAndQuoteResponse]{
		{
			Name:  "maker",
			Setup: s.setupTrade,
			Req:   &types.QueryAccountUnfilledBaseAndQuoteRequest{MarketID: marketID, Maturity: maturity, AccountID: 1},
			ExpectedResp: &types.QueryAccountUnfilledBaseAndQuoteResponse{Balances: types.UnfilledBalances{
				BaseLong:                intOf(4_523_858_284),
				BaseShort:               intOf(5_476_141_715),
				QuoteLong:               intOf(114_236_744),
				QuoteShort:              intOf(138_283_863),
				AnnualizedNotionalLong:  intOf(2_284_548_433),
				AnnualizedNotionalShort: intOf(2_765_451_566),
			}},
		},
		{
			Name:         "taker has no ranges",
			Setup:        s.setupTrade,
			Req:          &types.QueryAccountUnfilledBaseAndQuoteRequest{MarketID: marketID, Maturity: maturity, AccountID: 2},
			ExpectedResp: &types.QueryAccountUnfilledBaseAndQuoteResponse{Balances: types.NewUnfilledBalances()},
		},
	}
	for _, tc := range unfilledTests {
		s.Run(unfilledDef.QueryName+" "+tc.Name, func() {
			querytest.RunTestCase(s, unfilledDef, tc)
		})
	}
}

func (s *TestSuite) TestQueryServer_Settlement() {
	testDef := querytest.TestDef[types.QuerySettlementRequest, types.QuerySettlementResponse]{
		QueryName: "Settlement",
		Query:     keeper.NewQueryServer(s.k).Settlement,
	}

	tests := []querytest.TestCase[types.QuerySettlementRequest, types.QuerySettlementResponse]{
		{
			Name:         "not settled",
			Setup:        s.setupTrade,
			Req:          &types.QuerySettlementRequest{MarketID: marketID, Maturity: maturity, AccountID: 2},
			ExpectedResp: &types.QuerySettlementResponse{Settled: false, Cashflow: intOf(0)},
		},
		{
			Name: "settled",
			Setup: func() {
				s.setupTrade()
				s.setBlockTime(maturity)
				s.recordIndex("1.02")
				s.settle(2)
			},
			Req:          &types.QuerySettlementRequest{MarketID: marketID, Maturity: maturity, AccountID: 2},
			ExpectedResp: &types.QuerySettlementResponse{Settled: true, Cashflow: intOf(38_356_576)},
		},
	}

	for _, tc := range tests {
		s.Run(tc.Name, func() {
			querytest.RunTestCase(s, testDef, tc)
		})
	}
}

package keeper_test

import (
	"encoding/json"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/datedirs/keeper"
	"github.com/provlabs/datedirs/types"
)

func (s *TestSuite) TestGenesisRoundTrip() {
	s.setupPool()
	maker, taker := s.createAccount(), s.createAccount()
	s.mint(maker, -19500, -11040, 10_000_000_000)
	s.setBlockTime(t0 + year/2)
	s.recordIndex("1.01")
	s.swap(taker, -1_000_000_000)
	s.setBlockTime(maturity)
	s.recordIndex("1.02")
	s.settle(maker)

	exported := s.k.ExportGenesis(s.ctx)
	s.Require().NoError(exported.Validate(), "exported genesis Validate")
	s.Assert().Equal(uint64(3), exported.NextAccountID, "next account id")
	s.Assert().Len(exported.Accounts, 2, "accounts")
	s.Assert().Len(exported.Vamms, 1, "vamms")
	s.Assert().Len(exported.MakerPositions, 1, "maker positions")
	s.Assert().Len(exported.AccountPositions, 2, "account positions")
	s.Assert().Len(exported.MaturityIndices, 1, "maturity indices")
	s.Assert().Len(exported.Settlements, 1, "settlements")
	s.Assert().Equal([]types.GenesisTakerMaturity{{AccountID: taker, MarketID: marketID, Maturity: maturity}}, exported.TakerMaturities, "taker maturities")

	blockTime := s.ctx.BlockTime()
	s.SetupTest()
	s.ctx = s.ctx.WithBlockTime(blockTime)
	s.Require().NotPanics(func() { s.k.InitGenesis(s.ctx, exported) }, "InitGenesis")

	reexported := s.k.ExportGenesis(s.ctx)
	expected, err := json.Marshal(exported)
	s.Require().NoError(err, "marshal exported genesis")
	actual, err := json.Marshal(reexported)
	s.Require().NoError(err, "marshal re-exported genesis")
	s.Assert().JSONEq(string(expected), string(actual), "re-exported genesis")

	oi, err := s.k.GetOpenInterest(s.ctx, marketID, maturity)
	s.Require().NoError(err, "GetOpenInterest")
	s.Assert().Equal("1000000000", oi.String(), "derived open interest")
	s.assertInvariants()

	_, err = s.k.Settle(s.ctx, marketID, maturity, maker)
	s.Require().ErrorIs(err, types.ErrAlreadySettled, "imported settlement")
	s.Assert().Equal("38356576", s.settle(taker).String(), "taker cashflow after import")
	s.Assert().Equal(uint64(3), s.createAccount(), "account id after import")
}

func (s *TestSuite) TestInitGenesisQueuesUncachedMaturities() {
	s.setupPool()
	exported := s.k.ExportGenesis(s.ctx)

	s.SetupTest()
	s.k.InitGenesis(s.ctx, exported)
	due, err := s.k.MaturityQueue.Due(s.ctx, maturity)
	s.Require().NoError(err, "MaturityQueue.Due")
	s.Assert().Len(due, 1, "queued maturities")
}

func (s *TestSuite) TestInitGenesisSkipsCachedMaturities() {
	s.setupPool()
	s.setBlockTime(maturity + 10)
	_, err := s.k.CacheMaturityIndex(s.ctx, marketID, maturity)
	s.Require().NoError(err, "CacheMaturityIndex")
	exported := s.k.ExportGenesis(s.ctx)
	s.Require().Len(exported.MaturityIndices, 1, "maturity indices")

	s.SetupTest()
	s.setBlockTime(maturity + 10)
	s.k.InitGenesis(s.ctx, exported)
	due, err := s.k.MaturityQueue.Due(s.ctx, maturity+10)
	s.Require().NoError(err, "MaturityQueue.Due")
	s.Assert().Empty(due, "cached maturities are not queued")
}

func (s *TestSuite) TestCacheMaturityIndexDequeuesCachedPool() {
	s.setupPool()
	s.setBlockTime(maturity + 10)
	index, err := s.k.CacheMaturityIndex(s.ctx, marketID, maturity)
	s.Require().NoError(err, "CacheMaturityIndex")

	// a pool cached while still queued, as after an import of older state
	s.Require().NoError(s.k.MaturityQueue.Enqueue(s.ctx, marketID, maturity), "Enqueue")
	again, err := s.k.CacheMaturityIndex(s.ctx, marketID, maturity)
	s.Require().NoError(err, "CacheMaturityIndex again")
	s.Assert().Equal(index.String(), again.String(), "cached index")
	due, err := s.k.MaturityQueue.Due(s.ctx, maturity+10)
	s.Require().NoError(err, "MaturityQueue.Due")
	s.Assert().Empty(due, "queue after caching again")
}

func (s *TestSuite) TestGenesisKeepsTakerMaturitiesOfTakersOnly() {
	s.setupPool()
	cfg := types.DefaultMarketConfiguration()
	cfg.TakerPositionsPerAccountLimit = 1
	s.Require().NoError(s.k.SetMarketConfiguration(s.ctx, marketID, cfg), "SetMarketConfiguration")
	maker, taker := s.createAccount(), s.createAccount()
	s.mint(maker, -19500, -11040, 10_000_000_000)
	s.swap(taker, -1_000_000_000)

	exported := s.k.ExportGenesis(s.ctx)
	s.SetupTest()
	s.k.InitGenesis(s.ctx, exported)

	makerHas, err := s.k.TakerMaturities.Has(s.ctx, collections.Join3(maker, marketID, maturity))
	s.Require().NoError(err, "TakerMaturities.Has maker")
	s.Assert().False(makerHas, "maker filled by a taker is not a taker")
	takerHas, err := s.k.TakerMaturities.Has(s.ctx, collections.Join3(taker, marketID, maturity))
	s.Require().NoError(err, "TakerMaturities.Has taker")
	s.Assert().True(takerHas, "taker maturity after import")

	second := maturity + year
	_, err = s.k.CreateVamm(s.ctx, keeper.CreateVammParams{
		MarketID:            marketID,
		Maturity:            second,
		InitTick:            initTick,
		MaxLiquidityPerTick: sdkmath.NewIntWithDecimal(1, 30),
		TickSpacing:         60,
		Config:              types.DefaultVammMutableConfig(),
	})
	s.Require().NoError(err, "CreateVamm second maturity")
	_, err = s.k.ExecuteMakerOrder(s.ctx, keeper.MakerOrder{AccountID: taker, MarketID: marketID, Maturity: second, TickLower: -19500, TickUpper: -11040, BaseAmount: intOf(10_000_000_000)})
	s.Require().NoError(err, "ExecuteMakerOrder second maturity")
	_, err = s.k.ExecuteTakerOrder(s.ctx, keeper.TakerOrder{AccountID: maker, MarketID: marketID, Maturity: second, BaseAmount: intOf(-1_000_000)})
	s.Require().NoError(err, "maker trades its first maturity as a taker after import")
}

func (s *TestSuite) TestGenesisCollectedSpread() {
	s.setupMarket(types.RateModelLinear, "0")
	cfg := types.DefaultVammMutableConfig()
	cfg.Spread = dec("0.003")
	s.setupVamm(cfg)
	maker, taker := s.createAccount(), s.createAccount()
	s.mint(maker, -19500, -11040, 10_000_000_000)
	s.swap(taker, 100_000_000)

	exported := s.k.ExportGenesis(s.ctx)
	s.Require().Len(exported.CollectedSpreads, 1, "collected spreads")
	s.Assert().Equal("600000", exported.CollectedSpreads[0].Amount.String(), "exported collected spread")

	s.SetupTest()
	s.k.InitGenesis(s.ctx, exported)
	collected, err := s.k.GetCollectedSpread(s.ctx, marketID, maturity)
	s.Require().NoError(err, "GetCollectedSpread")
	s.Assert().Equal("600000", collected.String(), "imported collected spread")
	s.assertInvariants()
}

func (s *TestSuite) TestInitGenesisRejectsInvalidState() {
	tests := []struct {
		name string
		gs   *types.GenesisState
	}{
		{
			name: "account id beyond the sequence",
			gs: &types.GenesisState{
				NextAccountID: 1,
				Accounts:      []types.Account{{ID: 1, Owner: s.authority}},
			},
		},
		{
			name: "vamm of an unknown market",
			gs: &types.GenesisState{
				NextAccountID: 1,
				Vamms: []types.Vamm{{
					Immutable: types.VammImmutableConfig{MarketID: marketID, Maturity: maturity, MaxLiquidityPerTick: intOf(1), TickSpacing: 60},
					Mutable:   types.DefaultVammMutableConfig(),
					State:     types.VammState{SqrtPriceX96: intOf(1), Liquidity: intOf(0), ObservationCardinality: 1, ObservationCardinalityNext: 1},
				}},
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.Require().Panics(func() { s.k.InitGenesis(s.ctx, tc.gs) }, "InitGenesis")
		})
	}
}

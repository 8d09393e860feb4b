package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/datedirs/keeper"
	"github.com/provlabs/datedirs/types"
	"github.com/provlabs/datedirs/utils"
)

func (s *TestSuite) TestMsgServerRequiresAuthority() {
	outsider := utils.TestAddress().Bech32
	msgServer := keeper.NewMsgServer(s.k)

	tests := []struct {
		name   string
		exec   func(authority string) error
		expErr error
	}{
		{
			name: "create rate oracle",
			exec: func(authority string) error {
				_, err := msgServer.CreateRateOracle(s.ctx, &types.MsgCreateRateOracleRequest{Authority: authority, OracleID: oracleID, Model: types.RateModelLinear, Apy: dec("0.05")})
				return err
			},
		},
		{
			name: "record rate index",
			exec: func(authority string) error {
				_, err := msgServer.RecordRateIndex(s.ctx, &types.MsgRecordRateIndexRequest{Authority: authority, OracleID: oracleID, Index: dec("1.0")})
				return err
			},
		},
		{
			name: "create market",
			exec: func(authority string) error {
				_, err := msgServer.CreateMarket(s.ctx, &types.MsgCreateMarketRequest{Authority: authority, MarketID: marketID, QuoteDenom: "usdc", Type: types.RateModelLinear})
				return err
			},
		},
		{
			name: "set market configuration",
			exec: func(authority string) error {
				_, err := msgServer.SetMarketConfiguration(s.ctx, &types.MsgSetMarketConfigurationRequest{Authority: authority, MarketID: marketID, Config: types.DefaultMarketConfiguration()})
				return err
			},
		},
		{
			name: "set rate oracle configuration",
			exec: func(authority string) error {
				_, err := msgServer.SetRateOracleConfiguration(s.ctx, &types.MsgSetRateOracleConfigurationRequest{Authority: authority, MarketID: marketID, OracleID: oracleID, MaturityIndexCachingWindow: 3600})
				return err
			},
		},
		{
			name: "create vamm",
			exec: func(authority string) error {
				_, err := msgServer.CreateVamm(s.ctx, &types.MsgCreateVammRequest{
					Authority:           authority,
					MarketID:            marketID,
					Maturity:            maturity,
					InitTick:            initTick,
					MaxLiquidityPerTick: sdkmath.NewIntWithDecimal(1, 30),
					TickSpacing:         60,
					Config:              types.DefaultVammMutableConfig(),
				})
				return err
			},
		},
		{
			name: "set market maturity configuration",
			exec: func(authority string) error {
				_, err := msgServer.SetMarketMaturityConfiguration(s.ctx, &types.MsgSetMarketMaturityConfigurationRequest{Authority: authority, MarketID: marketID, Maturity: maturity, Config: types.DefaultVammMutableConfig()})
				return err
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			err := tc.exec(outsider)
			s.Require().ErrorIs(err, types.ErrUnauthorized, "outsider")
			err = tc.exec("not-an-address")
			s.Require().ErrorIs(err, types.ErrInvalidRequest, "malformed authority")
		})
	}
}

func (s *TestSuite) TestMsgServerLifecycle() {
	s.setBlockTime(t0)
	msgServer := keeper.NewMsgServer(s.k)
	makerOwner, takerOwner := utils.TestAddress().Bech32, utils.TestAddress().Bech32

	_, err := msgServer.CreateRateOracle(s.ctx, &types.MsgCreateRateOracleRequest{Authority: s.authority, OracleID: oracleID, Model: types.RateModelLinear, Apy: dec("0")})
	s.Require().NoError(err, "CreateRateOracle")
	_, err = msgServer.RecordRateIndex(s.ctx, &types.MsgRecordRateIndexRequest{Authority: s.authority, OracleID: oracleID, Index: dec("1.0")})
	s.Require().NoError(err, "RecordRateIndex")
	_, err = msgServer.CreateMarket(s.ctx, &types.MsgCreateMarketRequest{Authority: s.authority, MarketID: marketID, QuoteDenom: "usdc", Type: types.RateModelLinear})
	s.Require().NoError(err, "CreateMarket")
	_, err = msgServer.SetRateOracleConfiguration(s.ctx, &types.MsgSetRateOracleConfigurationRequest{Authority: s.authority, MarketID: marketID, OracleID: oracleID, MaturityIndexCachingWindow: 3600})
	s.Require().NoError(err, "SetRateOracleConfiguration")
	vammRes, err := msgServer.CreateVamm(s.ctx, &types.MsgCreateVammRequest{
		Authority:           s.authority,
		MarketID:            marketID,
		Maturity:            maturity,
		InitTick:            initTick,
		MaxLiquidityPerTick: sdkmath.NewIntWithDecimal(1, 30),
		TickSpacing:         60,
		Config:              types.DefaultVammMutableConfig(),
		ObservedTimes:       []int64{t0 - 3600},
		ObservedTicks:       []int32{initTick},
	})
	s.Require().NoError(err, "CreateVamm")
	s.Assert().False(vammRes.SqrtPriceX96.IsZero(), "initial sqrt price")

	cardinality, err := msgServer.IncreaseObservationCardinalityNext(s.ctx, &types.MsgIncreaseObservationCardinalityNextRequest{Sender: takerOwner, MarketID: marketID, Maturity: maturity, CardinalityNext: 16})
	s.Require().NoError(err, "IncreaseObservationCardinalityNext")
	s.Assert().Equal(uint32(1), cardinality.CardinalityNextOld, "previous cardinality")
	s.Assert().Equal(uint32(16), cardinality.CardinalityNextNew, "next cardinality")

	makerAccount, err := msgServer.CreateAccount(s.ctx, &types.MsgCreateAccountRequest{Owner: makerOwner})
	s.Require().NoError(err, "CreateAccount maker")
	takerAccount, err := msgServer.CreateAccount(s.ctx, &types.MsgCreateAccountRequest{Owner: takerOwner})
	s.Require().NoError(err, "CreateAccount taker")
	s.Assert().Equal(uint64(1), makerAccount.AccountID, "first account id")
	s.Assert().Equal(uint64(2), takerAccount.AccountID, "second account id")

	makerOrder := &types.MsgExecuteMakerOrderRequest{
		Owner:      makerOwner,
		AccountID:  makerAccount.AccountID,
		MarketID:   marketID,
		Maturity:   maturity,
		TickLower:  -19500,
		TickUpper:  -11040,
		BaseAmount: intOf(10_000_000_000),
	}
	stolen := *makerOrder
	stolen.Owner = takerOwner
	_, err = msgServer.ExecuteMakerOrder(s.ctx, &stolen)
	s.Require().ErrorIs(err, types.ErrUnauthorized, "maker order for someone else's account")
	makerRes, err := msgServer.ExecuteMakerOrder(s.ctx, makerOrder)
	s.Require().NoError(err, "ExecuteMakerOrder")
	s.Assert().Equal("50351905911", makerRes.LiquidityDelta.String(), "liquidity delta")

	s.setBlockTime(t0 + year/2)
	_, err = msgServer.RecordRateIndex(s.ctx, &types.MsgRecordRateIndexRequest{Authority: s.authority, OracleID: oracleID, Index: dec("1.01")})
	s.Require().NoError(err, "RecordRateIndex")

	_, err = msgServer.ExecuteTakerOrder(s.ctx, &types.MsgExecuteTakerOrderRequest{Owner: takerOwner, AccountID: takerAccount.AccountID, MarketID: marketID, Maturity: maturity, BaseAmount: intOf(-100_000_000_000)})
	s.Require().ErrorIs(err, types.ErrInsufficientLiquidity, "taker order larger than the book")
	s.assertFilled(takerAccount.AccountID, 0, 0, 0)

	takerRes, err := msgServer.ExecuteTakerOrder(s.ctx, &types.MsgExecuteTakerOrderRequest{Owner: takerOwner, AccountID: takerAccount.AccountID, MarketID: marketID, Maturity: maturity, BaseAmount: intOf(-1_000_000_000)})
	s.Require().NoError(err, "ExecuteTakerOrder")
	s.Assert().Equal("-1000000000", takerRes.ExecutedBase.String(), "executed base")
	s.Assert().Equal("48356576", takerRes.ExecutedQuote.String(), "executed quote")
	s.Assert().True(takerRes.SpreadCharge.IsZero(), "spread charge without a pool spread")
	s.Assert().Equal(int32(-15227), takerRes.Tick, "tick")

	s.setBlockTime(maturity)
	_, err = msgServer.RecordRateIndex(s.ctx, &types.MsgRecordRateIndexRequest{Authority: s.authority, OracleID: oracleID, Index: dec("1.02")})
	s.Require().NoError(err, "RecordRateIndex")

	_, err = msgServer.Settle(s.ctx, &types.MsgSettleRequest{Owner: makerOwner, AccountID: takerAccount.AccountID, MarketID: marketID, Maturity: maturity})
	s.Require().ErrorIs(err, types.ErrUnauthorized, "settling someone else's account")
	settled, err := msgServer.Settle(s.ctx, &types.MsgSettleRequest{Owner: takerOwner, AccountID: takerAccount.AccountID, MarketID: marketID, Maturity: maturity})
	s.Require().NoError(err, "Settle")
	s.Assert().Equal("38356576", settled.Cashflow.String(), "taker cashflow")
	s.assertInvariants()
}

func (s *TestSuite) TestMsgServerRejectsInvalidMessages() {
	msgServer := keeper.NewMsgServer(s.k)
	owner := utils.TestAddress().Bech32

	_, err := msgServer.CreateAccount(s.ctx, &types.MsgCreateAccountRequest{Owner: "bad"})
	s.Require().ErrorIs(err, types.ErrInvalidRequest, "CreateAccount")
	_, err = msgServer.ExecuteMakerOrder(s.ctx, &types.MsgExecuteMakerOrderRequest{Owner: owner, AccountID: 1, MarketID: marketID, Maturity: maturity, TickLower: 0, TickUpper: 60})
	s.Require().ErrorIs(err, types.ErrInvalidRequest, "ExecuteMakerOrder without base")
	_, err = msgServer.ExecuteTakerOrder(s.ctx, &types.MsgExecuteTakerOrderRequest{Owner: owner, AccountID: 1, MarketID: marketID, Maturity: maturity, BaseAmount: intOf(1), SqrtPriceLimitX96: intOf(-1)})
	s.Require().ErrorIs(err, types.ErrInvalidRequest, "ExecuteTakerOrder with negative limit")
	_, err = msgServer.IncreaseObservationCardinalityNext(s.ctx, &types.MsgIncreaseObservationCardinalityNextRequest{Sender: owner, MarketID: marketID, Maturity: maturity})
	s.Require().ErrorIs(err, types.ErrInvalidRequest, "IncreaseObservationCardinalityNext without cardinality")
	_, err = msgServer.Settle(s.ctx, &types.MsgSettleRequest{Owner: owner, AccountID: 1, MarketID: marketID, Maturity: maturity})
	s.Require().ErrorIs(err, types.ErrNotFound, "Settle of an unknown account")
}

func (s *TestSuite) TestMsgServerRecordRateIndexApy() {
	s.setBlockTime(t0)
	msgServer := keeper.NewMsgServer(s.k)

	_, err := msgServer.CreateRateOracle(s.ctx, &types.MsgCreateRateOracleRequest{Authority: s.authority, OracleID: oracleID, Model: types.RateModelLinear, Apy: dec("0.05")})
	s.Require().NoError(err, "CreateRateOracle")

	_, err = msgServer.RecordRateIndex(s.ctx, &types.MsgRecordRateIndexRequest{Authority: s.authority, OracleID: oracleID, Index: dec("1.0")})
	s.Require().NoError(err, "RecordRateIndex without apy")
	oracle, err := s.k.GetRateOracle(s.ctx, oracleID)
	s.Require().NoError(err, "GetRateOracle")
	s.Assert().Equal("0.050000000000000000", oracle.Apy.String(), "apy kept when the request omits it")

	apy := dec("0.07")
	s.setBlockTime(t0 + 60)
	_, err = msgServer.RecordRateIndex(s.ctx, &types.MsgRecordRateIndexRequest{Authority: s.authority, OracleID: oracleID, Index: dec("1.001"), Apy: &apy})
	s.Require().NoError(err, "RecordRateIndex with apy")
	oracle, err = s.k.GetRateOracle(s.ctx, oracleID)
	s.Require().NoError(err, "GetRateOracle")
	s.Assert().Equal("0.070000000000000000", oracle.Apy.String(), "apy replaced")
}

package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/provlabs/datedirs/interest"
	"github.com/provlabs/datedirs/keeper"
	"github.com/provlabs/datedirs/types"
	"github.com/provlabs/datedirs/utils"
	"github.com/provlabs/datedirs/utils/mocks"
)

const (
	t0       int64  = 1_700_000_000
	year     int64  = interest.SecondsPerYear
	maturity        = t0 + year
	marketID uint64 = 1
	oracleID        = "aave-usdc"
	initTick int32  = -16096
)

type TestSuite struct {
	suite.Suite
	ctx   sdk.Context
	k     *keeper.Keeper
	bank  *mocks.BankKeeper
	flags *mocks.FeatureFlagKeeper

	authority string
}

func (s *TestSuite) SetupTest() {
	s.ctx, s.k, s.bank, s.flags = mocks.NewKeeper(s.T())
	s.authority = mocks.Authority()
}

func (s *TestSuite) Context() sdk.Context {
	return s.ctx
}

func (s *TestSuite) SetContext(ctx sdk.Context) {
	s.ctx = ctx
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(TestSuite))
}

func dec(s string) sdkmath.LegacyDec {
	return sdkmath.LegacyMustNewDecFromStr(s)
}

// pool is the store key of the suite's market maturity.
func pool() collections.Pair[uint64, int64] {
	return collections.Join(marketID, maturity)
}

func intOf(v int64) sdkmath.Int {
	return sdkmath.NewInt(v)
}

// setBlockTime moves the suite context to the given unix time.
func (s *TestSuite) setBlockTime(t int64) {
	s.ctx = s.ctx.WithBlockTime(time.Unix(t, 0).UTC())
}

func (s *TestSuite) recordIndex(index string) {
	s.Require().NoError(s.k.RecordRateIndex(s.ctx, oracleID, dec(index), sdkmath.LegacyDec{}), "RecordRateIndex(%s)", index)
}

// setupMarket creates a market with an oracle observed at 1.0 at t0.
func (s *TestSuite) setupMarket(model types.RateModel, apy string) types.Market {
	s.setBlockTime(t0)
	s.Require().NoError(s.k.CreateRateOracle(s.ctx, oracleID, model, dec(apy)), "CreateRateOracle")
	s.recordIndex("1.0")
	_, err := s.k.CreateMarket(s.ctx, marketID, "usdc", model)
	s.Require().NoError(err, "CreateMarket")
	s.Require().NoError(s.k.SetRateOracleConfiguration(s.ctx, marketID, oracleID, 3600), "SetRateOracleConfiguration")
	market, err := s.k.GetMarket(s.ctx, marketID)
	s.Require().NoError(err, "GetMarket")
	return market
}

// setupVamm opens the pool at initTick with an hour of history at that tick
// and room for sixteen observations.
func (s *TestSuite) setupVamm(config types.VammMutableConfig) types.Vamm {
	_, err := s.k.CreateVamm(s.ctx, keeper.CreateVammParams{
		MarketID:            marketID,
		Maturity:            maturity,
		InitTick:            initTick,
		MaxLiquidityPerTick: sdkmath.NewIntWithDecimal(1, 30),
		TickSpacing:         60,
		Config:              config,
		ObservedTimes:       []int64{t0 - 3600},
		ObservedTicks:       []int32{initTick},
	})
	s.Require().NoError(err, "CreateVamm")
	_, _, err = s.k.IncreaseObservationCardinalityNext(s.ctx, marketID, maturity, 16)
	s.Require().NoError(err, "IncreaseObservationCardinalityNext")
	vamm, err := s.k.GetVamm(s.ctx, marketID, maturity)
	s.Require().NoError(err, "GetVamm")
	return vamm
}

func (s *TestSuite) setupPool() {
	s.setupMarket(types.RateModelLinear, "0")
	s.setupVamm(types.DefaultVammMutableConfig())
}

func (s *TestSuite) createAccount() uint64 {
	account, err := s.k.CreateAccount(s.ctx, utils.TestAddress().Bech32)
	s.Require().NoError(err, "CreateAccount")
	return account.ID
}

func (s *TestSuite) mint(accountID uint64, lower, upper int32, base int64) types.MakerOrderResult {
	res, err := s.k.ExecuteMakerOrder(s.ctx, keeper.MakerOrder{
		AccountID:  accountID,
		MarketID:   marketID,
		Maturity:   maturity,
		TickLower:  lower,
		TickUpper:  upper,
		BaseAmount: intOf(base),
	})
	s.Require().NoError(err, "ExecuteMakerOrder(%d, [%d, %d], %d)", accountID, lower, upper, base)
	return res
}

func (s *TestSuite) swap(accountID uint64, base int64) types.TakerOrderResult {
	res, err := s.k.ExecuteTakerOrder(s.ctx, keeper.TakerOrder{
		AccountID:  accountID,
		MarketID:   marketID,
		Maturity:   maturity,
		BaseAmount: intOf(base),
	})
	s.Require().NoError(err, "ExecuteTakerOrder(%d, %d)", accountID, base)
	return res
}

func (s *TestSuite) filled(accountID uint64) types.FilledBalances {
	balances, err := s.k.GetAccountFilledBalances(s.ctx, marketID, maturity, accountID)
	s.Require().NoError(err, "GetAccountFilledBalances(%d)", accountID)
	return balances
}

func (s *TestSuite) unfilled(accountID uint64) types.UnfilledBalances {
	balances, err := s.k.GetAccountUnfilledBaseAndQuote(s.ctx, marketID, maturity, accountID)
	s.Require().NoError(err, "GetAccountUnfilledBaseAndQuote(%d)", accountID)
	return balances
}

func (s *TestSuite) assertFilled(accountID uint64, base, quote, accrued int64) {
	balances := s.filled(accountID)
	s.Assert().Equal(intOf(base).String(), balances.Base.String(), "account %d filled base", accountID)
	s.Assert().Equal(intOf(quote).String(), balances.Quote.String(), "account %d filled quote", accountID)
	s.Assert().Equal(intOf(accrued).String(), balances.AccruedInterest.String(), "account %d accrued interest", accountID)
}

func (s *TestSuite) assertUnfilledBase(accountID uint64, long, short int64) {
	balances := s.unfilled(accountID)
	s.Assert().Equal(intOf(long).String(), balances.BaseLong.String(), "account %d unfilled base long", accountID)
	s.Assert().Equal(intOf(short).String(), balances.BaseShort.String(), "account %d unfilled base short", accountID)
}

func (s *TestSuite) assertInvariants() {
	msg, broken := keeper.AllInvariants(s.k)(s.ctx)
	s.Require().False(broken, msg)
}

func (s *TestSuite) settle(accountID uint64) sdkmath.Int {
	cashflow, err := s.k.Settle(s.ctx, marketID, maturity, accountID)
	s.Require().NoError(err, "Settle(%d)", accountID)
	return cashflow
}

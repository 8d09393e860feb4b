package simulation_test

import (
	"math/rand"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/suite"

	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/provlabs/datedirs/keeper"
	"github.com/provlabs/datedirs/simulation"
	"github.com/provlabs/datedirs/types"
	"github.com/provlabs/datedirs/utils"
	"github.com/provlabs/datedirs/utils/mocks"
)

type SimTestSuite struct {
	suite.Suite

	ctx  sdk.Context
	k    *keeper.Keeper
	r    *rand.Rand
	accs []simtypes.Account
}

func TestSimTestSuite(t *testing.T) {
	suite.Run(t, new(SimTestSuite))
}

// SetupTest loads a randomized genesis into a fresh keeper.
func (s *SimTestSuite) SetupTest() {
	s.ctx, s.k, _, _ = mocks.NewKeeper(s.T())
	s.r = rand.New(rand.NewSource(1))

	simState := newSimState(s.r, s.ctx.BlockTime())
	s.accs = simState.Accounts
	simulation.RandomizedGenState(&simState)

	var genesis types.GenesisState
	simState.Cdc.MustUnmarshalJSON(simState.GenState[types.ModuleName], &genesis)
	s.k.InitGenesis(s.ctx, &genesis)
}

func (s *SimTestSuite) runOp(op simtypes.Operation) simtypes.OperationMsg {
	opMsg, futureOps, err := op(s.r, nil, s.ctx, s.accs, "")
	s.Require().NoError(err, "operation error")
	s.Require().Equal(types.ModuleName, opMsg.Route, "operationMsg.Route")
	s.Require().NotEmpty(opMsg.Name, "operationMsg.Name")
	s.Require().Len(futureOps, 0, "futureOperations")
	return opMsg
}

func (s *SimTestSuite) requireOK(opMsg simtypes.OperationMsg) {
	s.Require().True(opMsg.OK, "operationMsg.OK: %s", opMsg.Comment)
}

// createPool opens a month long pool on market 1 with an hour of history.
func (s *SimTestSuite) createPool() types.Vamm {
	now := s.ctx.BlockTime().Unix()
	vamm, err := s.k.CreateVamm(s.ctx, keeper.CreateVammParams{
		MarketID:            1,
		Maturity:            now + 30*24*3600,
		InitTick:            -16080,
		MaxLiquidityPerTick: sdkmath.NewIntWithDecimal(1, 30),
		TickSpacing:         simulation.SimTickSpacing,
		Config:              types.DefaultVammMutableConfig(),
		ObservedTimes:       []int64{now - 3600},
		ObservedTicks:       []int32{-16080},
	})
	s.Require().NoError(err, "CreateVamm")
	return vamm
}

func (s *SimTestSuite) createAccount(acc simtypes.Account) uint64 {
	account, err := s.k.CreateAccount(s.ctx, acc.Address.String())
	s.Require().NoError(err, "CreateAccount")
	return account.ID
}

func (s *SimTestSuite) requireInvariants() {
	msg, broken := keeper.AllInvariants(s.k)(s.ctx)
	s.Require().False(broken, msg)
}

func (s *SimTestSuite) TestWeightedOperations() {
	simState := newSimState(s.r, s.ctx.BlockTime())
	ops := simulation.WeightedOperations(simState, s.k)

	expected := []int{
		simulation.DefaultWeightMsgCreateAccount,
		simulation.DefaultWeightMsgRecordRateIndex,
		simulation.DefaultWeightMsgCreateVamm,
		simulation.DefaultWeightMsgIncreaseObservationCardinalityNext,
		simulation.DefaultWeightMsgExecuteMakerOrder,
		simulation.DefaultWeightMsgExecuteTakerOrder,
		simulation.DefaultWeightMsgSettle,
	}
	s.Require().Len(ops, len(expected), "operations")
	for i, op := range ops {
		s.Assert().Equal(expected[i], op.Weight(), "weight of operation %d", i)
	}
}

func (s *SimTestSuite) TestSimulateMsgCreateAccount() {
	opMsg := s.runOp(simulation.SimulateMsgCreateAccount(s.k))
	s.requireOK(opMsg)
	s.Assert().Equal("/provlabs.datedirs.v1.MsgCreateAccountRequest", opMsg.Name, "operationMsg.Name")

	account, err := s.k.GetAccount(s.ctx, 1)
	s.Require().NoError(err, "GetAccount")
	owner, err := sdk.AccAddressFromBech32(account.Owner)
	s.Require().NoError(err, "owner address")
	_, found := simtypes.FindAccount(s.accs, owner)
	s.Assert().True(found, "account owned by a simulation account")
}

func (s *SimTestSuite) TestSimulateMsgRecordRateIndex() {
	before := make(map[string]sdkmath.LegacyDec)
	s.Require().NoError(s.k.RateOracles.Walk(s.ctx, nil, func(id string, o types.RateOracle) (bool, error) {
		before[id] = o.LastIndex
		return false, nil
	}), "walk oracles")

	s.ctx = s.ctx.WithBlockTime(s.ctx.BlockTime().Add(time.Hour))
	s.requireOK(s.runOp(simulation.SimulateMsgRecordRateIndex(s.k)))

	s.Require().NoError(s.k.RateOracles.Walk(s.ctx, nil, func(id string, o types.RateOracle) (bool, error) {
		s.Assert().True(o.LastIndex.GTE(before[id]), "oracle %s index must not decrease", id)
		return false, nil
	}), "walk oracles")
}

func (s *SimTestSuite) TestSimulateMsgCreateVamm() {
	s.requireOK(s.runOp(simulation.SimulateMsgCreateVamm(s.k)))

	var vamms []types.Vamm
	s.Require().NoError(s.k.Vamms.Walk(s.ctx, nil, func(_ keeper.PoolKey, v types.Vamm) (bool, error) {
		vamms = append(vamms, v)
		return false, nil
	}), "walk vamms")
	s.Require().Len(vamms, 1, "vamms")
	s.Assert().Greater(vamms[0].Immutable.Maturity, s.ctx.BlockTime().Unix(), "maturity")
	s.Assert().Equal(int32(simulation.SimTickSpacing), vamms[0].Immutable.TickSpacing, "tick spacing")
}

func (s *SimTestSuite) TestSimulateMsgIncreaseObservationCardinalityNext() {
	opMsg := s.runOp(simulation.SimulateMsgIncreaseObservationCardinalityNext(s.k))
	s.Assert().False(opMsg.OK, "without a vamm")

	s.createPool()
	s.requireOK(s.runOp(simulation.SimulateMsgIncreaseObservationCardinalityNext(s.k)))
}

func (s *SimTestSuite) TestSimulateMsgExecuteMakerOrder() {
	opMsg := s.runOp(simulation.SimulateMsgExecuteMakerOrder(s.k))
	s.Assert().False(opMsg.OK, "without a vamm")

	vamm := s.createPool()
	accountID := s.createAccount(s.accs[0])
	s.requireOK(s.runOp(simulation.SimulateMsgExecuteMakerOrder(s.k)))

	positions, err := s.k.GetMakerPositions(s.ctx, vamm.Immutable.MarketID, vamm.Immutable.Maturity, accountID)
	s.Require().NoError(err, "GetMakerPositions")
	s.Assert().Len(positions, 1, "maker positions")
	s.requireInvariants()
}

func (s *SimTestSuite) TestSimulateMsgExecuteTakerOrder() {
	vamm := s.createPool()
	// The maker is not a simulation account so the operation cannot trade against itself.
	makerAccount, err := s.k.CreateAccount(s.ctx, utils.TestAddress().Bech32)
	s.Require().NoError(err, "CreateAccount maker")
	maker := makerAccount.ID
	s.createAccount(s.accs[1])

	opMsg := s.runOp(simulation.SimulateMsgExecuteTakerOrder(s.k))
	s.Assert().False(opMsg.OK, "without liquidity")

	_, err = s.k.ExecuteMakerOrder(s.ctx, keeper.MakerOrder{
		AccountID:  maker,
		MarketID:   vamm.Immutable.MarketID,
		Maturity:   vamm.Immutable.Maturity,
		TickLower:  -46080,
		TickUpper:  -60,
		BaseAmount: sdkmath.NewInt(10_000_000_000_000),
	})
	s.Require().NoError(err, "ExecuteMakerOrder")

	s.ctx = s.ctx.WithBlockTime(s.ctx.BlockTime().Add(time.Minute))
	s.requireOK(s.runOp(simulation.SimulateMsgExecuteTakerOrder(s.k)))
	oi, err := s.k.GetOpenInterest(s.ctx, vamm.Immutable.MarketID, vamm.Immutable.Maturity)
	s.Require().NoError(err, "GetOpenInterest")
	s.Assert().True(oi.IsPositive(), "open interest after a fill")
	s.requireInvariants()
}

func (s *SimTestSuite) TestSimulateMsgSettle() {
	vamm := s.createPool()
	maker := s.createAccount(s.accs[0])
	taker := s.createAccount(s.accs[1])
	_, err := s.k.ExecuteMakerOrder(s.ctx, keeper.MakerOrder{
		AccountID:  maker,
		MarketID:   vamm.Immutable.MarketID,
		Maturity:   vamm.Immutable.Maturity,
		TickLower:  -19500,
		TickUpper:  -11040,
		BaseAmount: sdkmath.NewInt(10_000_000_000),
	})
	s.Require().NoError(err, "ExecuteMakerOrder")
	_, err = s.k.ExecuteTakerOrder(s.ctx, keeper.TakerOrder{
		AccountID:  taker,
		MarketID:   vamm.Immutable.MarketID,
		Maturity:   vamm.Immutable.Maturity,
		BaseAmount: sdkmath.NewInt(-1_000_000_000),
	})
	s.Require().NoError(err, "ExecuteTakerOrder")

	opMsg := s.runOp(simulation.SimulateMsgSettle(s.k))
	s.Assert().False(opMsg.OK, "before maturity")

	s.ctx = s.ctx.WithBlockTime(time.Unix(vamm.Immutable.Maturity, 0).UTC())
	s.requireOK(s.runOp(simulation.SimulateMsgSettle(s.k)))
	s.requireOK(s.runOp(simulation.SimulateMsgSettle(s.k)))

	opMsg = s.runOp(simulation.SimulateMsgSettle(s.k))
	s.Assert().False(opMsg.OK, "every position settled")
	for _, id := range []uint64{maker, taker} {
		_, found, err := s.k.GetSettlement(s.ctx, vamm.Immutable.MarketID, vamm.Immutable.Maturity, id)
		s.Require().NoError(err, "GetSettlement(%d)", id)
		s.Assert().True(found, "account %d settled", id)
	}
}

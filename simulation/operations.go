package simulation

import (
	"fmt"
	"math/rand"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/cosmos/cosmos-sdk/x/simulation"

	"github.com/provlabs/datedirs/keeper"
	"github.com/provlabs/datedirs/tickmath"
	"github.com/provlabs/datedirs/types"
)

const (
	OpWeightMsgCreateAccount                      = "op_weight_msg_create_account"
	OpWeightMsgRecordRateIndex                    = "op_weight_msg_record_rate_index"
	OpWeightMsgCreateVamm                         = "op_weight_msg_create_vamm"
	OpWeightMsgIncreaseObservationCardinalityNext = "op_weight_msg_increase_observation_cardinality_next"
	OpWeightMsgExecuteMakerOrder                  = "op_weight_msg_execute_maker_order"
	OpWeightMsgExecuteTakerOrder                  = "op_weight_msg_execute_taker_order"
	OpWeightMsgSettle                             = "op_weight_msg_settle"
)

const (
	DefaultWeightMsgCreateAccount                      = 10
	DefaultWeightMsgRecordRateIndex                    = 15
	DefaultWeightMsgCreateVamm                         = 5
	DefaultWeightMsgIncreaseObservationCardinalityNext = 3
	DefaultWeightMsgExecuteMakerOrder                  = 25
	DefaultWeightMsgExecuteTakerOrder                  = 35
	DefaultWeightMsgSettle                             = 10
)

const (
	MinOrderBase              = 1_000_000
	MaxOrderBase              = 5_000_000_000
	MinMaturitySeconds        = 600
	MaxMaturitySeconds        = 90 * 24 * 3600
	MinSimInitTick            = -23_040
	MaxSimInitTick            = -60
	MaxRangeSpacings          = 100
	MaxIndexStepBps           = 50
	MaxCardinalityNext        = 64
	ChanceOfBurn              = 4 // 1 in X
	ChanceOfTakerPriceLimit   = 3 // 1 in X
	ChanceOfObservedHistory   = 2 // 1 in X
	SimTickSpacing            = 60
	SimObservationHistorySecs = 3600
)

// WeightedOperations returns the operations of the module with their weights.
func WeightedOperations(simState module.SimulationState, k *keeper.Keeper) simulation.WeightedOperations {
	var (
		wCreateAccount   int
		wRecordRateIndex int
		wCreateVamm      int
		wCardinalityNext int
		wMakerOrder      int
		wTakerOrder      int
		wSettle          int
	)

	simState.AppParams.GetOrGenerate(OpWeightMsgCreateAccount, &wCreateAccount, simState.Rand, func(r *rand.Rand) { wCreateAccount = DefaultWeightMsgCreateAccount })
	simState.AppParams.GetOrGenerate(OpWeightMsgRecordRateIndex, &wRecordRateIndex, simState.Rand, func(r *rand.Rand) { wRecordRateIndex = DefaultWeightMsgRecordRateIndex })
	simState.AppParams.GetOrGenerate(OpWeightMsgCreateVamm, &wCreateVamm, simState.Rand, func(r *rand.Rand) { wCreateVamm = DefaultWeightMsgCreateVamm })
	simState.AppParams.GetOrGenerate(OpWeightMsgIncreaseObservationCardinalityNext, &wCardinalityNext, simState.Rand, func(r *rand.Rand) {
		wCardinalityNext = DefaultWeightMsgIncreaseObservationCardinalityNext
	})
	simState.AppParams.GetOrGenerate(OpWeightMsgExecuteMakerOrder, &wMakerOrder, simState.Rand, func(r *rand.Rand) { wMakerOrder = DefaultWeightMsgExecuteMakerOrder })
	simState.AppParams.GetOrGenerate(OpWeightMsgExecuteTakerOrder, &wTakerOrder, simState.Rand, func(r *rand.Rand) { wTakerOrder = DefaultWeightMsgExecuteTakerOrder })
	simState.AppParams.GetOrGenerate(OpWeightMsgSettle, &wSettle, simState.Rand, func(r *rand.Rand) { wSettle = DefaultWeightMsgSettle })

	return simulation.WeightedOperations{
		simulation.NewWeightedOperation(wCreateAccount, SimulateMsgCreateAccount(k)),
		simulation.NewWeightedOperation(wRecordRateIndex, SimulateMsgRecordRateIndex(k)),
		simulation.NewWeightedOperation(wCreateVamm, SimulateMsgCreateVamm(k)),
		simulation.NewWeightedOperation(wCardinalityNext, SimulateMsgIncreaseObservationCardinalityNext(k)),
		simulation.NewWeightedOperation(wMakerOrder, SimulateMsgExecuteMakerOrder(k)),
		simulation.NewWeightedOperation(wTakerOrder, SimulateMsgExecuteTakerOrder(k)),
		simulation.NewWeightedOperation(wSettle, SimulateMsgSettle(k)),
	}
}

// msgName is the route name of a message in operation results.
func okOperation(msg sdk.Msg, comment string) simtypes.OperationMsg {
	return simtypes.OperationMsg{Route: types.ModuleName, Name: sdk.MsgTypeURL(msg), Comment: comment, OK: true}
}

func noOp(msg sdk.Msg, comment string) simtypes.OperationMsg {
	return simtypes.NoOpMsg(types.ModuleName, sdk.MsgTypeURL(msg), comment)
}

func authority(k *keeper.Keeper) string {
	return sdk.AccAddress(k.GetAuthority()).String()
}

func SimulateMsgCreateAccount(k *keeper.Keeper) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context,
		accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		owner, _ := simtypes.RandomAcc(r, accs)
		msg := &types.MsgCreateAccountRequest{Owner: owner.Address.String()}

		res, err := keeper.NewMsgServer(k).CreateAccount(ctx, msg)
		if err != nil {
			return noOp(msg, err.Error()), nil, nil
		}

		return okOperation(msg, fmt.Sprintf("created account %d", res.AccountID)), nil, nil
	}
}

func SimulateMsgRecordRateIndex(k *keeper.Keeper) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context,
		accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		oracle, err := getRandomOracle(r, k, ctx)
		if err != nil {
			return noOp(&types.MsgRecordRateIndexRequest{}, err.Error()), nil, nil
		}

		index := sdkmath.LegacyOneDec()
		if oracle.Initialized() {
			growth := sdkmath.LegacyNewDecWithPrec(randomInt63(r, MaxIndexStepBps+1), 4)
			index = oracle.LastIndex.Mul(sdkmath.LegacyOneDec().Add(growth))
		}

		msg := &types.MsgRecordRateIndexRequest{
			Authority: authority(k),
			OracleID:  oracle.ID,
			Index:     index,
		}

		_, err = keeper.NewMsgServer(k).RecordRateIndex(ctx, msg)
		if err != nil {
			return noOp(msg, err.Error()), nil, nil
		}

		return okOperation(msg, fmt.Sprintf("recorded index %s for %s", index, oracle.ID)), nil, nil
	}
}

func SimulateMsgCreateVamm(k *keeper.Keeper) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context,
		accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		market, err := getRandomMarket(r, k, ctx)
		if err != nil {
			return noOp(&types.MsgCreateVammRequest{}, err.Error()), nil, nil
		}

		now := ctx.BlockTime().Unix()
		initTick := randomAlignedTick(r, MinSimInitTick, MaxSimInitTick, SimTickSpacing)
		msg := &types.MsgCreateVammRequest{
			Authority:           authority(k),
			MarketID:            market.ID,
			Maturity:            now + randomInt63Between(r, MinMaturitySeconds, MaxMaturitySeconds),
			InitTick:            initTick,
			MaxLiquidityPerTick: sdkmath.NewIntWithDecimal(1, 30),
			TickSpacing:         SimTickSpacing,
			Config:              types.DefaultVammMutableConfig(),
		}
		if r.Intn(ChanceOfObservedHistory) == 0 {
			msg.ObservedTimes = []int64{now - SimObservationHistorySecs}
			msg.ObservedTicks = []int32{initTick}
		}

		_, err = keeper.NewMsgServer(k).CreateVamm(ctx, msg)
		if err != nil {
			return noOp(msg, err.Error()), nil, nil
		}

		return okOperation(msg, fmt.Sprintf("created vamm %d/%d at tick %d", msg.MarketID, msg.Maturity, initTick)), nil, nil
	}
}

func SimulateMsgIncreaseObservationCardinalityNext(k *keeper.Keeper) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context,
		accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		vamm, err := getRandomVamm(r, k, ctx, nil)
		if err != nil {
			return noOp(&types.MsgIncreaseObservationCardinalityNextRequest{}, err.Error()), nil, nil
		}

		sender, _ := simtypes.RandomAcc(r, accs)
		msg := &types.MsgIncreaseObservationCardinalityNextRequest{
			Sender:          sender.Address.String(),
			MarketID:        vamm.Immutable.MarketID,
			Maturity:        vamm.Immutable.Maturity,
			CardinalityNext: uint32(r.Intn(MaxCardinalityNext) + 1),
		}

		res, err := keeper.NewMsgServer(k).IncreaseObservationCardinalityNext(ctx, msg)
		if err != nil {
			return noOp(msg, err.Error()), nil, nil
		}

		return okOperation(msg, fmt.Sprintf("cardinality %d -> %d", res.CardinalityNextOld, res.CardinalityNextNew)), nil, nil
	}
}

func SimulateMsgExecuteMakerOrder(k *keeper.Keeper) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context,
		accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		vamm, err := getRandomVamm(r, k, ctx, tradableAt(ctx.BlockTime().Unix()))
		if err != nil {
			return noOp(&types.MsgExecuteMakerOrderRequest{}, err.Error()), nil, nil
		}
		account, err := getRandomOwnedAccount(r, k, ctx, accs)
		if err != nil {
			return noOp(&types.MsgExecuteMakerOrderRequest{}, err.Error()), nil, nil
		}

		msg := &types.MsgExecuteMakerOrderRequest{
			Owner:     account.Owner,
			AccountID: account.ID,
			MarketID:  vamm.Immutable.MarketID,
			Maturity:  vamm.Immutable.Maturity,
		}

		burn := false
		if r.Intn(ChanceOfBurn) == 0 {
			burn, err = randomBurn(r, k, ctx, account.ID, msg)
			if err != nil {
				return noOp(msg, err.Error()), nil, nil
			}
		}
		if !burn {
			spacing := vamm.Immutable.TickSpacing
			center := tickmath.AlignTick(vamm.State.Tick, spacing)
			msg.TickLower = max(center-spacing*int32(r.Intn(MaxRangeSpacings)+1), tickmath.AlignTick(vamm.Mutable.MinTickAllowed+spacing, spacing))
			msg.TickUpper = min(center+spacing*int32(r.Intn(MaxRangeSpacings)+1), tickmath.AlignTick(vamm.Mutable.MaxTickAllowed-spacing, spacing))
			msg.BaseAmount = randomBaseAmount(r)
		}

		res, err := keeper.NewMsgServer(k).ExecuteMakerOrder(ctx, msg)
		if err != nil {
			return noOp(msg, err.Error()), nil, nil
		}

		return okOperation(msg, fmt.Sprintf("liquidity delta %s on [%d, %d]", res.LiquidityDelta, msg.TickLower, msg.TickUpper)), nil, nil
	}
}

// randomBurn fills msg with a burn of half of one of the account's maker
// ranges. It returns false when the account has no range in the pool.
func randomBurn(r *rand.Rand, k *keeper.Keeper, ctx sdk.Context, accountID uint64, msg *types.MsgExecuteMakerOrderRequest) (bool, error) {
	positions, err := k.GetMakerPositions(ctx, msg.MarketID, msg.Maturity, accountID)
	if err != nil {
		return false, err
	}
	if len(positions) == 0 {
		return false, nil
	}
	position := positions[r.Intn(len(positions))]
	sqrtA, err := tickmath.SqrtRatioAtTick(position.TickLower)
	if err != nil {
		return false, err
	}
	sqrtB, err := tickmath.SqrtRatioAtTick(position.TickUpper)
	if err != nil {
		return false, err
	}
	base := tickmath.BaseForLiquidity(position.Liquidity, sqrtA, sqrtB).QuoRaw(2)
	if !base.IsPositive() {
		return false, nil
	}

	msg.TickLower = position.TickLower
	msg.TickUpper = position.TickUpper
	msg.BaseAmount = base.Neg()
	return true, nil
}

func SimulateMsgExecuteTakerOrder(k *keeper.Keeper) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context,
		accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		vamm, err := getRandomVamm(r, k, ctx, func(v types.Vamm) bool {
			return tradableAt(ctx.BlockTime().Unix())(v) && v.State.Liquidity.IsPositive()
		})
		if err != nil {
			return noOp(&types.MsgExecuteTakerOrderRequest{}, err.Error()), nil, nil
		}
		account, err := getRandomOwnedAccount(r, k, ctx, accs)
		if err != nil {
			return noOp(&types.MsgExecuteTakerOrderRequest{}, err.Error()), nil, nil
		}

		base := randomBaseAmount(r)
		if r.Intn(2) == 0 {
			base = base.Neg()
		}
		msg := &types.MsgExecuteTakerOrderRequest{
			Owner:      account.Owner,
			AccountID:  account.ID,
			MarketID:   vamm.Immutable.MarketID,
			Maturity:   vamm.Immutable.Maturity,
			BaseAmount: base,
		}
		if r.Intn(ChanceOfTakerPriceLimit) == 0 {
			// Long orders move the tick down.
			limitTick := vamm.State.Tick - SimTickSpacing*int32(r.Intn(MaxRangeSpacings)+1)
			if base.IsNegative() {
				limitTick = vamm.State.Tick + SimTickSpacing*int32(r.Intn(MaxRangeSpacings)+1)
			}
			if limit, err := tickmath.SqrtRatioAtTick(limitTick); err == nil {
				msg.SqrtPriceLimitX96 = limit
			}
		}

		res, err := keeper.NewMsgServer(k).ExecuteTakerOrder(ctx, msg)
		if err != nil {
			return noOp(msg, err.Error()), nil, nil
		}

		return okOperation(msg, fmt.Sprintf("filled %s base for %s quote", res.ExecutedBase, res.ExecutedQuote)), nil, nil
	}
}

func SimulateMsgSettle(k *keeper.Keeper) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context,
		accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		vamm, err := getRandomVamm(r, k, ctx, maturedAt(ctx.BlockTime().Unix()))
		if err != nil {
			return noOp(&types.MsgSettleRequest{}, err.Error()), nil, nil
		}
		account, err := getRandomUnsettledPosition(r, k, ctx, vamm, accs)
		if err != nil {
			return noOp(&types.MsgSettleRequest{}, err.Error()), nil, nil
		}

		msg := &types.MsgSettleRequest{
			Owner:     account.Owner,
			AccountID: account.ID,
			MarketID:  vamm.Immutable.MarketID,
			Maturity:  vamm.Immutable.Maturity,
		}

		res, err := keeper.NewMsgServer(k).Settle(ctx, msg)
		if err != nil {
			return noOp(msg, err.Error()), nil, nil
		}

		return okOperation(msg, fmt.Sprintf("settled account %d for %s", account.ID, res.Cashflow)), nil, nil
	}
}

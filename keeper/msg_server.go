package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

func atomically[T any](goCtx context.Context, fn func(ctx sdk.Context) (T, error)) (T, error) {
	return cached(sdk.UnwrapSDKContext(goCtx), fn)
}

func (k msgServer) authorize(msg interface{ ValidateBasic() error }, authority string) error {
	if err := msg.ValidateBasic(); err != nil {
		return types.ErrInvalidRequest.Wrap(err.Error())
	}
	return k.ValidateAuthority(authority)
}

func (k msgServer) authorizeOwner(goCtx context.Context, msg interface{ ValidateBasic() error }, accountID uint64, owner string) error {
	if err := msg.ValidateBasic(); err != nil {
		return types.ErrInvalidRequest.Wrap(err.Error())
	}
	return k.AuthorizeAccount(sdk.UnwrapSDKContext(goCtx), accountID, owner)
}

// CreateAccount creates a trading account for the sender.
func (k msgServer) CreateAccount(goCtx context.Context, msg *types.MsgCreateAccountRequest) (*types.MsgCreateAccountResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	return atomically(goCtx, func(ctx sdk.Context) (*types.MsgCreateAccountResponse, error) {
		account, err := k.Keeper.CreateAccount(ctx, msg.Owner)
		if err != nil {
			return nil, err
		}
		return &types.MsgCreateAccountResponse{AccountID: account.ID}, nil
	})
}

// CreateRateOracle registers a rate oracle.
func (k msgServer) CreateRateOracle(goCtx context.Context, msg *types.MsgCreateRateOracleRequest) (*types.MsgCreateRateOracleResponse, error) {
	if err := k.authorize(msg, msg.Authority); err != nil {
		return nil, err
	}
	return atomically(goCtx, func(ctx sdk.Context) (*types.MsgCreateRateOracleResponse, error) {
		return &types.MsgCreateRateOracleResponse{}, k.Keeper.CreateRateOracle(ctx, msg.OracleID, msg.Model, msg.Apy)
	})
}

// RecordRateIndex pushes a new index observation.
func (k msgServer) RecordRateIndex(goCtx context.Context, msg *types.MsgRecordRateIndexRequest) (*types.MsgRecordRateIndexResponse, error) {
	if err := k.authorize(msg, msg.Authority); err != nil {
		return nil, err
	}
	var apy math.LegacyDec
	if msg.Apy != nil {
		apy = *msg.Apy
	}
	return atomically(goCtx, func(ctx sdk.Context) (*types.MsgRecordRateIndexResponse, error) {
		return &types.MsgRecordRateIndexResponse{}, k.Keeper.RecordRateIndex(ctx, msg.OracleID, msg.Index, apy)
	})
}

// CreateMarket registers a market.
func (k msgServer) CreateMarket(goCtx context.Context, msg *types.MsgCreateMarketRequest) (*types.MsgCreateMarketResponse, error) {
	if err := k.authorize(msg, msg.Authority); err != nil {
		return nil, err
	}
	return atomically(goCtx, func(ctx sdk.Context) (*types.MsgCreateMarketResponse, error) {
		_, err := k.Keeper.CreateMarket(ctx, msg.MarketID, msg.QuoteDenom, msg.Type)
		return &types.MsgCreateMarketResponse{}, err
	})
}

// SetMarketConfiguration replaces a market's risk limits.
func (k msgServer) SetMarketConfiguration(goCtx context.Context, msg *types.MsgSetMarketConfigurationRequest) (*types.MsgSetMarketConfigurationResponse, error) {
	if err := k.authorize(msg, msg.Authority); err != nil {
		return nil, err
	}
	return atomically(goCtx, func(ctx sdk.Context) (*types.MsgSetMarketConfigurationResponse, error) {
		return &types.MsgSetMarketConfigurationResponse{}, k.Keeper.SetMarketConfiguration(ctx, msg.MarketID, msg.Config)
	})
}

// SetRateOracleConfiguration points a market at a rate oracle.
func (k msgServer) SetRateOracleConfiguration(goCtx context.Context, msg *types.MsgSetRateOracleConfigurationRequest) (*types.MsgSetRateOracleConfigurationResponse, error) {
	if err := k.authorize(msg, msg.Authority); err != nil {
		return nil, err
	}
	return atomically(goCtx, func(ctx sdk.Context) (*types.MsgSetRateOracleConfigurationResponse, error) {
		return &types.MsgSetRateOracleConfigurationResponse{}, k.Keeper.SetRateOracleConfiguration(ctx, msg.MarketID, msg.OracleID, msg.MaturityIndexCachingWindow)
	})
}

// CreateVamm opens the pool of a market maturity.
func (k msgServer) CreateVamm(goCtx context.Context, msg *types.MsgCreateVammRequest) (*types.MsgCreateVammResponse, error) {
	if err := k.authorize(msg, msg.Authority); err != nil {
		return nil, err
	}
	return atomically(goCtx, func(ctx sdk.Context) (*types.MsgCreateVammResponse, error) {
		vamm, err := k.Keeper.CreateVamm(ctx, CreateVammParams{
			MarketID:            msg.MarketID,
			Maturity:            msg.Maturity,
			InitTick:            msg.InitTick,
			MaxLiquidityPerTick: msg.MaxLiquidityPerTick,
			TickSpacing:         msg.TickSpacing,
			Config:              msg.Config,
			ObservedTimes:       msg.ObservedTimes,
			ObservedTicks:       msg.ObservedTicks,
		})
		if err != nil {
			return nil, err
		}
		return &types.MsgCreateVammResponse{SqrtPriceX96: vamm.State.SqrtPriceX96}, nil
	})
}

// SetMarketMaturityConfiguration replaces a pool's mutable parameters.
func (k msgServer) SetMarketMaturityConfiguration(goCtx context.Context, msg *types.MsgSetMarketMaturityConfigurationRequest) (*types.MsgSetMarketMaturityConfigurationResponse, error) {
	if err := k.authorize(msg, msg.Authority); err != nil {
		return nil, err
	}
	return atomically(goCtx, func(ctx sdk.Context) (*types.MsgSetMarketMaturityConfigurationResponse, error) {
		return &types.MsgSetMarketMaturityConfigurationResponse{}, k.Keeper.SetMarketMaturityConfiguration(ctx, msg.MarketID, msg.Maturity, msg.Config)
	})
}

// IncreaseObservationCardinalityNext grows a pool's observation buffer. Anyone may pay for it.
func (k msgServer) IncreaseObservationCardinalityNext(goCtx context.Context, msg *types.MsgIncreaseObservationCardinalityNextRequest) (*types.MsgIncreaseObservationCardinalityNextResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	return atomically(goCtx, func(ctx sdk.Context) (*types.MsgIncreaseObservationCardinalityNextResponse, error) {
		previous, next, err := k.Keeper.IncreaseObservationCardinalityNext(ctx, msg.MarketID, msg.Maturity, msg.CardinalityNext)
		if err != nil {
			return nil, err
		}
		return &types.MsgIncreaseObservationCardinalityNextResponse{CardinalityNextOld: previous, CardinalityNextNew: next}, nil
	})
}

// ExecuteMakerOrder mints or burns liquidity for the owner's account.
func (k msgServer) ExecuteMakerOrder(goCtx context.Context, msg *types.MsgExecuteMakerOrderRequest) (*types.MsgExecuteMakerOrderResponse, error) {
	if err := k.authorizeOwner(goCtx, msg, msg.AccountID, msg.Owner); err != nil {
		return nil, err
	}
	return atomically(goCtx, func(ctx sdk.Context) (*types.MsgExecuteMakerOrderResponse, error) {
		res, err := k.Keeper.ExecuteMakerOrder(ctx, MakerOrder{
			AccountID:  msg.AccountID,
			MarketID:   msg.MarketID,
			Maturity:   msg.Maturity,
			TickLower:  msg.TickLower,
			TickUpper:  msg.TickUpper,
			BaseAmount: msg.BaseAmount,
		})
		if err != nil {
			return nil, err
		}
		return &types.MsgExecuteMakerOrderResponse{LiquidityDelta: res.LiquidityDelta, Liquidity: res.Liquidity}, nil
	})
}

// ExecuteTakerOrder fills a market order for the owner's account.
func (k msgServer) ExecuteTakerOrder(goCtx context.Context, msg *types.MsgExecuteTakerOrderRequest) (*types.MsgExecuteTakerOrderResponse, error) {
	if err := k.authorizeOwner(goCtx, msg, msg.AccountID, msg.Owner); err != nil {
		return nil, err
	}
	return atomically(goCtx, func(ctx sdk.Context) (*types.MsgExecuteTakerOrderResponse, error) {
		res, err := k.Keeper.ExecuteTakerOrder(ctx, TakerOrder{
			AccountID:         msg.AccountID,
			MarketID:          msg.MarketID,
			Maturity:          msg.Maturity,
			BaseAmount:        msg.BaseAmount,
			SqrtPriceLimitX96: msg.SqrtPriceLimitX96,
		})
		if err != nil {
			return nil, err
		}
		return &types.MsgExecuteTakerOrderResponse{
			ExecutedBase:       res.ExecutedBase,
			ExecutedQuote:      res.ExecutedQuote,
			SpreadCharge:       res.SpreadCharge,
			AnnualizedNotional: res.AnnualizedNotional,
			Tick:               res.Tick,
		}, nil
	})
}

// Settle settles the owner's account in a matured pool.
func (k msgServer) Settle(goCtx context.Context, msg *types.MsgSettleRequest) (*types.MsgSettleResponse, error) {
	if err := k.authorizeOwner(goCtx, msg, msg.AccountID, msg.Owner); err != nil {
		return nil, err
	}
	return atomically(goCtx, func(ctx sdk.Context) (*types.MsgSettleResponse, error) {
		cashflow, err := k.Keeper.Settle(ctx, msg.MarketID, msg.Maturity, msg.AccountID)
		if err != nil {
			return nil, err
		}
		return &types.MsgSettleResponse{Cashflow: cashflow}, nil
	})
}

package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/provlabs/datedirs/tickmath"
	"github.com/provlabs/datedirs/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

// NewQueryServer creates a new QueryServer for the module.
func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// queryError maps module errors to gRPC status codes.
func queryError(err error) error {
	switch {
	case errors.Is(err, types.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, types.ErrOracleNotInitialized),
		errors.Is(err, types.ErrNotYetMatured),
		errors.Is(err, types.ErrMissingPreMaturityIndex),
		errors.Is(err, types.ErrObservationTooOld):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, types.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// Market returns a market.
func (k queryServer) Market(goCtx context.Context, req *types.QueryMarketRequest) (*types.QueryMarketResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	market, err := k.GetMarket(sdk.UnwrapSDKContext(goCtx), req.MarketID)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryMarketResponse{Market: market}, nil
}

// Markets returns a paginated list of all markets.
func (k queryServer) Markets(goCtx context.Context, req *types.QueryMarketsRequest) (*types.QueryMarketsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	markets, pageRes, err := query.CollectionPaginate(
		sdk.UnwrapSDKContext(goCtx),
		k.Keeper.Markets,
		req.Pagination,
		func(_ uint64, market types.Market) (types.Market, error) {
			return market, nil
		},
	)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryMarketsResponse{Markets: markets, Pagination: pageRes}, nil
}

// Vamm returns the pool of a market maturity.
func (k queryServer) Vamm(goCtx context.Context, req *types.QueryVammRequest) (*types.QueryVammResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	vamm, err := k.GetVamm(sdk.UnwrapSDKContext(goCtx), req.MarketID, req.Maturity)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryVammResponse{Vamm: vamm}, nil
}

// VammTick returns the current tick, sqrt price and fixed rate of a pool.
func (k queryServer) VammTick(goCtx context.Context, req *types.QueryVammTickRequest) (*types.QueryVammTickResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	vamm, err := k.GetVamm(sdk.UnwrapSDKContext(goCtx), req.MarketID, req.Maturity)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryVammTickResponse{
		Tick:         vamm.State.Tick,
		SqrtPriceX96: vamm.State.SqrtPriceX96,
		Price:        tickmath.PriceAtSqrtRatio(vamm.State.SqrtPriceX96),
	}, nil
}

// RateIndexCurrent returns a market's rate index at block time.
func (k queryServer) RateIndexCurrent(goCtx context.Context, req *types.QueryRateIndexCurrentRequest) (*types.QueryRateIndexCurrentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	market, err := k.GetMarket(ctx, req.MarketID)
	if err != nil {
		return nil, queryError(err)
	}
	index, err := k.CurrentIndex(ctx, market)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryRateIndexCurrentResponse{Index: index}, nil
}

// RateIndexMaturity returns the maturity index of a pool, projected when not cached yet.
func (k queryServer) RateIndexMaturity(goCtx context.Context, req *types.QueryRateIndexMaturityRequest) (*types.QueryRateIndexMaturityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	market, err := k.GetMarket(ctx, req.MarketID)
	if err != nil {
		return nil, queryError(err)
	}
	index, cached, err := k.MaturityIndex(ctx, market, req.Maturity)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryRateIndexMaturityResponse{Index: index, Cached: cached}, nil
}

// AdjustedTwap returns the TWAP rate adjusted for an order of the given size.
func (k queryServer) AdjustedTwap(goCtx context.Context, req *types.QueryAdjustedTwapRequest) (*types.QueryAdjustedTwapResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	market, err := k.GetMarket(ctx, req.MarketID)
	if err != nil {
		return nil, queryError(err)
	}
	vamm, err := k.GetVamm(ctx, req.MarketID, req.Maturity)
	if err != nil {
		return nil, queryError(err)
	}
	lookback := market.Config.TwapLookbackWindow
	if req.Lookback > 0 {
		lookback = req.Lookback
	}
	size := req.OrderSize
	if size.IsNil() {
		size = math.ZeroInt()
	}
	price, err := k.Keeper.AdjustedTwap(ctx, market, vamm, size, lookback)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryAdjustedTwapResponse{Price: price}, nil
}

// AccountFilledBalances returns an account's filled balances in a pool.
func (k queryServer) AccountFilledBalances(goCtx context.Context, req *types.QueryAccountFilledBalancesRequest) (*types.QueryAccountFilledBalancesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	balances, err := k.GetAccountFilledBalances(sdk.UnwrapSDKContext(goCtx), req.MarketID, req.Maturity, req.AccountID)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryAccountFilledBalancesResponse{Balances: balances}, nil
}

// AccountUnfilledBaseAndQuote returns the projected exposure of an account's maker ranges.
func (k queryServer) AccountUnfilledBaseAndQuote(goCtx context.Context, req *types.QueryAccountUnfilledBaseAndQuoteRequest) (*types.QueryAccountUnfilledBaseAndQuoteResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	balances, err := k.GetAccountUnfilledBaseAndQuote(sdk.UnwrapSDKContext(goCtx), req.MarketID, req.Maturity, req.AccountID)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryAccountUnfilledBaseAndQuoteResponse{Balances: balances}, nil
}

// Settlement returns the recorded settlement of an account.
func (k queryServer) Settlement(goCtx context.Context, req *types.QuerySettlementRequest) (*types.QuerySettlementResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	cashflow, settled, err := k.GetSettlement(sdk.UnwrapSDKContext(goCtx), req.MarketID, req.Maturity, req.AccountID)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QuerySettlementResponse{Settled: settled, Cashflow: cashflow}, nil
}

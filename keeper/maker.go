package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/tickmath"
	"github.com/provlabs/datedirs/types"
)

func makerKey(marketID uint64, maturity int64, accountID uint64, lower, upper int32) MakerKey {
	return collections.Join4(marketID, maturity, accountID, types.RangeKey(lower, upper))
}

// MakerOrder is a request to mint (positive base) or burn (negative base)
// liquidity over [TickLower, TickUpper).
type MakerOrder struct {
	AccountID  uint64
	MarketID   uint64
	Maturity   int64
	TickLower  int32
	TickUpper  int32
	BaseAmount math.Int
}

// ExecuteMakerOrder mints or burns maker liquidity. Mints are accepted until
// the inactive window before maturity; burns until the account settles.
func (k *Keeper) ExecuteMakerOrder(ctx sdk.Context, order MakerOrder) (types.MakerOrderResult, error) {
	return cached(ctx, func(ctx sdk.Context) (types.MakerOrderResult, error) {
		return k.executeMakerOrder(ctx, order)
	})
}

func (k *Keeper) executeMakerOrder(ctx sdk.Context, order MakerOrder) (types.MakerOrderResult, error) {
	vamm, err := k.GetVamm(ctx, order.MarketID, order.Maturity)
	if err != nil {
		return types.MakerOrderResult{}, err
	}
	market, err := k.GetMarket(ctx, order.MarketID)
	if err != nil {
		return types.MakerOrderResult{}, err
	}
	if order.BaseAmount.IsNil() || order.BaseAmount.IsZero() {
		return types.MakerOrderResult{}, types.ErrInvalidRequest.Wrap("base amount must be non-zero")
	}
	mint := order.BaseAmount.IsPositive()
	if mint {
		err = k.checkTradable(ctx, vamm)
	} else {
		err = k.checkEnabled(ctx, vamm)
	}
	if err != nil {
		return types.MakerOrderResult{}, err
	}
	if err := k.checkNotSettled(ctx, order.MarketID, order.Maturity, order.AccountID); err != nil {
		return types.MakerOrderResult{}, err
	}
	if err := vamm.CheckTickRange(order.TickLower, order.TickUpper); err != nil {
		return types.MakerOrderResult{}, err
	}
	if err := market.Config.CheckPositionSize(order.BaseAmount); err != nil {
		return types.MakerOrderResult{}, err
	}

	sqrtLower := tickmath.MustSqrtRatioAtTick(order.TickLower)
	sqrtUpper := tickmath.MustSqrtRatioAtTick(order.TickUpper)
	liquidity, err := tickmath.LiquidityForBase(order.BaseAmount.Abs(), sqrtLower, sqrtUpper)
	if err != nil {
		return types.MakerOrderResult{}, err
	}
	if liquidity.IsZero() {
		return types.MakerOrderResult{}, types.ErrInvalidRequest.Wrapf("base %s is too small for range [%d, %d]", order.BaseAmount, order.TickLower, order.TickUpper)
	}
	delta := liquidity
	if !mint {
		delta = liquidity.Neg()
	}

	key := makerKey(order.MarketID, order.Maturity, order.AccountID, order.TickLower, order.TickUpper)
	position, err := k.MakerPositions.Get(ctx, key)
	switch {
	case errors.Is(err, collections.ErrNotFound):
		if !mint {
			return types.MakerOrderResult{}, types.ErrInsufficientPositionLiquidity.Wrapf("account %d has no range [%d, %d]", order.AccountID, order.TickLower, order.TickUpper)
		}
		if err := k.checkMakerPositionLimit(ctx, market, order); err != nil {
			return types.MakerOrderResult{}, err
		}
		position = types.MakerPosition{AccountID: order.AccountID, TickLower: order.TickLower, TickUpper: order.TickUpper, Liquidity: math.ZeroInt()}
	case err != nil:
		return types.MakerOrderResult{}, err
	}
	position.Liquidity = position.Liquidity.Add(delta)
	if position.Liquidity.IsNegative() {
		return types.MakerOrderResult{}, types.ErrInsufficientPositionLiquidity.Wrapf("range [%d, %d] holds %s liquidity, burning %s", order.TickLower, order.TickUpper, position.Liquidity.Sub(delta), liquidity)
	}

	if ctx.BlockTime().Unix() < order.Maturity {
		index, err := k.CurrentIndex(ctx, market)
		if err != nil {
			return types.MakerOrderResult{}, err
		}
		if err := k.refreshPreMaturityIndex(ctx, order.MarketID, order.Maturity, index); err != nil {
			return types.MakerOrderResult{}, err
		}
	}
	if _, err := k.TouchAccruedInterest(ctx, order.MarketID, order.Maturity, order.AccountID); err != nil {
		return types.MakerOrderResult{}, err
	}

	if err := k.Observations.Write(ctx, order.MarketID, order.Maturity, &vamm.State, ctx.BlockTime().Unix(), vamm.State.Tick, vamm.Mutable.MinSecondsBetweenOracleObservations); err != nil {
		return types.MakerOrderResult{}, err
	}
	if err := k.updateTick(ctx, vamm, order.TickLower, delta, false); err != nil {
		return types.MakerOrderResult{}, err
	}
	if err := k.updateTick(ctx, vamm, order.TickUpper, delta, true); err != nil {
		return types.MakerOrderResult{}, err
	}
	if order.TickLower <= vamm.State.Tick && vamm.State.Tick < order.TickUpper {
		vamm.State.Liquidity = vamm.State.Liquidity.Add(delta)
	}

	if position.Liquidity.IsZero() {
		err = k.MakerPositions.Remove(ctx, key)
	} else {
		err = k.MakerPositions.Set(ctx, key, position)
	}
	if err != nil {
		return types.MakerOrderResult{}, err
	}
	if err := k.SetVamm(ctx, vamm); err != nil {
		return types.MakerOrderResult{}, err
	}

	k.getLogger(ctx).Debug("executed maker order",
		"market_id", order.MarketID, "maturity", order.Maturity, "account_id", order.AccountID,
		"tick_lower", order.TickLower, "tick_upper", order.TickUpper, "base", order.BaseAmount, "liquidity_delta", delta)
	k.emitEvent(ctx, types.NewEventMakerOrder(order.MarketID, order.Maturity, order.AccountID, order.TickLower, order.TickUpper, order.BaseAmount, delta))
	return types.MakerOrderResult{LiquidityDelta: delta, Liquidity: position.Liquidity}, nil
}

func (k *Keeper) checkMakerPositionLimit(ctx sdk.Context, market types.Market, order MakerOrder) error {
	limit := market.Config.MakerPositionsPerAccountLimit
	if limit == 0 {
		return nil
	}
	var count uint32
	rng := collections.NewSuperPrefixedQuadRange3[uint64, int64, uint64, uint64](order.MarketID, order.Maturity, order.AccountID)
	err := k.MakerPositions.Walk(ctx, rng, func(MakerKey, types.MakerPosition) (bool, error) {
		count++
		return false, nil
	})
	if err != nil {
		return err
	}
	if count >= limit {
		return types.ErrLimitExceeded.Wrapf("account %d already holds %d maker ranges", order.AccountID, count)
	}
	return nil
}

// GetMakerPositions returns the account's maker ranges in a pool.
func (k *Keeper) GetMakerPositions(ctx sdk.Context, marketID uint64, maturity int64, accountID uint64) ([]types.MakerPosition, error) {
	var positions []types.MakerPosition
	rng := collections.NewSuperPrefixedQuadRange3[uint64, int64, uint64, uint64](marketID, maturity, accountID)
	err := k.MakerPositions.Walk(ctx, rng, func(_ MakerKey, p types.MakerPosition) (bool, error) {
		positions = append(positions, p)
		return false, nil
	})
	return positions, err
}

// poolMakerPositions returns every maker range of a pool ordered by account and range.
func (k *Keeper) poolMakerPositions(ctx sdk.Context, marketID uint64, maturity int64) ([]types.MakerPosition, error) {
	var positions []types.MakerPosition
	rng := collections.NewSuperPrefixedQuadRange[uint64, int64, uint64, uint64](marketID, maturity)
	err := k.MakerPositions.Walk(ctx, rng, func(_ MakerKey, p types.MakerPosition) (bool, error) {
		positions = append(positions, p)
		return false, nil
	})
	return positions, err
}

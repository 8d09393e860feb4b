package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/tickmath"
	"github.com/provlabs/datedirs/types"
)

// CreateVammParams are the inputs of CreateVamm.
type CreateVammParams struct {
	MarketID            uint64
	Maturity            int64
	InitTick            int32
	MaxLiquidityPerTick math.Int
	TickSpacing         int32
	Config              types.VammMutableConfig
	ObservedTimes       []int64
	ObservedTicks       []int32
}

// CreateVamm opens the pool of a market maturity at InitTick without liquidity.
func (k *Keeper) CreateVamm(ctx sdk.Context, p CreateVammParams) (types.Vamm, error) {
	if _, err := k.GetMarket(ctx, p.MarketID); err != nil {
		return types.Vamm{}, err
	}
	key := poolKey(p.MarketID, p.Maturity)
	has, err := k.Vamms.Has(ctx, key)
	if err != nil {
		return types.Vamm{}, err
	}
	if has {
		return types.Vamm{}, types.ErrAlreadyExists.Wrapf("vamm %d/%d", p.MarketID, p.Maturity)
	}
	now := ctx.BlockTime().Unix()
	if p.Maturity <= now {
		return types.Vamm{}, types.ErrMaturityReached.Wrapf("maturity %d is not after %d", p.Maturity, now)
	}

	sqrt, err := tickmath.SqrtRatioAtTick(p.InitTick)
	if err != nil {
		return types.Vamm{}, err
	}
	vamm := types.Vamm{
		Immutable: types.VammImmutableConfig{
			MarketID:            p.MarketID,
			Maturity:            p.Maturity,
			MaxLiquidityPerTick: p.MaxLiquidityPerTick,
			TickSpacing:         p.TickSpacing,
		},
		Mutable: p.Config,
		State: types.VammState{
			SqrtPriceX96: sqrt,
			Tick:         p.InitTick,
			Liquidity:    math.ZeroInt(),
		},
	}

	if len(p.ObservedTimes) > 0 {
		if last := p.ObservedTimes[len(p.ObservedTimes)-1]; last > now {
			return types.Vamm{}, types.ErrInvalidRequest.Wrapf("observation at %d is in the future", last)
		}
		err = k.Observations.Seed(ctx, p.MarketID, p.Maturity, &vamm.State, p.ObservedTimes, p.ObservedTicks)
	} else {
		err = k.Observations.Initialize(ctx, p.MarketID, p.Maturity, &vamm.State, now)
	}
	if err != nil {
		return types.Vamm{}, types.ErrInvalidRequest.Wrap(err.Error())
	}

	if err := vamm.Validate(); err != nil {
		return types.Vamm{}, types.ErrInvalidConfiguration.Wrap(err.Error())
	}
	if err := k.Vamms.Set(ctx, key, vamm); err != nil {
		return types.Vamm{}, err
	}
	if err := k.OpenInterest.Set(ctx, key, math.ZeroInt()); err != nil {
		return types.Vamm{}, err
	}
	if err := k.MaturityQueue.Enqueue(ctx, p.MarketID, p.Maturity); err != nil {
		return types.Vamm{}, err
	}

	k.getLogger(ctx).Info("created vamm", "market_id", p.MarketID, "maturity", p.Maturity, "tick", p.InitTick)
	k.emitEvent(ctx, types.NewEventVammCreated(vamm))
	return vamm, nil
}

// GetVamm returns the pool of a market maturity or ErrNotFound.
func (k *Keeper) GetVamm(ctx sdk.Context, marketID uint64, maturity int64) (types.Vamm, error) {
	vamm, err := k.Vamms.Get(ctx, poolKey(marketID, maturity))
	if errors.Is(err, collections.ErrNotFound) {
		return types.Vamm{}, types.ErrNotFound.Wrapf("vamm %d/%d", marketID, maturity)
	}
	return vamm, err
}

// SetVamm stores the pool.
func (k *Keeper) SetVamm(ctx sdk.Context, vamm types.Vamm) error {
	return k.Vamms.Set(ctx, poolKey(vamm.Immutable.MarketID, vamm.Immutable.Maturity), vamm)
}

// SetMarketMaturityConfiguration replaces the mutable parameters of a pool.
// The current tick must remain inside the allowed range.
func (k *Keeper) SetMarketMaturityConfiguration(ctx sdk.Context, marketID uint64, maturity int64, config types.VammMutableConfig) error {
	vamm, err := k.GetVamm(ctx, marketID, maturity)
	if err != nil {
		return err
	}
	vamm.Mutable = config
	if err := vamm.Validate(); err != nil {
		return types.ErrInvalidConfiguration.Wrap(err.Error())
	}
	if err := k.SetVamm(ctx, vamm); err != nil {
		return err
	}

	k.getLogger(ctx).Info("configured vamm", "market_id", marketID, "maturity", maturity)
	k.emitEvent(ctx, types.NewEventVammConfigured(marketID, maturity))
	return nil
}

// IncreaseObservationCardinalityNext grows the pool's observation buffer. It
// returns the previous and new target cardinality.
func (k *Keeper) IncreaseObservationCardinalityNext(ctx sdk.Context, marketID uint64, maturity int64, next uint32) (uint32, uint32, error) {
	vamm, err := k.GetVamm(ctx, marketID, maturity)
	if err != nil {
		return 0, 0, err
	}
	previous := vamm.State.ObservationCardinalityNext
	if err := k.Observations.Grow(ctx, marketID, maturity, &vamm.State, next); err != nil {
		return 0, 0, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.SetVamm(ctx, vamm); err != nil {
		return 0, 0, err
	}
	if previous != vamm.State.ObservationCardinalityNext {
		k.emitEvent(ctx, types.NewEventObservationCardinalityNext(marketID, maturity, previous, vamm.State.ObservationCardinalityNext))
	}
	return previous, vamm.State.ObservationCardinalityNext, nil
}

// checkTradable enforces the feature flag and the pool lifecycle for orders
// that add exposure.
func (k *Keeper) checkTradable(ctx sdk.Context, vamm types.Vamm) error {
	if err := k.checkEnabled(ctx, vamm); err != nil {
		return err
	}
	now := ctx.BlockTime().Unix()
	maturity := vamm.Immutable.Maturity
	if now >= maturity {
		return types.ErrMaturityReached.Wrapf("maturity %d reached at %d", maturity, now)
	}
	if now >= maturity-vamm.Mutable.InactiveWindowBeforeMaturity {
		return types.ErrCloseToMaturity.Wrapf("trading closed %d seconds before maturity %d", vamm.Mutable.InactiveWindowBeforeMaturity, maturity)
	}
	return nil
}

func (k *Keeper) checkEnabled(ctx sdk.Context, vamm types.Vamm) error {
	if !k.FeatureFlags.IsMarketEnabled(ctx, vamm.Immutable.MarketID, vamm.Immutable.Maturity) {
		return types.ErrMarketDisabled.Wrapf("market %d maturity %d", vamm.Immutable.MarketID, vamm.Immutable.Maturity)
	}
	return nil
}

// checkNotSettled returns ErrAlreadySettled once the account settled the pool.
func (k *Keeper) checkNotSettled(ctx sdk.Context, marketID uint64, maturity int64, accountID uint64) error {
	settled, err := k.SettledAccounts.Has(ctx, accountPoolKey(marketID, maturity, accountID))
	if err != nil {
		return err
	}
	if settled {
		return types.ErrAlreadySettled.Wrapf("account %d in %d/%d", accountID, marketID, maturity)
	}
	return nil
}

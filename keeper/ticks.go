package keeper

import (
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/types"
)

func tickKey(marketID uint64, maturity int64, tick int32) collections.Triple[uint64, int64, int32] {
	return collections.Join3(marketID, maturity, tick)
}

// GetTick returns the tick, or an empty uninitialized tick.
func (k *Keeper) GetTick(ctx sdk.Context, marketID uint64, maturity int64, tick int32) (types.Tick, error) {
	t, err := k.Ticks.Get(ctx, tickKey(marketID, maturity, tick))
	if errors.Is(err, collections.ErrNotFound) {
		return types.NewTick(), nil
	}
	return t, err
}

// updateTick applies a liquidity change to a range boundary. upper selects the
// sign of the net liquidity change. Ticks whose gross liquidity drops to zero
// are removed.
func (k *Keeper) updateTick(ctx sdk.Context, vamm types.Vamm, tick int32, delta math.Int, upper bool) error {
	marketID, maturity := vamm.Immutable.MarketID, vamm.Immutable.Maturity
	t, err := k.GetTick(ctx, marketID, maturity, tick)
	if err != nil {
		return err
	}

	gross := t.LiquidityGross.Add(delta)
	if gross.IsNegative() {
		return types.ErrInsufficientPositionLiquidity.Wrapf("tick %d has %s gross liquidity, removing %s", tick, t.LiquidityGross, delta.Neg())
	}
	if gross.GT(vamm.Immutable.MaxLiquidityPerTick) {
		return types.ErrLiquidityOverflow.Wrapf("tick %d gross liquidity %s exceeds %s", tick, gross, vamm.Immutable.MaxLiquidityPerTick)
	}
	if gross.IsZero() {
		return k.Ticks.Remove(ctx, tickKey(marketID, maturity, tick))
	}

	t.LiquidityGross = gross
	if upper {
		t.LiquidityNet = t.LiquidityNet.Sub(delta)
	} else {
		t.LiquidityNet = t.LiquidityNet.Add(delta)
	}
	t.Initialized = true
	return k.Ticks.Set(ctx, tickKey(marketID, maturity, tick), t)
}

// nextInitializedTick returns the nearest initialized tick at or below tick when
// moving down, or strictly above tick when moving up, bounded by the pool's
// allowed range. When none exists the bound is returned with found=false.
func (k *Keeper) nextInitializedTick(ctx sdk.Context, vamm types.Vamm, tick int32, down bool) (next int32, found bool, err error) {
	marketID, maturity := vamm.Immutable.MarketID, vamm.Immutable.Maturity
	lo, hi := vamm.Mutable.MinTickAllowed, vamm.Mutable.MaxTickAllowed

	rng := new(collections.Range[collections.Triple[uint64, int64, int32]])
	if down {
		if tick < lo {
			return lo, false, nil
		}
		rng = rng.StartInclusive(tickKey(marketID, maturity, lo)).EndInclusive(tickKey(marketID, maturity, tick)).Descending()
	} else {
		if tick >= hi {
			return hi, false, nil
		}
		rng = rng.StartExclusive(tickKey(marketID, maturity, tick)).EndInclusive(tickKey(marketID, maturity, hi))
	}

	it, err := k.Ticks.Iterate(ctx, rng)
	if err != nil {
		return 0, false, err
	}
	defer it.Close()
	if it.Valid() {
		key, err := it.Key()
		if err != nil {
			return 0, false, err
		}
		return key.K3(), true, nil
	}
	if down {
		return lo, false, nil
	}
	return hi, false, nil
}

// crossTick returns the active liquidity after crossing tick in the given direction.
func (k *Keeper) crossTick(ctx sdk.Context, vamm types.Vamm, tick int32, liquidity math.Int, down bool) (math.Int, error) {
	t, err := k.GetTick(ctx, vamm.Immutable.MarketID, vamm.Immutable.Maturity, tick)
	if err != nil {
		return math.Int{}, err
	}
	if down {
		liquidity = liquidity.Sub(t.LiquidityNet)
	} else {
		liquidity = liquidity.Add(t.LiquidityNet)
	}
	if liquidity.IsNegative() {
		return math.Int{}, fmt.Errorf("active liquidity negative after crossing tick %d", tick)
	}
	return liquidity, nil
}

// CheckLiquidity verifies the tick book of a pool: the net liquidity of all
// ticks sums to zero and the active liquidity equals the net liquidity of the
// ticks at or below the current tick.
func (k *Keeper) CheckLiquidity(ctx sdk.Context, marketID uint64, maturity int64) error {
	vamm, err := k.GetVamm(ctx, marketID, maturity)
	if err != nil {
		return err
	}
	total, active := math.ZeroInt(), math.ZeroInt()
	rng := collections.NewSuperPrefixedTripleRange[uint64, int64, int32](marketID, maturity)
	err = k.Ticks.Walk(ctx, rng, func(key collections.Triple[uint64, int64, int32], t types.Tick) (bool, error) {
		total = total.Add(t.LiquidityNet)
		if key.K3() <= vamm.State.Tick {
			active = active.Add(t.LiquidityNet)
		}
		return false, nil
	})
	if err != nil {
		return err
	}
	if !total.IsZero() {
		return fmt.Errorf("vamm %d/%d net liquidity sums to %s", marketID, maturity, total)
	}
	if !active.Equal(vamm.State.Liquidity) {
		return fmt.Errorf("vamm %d/%d active liquidity %s, ticks imply %s", marketID, maturity, vamm.State.Liquidity, active)
	}
	return nil
}

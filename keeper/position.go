package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/interest"
	"github.com/provlabs/datedirs/types"
)

// accrue brings the position's accrued interest up to index at time t.
func accrue(pos types.AccountPosition, index math.LegacyDec, t int64) types.AccountPosition {
	if t < pos.LastTouchTime {
		t = pos.LastTouchTime
	}
	pos.AccruedInterest = pos.AccruedInterest.Add(interest.Accrue(pos.FilledBase, pos.LastRateIndex, index))
	pos.LastRateIndex = index
	pos.LastTouchTime = t
	return pos
}

func (k *Keeper) getAccountPosition(ctx sdk.Context, key AccountPoolKey) (types.AccountPosition, bool, error) {
	pos, err := k.AccountPositions.Get(ctx, key)
	if errors.Is(err, collections.ErrNotFound) {
		return types.AccountPosition{}, false, nil
	}
	if err != nil {
		return types.AccountPosition{}, false, err
	}
	return pos, true, nil
}

// touchAccount accrues interest on the account's position up to block time, or
// maturity once reached, and returns the updated position. Accounts without a
// position get a fresh one snapshotted at the current index. The position is
// not stored.
func (k *Keeper) touchAccount(ctx sdk.Context, market types.Market, maturity int64, accountID uint64) (types.AccountPosition, error) {
	index, t, err := k.accrualIndex(ctx, market, maturity)
	if err != nil {
		return types.AccountPosition{}, err
	}
	pos, found, err := k.getAccountPosition(ctx, accountPoolKey(market.ID, maturity, accountID))
	if err != nil {
		return types.AccountPosition{}, err
	}
	if !found {
		return types.NewAccountPosition(index, t), nil
	}
	return accrue(pos, index, t), nil
}

// TouchAccruedInterest accrues and stores the account's interest in a pool.
func (k *Keeper) TouchAccruedInterest(ctx sdk.Context, marketID uint64, maturity int64, accountID uint64) (types.AccountPosition, error) {
	market, err := k.GetMarket(ctx, marketID)
	if err != nil {
		return types.AccountPosition{}, err
	}
	pos, err := k.touchAccount(ctx, market, maturity, accountID)
	if err != nil {
		return types.AccountPosition{}, err
	}
	return pos, k.AccountPositions.Set(ctx, accountPoolKey(marketID, maturity, accountID), pos)
}

// applyFill accrues the account's interest and then adds the filled amounts
// and any spread credit, keeping the pool's open interest in step.
func (k *Keeper) applyFill(ctx sdk.Context, market types.Market, maturity int64, accountID uint64, f fill) error {
	pos, err := k.touchAccount(ctx, market, maturity, accountID)
	if err != nil {
		return err
	}
	before := pos.FilledBase
	pos.FilledBase = pos.FilledBase.Add(f.base)
	pos.FilledQuote = pos.FilledQuote.Add(f.quote)
	if !f.credit.IsNil() {
		pos.AccruedInterest = pos.AccruedInterest.Add(f.credit)
	}
	if err := k.AccountPositions.Set(ctx, accountPoolKey(market.ID, maturity, accountID), pos); err != nil {
		return err
	}
	return k.adjustOpenInterest(ctx, market.ID, maturity, positivePart(pos.FilledBase).Sub(positivePart(before)))
}

func positivePart(x math.Int) math.Int {
	if x.IsPositive() {
		return x
	}
	return math.ZeroInt()
}

func (k *Keeper) adjustOpenInterest(ctx sdk.Context, marketID uint64, maturity int64, delta math.Int) error {
	if delta.IsZero() {
		return nil
	}
	key := poolKey(marketID, maturity)
	oi, err := k.OpenInterest.Get(ctx, key)
	if errors.Is(err, collections.ErrNotFound) {
		oi = math.ZeroInt()
	} else if err != nil {
		return err
	}
	return k.OpenInterest.Set(ctx, key, oi.Add(delta))
}

// GetOpenInterest returns the sum of long filled base in a pool.
func (k *Keeper) GetOpenInterest(ctx sdk.Context, marketID uint64, maturity int64) (math.Int, error) {
	oi, err := k.OpenInterest.Get(ctx, poolKey(marketID, maturity))
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return oi, err
}

// GetAccountFilledBalances returns the account's filled base and quote and its
// accrued interest including what is pending since the last touch.
func (k *Keeper) GetAccountFilledBalances(ctx sdk.Context, marketID uint64, maturity int64, accountID uint64) (types.FilledBalances, error) {
	pos, found, err := k.getAccountPosition(ctx, accountPoolKey(marketID, maturity, accountID))
	if err != nil {
		return types.FilledBalances{}, err
	}
	if !found {
		return types.FilledBalances{Base: math.ZeroInt(), Quote: math.ZeroInt(), AccruedInterest: math.ZeroInt()}, nil
	}
	market, err := k.GetMarket(ctx, marketID)
	if err != nil {
		return types.FilledBalances{}, err
	}
	index, t, err := k.accrualIndexView(ctx, market, maturity)
	if err != nil {
		return types.FilledBalances{}, err
	}
	pos = accrue(pos, index, t)
	return types.FilledBalances{Base: pos.FilledBase, Quote: pos.FilledQuote, AccruedInterest: pos.AccruedInterest}, nil
}

// trackTakerMaturity records that the account holds taker exposure in a
// maturity, enforcing the per-market limit on distinct maturities.
func (k *Keeper) trackTakerMaturity(ctx sdk.Context, market types.Market, maturity int64, accountID uint64) error {
	key := collections.Join3(accountID, market.ID, maturity)
	has, err := k.TakerMaturities.Has(ctx, key)
	if err != nil || has {
		return err
	}
	if limit := market.Config.TakerPositionsPerAccountLimit; limit > 0 {
		var count uint32
		rng := collections.NewSuperPrefixedTripleRange[uint64, uint64, int64](accountID, market.ID)
		err := k.TakerMaturities.Walk(ctx, rng, func(collections.Triple[uint64, uint64, int64]) (bool, error) {
			count++
			return false, nil
		})
		if err != nil {
			return err
		}
		if count >= limit {
			return types.ErrLimitExceeded.Wrapf("account %d already trades %d maturities of market %d", accountID, count, market.ID)
		}
	}
	return k.TakerMaturities.Set(ctx, key)
}

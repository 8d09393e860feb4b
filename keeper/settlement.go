package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/types"
)

// Settle closes the account's exposure to a matured pool. The cashflow is the
// filled quote plus the interest accrued up to the maturity index. Balances are
// kept for reference and the account may not settle twice.
func (k *Keeper) Settle(ctx sdk.Context, marketID uint64, maturity int64, accountID uint64) (math.Int, error) {
	return cached(ctx, func(ctx sdk.Context) (math.Int, error) {
		return k.settle(ctx, marketID, maturity, accountID)
	})
}

func (k *Keeper) settle(ctx sdk.Context, marketID uint64, maturity int64, accountID uint64) (math.Int, error) {
	key := accountPoolKey(marketID, maturity, accountID)
	settled, err := k.SettledAccounts.Has(ctx, key)
	if err != nil {
		return math.Int{}, err
	}
	if settled {
		return math.Int{}, types.ErrAlreadySettled.Wrapf("account %d in %d/%d", accountID, marketID, maturity)
	}
	if now := ctx.BlockTime().Unix(); now < maturity {
		return math.Int{}, types.ErrNotYetMatured.Wrapf("maturity %d, now %d", maturity, now)
	}
	vamm, err := k.GetVamm(ctx, marketID, maturity)
	if err != nil {
		return math.Int{}, err
	}
	if err := k.checkEnabled(ctx, vamm); err != nil {
		return math.Int{}, err
	}
	_, found, err := k.getAccountPosition(ctx, key)
	if err != nil {
		return math.Int{}, err
	}
	if !found {
		return math.Int{}, types.ErrNotFound.Wrapf("account %d has no position in %d/%d", accountID, marketID, maturity)
	}

	if _, err := k.CacheMaturityIndex(ctx, marketID, maturity); err != nil {
		return math.Int{}, err
	}
	pos, err := k.TouchAccruedInterest(ctx, marketID, maturity, accountID)
	if err != nil {
		return math.Int{}, err
	}
	cashflow := pos.FilledQuote.Add(pos.AccruedInterest)

	if err := k.Settlements.Set(ctx, key, cashflow); err != nil {
		return math.Int{}, err
	}
	if err := k.SettledAccounts.Set(ctx, key); err != nil {
		return math.Int{}, err
	}

	telemetry.IncrCounter(1, types.ModuleName, "settlement")
	k.getLogger(ctx).Info("settled account", "market_id", marketID, "maturity", maturity, "account_id", accountID, "cashflow", cashflow)
	k.emitEvent(ctx, types.NewEventSettlement(marketID, maturity, accountID, cashflow))
	return cashflow, nil
}

// GetSettlement returns the recorded cashflow of a settled account.
func (k *Keeper) GetSettlement(ctx sdk.Context, marketID uint64, maturity int64, accountID uint64) (math.Int, bool, error) {
	cashflow, err := k.Settlements.Get(ctx, accountPoolKey(marketID, maturity, accountID))
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), false, nil
	}
	if err != nil {
		return math.Int{}, false, err
	}
	return cashflow, true, nil
}

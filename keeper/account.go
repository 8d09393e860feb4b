package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/types"
)

// CreateAccount issues a new trading account owned by owner. Ids start at 1.
func (k *Keeper) CreateAccount(ctx sdk.Context, owner string) (types.Account, error) {
	id, err := k.AccountSequence.Next(ctx)
	if err != nil {
		return types.Account{}, err
	}
	if id == 0 {
		if id, err = k.AccountSequence.Next(ctx); err != nil {
			return types.Account{}, err
		}
	}

	account := types.Account{ID: id, Owner: owner}
	if err := k.Accounts.Set(ctx, id, account); err != nil {
		return types.Account{}, err
	}

	k.getLogger(ctx).Debug("created account", "id", id, "owner", owner)
	k.emitEvent(ctx, types.NewEventAccountCreated(account))
	return account, nil
}

// GetAccount returns the account or ErrNotFound.
func (k *Keeper) GetAccount(ctx sdk.Context, id uint64) (types.Account, error) {
	account, err := k.Accounts.Get(ctx, id)
	if errors.Is(err, collections.ErrNotFound) {
		return types.Account{}, types.ErrNotFound.Wrapf("account %d", id)
	}
	return account, err
}

// AuthorizeAccount returns ErrUnauthorized unless owner owns the account.
func (k *Keeper) AuthorizeAccount(ctx sdk.Context, id uint64, owner string) error {
	account, err := k.GetAccount(ctx, id)
	if err != nil {
		return err
	}
	if account.Owner != owner {
		return types.ErrUnauthorized.Wrapf("account %d is not owned by %s", id, owner)
	}
	return nil
}

package datedirs

import (
	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/keeper"
	"github.com/provlabs/datedirs/types"
)

// InitGenesis validates genState and loads it into the keeper.
func InitGenesis(ctx sdk.Context, k *keeper.Keeper, genState *types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return errors.Wrap(err, "invalid genesis state")
	}
	k.InitGenesis(ctx, genState)
	return nil
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k *keeper.Keeper) *types.GenesisState {
	return k.ExportGenesis(ctx)
}

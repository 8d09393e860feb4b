package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BeginBlocker is a hook that is called at the beginning of every block.
func (k *Keeper) BeginBlocker(ctx context.Context) error {
	return k.cacheDueMaturityIndices(sdk.UnwrapSDKContext(ctx))
}

// cacheDueMaturityIndices freezes the index of every pool that matured. Pools
// whose index cannot be derived yet stay queued and are retried next block.
func (k *Keeper) cacheDueMaturityIndices(ctx sdk.Context) error {
	due, err := k.MaturityQueue.Due(ctx, ctx.BlockTime().Unix())
	if err != nil {
		return err
	}
	for _, key := range due {
		maturity, marketID := key.K1(), key.K2()
		cacheCtx, write := ctx.CacheContext()
		if _, err := k.CacheMaturityIndex(cacheCtx, marketID, maturity); err != nil {
			k.getLogger(ctx).Error("failed to cache maturity index", "market_id", marketID, "maturity", maturity, "err", err)
			continue
		}
		write()
	}
	return nil
}

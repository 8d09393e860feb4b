package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/interest"
	"github.com/provlabs/datedirs/types"
)

// CreateRateOracle registers an oracle that has not observed an index yet.
func (k *Keeper) CreateRateOracle(ctx sdk.Context, id string, model types.RateModel, apy math.LegacyDec) error {
	has, err := k.RateOracles.Has(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return types.ErrAlreadyExists.Wrapf("rate oracle %s", id)
	}
	oracle := types.RateOracle{ID: id, Model: model, Apy: apy, LastIndex: math.LegacyZeroDec()}
	if err := oracle.Validate(); err != nil {
		return types.ErrInvalidConfiguration.Wrap(err.Error())
	}
	if err := k.RateOracles.Set(ctx, id, oracle); err != nil {
		return err
	}

	k.getLogger(ctx).Info("created rate oracle", "oracle_id", id, "model", model, "apy", apy)
	k.emitEvent(ctx, types.NewEventRateOracleCreated(oracle))
	return nil
}

// GetRateOracle returns the oracle or ErrNotFound.
func (k *Keeper) GetRateOracle(ctx sdk.Context, id string) (types.RateOracle, error) {
	oracle, err := k.RateOracles.Get(ctx, id)
	if errors.Is(err, collections.ErrNotFound) {
		return types.RateOracle{}, types.ErrNotFound.Wrapf("rate oracle %s", id)
	}
	return oracle, err
}

// RecordRateIndex stores a new observation of the oracle's index at block time.
// The index may never decrease. A non-nil apy replaces the projection rate.
func (k *Keeper) RecordRateIndex(ctx sdk.Context, id string, index, apy math.LegacyDec) error {
	oracle, err := k.GetRateOracle(ctx, id)
	if err != nil {
		return err
	}
	if !index.IsPositive() {
		return types.ErrInvalidRequest.Wrapf("index %s must be positive", index)
	}
	now := ctx.BlockTime().Unix()
	if oracle.Initialized() {
		if index.LT(oracle.LastIndex) {
			return types.ErrNonMonotonicIndex.Wrapf("index %s below last index %s", index, oracle.LastIndex)
		}
		if now < oracle.LastUpdated {
			return types.ErrNonMonotonicIndex.Wrapf("time %d before last update %d", now, oracle.LastUpdated)
		}
	}

	oracle.LastIndex = index
	oracle.LastUpdated = now
	if !apy.IsNil() {
		if apy.IsNegative() {
			return types.ErrInvalidRequest.Wrapf("apy %s cannot be negative", apy)
		}
		oracle.Apy = apy
	}
	if err := k.RateOracles.Set(ctx, id, oracle); err != nil {
		return err
	}

	k.getLogger(ctx).Debug("recorded rate index", "oracle_id", id, "index", index, "time", now)
	k.emitEvent(ctx, types.NewEventRateIndexRecorded(id, index, now))
	return nil
}

// oracleIndexAt projects the oracle's last observation to t. Times before the
// last observation return the last observed index.
func oracleIndexAt(oracle types.RateOracle, t int64) (math.LegacyDec, error) {
	if !oracle.Initialized() {
		return math.LegacyDec{}, types.ErrOracleNotInitialized.Wrapf("rate oracle %s", oracle.ID)
	}
	if t <= oracle.LastUpdated {
		return oracle.LastIndex, nil
	}
	return interest.IndexAt(oracle.Model, oracle.LastIndex, oracle.Apy, t-oracle.LastUpdated)
}

func (k *Keeper) marketOracle(ctx sdk.Context, market types.Market) (types.RateOracle, error) {
	if !market.HasOracle() {
		return types.RateOracle{}, types.ErrOracleNotInitialized.Wrapf("market %d has no rate oracle", market.ID)
	}
	return k.GetRateOracle(ctx, market.OracleID)
}

// CurrentIndex returns the market's rate index at block time.
func (k *Keeper) CurrentIndex(ctx sdk.Context, market types.Market) (math.LegacyDec, error) {
	oracle, err := k.marketOracle(ctx, market)
	if err != nil {
		return math.LegacyDec{}, err
	}
	return oracleIndexAt(oracle, ctx.BlockTime().Unix())
}

// computeMaturityIndex derives the index a matured pool settles at, without
// storing it.
func (k *Keeper) computeMaturityIndex(ctx sdk.Context, market types.Market, maturity int64) (math.LegacyDec, error) {
	now := ctx.BlockTime().Unix()
	if now < maturity {
		return math.LegacyDec{}, types.ErrNotYetMatured.Wrapf("maturity %d, now %d", maturity, now)
	}
	oracle, err := k.marketOracle(ctx, market)
	if err != nil {
		return math.LegacyDec{}, err
	}
	if !oracle.Initialized() {
		return math.LegacyDec{}, types.ErrOracleNotInitialized.Wrapf("rate oracle %s", oracle.ID)
	}

	if oracle.LastUpdated <= maturity {
		return oracleIndexAt(oracle, maturity)
	}
	if now <= maturity+market.MaturityIndexCachingWindow {
		return oracleIndexAt(oracle, now)
	}

	pre, err := k.PreMaturityIndices.Get(ctx, poolKey(market.ID, maturity))
	if errors.Is(err, collections.ErrNotFound) {
		return math.LegacyDec{}, types.ErrMissingPreMaturityIndex.Wrapf("market %d maturity %d", market.ID, maturity)
	}
	if err != nil {
		return math.LegacyDec{}, err
	}
	return interest.Interpolate(pre.Timestamp, pre.Index, oracle.LastUpdated, oracle.LastIndex, maturity), nil
}

// CacheMaturityIndex freezes the index of a matured pool. Once cached the value
// never changes.
func (k *Keeper) CacheMaturityIndex(ctx sdk.Context, marketID uint64, maturity int64) (math.LegacyDec, error) {
	key := poolKey(marketID, maturity)
	cached, err := k.MaturityIndices.Get(ctx, key)
	if err == nil {
		return cached, k.MaturityQueue.Dequeue(ctx, marketID, maturity)
	}
	if !errors.Is(err, collections.ErrNotFound) {
		return math.LegacyDec{}, err
	}

	market, err := k.GetMarket(ctx, marketID)
	if err != nil {
		return math.LegacyDec{}, err
	}
	index, err := k.computeMaturityIndex(ctx, market, maturity)
	if err != nil {
		return math.LegacyDec{}, err
	}
	if err := k.MaturityIndices.Set(ctx, key, index); err != nil {
		return math.LegacyDec{}, err
	}
	if err := k.MaturityQueue.Dequeue(ctx, marketID, maturity); err != nil {
		return math.LegacyDec{}, err
	}

	k.getLogger(ctx).Info("cached maturity index", "market_id", marketID, "maturity", maturity, "index", index)
	k.emitEvent(ctx, types.NewEventMaturityIndexCached(marketID, maturity, index))
	return index, nil
}

// MaturityIndex returns the cached maturity index, or a projection when it has
// not been cached yet. Before maturity the projection extrapolates the current
// index to maturity.
func (k *Keeper) MaturityIndex(ctx sdk.Context, market types.Market, maturity int64) (math.LegacyDec, bool, error) {
	cached, err := k.MaturityIndices.Get(ctx, poolKey(market.ID, maturity))
	if err == nil {
		return cached, true, nil
	}
	if !errors.Is(err, collections.ErrNotFound) {
		return math.LegacyDec{}, false, err
	}
	if ctx.BlockTime().Unix() < maturity {
		oracle, err := k.marketOracle(ctx, market)
		if err != nil {
			return math.LegacyDec{}, false, err
		}
		index, err := oracleIndexAt(oracle, maturity)
		return index, false, err
	}
	index, err := k.computeMaturityIndex(ctx, market, maturity)
	return index, false, err
}

// accrualIndex returns the index and time positions accrue to. After maturity
// both are frozen at the maturity index and maturity.
func (k *Keeper) accrualIndex(ctx sdk.Context, market types.Market, maturity int64) (math.LegacyDec, int64, error) {
	now := ctx.BlockTime().Unix()
	if now < maturity {
		index, err := k.CurrentIndex(ctx, market)
		return index, now, err
	}
	index, err := k.CacheMaturityIndex(ctx, market.ID, maturity)
	return index, maturity, err
}

// accrualIndexView is accrualIndex without side effects.
func (k *Keeper) accrualIndexView(ctx sdk.Context, market types.Market, maturity int64) (math.LegacyDec, int64, error) {
	now := ctx.BlockTime().Unix()
	if now < maturity {
		index, err := k.CurrentIndex(ctx, market)
		return index, now, err
	}
	index, _, err := k.MaturityIndex(ctx, market, maturity)
	return index, maturity, err
}

// refreshPreMaturityIndex remembers the latest index seen before maturity for
// back-filling the maturity index.
func (k *Keeper) refreshPreMaturityIndex(ctx sdk.Context, marketID uint64, maturity int64, index math.LegacyDec) error {
	now := ctx.BlockTime().Unix()
	if now >= maturity {
		return nil
	}
	return k.PreMaturityIndices.Set(ctx, poolKey(marketID, maturity), types.IndexSnapshot{Timestamp: now, Index: index})
}

package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/types"
)

// CreateMarket registers a market quoted in quoteDenom. The quote decimals are
// taken from the denom's bank metadata.
func (k *Keeper) CreateMarket(ctx sdk.Context, id uint64, quoteDenom string, model types.RateModel) (types.Market, error) {
	has, err := k.Markets.Has(ctx, id)
	if err != nil {
		return types.Market{}, err
	}
	if has {
		return types.Market{}, types.ErrAlreadyExists.Wrapf("market %d", id)
	}

	md, found := k.BankKeeper.GetDenomMetaData(ctx, quoteDenom)
	if !found {
		return types.Market{}, types.ErrInvalidConfiguration.Wrapf("no metadata for quote denom %s", quoteDenom)
	}
	decimals, ok := types.DenomDecimals(md)
	if !ok {
		return types.Market{}, types.ErrInvalidConfiguration.Wrapf("metadata for %s has no display unit", quoteDenom)
	}

	market := types.Market{
		ID:            id,
		QuoteDenom:    quoteDenom,
		QuoteDecimals: decimals,
		Type:          model,
		Config:        types.DefaultMarketConfiguration(),
	}
	if err := market.Validate(); err != nil {
		return types.Market{}, types.ErrInvalidConfiguration.Wrap(err.Error())
	}
	if err := k.Markets.Set(ctx, id, market); err != nil {
		return types.Market{}, err
	}

	k.getLogger(ctx).Info("created market", "market_id", id, "quote_denom", quoteDenom, "decimals", decimals, "type", model)
	k.emitEvent(ctx, types.NewEventMarketCreated(market))
	return market, nil
}

// GetMarket returns the market or ErrNotFound.
func (k *Keeper) GetMarket(ctx sdk.Context, id uint64) (types.Market, error) {
	market, err := k.Markets.Get(ctx, id)
	if errors.Is(err, collections.ErrNotFound) {
		return types.Market{}, types.ErrNotFound.Wrapf("market %d", id)
	}
	return market, err
}

// SetMarketConfiguration replaces the risk limits of a market.
func (k *Keeper) SetMarketConfiguration(ctx sdk.Context, id uint64, config types.MarketConfiguration) error {
	market, err := k.GetMarket(ctx, id)
	if err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return types.ErrInvalidConfiguration.Wrap(err.Error())
	}
	market.Config = config
	if err := k.Markets.Set(ctx, id, market); err != nil {
		return err
	}

	k.getLogger(ctx).Info("configured market", "market_id", id)
	k.emitEvent(ctx, types.NewEventMarketConfigured(id))
	return nil
}

// SetRateOracleConfiguration points a market at a rate oracle. The oracle's
// model must match the market's.
func (k *Keeper) SetRateOracleConfiguration(ctx sdk.Context, id uint64, oracleID string, cachingWindow int64) error {
	market, err := k.GetMarket(ctx, id)
	if err != nil {
		return err
	}
	oracle, err := k.GetRateOracle(ctx, oracleID)
	if err != nil {
		return err
	}
	if oracle.Model != market.Type {
		return types.ErrInvalidConfiguration.Wrapf("oracle %s is %s but market %d is %s", oracleID, oracle.Model, id, market.Type)
	}
	if cachingWindow < 0 {
		return types.ErrInvalidConfiguration.Wrapf("caching window %d cannot be negative", cachingWindow)
	}

	market.OracleID = oracleID
	market.MaturityIndexCachingWindow = cachingWindow
	if err := k.Markets.Set(ctx, id, market); err != nil {
		return err
	}

	k.getLogger(ctx).Info("configured market rate oracle", "market_id", id, "oracle_id", oracleID, "caching_window", cachingWindow)
	k.emitEvent(ctx, types.NewEventRateOracleConfigured(id, oracleID))
	return nil
}

package types

import (
	"strconv"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeAccountCreated         = "datedirs_account_created"
	EventTypeRateOracleCreated      = "datedirs_rate_oracle_created"
	EventTypeRateIndexRecorded      = "datedirs_rate_index_recorded"
	EventTypeMarketCreated          = "datedirs_market_created"
	EventTypeMarketConfigured       = "datedirs_market_configured"
	EventTypeRateOracleConfigured   = "datedirs_rate_oracle_configured"
	EventTypeVammCreated            = "datedirs_vamm_created"
	EventTypeVammConfigured         = "datedirs_vamm_configured"
	EventTypeObservationCardinality = "datedirs_observation_cardinality_next"
	EventTypeMakerOrder             = "datedirs_maker_order"
	EventTypeTakerOrder             = "datedirs_taker_order"
	EventTypeMaturityIndexCached    = "datedirs_maturity_index_cached"
	EventTypeSettlement             = "datedirs_settlement"

	AttributeKeyAccountID          = "account_id"
	AttributeKeyOwner              = "owner"
	AttributeKeyOracleID           = "oracle_id"
	AttributeKeyModel              = "model"
	AttributeKeyIndex              = "index"
	AttributeKeyTimestamp          = "timestamp"
	AttributeKeyMarketID           = "market_id"
	AttributeKeyMaturity           = "maturity"
	AttributeKeyQuoteDenom         = "quote_denom"
	AttributeKeyTick               = "tick"
	AttributeKeySqrtPrice          = "sqrt_price_x96"
	AttributeKeyTickLower          = "tick_lower"
	AttributeKeyTickUpper          = "tick_upper"
	AttributeKeyLiquidityDelta     = "liquidity_delta"
	AttributeKeyBase               = "base"
	AttributeKeyQuote              = "quote"
	AttributeKeyAnnualizedNotional = "annualized_notional"
	AttributeKeyCardinalityOld     = "cardinality_next_old"
	AttributeKeyCardinalityNew     = "cardinality_next_new"
	AttributeKeyCashflow           = "cashflow"
	AttributeKeySpreadCharge       = "spread_charge"
)

func marketMaturityAttributes(marketID uint64, maturity int64) []sdk.Attribute {
	return []sdk.Attribute{
		sdk.NewAttribute(AttributeKeyMarketID, strconv.FormatUint(marketID, 10)),
		sdk.NewAttribute(AttributeKeyMaturity, strconv.FormatInt(maturity, 10)),
	}
}

// NewEventAccountCreated creates a new account created event.
func NewEventAccountCreated(account Account) sdk.Event {
	return sdk.NewEvent(EventTypeAccountCreated,
		sdk.NewAttribute(AttributeKeyAccountID, strconv.FormatUint(account.ID, 10)),
		sdk.NewAttribute(AttributeKeyOwner, account.Owner),
	)
}

// NewEventRateOracleCreated creates a new rate oracle created event.
func NewEventRateOracleCreated(oracle RateOracle) sdk.Event {
	return sdk.NewEvent(EventTypeRateOracleCreated,
		sdk.NewAttribute(AttributeKeyOracleID, oracle.ID),
		sdk.NewAttribute(AttributeKeyModel, oracle.Model.String()),
	)
}

// NewEventRateIndexRecorded creates a new rate index recorded event.
func NewEventRateIndexRecorded(oracleID string, index math.LegacyDec, timestamp int64) sdk.Event {
	return sdk.NewEvent(EventTypeRateIndexRecorded,
		sdk.NewAttribute(AttributeKeyOracleID, oracleID),
		sdk.NewAttribute(AttributeKeyIndex, index.String()),
		sdk.NewAttribute(AttributeKeyTimestamp, strconv.FormatInt(timestamp, 10)),
	)
}

// NewEventMarketCreated creates a new market created event.
func NewEventMarketCreated(market Market) sdk.Event {
	return sdk.NewEvent(EventTypeMarketCreated,
		sdk.NewAttribute(AttributeKeyMarketID, strconv.FormatUint(market.ID, 10)),
		sdk.NewAttribute(AttributeKeyQuoteDenom, market.QuoteDenom),
		sdk.NewAttribute(AttributeKeyModel, market.Type.String()),
	)
}

// NewEventMarketConfigured creates a new market configured event.
func NewEventMarketConfigured(marketID uint64) sdk.Event {
	return sdk.NewEvent(EventTypeMarketConfigured,
		sdk.NewAttribute(AttributeKeyMarketID, strconv.FormatUint(marketID, 10)),
	)
}

// NewEventRateOracleConfigured creates a new rate oracle configured event.
func NewEventRateOracleConfigured(marketID uint64, oracleID string) sdk.Event {
	return sdk.NewEvent(EventTypeRateOracleConfigured,
		sdk.NewAttribute(AttributeKeyMarketID, strconv.FormatUint(marketID, 10)),
		sdk.NewAttribute(AttributeKeyOracleID, oracleID),
	)
}

// NewEventVammCreated creates a new vamm created event.
func NewEventVammCreated(vamm Vamm) sdk.Event {
	attrs := marketMaturityAttributes(vamm.Immutable.MarketID, vamm.Immutable.Maturity)
	attrs = append(attrs,
		sdk.NewAttribute(AttributeKeyTick, strconv.FormatInt(int64(vamm.State.Tick), 10)),
		sdk.NewAttribute(AttributeKeySqrtPrice, vamm.State.SqrtPriceX96.String()),
	)
	return sdk.NewEvent(EventTypeVammCreated, attrs...)
}

// NewEventVammConfigured creates a new vamm configured event.
func NewEventVammConfigured(marketID uint64, maturity int64) sdk.Event {
	return sdk.NewEvent(EventTypeVammConfigured, marketMaturityAttributes(marketID, maturity)...)
}

// NewEventObservationCardinalityNext creates a new observation cardinality event.
func NewEventObservationCardinalityNext(marketID uint64, maturity int64, previous, next uint32) sdk.Event {
	attrs := marketMaturityAttributes(marketID, maturity)
	attrs = append(attrs,
		sdk.NewAttribute(AttributeKeyCardinalityOld, strconv.FormatUint(uint64(previous), 10)),
		sdk.NewAttribute(AttributeKeyCardinalityNew, strconv.FormatUint(uint64(next), 10)),
	)
	return sdk.NewEvent(EventTypeObservationCardinality, attrs...)
}

// NewEventMakerOrder creates a new maker order event.
func NewEventMakerOrder(marketID uint64, maturity int64, accountID uint64, lower, upper int32, baseDelta, liquidityDelta math.Int) sdk.Event {
	attrs := marketMaturityAttributes(marketID, maturity)
	attrs = append(attrs,
		sdk.NewAttribute(AttributeKeyAccountID, strconv.FormatUint(accountID, 10)),
		sdk.NewAttribute(AttributeKeyTickLower, strconv.FormatInt(int64(lower), 10)),
		sdk.NewAttribute(AttributeKeyTickUpper, strconv.FormatInt(int64(upper), 10)),
		sdk.NewAttribute(AttributeKeyBase, baseDelta.String()),
		sdk.NewAttribute(AttributeKeyLiquidityDelta, liquidityDelta.String()),
	)
	return sdk.NewEvent(EventTypeMakerOrder, attrs...)
}

// NewEventTakerOrder creates a new taker order event.
func NewEventTakerOrder(marketID uint64, maturity int64, accountID uint64, result TakerOrderResult) sdk.Event {
	attrs := marketMaturityAttributes(marketID, maturity)
	attrs = append(attrs,
		sdk.NewAttribute(AttributeKeyAccountID, strconv.FormatUint(accountID, 10)),
		sdk.NewAttribute(AttributeKeyBase, result.ExecutedBase.String()),
		sdk.NewAttribute(AttributeKeyQuote, result.ExecutedQuote.String()),
		sdk.NewAttribute(AttributeKeySpreadCharge, result.SpreadCharge.String()),
		sdk.NewAttribute(AttributeKeyAnnualizedNotional, result.AnnualizedNotional.String()),
		sdk.NewAttribute(AttributeKeyTick, strconv.FormatInt(int64(result.Tick), 10)),
	)
	return sdk.NewEvent(EventTypeTakerOrder, attrs...)
}

// NewEventMaturityIndexCached creates a new maturity index cached event.
func NewEventMaturityIndexCached(marketID uint64, maturity int64, index math.LegacyDec) sdk.Event {
	attrs := marketMaturityAttributes(marketID, maturity)
	attrs = append(attrs, sdk.NewAttribute(AttributeKeyIndex, index.String()))
	return sdk.NewEvent(EventTypeMaturityIndexCached, attrs...)
}

// NewEventSettlement creates a new settlement event.
func NewEventSettlement(marketID uint64, maturity int64, accountID uint64, cashflow math.Int) sdk.Event {
	attrs := marketMaturityAttributes(marketID, maturity)
	attrs = append(attrs,
		sdk.NewAttribute(AttributeKeyAccountID, strconv.FormatUint(accountID, 10)),
		sdk.NewAttribute(AttributeKeyCashflow, cashflow.String()),
	)
	return sdk.NewEvent(EventTypeSettlement, attrs...)
}

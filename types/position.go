package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// NewAccountPosition returns an empty position snapshotted at index and now.
func NewAccountPosition(index math.LegacyDec, now int64) AccountPosition {
	return AccountPosition{
		FilledBase:      math.ZeroInt(),
		FilledQuote:     math.ZeroInt(),
		AccruedInterest: math.ZeroInt(),
		LastRateIndex:   index,
		LastTouchTime:   now,
	}
}

// Validate performs stateless validation of the position.
func (p AccountPosition) Validate() error {
	if p.FilledBase.IsNil() || p.FilledQuote.IsNil() || p.AccruedInterest.IsNil() {
		return fmt.Errorf("position balances must be set")
	}
	if p.LastRateIndex.IsNil() || p.LastRateIndex.IsNegative() {
		return fmt.Errorf("position rate index must be non-negative")
	}
	return nil
}

// NewUnfilledBalances returns zero balances.
func NewUnfilledBalances() UnfilledBalances {
	return UnfilledBalances{
		BaseLong:                math.ZeroInt(),
		BaseShort:               math.ZeroInt(),
		QuoteLong:               math.ZeroInt(),
		QuoteShort:              math.ZeroInt(),
		AnnualizedNotionalLong:  math.ZeroInt(),
		AnnualizedNotionalShort: math.ZeroInt(),
	}
}

// TakerOrderResult is what a taker order executed.
type TakerOrderResult struct {
	ExecutedBase       math.Int `json:"executed_base"`
	ExecutedQuote      math.Int `json:"executed_quote"`
	SpreadCharge       math.Int `json:"spread_charge"`
	AnnualizedNotional math.Int `json:"annualized_notional"`
	Tick               int32    `json:"tick"`
}

// MakerOrderResult is what a maker order changed.
type MakerOrderResult struct {
	LiquidityDelta math.Int `json:"liquidity_delta"`
	Liquidity      math.Int `json:"liquidity"`
}

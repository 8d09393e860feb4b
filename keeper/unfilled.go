package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/interest"
	"github.com/provlabs/datedirs/tickmath"
	"github.com/provlabs/datedirs/types"
)

// unfilledBase splits a range's liquidity at the current sqrt price into the
// base available to long takers (below) and short takers (above).
func unfilledBase(liquidity, sqrtLower, sqrtUpper, sqrtPrice math.Int) (long, short math.Int) {
	switch {
	case sqrtPrice.LTE(sqrtLower):
		return math.ZeroInt(), tickmath.BaseForLiquidity(liquidity, sqrtLower, sqrtUpper)
	case sqrtPrice.GTE(sqrtUpper):
		return tickmath.BaseForLiquidity(liquidity, sqrtLower, sqrtUpper), math.ZeroInt()
	default:
		return tickmath.BaseForLiquidity(liquidity, sqrtLower, sqrtPrice), tickmath.BaseForLiquidity(liquidity, sqrtPrice, sqrtUpper)
	}
}

// GetAccountUnfilledBaseAndQuote projects the exposure the account's maker
// ranges would take on if fully traded through. Quotes are priced at the
// adjusted TWAP for the corresponding side over the time left to maturity.
func (k *Keeper) GetAccountUnfilledBaseAndQuote(ctx sdk.Context, marketID uint64, maturity int64, accountID uint64) (types.UnfilledBalances, error) {
	balances := types.NewUnfilledBalances()
	positions, err := k.GetMakerPositions(ctx, marketID, maturity, accountID)
	if err != nil || len(positions) == 0 {
		return balances, err
	}
	vamm, err := k.GetVamm(ctx, marketID, maturity)
	if err != nil {
		return balances, err
	}
	market, err := k.GetMarket(ctx, marketID)
	if err != nil {
		return balances, err
	}

	for _, p := range positions {
		long, short := unfilledBase(p.Liquidity, tickmath.MustSqrtRatioAtTick(p.TickLower), tickmath.MustSqrtRatioAtTick(p.TickUpper), vamm.State.SqrtPriceX96)
		balances.BaseLong = balances.BaseLong.Add(long)
		balances.BaseShort = balances.BaseShort.Add(short)
	}

	now := ctx.BlockTime().Unix()
	if now >= maturity {
		return balances, nil
	}
	index, err := k.CurrentIndex(ctx, market)
	if err != nil {
		return balances, err
	}
	lookback := market.Config.TwapLookbackWindow

	if balances.BaseLong.IsPositive() {
		price, err := k.AdjustedTwap(ctx, market, vamm, balances.BaseLong, lookback)
		if err != nil {
			return balances, err
		}
		balances.QuoteLong = interest.UnfilledQuote(balances.BaseLong, index, price, maturity-now)
		balances.AnnualizedNotionalLong = interest.AnnualizedNotional(balances.BaseLong, index, maturity-now)
	}
	if balances.BaseShort.IsPositive() {
		price, err := k.AdjustedTwap(ctx, market, vamm, balances.BaseShort.Neg(), lookback)
		if err != nil {
			return balances, err
		}
		balances.QuoteShort = interest.UnfilledQuote(balances.BaseShort, index, price, maturity-now)
		balances.AnnualizedNotionalShort = interest.AnnualizedNotional(balances.BaseShort, index, maturity-now)
	}
	return balances, nil
}

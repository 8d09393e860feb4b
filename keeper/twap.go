package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/interest"
	"github.com/provlabs/datedirs/tickmath"
	"github.com/provlabs/datedirs/types"
)

// TwapTick returns the time weighted average tick over lookback seconds,
// rounded toward negative infinity. A zero lookback returns the current tick.
func (k *Keeper) TwapTick(ctx sdk.Context, vamm types.Vamm, lookback int64) (int32, error) {
	if lookback <= 0 {
		return vamm.State.Tick, nil
	}
	marketID, maturity := vamm.Immutable.MarketID, vamm.Immutable.Maturity
	now := ctx.BlockTime().Unix()

	current, err := k.Observations.ObserveSingle(ctx, marketID, maturity, vamm.State, now, 0, vamm.State.Tick)
	if err != nil {
		return 0, err
	}
	past, err := k.Observations.ObserveSingle(ctx, marketID, maturity, vamm.State, now, lookback, vamm.State.Tick)
	if err != nil {
		return 0, err
	}
	delta := current - past
	twap := delta / lookback
	if delta < 0 && delta%lookback != 0 {
		twap--
	}
	return int32(twap), nil
}

// AdjustedTwap returns the TWAP fixed rate adjusted for the price impact and
// spread an order of orderSize base would face.
//
//	orderSize > 0: p * (1 + impact) + spread
//	orderSize < 0: max(p * (1 - impact) - spread, 0)
//
// impact is phi * |size|^beta, or phi * |size| when beta is zero, with size in
// whole quote token units.
func (k *Keeper) AdjustedTwap(ctx sdk.Context, market types.Market, vamm types.Vamm, orderSize math.Int, lookback int64) (math.LegacyDec, error) {
	tick, err := k.TwapTick(ctx, vamm, lookback)
	if err != nil {
		return math.LegacyDec{}, err
	}
	price, err := tickmath.PriceAtTick(tick)
	if err != nil {
		return math.LegacyDec{}, err
	}
	return adjustPrice(price, orderSize, market.QuoteDecimals, vamm.Mutable)
}

func adjustPrice(price math.LegacyDec, orderSize math.Int, decimals uint32, cfg types.VammMutableConfig) (math.LegacyDec, error) {
	if orderSize.IsZero() {
		return price, nil
	}
	impact, err := priceImpact(orderSize.Abs(), decimals, cfg)
	if err != nil {
		return math.LegacyDec{}, err
	}
	one := math.LegacyOneDec()
	if orderSize.IsPositive() {
		return price.Mul(one.Add(impact)).Add(cfg.Spread), nil
	}
	adjusted := price.Mul(one.Sub(impact)).Sub(cfg.Spread)
	if adjusted.IsNegative() {
		return math.LegacyZeroDec(), nil
	}
	return adjusted, nil
}

func priceImpact(size math.Int, decimals uint32, cfg types.VammMutableConfig) (math.LegacyDec, error) {
	if cfg.PriceImpactPhi.IsZero() {
		return math.LegacyZeroDec(), nil
	}
	units := math.LegacyNewDecFromInt(size).Quo(math.LegacyNewDecFromInt(math.NewIntWithDecimal(1, int(decimals))))
	if cfg.PriceImpactBeta.IsZero() {
		return cfg.PriceImpactPhi.Mul(units), nil
	}
	scaled, err := interest.PowDec(units, cfg.PriceImpactBeta)
	if err != nil {
		return math.LegacyDec{}, err
	}
	return cfg.PriceImpactPhi.Mul(scaled), nil
}

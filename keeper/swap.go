package keeper

import (
	"errors"
	"maps"
	"slices"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/interest"
	"github.com/provlabs/datedirs/tickmath"
	"github.com/provlabs/datedirs/types"
	"github.com/provlabs/datedirs/utils"
)

// TakerOrder is a market order for BaseAmount. Positive amounts go long
// (pay fixed) and move the tick down, negative amounts go short. A nil or zero
// SqrtPriceLimitX96 means the order must fill completely within the allowed range.
type TakerOrder struct {
	AccountID         uint64
	MarketID          uint64
	Maturity          int64
	BaseAmount        math.Int
	SqrtPriceLimitX96 math.Int
}

// swapStep is a price move across which active liquidity was constant.
type swapStep struct {
	sqrtStart math.Int
	sqrtEnd   math.Int
	liquidity math.Int
	base      math.Int
}

type fill struct {
	base  math.Int
	quote math.Int
	// credit is the share of the taker's spread charge added to accrued interest.
	credit math.Int
}

// swap walks the tick book for base and updates the pool state. It returns the
// steps that filled base; the taker absorbs rounding in every step.
func (k *Keeper) swap(ctx sdk.Context, vamm *types.Vamm, base, sqrtPriceLimit math.Int) ([]swapStep, error) {
	long := base.IsPositive()
	remaining := base.Abs()
	state := vamm.State
	s, tick, liquidity := state.SqrtPriceX96, state.Tick, state.Liquidity

	bound := vamm.Mutable.MaxTickAllowed
	if long {
		bound = vamm.Mutable.MinTickAllowed
	}
	limit := tickmath.MustSqrtRatioAtTick(bound)
	userLimit := !sqrtPriceLimit.IsNil() && !sqrtPriceLimit.IsZero()
	if userLimit {
		if long && (sqrtPriceLimit.GTE(s) || sqrtPriceLimit.LT(limit)) ||
			!long && (sqrtPriceLimit.LTE(s) || sqrtPriceLimit.GT(limit)) {
			return nil, types.ErrInvalidPriceLimit.Wrapf("limit %s on the wrong side of %s or beyond %s", sqrtPriceLimit, s, limit)
		}
		limit = sqrtPriceLimit
	}

	var steps []swapStep
	for remaining.IsPositive() && !s.Equal(limit) {
		next, initialized, err := k.nextInitializedTick(ctx, *vamm, tick, long)
		if err != nil {
			return nil, err
		}
		sNext := tickmath.MustSqrtRatioAtTick(next)
		target := sNext
		if long && target.LT(limit) || !long && target.GT(limit) {
			target = limit
		}

		sNew, filled := target, math.ZeroInt()
		if liquidity.IsPositive() {
			available := tickmath.BaseForLiquidity(liquidity, s, target)
			if available.LTE(remaining) {
				filled = available
			} else {
				filled = remaining
				move := tickmath.SqrtDeltaForBase(remaining, liquidity)
				if long {
					sNew = s.Sub(move)
				} else {
					sNew = s.Add(move)
				}
			}
		}
		if filled.IsPositive() {
			steps = append(steps, swapStep{sqrtStart: s, sqrtEnd: sNew, liquidity: liquidity, base: filled})
		}
		remaining = remaining.Sub(filled)
		s = sNew

		if s.Equal(sNext) {
			if long && next == vamm.Mutable.MinTickAllowed {
				tick = next
				break
			}
			if initialized {
				if liquidity, err = k.crossTick(ctx, *vamm, next, liquidity, long); err != nil {
					return nil, err
				}
			}
			if long {
				tick = next - 1
			} else {
				tick = next
			}
		} else {
			if tick, err = tickmath.TickAtSqrtRatio(s); err != nil {
				return nil, err
			}
		}
	}

	if remaining.IsPositive() {
		if userLimit && s.Equal(limit) {
			return nil, types.ErrPriceLimitReached.Wrapf("%s of %s base unfilled at limit %s", remaining, base.Abs(), limit)
		}
		return nil, types.ErrInsufficientLiquidity.Wrapf("%s of %s base unfilled", remaining, base.Abs())
	}

	vamm.State.SqrtPriceX96 = s
	vamm.State.Tick = tick
	vamm.State.Liquidity = liquidity
	return steps, nil
}

// stepQuote returns the quote the taker receives for a step, floor(-base * index * avgPrice).
func stepQuote(step swapStep, long bool, index math.LegacyDec) (signedBase, quote math.Int) {
	signedBase = step.base
	if !long {
		signedBase = step.base.Neg()
	}
	return signedBase, utils.MulWad2(signedBase.Neg(), index, tickmath.AveragePrice(step.sqrtStart, step.sqrtEnd))
}

// distributeStep splits the opposite of a taker step across the maker ranges
// that were active during the step, pro rata to their liquidity.
func distributeStep(step swapStep, signedBase, quote math.Int, makers []rangeBounds, fills map[uint64]*fill) error {
	lo, hi := step.sqrtStart, step.sqrtEnd
	if lo.GT(hi) {
		lo, hi = hi, lo
	}
	covering := slices.Collect(utils.Filter(makers, func(m rangeBounds) bool {
		return m.sqrtLower.LTE(lo) && m.sqrtUpper.GTE(hi)
	}))
	weights := slices.Collect(utils.Map(covering, func(m rangeBounds) math.Int {
		return m.position.Liquidity
	}))
	total := utils.SumInts(slices.Values(weights))
	if !total.Equal(step.liquidity) {
		return types.ErrInvalidConfiguration.Wrapf("maker ranges hold %s liquidity but the step used %s", total, step.liquidity)
	}
	baseShares, err := utils.SplitProRata(signedBase.Neg(), weights)
	if err != nil {
		return err
	}
	quoteShares, err := utils.SplitProRata(quote.Neg(), weights)
	if err != nil {
		return err
	}
	for i, m := range covering {
		f, ok := fills[m.position.AccountID]
		if !ok {
			f = &fill{base: math.ZeroInt(), quote: math.ZeroInt(), credit: math.ZeroInt()}
			fills[m.position.AccountID] = f
		}
		f.base = f.base.Add(baseShares[i])
		f.quote = f.quote.Add(quoteShares[i])
	}
	return nil
}

// creditSpread splits the taker's spread charge across the filled makers pro
// rata to the base each of them took.
func creditSpread(charge math.Int, fills map[uint64]*fill) error {
	ids := slices.Sorted(maps.Keys(fills))
	weights := slices.Collect(utils.Map(ids, func(id uint64) math.Int {
		return fills[id].base.Abs()
	}))
	shares, err := utils.SplitProRata(charge, weights)
	if err != nil {
		return err
	}
	for i, id := range ids {
		fills[id].credit = fills[id].credit.Add(shares[i])
	}
	return nil
}

type rangeBounds struct {
	position  types.MakerPosition
	sqrtLower math.Int
	sqrtUpper math.Int
}

// ExecuteTakerOrder fills a market order against the pool's maker ranges.
// Fills are zero-sum: the makers active in each step take the opposite base and
// quote of the taker. The spread charge is taken from the taker's quote and
// credited to the makers' accrued interest.
func (k *Keeper) ExecuteTakerOrder(ctx sdk.Context, order TakerOrder) (types.TakerOrderResult, error) {
	return cached(ctx, func(ctx sdk.Context) (types.TakerOrderResult, error) {
		return k.executeTakerOrder(ctx, order)
	})
}

func (k *Keeper) executeTakerOrder(ctx sdk.Context, order TakerOrder) (types.TakerOrderResult, error) {
	vamm, err := k.GetVamm(ctx, order.MarketID, order.Maturity)
	if err != nil {
		return types.TakerOrderResult{}, err
	}
	market, err := k.GetMarket(ctx, order.MarketID)
	if err != nil {
		return types.TakerOrderResult{}, err
	}
	if order.BaseAmount.IsNil() || order.BaseAmount.IsZero() {
		return types.TakerOrderResult{}, types.ErrInvalidRequest.Wrap("base amount must be non-zero")
	}
	if err := k.checkTradable(ctx, vamm); err != nil {
		return types.TakerOrderResult{}, err
	}
	if err := k.checkNotSettled(ctx, order.MarketID, order.Maturity, order.AccountID); err != nil {
		return types.TakerOrderResult{}, err
	}
	if err := market.Config.CheckPositionSize(order.BaseAmount); err != nil {
		return types.TakerOrderResult{}, err
	}

	now := ctx.BlockTime().Unix()
	index, err := k.CurrentIndex(ctx, market)
	if err != nil {
		return types.TakerOrderResult{}, err
	}
	if err := k.refreshPreMaturityIndex(ctx, order.MarketID, order.Maturity, index); err != nil {
		return types.TakerOrderResult{}, err
	}

	if err := k.Observations.Write(ctx, order.MarketID, order.Maturity, &vamm.State, now, vamm.State.Tick, vamm.Mutable.MinSecondsBetweenOracleObservations); err != nil {
		return types.TakerOrderResult{}, err
	}
	steps, err := k.swap(ctx, &vamm, order.BaseAmount, order.SqrtPriceLimitX96)
	if err != nil {
		return types.TakerOrderResult{}, err
	}

	positions, err := k.poolMakerPositions(ctx, order.MarketID, order.Maturity)
	if err != nil {
		return types.TakerOrderResult{}, err
	}
	makers := make([]rangeBounds, len(positions))
	for i, p := range positions {
		makers[i] = rangeBounds{
			position:  p,
			sqrtLower: tickmath.MustSqrtRatioAtTick(p.TickLower),
			sqrtUpper: tickmath.MustSqrtRatioAtTick(p.TickUpper),
		}
	}

	long := order.BaseAmount.IsPositive()
	executedBase, executedQuote := math.ZeroInt(), math.ZeroInt()
	fills := make(map[uint64]*fill)
	for _, step := range steps {
		signedBase, quote := stepQuote(step, long, index)
		executedBase = executedBase.Add(signedBase)
		executedQuote = executedQuote.Add(quote)
		if err := distributeStep(step, signedBase, quote, makers, fills); err != nil {
			return types.TakerOrderResult{}, err
		}
	}

	charge := interest.SpreadCharge(executedBase, index, vamm.Mutable.Spread)
	if charge.IsPositive() {
		executedQuote = executedQuote.Sub(charge)
		if err := creditSpread(charge, fills); err != nil {
			return types.TakerOrderResult{}, err
		}
		if err := k.addCollectedSpread(ctx, order.MarketID, order.Maturity, charge); err != nil {
			return types.TakerOrderResult{}, err
		}
	}

	if err := k.trackTakerMaturity(ctx, market, order.Maturity, order.AccountID); err != nil {
		return types.TakerOrderResult{}, err
	}
	taker := fill{base: executedBase, quote: executedQuote}
	if err := k.applyFill(ctx, market, order.Maturity, order.AccountID, taker); err != nil {
		return types.TakerOrderResult{}, err
	}
	for _, accountID := range slices.Sorted(maps.Keys(fills)) {
		if err := k.applyFill(ctx, market, order.Maturity, accountID, *fills[accountID]); err != nil {
			return types.TakerOrderResult{}, err
		}
	}

	if err := k.checkMarkPriceBand(ctx, market, vamm, executedBase); err != nil {
		return types.TakerOrderResult{}, err
	}
	if limit := market.Config.OpenInterestUpperLimit; limit.IsPositive() {
		oi, err := k.GetOpenInterest(ctx, order.MarketID, order.Maturity)
		if err != nil {
			return types.TakerOrderResult{}, err
		}
		if oi.GT(limit) {
			return types.TakerOrderResult{}, types.ErrLimitExceeded.Wrapf("open interest %s exceeds %s", oi, limit)
		}
	}
	if err := k.SetVamm(ctx, vamm); err != nil {
		return types.TakerOrderResult{}, err
	}

	result := types.TakerOrderResult{
		ExecutedBase:       executedBase,
		ExecutedQuote:      executedQuote,
		SpreadCharge:       charge,
		AnnualizedNotional: interest.AnnualizedNotional(executedBase, index, order.Maturity-now),
		Tick:               vamm.State.Tick,
	}

	telemetry.IncrCounter(1, types.ModuleName, "taker_order")
	k.getLogger(ctx).Debug("executed taker order",
		"market_id", order.MarketID, "maturity", order.Maturity, "account_id", order.AccountID,
		"base", executedBase, "quote", executedQuote, "tick", result.Tick, "makers", len(fills))
	k.emitEvent(ctx, types.NewEventTakerOrder(order.MarketID, order.Maturity, order.AccountID, result))
	return result, nil
}

// GetCollectedSpread returns the spread charged to takers of a pool so far.
func (k *Keeper) GetCollectedSpread(ctx sdk.Context, marketID uint64, maturity int64) (math.Int, error) {
	collected, err := k.CollectedSpread.Get(ctx, poolKey(marketID, maturity))
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return collected, err
}

func (k *Keeper) addCollectedSpread(ctx sdk.Context, marketID uint64, maturity int64, charge math.Int) error {
	collected, err := k.GetCollectedSpread(ctx, marketID, maturity)
	if err != nil {
		return err
	}
	return k.CollectedSpread.Set(ctx, poolKey(marketID, maturity), collected.Add(charge))
}

// checkMarkPriceBand rejects a fill that leaves the pool price further than the
// market's band from the adjusted TWAP. A zero band disables the check.
func (k *Keeper) checkMarkPriceBand(ctx sdk.Context, market types.Market, vamm types.Vamm, executedBase math.Int) error {
	band := market.Config.MarkPriceBand
	if !band.IsPositive() {
		return nil
	}
	twap, err := k.AdjustedTwap(ctx, market, vamm, executedBase, market.Config.TwapLookbackWindow)
	if err != nil {
		return err
	}
	price := tickmath.PriceAtSqrtRatio(vamm.State.SqrtPriceX96)
	if price.Sub(twap).Abs().GT(band) {
		return types.ErrMarkPriceBandExceeded.Wrapf("price %s is more than %s from adjusted twap %s", price, band, twap)
	}
	return nil
}

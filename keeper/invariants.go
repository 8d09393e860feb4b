package keeper

import (
	"fmt"
	"strings"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/types"
)

// RegisterInvariants registers the module's invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "zero-sum-fills", ZeroSumFillsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "open-interest", OpenInterestInvariant(k))
	ir.RegisterRoute(types.ModuleName, "tick-liquidity", TickLiquidityInvariant(k))
}

// AllInvariants runs every invariant and reports the first broken one.
func AllInvariants(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range []sdk.Invariant{ZeroSumFillsInvariant(k), OpenInterestInvariant(k), TickLiquidityInvariant(k)} {
			if msg, broken := inv(ctx); broken {
				return msg, broken
			}
		}
		return "", false
	}
}

// poolID is a comparable pool identity. PoolKey holds pointers and cannot key a Go map.
type poolID struct {
	marketID uint64
	maturity int64
}

func poolIDOf(pk PoolKey) poolID {
	return poolID{marketID: pk.K1(), maturity: pk.K2()}
}

type poolTotals struct {
	base  math.Int
	quote math.Int
	long  math.Int
}

func (k *Keeper) sumPositions(ctx sdk.Context) (map[poolID]*poolTotals, []poolID, error) {
	totals := make(map[poolID]*poolTotals)
	var order []poolID
	err := k.AccountPositions.Walk(ctx, nil, func(key AccountPoolKey, pos types.AccountPosition) (bool, error) {
		pk := poolID{marketID: key.K1(), maturity: key.K2()}
		t, ok := totals[pk]
		if !ok {
			t = &poolTotals{base: math.ZeroInt(), quote: math.ZeroInt(), long: math.ZeroInt()}
			totals[pk] = t
			order = append(order, pk)
		}
		t.base = t.base.Add(pos.FilledBase)
		t.quote = t.quote.Add(pos.FilledQuote)
		t.long = t.long.Add(positivePart(pos.FilledBase))
		return false, nil
	})
	return totals, order, err
}

// ZeroSumFillsInvariant checks that filled base nets to zero in every pool and
// that filled quote nets to minus the spread collected from takers.
func ZeroSumFillsInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		totals, order, err := k.sumPositions(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "zero-sum-fills", err.Error()), true
		}
		collected := make(map[poolID]math.Int)
		err = k.CollectedSpread.Walk(ctx, nil, func(pk PoolKey, amount math.Int) (bool, error) {
			collected[poolIDOf(pk)] = amount
			if _, ok := totals[poolIDOf(pk)]; !ok && !amount.IsZero() {
				return true, fmt.Errorf("%d/%d: collected spread %s without positions", pk.K1(), pk.K2(), amount)
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "zero-sum-fills", err.Error()), true
		}
		var broken []string
		for _, pk := range order {
			t := totals[pk]
			spread, ok := collected[pk]
			if !ok {
				spread = math.ZeroInt()
			}
			if !t.base.IsZero() || !t.quote.Add(spread).IsZero() {
				broken = append(broken, fmt.Sprintf("%d/%d: base %s quote %s collected spread %s", pk.marketID, pk.maturity, t.base, t.quote, spread))
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "zero-sum-fills", strings.Join(broken, "\n")), len(broken) > 0
	}
}

// OpenInterestInvariant checks the tracked open interest against the positions.
func OpenInterestInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		totals, _, err := k.sumPositions(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "open-interest", err.Error()), true
		}
		var broken []string
		err = k.OpenInterest.Walk(ctx, nil, func(pk PoolKey, oi math.Int) (bool, error) {
			expected := math.ZeroInt()
			if t, ok := totals[poolIDOf(pk)]; ok {
				expected = t.long
			}
			if !oi.Equal(expected) {
				broken = append(broken, fmt.Sprintf("%d/%d: tracked %s, positions %s", pk.K1(), pk.K2(), oi, expected))
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "open-interest", err.Error()), true
		}
		return sdk.FormatInvariant(types.ModuleName, "open-interest", strings.Join(broken, "\n")), len(broken) > 0
	}
}

// TickLiquidityInvariant checks every pool's tick book against its active liquidity.
func TickLiquidityInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken []string
		err := k.Vamms.Walk(ctx, nil, func(pk PoolKey, _ types.Vamm) (bool, error) {
			if err := k.CheckLiquidity(ctx, pk.K1(), pk.K2()); err != nil {
				broken = append(broken, err.Error())
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "tick-liquidity", err.Error()), true
		}
		return sdk.FormatInvariant(types.ModuleName, "tick-liquidity", strings.Join(broken, "\n")), len(broken) > 0
	}
}

// SettlementSum returns the sum of recorded cashflows of a pool and the number
// of settled accounts.
func (k *Keeper) SettlementSum(ctx sdk.Context, marketID uint64, maturity int64) (math.Int, int, error) {
	sum, n := math.ZeroInt(), 0
	rng := collections.NewSuperPrefixedTripleRange[uint64, int64, uint64](marketID, maturity)
	err := k.Settlements.Walk(ctx, rng, func(_ AccountPoolKey, cashflow math.Int) (bool, error) {
		sum = sum.Add(cashflow)
		n++
		return false, nil
	})
	return sum, n, err
}

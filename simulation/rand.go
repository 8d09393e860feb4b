package simulation

import (
	"fmt"
	"math/rand"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/provlabs/datedirs/keeper"
	"github.com/provlabs/datedirs/tickmath"
	"github.com/provlabs/datedirs/types"
)

// randomInt63 generates a random int64 between 0 and maxVal.
func randomInt63(r *rand.Rand, maxVal int64) int64 {
	if maxVal <= 0 {
		return 0
	}
	return r.Int63n(maxVal)
}

// randomInt63Between generates a random int64 in [minVal, maxVal].
func randomInt63Between(r *rand.Rand, minVal, maxVal int64) int64 {
	return minVal + randomInt63(r, maxVal-minVal+1)
}

// randomAlignedTick picks a tick in [lower, upper] that is a multiple of spacing.
func randomAlignedTick(r *rand.Rand, lower, upper, spacing int32) int32 {
	steps := int64(upper-lower) / int64(spacing)
	return tickmath.AlignTick(lower, spacing) + int32(randomInt63(r, steps+1))*spacing
}

// getRandomVamm selects a random pool that satisfies condition.
func getRandomVamm(r *rand.Rand, k *keeper.Keeper, ctx sdk.Context, condition func(types.Vamm) bool) (types.Vamm, error) {
	var matching []types.Vamm
	err := k.Vamms.Walk(ctx, nil, func(_ keeper.PoolKey, vamm types.Vamm) (bool, error) {
		if condition == nil || condition(vamm) {
			matching = append(matching, vamm)
		}
		return false, nil
	})
	if err != nil {
		return types.Vamm{}, err
	}
	if len(matching) == 0 {
		return types.Vamm{}, fmt.Errorf("no vamms found matching condition")
	}
	return matching[r.Intn(len(matching))], nil
}

// tradableAt reports whether a pool accepts orders at now.
func tradableAt(now int64) func(types.Vamm) bool {
	return func(vamm types.Vamm) bool {
		return vamm.Immutable.Maturity-vamm.Mutable.InactiveWindowBeforeMaturity > now
	}
}

// maturedAt reports whether a pool can be settled at now.
func maturedAt(now int64) func(types.Vamm) bool {
	return func(vamm types.Vamm) bool {
		return vamm.Immutable.Maturity <= now
	}
}

// getRandomMarket selects a random market.
func getRandomMarket(r *rand.Rand, k *keeper.Keeper, ctx sdk.Context) (types.Market, error) {
	var markets []types.Market
	err := k.Markets.Walk(ctx, nil, func(_ uint64, market types.Market) (bool, error) {
		markets = append(markets, market)
		return false, nil
	})
	if err != nil {
		return types.Market{}, err
	}
	if len(markets) == 0 {
		return types.Market{}, fmt.Errorf("no markets found")
	}
	return markets[r.Intn(len(markets))], nil
}

// getRandomOracle selects a random rate oracle.
func getRandomOracle(r *rand.Rand, k *keeper.Keeper, ctx sdk.Context) (types.RateOracle, error) {
	var oracles []types.RateOracle
	err := k.RateOracles.Walk(ctx, nil, func(_ string, oracle types.RateOracle) (bool, error) {
		oracles = append(oracles, oracle)
		return false, nil
	})
	if err != nil {
		return types.RateOracle{}, err
	}
	if len(oracles) == 0 {
		return types.RateOracle{}, fmt.Errorf("no rate oracles found")
	}
	return oracles[r.Intn(len(oracles))], nil
}

// getRandomOwnedAccount selects a random trading account owned by one of the
// simulation accounts.
func getRandomOwnedAccount(r *rand.Rand, k *keeper.Keeper, ctx sdk.Context, accs []simtypes.Account) (types.Account, error) {
	var owned []types.Account
	err := k.Accounts.Walk(ctx, nil, func(_ uint64, account types.Account) (bool, error) {
		if isSimAccount(accs, account.Owner) {
			owned = append(owned, account)
		}
		return false, nil
	})
	if err != nil {
		return types.Account{}, err
	}
	if len(owned) == 0 {
		return types.Account{}, fmt.Errorf("no accounts owned by simulation accounts")
	}
	return owned[r.Intn(len(owned))], nil
}

// getRandomUnsettledPosition selects an account with filled balances in a
// matured pool that has not settled yet.
func getRandomUnsettledPosition(r *rand.Rand, k *keeper.Keeper, ctx sdk.Context, vamm types.Vamm, accs []simtypes.Account) (types.Account, error) {
	rng := collections.NewSuperPrefixedTripleRange[uint64, int64, uint64](vamm.Immutable.MarketID, vamm.Immutable.Maturity)

	var candidates []types.Account
	err := k.AccountPositions.Walk(ctx, rng, func(key keeper.AccountPoolKey, _ types.AccountPosition) (bool, error) {
		settled, err := k.SettledAccounts.Has(ctx, key)
		if err != nil || settled {
			return false, err
		}
		account, err := k.GetAccount(ctx, key.K3())
		if err != nil {
			return true, err
		}
		if isSimAccount(accs, account.Owner) {
			candidates = append(candidates, account)
		}
		return false, nil
	})
	if err != nil {
		return types.Account{}, err
	}
	if len(candidates) == 0 {
		return types.Account{}, fmt.Errorf("no unsettled positions in vamm %d/%d", vamm.Immutable.MarketID, vamm.Immutable.Maturity)
	}
	return candidates[r.Intn(len(candidates))], nil
}

func isSimAccount(accs []simtypes.Account, owner string) bool {
	addr, err := sdk.AccAddressFromBech32(owner)
	if err != nil {
		return false
	}
	_, found := simtypes.FindAccount(accs, addr)
	return found
}

// randomBaseAmount returns a random notional between MinOrderBase and MaxOrderBase.
func randomBaseAmount(r *rand.Rand) math.Int {
	return math.NewInt(randomInt63Between(r, MinOrderBase, MaxOrderBase))
}

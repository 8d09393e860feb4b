package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/types"
)

// InitGenesis initializes the datedirs module state from genesis.
func (k *Keeper) InitGenesis(ctx sdk.Context, genState *types.GenesisState) {
	if genState == nil {
		return
	}
	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid datedirs genesis state: %w", err))
	}

	if err := k.AccountSequence.Set(ctx, genState.NextAccountID); err != nil {
		panic(err)
	}
	for _, a := range genState.Accounts {
		if err := k.Accounts.Set(ctx, a.ID, a); err != nil {
			panic(fmt.Errorf("failed to store account %d: %w", a.ID, err))
		}
	}
	for _, o := range genState.RateOracles {
		if err := k.RateOracles.Set(ctx, o.ID, o); err != nil {
			panic(fmt.Errorf("failed to store rate oracle %s: %w", o.ID, err))
		}
	}
	for _, m := range genState.Markets {
		if err := k.Markets.Set(ctx, m.ID, m); err != nil {
			panic(fmt.Errorf("failed to store market %d: %w", m.ID, err))
		}
	}

	cached := make(map[poolID]bool, len(genState.MaturityIndices))
	for _, m := range genState.MaturityIndices {
		cached[poolID{marketID: m.MarketID, maturity: m.Maturity}] = true
		if err := k.MaturityIndices.Set(ctx, poolKey(m.MarketID, m.Maturity), m.Index); err != nil {
			panic(err)
		}
	}
	for _, v := range genState.Vamms {
		key := poolKey(v.Immutable.MarketID, v.Immutable.Maturity)
		if err := k.Vamms.Set(ctx, key, v); err != nil {
			panic(fmt.Errorf("failed to store vamm %d/%d: %w", key.K1(), key.K2(), err))
		}
		if err := k.OpenInterest.Set(ctx, key, math.ZeroInt()); err != nil {
			panic(err)
		}
		if !cached[poolIDOf(key)] {
			if err := k.MaturityQueue.Enqueue(ctx, key.K1(), key.K2()); err != nil {
				panic(err)
			}
		}
	}
	for _, t := range genState.Ticks {
		if err := k.Ticks.Set(ctx, tickKey(t.MarketID, t.Maturity, t.Index), t.Tick); err != nil {
			panic(err)
		}
	}
	for _, o := range genState.Observations {
		if err := k.Observations.Set(ctx, collections.Join3(o.MarketID, o.Maturity, o.Slot), o.Observation); err != nil {
			panic(err)
		}
	}
	for _, p := range genState.MakerPositions {
		key := makerKey(p.MarketID, p.Maturity, p.Position.AccountID, p.Position.TickLower, p.Position.TickUpper)
		if err := k.MakerPositions.Set(ctx, key, p.Position); err != nil {
			panic(err)
		}
	}
	for _, p := range genState.AccountPositions {
		if err := k.AccountPositions.Set(ctx, accountPoolKey(p.MarketID, p.Maturity, p.AccountID), p.Position); err != nil {
			panic(err)
		}
		if err := k.adjustOpenInterest(ctx, p.MarketID, p.Maturity, positivePart(p.Position.FilledBase)); err != nil {
			panic(err)
		}
	}
	for _, t := range genState.TakerMaturities {
		if err := k.TakerMaturities.Set(ctx, collections.Join3(t.AccountID, t.MarketID, t.Maturity)); err != nil {
			panic(err)
		}
	}
	for _, c := range genState.CollectedSpreads {
		if err := k.CollectedSpread.Set(ctx, poolKey(c.MarketID, c.Maturity), c.Amount); err != nil {
			panic(err)
		}
	}
	for _, m := range genState.PreMaturityIndices {
		if err := k.PreMaturityIndices.Set(ctx, poolKey(m.MarketID, m.Maturity), m.Snapshot); err != nil {
			panic(err)
		}
	}
	for _, s := range genState.Settlements {
		key := accountPoolKey(s.MarketID, s.Maturity, s.AccountID)
		if err := k.Settlements.Set(ctx, key, s.Cashflow); err != nil {
			panic(err)
		}
		if err := k.SettledAccounts.Set(ctx, key); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis exports the current state of the datedirs module.
func (k *Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	next, err := k.AccountSequence.Peek(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get account sequence: %w", err))
	}
	if next == 0 {
		next = 1
	}
	gs := &types.GenesisState{NextAccountID: next}

	must := func(err error) {
		if err != nil {
			panic(fmt.Errorf("failed to export datedirs state: %w", err))
		}
	}
	must(k.Accounts.Walk(ctx, nil, func(_ uint64, a types.Account) (bool, error) {
		gs.Accounts = append(gs.Accounts, a)
		return false, nil
	}))
	must(k.RateOracles.Walk(ctx, nil, func(_ string, o types.RateOracle) (bool, error) {
		gs.RateOracles = append(gs.RateOracles, o)
		return false, nil
	}))
	must(k.Markets.Walk(ctx, nil, func(_ uint64, m types.Market) (bool, error) {
		gs.Markets = append(gs.Markets, m)
		return false, nil
	}))
	must(k.Vamms.Walk(ctx, nil, func(_ PoolKey, v types.Vamm) (bool, error) {
		gs.Vamms = append(gs.Vamms, v)
		return false, nil
	}))
	must(k.Ticks.Walk(ctx, nil, func(key collections.Triple[uint64, int64, int32], t types.Tick) (bool, error) {
		gs.Ticks = append(gs.Ticks, types.GenesisTick{MarketID: key.K1(), Maturity: key.K2(), Index: key.K3(), Tick: t})
		return false, nil
	}))
	must(k.Observations.Walk(ctx, nil, func(key collections.Triple[uint64, int64, uint32], o types.Observation) (bool, error) {
		gs.Observations = append(gs.Observations, types.GenesisObservation{MarketID: key.K1(), Maturity: key.K2(), Slot: key.K3(), Observation: o})
		return false, nil
	}))
	must(k.MakerPositions.Walk(ctx, nil, func(key MakerKey, p types.MakerPosition) (bool, error) {
		gs.MakerPositions = append(gs.MakerPositions, types.GenesisMakerPosition{MarketID: key.K1(), Maturity: key.K2(), Position: p})
		return false, nil
	}))
	must(k.AccountPositions.Walk(ctx, nil, func(key AccountPoolKey, p types.AccountPosition) (bool, error) {
		gs.AccountPositions = append(gs.AccountPositions, types.GenesisAccountPosition{MarketID: key.K1(), Maturity: key.K2(), AccountID: key.K3(), Position: p})
		return false, nil
	}))
	must(k.TakerMaturities.Walk(ctx, nil, func(key collections.Triple[uint64, uint64, int64]) (bool, error) {
		gs.TakerMaturities = append(gs.TakerMaturities, types.GenesisTakerMaturity{AccountID: key.K1(), MarketID: key.K2(), Maturity: key.K3()})
		return false, nil
	}))
	must(k.CollectedSpread.Walk(ctx, nil, func(key PoolKey, amount math.Int) (bool, error) {
		gs.CollectedSpreads = append(gs.CollectedSpreads, types.GenesisCollectedSpread{MarketID: key.K1(), Maturity: key.K2(), Amount: amount})
		return false, nil
	}))
	must(k.MaturityIndices.Walk(ctx, nil, func(key PoolKey, index math.LegacyDec) (bool, error) {
		gs.MaturityIndices = append(gs.MaturityIndices, types.GenesisMaturityIndex{MarketID: key.K1(), Maturity: key.K2(), Index: index})
		return false, nil
	}))
	must(k.PreMaturityIndices.Walk(ctx, nil, func(key PoolKey, s types.IndexSnapshot) (bool, error) {
		gs.PreMaturityIndices = append(gs.PreMaturityIndices, types.GenesisPreMaturityIndex{MarketID: key.K1(), Maturity: key.K2(), Snapshot: s})
		return false, nil
	}))
	must(k.Settlements.Walk(ctx, nil, func(key AccountPoolKey, cashflow math.Int) (bool, error) {
		gs.Settlements = append(gs.Settlements, types.GenesisSettlement{MarketID: key.K1(), Maturity: key.K2(), AccountID: key.K3(), Cashflow: cashflow})
		return false, nil
	}))
	return gs
}

package types

import (
	"fmt"
)

// DefaultGenesisState returns the default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{NextAccountID: 1}
}

type marketMaturity struct {
	market   uint64
	maturity int64
}

type accountMaturity struct {
	account uint64
	pool    marketMaturity
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	accounts := make(map[uint64]struct{}, len(gs.Accounts))
	for i, a := range gs.Accounts {
		if a.ID == 0 || a.ID >= gs.NextAccountID {
			return fmt.Errorf("account %d at index %d must be in [1, %d)", a.ID, i, gs.NextAccountID)
		}
		if a.Owner == "" {
			return fmt.Errorf("account %d owner cannot be empty", a.ID)
		}
		if _, ok := accounts[a.ID]; ok {
			return fmt.Errorf("duplicate account %d", a.ID)
		}
		accounts[a.ID] = struct{}{}
	}

	oracles := make(map[string]struct{}, len(gs.RateOracles))
	for _, o := range gs.RateOracles {
		if err := o.Validate(); err != nil {
			return err
		}
		if _, ok := oracles[o.ID]; ok {
			return fmt.Errorf("duplicate rate oracle %s", o.ID)
		}
		oracles[o.ID] = struct{}{}
	}

	markets := make(map[uint64]struct{}, len(gs.Markets))
	for _, m := range gs.Markets {
		if err := m.Validate(); err != nil {
			return err
		}
		if _, ok := markets[m.ID]; ok {
			return fmt.Errorf("duplicate market %d", m.ID)
		}
		if m.HasOracle() {
			if _, ok := oracles[m.OracleID]; !ok {
				return fmt.Errorf("market %d references unknown rate oracle %s", m.ID, m.OracleID)
			}
		}
		markets[m.ID] = struct{}{}
	}

	vamms := make(map[marketMaturity]struct{}, len(gs.Vamms))
	for _, v := range gs.Vamms {
		if err := v.Validate(); err != nil {
			return err
		}
		key := marketMaturity{v.Immutable.MarketID, v.Immutable.Maturity}
		if _, ok := markets[key.market]; !ok {
			return fmt.Errorf("vamm %d/%d references unknown market", key.market, key.maturity)
		}
		if _, ok := vamms[key]; ok {
			return fmt.Errorf("duplicate vamm %d/%d", key.market, key.maturity)
		}
		vamms[key] = struct{}{}
	}

	requireVamm := func(what string, market uint64, maturity int64) error {
		if _, ok := vamms[marketMaturity{market, maturity}]; !ok {
			return fmt.Errorf("%s references unknown vamm %d/%d", what, market, maturity)
		}
		return nil
	}
	requireAccount := func(what string, id uint64) error {
		if _, ok := accounts[id]; !ok {
			return fmt.Errorf("%s references unknown account %d", what, id)
		}
		return nil
	}

	for _, t := range gs.Ticks {
		if err := requireVamm("tick", t.MarketID, t.Maturity); err != nil {
			return err
		}
		if t.Index < MinTick || t.Index > MaxTick {
			return ErrInvalidTick.Wrapf("tick %d out of range", t.Index)
		}
		if t.Tick.LiquidityGross.IsNil() || t.Tick.LiquidityNet.IsNil() || !t.Tick.LiquidityGross.IsPositive() {
			return fmt.Errorf("tick %d must carry positive gross liquidity", t.Index)
		}
	}
	for _, o := range gs.Observations {
		if err := requireVamm("observation", o.MarketID, o.Maturity); err != nil {
			return err
		}
	}
	for _, p := range gs.MakerPositions {
		if err := requireVamm("maker position", p.MarketID, p.Maturity); err != nil {
			return err
		}
		if err := requireAccount("maker position", p.Position.AccountID); err != nil {
			return err
		}
		if p.Position.TickLower >= p.Position.TickUpper {
			return ErrInvalidTick.Wrapf("maker range [%d, %d] is empty", p.Position.TickLower, p.Position.TickUpper)
		}
		if p.Position.Liquidity.IsNil() || !p.Position.Liquidity.IsPositive() {
			return fmt.Errorf("maker position liquidity must be positive")
		}
	}
	for _, p := range gs.AccountPositions {
		if err := requireVamm("account position", p.MarketID, p.Maturity); err != nil {
			return err
		}
		if err := requireAccount("account position", p.AccountID); err != nil {
			return err
		}
		if err := p.Position.Validate(); err != nil {
			return err
		}
	}
	for _, m := range gs.MaturityIndices {
		if err := requireVamm("maturity index", m.MarketID, m.Maturity); err != nil {
			return err
		}
		if m.Index.IsNil() || !m.Index.IsPositive() {
			return fmt.Errorf("maturity index of %d/%d must be positive", m.MarketID, m.Maturity)
		}
	}
	for _, m := range gs.PreMaturityIndices {
		if err := requireVamm("pre-maturity index", m.MarketID, m.Maturity); err != nil {
			return err
		}
		if m.Snapshot.Index.IsNil() || !m.Snapshot.Index.IsPositive() {
			return fmt.Errorf("pre-maturity index of %d/%d must be positive", m.MarketID, m.Maturity)
		}
	}
	for _, s := range gs.Settlements {
		if err := requireVamm("settlement", s.MarketID, s.Maturity); err != nil {
			return err
		}
		if err := requireAccount("settlement", s.AccountID); err != nil {
			return err
		}
		if s.Cashflow.IsNil() {
			return fmt.Errorf("settlement cashflow must be set")
		}
	}
	takers := make(map[accountMaturity]struct{}, len(gs.TakerMaturities))
	for _, t := range gs.TakerMaturities {
		if err := requireVamm("taker maturity", t.MarketID, t.Maturity); err != nil {
			return err
		}
		if err := requireAccount("taker maturity", t.AccountID); err != nil {
			return err
		}
		key := accountMaturity{t.AccountID, marketMaturity{t.MarketID, t.Maturity}}
		if _, ok := takers[key]; ok {
			return fmt.Errorf("duplicate taker maturity %d/%d for account %d", t.MarketID, t.Maturity, t.AccountID)
		}
		takers[key] = struct{}{}
	}
	spreads := make(map[marketMaturity]struct{}, len(gs.CollectedSpreads))
	for _, c := range gs.CollectedSpreads {
		if err := requireVamm("collected spread", c.MarketID, c.Maturity); err != nil {
			return err
		}
		if c.Amount.IsNil() || c.Amount.IsNegative() {
			return fmt.Errorf("collected spread of %d/%d must be non-negative", c.MarketID, c.Maturity)
		}
		key := marketMaturity{c.MarketID, c.Maturity}
		if _, ok := spreads[key]; ok {
			return fmt.Errorf("duplicate collected spread %d/%d", c.MarketID, c.Maturity)
		}
		spreads[key] = struct{}{}
	}
	return nil
}

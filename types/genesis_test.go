package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/types"
	"github.com/provlabs/datedirs/utils"
)

func validGenesis(owner string) types.GenesisState {
	vamm := validVamm()
	return types.GenesisState{
		NextAccountID: 3,
		Accounts:      []types.Account{{ID: 1, Owner: owner}, {ID: 2, Owner: owner}},
		RateOracles: []types.RateOracle{{
			ID:        "aave",
			Model:     types.RateModelLinear,
			Apy:       sdkmath.LegacyZeroDec(),
			LastIndex: sdkmath.LegacyOneDec(),
		}},
		Markets: []types.Market{{
			ID:         1,
			QuoteDenom: "usdc",
			Type:       types.RateModelLinear,
			OracleID:   "aave",
			Config:     types.DefaultMarketConfiguration(),
		}},
		Vamms: []types.Vamm{vamm},
		Ticks: []types.GenesisTick{{
			MarketID: 1,
			Maturity: vamm.Immutable.Maturity,
			Index:    -600,
			Tick:     types.Tick{LiquidityGross: sdkmath.NewInt(10), LiquidityNet: sdkmath.NewInt(10), Initialized: true},
		}},
		MakerPositions: []types.GenesisMakerPosition{{
			MarketID: 1,
			Maturity: vamm.Immutable.Maturity,
			Position: types.MakerPosition{AccountID: 1, TickLower: -600, TickUpper: 600, Liquidity: sdkmath.NewInt(10)},
		}},
		AccountPositions: []types.GenesisAccountPosition{{
			MarketID:  1,
			Maturity:  vamm.Immutable.Maturity,
			AccountID: 2,
			Position:  types.NewAccountPosition(sdkmath.LegacyOneDec(), 100),
		}},
		Settlements: []types.GenesisSettlement{{
			MarketID:  1,
			Maturity:  vamm.Immutable.Maturity,
			AccountID: 2,
			Cashflow:  sdkmath.NewInt(-3),
		}},
	}
}

func TestGenesisState_Validate(t *testing.T) {
	owner := utils.TestAddress().Bech32

	tests := []struct {
		name      string
		mutate    func(gs *types.GenesisState)
		expErrStr string
	}{
		{name: "default", mutate: func(gs *types.GenesisState) { *gs = *types.DefaultGenesisState() }},
		{name: "valid"},
		{name: "account beyond sequence", mutate: func(gs *types.GenesisState) { gs.NextAccountID = 2 }, expErrStr: "account 2 at index 1 must be in [1, 2)"},
		{name: "duplicate account", mutate: func(gs *types.GenesisState) { gs.Accounts[1].ID = 1 }, expErrStr: "duplicate account 1"},
		{name: "account without owner", mutate: func(gs *types.GenesisState) { gs.Accounts[0].Owner = "" }, expErrStr: "owner cannot be empty"},
		{name: "duplicate oracle", mutate: func(gs *types.GenesisState) { gs.RateOracles = append(gs.RateOracles, gs.RateOracles[0]) }, expErrStr: "duplicate rate oracle aave"},
		{name: "market with unknown oracle", mutate: func(gs *types.GenesisState) { gs.Markets[0].OracleID = "compound" }, expErrStr: "unknown rate oracle compound"},
		{name: "vamm with unknown market", mutate: func(gs *types.GenesisState) { gs.Markets = nil }, expErrStr: "references unknown market"},
		{name: "duplicate vamm", mutate: func(gs *types.GenesisState) { gs.Vamms = append(gs.Vamms, gs.Vamms[0]) }, expErrStr: "duplicate vamm"},
		{name: "tick of unknown vamm", mutate: func(gs *types.GenesisState) { gs.Ticks[0].Maturity++ }, expErrStr: "tick references unknown vamm"},
		{name: "tick out of range", mutate: func(gs *types.GenesisState) { gs.Ticks[0].Index = types.MinTick - 1 }, expErrStr: "out of range"},
		{name: "empty tick", mutate: func(gs *types.GenesisState) { gs.Ticks[0].Tick.LiquidityGross = sdkmath.ZeroInt() }, expErrStr: "positive gross liquidity"},
		{name: "maker of unknown account", mutate: func(gs *types.GenesisState) { gs.MakerPositions[0].Position.AccountID = 9 }, expErrStr: "maker position references unknown account 9"},
		{name: "empty maker range", mutate: func(gs *types.GenesisState) { gs.MakerPositions[0].Position.TickUpper = -600 }, expErrStr: "is empty"},
		{name: "maker without liquidity", mutate: func(gs *types.GenesisState) { gs.MakerPositions[0].Position.Liquidity = sdkmath.ZeroInt() }, expErrStr: "liquidity must be positive"},
		{name: "position without balances", mutate: func(gs *types.GenesisState) { gs.AccountPositions[0].Position.FilledBase = sdkmath.Int{} }, expErrStr: "balances must be set"},
		{
			name: "non-positive maturity index",
			mutate: func(gs *types.GenesisState) {
				gs.MaturityIndices = []types.GenesisMaturityIndex{{MarketID: 1, Maturity: gs.Vamms[0].Immutable.Maturity, Index: sdkmath.LegacyZeroDec()}}
			},
			expErrStr: "maturity index of 1/",
		},
		{name: "settlement without cashflow", mutate: func(gs *types.GenesisState) { gs.Settlements[0].Cashflow = sdkmath.Int{} }, expErrStr: "cashflow must be set"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := validGenesis(owner)
			if tc.mutate != nil {
				tc.mutate(&gs)
			}
			err := gs.Validate()
			if tc.expErrStr == "" {
				require.NoError(t, err, "Validate")
				return
			}
			require.ErrorContains(t, err, tc.expErrStr, "Validate")
		})
	}
}

package simulation_test

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/provlabs/datedirs/simulation"
	"github.com/provlabs/datedirs/types"
)

func newSimState(r *rand.Rand, genTime time.Time) module.SimulationState {
	interfaceRegistry := codectypes.NewInterfaceRegistry()
	return module.SimulationState{
		AppParams:    make(simtypes.AppParams),
		Cdc:          codec.NewProtoCodec(interfaceRegistry),
		Rand:         r,
		NumBonded:    3,
		Accounts:     simtypes.RandomAccounts(r, 3),
		InitialStake: sdkmath.NewInt(1000),
		GenState:     make(map[string]json.RawMessage),
		GenTimestamp: genTime,
	}
}

func TestRandomizedGenState(t *testing.T) {
	genTime := time.Unix(1_700_000_000, 0).UTC()

	for seed := int64(1); seed <= 5; seed++ {
		simState := newSimState(rand.New(rand.NewSource(seed)), genTime)
		simulation.RandomizedGenState(&simState)

		var genesis types.GenesisState
		simState.Cdc.MustUnmarshalJSON(simState.GenState[types.ModuleName], &genesis)
		require.NoError(t, genesis.Validate(), "seed %d: genesis Validate", seed)
		require.Equal(t, uint64(1), genesis.NextAccountID, "seed %d: next account id", seed)
		require.NotEmpty(t, genesis.Markets, "seed %d: markets", seed)
		require.LessOrEqual(t, len(genesis.Markets), simulation.MaxNumMarkets, "seed %d: market count", seed)
		require.Len(t, genesis.RateOracles, len(genesis.Markets), "seed %d: one oracle per market", seed)

		for i, m := range genesis.Markets {
			oracle := genesis.RateOracles[i]
			require.Equal(t, oracle.ID, m.OracleID, "seed %d: market %d oracle", seed, m.ID)
			require.Equal(t, oracle.Model, m.Type, "seed %d: market %d rate model", seed, m.ID)
			require.True(t, oracle.Initialized(), "seed %d: oracle %s initialized", seed, oracle.ID)
			require.Equal(t, genTime.Unix(), oracle.LastUpdated, "seed %d: oracle %s last updated", seed, oracle.ID)
		}
	}
}

func TestRandomizedGenState_Panics(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	tests := []struct {
		name     string
		simState module.SimulationState
	}{
		{
			name:     "nil simState",
			simState: module.SimulationState{},
		},
		{
			name: "missing GenState map",
			simState: module.SimulationState{
				AppParams: make(simtypes.AppParams),
				Rand:      r,
				Accounts:  simtypes.RandomAccounts(r, 1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, func() {
				simulation.RandomizedGenState(&tt.simState)
			})
		})
	}
}

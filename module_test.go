package datedirs_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"
	"github.com/stretchr/testify/require"

	"github.com/cosmos/cosmos-sdk/client"

	"github.com/provlabs/datedirs"
	"github.com/provlabs/datedirs/types"
	"github.com/provlabs/datedirs/utils/mocks"
)

func TestAppModuleBasic_Genesis(t *testing.T) {
	cfg := mocks.MakeTestEncodingConfig("cosmos")
	basic := datedirs.NewAppModuleBasic()

	bz := basic.DefaultGenesis(cfg.Codec)
	require.NoError(t, basic.ValidateGenesis(cfg.Codec, nil, bz), "default genesis")

	err := basic.ValidateGenesis(cfg.Codec, nil, []byte(`{"next_account_id":"x"}`))
	require.ErrorContains(t, err, "failed to unmarshal datedirs genesis state", "malformed genesis")

	err = basic.ValidateGenesis(cfg.Codec, nil, []byte(`{"next_account_id":"1","accounts":[{"id":"1","owner":"cosmos1"}]}`))
	require.ErrorContains(t, err, "account 1 at index 0 must be in [1, 1)", "account id beyond the sequence")
}

func TestAppModule_GenesisRoundTrip(t *testing.T) {
	ctx, k, _, _ := mocks.NewKeeper(t)
	cfg := mocks.MakeTestEncodingConfig("cosmos")
	am := datedirs.NewAppModule(k, nil)

	genesis := types.DefaultGenesisState()
	genesis.RateOracles = []types.RateOracle{{
		ID:          "aave",
		Model:       types.RateModelLinear,
		Apy:         sdkmath.LegacyNewDecWithPrec(5, 2),
		LastIndex:   sdkmath.LegacyOneDec(),
		LastUpdated: ctx.BlockTime().Unix(),
	}}
	genesis.Markets = []types.Market{{
		ID:         1,
		QuoteDenom: "usdc",
		Type:       types.RateModelLinear,
		OracleID:   "aave",
		Config:     types.DefaultMarketConfiguration(),
	}}

	bz := cfg.Codec.MustMarshalJSON(genesis)
	require.NotPanics(t, func() { am.InitGenesis(ctx, cfg.Codec, bz) }, "InitGenesis")

	var exported types.GenesisState
	cfg.Codec.MustUnmarshalJSON(am.ExportGenesis(ctx, cfg.Codec), &exported)
	require.Len(t, exported.Markets, 1, "markets")
	require.Equal(t, "aave", exported.Markets[0].OracleID, "market oracle")
	require.Len(t, exported.RateOracles, 1, "rate oracles")
	require.Equal(t, "0.050000000000000000", exported.RateOracles[0].Apy.String(), "oracle apy")
}

func TestAppModule_InitGenesisRejectsInvalidState(t *testing.T) {
	ctx, k, _, _ := mocks.NewKeeper(t)
	cfg := mocks.MakeTestEncodingConfig("cosmos")
	am := datedirs.NewAppModule(k, nil)

	genesis := types.DefaultGenesisState()
	genesis.Markets = []types.Market{{ID: 1, QuoteDenom: "usdc", Type: types.RateModelLinear, OracleID: "missing", Config: types.DefaultMarketConfiguration()}}
	bz := cfg.Codec.MustMarshalJSON(genesis)
	require.Panics(t, func() { am.InitGenesis(ctx, cfg.Codec, bz) }, "InitGenesis with an unknown oracle")
}

func TestAppModuleBasic_RegisterGRPCGatewayRoutes(t *testing.T) {
	mux := runtime.NewServeMux()
	require.NotPanics(t, func() {
		datedirs.NewAppModuleBasic().RegisterGRPCGatewayRoutes(client.Context{}, mux)
	}, "RegisterGRPCGatewayRoutes")
}

package datedirs

import (
	"context"
	"encoding/json"
	"fmt"

	autocliv1 "cosmossdk.io/api/cosmos/autocli/v1"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/appmodule"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"

	"github.com/provlabs/datedirs/keeper"
	"github.com/provlabs/datedirs/simulation"
	"github.com/provlabs/datedirs/types"
)

// ConsensusVersion defines the current x/datedirs module consensus version.
const ConsensusVersion = 1

var (
	_ module.AppModuleBasic      = AppModule{}
	_ appmodule.AppModule        = AppModule{}
	_ appmodule.HasBeginBlocker  = AppModule{}
	_ module.HasConsensusVersion = AppModule{}
	_ module.HasGenesis          = AppModule{}
	_ module.HasGenesisBasics    = AppModuleBasic{}
	_ module.HasServices         = AppModule{}
	_ module.HasInvariants       = AppModule{}
)

// AppModuleBasic implements the basic methods for the datedirs module.
type AppModuleBasic struct{}

// NewAppModuleBasic creates a new AppModuleBasic.
func NewAppModuleBasic() AppModuleBasic {
	return AppModuleBasic{}
}

// Name returns the datedirs module name.
func (AppModuleBasic) Name() string { return types.ModuleName }

// RegisterLegacyAminoCodec is a no-op; datedirs messages are protobuf only.
func (AppModuleBasic) RegisterLegacyAminoCodec(*codec.LegacyAmino) {}

// RegisterInterfaces registers datedirs interfaces to the interface registry.
func (AppModuleBasic) RegisterInterfaces(reg codectypes.InterfaceRegistry) {
	types.RegisterInterfaces(reg)
}

// RegisterGRPCGatewayRoutes sets up gRPC gateway routes.
func (AppModuleBasic) RegisterGRPCGatewayRoutes(clientCtx client.Context, mux *runtime.ServeMux) {
	if err := types.RegisterQueryHandlerClient(context.Background(), mux, types.NewQueryClient(clientCtx)); err != nil {
		panic(err)
	}
}

// DefaultGenesis returns default genesis state as raw bytes.
func (AppModuleBasic) DefaultGenesis(cdc codec.JSONCodec) json.RawMessage {
	return cdc.MustMarshalJSON(types.DefaultGenesisState())
}

// ValidateGenesis validates the datedirs genesis state.
func (AppModuleBasic) ValidateGenesis(cdc codec.JSONCodec, _ client.TxEncodingConfig, bz json.RawMessage) error {
	var genesis types.GenesisState
	if err := cdc.UnmarshalJSON(bz, &genesis); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	return genesis.Validate()
}

// AppModule implements the core datedirs module functionality.
type AppModule struct {
	AppModuleBasic
	keeper       *keeper.Keeper
	addressCodec address.Codec
}

// NewAppModule creates a new AppModule instance.
func NewAppModule(keeper *keeper.Keeper, addressCodec address.Codec) AppModule {
	return AppModule{
		AppModuleBasic: NewAppModuleBasic(),
		keeper:         keeper,
		addressCodec:   addressCodec,
	}
}

// IsOnePerModuleType asserts one module per type.
func (AppModule) IsOnePerModuleType() {}

// IsAppModule asserts this is an app module.
func (AppModule) IsAppModule() {}

// ConsensusVersion returns the module consensus version.
func (AppModule) ConsensusVersion() uint64 { return ConsensusVersion }

// InitGenesis initializes the module's state from genesis.
func (m AppModule) InitGenesis(ctx sdk.Context, cdc codec.JSONCodec, bz json.RawMessage) {
	var genesis types.GenesisState
	cdc.MustUnmarshalJSON(bz, &genesis)
	if err := InitGenesis(ctx, m.keeper, &genesis); err != nil {
		panic(err)
	}
}

// ExportGenesis exports the module's state to genesis.
func (m AppModule) ExportGenesis(ctx sdk.Context, cdc codec.JSONCodec) json.RawMessage {
	return cdc.MustMarshalJSON(ExportGenesis(ctx, m.keeper))
}

// RegisterServices registers gRPC query and message services.
func (m AppModule) RegisterServices(cfg module.Configurator) {
	types.RegisterMsgServer(cfg.MsgServer(), keeper.NewMsgServer(m.keeper))
	types.RegisterQueryServer(cfg.QueryServer(), keeper.NewQueryServer(m.keeper))
}

// BeginBlock caches the rate index of every pool that matured.
func (m AppModule) BeginBlock(ctx context.Context) error {
	return m.keeper.BeginBlocker(ctx)
}

// RegisterInvariants registers the module's invariants.
func (m AppModule) RegisterInvariants(ir sdk.InvariantRegistry) {
	keeper.RegisterInvariants(ir, m.keeper)
}

// GenerateGenesisState creates a randomized genesis state for simulations.
func (AppModule) GenerateGenesisState(simState *module.SimulationState) {
	simulation.RandomizedGenState(simState)
}

// RegisterStoreDecoder decodes module store entries for simulation logs.
func (m AppModule) RegisterStoreDecoder(sdr simtypes.StoreDecoderRegistry) {
	sdr[types.StoreKey] = simtypes.NewStoreDecoderFuncFromCollectionsSchema(m.keeper.Schema())
}

// WeightedOperations returns the module's simulation operations.
func (m AppModule) WeightedOperations(simState module.SimulationState) []simtypes.WeightedOperation {
	return simulation.WeightedOperations(simState, m.keeper)
}

// AutoCLIOptions defines CLI commands for tx and query.
func (AppModule) AutoCLIOptions() *autocliv1.ModuleOptions {
	pool := []*autocliv1.PositionalArgDescriptor{
		{ProtoField: "market_id"},
		{ProtoField: "maturity"},
	}
	accountInPool := []*autocliv1.PositionalArgDescriptor{
		{ProtoField: "market_id"},
		{ProtoField: "maturity"},
		{ProtoField: "account_id"},
	}

	return &autocliv1.ModuleOptions{
		Tx: &autocliv1.ServiceCommandDescriptor{
			Service: types.Msg_serviceDesc.ServiceName,
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "CreateAccount",
					Use:       "create-account [owner]",
					Short:     "Open a margin account",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "owner"},
					},
				},
				{
					RpcMethod: "IncreaseObservationCardinalityNext",
					Use:       "increase-observation-cardinality [sender] [market_id] [maturity] [cardinality_next]",
					Short:     "Grow the observation buffer of a pool",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "sender"},
						{ProtoField: "market_id"},
						{ProtoField: "maturity"},
						{ProtoField: "cardinality_next"},
					},
				},
				{
					RpcMethod: "ExecuteMakerOrder",
					Use:       "maker-order [owner] [account_id] [market_id] [maturity] [tick_lower] [tick_upper] [base_amount]",
					Short:     "Provide or remove liquidity on a tick range",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "owner"},
						{ProtoField: "account_id"},
						{ProtoField: "market_id"},
						{ProtoField: "maturity"},
						{ProtoField: "tick_lower"},
						{ProtoField: "tick_upper"},
						{ProtoField: "base_amount"},
					},
				},
				{
					RpcMethod: "ExecuteTakerOrder",
					Use:       "taker-order [owner] [account_id] [market_id] [maturity] [base_amount]",
					Short:     "Swap against a pool; a positive base pays fixed",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "owner"},
						{ProtoField: "account_id"},
						{ProtoField: "market_id"},
						{ProtoField: "maturity"},
						{ProtoField: "base_amount"},
					},
				},
				{
					RpcMethod: "Settle",
					Use:       "settle [owner] [account_id] [market_id] [maturity]",
					Short:     "Settle an account in a matured pool",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "owner"},
						{ProtoField: "account_id"},
						{ProtoField: "market_id"},
						{ProtoField: "maturity"},
					},
				},
				{RpcMethod: "CreateRateOracle", Skip: true},
				{RpcMethod: "RecordRateIndex", Skip: true},
				{RpcMethod: "CreateMarket", Skip: true},
				{RpcMethod: "SetMarketConfiguration", Skip: true},
				{RpcMethod: "SetRateOracleConfiguration", Skip: true},
				{RpcMethod: "CreateVamm", Skip: true},
				{RpcMethod: "SetMarketMaturityConfiguration", Skip: true},
			},
		},
		Query: &autocliv1.ServiceCommandDescriptor{
			Service: types.Query_serviceDesc.ServiceName,
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "Markets",
					Use:       "markets",
					Short:     "Query all markets",
				},
				{
					RpcMethod: "Market",
					Use:       "market [market_id]",
					Short:     "Query a market",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "market_id"},
					},
				},
				{
					RpcMethod:      "Vamm",
					Use:            "vamm [market_id] [maturity]",
					Short:          "Query the pool of a market maturity",
					PositionalArgs: pool,
				},
				{
					RpcMethod:      "VammTick",
					Use:            "vamm-tick [market_id] [maturity]",
					Short:          "Query the current tick and price of a pool",
					PositionalArgs: pool,
				},
				{
					RpcMethod: "RateIndexCurrent",
					Use:       "rate-index [market_id]",
					Short:     "Query the rate index of a market at the block time",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "market_id"},
					},
				},
				{
					RpcMethod:      "RateIndexMaturity",
					Use:            "rate-index-maturity [market_id] [maturity]",
					Short:          "Query the rate index of a market at a maturity",
					PositionalArgs: pool,
				},
				{
					RpcMethod: "AdjustedTwap",
					Use:       "adjusted-twap [market_id] [maturity] [order_size]",
					Short:     "Query the pool TWAP adjusted for spread and price impact",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "market_id"},
						{ProtoField: "maturity"},
						{ProtoField: "order_size"},
					},
				},
				{
					RpcMethod:      "AccountFilledBalances",
					Use:            "filled-balances [market_id] [maturity] [account_id]",
					Short:          "Query the filled balances of an account in a pool",
					PositionalArgs: accountInPool,
				},
				{
					RpcMethod:      "AccountUnfilledBaseAndQuote",
					Use:            "unfilled-balances [market_id] [maturity] [account_id]",
					Short:          "Query the unfilled maker exposure of an account in a pool",
					PositionalArgs: accountInPool,
				},
				{
					RpcMethod:      "Settlement",
					Use:            "settlement [market_id] [maturity] [account_id]",
					Short:          "Query the settlement cashflow of an account",
					PositionalArgs: accountInPool,
				},
			},
		},
	}
}

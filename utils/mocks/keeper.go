package mocks

import (
	"context"
	"fmt"
	"testing"
	"time"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectestutil "github.com/cosmos/cosmos-sdk/codec/testutil"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/std"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	"github.com/cosmos/cosmos-sdk/x/auth/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/provlabs/datedirs/keeper"
	"github.com/provlabs/datedirs/types"
)

// NewKeeper returns an instance of the Keeper with all dependencies mocked.
// The bank mock knows the "usdc" denom with 6 decimals.
func NewKeeper(t testing.TB) (sdk.Context, *keeper.Keeper, *BankKeeper, *FeatureFlagKeeper) {
	key := storetypes.NewKVStoreKey(types.ModuleName)
	tkey := storetypes.NewTransientStoreKey(fmt.Sprintf("transient_%s", types.ModuleName))
	wrapper := testutil.DefaultContextWithDB(t, key, tkey)

	bank := NewBankKeeper()
	bank.SetDenomMetaData(NewMetadata("usdc", 6))
	flags := NewFeatureFlagKeeper()

	cfg := MakeTestEncodingConfig(sdk.GetConfig().GetBech32AccountAddrPrefix())
	types.RegisterInterfaces(cfg.InterfaceRegistry)

	k := keeper.NewKeeper(
		cfg.Codec,
		runtime.NewKVStoreService(key),
		addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		authtypes.NewModuleAddress(govtypes.ModuleName),
		bank,
		flags,
	)

	ctx := wrapper.Ctx.WithBlockTime(time.Unix(1_700_000_000, 0).UTC())
	return ctx, k, bank, flags
}

// MakeTestEncodingConfig is a modified testutil.MakeTestEncodingConfig that
// sets a custom Bech32 prefix in the interface registry.
func MakeTestEncodingConfig(prefix string, modules ...module.AppModuleBasic) moduletestutil.TestEncodingConfig {
	aminoCodec := codec.NewLegacyAmino()
	interfaceRegistry := codectestutil.CodecOptions{
		AccAddressPrefix: prefix,
	}.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(interfaceRegistry)

	encCfg := moduletestutil.TestEncodingConfig{
		InterfaceRegistry: interfaceRegistry,
		Codec:             cdc,
		TxConfig:          tx.NewTxConfig(cdc, tx.DefaultSignModes),
		Amino:             aminoCodec,
	}

	mb := module.NewBasicManager(modules...)

	std.RegisterLegacyAminoCodec(encCfg.Amino)
	std.RegisterInterfaces(encCfg.InterfaceRegistry)
	mb.RegisterLegacyAminoCodec(encCfg.Amino)
	mb.RegisterInterfaces(encCfg.InterfaceRegistry)

	return encCfg
}

// Authority returns the bech32 address of the keeper authority used by NewKeeper.
func Authority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

// NewMetadata returns bank metadata for denom whose display unit has the given exponent.
func NewMetadata(denom string, decimals uint32) banktypes.Metadata {
	display := "display" + denom
	return banktypes.Metadata{
		Base:    denom,
		Display: display,
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: denom, Exponent: 0},
			{Denom: display, Exponent: decimals},
		},
	}
}

// BankKeeper is an in-memory denom metadata store.
type BankKeeper struct {
	metadata map[string]banktypes.Metadata
}

func NewBankKeeper() *BankKeeper {
	return &BankKeeper{metadata: make(map[string]banktypes.Metadata)}
}

func (b *BankKeeper) SetDenomMetaData(md banktypes.Metadata) {
	b.metadata[md.Base] = md
}

func (b *BankKeeper) GetDenomMetaData(_ context.Context, denom string) (banktypes.Metadata, bool) {
	md, ok := b.metadata[denom]
	return md, ok
}

// FeatureFlagKeeper enables every market maturity except the disabled ones.
type FeatureFlagKeeper struct {
	disabled map[[2]int64]bool
}

func NewFeatureFlagKeeper() *FeatureFlagKeeper {
	return &FeatureFlagKeeper{disabled: make(map[[2]int64]bool)}
}

func (f *FeatureFlagKeeper) SetEnabled(marketID uint64, maturity int64, enabled bool) {
	f.disabled[[2]int64{int64(marketID), maturity}] = !enabled
}

func (f *FeatureFlagKeeper) IsMarketEnabled(_ context.Context, marketID uint64, maturity int64) bool {
	return !f.disabled[[2]int64{int64(marketID), maturity}]
}

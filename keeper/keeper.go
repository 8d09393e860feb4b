package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/container"
	"github.com/provlabs/datedirs/types"
)

// PoolKey identifies a market maturity: (market, maturity).
type PoolKey = collections.Pair[uint64, int64]

// AccountPoolKey identifies an account inside a market maturity: (market, maturity, account).
type AccountPoolKey = collections.Triple[uint64, int64, uint64]

// MakerKey identifies a maker range: (market, maturity, account, range).
type MakerKey = collections.Quad[uint64, int64, uint64, uint64]

var (
	poolKeyCodec          = collections.PairKeyCodec(collections.Uint64Key, collections.Int64Key)
	accountPoolKeyCodec   = collections.TripleKeyCodec(collections.Uint64Key, collections.Int64Key, collections.Uint64Key)
	tickKeyCodec          = collections.TripleKeyCodec(collections.Uint64Key, collections.Int64Key, collections.Int32Key)
	makerKeyCodec         = collections.QuadKeyCodec(collections.Uint64Key, collections.Int64Key, collections.Uint64Key, collections.Uint64Key)
	takerMaturityKeyCodec = collections.TripleKeyCodec(collections.Uint64Key, collections.Uint64Key, collections.Int64Key)
)

type Keeper struct {
	schema       collections.Schema
	addressCodec address.Codec
	authority    []byte

	BankKeeper   types.BankKeeper
	FeatureFlags types.FeatureFlagKeeper

	Accounts           collections.Map[uint64, types.Account]
	AccountSequence    collections.Sequence
	Markets            collections.Map[uint64, types.Market]
	RateOracles        collections.Map[string, types.RateOracle]
	Vamms              collections.Map[PoolKey, types.Vamm]
	Ticks              collections.Map[collections.Triple[uint64, int64, int32], types.Tick]
	Observations       container.ObservationBuffer
	MakerPositions     collections.Map[MakerKey, types.MakerPosition]
	AccountPositions   collections.Map[AccountPoolKey, types.AccountPosition]
	TakerMaturities    collections.KeySet[collections.Triple[uint64, uint64, int64]]
	OpenInterest       collections.Map[PoolKey, math.Int]
	MaturityIndices    collections.Map[PoolKey, math.LegacyDec]
	PreMaturityIndices collections.Map[PoolKey, types.IndexSnapshot]
	SettledAccounts    collections.KeySet[AccountPoolKey]
	Settlements        collections.Map[AccountPoolKey, math.Int]
	MaturityQueue      container.MaturityQueue
	CollectedSpread    collections.Map[PoolKey, math.Int]
}

// NewKeeper returns a Keeper. A nil featureFlags enables every market.
func NewKeeper(
	cdc codec.Codec,
	storeService store.KVStoreService,
	addressCodec address.Codec,
	authority []byte,
	bankKeeper types.BankKeeper,
	featureFlags types.FeatureFlagKeeper,
) *Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %s: %s", authority, err))
	}
	if featureFlags == nil {
		featureFlags = types.AllMarketsEnabled{}
	}

	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		addressCodec: addressCodec,
		authority:    authority,
		BankKeeper:   bankKeeper,
		FeatureFlags: featureFlags,

		Accounts:           collections.NewMap(builder, types.AccountsKeyPrefix, types.AccountsName, collections.Uint64Key, codec.CollValue[types.Account](cdc)),
		AccountSequence:    collections.NewSequence(builder, types.AccountSequenceKeyPrefix, types.AccountSequenceName),
		Markets:            collections.NewMap(builder, types.MarketsKeyPrefix, types.MarketsName, collections.Uint64Key, codec.CollValue[types.Market](cdc)),
		RateOracles:        collections.NewMap(builder, types.RateOraclesKeyPrefix, types.RateOraclesName, collections.StringKey, codec.CollValue[types.RateOracle](cdc)),
		Vamms:              collections.NewMap(builder, types.VammsKeyPrefix, types.VammsName, poolKeyCodec, codec.CollValue[types.Vamm](cdc)),
		Ticks:              collections.NewMap(builder, types.TicksKeyPrefix, types.TicksName, tickKeyCodec, codec.CollValue[types.Tick](cdc)),
		Observations:       container.NewObservationBuffer(builder, cdc),
		MakerPositions:     collections.NewMap(builder, types.MakerPositionsKeyPrefix, types.MakerPositionsName, makerKeyCodec, codec.CollValue[types.MakerPosition](cdc)),
		AccountPositions:   collections.NewMap(builder, types.AccountPositionsKeyPrefix, types.AccountPositionsName, accountPoolKeyCodec, codec.CollValue[types.AccountPosition](cdc)),
		TakerMaturities:    collections.NewKeySet(builder, types.TakerMaturitiesKeyPrefix, types.TakerMaturitiesName, takerMaturityKeyCodec),
		OpenInterest:       collections.NewMap(builder, types.OpenInterestKeyPrefix, types.OpenInterestName, poolKeyCodec, sdk.IntValue),
		MaturityIndices:    collections.NewMap(builder, types.MaturityIndicesKeyPrefix, types.MaturityIndicesName, poolKeyCodec, sdk.LegacyDecValue),
		PreMaturityIndices: collections.NewMap(builder, types.PreMaturityIndicesKeyPrefix, types.PreMaturityIndicesName, poolKeyCodec, codec.CollValue[types.IndexSnapshot](cdc)),
		SettledAccounts:    collections.NewKeySet(builder, types.SettledAccountsKeyPrefix, types.SettledAccountsName, accountPoolKeyCodec),
		Settlements:        collections.NewMap(builder, types.SettlementsKeyPrefix, types.SettlementsName, accountPoolKeyCodec, sdk.IntValue),
		MaturityQueue:      container.NewMaturityQueue(builder),
		CollectedSpread:    collections.NewMap(builder, types.CollectedSpreadKeyPrefix, types.CollectedSpreadName, poolKeyCodec, sdk.IntValue),
	}

	schema, err := builder.Build()
	if err != nil {
		panic(err)
	}

	keeper.schema = schema
	return keeper
}

// Schema returns the collections schema of the module store.
func (k Keeper) Schema() collections.Schema {
	return k.schema
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}

// ValidateAuthority returns ErrUnauthorized unless addr is the module authority.
func (k Keeper) ValidateAuthority(addr string) error {
	authority, err := k.addressCodec.BytesToString(k.authority)
	if err != nil {
		return err
	}
	if addr != authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", authority, addr)
	}
	return nil
}

// getLogger returns a logger with datedirs module context.
func (k Keeper) getLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) emitEvent(ctx sdk.Context, event sdk.Event) {
	ctx.EventManager().EmitEvent(event)
}

func poolKey(market uint64, maturity int64) PoolKey {
	return collections.Join(market, maturity)
}

func accountPoolKey(market uint64, maturity int64, account uint64) AccountPoolKey {
	return collections.Join3(market, maturity, account)
}

// cached runs fn in a cache context that is only written when fn succeeds.
func cached[T any](ctx sdk.Context, fn func(ctx sdk.Context) (T, error)) (T, error) {
	cacheCtx, write := ctx.CacheContext()
	res, err := fn(cacheCtx)
	if err != nil {
		var zero T
		return zero, err
	}
	write()
	return res, nil
}

package container_test

import (
	"testing"

	"cosmossdk.io/collections"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/container"
	"github.com/provlabs/datedirs/types"
	"github.com/provlabs/datedirs/utils/mocks"
)

const (
	market   uint64 = 1
	maturity int64  = 1_000_000
)

func newTestStore(t *testing.T) (sdk.Context, *collections.SchemaBuilder) {
	t.Helper()
	storeKey := storetypes.NewKVStoreKey(types.ModuleName)
	testCtx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test"))
	return testCtx.Ctx.WithLogger(log.NewNopLogger()), collections.NewSchemaBuilder(runtime.NewKVStoreService(storeKey))
}

func newTestObservationBuffer(t *testing.T) (sdk.Context, container.ObservationBuffer) {
	t.Helper()
	ctx, sb := newTestStore(t)
	cfg := mocks.MakeTestEncodingConfig("cosmos")
	b := container.NewObservationBuffer(sb, cfg.Codec)
	_, err := sb.Build()
	require.NoError(t, err)
	return ctx, b
}

// seedThree stores observations at 100, 200 and 300 with ticks 10, 20 and 30
// prevailing after each of them.
func seedThree(t *testing.T, ctx sdk.Context, b container.ObservationBuffer) types.VammState {
	t.Helper()
	var state types.VammState
	require.NoError(t, b.Seed(ctx, market, maturity, &state, []int64{100, 200, 300}, []int32{10, 20, 30}), "Seed")
	return state
}

func requireSlot(t *testing.T, ctx sdk.Context, b container.ObservationBuffer, slot uint32, timestamp, cumulative int64) {
	t.Helper()
	obs, err := b.Get(ctx, collections.Join3(market, maturity, slot))
	require.NoError(t, err, "slot %d", slot)
	require.True(t, obs.Initialized, "slot %d initialized", slot)
	require.Equal(t, timestamp, obs.Timestamp, "slot %d timestamp", slot)
	require.Equal(t, cumulative, obs.TickCumulative, "slot %d tick cumulative", slot)
}

func TestObservationBuffer_Seed(t *testing.T) {
	ctx, b := newTestObservationBuffer(t)
	state := seedThree(t, ctx, b)

	require.Equal(t, uint32(2), state.ObservationIndex, "index")
	require.Equal(t, uint32(3), state.ObservationCardinality, "cardinality")
	require.Equal(t, uint32(3), state.ObservationCardinalityNext, "cardinality next")
	requireSlot(t, ctx, b, 0, 100, 0)
	requireSlot(t, ctx, b, 1, 200, 1000)
	requireSlot(t, ctx, b, 2, 300, 3000)

	var fresh types.VammState
	require.ErrorContains(t, b.Seed(ctx, market, maturity+1, &fresh, nil, nil), "no observations", "empty seed")
	require.ErrorContains(t, b.Seed(ctx, market, maturity+1, &fresh, []int64{1, 2}, []int32{1}), "observed ticks", "mismatched seed")
	require.ErrorContains(t, b.Seed(ctx, market, maturity+1, &fresh, []int64{2, 2}, []int32{1, 1}), "strictly increasing", "unordered seed")
}

func TestObservationBuffer_ObserveSingle(t *testing.T) {
	ctx, b := newTestObservationBuffer(t)
	state := seedThree(t, ctx, b)

	tests := []struct {
		name       string
		secondsAgo int64
		expected   int64
		expErr     error
	}{
		{name: "now extrapolates the current tick", secondsAgo: 0, expected: 6000},
		{name: "after the newest observation", secondsAgo: 50, expected: 4500},
		{name: "exactly at an observation", secondsAgo: 200, expected: 1000},
		{name: "between observations", secondsAgo: 150, expected: 2000},
		{name: "the oldest observation", secondsAgo: 300, expected: 0},
		{name: "before the oldest observation", secondsAgo: 301, expErr: types.ErrObservationTooOld},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := b.ObserveSingle(ctx, market, maturity, state, 400, tc.secondsAgo, 30)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr, "ObserveSingle")
				return
			}
			require.NoError(t, err, "ObserveSingle")
			require.Equal(t, tc.expected, actual, "tick cumulative")
		})
	}

	_, err := b.ObserveSingle(ctx, market, maturity, state, 400, -1, 30)
	require.ErrorContains(t, err, "cannot be negative", "negative seconds ago")
}

func TestObservationBuffer_Write(t *testing.T) {
	t.Run("single slot is overwritten", func(t *testing.T) {
		ctx, b := newTestObservationBuffer(t)
		var state types.VammState
		require.NoError(t, b.Initialize(ctx, market, maturity, &state, 100), "Initialize")
		require.NoError(t, b.Write(ctx, market, maturity, &state, 200, 5, 0), "Write")
		require.Equal(t, uint32(0), state.ObservationIndex, "index")
		require.Equal(t, uint32(1), state.ObservationCardinality, "cardinality")
		requireSlot(t, ctx, b, 0, 200, 500)
	})

	t.Run("same timestamp is ignored", func(t *testing.T) {
		ctx, b := newTestObservationBuffer(t)
		state := seedThree(t, ctx, b)
		require.NoError(t, b.Write(ctx, market, maturity, &state, 300, 99, 0), "Write")
		require.Equal(t, uint32(2), state.ObservationIndex, "index")
		requireSlot(t, ctx, b, 2, 300, 3000)
	})

	t.Run("minimum spacing is respected", func(t *testing.T) {
		ctx, b := newTestObservationBuffer(t)
		state := seedThree(t, ctx, b)
		require.NoError(t, b.Write(ctx, market, maturity, &state, 350, 30, 100), "Write too soon")
		require.Equal(t, uint32(2), state.ObservationIndex, "index after skipped write")
		require.NoError(t, b.Write(ctx, market, maturity, &state, 400, 30, 100), "Write after spacing")
		require.Equal(t, uint32(0), state.ObservationIndex, "index after write")
	})

	t.Run("full buffer wraps around", func(t *testing.T) {
		ctx, b := newTestObservationBuffer(t)
		state := seedThree(t, ctx, b)
		require.NoError(t, b.Write(ctx, market, maturity, &state, 400, 30, 0), "Write")
		require.Equal(t, uint32(0), state.ObservationIndex, "index")
		requireSlot(t, ctx, b, 0, 400, 6000)

		_, err := b.ObserveSingle(ctx, market, maturity, state, 400, 250, 30)
		require.ErrorIs(t, err, types.ErrObservationTooOld, "overwritten history")
		cumulative, err := b.ObserveSingle(ctx, market, maturity, state, 400, 200, 30)
		require.NoError(t, err, "ObserveSingle")
		require.Equal(t, int64(1000), cumulative, "oldest remaining observation")
	})
}

func TestObservationBuffer_Grow(t *testing.T) {
	ctx, b := newTestObservationBuffer(t)

	var empty types.VammState
	require.ErrorContains(t, b.Grow(ctx, market, maturity, &empty, 4), "not initialized", "Grow before Initialize")

	state := seedThree(t, ctx, b)
	require.ErrorContains(t, b.Grow(ctx, market, maturity, &state, container.MaxObservationCardinality+1), "exceeds limit", "Grow beyond the limit")
	require.NoError(t, b.Grow(ctx, market, maturity, &state, 2), "Grow smaller")
	require.Equal(t, uint32(3), state.ObservationCardinalityNext, "cardinality never shrinks")

	require.NoError(t, b.Grow(ctx, market, maturity, &state, 5), "Grow")
	require.Equal(t, uint32(3), state.ObservationCardinality, "cardinality before the next write")
	require.Equal(t, uint32(5), state.ObservationCardinalityNext, "cardinality next")

	require.NoError(t, b.Write(ctx, market, maturity, &state, 400, 30, 0), "Write into grown buffer")
	require.Equal(t, uint32(3), state.ObservationIndex, "index")
	require.Equal(t, uint32(5), state.ObservationCardinality, "cardinality after the write")
	requireSlot(t, ctx, b, 3, 400, 6000)

	// the oldest slot is an unwritten placeholder so the search starts at slot zero
	cumulative, err := b.ObserveSingle(ctx, market, maturity, state, 400, 300, 30)
	require.NoError(t, err, "ObserveSingle")
	require.Equal(t, int64(0), cumulative, "first seeded observation")
}

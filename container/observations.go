package container

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"github.com/cosmos/cosmos-sdk/codec"

	"github.com/provlabs/datedirs/types"
)

// MaxObservationCardinality bounds the number of slots a pool can grow to.
const MaxObservationCardinality uint32 = 65535

// ObservationKey is (market, maturity, slot).
var ObservationKey = collections.TripleKeyCodec(
	collections.Uint64Key,
	collections.Int64Key,
	collections.Uint32Key,
)

// ObservationBuffer stores one ring buffer of tick accumulators per pool.
// The write cursor and cardinalities live in the pool's VammState.
type ObservationBuffer struct {
	collections.Map[collections.Triple[uint64, int64, uint32], types.Observation]
}

// NewObservationBuffer creates a new ObservationBuffer.
func NewObservationBuffer(builder *collections.SchemaBuilder, cdc codec.BinaryCodec) ObservationBuffer {
	return ObservationBuffer{
		Map: collections.NewMap(builder, types.ObservationsKeyPrefix, types.ObservationsName, ObservationKey, codec.CollValue[types.Observation](cdc)),
	}
}

func (b ObservationBuffer) slot(ctx context.Context, market uint64, maturity int64, i uint32) (types.Observation, error) {
	obs, err := b.Get(ctx, collections.Join3(market, maturity, i))
	if errors.Is(err, collections.ErrNotFound) {
		return types.Observation{}, nil
	}
	return obs, err
}

// Initialize writes the first observation of a pool.
func (b ObservationBuffer) Initialize(ctx context.Context, market uint64, maturity int64, state *types.VammState, now int64) error {
	if err := b.Set(ctx, collections.Join3(market, maturity, uint32(0)), types.Observation{Timestamp: now, Initialized: true}); err != nil {
		return err
	}
	state.ObservationIndex = 0
	state.ObservationCardinality = 1
	state.ObservationCardinalityNext = 1
	return nil
}

// Seed fills a new buffer with historical observations. ticks[i] is the tick
// that prevailed from times[i] until times[i+1]; the last one is assumed to
// prevail until the next write.
func (b ObservationBuffer) Seed(ctx context.Context, market uint64, maturity int64, state *types.VammState, times []int64, ticks []int32) error {
	if len(times) != len(ticks) {
		return fmt.Errorf("%d observed times but %d observed ticks", len(times), len(ticks))
	}
	if len(times) == 0 {
		return fmt.Errorf("no observations to seed")
	}
	if uint64(len(times)) > uint64(MaxObservationCardinality) {
		return fmt.Errorf("%d observations exceed cardinality limit %d", len(times), MaxObservationCardinality)
	}
	obs := types.Observation{Timestamp: times[0], Initialized: true}
	if err := b.Set(ctx, collections.Join3(market, maturity, uint32(0)), obs); err != nil {
		return err
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return fmt.Errorf("observed times must be strictly increasing")
		}
		obs = obs.Transform(times[i], ticks[i-1])
		if err := b.Set(ctx, collections.Join3(market, maturity, uint32(i)), obs); err != nil {
			return err
		}
	}
	n := uint32(len(times))
	state.ObservationIndex = n - 1
	state.ObservationCardinality = n
	state.ObservationCardinalityNext = n
	return nil
}

// Write records the accumulator for the tick that prevailed since the last
// observation. It is a no-op when fewer than minSeconds elapsed or nothing elapsed.
func (b ObservationBuffer) Write(ctx context.Context, market uint64, maturity int64, state *types.VammState, now int64, tick int32, minSeconds int64) error {
	last, err := b.slot(ctx, market, maturity, state.ObservationIndex)
	if err != nil {
		return err
	}
	if now == last.Timestamp || now-last.Timestamp < minSeconds {
		return nil
	}

	cardinality := state.ObservationCardinality
	if state.ObservationCardinalityNext > cardinality && state.ObservationIndex == cardinality-1 {
		cardinality = state.ObservationCardinalityNext
	}
	next := (state.ObservationIndex + 1) % cardinality
	if err := b.Set(ctx, collections.Join3(market, maturity, next), last.Transform(now, tick)); err != nil {
		return err
	}
	state.ObservationIndex = next
	state.ObservationCardinality = cardinality
	return nil
}

// Grow pre-allocates slots up to next. Cardinality never shrinks.
func (b ObservationBuffer) Grow(ctx context.Context, market uint64, maturity int64, state *types.VammState, next uint32) error {
	if state.ObservationCardinality == 0 {
		return fmt.Errorf("observation buffer of %d/%d is not initialized", market, maturity)
	}
	if next > MaxObservationCardinality {
		return fmt.Errorf("cardinality %d exceeds limit %d", next, MaxObservationCardinality)
	}
	if next <= state.ObservationCardinalityNext {
		return nil
	}
	for i := state.ObservationCardinalityNext; i < next; i++ {
		// Placeholder timestamps keep the slot distinguishable from a missing key.
		if err := b.Set(ctx, collections.Join3(market, maturity, i), types.Observation{Timestamp: 1}); err != nil {
			return err
		}
	}
	state.ObservationCardinalityNext = next
	return nil
}

// ObserveSingle returns the tick cumulative secondsAgo before now.
func (b ObservationBuffer) ObserveSingle(ctx context.Context, market uint64, maturity int64, state types.VammState, now, secondsAgo int64, tick int32) (int64, error) {
	if secondsAgo < 0 {
		return 0, fmt.Errorf("seconds ago %d cannot be negative", secondsAgo)
	}
	if secondsAgo == 0 {
		last, err := b.slot(ctx, market, maturity, state.ObservationIndex)
		if err != nil {
			return 0, err
		}
		if last.Timestamp != now {
			last = last.Transform(now, tick)
		}
		return last.TickCumulative, nil
	}

	target := now - secondsAgo
	before, after, err := b.surrounding(ctx, market, maturity, state, target, tick)
	if err != nil {
		return 0, err
	}
	switch target {
	case before.Timestamp:
		return before.TickCumulative, nil
	case after.Timestamp:
		return after.TickCumulative, nil
	}
	span := after.Timestamp - before.Timestamp
	return before.TickCumulative + (after.TickCumulative-before.TickCumulative)/span*(target-before.Timestamp), nil
}

func (b ObservationBuffer) surrounding(ctx context.Context, market uint64, maturity int64, state types.VammState, target int64, tick int32) (types.Observation, types.Observation, error) {
	newest, err := b.slot(ctx, market, maturity, state.ObservationIndex)
	if err != nil {
		return types.Observation{}, types.Observation{}, err
	}
	if newest.Timestamp <= target {
		if newest.Timestamp == target {
			return newest, newest, nil
		}
		return newest, newest.Transform(target, tick), nil
	}

	oldest, err := b.slot(ctx, market, maturity, (state.ObservationIndex+1)%state.ObservationCardinality)
	if err != nil {
		return types.Observation{}, types.Observation{}, err
	}
	if !oldest.Initialized {
		if oldest, err = b.slot(ctx, market, maturity, 0); err != nil {
			return types.Observation{}, types.Observation{}, err
		}
	}
	if target < oldest.Timestamp {
		return types.Observation{}, types.Observation{}, types.ErrObservationTooOld.Wrapf("target %d predates oldest observation %d", target, oldest.Timestamp)
	}
	return b.binarySearch(ctx, market, maturity, state, target)
}

func (b ObservationBuffer) binarySearch(ctx context.Context, market uint64, maturity int64, state types.VammState, target int64) (types.Observation, types.Observation, error) {
	card := int64(state.ObservationCardinality)
	l := (int64(state.ObservationIndex) + 1) % card
	r := l + card - 1
	for l <= r {
		i := (l + r) / 2
		before, err := b.slot(ctx, market, maturity, uint32(i%card))
		if err != nil {
			return types.Observation{}, types.Observation{}, err
		}
		if !before.Initialized {
			l = i + 1
			continue
		}
		after, err := b.slot(ctx, market, maturity, uint32((i+1)%card))
		if err != nil {
			return types.Observation{}, types.Observation{}, err
		}
		atOrAfter := before.Timestamp <= target
		if atOrAfter && target <= after.Timestamp {
			return before, after, nil
		}
		if !atOrAfter {
			r = i - 1
		} else {
			l = i + 1
		}
	}
	return types.Observation{}, types.Observation{}, types.ErrObservationTooOld.Wrapf("no observations surround %d", target)
}

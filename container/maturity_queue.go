package container

import (
	"context"

	"cosmossdk.io/collections"

	"github.com/provlabs/datedirs/types"
)

// MaturityQueueKey is the key for the MaturityQueue: (maturity, market).
var MaturityQueueKey = collections.PairKeyCodec(
	collections.Int64Key,
	collections.Uint64Key,
)

// MaturityQueue is a time-ordered set of pools awaiting their maturity index.
type MaturityQueue struct {
	collections.KeySet[collections.Pair[int64, uint64]]
}

// NewMaturityQueue creates a new MaturityQueue.
func NewMaturityQueue(builder *collections.SchemaBuilder) MaturityQueue {
	return MaturityQueue{
		KeySet: collections.NewKeySet(builder, types.MaturityQueueKeyPrefix, types.MaturityQueueName, MaturityQueueKey),
	}
}

// Enqueue adds a pool to the queue.
func (q MaturityQueue) Enqueue(ctx context.Context, market uint64, maturity int64) error {
	return q.Set(ctx, collections.Join(maturity, market))
}

// Dequeue removes a pool from the queue.
func (q MaturityQueue) Dequeue(ctx context.Context, market uint64, maturity int64) error {
	return q.Remove(ctx, collections.Join(maturity, market))
}

// WalkDue iterates over all pools with a maturity <= now in maturity order.
// Iteration stops at the first pool that is not yet due or when the callback
// returns stop=true or an error.
func (q MaturityQueue) WalkDue(ctx context.Context, now int64, fn func(market uint64, maturity int64) (stop bool, err error)) error {
	rng := new(collections.Range[collections.Pair[int64, uint64]]).
		EndInclusive(collections.Join(now, ^uint64(0)))
	return q.Walk(ctx, rng, func(key collections.Pair[int64, uint64]) (bool, error) {
		return fn(key.K2(), key.K1())
	})
}

// Due returns the pools with a maturity <= now. Callers that mutate the queue
// should use this instead of WalkDue.
func (q MaturityQueue) Due(ctx context.Context, now int64) ([]collections.Pair[int64, uint64], error) {
	var due []collections.Pair[int64, uint64]
	err := q.WalkDue(ctx, now, func(market uint64, maturity int64) (bool, error) {
		due = append(due, collections.Join(maturity, market))
		return false, nil
	})
	return due, err
}

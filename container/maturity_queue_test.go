package container_test

import (
	"testing"

	"cosmossdk.io/collections"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/container"
)

func TestMaturityQueue(t *testing.T) {
	ctx, sb := newTestStore(t)
	q := container.NewMaturityQueue(sb)
	_, err := sb.Build()
	require.NoError(t, err)

	require.NoError(t, q.Enqueue(ctx, 1, 100), "Enqueue 1/100")
	require.NoError(t, q.Enqueue(ctx, 2, 50), "Enqueue 2/50")
	require.NoError(t, q.Enqueue(ctx, 1, 200), "Enqueue 1/200")
	require.NoError(t, q.Enqueue(ctx, 3, 100), "Enqueue 3/100")
	require.NoError(t, q.Enqueue(ctx, 1, 100), "Enqueue 1/100 again")

	due, err := q.Due(ctx, 49)
	require.NoError(t, err, "Due(49)")
	require.Empty(t, due, "nothing due before the first maturity")

	due, err = q.Due(ctx, 100)
	require.NoError(t, err, "Due(100)")
	require.Equal(t, []collections.Pair[int64, uint64]{
		collections.Join(int64(50), uint64(2)),
		collections.Join(int64(100), uint64(1)),
		collections.Join(int64(100), uint64(3)),
	}, due, "due in maturity order")

	var visited int
	err = q.WalkDue(ctx, 1_000, func(market uint64, maturity int64) (bool, error) {
		visited++
		return maturity >= 100, nil
	})
	require.NoError(t, err, "WalkDue")
	require.Equal(t, 2, visited, "walk stops when asked")

	require.NoError(t, q.Dequeue(ctx, 2, 50), "Dequeue 2/50")
	require.NoError(t, q.Dequeue(ctx, 9, 9), "Dequeue of an absent pool")
	due, err = q.Due(ctx, 1_000)
	require.NoError(t, err, "Due(1000)")
	require.Len(t, due, 3, "remaining pools")
	require.Equal(t, uint64(1), due[0].K2(), "first remaining market")
	require.Equal(t, int64(200), due[2].K1(), "last remaining maturity")
}

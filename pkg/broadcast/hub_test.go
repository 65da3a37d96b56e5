package broadcast_test

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/broadcast"
	"github.com/dmitrymomot/notifykit/pkg/logger"
)

func newHub[T any](opts ...broadcast.HubOption[T]) *broadcast.Hub[T] {
	opts = append([]broadcast.HubOption[T]{broadcast.WithHubLogger[T](logger.Discard())}, opts...)
	return broadcast.NewHub[T](opts...)
}

func TestHub_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("nil observer", func(t *testing.T) {
		t.Parallel()
		hub := newHub[string]()
		_, err := hub.Subscribe(nil)
		assert.ErrorIs(t, err, broadcast.ErrNilObserver)
		assert.Zero(t, hub.Len())
	})

	t.Run("handles are distinct", func(t *testing.T) {
		t.Parallel()
		hub := newHub[string]()
		noop := func(context.Context, string) {}

		h1, err := hub.Subscribe(noop)
		require.NoError(t, err)
		h2, err := hub.Subscribe(noop)
		require.NoError(t, err)

		assert.True(t, h1.Valid())
		assert.True(t, h2.Valid())
		assert.NotEqual(t, h1, h2)
		assert.Equal(t, 2, hub.Len())
	})
}

func TestHub_Unsubscribe(t *testing.T) {
	t.Parallel()

	hub := newHub[int]()
	var got []int
	handle, err := hub.Subscribe(func(_ context.Context, v int) { got = append(got, v) })
	require.NoError(t, err)

	hub.Publish(context.Background(), 1, 10)
	assert.True(t, hub.Unsubscribe(handle))
	hub.Publish(context.Background(), 2, 20)

	assert.Equal(t, []int{10}, got)
	assert.False(t, hub.Unsubscribe(handle), "second unsubscribe is a no-op")
	assert.False(t, hub.Unsubscribe(broadcast.Handle{}))
	assert.Zero(t, hub.Len())
}

func TestHub_Publish(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("registration order", func(t *testing.T) {
		t.Parallel()
		hub := newHub[string]()
		var order []string
		for _, name := range []string{"a", "b", "c"} {
			name := name
			_, err := hub.Subscribe(func(_ context.Context, v string) { order = append(order, name+":"+v) })
			require.NoError(t, err)
		}

		hub.Publish(ctx, 1, "x")
		assert.Equal(t, []string{"a:x", "b:x", "c:x"}, order)
	})

	t.Run("no observers", func(t *testing.T) {
		t.Parallel()
		hub := newHub[string]()
		assert.NotPanics(t, func() { hub.Publish(ctx, 1, "x") })
		assert.Equal(t, uint64(1), hub.Latest())
	})

	t.Run("panicking observer is isolated", func(t *testing.T) {
		t.Parallel()
		var (
			panicked []broadcast.Handle
			perr     error
		)
		hub := newHub(broadcast.WithPanicHandler[string](func(h broadcast.Handle, err error) {
			panicked = append(panicked, h)
			perr = err
		}))

		var got []string
		_, _ = hub.Subscribe(func(_ context.Context, v string) { got = append(got, "first:"+v) })
		bad, _ := hub.Subscribe(func(context.Context, string) { panic("boom") })
		_, _ = hub.Subscribe(func(_ context.Context, v string) { got = append(got, "last:"+v) })

		require.NotPanics(t, func() { hub.Publish(ctx, 1, "x") })

		assert.Equal(t, []string{"first:x", "last:x"}, got)
		assert.Equal(t, []broadcast.Handle{bad}, panicked)
		assert.ErrorIs(t, perr, broadcast.ErrObserverPanic)
		assert.Contains(t, perr.Error(), "boom")
	})

	t.Run("stale sequence is dropped", func(t *testing.T) {
		t.Parallel()
		hub := newHub[int]()
		var got []int
		_, _ = hub.Subscribe(func(_ context.Context, v int) { got = append(got, v) })

		hub.Publish(ctx, 2, 2)
		hub.Publish(ctx, 1, 1)
		hub.Publish(ctx, 2, 22)
		hub.Publish(ctx, 3, 3)

		assert.Equal(t, []int{2, 3}, got)
		assert.Equal(t, uint64(3), hub.Latest())
	})

	t.Run("unsequenced values are always delivered", func(t *testing.T) {
		t.Parallel()
		hub := newHub[int]()
		var got []int
		_, _ = hub.Subscribe(func(_ context.Context, v int) { got = append(got, v) })

		hub.Publish(ctx, 5, 5)
		hub.Publish(ctx, 0, 1)
		hub.Publish(ctx, 0, 2)

		assert.Equal(t, []int{5, 1, 2}, got)
	})

	t.Run("nested publish supersedes outer delivery", func(t *testing.T) {
		t.Parallel()
		hub := newHub[int]()
		var got []string
		_, _ = hub.Subscribe(func(ctx context.Context, v int) {
			got = append(got, "a", string(rune('0'+v)))
			if v == 1 {
				hub.Publish(ctx, 2, 2)
			}
		})
		_, _ = hub.Subscribe(func(_ context.Context, v int) {
			got = append(got, "b", string(rune('0'+v)))
		})

		hub.Publish(ctx, 1, 1)

		// b never sees 1 after having seen 2.
		assert.Equal(t, []string{"a", "1", "a", "2", "b", "2"}, got)
	})

	t.Run("observer removed during delivery is skipped", func(t *testing.T) {
		t.Parallel()
		hub := newHub[int]()
		var second broadcast.Handle
		var calls []string
		_, _ = hub.Subscribe(func(context.Context, int) {
			calls = append(calls, "first")
			hub.Unsubscribe(second)
		})
		second, _ = hub.Subscribe(func(context.Context, int) { calls = append(calls, "second") })

		hub.Publish(ctx, 1, 1)
		assert.Equal(t, []string{"first"}, calls)
	})

	t.Run("clone isolates observers", func(t *testing.T) {
		t.Parallel()
		hub := newHub(broadcast.WithClone(func(v []int) []int { return slices.Clone(v) }))
		var seen []int
		_, _ = hub.Subscribe(func(_ context.Context, v []int) { v[0] = 99 })
		_, _ = hub.Subscribe(func(_ context.Context, v []int) { seen = v })

		original := []int{1, 2}
		hub.Publish(ctx, 1, original)

		assert.Equal(t, []int{1, 2}, seen)
		assert.Equal(t, []int{1, 2}, original)
	})
}

func TestHub_Concurrent(t *testing.T) {
	t.Parallel()

	hub := newHub[int]()
	var (
		mu    sync.Mutex
		count int
	)
	_, _ = hub.Subscribe(func(context.Context, int) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rangeIdx := 0; rangeIdx < 100; rangeIdx++ {
				hub.Publish(context.Background(), 0, i)
			}
		}()
	}
	for rangeIdx := 0; rangeIdx < 5; rangeIdx++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h, _ := hub.Subscribe(func(context.Context, int) {})
			hub.Unsubscribe(h)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, count)
	assert.Equal(t, 1, hub.Len())
}

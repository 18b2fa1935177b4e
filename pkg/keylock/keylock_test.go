package keylock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockerSerializesSameKey(t *testing.T) {
	t.Parallel()

	l := New()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		active  int
		maxSeen int
	)

	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			lock, err := l.Acquire(context.Background(), "uuid-1")
			if !assert.NoError(t, err) {
				return
			}
			defer lock.Release()

			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, l.Len())
}

func TestLockerIndependentKeys(t *testing.T) {
	t.Parallel()

	l := New()

	a, err := l.Acquire(context.Background(), "a")
	require.NoError(t, err)

	b, err := l.Acquire(context.Background(), "b")
	require.NoError(t, err)

	assert.Equal(t, 2, l.Len())

	a.Release()
	b.Release()

	assert.Equal(t, 0, l.Len())
}

func TestLockerAcquireHonoursContext(t *testing.T) {
	t.Parallel()

	l := New()

	first, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = l.Acquire(ctx, "k")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	first.Release()
	first.Release() // second release is a no-op

	assert.Equal(t, 0, l.Len())
}

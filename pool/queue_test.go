package pool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueProcess(t *testing.T) {
	q := NewQueue(2, "test")
	defer q.Close()

	v, err := q.Process(context.Background(), func() (interface{}, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	boom := errors.New("boom")
	_, err = q.Process(context.Background(), func() (interface{}, error) {
		return nil, boom
	})
	assert.Equal(t, boom, err)
}

func TestQueueRecoversPanics(t *testing.T) {
	q := NewQueue(1, "test")
	defer q.Close()

	_, err := q.Process(context.Background(), func() (interface{}, error) {
		panic("nope")
	})
	assert.Error(t, err)

	// The worker is still usable
	v, err := q.Process(context.Background(), func() (interface{}, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestQueueBoundsConcurrency(t *testing.T) {
	q := NewQueue(2, "test")
	defer q.Close()

	var running int32
	var peak int32
	wg := &sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = q.Process(context.Background(), func() (interface{}, error) {
				n := atomic.AddInt32(&running, 1)
				for {
					p := atomic.LoadInt32(&peak)
					if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return nil, nil
			})
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

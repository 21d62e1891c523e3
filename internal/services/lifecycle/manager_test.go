package lifecycle

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestShutdownRunsEveryHook(t *testing.T) {
	m := New(time.Second, zap.NewNop())

	var first, second atomic.Int32
	m.Register("first", func(context.Context) error {
		first.Add(1)
		return nil
	})
	m.Register("second", func(context.Context) error {
		second.Add(1)
		return nil
	})

	require.NoError(t, m.Shutdown(context.Background()))
	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestShutdownIsIdempotent(t *testing.T) {
	m := New(time.Second, zap.NewNop())

	var calls atomic.Int32
	m.Register("resource", func(context.Context) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, m.Shutdown(context.Background()))
	require.NoError(t, m.Shutdown(context.Background()))
	assert.Equal(t, int32(1), calls.Load(), "close must run at most once")
}

func TestShutdownFailureDoesNotBlockSiblings(t *testing.T) {
	m := New(time.Second, zap.NewNop())

	var closed atomic.Int32
	m.Register("broken", func(context.Context) error {
		return errors.New("close failed")
	})
	m.Register("healthy", func(context.Context) error {
		closed.Add(1)
		return nil
	})

	err := m.Shutdown(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close failed")
	assert.Equal(t, int32(1), closed.Load())
}

func TestShutdownClosesConcurrently(t *testing.T) {
	m := New(2*time.Second, zap.NewNop())

	// two hooks each sleeping 200ms finish well under 400ms when parallel
	for i := 0; i < 2; i++ {
		m.Register("slow", func(context.Context) error {
			time.Sleep(200 * time.Millisecond)
			return nil
		})
	}

	start := time.Now()
	require.NoError(t, m.Shutdown(context.Background()))
	assert.Less(t, time.Since(start), 390*time.Millisecond)
}

func TestShutdownHonorsTimeout(t *testing.T) {
	m := New(100*time.Millisecond, zap.NewNop())

	m.Register("stuck", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	start := time.Now()
	err := m.Shutdown(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

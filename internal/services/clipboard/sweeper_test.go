package clipboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (c *countingSweeper) SweepExpired(context.Context) (int64, error) {
	c.calls.Add(1)
	return 1, c.err
}

func TestSweeper_RunsImmediatelyAndOnTick(t *testing.T) {
	target := &countingSweeper{}
	sweeper := NewSweeper(target, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sweeper.Run(ctx) }()

	assert.Eventually(t, func() bool { return target.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}

func TestSweeper_ErrorsAreNotFatal(t *testing.T) {
	target := &countingSweeper{err: errors.New("database is locked")}
	sweeper := NewSweeper(target, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = sweeper.Run(ctx) }()

	assert.Eventually(t, func() bool { return target.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestNewSweeper_DefaultInterval(t *testing.T) {
	sweeper := NewSweeper(&countingSweeper{}, 0, nil)
	assert.Equal(t, DefaultSweepInterval, sweeper.interval)
}

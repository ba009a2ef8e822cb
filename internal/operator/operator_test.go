package operator

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/fieldops-server/internal/operator/actions"
)

type funcAction struct {
	fn func(ctx context.Context, deps *actions.Dependencies) error
}

func (a funcAction) Perform(ctx context.Context, deps *actions.Dependencies) error {
	return a.fn(ctx, deps)
}

func newTestDelegator(t *testing.T, workers int) *OperatorDelegator {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	d := NewOperatorDelegator(&actions.Dependencies{Logger: logger}, workers)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

// -- Process tests --

func TestProcess_ReturnsActionError(t *testing.T) {
	d := newTestDelegator(t, 2)

	err := d.Process(context.Background(), funcAction{fn: func(context.Context, *actions.Dependencies) error {
		return errors.New("render failed")
	}})

	assert.EqualError(t, err, "render failed")
}

func TestProcess_PassesDependencies(t *testing.T) {
	d := newTestDelegator(t, 1)

	var got *actions.Dependencies
	err := d.Process(context.Background(), funcAction{fn: func(_ context.Context, deps *actions.Dependencies) error {
		got = deps
		return nil
	}})

	assert.NoError(t, err)
	assert.Same(t, d.deps, got)
}

func TestProcess_ContextCancelled(t *testing.T) {
	d := newTestDelegator(t, 1)

	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Process(ctx, funcAction{fn: func(context.Context, *actions.Dependencies) error {
		<-release
		return nil
	}})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrNotQueued, "the action reached a worker")
}

func TestProcess_AfterStop(t *testing.T) {
	d := newTestDelegator(t, 1)
	d.Stop()

	err := d.Process(context.Background(), funcAction{fn: func(context.Context, *actions.Dependencies) error {
		return nil
	}})

	assert.ErrorIs(t, err, ErrStopped)
	assert.ErrorIs(t, err, ErrNotQueued)
}

// -- Enqueue tests --

func TestEnqueue_RunsDetachedFromCaller(t *testing.T) {
	d := newTestDelegator(t, 2)

	var ran atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	for i := 0; i < 5; i++ {
		err := d.Enqueue(ctx, funcAction{fn: func(ctx context.Context, _ *actions.Dependencies) error {
			if ctx.Err() == nil {
				ran.Add(1)
			}
			return nil
		}})
		assert.NoError(t, err)
	}
	cancel()

	d.Stop()
	assert.Equal(t, int32(5), ran.Load())
}

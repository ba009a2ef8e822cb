package operator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/carson-networks/fieldops-server/internal/operator/actions"
)

const queueSize = 1000

var (
	ErrStopped = errors.New("operator stopped")

	// ErrNotQueued wraps every error returned before an action reached the
	// queue. The action will never run.
	ErrNotQueued = errors.New("action not queued")
)

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	deps       *actions.Dependencies
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
	mu         sync.RWMutex
	stopped    bool
}

func NewOperatorDelegator(deps *actions.Dependencies, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		deps:       deps,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.deps, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queue and waits for in-flight items to drain.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
	})
}

// Process queues action and blocks until a worker has performed it.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Enqueue queues action and returns immediately. The action runs detached from
// ctx cancellation; failures are logged by the worker.
func (d *OperatorDelegator) Enqueue(ctx context.Context, action actions.IAction) error {
	return d.enqueue(ctx, ActionItem{
		ctx:    context.WithoutCancel(ctx),
		action: action,
	})
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return fmt.Errorf("%w: %w", ErrNotQueued, ErrStopped)
	}

	select {
	case d.queue <- item:
		d.deps.Metrics.SetQueueDepth(len(d.queue))
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrNotQueued, ctx.Err())
	}
}

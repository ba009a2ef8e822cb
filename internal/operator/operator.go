package operator

import (
	"context"

	"github.com/carson-networks/fieldops-server/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	deps  *actions.Dependencies
	queue chan ActionItem
}

func NewOperator(deps *actions.Dependencies, queue chan ActionItem) *Operator {
	return &Operator{
		deps:  deps,
		queue: queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.deps.Metrics.SetQueueDepth(len(o.queue))
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	err := item.action.Perform(item.ctx, o.deps)

	if item.response == nil {
		if err != nil {
			o.deps.Logger.WithError(err).WithField("action", item.name()).Warn("Operator.processItem.failed")
		}
		return
	}
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

func (i ActionItem) name() string {
	if g, ok := i.action.(*actions.GenerateExport); ok {
		return "GenerateExport:" + g.ExportID.String()
	}
	return "unknown"
}

type ActionItemResponse struct {
	err error
}

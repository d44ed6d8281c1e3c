package pool

import (
	"context"
	"fmt"

	"github.com/Jeffail/tunny"
	"github.com/getsentry/sentry-go"
	"github.com/scoophq/scoop/metrics"
	"github.com/sirupsen/logrus"
)

type Task = func() (interface{}, error)

type taskResult struct {
	value interface{}
	err   error
}

type Queue struct {
	name string
	pool *tunny.Pool
}

func NewQueue(workers int, name string) *Queue {
	if workers <= 0 {
		workers = 1
	}
	q := &Queue{name: name}
	q.pool = tunny.NewFunc(workers, q.run)
	return q
}

func (q *Queue) run(payload interface{}) (res interface{}) {
	defer func() {
		if err := recover(); err != nil {
			logrus.Errorf("Panic from internal queue %s: %v", q.name, err)
			//goland:noinspection GoTypeAssertionOnErrors
			if e, ok := err.(error); ok {
				sentry.CaptureException(e)
			}
			res = &taskResult{err: fmt.Errorf("panic in %s queue: %v", q.name, err)}
		}
	}()
	v, err := payload.(Task)()
	return &taskResult{value: v, err: err}
}

// Process blocks until a worker has run the task or ctx is done.
func (q *Queue) Process(ctx context.Context, task Task) (interface{}, error) {
	metrics.RenderPoolQueued.Set(float64(q.pool.QueueLength()))
	raw, err := q.pool.ProcessCtx(ctx, task)
	if err != nil {
		return nil, err
	}
	res := raw.(*taskResult)
	return res.value, res.err
}

func (q *Queue) Resize(workers int) {
	if workers <= 0 {
		workers = 1
	}
	q.pool.SetSize(workers)
}

func (q *Queue) Close() {
	q.pool.Close()
}

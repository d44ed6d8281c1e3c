package pool

import (
	"context"
	"sync"

	"github.com/scoophq/scoop/common/config"
	"github.com/sirupsen/logrus"
)

var renderQueue *Queue
var lock = &sync.Mutex{}

func Init() {
	lock.Lock()
	defer lock.Unlock()
	if renderQueue == nil {
		renderQueue = NewQueue(config.Get().Branding.NumWorkers, "render")
	}
}

func AdjustSize() {
	lock.Lock()
	defer lock.Unlock()
	if renderQueue != nil {
		logrus.Infof("Resizing render pool to %d workers", config.Get().Branding.NumWorkers)
		renderQueue.Resize(config.Get().Branding.NumWorkers)
	}
}

func Drain() {
	lock.Lock()
	defer lock.Unlock()
	if renderQueue != nil {
		renderQueue.Close()
		renderQueue = nil
	}
}

// Render runs the task on the shared render pool, starting it if needed.
func Render(ctx context.Context, task Task) (interface{}, error) {
	Init()
	lock.Lock()
	q := renderQueue
	lock.Unlock()
	return q.Process(ctx, task)
}

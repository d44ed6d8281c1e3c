package main

import (
	"github.com/scoophq/scoop/api"
	"github.com/scoophq/scoop/common/globals"
	"github.com/scoophq/scoop/metrics"
	"github.com/scoophq/scoop/pool"
)

func setupReloads() {
	reloadOnChan(globals.WebReloadChan, api.Reload)
	reloadOnChan(globals.MetricsReloadChan, metrics.Reload)
	reloadOnChan(globals.RenderPoolReloadChan, pool.AdjustSize)
}

func stopReloads() {
	// send stop signal to reload fns
	globals.WebReloadChan <- false
	globals.MetricsReloadChan <- false
	globals.RenderPoolReloadChan <- false
}

func reloadOnChan(reloadChan chan bool, reloadFn func()) {
	go func() {
		for {
			shouldReload := <-reloadChan
			if shouldReload {
				reloadFn()
			} else {
				return // received stop
			}
		}
	}()
}

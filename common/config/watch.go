package config

import (
	"reflect"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/scoophq/scoop/common/globals"
	"github.com/sirupsen/logrus"
)

func Watch() *fsnotify.Watcher {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logrus.Fatal(err)
	}

	err = watcher.Add(Path)
	if err != nil {
		logrus.Fatal(err)
	}

	go func() {
		debounced := debounce.New(1 * time.Second)
		for {
			select {
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				debounced(onFileChanged)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logrus.Error("error in config watcher:", err)
			}
		}
	}()

	return watcher
}

func onFileChanged() {
	logrus.Info("Config file change detected - reloading")
	configNow := Get()
	configNew, err := reloadConfig()
	if err != nil {
		logrus.Error("Error reloading configuration - ignoring")
		logrus.Error(err)
		return
	}

	logrus.Info("Applying reloaded config live")
	instance = configNew

	if hasWebChanged(configNew, configNow) {
		logrus.Warn("Webserver configuration changed - remounting")
		globals.WebReloadChan <- true
	}

	metricsEnableChange := configNew.Metrics.Enabled != configNow.Metrics.Enabled
	metricsBindAddressChange := configNew.Metrics.BindAddress != configNow.Metrics.BindAddress
	metricsBindPortChange := configNew.Metrics.Port != configNow.Metrics.Port
	if metricsEnableChange || metricsBindAddressChange || metricsBindPortChange {
		logrus.Warn("Metrics configuration changed - remounting")
		globals.MetricsReloadChan <- true
	}

	workersChange := configNew.Branding.NumWorkers != configNow.Branding.NumWorkers
	if workersChange {
		logrus.Warn("Render pool size changed - resizing")
		globals.RenderPoolReloadChan <- true
	}

	logChange := configNew.General.LogDirectory != configNow.General.LogDirectory
	if logChange {
		logrus.Warn("Log configuration changed - restart scoop to apply changes")
	}
}

func hasWebChanged(configNew *MainConfig, configNow *MainConfig) bool {
	if configNew.General.BindAddress != configNow.General.BindAddress {
		return true
	}
	if configNew.General.Port != configNow.General.Port {
		return true
	}
	if configNew.General.TrustAnyForward != configNow.General.TrustAnyForward {
		return true
	}
	return !reflect.DeepEqual(configNew.RateLimit, configNow.RateLimit)
}

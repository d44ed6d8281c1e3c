package main

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/scoophq/scoop/common/config"
	"github.com/scoophq/scoop/common/version"
	"github.com/sirupsen/logrus"
)

func setupSentry() {
	cfg := config.Get().Sentry
	if !cfg.Enabled {
		logrus.Info("Sentry disabled")
		return
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Dsn,
		Environment: cfg.Environment,
		Debug:       cfg.Debug,
		Release:     version.Release(),
	})
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("Sentry enabled")
}

func flushSentry() {
	if config.Get().Sentry.Enabled {
		sentry.Flush(2 * time.Second)
	}
}

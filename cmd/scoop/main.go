package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/scoophq/scoop/api"
	"github.com/scoophq/scoop/common/config"
	"github.com/scoophq/scoop/common/logging"
	"github.com/scoophq/scoop/common/version"
	"github.com/scoophq/scoop/metrics"
	"github.com/scoophq/scoop/pool"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "scoop.yaml", "The path to the configuration")
	versionFlag := flag.Bool("version", false, "Prints the version and exits")
	flag.Parse()

	if *versionFlag {
		version.Print(false)
		return // exit 0
	}

	// Override config path with config for Docker users
	configEnv := os.Getenv("SCOOP_CONFIG")
	if configEnv != "" {
		configPath = &configEnv
	}

	config.Path = *configPath

	err := logging.Setup(
		config.Get().General.LogDirectory,
		config.Get().General.LogColors,
		config.Get().General.JsonLogs,
		config.Get().General.LogLevel,
	)
	if err != nil {
		panic(err)
	}

	logrus.Info("Starting up...")
	version.Print(true)
	setupSentry()

	logrus.Info("Starting config watcher...")
	watcher := config.Watch()
	defer watcher.Close()
	setupReloads()

	logrus.Info("Starting render pool...")
	pool.Init()

	logrus.Info("Starting scoop...")
	metrics.Init()
	web := api.Init()

	// Set up a function to stop everything
	stopAllButWeb := func() {
		logrus.Info("Stopping reload watchers...")
		stopReloads()

		logrus.Info("Stopping metrics...")
		metrics.Stop()

		logrus.Info("Draining render pool...")
		pool.Drain()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop

		logrus.Warn("Stop signal received")
		logrus.Info("Stopping web server...")
		api.Stop()
	}()

	// Wait for the web server to exit nicely
	web.Wait()
	stopAllButWeb()
	flushSentry()

	// For debugging
	logrus.Info("Goodbye!")
}

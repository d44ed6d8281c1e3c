package version

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// Set at build time with -ldflags "-X ...". Build info fills whatever is left empty.
var GitCommit string
var Version string

var defaultsOnce = &sync.Once{}

func SetDefaults() {
	defaultsOnce.Do(func() {
		build, ok := debug.ReadBuildInfo()
		if GitCommit == "" {
			GitCommit = buildSetting(build, ok, "vcs.revision", ".dev")
		}
		if Version == "" {
			Version = "unknown"
			if ok && build.Main.Version != "" && build.Main.Version != "(devel)" {
				Version = build.Main.Version
			}
		}
	})
}

func buildSetting(build *debug.BuildInfo, ok bool, key string, def string) string {
	if !ok {
		return def
	}
	for _, setting := range build.Settings {
		if setting.Key == key && setting.Value != "" {
			return setting.Value
		}
	}
	return def
}

// Release is the identifier reported to Sentry.
func Release() string {
	SetDefaults()
	return "scoop@" + Version + "+" + GitCommit
}

func Print(usingLogger bool) {
	SetDefaults()

	if usingLogger {
		logrus.WithFields(logrus.Fields{"version": Version, "commit": GitCommit}).Info("Scoop build")
	} else {
		fmt.Printf("Version: %s\nCommit: %s\n", Version, GitCommit)
	}
}

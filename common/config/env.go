package config

import (
	"github.com/caarlos0/env/v6"
)

type environmentOverrides struct {
	BindAddress    string `env:"SCOOP_BIND_ADDRESS"`
	Port           int    `env:"SCOOP_PORT"`
	LogLevel       string `env:"SCOOP_LOG_LEVEL"`
	MetricsEnabled *bool  `env:"SCOOP_METRICS_ENABLED"`
	SentryDsn      string `env:"SCOOP_SENTRY_DSN"`
}

// applyEnvironment lets container deployments override the handful of settings
// that usually differ per environment.
func applyEnvironment(c *MainConfig) error {
	o := environmentOverrides{}
	if err := env.Parse(&o); err != nil {
		return err
	}

	if o.BindAddress != "" {
		c.General.BindAddress = o.BindAddress
	}
	if o.Port > 0 {
		c.General.Port = o.Port
	}
	if o.LogLevel != "" {
		c.General.LogLevel = o.LogLevel
	}
	if o.MetricsEnabled != nil {
		c.Metrics.Enabled = *o.MetricsEnabled
	}
	if o.SentryDsn != "" {
		c.Sentry.Enabled = true
		c.Sentry.Dsn = o.SentryDsn
	}
	return nil
}

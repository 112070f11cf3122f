package config

import (
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/buildhook/pkg/domain/types"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN string `toml:"dsn" masq:"secret"`
	Env string `toml:"env"`
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN; error reporting is disabled if empty",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("BUILDHOOK_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment name",
			Destination: &c.Env,
			Sources:     cli.EnvVars("BUILDHOOK_SENTRY_ENV"),
		},
	}
}

// Merge fills unset fields from the configuration file
func (c *Sentry) Merge(f Sentry) {
	if c.DSN == "" {
		c.DSN = f.DSN
	}
	if c.Env == "" {
		c.Env = f.Env
	}
}

// Enabled reports whether a DSN is configured
func (c *Sentry) Enabled() bool {
	return c.DSN != ""
}

// Configure initializes the Sentry client. It is a no-op without DSN.
func (c *Sentry) Configure() error {
	if !c.Enabled() {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         c.DSN,
		Environment: c.Env,
		Release:     types.ServiceName + "@" + types.Version,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry")
	}
	return nil
}

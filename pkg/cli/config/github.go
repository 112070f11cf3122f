package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub holds webhook sender configuration
type GitHub struct {
	WebhookSecret string `toml:"webhook_secret" masq:"secret"`
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "webhook-secret",
			Usage:       "Shared secret of the webhook signature",
			Destination: &c.WebhookSecret,
			Sources:     cli.EnvVars("BUILDHOOK_WEBHOOK_SECRET", "WEBHOOK_SECRET"),
		},
	}
}

// Merge fills unset fields from the configuration file
func (c *GitHub) Merge(f GitHub) {
	if c.WebhookSecret == "" {
		c.WebhookSecret = f.WebhookSecret
	}
}

// Validate checks required fields
func (c *GitHub) Validate() error {
	if c.WebhookSecret == "" {
		return goerr.New("webhook secret is required (--webhook-secret or WEBHOOK_SECRET)")
	}
	return nil
}

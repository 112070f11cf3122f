package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const defaultAddr = "localhost:8080"

// Server holds server configuration
type Server struct {
	Addr         string        `toml:"addr"`
	WriteTimeout time.Duration `toml:"write_timeout"`
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address (default: " + defaultAddr + ")",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("BUILDHOOK_ADDR"),
		},
		&cli.DurationFlag{
			Name:        "write-timeout",
			Usage:       "Maximum duration to handle one request (default: 30s)",
			Destination: &c.WriteTimeout,
			Sources:     cli.EnvVars("BUILDHOOK_WRITE_TIMEOUT"),
		},
	}
}

// Merge fills unset fields from the configuration file and applies defaults
func (c *Server) Merge(f Server) {
	if c.Addr == "" {
		c.Addr = f.Addr
	}
	if c.Addr == "" {
		c.Addr = defaultAddr
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = f.WriteTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 30 * time.Second
	}
}

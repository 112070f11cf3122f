package config

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// File is the optional TOML configuration file. Flags and environment
// variables take precedence over its values.
//
//	[server]
//	addr = ":8080"
//
//	[github]
//	webhook_secret = "..."
//
//	[build]
//	project = "documentation-service"
//	region = "us-east-1"
type File struct {
	Server Server `toml:"server"`
	GitHub GitHub `toml:"github"`
	Build  Build  `toml:"build"`
	Sentry Sentry `toml:"sentry"`
}

// LoadFile reads a configuration file. An empty path yields an empty File.
func LoadFile(path string) (*File, error) {
	var f File
	if path == "" {
		return &f, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}

	return &f, nil
}

package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/buildhook/pkg/infra/codebuild"
)

// Build holds build-execution service configuration
type Build struct {
	Project         string `toml:"project"`
	Region          string `toml:"region"`
	Endpoint        string `toml:"endpoint"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key" masq:"secret"`
}

// Flags returns CLI flags for build configuration
func (c *Build) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "build-project",
			Usage:       "CodeBuild project started for each push",
			Destination: &c.Project,
			Sources:     cli.EnvVars("BUILDHOOK_BUILD_PROJECT", "BUILD_PROJECT"),
		},
		&cli.StringFlag{
			Name:        "aws-region",
			Usage:       "AWS region of the CodeBuild project",
			Destination: &c.Region,
			Sources:     cli.EnvVars("BUILDHOOK_AWS_REGION", "AWS_DEFAULT_REGION", "AWS_REGION"),
		},
		&cli.StringFlag{
			Name:        "aws-endpoint",
			Usage:       "Override CodeBuild endpoint URL",
			Destination: &c.Endpoint,
			Sources:     cli.EnvVars("BUILDHOOK_AWS_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:        "aws-access-key-id",
			Usage:       "Static AWS access key id (default credential chain if unset)",
			Destination: &c.AccessKeyID,
			Sources:     cli.EnvVars("BUILDHOOK_AWS_ACCESS_KEY_ID"),
		},
		&cli.StringFlag{
			Name:        "aws-secret-access-key",
			Usage:       "Static AWS secret access key",
			Destination: &c.SecretAccessKey,
			Sources:     cli.EnvVars("BUILDHOOK_AWS_SECRET_ACCESS_KEY"),
		},
	}
}

// Merge fills unset fields from the configuration file
func (c *Build) Merge(f Build) {
	if c.Project == "" {
		c.Project = f.Project
	}
	if c.Region == "" {
		c.Region = f.Region
	}
	if c.Endpoint == "" {
		c.Endpoint = f.Endpoint
	}
	if c.AccessKeyID == "" && c.SecretAccessKey == "" {
		c.AccessKeyID = f.AccessKeyID
		c.SecretAccessKey = f.SecretAccessKey
	}
}

// Validate checks required fields
func (c *Build) Validate() error {
	if c.Project == "" {
		return goerr.New("build project is required (--build-project or BUILD_PROJECT)")
	}
	if (c.AccessKeyID == "") != (c.SecretAccessKey == "") {
		return goerr.New("aws access key id and secret access key must be set together")
	}
	return nil
}

// CodeBuild returns the client configuration
func (c *Build) CodeBuild() codebuild.Config {
	return codebuild.Config{
		Region:          c.Region,
		Endpoint:        c.Endpoint,
		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretAccessKey,
	}
}

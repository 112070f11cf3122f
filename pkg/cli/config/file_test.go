package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/buildhook/pkg/cli/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "buildhook.toml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
[server]
addr = ":9000"

[github]
webhook_secret = "file-secret"

[build]
project = "documentation-service"
region = "us-east-1"

[sentry]
env = "staging"
`)

	f, err := config.LoadFile(path)
	gt.NoError(t, err)
	gt.Equal(t, f.Server.Addr, ":9000")
	gt.Equal(t, f.GitHub.WebhookSecret, "file-secret")
	gt.Equal(t, f.Build.Project, "documentation-service")
	gt.Equal(t, f.Build.Region, "us-east-1")
	gt.Equal(t, f.Sentry.Env, "staging")
}

func TestLoadFile_Empty(t *testing.T) {
	f, err := config.LoadFile("")
	gt.NoError(t, err)
	gt.Equal(t, f.Build.Project, "")
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
		gt.Error(t, err)
	})

	t.Run("broken toml", func(t *testing.T) {
		_, err := config.LoadFile(writeFile(t, "[build\nproject ="))
		gt.Error(t, err)
	})
}

func TestMerge_FlagsWin(t *testing.T) {
	f := config.File{
		Server: config.Server{Addr: ":9000"},
		GitHub: config.GitHub{WebhookSecret: "file-secret"},
		Build:  config.Build{Project: "file-project", Region: "us-east-1"},
	}

	server := config.Server{}
	server.Merge(f.Server)
	gt.Equal(t, server.Addr, ":9000")
	gt.Equal(t, server.WriteTimeout, 30*time.Second)

	github := config.GitHub{WebhookSecret: "flag-secret"}
	github.Merge(f.GitHub)
	gt.Equal(t, github.WebhookSecret, "flag-secret")

	build := config.Build{Project: "flag-project"}
	build.Merge(f.Build)
	gt.Equal(t, build.Project, "flag-project")
	gt.Equal(t, build.Region, "us-east-1")
}

func TestServer_MergeDefaults(t *testing.T) {
	server := config.Server{}
	server.Merge(config.Server{})
	gt.Equal(t, server.Addr, "localhost:8080")
}

func TestValidate(t *testing.T) {
	gt.Error(t, (&config.GitHub{}).Validate())
	gt.NoError(t, (&config.GitHub{WebhookSecret: "x"}).Validate())

	gt.Error(t, (&config.Build{}).Validate())
	gt.NoError(t, (&config.Build{Project: "docs"}).Validate())
	gt.Error(t, (&config.Build{Project: "docs", AccessKeyID: "AKIA"}).Validate())
	gt.NoError(t, (&config.Build{Project: "docs", AccessKeyID: "AKIA", SecretAccessKey: "s"}).Validate())
}

func TestBuild_CodeBuild(t *testing.T) {
	cfg := (&config.Build{
		Project:  "docs",
		Region:   "ap-northeast-1",
		Endpoint: "http://localhost:4566",
	}).CodeBuild()

	gt.Equal(t, cfg.Region, "ap-northeast-1")
	gt.Equal(t, cfg.Endpoint, "http://localhost:4566")
}

func TestSentry_ConfigureDisabled(t *testing.T) {
	s := config.Sentry{}
	gt.False(t, s.Enabled())
	gt.NoError(t, s.Configure())
}

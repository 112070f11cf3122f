package config_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/buildhook/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{
			name:    "Valid level: debug",
			level:   "debug",
			wantErr: false,
		},
		{
			name:    "Valid level: DEBUG (case insensitive)",
			level:   "DEBUG",
			wantErr: false,
		},
		{
			name:    "Valid level: info",
			level:   "info",
			wantErr: false,
		},
		{
			name:    "Valid level: INFO",
			level:   "INFO",
			wantErr: false,
		},
		{
			name:    "Valid level: warn",
			level:   "warn",
			wantErr: false,
		},
		{
			name:    "Valid level: WARN",
			level:   "WARN",
			wantErr: false,
		},
		{
			name:    "Valid level: error",
			level:   "error",
			wantErr: false,
		},
		{
			name:    "Valid level: ERROR",
			level:   "ERROR",
			wantErr: false,
		},
		{
			name:    "Invalid level: invalid",
			level:   "invalid",
			wantErr: true,
		},
		{
			name:    "Invalid level: empty string",
			level:   "",
			wantErr: true,
		},
		{
			name:    "Invalid level: random",
			level:   "random",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &config.Logger{
				Level: tt.level,
				JSON:  false,
			}

			result, err := logger.Configure()
			if (err != nil) != tt.wantErr {
				t.Errorf("Configure() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && result == nil {
				t.Error("Configure() returned nil logger for valid input")
			}

			if tt.wantErr && err == nil {
				t.Error("Configure() should return error for invalid log level")
			}
		})
	}
}

func TestLogger_Configure_JSONFormat(t *testing.T) {
	tests := []struct {
		name string
		json bool
	}{
		{
			name: "JSON format enabled",
			json: true,
		},
		{
			name: "JSON format disabled",
			json: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &config.Logger{
				Level: "info",
				JSON:  tt.json,
			}

			var buf bytes.Buffer
			result, err := logger.New(&buf)
			gt.NoError(t, err)
			gt.V(t, result).NotNil()

			result.Info("test log message")
			gt.S(t, buf.String()).Contains("test log message")
		})
	}
}

func TestLogger_Configure_LevelBehavior(t *testing.T) {
	// Test that different log levels actually work
	levels := []string{"debug", "info", "warn", "error"}

	for _, level := range levels {
		t.Run("Level: "+level, func(t *testing.T) {
			logger := &config.Logger{
				Level: level,
				JSON:  false,
			}

			var buf bytes.Buffer
			result, err := logger.New(&buf)
			if err != nil {
				t.Fatalf("New() unexpected error = %v", err)
			}

			result.Debug("debug message")
			result.Info("info message")
			result.Warn("warn message")
			result.Error("error message")
		})
	}
}

func TestLogger_Flags(t *testing.T) {
	logger := &config.Logger{}
	flags := logger.Flags()

	if len(flags) != 2 {
		t.Errorf("Flags() returned %d flags, want 2", len(flags))
	}

	// Verify flag names
	flagNames := make(map[string]bool)
	for _, flag := range flags {
		switch f := flag.(type) {
		case interface{ Names() []string }:
			names := f.Names()
			if len(names) > 0 {
				flagNames[names[0]] = true
			}
		}
	}

	if !flagNames["log-level"] {
		t.Error("Missing log-level flag")
	}
	if !flagNames["log-json"] {
		t.Error("Missing log-json flag")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := (&config.Logger{Level: "warn", JSON: true}).New(&buf)
	gt.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")

	gt.False(t, bytes.Contains(buf.Bytes(), []byte("quiet")))
	gt.S(t, buf.String()).Contains("loud")
}

func TestLogger_RedactsSecrets(t *testing.T) {
	for _, jsonFormat := range []bool{true, false} {
		var buf bytes.Buffer
		logger, err := (&config.Logger{Level: "info", JSON: jsonFormat}).New(&buf)
		gt.NoError(t, err)

		logger.Info("config loaded",
			slog.Any("github", config.GitHub{WebhookSecret: "very-secret-value"}),
			slog.Any("build", config.Build{Project: "docs", SecretAccessKey: "aws-secret-value"}),
		)

		out := buf.String()
		gt.S(t, out).Contains("docs")
		gt.False(t, bytes.Contains(buf.Bytes(), []byte("very-secret-value")))
		gt.False(t, bytes.Contains(buf.Bytes(), []byte("aws-secret-value")))
	}
}

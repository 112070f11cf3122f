package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/buildhook/pkg/cli/config"
	"github.com/m-mizutani/buildhook/pkg/domain/types"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	app := newApp()

	if err := app.Run(ctx, args); err != nil {
		ctxlog.From(ctx).Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}

func newApp() *cli.Command {
	var (
		loggerCfg config.Logger
		filePath  string
		file      = &config.File{}
	)

	flags := append(loggerCfg.Flags(),
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML configuration file",
			Destination: &filePath,
			Sources:     cli.EnvVars("BUILDHOOK_CONFIG"),
		},
	)

	return &cli.Command{
		Name:    types.ServiceName,
		Usage:   "Start a CodeBuild build for each signed push webhook",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			loaded, err := config.LoadFile(filePath)
			if err != nil {
				return nil, err
			}
			*file = *loaded

			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(file),
			cmdLambda(file),
			cmdSign(),
		},
	}
}

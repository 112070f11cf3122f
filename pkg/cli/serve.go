package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/buildhook/pkg/cli/config"
	controller "github.com/m-mizutani/buildhook/pkg/controller/http"
	"github.com/m-mizutani/buildhook/pkg/domain/interfaces"
	"github.com/m-mizutani/buildhook/pkg/infra/codebuild"
	"github.com/m-mizutani/buildhook/pkg/usecase"
)

// handlerConfig is the configuration shared by serve and lambda
type handlerConfig struct {
	github config.GitHub
	build  config.Build
	sentry config.Sentry
}

func (c *handlerConfig) Flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, c.github.Flags()...)
	flags = append(flags, c.build.Flags()...)
	flags = append(flags, c.sentry.Flags()...)
	return flags
}

// setup merges the configuration file, validates settings and builds the
// webhook use case backed by CodeBuild.
func (c *handlerConfig) setup(ctx context.Context, file *config.File) (interfaces.WebhookUseCase, error) {
	c.github.Merge(file.GitHub)
	c.build.Merge(file.Build)
	c.sentry.Merge(file.Sentry)

	if err := c.github.Validate(); err != nil {
		return nil, err
	}
	if err := c.build.Validate(); err != nil {
		return nil, err
	}
	if err := c.sentry.Configure(); err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Info("Configuration loaded",
		slog.Any("github", c.github),
		slog.Any("build", c.build),
		slog.Bool("sentry", c.sentry.Enabled()),
	)

	starter, err := codebuild.NewClient(c.build.CodeBuild())
	if err != nil {
		return nil, err
	}

	webhookUC, err := usecase.NewWebhook(starter,
		usecase.WithSecret(c.github.WebhookSecret),
		usecase.WithProject(c.build.Project),
	)
	if err != nil {
		return nil, err
	}

	return webhookUC, nil
}

func cmdServe(file *config.File) *cli.Command {
	var (
		serverCfg  config.Server
		handlerCfg handlerConfig
	)

	flags := append(serverCfg.Flags(), handlerCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			serverCfg.Merge(file.Server)

			webhookUC, err := handlerCfg.setup(ctx, file)
			if err != nil {
				return err
			}

			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWriteTimeout(serverCfg.WriteTimeout),
				controller.WithSentry(handlerCfg.sentry.Enabled()),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "HTTP server error", goerr.V("addr", serverCfg.Addr))
				}
				close(errCh)
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case err, ok := <-errCh:
				if ok {
					return err
				}
				return nil
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

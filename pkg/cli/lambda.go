package cli

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/buildhook/pkg/cli/config"
	controller "github.com/m-mizutani/buildhook/pkg/controller/http"
	lambdactl "github.com/m-mizutani/buildhook/pkg/controller/lambda"
)

const (
	lambdaModeProxy  = "proxy"
	lambdaModeDirect = "direct"
)

func cmdLambda(file *config.File) *cli.Command {
	var (
		mode       string
		handlerCfg handlerConfig
	)

	flags := append(handlerCfg.Flags(),
		&cli.StringFlag{
			Name:        "mode",
			Usage:       "Invocation event type: proxy (API Gateway proxy) or direct (signature/body event)",
			Value:       lambdaModeProxy,
			Destination: &mode,
			Sources:     cli.EnvVars("BUILDHOOK_LAMBDA_MODE"),
		},
	)

	return &cli.Command{
		Name:  "lambda",
		Usage: "Run as AWS Lambda function",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if mode != lambdaModeProxy && mode != lambdaModeDirect {
				return goerr.New("invalid lambda mode", goerr.V("mode", mode))
			}

			webhookUC, err := handlerCfg.setup(ctx, file)
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Lambda handler starting", slog.String("mode", mode))

			switch mode {
			case lambdaModeDirect:
				lambda.StartWithOptions(lambdactl.NewDirectHandler(webhookUC).Handle, lambda.WithContext(ctx))
			default:
				server, err := controller.NewServer(ctx, webhookUC,
					controller.WithSentry(handlerCfg.sentry.Enabled()),
				)
				if err != nil {
					return goerr.Wrap(err, "failed to create HTTP handler")
				}
				lambda.StartWithOptions(lambdactl.NewProxyHandler(server.Handler).ProxyWithContext, lambda.WithContext(ctx))
			}

			return nil
		},
	}
}

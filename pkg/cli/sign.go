package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/buildhook/pkg/usecase"
)

func cmdSign() *cli.Command {
	var (
		secret string
		algo   string
	)

	return &cli.Command{
		Name:      "sign",
		Usage:     "Print the signature header value of a payload",
		ArgsUsage: "[FILE|-]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "secret",
				Usage:       "Shared secret of the webhook signature",
				Required:    true,
				Destination: &secret,
				Sources:     cli.EnvVars("BUILDHOOK_WEBHOOK_SECRET", "WEBHOOK_SECRET"),
			},
			&cli.StringFlag{
				Name:        "algo",
				Usage:       "Digest algorithm (sha1, sha256)",
				Value:       string(usecase.AlgorithmSHA1),
				Destination: &algo,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			body, err := readPayload(c)
			if err != nil {
				return err
			}

			signature, err := usecase.Sign(secret, body, usecase.Algorithm(algo))
			if err != nil {
				return err
			}

			header := "X-Hub-Signature"
			if usecase.Algorithm(algo) == usecase.AlgorithmSHA256 {
				header = "X-Hub-Signature-256"
			}

			w := c.Root().Writer
			if w == nil {
				w = os.Stdout
			}
			fmt.Fprintf(w, "%s: %s\n", color.CyanString(header), color.GreenString(signature))
			return nil
		},
	}
}

func readPayload(c *cli.Command) ([]byte, error) {
	path := c.Args().First()
	if path == "" || path == "-" {
		r := c.Root().Reader
		if r == nil {
			r = os.Stdin
		}
		body, err := io.ReadAll(r)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read payload from stdin")
		}
		return body, nil
	}

	body, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read payload", goerr.V("path", path))
	}
	return body, nil
}

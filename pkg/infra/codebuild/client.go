package codebuild

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/codebuild"
	"github.com/aws/aws-sdk-go/service/codebuild/codebuildiface"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buildhook/pkg/domain/interfaces"
	"github.com/m-mizutani/buildhook/pkg/domain/model"
)

// Config holds AWS connection settings for CodeBuild
type Config struct {
	Region          string
	Endpoint        string // Overrides the service endpoint, e.g. for localstack
	AccessKeyID     string
	SecretAccessKey string `masq:"secret"`
}

type client struct {
	api codebuildiface.CodeBuildAPI
}

// NewClient creates a CodeBuild client. Static credentials are used only when
// both key id and secret are set, otherwise the default credential chain.
func NewClient(cfg Config) (interfaces.BuildStarter, error) {
	awsCfg := &aws.Config{}
	if cfg.Region != "" {
		awsCfg = awsCfg.WithRegion(cfg.Region)
	}
	if cfg.Endpoint != "" {
		awsCfg = awsCfg.WithEndpoint(cfg.Endpoint)
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg = awsCfg.WithCredentials(credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, ""))
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create AWS session", goerr.V("region", cfg.Region))
	}

	return NewClientWithAPI(codebuild.New(sess)), nil
}

// NewClientWithAPI wraps an existing CodeBuild API implementation
func NewClientWithAPI(api codebuildiface.CodeBuildAPI) interfaces.BuildStarter {
	return &client{api: api}
}

// StartBuild starts a build with the request's overrides as plaintext
// environment variables
func (c *client) StartBuild(ctx context.Context, req *model.BuildTriggerRequest) (string, error) {
	overrides := make([]*codebuild.EnvironmentVariable, 0, len(req.Overrides))
	for _, o := range req.Overrides {
		overrides = append(overrides, &codebuild.EnvironmentVariable{
			Name:  aws.String(o.Name),
			Value: aws.String(o.Value),
			Type:  aws.String(codebuild.EnvironmentVariableTypePlaintext),
		})
	}

	out, err := c.api.StartBuildWithContext(ctx, &codebuild.StartBuildInput{
		ProjectName:                  aws.String(req.ProjectIdentifier),
		EnvironmentVariablesOverride: overrides,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to start CodeBuild build", goerr.V("project", req.ProjectIdentifier))
	}
	if out == nil || out.Build == nil {
		return "", goerr.New("CodeBuild returned no build", goerr.V("project", req.ProjectIdentifier))
	}

	return aws.StringValue(out.Build.Id), nil
}

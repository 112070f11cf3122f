package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buildhook/pkg/domain/interfaces"
	"github.com/m-mizutani/buildhook/pkg/domain/model"
	"github.com/m-mizutani/buildhook/pkg/domain/types"
)

type webhookUseCase struct {
	starter interfaces.BuildStarter
	secret  string
	project string
}

// WebhookOption configures the webhook use case
type WebhookOption func(*webhookUseCase)

// WithSecret sets the shared secret used to verify deliveries
func WithSecret(secret string) WebhookOption {
	return func(uc *webhookUseCase) {
		uc.secret = secret
	}
}

// WithProject sets the build project started for each push
func WithProject(project string) WebhookOption {
	return func(uc *webhookUseCase) {
		uc.project = project
	}
}

// NewWebhook creates a new instance of WebhookUseCase
func NewWebhook(starter interfaces.BuildStarter, opts ...WebhookOption) (*webhookUseCase, error) {
	uc := &webhookUseCase{
		starter: starter,
	}
	for _, opt := range opts {
		opt(uc)
	}

	if uc.starter == nil {
		return nil, goerr.New("build starter is required")
	}
	if uc.secret == "" {
		return nil, goerr.New("webhook secret is required")
	}
	if uc.project == "" {
		return nil, goerr.New("build project is required")
	}

	return uc, nil
}

// HandleWebhook verifies the delivery signature and, unless the delivery is a
// ping, starts exactly one build. Nothing is retried.
func (uc *webhookUseCase) HandleWebhook(ctx context.Context, event *model.InboundEvent) (*model.BuildTriggerAck, error) {
	logger := ctxlog.From(ctx).With("delivery_id", event.ID)

	if err := Verify(uc.secret, event.Body, event.Signature); err != nil {
		logger.Warn("Rejected webhook delivery", "error", err)
		return nil, err
	}

	push, err := model.ParsePushEvent(event.Body)
	if err != nil {
		logger.Warn("Failed to parse push payload", "error", err)
		return nil, err
	}

	if push.IsPing() {
		logger.Info("Ignored ping request")
		return &model.BuildTriggerAck{
			Status:  model.TriggerStatusIgnored,
			Message: "ignored ping request",
		}, nil
	}

	req := model.NewBuildTriggerRequest(uc.project, push)
	logger.Info("Starting build",
		"project", req.ProjectIdentifier,
		"ref", push.Ref,
		"after", push.After,
		"repository", push.RepositoryOwner+"/"+push.RepositoryName,
		"pusher", push.Pusher,
	)

	buildID, err := uc.starter.StartBuild(ctx, req)
	if err != nil {
		return nil, goerr.Wrap(err, "error: failed to start build",
			goerr.T(types.ErrTagDownstream),
			goerr.V("project", req.ProjectIdentifier),
			goerr.V("ref", push.Ref),
		)
	}

	logger.Info("Build started", "build_id", buildID)
	return &model.BuildTriggerAck{
		Status:  model.TriggerStatusTriggered,
		BuildID: buildID,
		Message: "build started: " + buildID,
	}, nil
}

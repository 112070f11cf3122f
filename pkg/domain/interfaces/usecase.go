package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . WebhookUseCase

import (
	"context"

	"github.com/m-mizutani/buildhook/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook delivery handling
type WebhookUseCase interface {
	// HandleWebhook verifies a delivery and starts a build for it
	HandleWebhook(ctx context.Context, event *model.InboundEvent) (*model.BuildTriggerAck, error)
}

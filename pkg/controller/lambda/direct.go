package lambda

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"

	"github.com/m-mizutani/buildhook/pkg/domain/interfaces"
	"github.com/m-mizutani/buildhook/pkg/domain/model"
	"github.com/m-mizutani/buildhook/pkg/domain/types"
)

// DirectEvent is the payload produced by an API Gateway non-proxy
// integration with the mapping template
//
//	{"signature":"$input.params('X-Hub-Signature')","body":$input.json('$')}
//
// The integration re-renders the payload, so the sender's signature covers the
// compact serialization of Body rather than the bytes the function receives.
type DirectEvent struct {
	Signature string          `json:"signature"`
	Body      json.RawMessage `json:"body"`
}

// DirectHandler serves direct (non-proxy) Lambda invocations. Errors carry
// the "invalid:" or "error:" prefix, which the integration's selection
// patterns map to 403 and 500.
type DirectHandler struct {
	webhookUC interfaces.WebhookUseCase
}

// NewDirectHandler creates a DirectHandler
func NewDirectHandler(webhookUC interfaces.WebhookUseCase) *DirectHandler {
	return &DirectHandler{webhookUC: webhookUC}
}

// Handle is the Lambda handler function
func (h *DirectHandler) Handle(ctx context.Context, event DirectEvent) (string, error) {
	id := uuid.NewString()
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		id = lc.AwsRequestID
	}

	logger := ctxlog.From(ctx).With("aws_request_id", id)
	ctx = ctxlog.With(ctx, logger)

	ack, err := h.webhookUC.HandleWebhook(ctx, &model.InboundEvent{
		ID:         id,
		Signature:  event.Signature,
		Body:       compactBody(event.Body),
		ReceivedAt: time.Now(),
	})
	if err != nil {
		if types.Classify(err) == types.ErrorClassDownstream {
			logger.Error("Failed to handle webhook delivery", "error", err)
		}
		return "", errors.New(types.Message(err))
	}

	return ack.Message, nil
}

// compactBody strips insignificant whitespace from body. Bodies that are not
// valid JSON are returned as is and rejected later.
func compactBody(body json.RawMessage) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return body
	}
	return buf.Bytes()
}

package http

import (
	"io"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buildhook/pkg/domain/interfaces"
	"github.com/m-mizutani/buildhook/pkg/domain/model"
	"github.com/m-mizutani/buildhook/pkg/domain/types"
)

const (
	headerSignature       = "X-Hub-Signature"
	headerSignatureSHA256 = "X-Hub-Signature-256"
	headerDelivery        = "X-GitHub-Delivery"
)

// WebhookHandler handles push webhooks
type WebhookHandler struct {
	webhookUC    interfaces.WebhookUseCase
	maxBodyBytes int64
}

// NewWebhookHandler creates a new WebhookHandler. maxBodyBytes <= 0 means
// DefaultMaxBodyBytes.
func NewWebhookHandler(webhookUC interfaces.WebhookUseCase, maxBodyBytes int64) *WebhookHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &WebhookHandler{
		webhookUC:    webhookUC,
		maxBodyBytes: maxBodyBytes,
	}
}

type webhookResponse struct {
	Status  model.TriggerStatus `json:"status"`
	BuildID string              `json:"build_id,omitempty"`
	Message string              `json:"message"`
}

// Handle processes webhook requests
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	// Read payload as is; the signature covers these exact bytes
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		logger.Warn("Failed to read request body", "error", err)
		h.fail(w, r, goerr.Wrap(err, "invalid: failed to read request body", goerr.T(types.ErrTagInvalid)))
		return
	}
	defer r.Body.Close()

	signature := r.Header.Get(headerSignature)
	if signature == "" {
		signature = r.Header.Get(headerSignatureSHA256)
	}

	id := r.Header.Get(headerDelivery)
	if id == "" {
		id = uuid.NewString()
	}

	ack, err := h.webhookUC.HandleWebhook(ctx, &model.InboundEvent{
		ID:         id,
		Signature:  signature,
		Body:       body,
		ReceivedAt: time.Now(),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, &webhookResponse{
		Status:  ack.Status,
		BuildID: ack.BuildID,
		Message: ack.Message,
	})
}

func (h *WebhookHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch types.Classify(err) {
	case types.ErrorClassInvalid:
		writeError(w, r, types.Message(err), http.StatusForbidden)
	default:
		ctxlog.From(r.Context()).Error("Failed to handle webhook delivery", "error", err)
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.CaptureException(err)
		}
		writeError(w, r, types.Message(err), http.StatusInternalServerError)
	}
}

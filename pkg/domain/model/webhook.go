package model

import (
	"encoding/json"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buildhook/pkg/domain/types"
)

// InboundEvent is a single webhook delivery as received
type InboundEvent struct {
	ID         string    // Retrieved from X-GitHub-Delivery header, generated if absent
	Signature  string    // Retrieved from X-Hub-Signature (or X-Hub-Signature-256) header
	Body       []byte    // Raw payload bytes, the exact input of the signature
	ReceivedAt time.Time // Time when the event was received
}

// PushEvent holds the fields of a push payload used to parameterize a build.
// Missing fields are left empty.
type PushEvent struct {
	Ref             string
	After           string
	Before          string
	Deleted         bool
	RepositoryName  string
	RepositoryOwner string
	Pusher          string

	ping bool
}

// IsPing reports whether the payload is a ping delivery (carries a truthy "zen")
func (e *PushEvent) IsPing() bool {
	return e.ping
}

// ParsePushEvent decodes a push payload. The body must be a JSON object.
func ParsePushEvent(body []byte) (*PushEvent, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, goerr.Wrap(err, "invalid: malformed payload", goerr.T(types.ErrTagInvalid))
	}
	if fields == nil {
		return nil, goerr.New("invalid: payload is not a JSON object", goerr.T(types.ErrTagInvalid))
	}

	if truthy(fields["zen"]) {
		return &PushEvent{ping: true}, nil
	}

	var push github.PushEvent
	if err := json.Unmarshal(body, &push); err != nil {
		return nil, goerr.Wrap(err, "invalid: malformed push payload", goerr.T(types.ErrTagInvalid))
	}

	// Get*() accessors are nil-safe and yield the zero value for missing fields
	return &PushEvent{
		Ref:             push.GetRef(),
		After:           push.GetAfter(),
		Before:          push.GetBefore(),
		Deleted:         push.GetDeleted(),
		RepositoryName:  push.GetRepo().GetName(),
		RepositoryOwner: push.GetRepo().GetOwner().GetName(),
		Pusher:          push.GetPusher().GetName(),
	}, nil
}

// truthy reports whether a JSON value is set to something other than null,
// false, 0 or "". Objects and arrays are truthy even when empty.
func truthy(v json.RawMessage) bool {
	if len(v) == 0 {
		return false
	}

	var value any
	if err := json.Unmarshal(v, &value); err != nil {
		return false
	}

	switch x := value.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}

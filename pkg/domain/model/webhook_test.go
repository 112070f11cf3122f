package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/buildhook/pkg/domain/model"
	"github.com/m-mizutani/buildhook/pkg/domain/types"
)

func TestParsePushEvent(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantPing bool
		want     model.PushEvent
	}{
		{
			name: "Full push payload",
			body: `{"ref":"refs/heads/main","after":"abc","before":"def","deleted":false,` +
				`"repository":{"name":"docs","owner":{"name":"org","login":"org"}},"pusher":{"name":"alice","email":"a@example.com"}}`,
			want: model.PushEvent{
				Ref:             "refs/heads/main",
				After:           "abc",
				Before:          "def",
				RepositoryName:  "docs",
				RepositoryOwner: "org",
				Pusher:          "alice",
			},
		},
		{
			name: "Deleted branch",
			body: `{"ref":"refs/heads/old","deleted":true}`,
			want: model.PushEvent{
				Ref:     "refs/heads/old",
				Deleted: true,
			},
		},
		{
			name: "Missing nested objects",
			body: `{"ref":"refs/tags/v1"}`,
			want: model.PushEvent{Ref: "refs/tags/v1"},
		},
		{
			name: "Empty object",
			body: `{}`,
			want: model.PushEvent{},
		},
		{
			name:     "Ping payload",
			body:     `{"zen":"Keep it logically awesome.","hook_id":1}`,
			wantPing: true,
		},
		{
			name:     "Empty object zen is a ping",
			body:     `{"zen":{}}`,
			wantPing: true,
		},
		{
			name: "Empty zen is not a ping",
			body: `{"zen":"","ref":"refs/heads/main"}`,
			want: model.PushEvent{Ref: "refs/heads/main"},
		},
		{
			name: "False zen is not a ping",
			body: `{"zen":false,"ref":"refs/heads/main"}`,
			want: model.PushEvent{Ref: "refs/heads/main"},
		},
		{
			name: "Zero zen is not a ping",
			body: `{"zen":0,"ref":"refs/heads/main"}`,
			want: model.PushEvent{Ref: "refs/heads/main"},
		},
		{
			name: "Null zen is not a ping",
			body: `{"zen":null,"ref":"refs/heads/main"}`,
			want: model.PushEvent{Ref: "refs/heads/main"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParsePushEvent([]byte(tt.body))
			gt.NoError(t, err)
			gt.Equal(t, got.IsPing(), tt.wantPing)
			if tt.wantPing {
				return
			}
			gt.Equal(t, got.Ref, tt.want.Ref)
			gt.Equal(t, got.After, tt.want.After)
			gt.Equal(t, got.Before, tt.want.Before)
			gt.Equal(t, got.Deleted, tt.want.Deleted)
			gt.Equal(t, got.RepositoryName, tt.want.RepositoryName)
			gt.Equal(t, got.RepositoryOwner, tt.want.RepositoryOwner)
			gt.Equal(t, got.Pusher, tt.want.Pusher)
		})
	}
}

func TestParsePushEvent_Invalid(t *testing.T) {
	bodies := []string{
		``,
		`not json`,
		`null`,
		`[1,2,3]`,
		`{"ref":42}`,
		`{"deleted":"yes"}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			_, err := model.ParsePushEvent([]byte(body))
			gt.Error(t, err)
			gt.Equal(t, types.Classify(err), types.ErrorClassInvalid)
		})
	}
}

func TestNewBuildTriggerRequest(t *testing.T) {
	push := &model.PushEvent{
		Ref:             "refs/heads/main",
		After:           "abc",
		Before:          "def",
		RepositoryName:  "docs",
		RepositoryOwner: "org",
		Pusher:          "alice",
	}

	req := model.NewBuildTriggerRequest("documentation-service", push)
	gt.Equal(t, req.ProjectIdentifier, "documentation-service")

	names := make([]string, 0, len(req.Overrides))
	for _, o := range req.Overrides {
		names = append(names, o.Name)
	}
	gt.Equal(t, names, []string{
		"GIT_REF", "GIT_AFTER", "GIT_BEFORE", "GIT_DELETED", "GIT_NAME", "GIT_OWNER", "GIT_PUSHER",
	})

	ref, ok := req.Override(model.OverrideGitRef)
	gt.True(t, ok)
	gt.Equal(t, ref, "refs/heads/main")

	deleted, ok := req.Override(model.OverrideGitDeleted)
	gt.True(t, ok)
	gt.Equal(t, deleted, "")

	_, ok = req.Override("GIT_UNKNOWN")
	gt.False(t, ok)
}

func TestNewBuildTriggerRequest_Deleted(t *testing.T) {
	req := model.NewBuildTriggerRequest("p", &model.PushEvent{Deleted: true})
	deleted, _ := req.Override(model.OverrideGitDeleted)
	gt.Equal(t, deleted, "true")
}

package interfaces

//go:generate moq -out mocks/build_mock.go -pkg mocks . BuildStarter

import (
	"context"

	"github.com/m-mizutani/buildhook/pkg/domain/model"
)

// BuildStarter starts builds on the build-execution service
type BuildStarter interface {
	// StartBuild starts one build and returns its identifier
	StartBuild(ctx context.Context, req *model.BuildTriggerRequest) (string, error)
}

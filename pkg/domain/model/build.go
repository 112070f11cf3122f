package model

// Names of the environment variables passed to the build
const (
	OverrideGitRef     = "GIT_REF"
	OverrideGitAfter   = "GIT_AFTER"
	OverrideGitBefore  = "GIT_BEFORE"
	OverrideGitDeleted = "GIT_DELETED"
	OverrideGitName    = "GIT_NAME"
	OverrideGitOwner   = "GIT_OWNER"
	OverrideGitPusher  = "GIT_PUSHER"
)

// BuildOverride is a single environment variable override of a build
type BuildOverride struct {
	Name  string
	Value string
}

// BuildTriggerRequest describes one build start
type BuildTriggerRequest struct {
	ProjectIdentifier string
	Overrides         []BuildOverride
}

// NewBuildTriggerRequest derives the build request of a push. The order of
// overrides is fixed.
func NewBuildTriggerRequest(project string, push *PushEvent) *BuildTriggerRequest {
	deleted := ""
	if push.Deleted {
		deleted = "true"
	}

	return &BuildTriggerRequest{
		ProjectIdentifier: project,
		Overrides: []BuildOverride{
			{Name: OverrideGitRef, Value: push.Ref},
			{Name: OverrideGitAfter, Value: push.After},
			{Name: OverrideGitBefore, Value: push.Before},
			{Name: OverrideGitDeleted, Value: deleted},
			{Name: OverrideGitName, Value: push.RepositoryName},
			{Name: OverrideGitOwner, Value: push.RepositoryOwner},
			{Name: OverrideGitPusher, Value: push.Pusher},
		},
	}
}

// Override returns the value of the named override and whether it exists
func (r *BuildTriggerRequest) Override(name string) (string, bool) {
	for _, o := range r.Overrides {
		if o.Name == name {
			return o.Value, true
		}
	}
	return "", false
}

// TriggerStatus is the outcome of a handled delivery
type TriggerStatus string

const (
	TriggerStatusTriggered TriggerStatus = "triggered"
	TriggerStatusIgnored   TriggerStatus = "ignored"
)

// BuildTriggerAck is returned for a successfully handled delivery
type BuildTriggerAck struct {
	Status  TriggerStatus
	BuildID string // Empty when ignored
	Message string
}

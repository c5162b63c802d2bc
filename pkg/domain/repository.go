package domain

import (
	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

// WorkspaceRepository handles the persistence of blueprint artifacts in the .blueprint/ directory.
type WorkspaceRepository interface {
	Initialize() error
	IsInitialized() bool
	SavePlan(p *plan.Plan) error
	LoadPlan() (*plan.Plan, error)
	SavePolicy(cfg *PolicyConfig) error
	LoadPolicy() (*PolicyConfig, error)
	RecordEvent(event Event) error
	LoadEvents() ([]Event, error)
	UpdateUsage(stats UsageStats) error
	LoadUsage() (*UsageStats, error)
}

// PolicyConfig is the serialized representation of policy.yaml
type PolicyConfig struct {
	AllowAI         bool `yaml:"allow_ai"`
	TokenLimit      int  `yaml:"token_limit"`       // Max tokens allowed for this project, 0 = unlimited
	PlanTokenBudget int  `yaml:"plan_token_budget"` // Output budget for the planning call, 0 = default
}

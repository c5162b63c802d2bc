package application

import (
	"fmt"

	"github.com/felixgeelhaar/blueprint/pkg/domain"
	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

// PlanService covers the read side of the persisted plan document.
type PlanService struct {
	repo domain.WorkspaceRepository
}

func NewPlanService(repo domain.WorkspaceRepository) *PlanService {
	return &PlanService{repo: repo}
}

func (s *PlanService) GetPlan() (*plan.Plan, error) {
	return s.repo.LoadPlan()
}

// Validate checks the persisted document against the consumer contract.
// LoadPlan already runs the schema, so a clean load means a valid plan.
func (s *PlanService) Validate() error {
	if _, err := s.repo.LoadPlan(); err != nil {
		return err
	}
	return nil
}

// ListSubtasks returns the planner's ordered subtask list. Runoff entries are
// truncated on read, so a document written or edited outside the pipeline
// still serves a clean list to consumers.
func (s *PlanService) ListSubtasks() ([]string, error) {
	p, err := s.repo.LoadPlan()
	if err != nil {
		return nil, err
	}
	if p.Planner == nil {
		return nil, fmt.Errorf("plan has no planner section")
	}
	return plan.SanitizeSubtasks(p.Planner.Subtasks), nil
}

package application_test

import (
	"testing"

	"github.com/felixgeelhaar/blueprint/pkg/application"
	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
	"github.com/felixgeelhaar/blueprint/pkg/storage"
)

func savedPlanFixture(t *testing.T, p *plan.Plan) *application.PlanService {
	t.Helper()
	repo := storage.NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatal(err)
	}
	if err := repo.SavePlan(p); err != nil {
		t.Fatal(err)
	}
	return application.NewPlanService(repo)
}

func TestListSubtasks_SanitizesPersistedRunoff(t *testing.T) {
	// A document edited outside the pipeline can carry runoff; the read
	// path must still serve a clean list.
	svc := savedPlanFixture(t, &plan.Plan{
		Goal:   "track inventory",
		Domain: plan.DomainGeneral,
		Planner: &plan.PlannerSection{
			Subtasks: []string{"Design schema", "Try Trello for tracking", "junk"},
		},
		Coder: &plan.CoderSection{
			Tasks:         []string{"build it"},
			FileStructure: map[string]string{"src/App.js": "shell"},
		},
	})

	subtasks, err := svc.ListSubtasks()
	if err != nil {
		t.Fatal(err)
	}
	if len(subtasks) != 1 || subtasks[0] != "Design schema" {
		t.Errorf("read path must truncate runoff subtasks, got %v", subtasks)
	}
}

func TestListSubtasks_CleanListUntouched(t *testing.T) {
	svc := savedPlanFixture(t, &plan.Plan{
		Goal:   "track inventory",
		Domain: plan.DomainGeneral,
		Planner: &plan.PlannerSection{
			Subtasks: []string{"Design schema", "Build API"},
		},
		Coder: &plan.CoderSection{
			Tasks:         []string{"build it"},
			FileStructure: map[string]string{"src/App.js": "shell"},
		},
	})

	subtasks, err := svc.ListSubtasks()
	if err != nil {
		t.Fatal(err)
	}
	if len(subtasks) != 2 {
		t.Errorf("clean subtasks must pass through intact, got %v", subtasks)
	}
}

package plan_test

import (
	"reflect"
	"testing"

	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

func TestComplete_StructuralGuarantees(t *testing.T) {
	p := plan.Complete(&plan.Plan{}, "build something", plan.DomainGeneral)

	if p.Goal != "build something" {
		t.Errorf("goal not defaulted: %q", p.Goal)
	}
	if p.ProjectType != "web_application" {
		t.Errorf("project type not defaulted: %q", p.ProjectType)
	}
	if p.Planner == nil || p.Planner.Requirements == nil {
		t.Fatal("planner section not guaranteed")
	}
	if p.Coder == nil || p.Designer == nil {
		t.Fatal("coder and designer sections not guaranteed")
	}
}

func TestComplete_NilPlan(t *testing.T) {
	p := plan.Complete(nil, "from nothing", plan.DomainGeneral)
	if p == nil || p.Goal != "from nothing" {
		t.Fatal("Complete must build a plan from nil")
	}
}

func TestComplete_DomainIsAuthoritative(t *testing.T) {
	p := &plan.Plan{Domain: plan.DomainSocial}
	p = plan.Complete(p, "g", plan.DomainDashboard)
	if p.Domain != plan.DomainDashboard {
		t.Errorf("classifier domain must overwrite the document's claim, got %v", p.Domain)
	}
}

func TestComplete_FillsEmptyListsFromTemplate(t *testing.T) {
	// An empty-but-present list is as useless downstream as a missing one.
	p := &plan.Plan{
		Coder:    &plan.CoderSection{FileStructure: map[string]string{}},
		Designer: &plan.DesignerSection{Pages: []plan.Page{}},
	}
	p = plan.Complete(p, "g", plan.DomainMarketplace)

	tpl, _ := plan.TemplateFor(plan.DomainMarketplace)
	if !reflect.DeepEqual(p.Designer.Pages, tpl.Pages) {
		t.Error("empty pages should be filled from the template")
	}
	if !reflect.DeepEqual(p.Coder.FileStructure, tpl.FileStructure) {
		t.Error("empty file structure should be filled from the template")
	}
}

func TestComplete_GeneralLeavesEmptyListsEmpty(t *testing.T) {
	p := plan.Complete(&plan.Plan{}, "g", plan.DomainGeneral)
	if len(p.Designer.Pages) != 0 {
		t.Error("general domain has no template, pages should stay empty")
	}
	if len(p.Coder.FileStructure) != 0 {
		t.Error("general domain has no template, file structure should stay empty")
	}
}

func TestComplete_NeverRemoves(t *testing.T) {
	p := &plan.Plan{
		Goal:        "original goal",
		ProjectType: "mobile_app",
		Planner: &plan.PlannerSection{
			Subtasks: []string{"existing task"},
		},
		Designer: &plan.DesignerSection{
			Pages: []plan.Page{{Name: "Custom", Components: []string{"Widget"}}},
		},
	}
	p = plan.Complete(p, "new goal", plan.DomainMarketplace)

	if p.Goal != "original goal" {
		t.Error("existing goal was replaced")
	}
	if p.ProjectType != "mobile_app" {
		t.Error("existing project type was replaced")
	}
	if len(p.Planner.Subtasks) != 1 || p.Planner.Subtasks[0] != "existing task" {
		t.Error("existing subtasks were touched")
	}
	if len(p.Designer.Pages) != 1 || p.Designer.Pages[0].Name != "Custom" {
		t.Error("non-empty pages were replaced")
	}
}

func TestComplete_Idempotent(t *testing.T) {
	for _, d := range plan.Domains() {
		once := plan.Complete(&plan.Plan{}, "goal", d)
		twice := plan.Complete(clonePlan(t, once), "goal", d)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Complete is not idempotent for domain %v", d)
		}
	}
}

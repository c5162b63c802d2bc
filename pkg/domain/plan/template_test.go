package plan_test

import (
	"testing"

	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

func TestTemplateFor_Coverage(t *testing.T) {
	for _, d := range []plan.Domain{plan.DomainMarketplace, plan.DomainDashboard, plan.DomainSocial} {
		tpl, ok := plan.TemplateFor(d)
		if !ok {
			t.Errorf("expected a template for %v", d)
			continue
		}
		if len(tpl.CoreFeatures) == 0 || len(tpl.Pages) == 0 || len(tpl.FileStructure) == 0 {
			t.Errorf("template for %v is incomplete", d)
		}
	}

	if _, ok := plan.TemplateFor(plan.DomainGeneral); ok {
		t.Error("general must not have a template")
	}
}

func TestTemplateFor_ReturnsCopies(t *testing.T) {
	tpl, _ := plan.TemplateFor(plan.DomainMarketplace)
	tpl.CoreFeatures[0] = "mutated"
	tpl.FileStructure["src/components/ProductCard.js"] = "mutated"
	tpl.Pages[0].Components[0] = "mutated"

	fresh, _ := plan.TemplateFor(plan.DomainMarketplace)
	if fresh.CoreFeatures[0] == "mutated" {
		t.Error("core features are shared with the catalog")
	}
	if fresh.FileStructure["src/components/ProductCard.js"] == "mutated" {
		t.Error("file structure is shared with the catalog")
	}
	if fresh.Pages[0].Components[0] == "mutated" {
		t.Error("page components are shared with the catalog")
	}
}

package plan

import (
	"fmt"
)

// Fallback synthesizes a complete plan from fixed prose templates when the
// model's output cannot be used at all. Every field the downstream agents
// require is populated; the field completer still runs on the result for
// uniformity but has nothing left to add. Domain template content fully
// replaces the generic defaults when a template exists.
func Fallback(goal string, domain Domain) *Plan {
	name := domain.String()

	p := &Plan{
		Goal:        goal,
		ProjectType: "web_application",
		Domain:      domain,
		Planner: &PlannerSection{
			Subtasks: []string{
				fmt.Sprintf("Gather requirements for the %s project", name),
				fmt.Sprintf("Design the %s data model and architecture", name),
				fmt.Sprintf("Break the %s build into milestones", name),
				"Review requirements and confirm the delivery timeline",
			},
			Requirements: &Requirements{
				CoreFeatures: []string{
					"User authentication",
					"Responsive layout",
					"REST API backend",
				},
				TechStack: "React + Node.js",
				Timeline:  "2-3 weeks",
			},
		},
		Coder: &CoderSection{
			Tasks: []string{
				"Set up the project skeleton",
				"Implement the API layer",
				"Build the UI components",
				"Wire up persistence",
			},
			TechnicalSpecs: map[string]interface{}{
				"frontend":   "React",
				"backend":    "Node",
				"database":   "PostgreSQL",
				"deployment": "Vercel",
			},
			FileStructure: map[string]string{
				"src/App.js":        "Application shell",
				"src/api/client.js": "API client",
			},
		},
		Designer: &DesignerSection{
			Theme: fmt.Sprintf("Clean %s interface with card-based layout", name),
			Pages: []Page{
				{Name: "Home", Components: []string{"Header", "Main content", "Footer"}},
			},
			DesignSystem: &DesignSystem{
				Colors: map[string]string{
					"primary":    "#2196F3",
					"background": "#FFFFFF",
				},
				Typography: map[string]string{
					"headings": "Inter",
					"body":     "Sans",
				},
			},
		},
	}

	if tpl, ok := TemplateFor(domain); ok {
		p.Planner.Requirements.CoreFeatures = tpl.CoreFeatures
		p.Coder.FileStructure = tpl.FileStructure
		p.Designer.Pages = tpl.Pages
	}

	return p
}

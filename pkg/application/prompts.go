package application

import (
	"fmt"

	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

const plannerSystem = "You are an expert technical lead. You turn a one-line project goal into a structured project plan. You respond ONLY with the plan JSON."

// planFormat is the document shape every planning prompt asks for,
// independent of domain.
const planFormat = `{
  "goal": "<the goal, restated>",
  "project_type": "web_application",
  "planner": {
    "subtasks": ["<ordered, concrete subtask>", "..."],
    "requirements": {
      "core_features": ["<feature>", "..."],
      "tech_stack": "<stack summary>",
      "timeline": "<estimate>"
    }
  },
  "coder": {
    "tasks": ["<implementation task>", "..."],
    "technical_specs": { "frontend": "...", "backend": "...", "database": "..." },
    "file_structure": { "<relative/path>": "<one-line purpose>" }
  },
  "designer": {
    "theme": "<visual direction>",
    "pages": [ { "name": "<page>", "components": ["<component>", "..."] } ],
    "design_system": {
      "colors": { "primary": "<hex>" },
      "typography": { "headings": "<font>", "body": "<font>" }
    }
  }
}`

// generalExample is the worked example for goals outside the template
// domains. A filled-in plan anchors the model on concrete content where the
// bare format invites placeholders.
const generalExample = `Goal: Build a weather app
Output:
{
  "goal": "Build a weather app",
  "project_type": "web_application",
  "planner": {
    "subtasks": ["Define app requirements", "Research weather APIs", "Plan architecture", "Create timeline"],
    "requirements": {
      "core_features": ["Current weather", "Forecast", "Search"],
      "tech_stack": "React + OpenWeatherMap",
      "timeline": "2 weeks"
    }
  },
  "coder": {
    "tasks": ["Setup React project", "Create API service", "Build UI components"],
    "technical_specs": { "frontend": "React", "backend": "Node", "database": "None" },
    "file_structure": {
      "src/App.js": "Main component",
      "src/api/weather.js": "API handler"
    }
  },
  "designer": {
    "theme": "Blue card UI with icons",
    "pages": [
      { "name": "Home", "components": ["Search", "Forecast cards"] }
    ],
    "design_system": {
      "colors": { "primary": "#2196F3" },
      "typography": { "headings": "Inter", "body": "Sans" }
    }
  }
}`

// domainExamples holds one worked example per template domain.
var domainExamples = map[plan.Domain]string{
	plan.DomainMarketplace: `Goal: Build a handmade goods marketplace
Output:
{
  "goal": "Build a handmade goods marketplace",
  "project_type": "web_application",
  "planner": {
    "subtasks": ["Define seller onboarding flow", "Design product catalog schema", "Plan cart and checkout", "Create timeline"],
    "requirements": {
      "core_features": ["Product listings", "Shopping cart", "Seller profiles", "Checkout"],
      "tech_stack": "React + Node + PostgreSQL",
      "timeline": "6 weeks"
    }
  },
  "coder": {
    "tasks": ["Setup project scaffolding", "Build product catalog API", "Implement cart state", "Integrate payments"],
    "technical_specs": { "frontend": "React", "backend": "Node", "database": "PostgreSQL" },
    "file_structure": {
      "src/App.js": "Main component",
      "src/components/ProductCard.js": "Product listing card",
      "src/components/Cart.js": "Shopping cart",
      "src/api/products.js": "Catalog API client"
    }
  },
  "designer": {
    "theme": "Warm craft-market palette with photo-forward cards",
    "pages": [
      { "name": "Home", "components": ["Search", "Featured products"] },
      { "name": "Product", "components": ["Gallery", "Add to cart"] },
      { "name": "Checkout", "components": ["Order summary", "Payment form"] }
    ],
    "design_system": {
      "colors": { "primary": "#C0632B" },
      "typography": { "headings": "Playfair Display", "body": "Sans" }
    }
  }
}`,
	plan.DomainDashboard: `Goal: Build a sales analytics dashboard
Output:
{
  "goal": "Build a sales analytics dashboard",
  "project_type": "web_application",
  "planner": {
    "subtasks": ["Identify key sales metrics", "Design widget layout", "Plan data refresh strategy", "Create timeline"],
    "requirements": {
      "core_features": ["Revenue charts", "Filterable date ranges", "Export reports"],
      "tech_stack": "React + D3 + Node",
      "timeline": "4 weeks"
    }
  },
  "coder": {
    "tasks": ["Setup project scaffolding", "Build metrics API", "Implement chart widgets", "Add filter controls"],
    "technical_specs": { "frontend": "React", "backend": "Node", "database": "PostgreSQL" },
    "file_structure": {
      "src/App.js": "Main component",
      "src/components/RevenueChart.js": "Revenue over time chart",
      "src/components/FilterBar.js": "Date and segment filters",
      "src/api/metrics.js": "Metrics API client"
    }
  },
  "designer": {
    "theme": "Dense data grid with dark chart panels",
    "pages": [
      { "name": "Overview", "components": ["KPI tiles", "Revenue chart"] },
      { "name": "Reports", "components": ["Filter bar", "Export button"] },
      { "name": "Settings", "components": ["Data sources", "Refresh interval"] }
    ],
    "design_system": {
      "colors": { "primary": "#1A73E8" },
      "typography": { "headings": "Inter", "body": "Sans" }
    }
  }
}`,
	plan.DomainSocial: `Goal: Build a recipe sharing network
Output:
{
  "goal": "Build a recipe sharing network",
  "project_type": "web_application",
  "planner": {
    "subtasks": ["Define profile and feed model", "Design post composer", "Plan comment and like flows", "Create timeline"],
    "requirements": {
      "core_features": ["User profiles", "Recipe feed", "Comments", "Likes"],
      "tech_stack": "React + Node + PostgreSQL",
      "timeline": "5 weeks"
    }
  },
  "coder": {
    "tasks": ["Setup project scaffolding", "Build auth and profiles", "Implement feed API", "Add interactions"],
    "technical_specs": { "frontend": "React", "backend": "Node", "database": "PostgreSQL" },
    "file_structure": {
      "src/App.js": "Main component",
      "src/components/Feed.js": "Recipe feed",
      "src/components/Profile.js": "User profile",
      "src/api/posts.js": "Feed API client"
    }
  },
  "designer": {
    "theme": "Bright food photography with card feed",
    "pages": [
      { "name": "Feed", "components": ["Post composer", "Recipe cards"] },
      { "name": "Profile", "components": ["Avatar", "Recipe grid"] },
      { "name": "Recipe", "components": ["Steps", "Comments"] }
    ],
    "design_system": {
      "colors": { "primary": "#E8590C" },
      "typography": { "headings": "Poppins", "body": "Sans" }
    }
  }
}`,
}

// domainGuidance steers the model toward domain-specific content instead of
// boilerplate. General goals get no extra steering.
var domainGuidance = map[plan.Domain]string{
	plan.DomainMarketplace: `This is a marketplace project. The plan must cover product listings,
a product detail view, a shopping cart, seller flows, and checkout. Name real
component files such as src/components/ProductCard.js in the file structure.`,
	plan.DomainDashboard: `This is a dashboard project. The plan must cover data visualization
widgets, filterable views, and a settings page. Name chart and widget
components in the file structure.`,
	plan.DomainSocial: `This is a social project. The plan must cover user profiles, a post
feed, and interactions such as comments or likes. Name feed and profile
components in the file structure.`,
}

// buildPlanPrompt assembles the domain-conditioned planning prompt: the
// format, one worked example selected by domain, optional domain guidance,
// and the goal.
func buildPlanPrompt(goal string, domain plan.Domain) string {
	example, ok := domainExamples[domain]
	if !ok {
		example = generalExample
	}

	prompt := fmt.Sprintf(`Task: Produce a complete project plan for the goal below.

Return ONLY a JSON object with no surrounding text, no markdown, and no code fences.
Do NOT return placeholder values or the schema itself.

Format:
%s

EXAMPLE:
%s

`, planFormat, example)

	if guidance, ok := domainGuidance[domain]; ok {
		prompt += guidance + "\n\n"
	}

	prompt += fmt.Sprintf("NOW DO THIS:\nGoal: %s\nOutput:\n", goal)
	return prompt
}

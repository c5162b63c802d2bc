package wiring

import (
	"fmt"

	"github.com/felixgeelhaar/blueprint/pkg/ai"
	"github.com/felixgeelhaar/blueprint/pkg/application"
	domainai "github.com/felixgeelhaar/blueprint/pkg/domain/ai"
)

// AppServices exposes the application layer services wired together with a workspace.
type AppServices struct {
	Workspace *Workspace
	Init      *application.InitService
	Planning  *application.PlanningService
	Plan      *application.PlanService
	Audit     *application.AuditService // Concrete service for read operations like GetPlanRate
	Provider  domainai.Provider
}

// BuildAppServices constructs the workbench of services and AI provider wiring for a repo root.
func BuildAppServices(root string) (*AppServices, error) {
	return buildAppServices(root, LoadAIProvider)
}

// BuildAppServicesWithProvider allows callers to supply a custom AI provider resolver.
func BuildAppServicesWithProvider(root string, resolver func(string) (domainai.Provider, error)) (*AppServices, error) {
	return buildAppServices(root, resolver)
}

func buildAppServices(root string, resolver func(string) (domainai.Provider, error)) (*AppServices, error) {
	workspace := NewWorkspace(root)
	provider, err := resolver(root)
	var loadErr error
	if err != nil {
		loadErr = fmt.Errorf("AI provider config fallback: %w", err)
		fallback, fallbackErr := ai.GetDefaultProvider("ollama", "llama3")
		if fallbackErr != nil {
			return nil, fmt.Errorf("fallback AI provider failed: %w", fallbackErr)
		}
		provider = ai.NewResilientProvider(fallback)
	}

	services := &AppServices{
		Workspace: workspace,
		Init:      application.NewInitService(workspace.Repo, workspace.Audit),
		Planning:  application.NewPlanningService(workspace.Repo, provider, workspace.Audit),
		Plan:      application.NewPlanService(workspace.Repo),
		Audit:     workspace.Audit,
		Provider:  provider,
	}

	return services, loadErr
}

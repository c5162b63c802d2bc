package application

import (
	"fmt"

	"github.com/felixgeelhaar/blueprint/pkg/domain"
)

type InitService struct {
	repo  domain.WorkspaceRepository
	audit domain.AuditLogger
}

func NewInitService(repo domain.WorkspaceRepository, audit domain.AuditLogger) *InitService {
	return &InitService{repo: repo, audit: audit}
}

// InitializeWorkspace creates the .blueprint directory and seeds a default
// policy. Re-running on an existing workspace is harmless.
func (s *InitService) InitializeWorkspace(name string) error {
	if err := s.repo.Initialize(); err != nil {
		return fmt.Errorf("initialize workspace: %w", err)
	}

	if err := s.repo.SavePolicy(&domain.PolicyConfig{AllowAI: true}); err != nil {
		return fmt.Errorf("seed default policy: %w", err)
	}

	return s.audit.Log("workspace.initialized", "human", map[string]interface{}{
		"name": name,
	})
}

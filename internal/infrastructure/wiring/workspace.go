package wiring

import (
	"github.com/felixgeelhaar/blueprint/pkg/application"
	"github.com/felixgeelhaar/blueprint/pkg/storage"
)

// Workspace bundles core infrastructure dependencies.
type Workspace struct {
	Repo  *storage.FilesystemRepository
	Audit *application.AuditService
}

func NewWorkspace(root string) *Workspace {
	repo := storage.NewFilesystemRepository(root)

	return &Workspace{
		Repo:  repo,
		Audit: application.NewAuditService(repo),
	}
}

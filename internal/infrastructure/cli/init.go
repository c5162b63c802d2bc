package cli

import (
	"fmt"

	"github.com/felixgeelhaar/blueprint/pkg/application"
	"github.com/felixgeelhaar/blueprint/pkg/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Initialize a new blueprint workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getProjectRoot()
		if err != nil {
			return err
		}
		repo := storage.NewFilesystemRepository(root)
		audit := application.NewAuditService(repo)
		service := application.NewInitService(repo, audit)

		projectName := "new-project"
		if len(args) > 0 {
			projectName = args[0]
		}

		if err := service.InitializeWorkspace(projectName); err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}

		fmt.Printf("Successfully initialized blueprint workspace: %s\n", projectName)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Inspect and change workspace policy",
}

var policyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		cfg, err := services.Workspace.Repo.LoadPolicy()
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("AI allowed: %v\n", cfg.AllowAI)
		if cfg.TokenLimit > 0 {
			fmt.Printf("Token limit: %d\n", cfg.TokenLimit)
		} else {
			fmt.Println("Token limit: unlimited")
		}
		if cfg.PlanTokenBudget > 0 {
			fmt.Printf("Plan token budget: %d\n", cfg.PlanTokenBudget)
		}
		return nil
	},
}

var policySetLimitCmd = &cobra.Command{
	Use:   "set-limit <tokens>",
	Short: "Set the total AI token limit (0 for unlimited)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := strconv.Atoi(args[0])
		if err != nil || limit < 0 {
			return fmt.Errorf("invalid token limit %q", args[0])
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		cfg, err := services.Workspace.Repo.LoadPolicy()
		if err != nil {
			return MapError(err)
		}
		cfg.TokenLimit = limit
		if err := services.Workspace.Repo.SavePolicy(cfg); err != nil {
			return MapError(err)
		}

		fmt.Printf("Token limit set to %d\n", limit)
		return nil
	},
}

func init() {
	policyCmd.AddCommand(policyShowCmd)
	policyCmd.AddCommand(policySetLimitCmd)
	RootCmd.AddCommand(policyCmd)
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and inspect project plans",
}

var planJSONOutput bool

var planGenerateCmd = &cobra.Command{
	Use:   "generate <goal>",
	Short: "Generate a plan from a free-text goal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		goal := strings.Join(args, " ")
		result, err := services.Planning.GeneratePlan(cmd.Context(), goal)
		if err != nil {
			return MapError(err)
		}

		p := result.Plan
		fmt.Printf("Successfully generated plan: %s\n", p.ID)
		fmt.Printf("Domain: %s\n", p.Domain)
		if result.UsedFallback {
			fmt.Println("Note: model output was unusable, a fallback plan was generated.")
		}
		if result.Degraded {
			fmt.Printf("Degraded: %s\n", result.DegradedReason)
		}

		fmt.Printf("Subtasks (%d):\n", len(result.Subtasks))
		for _, task := range result.Subtasks {
			fmt.Printf("- %s\n", task)
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the persisted plan document",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		p, err := services.Plan.GetPlan()
		if err != nil {
			return MapError(err)
		}

		if planJSONOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}

		fmt.Printf("Goal: %s\n", p.Goal)
		fmt.Printf("Domain: %s\n", p.Domain)
		fmt.Printf("Project type: %s\n", p.ProjectType)
		if !p.GeneratedAt.IsZero() {
			fmt.Printf("Generated: %s\n", p.GeneratedAt.Format("2006-01-02 15:04:05"))
		}
		if p.Planner != nil && p.Planner.Requirements != nil {
			fmt.Printf("Core features (%d):\n", len(p.Planner.Requirements.CoreFeatures))
			for _, f := range p.Planner.Requirements.CoreFeatures {
				fmt.Printf("- %s\n", f)
			}
		}
		if p.Designer != nil {
			fmt.Printf("Pages (%d):\n", len(p.Designer.Pages))
			for _, page := range p.Designer.Pages {
				fmt.Printf("- %s (%s)\n", page.Name, strings.Join(page.Components, ", "))
			}
		}
		return nil
	},
}

var planValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the persisted plan against the consumer contract",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		if err := services.Plan.Validate(); err != nil {
			return MapError(fmt.Errorf("plan validation failed: %w", err))
		}

		fmt.Println("Plan is valid.")
		return nil
	},
}

var planTasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the planner subtasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		subtasks, err := services.Plan.ListSubtasks()
		if err != nil {
			return MapError(err)
		}

		for i, task := range subtasks {
			fmt.Printf("%d. %s\n", i+1, task)
		}
		return nil
	},
}

func init() {
	planShowCmd.Flags().BoolVar(&planJSONOutput, "json", false, "Output in JSON format")

	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planValidateCmd)
	planCmd.AddCommand(planTasksCmd)
	RootCmd.AddCommand(planCmd)
}

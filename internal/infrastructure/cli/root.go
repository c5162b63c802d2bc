package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var projectPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "blueprint",
	Version: Version,
	Short:   "Turn a one-line goal into a structured project plan",
	Long: `Blueprint turns a free-text project goal into a structured plan for
downstream planning, coding, and design agents.
It classifies the goal, prompts a model, repairs shallow output, and
guarantees the persisted plan.json is structurally complete.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&projectPath, "project", "", "Path to the project root (defaults to the current directory)")
}

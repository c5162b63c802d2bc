package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/felixgeelhaar/blueprint/internal/infrastructure/watch"
	"github.com/spf13/cobra"
)

var watchDebounceMs int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch plan.json for changes and revalidate it automatically",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getProjectRoot()
		if err != nil {
			return err
		}
		services, err := loadServices(root)
		if err != nil {
			return err
		}

		planSvc := services.Plan

		watcher, err := watch.NewPlanWatcher(root, time.Duration(watchDebounceMs)*time.Millisecond, func(ev watch.ChangeEvent) {
			fmt.Printf("\nPlan change detected (%s) at %s\n", ev.ChangeType, time.Now().Format("15:04:05"))
			if err := planSvc.Validate(); err != nil {
				fmt.Printf("Plan is invalid: %v\n", err)
				return
			}
			fmt.Println("Plan is valid.")
		})
		if err != nil {
			return MapError(err)
		}

		fmt.Println("Watching .blueprint/plan.json for changes... (Ctrl+C to stop)")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
			return MapError(err)
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().IntVar(&watchDebounceMs, "debounce", 500, "Debounce window in milliseconds")
	RootCmd.AddCommand(watchCmd)
}

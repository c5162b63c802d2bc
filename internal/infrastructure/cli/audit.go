package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the workspace audit trail",
}

var auditTimelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the recorded audit events in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		events, err := services.Audit.GetTimeline()
		if err != nil {
			return MapError(err)
		}

		for _, e := range events {
			fmt.Printf("%s  [%s]  %s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Actor, e.Action)
		}
		return nil
	},
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the integrity of the audit hash chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		violations, err := services.Audit.VerifyIntegrity()
		if err != nil {
			return MapError(err)
		}

		if len(violations) == 0 {
			fmt.Println("Audit trail intact.")
			return nil
		}

		fmt.Printf("Audit trail has %d violations:\n", len(violations))
		for _, v := range violations {
			fmt.Printf("- %s\n", v)
		}
		return fmt.Errorf("audit trail integrity check failed")
	},
}

func init() {
	auditCmd.AddCommand(auditTimelineCmd)
	auditCmd.AddCommand(auditVerifyCmd)
	RootCmd.AddCommand(auditCmd)
}

package cmd

import (
	"wolfscheduler/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to browse the catalog, edit your schedule, and export it interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadScheduler(cmd)
		if err != nil {
			return err
		}
		return tui.RunTUI(s)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

package cmd

import (
	"fmt"
	"time"

	"wolfscheduler/pkg/config"
	"wolfscheduler/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage wolfscheduler configuration",
	Long:  "View or edit your local configuration settings (default catalog, export file, term dates for calendar export).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		for flag, target := range map[string]*string{
			"catalog":    &cfg.CatalogPath,
			"export":     &cfg.ExportPath,
			"title":      &cfg.ScheduleTitle,
			"term-start": &cfg.TermStart,
			"term-end":   &cfg.TermEnd,
			"timezone":   &cfg.Timezone,
			"accent":     &cfg.AccentColor,
			"log-level":  &cfg.LogLevel,
		} {
			if cmd.Flags().Changed(flag) {
				*target, _ = cmd.Flags().GetString(flag)
				changed = true
			}
		}

		// If no flags are given, launch the interactive TUI flow
		if !changed {
			return tui.RunConfigTUI()
		}

		if err := validateConfig(cfg); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Println("✅ Configuration saved.")
		return nil
	},
}

func validateConfig(cfg *config.AppConfig) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	for _, d := range []string{cfg.TermStart, cfg.TermEnd} {
		if d == "" {
			continue
		}
		if _, err := config.ParseDate(d, time.UTC); err != nil {
			return err
		}
	}
	if cfg.TermStart != "" && cfg.TermEnd != "" {
		if _, _, err := cfg.Term(loc); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	// --catalog and --log-level are persistent flags on the root command
	configCmd.Flags().String("export", "", "Default export file")
	configCmd.Flags().String("title", "", "Default schedule title")
	configCmd.Flags().String("term-start", "", "First day of classes (YYYY-MM-DD)")
	configCmd.Flags().String("term-end", "", "Last day of classes (YYYY-MM-DD)")
	configCmd.Flags().String("timezone", "", "IANA time zone for calendar export")
	configCmd.Flags().String("accent", "", "Accent color (ANSI number or #RRGGBB)")
}

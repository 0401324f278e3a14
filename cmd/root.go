package cmd

import (
	"fmt"
	"os"

	"wolfscheduler/pkg/apperrors"
	"wolfscheduler/pkg/config"
	"wolfscheduler/pkg/logger"
	"wolfscheduler/pkg/scheduler"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wolfscheduler",
	Short: "A CLI and TUI for building a course schedule",
	Long: `wolfscheduler lets students browse a course catalog file, build a
personal schedule, and export it as a course file or an .ics calendar.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for rejected input and 1 for everything else.
func exitCode(err error) int {
	if apperrors.Is(err, apperrors.ErrInvalidArgument, apperrors.ErrNotFound) {
		return 2
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringP("catalog", "c", "", "Course catalog file (defaults to the configured catalog)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
}

// newLogger builds the stderr logger from the flag, falling back to config.
func newLogger(cmd *cobra.Command, cfg *config.AppConfig) zerolog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = cfg.LogLevel
	}
	return logger.New(logger.Config{Level: level, Pretty: true})
}

// loadScheduler resolves the catalog path and loads the scheduler. A missing
// catalog ends the command.
func loadScheduler(cmd *cobra.Command) (*scheduler.Scheduler, *config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	catalogPath, _ := cmd.Flags().GetString("catalog")
	if catalogPath == "" {
		catalogPath = cfg.CatalogPath
	}
	if catalogPath == "" {
		return nil, nil, fmt.Errorf("no catalog file given. Use --catalog or run 'wolfscheduler config --catalog <file>'")
	}

	log := newLogger(cmd, cfg)
	s, err := scheduler.New(catalogPath, scheduler.WithLogger(log))
	if err != nil {
		return nil, nil, fmt.Errorf("could not load catalog %s: %w", catalogPath, err)
	}

	if cfg.ScheduleTitle != "" {
		if err := s.SetTitle(cfg.ScheduleTitle); err != nil {
			return nil, nil, err
		}
	}

	return s, cfg, nil
}

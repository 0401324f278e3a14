package cmd

import (
	"fmt"
	"strings"

	"wolfscheduler/pkg/apperrors"
	"wolfscheduler/pkg/config"
	"wolfscheduler/pkg/exporter"
	"wolfscheduler/pkg/scheduler"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a schedule from the catalog and export it",
	Long: `Add courses to a schedule without the interactive TUI and write it out
as a course file and, optionally, an .ics calendar.

Courses are given as NAME/SECTION, e.g. --add "CSC 216/001".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, err := loadScheduler(cmd)
		if err != nil {
			return err
		}

		adds, _ := cmd.Flags().GetStringArray("add")
		output, _ := cmd.Flags().GetString("output")
		title, _ := cmd.Flags().GetString("title")
		icsPath, _ := cmd.Flags().GetString("ics")

		if title != "" {
			if err := s.SetTitle(title); err != nil {
				return err
			}
		}

		for _, entry := range adds {
			if err := addCourse(s, entry); err != nil {
				return err
			}
		}

		if output == "" {
			output = cfg.ExportPath
		}
		if output == "" {
			output = "schedule.txt"
		}
		if err := s.ExportSchedule(output); err != nil {
			return err
		}
		fmt.Printf("Successfully exported %d courses (%d credit hours) to %s\n", len(s.Schedule()), s.TotalCredits(), output)

		if icsPath != "" {
			if err := writeICS(s, cfg, icsPath); err != nil {
				return err
			}
			fmt.Printf("Successfully exported calendar to %s\n", icsPath)
		}
		return nil
	},
}

func addCourse(s *scheduler.Scheduler, entry string) error {
	name, section, ok := strings.Cut(entry, "/")
	if !ok {
		return fmt.Errorf("invalid course %q: expected NAME/SECTION", entry)
	}

	added, err := s.AddToSchedule(strings.TrimSpace(name), strings.TrimSpace(section))
	if err != nil {
		return err
	}
	if !added {
		return apperrors.NotFound(fmt.Sprintf("course %s is not in the catalog", entry))
	}
	return nil
}

func writeICS(s *scheduler.Scheduler, cfg *config.AppConfig, path string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	start, end, err := cfg.Term(loc)
	if err != nil {
		return err
	}

	return exporter.WriteFile(path, s.Title(), s.Courses(), exporter.Term{Start: start, End: end})
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringArrayP("add", "a", nil, "Course to add as NAME/SECTION (repeatable)")
	buildCmd.Flags().StringP("output", "o", "", "Output course file (defaults to the configured export file, then schedule.txt)")
	buildCmd.Flags().StringP("title", "t", "", "Schedule title")
	buildCmd.Flags().String("ics", "", "Also write an .ics calendar to this path (needs configured term dates)")
	buildCmd.MarkFlagRequired("add")
}

package cmd

import (
	"fmt"
	"strings"
	"time"

	"wolfscheduler/pkg/scheduler"
	"wolfscheduler/pkg/tui"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var dayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the courses in the catalog",
	Long:  `Print every valid course in the catalog file, optionally filtered to one meeting day, and report lines that were skipped while loading.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadScheduler(cmd)
		if err != nil {
			return err
		}

		day, _ := cmd.Flags().GetString("day")
		showSkipped, _ := cmd.Flags().GetBool("skipped")

		titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true).Padding(1, 0)

		rows := s.Catalog()
		heading := fmt.Sprintf("Course Catalog (%d courses)", len(rows))
		if day != "" {
			day = strings.ToLower(strings.TrimSpace(day))
			weekday, ok := dayNames[day]
			if !ok {
				return fmt.Errorf("unknown day %q (use monday through friday)", day)
			}
			rows = meetingOn(s, rows, weekday)
			heading = fmt.Sprintf("Courses meeting on %s (%d)", cases.Title(language.English).String(day), len(rows))
		}

		fmt.Println(titleStyle.Render(heading))
		if len(rows) == 0 {
			fmt.Println("No courses found.")
		} else {
			fmt.Print(tui.RenderCourseRows(rows))
		}

		if showSkipped {
			printSkipped(s)
		}
		return nil
	},
}

func meetingOn(s *scheduler.Scheduler, rows []scheduler.CourseRow, day time.Weekday) []scheduler.CourseRow {
	var out []scheduler.CourseRow
	for _, r := range rows {
		c, ok := s.FindInCatalog(r.Name, r.Section)
		if !ok {
			continue
		}
		for _, d := range c.Days() {
			if d == day {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func printSkipped(s *scheduler.Scheduler) {
	skipped := s.Skipped()
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	fmt.Println(warnStyle.Render(fmt.Sprintf("\n%d catalog line(s) skipped", len(skipped))))
	for _, sk := range skipped {
		fmt.Printf("  line %d (%s): %s\n", sk.Line, sk.Reason, sk.Text)
	}
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringP("day", "d", "", "Only show courses meeting on this day (monday-friday)")
	catalogCmd.Flags().Bool("skipped", false, "Also list catalog lines that were skipped")
}

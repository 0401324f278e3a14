package tui

import (
	"fmt"
	"strconv"
	"strings"

	"wolfscheduler/pkg/scheduler"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable lays out rows under headers with the accent color on the
// header line. Every row must have len(headers) cells.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(accentStyle.Bold(true).Render(joinPadded(headers, widths)))
	b.WriteString("\n")

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	b.WriteString(mutedStyle.Render(strings.Join(rule, "  ")))
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString(joinPadded(row, widths))
		b.WriteString("\n")
	}
	return b.String()
}

func joinPadded(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}

// RenderCourseRows renders the short catalog/schedule projection.
func RenderCourseRows(rows []scheduler.CourseRow) string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Name, r.Section, r.Title})
	}
	return RenderTable([]string{"Name", "Section", "Title"}, cells)
}

// RenderFullSchedule renders the detailed schedule projection.
func RenderFullSchedule(rows []scheduler.ScheduleRow) string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Name, r.Section, r.Title, strconv.Itoa(r.Credits), r.InstructorID, r.Meeting})
	}
	return RenderTable([]string{"Name", "Section", "Title", "Credits", "Instructor", "Meeting Days"}, cells)
}

func scheduleSummary(s *scheduler.Scheduler) string {
	n := len(s.Schedule())
	if n == 0 {
		return "Your schedule is empty."
	}
	return fmt.Sprintf("%d course(s), %d credit hours", n, s.TotalCredits())
}

func printCatalog(s *scheduler.Scheduler) {
	rows := s.Catalog()
	fmt.Println(accentStyle.Render(fmt.Sprintf("\nCourse Catalog (%d courses)", len(rows))))
	if len(rows) == 0 {
		fmt.Println(mutedStyle.Render("The catalog is empty."))
		return
	}
	fmt.Println(RenderCourseRows(rows))
}

func printSchedule(s *scheduler.Scheduler) {
	rows := s.Schedule()
	fmt.Println(accentStyle.Render("\n" + s.Title()))
	if len(rows) == 0 {
		fmt.Println(mutedStyle.Render("No courses scheduled yet.\n"))
		return
	}
	fmt.Println(RenderCourseRows(rows))
}

func printFullSchedule(s *scheduler.Scheduler) {
	rows := s.FullSchedule()
	fmt.Println(accentStyle.Render("\n" + s.Title()))
	if len(rows) == 0 {
		fmt.Println(mutedStyle.Render("No courses scheduled yet.\n"))
		return
	}
	fmt.Print(RenderFullSchedule(rows))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("Total credit hours: %d\n", s.TotalCredits())))
}

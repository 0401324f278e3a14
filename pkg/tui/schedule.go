package tui

import (
	"fmt"
	"strings"

	"wolfscheduler/pkg/config"
	"wolfscheduler/pkg/exporter"
	"wolfscheduler/pkg/scheduler"

	"github.com/charmbracelet/huh"
)

// courseKey joins name and section into a single option value.
func courseKey(name, section string) string {
	return name + "|" + section
}

func splitCourseKey(key string) (name, section string) {
	name, section, _ = strings.Cut(key, "|")
	return name, section
}

func courseOptions(rows []scheduler.CourseRow) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(rows))
	for _, r := range rows {
		label := fmt.Sprintf("%s-%s  %s", r.Name, r.Section, r.Title)
		opts = append(opts, huh.NewOption(label, courseKey(r.Name, r.Section)))
	}
	return opts
}

func pickCourse(title string, rows []scheduler.CourseRow) (string, string, error) {
	var selected string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description("Enter = confirm, / = filter").
				Options(courseOptions(rows)...).
				Value(&selected).
				Height(14),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", "", err
	}

	name, section := splitCourseKey(selected)
	return name, section, nil
}

func runCourseDetailsTUI(s *scheduler.Scheduler) error {
	rows := s.Catalog()
	if len(rows) == 0 {
		fmt.Println(errorStyle.Render("The catalog is empty!"))
		return nil
	}

	name, section, err := pickCourse("Which course would you like to see?", rows)
	if err != nil {
		return err
	}

	c, ok := s.FindInCatalog(name, section)
	if !ok {
		fmt.Println(errorStyle.Render("Course doesn't exist."))
		return nil
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n%s-%s", c.Name(), c.Section())))
	fmt.Printf("Title:      %s\n", c.Title())
	fmt.Printf("Credits:    %d\n", c.Credits())
	fmt.Printf("Instructor: %s\n", c.InstructorID())
	fmt.Printf("Meeting:    %s\n\n", c.MeetingString())
	return nil
}

func runAddCourseTUI(s *scheduler.Scheduler) error {
	rows := s.Catalog()
	if len(rows) == 0 {
		fmt.Println(errorStyle.Render("No course selected in the catalog."))
		return nil
	}

	name, section, err := pickCourse("Add a course to your schedule", rows)
	if err != nil {
		return err
	}

	added, err := s.AddToSchedule(name, section)
	switch {
	case err != nil:
		fmt.Println(errorStyle.Render(err.Error()))
	case !added:
		fmt.Println(errorStyle.Render("Course doesn't exist."))
	default:
		fmt.Println(accentStyle.Render(fmt.Sprintf("✅ Added %s-%s", name, section)))
	}

	printSchedule(s)
	return nil
}

func runRemoveCourseTUI(s *scheduler.Scheduler) error {
	rows := s.Schedule()
	if len(rows) == 0 {
		fmt.Println(errorStyle.Render("No item selected in the schedule."))
		return nil
	}

	name, section, err := pickCourse("Remove a course from your schedule", rows)
	if err != nil {
		return err
	}

	if s.RemoveFromSchedule(name, section) {
		fmt.Println(accentStyle.Render(fmt.Sprintf("✅ Removed %s-%s", name, section)))
	}

	printSchedule(s)
	return nil
}

func runResetTUI(s *scheduler.Scheduler) error {
	var confirm bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Remove every course from your schedule?").
				Affirmative("Reset").
				Negative("Cancel").
				Value(&confirm),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if confirm {
		s.ResetSchedule()
		printSchedule(s)
	}
	return nil
}

func runSetTitleTUI(s *scheduler.Scheduler) error {
	title := s.Title()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schedule title").
				Value(&title),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if err := s.SetTitle(title); err != nil {
		fmt.Println(errorStyle.Render("Invalid title."))
		return nil
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("✅ Schedule title set to %q", s.Title())))
	return nil
}

func promptPath(title, defaultPath string) (string, error) {
	path := defaultPath

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&path).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(path), nil
}

func runExportTUI(s *scheduler.Scheduler) error {
	cfg, _ := config.Load()
	defaultPath := "schedule.txt"
	if cfg != nil && cfg.ExportPath != "" {
		defaultPath = cfg.ExportPath
	}

	path, err := promptPath("Export schedule to", defaultPath)
	if err != nil {
		return err
	}

	// A failed export leaves the schedule untouched; the user can retry
	if err := s.ExportSchedule(path); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d courses to %s\n", len(s.Schedule()), path)))
	return nil
}

func runExportICSTUI(s *scheduler.Scheduler) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}
	start, end, err := cfg.Term(loc)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	path, err := promptPath("Export calendar to", "schedule.ics")
	if err != nil {
		return err
	}
	if !strings.HasSuffix(path, ".ics") {
		path += ".ics"
	}

	courses := s.Courses()
	if err := exporter.WriteFile(path, s.Title(), courses, exporter.Term{Start: start, End: end}); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	timed := 0
	for _, c := range courses {
		if !c.IsArranged() {
			timed++
		}
	}
	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d weekly course events to %s\n", timed, path)))
	return nil
}

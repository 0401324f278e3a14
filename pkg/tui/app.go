package tui

import (
	"errors"

	"wolfscheduler/pkg/config"
	"wolfscheduler/pkg/scheduler"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// These act as fallbacks initially, but are replaced by GetTheme()
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("166"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// defaultAccent is Wolfpack red.
const defaultAccent = "160"

// GetTheme loads the user's saved accent color and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := defaultAccent

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Printed tables and status lines share the accent with the forms
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a new huh.Theme instantiated with the provided lipgloss color string.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunTUI launches the main menu. The scheduler is owned by the caller and
// stays alive across menu actions.
func RunTUI(s *scheduler.Scheduler) error {
	for {
		var action string

		menu := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(s.Title()).
					Description(scheduleSummary(s)).
					Options(
						huh.NewOption("📚 Browse Course Catalog", "catalog"),
						huh.NewOption("🔍 Course Details", "details"),
						huh.NewOption("➕ Add Course", "add"),
						huh.NewOption("➖ Remove Course", "remove"),
						huh.NewOption("♻️ Reset Schedule", "reset"),
						huh.NewOption("🏷️ Set Schedule Title", "title"),
						huh.NewOption("📋 Display Final Schedule", "display"),
						huh.NewOption("💾 Export Schedule", "export"),
						huh.NewOption("📅 Export Calendar (.ics)", "ics"),
						huh.NewOption("⚙️ Settings", "config"),
						huh.NewOption("🚪 Quit", "quit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := menu.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		if action == "quit" {
			return nil
		}

		var err error
		switch action {
		case "catalog":
			printCatalog(s)
		case "details":
			err = runCourseDetailsTUI(s)
		case "add":
			err = runAddCourseTUI(s)
		case "remove":
			err = runRemoveCourseTUI(s)
		case "reset":
			err = runResetTUI(s)
		case "title":
			err = runSetTitleTUI(s)
		case "display":
			printFullSchedule(s)
		case "export":
			err = runExportTUI(s)
		case "ics":
			err = runExportICSTUI(s)
		case "config":
			err = RunConfigTUI()
		}

		// A cancelled sub-form just returns to the menu
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return err
		}
	}
}

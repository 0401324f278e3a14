package tui

import (
	"fmt"
	"strings"
	"time"

	"wolfscheduler/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Catalog File", "catalog"),
						huh.NewOption("Set Default Export File", "export"),
						huh.NewOption("Set Term Dates (For Calendar Export)", "term"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "catalog":
			err = runSetPathTUI(cfg, "Default catalog file", &cfg.CatalogPath)
		case "export":
			err = runSetPathTUI(cfg, "Default export file", &cfg.ExportPath)
		case "term":
			err = runSetTermTUI(cfg)
		case "view":
			printConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

func printConfig(cfg *config.AppConfig) {
	orUnset := func(s string) string {
		if s == "" {
			return "Not set"
		}
		return s
	}

	fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.wolfscheduler.json) ---"))
	fmt.Printf("Catalog File:  %s\n", orUnset(cfg.CatalogPath))
	fmt.Printf("Export File:   %s\n", orUnset(cfg.ExportPath))
	fmt.Printf("Term:          %s to %s\n", orUnset(cfg.TermStart), orUnset(cfg.TermEnd))
	fmt.Printf("Timezone:      %s\n", orUnset(cfg.Timezone))
	fmt.Printf("Accent Color:  %s\n", orUnset(cfg.AccentColor))
	fmt.Println()
}

func runSetPathTUI(cfg *config.AppConfig, title string, target *string) error {
	input := *target

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	*target = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved %s: %s\n", strings.ToLower(title), *target)))
	return nil
}

func validDate(s string) error {
	if _, err := config.ParseDate(s, time.UTC); err != nil {
		return fmt.Errorf("use the format YYYY-MM-DD")
	}
	return nil
}

func runSetTermTUI(cfg *config.AppConfig) error {
	start, end, tz := cfg.TermStart, cfg.TermEnd, cfg.Timezone
	if tz == "" {
		tz = config.DefaultTimezone
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First day of classes").Placeholder("2026-08-18").Value(&start).Validate(validDate),
			huh.NewInput().Title("Last day of classes").Placeholder("2026-12-02").Value(&end).Validate(validDate),
			huh.NewInput().Title("Time zone").Value(&tz).Validate(func(s string) error {
				if _, err := time.LoadLocation(s); err != nil {
					return fmt.Errorf("unknown time zone")
				}
				return nil
			}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.TermStart, cfg.TermEnd, cfg.Timezone = start, end, tz
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	if _, _, err := cfg.Term(loc); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Term saved: %s to %s (%s)\n", start, end, tz)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color").
				Description("Select a curated style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Wolfpack Red", colorBlock(defaultAccent)), defaultAccent),
					huh.NewOption(fmt.Sprintf("%s Reynolds Blue", colorBlock("33")), "33"),
					huh.NewOption(fmt.Sprintf("%s Hillsborough Gray", colorBlock("245")), "245"),
					huh.NewOption(fmt.Sprintf("%s Centennial Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #CC0000").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}

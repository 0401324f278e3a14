package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const dateLayout = "2006-01-02"

// DefaultTimezone is used for calendar export when none is configured.
const DefaultTimezone = "America/New_York"

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	CatalogPath   string `json:"catalog_path,omitempty"`
	ExportPath    string `json:"export_path,omitempty"`
	ScheduleTitle string `json:"schedule_title,omitempty"`
	AccentColor   string `json:"accent_color,omitempty"`
	TermStart     string `json:"term_start,omitempty"` // YYYY-MM-DD
	TermEnd       string `json:"term_end,omitempty"`   // YYYY-MM-DD
	Timezone      string `json:"timezone,omitempty"`
	LogLevel      string `json:"log_level,omitempty"`
}

// getConfigPath returns the absolute path to ~/.wolfscheduler.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".wolfscheduler.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Location resolves the configured time zone.
func (c *AppConfig) Location() (*time.Location, error) {
	name := c.Timezone
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// Term parses the configured term dates in loc. Both must be set.
func (c *AppConfig) Term(loc *time.Location) (start, end time.Time, err error) {
	if c.TermStart == "" || c.TermEnd == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("term dates are not configured. Run 'wolfscheduler config --term-start YYYY-MM-DD --term-end YYYY-MM-DD' first")
	}

	start, err = ParseDate(c.TermStart, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = ParseDate(c.TermEnd, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("term end %s is before term start %s", c.TermEnd, c.TermStart)
	}
	return start, end, nil
}

// ParseDate parses a YYYY-MM-DD date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

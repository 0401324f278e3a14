package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestConfigLoadSave(t *testing.T) {
	tempDir := t.TempDir()

	// Override the home directory environment variable for testing
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.CatalogPath = "/tmp/course_records.txt"
	cfg.ExportPath = "schedule.txt"
	cfg.ScheduleTitle = "Spring 2027"
	cfg.TermStart = "2027-01-06"
	cfg.TermEnd = "2027-04-30"
	cfg.Timezone = "UTC"

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	configPath := filepath.Join(tempDir, ".wolfscheduler.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	configPath := filepath.Join(tempDir, ".wolfscheduler.json")
	if err := os.WriteFile(configPath, []byte("invalid json { content"), 0644); err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestTerm(t *testing.T) {
	cfg := &AppConfig{TermStart: "2026-01-07", TermEnd: "2026-04-24"}

	start, end, err := cfg.Term(time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start: %v", start)
	}
	if !end.Equal(time.Date(2026, 4, 24, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end: %v", end)
	}
}

func TestTerm_Errors(t *testing.T) {
	tests := []AppConfig{
		{},
		{TermStart: "2026-01-07"},
		{TermStart: "01/07/2026", TermEnd: "2026-04-24"},
		{TermStart: "2026-04-24", TermEnd: "2026-01-07"},
	}

	for _, cfg := range tests {
		if _, _, err := cfg.Term(time.UTC); err == nil {
			t.Errorf("expected error for %+v", cfg)
		}
	}
}

func TestLocation(t *testing.T) {
	loc, err := (&AppConfig{Timezone: "UTC"}).Location()
	if err != nil || loc != time.UTC {
		t.Errorf("expected UTC, got %v %v", loc, err)
	}

	if _, err := (&AppConfig{Timezone: "Not/AZone"}).Location(); err == nil {
		t.Errorf("expected error for unknown timezone")
	}
}

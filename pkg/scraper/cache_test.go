package scraper

import (
	"encoding/json"
	"os"
	"testing"
	"time"
)

func TestCacheReadWrite(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	url := "https://example.edu/catalog?term=2261"

	// 1. Read non-existent cache
	body, ok := readCache(url)
	if ok || body != nil {
		t.Errorf("expected readCache to fail for non-existent cache, but got success")
	}

	// 2. Write cache
	page := []byte("<table class=\"catalog\"></table>")
	writeCache(url, page)

	path, err := getCachePath(url)
	if err != nil {
		t.Fatalf("getCachePath failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("expected cache file to be created at %s", path)
	}

	// 3. Read existing valid cache
	loaded, ok := readCache(url)
	if !ok {
		t.Fatalf("expected readCache to succeed for existing cache, but failed")
	}
	if string(loaded) != string(page) {
		t.Errorf("loaded body does not match written body.\nGot: %s\nExpected: %s", loaded, page)
	}

	// A different URL must not hit the same entry.
	if _, ok := readCache("https://example.edu/catalog?term=2268"); ok {
		t.Errorf("expected cache miss for a different URL")
	}
}

func TestCacheExpiration(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	url := "https://example.edu/expired"
	cachePath, err := getCachePath(url)
	if err != nil {
		t.Fatalf("getCachePath failed: %v", err)
	}

	entry := CacheEntry{
		Timestamp: time.Now().Add(-24 * time.Hour), // older than 12h
		URL:       url,
		Body:      []byte("old"),
	}
	data, _ := json.Marshal(entry)
	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		t.Fatalf("failed to write expired entry: %v", err)
	}

	if _, ok := readCache(url); ok {
		t.Errorf("expected readCache to reject expired cache (24h old, limit is 12h), but it incorrectly succeeded")
	}
}

package scraper

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// cacheDuration determines how long a downloaded catalog page is reused
const cacheDuration = 12 * time.Hour

// CacheEntry represents the disk data format
type CacheEntry struct {
	Timestamp time.Time `json:"timestamp"`
	URL       string    `json:"url"`
	Body      []byte    `json:"body"`
}

func getCachePath(url string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".wolfscheduler_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	// Catalog URLs carry query strings, so hash them into a safe file name.
	sum := sha1.Sum([]byte(url))
	return filepath.Join(cacheDir, hex.EncodeToString(sum[:])+".json"), nil
}

// readCache checks if a valid, unexpired cache exists for this URL
func readCache(url string) ([]byte, bool) {
	path, err := getCachePath(url)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if entry.URL != url || time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	return entry.Body, true
}

// writeCache saves the page body to disk
func writeCache(url string, body []byte) {
	path, err := getCachePath(url)
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		URL:       url,
		Body:      body,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}

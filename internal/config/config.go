// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the API server.
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string

	// Object storage (S3-compatible, e.g. Cloudflare R2)
	StorageAccountID string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	// Base URL the bucket is served from, e.g. https://cdn.wadhefa.com
	StoragePublicBaseURL string

	GeminiAPIKey string

	NewsFeedURL string
	// Optional job-board listing page scraped by the jobs ingestion path.
	// When empty, the jobs path falls back to the news feed items.
	JobsPageURL         string
	ScrapeIntervalHours int
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	for _, key := range []string{"STORAGE_ACCOUNT_ID", "STORAGE_ACCESS_KEY", "STORAGE_SECRET_KEY", "STORAGE_BUCKET", "STORAGE_PUBLIC_URL"} {
		if os.Getenv(key) == "" {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	interval := 6
	if s := os.Getenv("SCRAPE_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("SCRAPE_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		interval = v
	}

	feedURL := os.Getenv("NEWS_FEED_URL")
	if feedURL == "" {
		feedURL = "https://news.google.com/rss/search?q=%D9%88%D8%B8%D8%A7%D8%A6%D9%81&hl=ar&gl=SA"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:                 port,
		DatabaseURL:          dbURL,
		RedisURL:             redisURL,
		StorageAccountID:     os.Getenv("STORAGE_ACCOUNT_ID"),
		StorageAccessKey:     os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey:     os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:        os.Getenv("STORAGE_BUCKET"),
		StoragePublicBaseURL: os.Getenv("STORAGE_PUBLIC_URL"),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		NewsFeedURL:          feedURL,
		JobsPageURL:          os.Getenv("JOBS_PAGE_URL"),
		ScrapeIntervalHours:  interval,
	}, nil
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults mirror the published feed's metadata.
const (
	defaultFeedTitle       = "Amsterdam Events Feed"
	defaultFeedLink        = "https://raw.githubusercontent.com/lassebenni/amsterdam-events-feed/master/events.xml"
	defaultFeedDescription = "Curated upcoming events and activities in Amsterdam from I amsterdam official agenda"
	defaultFeedLanguage    = "en"
	defaultGenerator       = "Amsterdam Events Scraper v10.0"

	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Config carries every tunable for one run. It is constructed once in the CLI
// and passed explicitly into the components that need it; there is no
// process-wide configuration state.
type Config struct {
	FeedTitle       string
	FeedLink        string
	FeedDescription string
	FeedLanguage    string
	Generator       string

	OutputDir string

	UserAgent       string
	HTTPTimeout     time.Duration
	RequestInterval time.Duration

	// PrimaryTarget is the event count below which the fallback sources are
	// consulted in addition to the primary agenda.
	PrimaryTarget int

	TranslateEndpoint string

	LogLevel string

	Publish       bool
	PublishRemote string
	PublishBranch string
}

// Load builds a Config from the environment, reading an optional .env file
// first. Every value has a working default; the zero-configuration run
// scrapes to the current directory without publishing.
func Load() *Config {
	// Missing .env is the common case, not an error.
	_ = godotenv.Load()

	return &Config{
		FeedTitle:       getenv("AEF_FEED_TITLE", defaultFeedTitle),
		FeedLink:        getenv("AEF_FEED_LINK", defaultFeedLink),
		FeedDescription: getenv("AEF_FEED_DESCRIPTION", defaultFeedDescription),
		FeedLanguage:    getenv("AEF_FEED_LANGUAGE", defaultFeedLanguage),
		Generator:       getenv("AEF_GENERATOR", defaultGenerator),

		OutputDir: getenv("AEF_OUTPUT_DIR", "."),

		UserAgent:       getenv("AEF_USER_AGENT", defaultUserAgent),
		HTTPTimeout:     getenvDuration("AEF_HTTP_TIMEOUT", 30*time.Second),
		RequestInterval: getenvDuration("AEF_REQUEST_INTERVAL", 200*time.Millisecond),

		PrimaryTarget: getenvInt("AEF_PRIMARY_TARGET", 10),

		TranslateEndpoint: getenv("AEF_TRANSLATE_ENDPOINT", ""),

		LogLevel: getenv("AEF_LOG_LEVEL", "info"),

		Publish:       getenvBool("AEF_PUBLISH", false),
		PublishRemote: getenv("AEF_PUBLISH_REMOTE", "origin"),
		PublishBranch: getenv("AEF_PUBLISH_BRANCH", "master"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

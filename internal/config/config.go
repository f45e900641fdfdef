package config

import (
	"os"
	"path/filepath"
)

const (
	AppName    = "CosmicCanvas"
	AppVersion = "1.0.0"
)

const (
	// NasaBaseURL is the APOD endpoint of the NASA open API.
	NasaBaseURL = "https://api.nasa.gov/planetary/apod"

	// DefaultNasaAPIKey is the public demo key NASA hands out for
	// low-volume use. A real key can be set via environment or settings.
	DefaultNasaAPIKey = "DEMO_KEY"

	// TranslateBaseURL is an alternative Google Translate endpoint that
	// needs no API key and is less aggressively rate limited than the
	// main one.
	TranslateBaseURL = "https://clients5.google.com/translate_a/t"

	// DesktopUserAgent is sent on translation requests. The endpoint
	// rejects clients that look programmatic, so we present as a
	// desktop browser.
	DesktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

type Config struct {
	Addr       string
	DBPath     string
	DataDir    string
	StaticDir  string
	LogLevel   string
	NasaAPIKey string
}

func Load() Config {
	addr := os.Getenv("COSMIC_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dataDir := os.Getenv("COSMIC_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	path := os.Getenv("COSMIC_DB_PATH")
	if path == "" {
		path = filepath.Join(dataDir, "cosmiccanvas.db")
	}
	staticDir := os.Getenv("COSMIC_STATIC_DIR")
	logLevel := os.Getenv("COSMIC_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	apiKey := os.Getenv("COSMIC_NASA_API_KEY")
	if apiKey == "" {
		apiKey = DefaultNasaAPIKey
	}

	return Config{
		Addr:       addr,
		DBPath:     filepath.Clean(path),
		DataDir:    filepath.Clean(dataDir),
		StaticDir:  staticDir,
		LogLevel:   logLevel,
		NasaAPIKey: apiKey,
	}
}

// Package config loads server configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kamath/scrapegraph-mcp/internal/scrapegraph"
)

// Config holds all configuration values.
type Config struct {
	// ScrapeGraph API
	APIKey  string
	BaseURL string
	Timeout time.Duration

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables. SGAI_API_KEY may
// legitimately be absent: the server still starts and every tool call
// answers with a not-initialized error until a key is provided.
func Load() Config {
	return Config{
		APIKey:  os.Getenv("SGAI_API_KEY"),
		BaseURL: getEnv("SGAI_BASE_URL", scrapegraph.DefaultBaseURL),
		Timeout: parseTimeout(os.Getenv("SGMCP_TIMEOUT_SECONDS")),

		LogFile:  os.Getenv("SGMCP_LOG_FILE"),
		LogLevel: parseLogLevel(getEnv("SGMCP_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseTimeout(s string) time.Duration {
	if s == "" {
		return scrapegraph.DefaultTimeout
	}
	secs, err := strconv.Atoi(s)
	if err != nil || secs <= 0 {
		return scrapegraph.DefaultTimeout
	}
	return time.Duration(secs) * time.Second
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// VuidTable is the YAML table used by resolve_vuid when a call does not
	// name one. Empty selects the embedded table.
	VuidTable string

	// List tool defaults.
	ListLimit int
	MaxLimit  int

	// IncludeSpecURL adds a specification link to resolved VUIDs.
	IncludeSpecURL bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from ERRLOC_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		VuidTable:      os.Getenv("ERRLOC_VUID_TABLE"),
		ListLimit:      envInt("ERRLOC_LIST_LIMIT", 100),
		MaxLimit:       envInt("ERRLOC_MAX_LIMIT", 1000),
		IncludeSpecURL: envBool("ERRLOC_INCLUDE_SPEC_URL", true),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

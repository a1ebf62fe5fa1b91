package config

import "os"

// Config holds all dateline configuration.
type Config struct {
	Parse  ParseConfig
	Source SourceConfig
	Output OutputConfig
	Log    LogConfig
}

// ParseConfig holds parser settings.
type ParseConfig struct {
	Raw      bool   // emit the raw token mapping instead of the normalized record
	Location string // IANA timezone for the naive epoch; "" means host local
}

// SourceConfig holds input source settings.
type SourceConfig struct {
	Provider string // "stdin" or "file"
	Path     string // file path when Provider is "file"
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	Format string // "stdout", "file", or "multi"
	Path   string // file path for "file" and "multi"
	Pretty bool
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Parse: ParseConfig{
			Raw:      getenvBool("DATELINE_RAW", false),
			Location: os.Getenv("DATELINE_LOCATION"),
		},
		Source: SourceConfig{
			Provider: getenv("DATELINE_SOURCE", "stdin"),
			Path:     os.Getenv("DATELINE_SOURCE_PATH"),
		},
		Output: OutputConfig{
			Format: getenv("DATELINE_OUTPUT", "stdout"),
			Path:   os.Getenv("DATELINE_OUTPUT_PATH"),
			Pretty: getenvBool("DATELINE_PRETTY", false),
		},
		Log: LogConfig{
			Level: getenv("DATELINE_LOG_LEVEL", "info"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return fallback
	}
}

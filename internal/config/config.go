package config

import "os"

// Config holds launcher-level settings for the oneroof CLI.
type Config struct {
	NextflowBin string // Engine binary to invoke (default "nextflow")
	PipelineDir string // Pipeline directory passed to the engine (default ".")
	WorkDir     string // Directory holding the resume record (default ".")
	LogLevel    string // Log level: debug, info, warn, error
	LogFormat   string // Log format: text, json
}

// Default returns launcher defaults, honoring ONEROOF_* environment overrides.
func Default() Config {
	return Config{
		NextflowBin: envOr("ONEROOF_NEXTFLOW", "nextflow"),
		PipelineDir: envOr("ONEROOF_PIPELINE_DIR", "."),
		WorkDir:     envOr("ONEROOF_WORKDIR", "."),
		LogLevel:    envOr("ONEROOF_LOG_LEVEL", "info"),
		LogFormat:   envOr("ONEROOF_LOG_FORMAT", "text"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package app

import "os"

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.SourceURL == "" {
		cfg.SourceURL = os.Getenv("GOVTDE_SOURCE_URL")
	}
	if cfg.InputPath == "" {
		cfg.InputPath = os.Getenv("GOVTDE_INPUT")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = os.Getenv("GOVTDE_OUTPUT")
	}
}

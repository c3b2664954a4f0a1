package app

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/DhanushSaiCoder/Govt-De/internal/keywords"
)

// FileConfig is the single-file configuration schema. Keyword lists given
// here replace the corresponding built-in list entirely so a deployment can
// localize the vocabulary for another portal or language.
type FileConfig struct {
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`
	URL    string `yaml:"url" json:"url"`

	Keywords struct {
		Eligibility []string `yaml:"eligibility" json:"eligibility"`
		Documents   []string `yaml:"documents" json:"documents"`
		Hints       []string `yaml:"hints" json:"hints"`
		ApplyIntent []string `yaml:"applyIntent" json:"applyIntent"`
		Regulatory  []string `yaml:"regulatory" json:"regulatory"`
	} `yaml:"keywords" json:"keywords"`

	Pretty  bool `yaml:"pretty" json:"pretty"`
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

// MergeFileConfig fills unset cfg fields from fc. Explicit cfg values win.
func MergeFileConfig(cfg *Config, fc *FileConfig) {
	if cfg == nil || fc == nil {
		return
	}
	if cfg.InputPath == "" {
		cfg.InputPath = fc.Input
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.SourceURL == "" {
		cfg.SourceURL = fc.URL
	}
	if !cfg.Pretty {
		cfg.Pretty = fc.Pretty
	}
	if !cfg.Verbose {
		cfg.Verbose = fc.Verbose
	}
	if cfg.Keywords == nil {
		if kw, ok := fileKeywords(fc); ok {
			cfg.Keywords = &kw
		}
	}
}

// fileKeywords builds a vocabulary from the config file, starting from the
// defaults and replacing whichever lists the file specifies.
func fileKeywords(fc *FileConfig) (keywords.Set, bool) {
	kw := keywords.Default()
	changed := false
	if len(fc.Keywords.Eligibility) > 0 {
		kw.Eligibility = fc.Keywords.Eligibility
		changed = true
	}
	if len(fc.Keywords.Documents) > 0 {
		kw.Documents = fc.Keywords.Documents
		changed = true
	}
	if len(fc.Keywords.Hints) > 0 {
		kw.Hints = fc.Keywords.Hints
		changed = true
	}
	if len(fc.Keywords.ApplyIntent) > 0 {
		kw.ApplyIntent = fc.Keywords.ApplyIntent
		changed = true
	}
	if len(fc.Keywords.Regulatory) > 0 {
		kw.Regulatory = fc.Keywords.Regulatory
		changed = true
	}
	return kw, changed
}

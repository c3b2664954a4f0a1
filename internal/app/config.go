package app

import "github.com/DhanushSaiCoder/Govt-De/internal/keywords"

// Config holds runtime configuration for one extraction run.
type Config struct {
	// InputPath is the HTML file to read; "-" or empty means stdin.
	InputPath string
	// OutputPath is where the JSON record is written; empty means stdout.
	OutputPath string
	// SourceURL is the page's original URL, used to resolve relative
	// apply links and recorded in the output.
	SourceURL string

	// Keywords overrides the built-in vocabulary when non-nil.
	Keywords *keywords.Set

	// Behavior
	Pretty  bool
	Verbose bool
}

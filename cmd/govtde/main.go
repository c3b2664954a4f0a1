// Command govtde extracts "who can apply / required documents / where to
// apply" facts from a saved government-scheme web page and prints them as a
// JSON record.
//
//	govtde -input page.html -url https://portal.gov.in/scheme/123 -pretty
//
// The page markup comes from a file or stdin; fetching is out of scope.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DhanushSaiCoder/Govt-De/internal/app"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath  string
		outputPath string
		sourceURL  string
		configPath string
		pretty     bool
		verbose    bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to saved HTML page ('-' or empty for stdin)")
	flag.StringVar(&outputPath, "output", "", "Path to write the JSON record (default stdout)")
	flag.StringVar(&sourceURL, "url", "", "Original page URL, used to resolve relative apply links")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file (keyword overrides, paths)")
	flag.BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputPath:  inputPath,
		OutputPath: outputPath,
		SourceURL:  sourceURL,
		Pretty:     pretty,
		Verbose:    verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Msg("config file")
			os.Exit(2)
		}
		app.MergeFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.New(cfg).Run(context.Background()); err != nil {
		// The error record has already been written to the output; the
		// exit code is the process-level signal.
		os.Exit(1)
	}
}

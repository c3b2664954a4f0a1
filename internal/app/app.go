package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/DhanushSaiCoder/Govt-De/internal/extract"
	"github.com/DhanushSaiCoder/Govt-De/internal/record"
)

// App wires configuration to the extraction pipeline and renders the result
// as JSON.
type App struct {
	cfg       Config
	extractor *extract.Extractor
}

func New(cfg Config) *App {
	return &App{
		cfg:       cfg,
		extractor: &extract.Extractor{Keywords: cfg.Keywords},
	}
}

// Run reads the input markup, extracts, and writes the record (or the error
// record) to the configured output. A non-nil return means an ErrorRecord
// was emitted; the JSON has already been written either way.
func (a *App) Run(ctx context.Context) error {
	id := uuid.NewString()
	raw, err := a.readInput()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	log.Debug().Str("extraction", id).Int("bytes", len(raw)).
		Str("url", a.cfg.SourceURL).Msg("starting extraction")

	rec, extErr := a.extractor.FromHTML(raw, a.cfg.SourceURL)
	if extErr != nil {
		var recErr *record.Error
		if !errors.As(extErr, &recErr) {
			recErr = &record.Error{Code: record.CodeException, Message: extErr.Error()}
		}
		log.Warn().Str("extraction", id).Str("code", recErr.Code).
			Msg("extraction failed")
		if werr := a.writeJSON(recErr); werr != nil {
			return werr
		}
		return recErr
	}

	log.Info().Str("extraction", id).
		Int("eligibility", len(rec.Eligibility)).
		Int("documents", len(rec.Documents)).
		Int("apply_links", len(rec.ApplyLinks)).
		Float64("confidence", rec.Confidence).
		Str("method", string(rec.Method)).
		Msg("extraction complete")
	return a.writeJSON(rec)
}

func (a *App) readInput() ([]byte, error) {
	if a.cfg.InputPath == "" || a.cfg.InputPath == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(a.cfg.InputPath)
}

func (a *App) writeJSON(v any) error {
	var out io.Writer = os.Stdout
	if a.cfg.OutputPath != "" {
		f, err := os.Create(a.cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	if a.cfg.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

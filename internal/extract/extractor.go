package extract

import "github.com/DhanushSaiCoder/Govt-De/internal/keywords"

// Extractor runs the full extraction pipeline. The zero value uses the
// default vocabulary; tests inject synthetic keyword sets instead.
// Extractors hold no per-call state and are safe for concurrent use.
type Extractor struct {
	// Keywords overrides the default vocabulary when non-nil.
	Keywords *keywords.Set
}

// New returns an Extractor with the default vocabulary.
func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) vocab() keywords.Set {
	if e != nil && e.Keywords != nil {
		return *e.Keywords
	}
	return keywords.Default()
}

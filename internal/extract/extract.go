// Package extract orchestrates the extraction core: sanitize, parse, collect
// candidate blocks, score them, classify lines and links inside the top
// blocks, estimate confidence, and assemble the validated record. The
// pipeline is deterministic, performs no I/O, and never lets a fault escape
// as anything but a coded error record.
package extract

import (
	"fmt"

	"github.com/DhanushSaiCoder/Govt-De/internal/classify"
	"github.com/DhanushSaiCoder/Govt-De/internal/collect"
	"github.com/DhanushSaiCoder/Govt-De/internal/dom"
	"github.com/DhanushSaiCoder/Govt-De/internal/readability"
	"github.com/DhanushSaiCoder/Govt-De/internal/record"
	"github.com/DhanushSaiCoder/Govt-De/internal/sanitize"
	"github.com/DhanushSaiCoder/Govt-De/internal/score"
)

// FromHTML extracts scheme facts from raw page markup. sourceURL, when
// non-empty, resolves relative apply links and lands in the record's
// source_url field. The returned error is always a *record.Error; a panic
// anywhere in the pipeline is converted rather than propagated.
func (e *Extractor) FromHTML(raw []byte, sourceURL string) (rec *record.Extraction, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = &record.Error{Code: record.CodeException, Message: fmt.Sprint(r)}
		}
	}()

	kw := e.vocab()

	clean := sanitize.Clean(raw)
	doc, perr := dom.Parse(clean)
	if perr != nil {
		return nil, &record.Error{Code: record.CodeException, Message: perr.Error()}
	}

	bodyText := doc.Text()
	title := doc.Title()

	// Secondary readability pass. Failure is silent: the plain body
	// flatten stays in charge and the method field records which path won.
	// Block collection and line classification always walk the full DOM;
	// the readability text feeds the snippet and the whole-page rescan, so
	// the combined label means both passes contributed, not that
	// readability replaced the DOM walk.
	method := record.MethodHeuristic
	pageText := bodyText
	if art, rerr := readability.FromHTML(clean); rerr == nil {
		pageText = art.Text
		method = record.MethodReadability
		if title == "" {
			title = art.Title
		}
	}

	blocks := collect.Blocks(doc, bodyText, kw)
	ranked := score.Rank(blocks, kw)
	top := score.Top(ranked)

	var eligibility, documents []string
	for _, s := range top {
		el, dl := classify.Lines(s.Content, kw)
		eligibility = append(eligibility, el...)
		documents = append(documents, dl...)
	}
	links := classify.Links(topAnchors(top), sourceURL, kw)

	// Safety net: when the top blocks yielded no eligibility lines at all,
	// rescan the whole page text and every anchor on the page. Triggered
	// only by empty eligibility, not empty documents.
	if len(eligibility) == 0 {
		el, dl := classify.Lines(pageText, kw)
		eligibility = append(eligibility, el...)
		documents = append(documents, dl...)
		links = classify.Links(doc.Anchors(), sourceURL, kw)
	}

	confidence := score.Confidence(eligibility, documents, top)

	return record.Assemble(title, sourceURL, eligibility, documents, links,
		pageText, method, confidence)
}

// topAnchors gathers every anchor within the subtrees that make up the top
// blocks, preserving block rank order.
func topAnchors(top []score.Scored) []dom.Anchor {
	var out []dom.Anchor
	for _, s := range top {
		for _, n := range s.Nodes {
			out = append(out, n.Anchors()...)
		}
	}
	return out
}

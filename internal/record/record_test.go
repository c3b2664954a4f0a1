package record

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhanushSaiCoder/Govt-De/internal/redact"
)

func TestAssemble_DedupAndCaps(t *testing.T) {
	elig := []string{" citizen only ", "citizen only", "", "age 18 plus"}
	var docs []string
	for i := 0; i < 30; i++ {
		docs = append(docs, strings.Repeat("d", i+1))
	}

	rec, err := Assemble("T", "https://x.gov", elig, docs, []string{"https://x.gov/apply"},
		"snippet", MethodHeuristic, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"citizen only", "age 18 plus"}, rec.Eligibility)
	assert.Len(t, rec.Documents, 20)
	assert.Equal(t, []string{"https://x.gov/apply"}, rec.ApplyLinks)
}

func TestAssemble_RedactsListsAndSnippet(t *testing.T) {
	rec, err := Assemble("", "", []string{"call 9876543210 to check"}, nil, nil,
		"mail help@gov.in or aadhaar 1234 5678 9012", MethodHeuristic, 0.3)
	require.NoError(t, err)
	assert.Equal(t, "call "+redact.PhoneToken+" to check", rec.Eligibility[0])
	assert.Equal(t, "mail "+redact.EmailToken+" or aadhaar "+redact.IDToken, rec.RawTextSnippet)
}

func TestAssemble_RoundsConfidence(t *testing.T) {
	rec, err := Assemble("", "", nil, nil, nil, "", MethodHeuristic, 0.51499999)
	require.NoError(t, err)
	assert.Equal(t, 0.51, rec.Confidence)
}

func TestAssemble_OptionalFieldsNull(t *testing.T) {
	rec, err := Assemble("  ", "", nil, nil, nil, "", MethodHeuristic, 0)
	require.NoError(t, err)
	assert.Nil(t, rec.Title)
	assert.Nil(t, rec.SourceURL)

	b, merr := json.Marshal(rec)
	require.NoError(t, merr)
	assert.Contains(t, string(b), `"title":null`)
	assert.Contains(t, string(b), `"eligibility":[]`)
	assert.Contains(t, string(b), `"apply_links":[]`)
}

func TestAssemble_SnippetBounded(t *testing.T) {
	rec, err := Assemble("", "", nil, nil, nil, strings.Repeat("s", 2000), MethodReadability, 0.2)
	require.NoError(t, err)
	assert.Len(t, []rune(rec.RawTextSnippet), 500)
	assert.Equal(t, MethodReadability, rec.Method)
}

func TestAssemble_RejectsInvalid(t *testing.T) {
	_, err := Assemble("", "", nil, nil, nil, "", Method("guesswork"), 0.2)
	require.Error(t, err)
	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, CodeInvalidSchema, rerr.Code)
	require.Len(t, rerr.Checks, 1)
	assert.Contains(t, rerr.Checks[0], "method")
}

func TestValidate_Checks(t *testing.T) {
	rec := &Extraction{
		Eligibility: []string{"a", "a"},
		Documents:   []string{" "},
		ApplyLinks:  nil,
		Method:      MethodHeuristic,
		Confidence:  1.5,
	}
	checks := Validate(rec)
	joined := strings.Join(checks, "\n")
	assert.Contains(t, joined, "apply_links list missing")
	assert.Contains(t, joined, "duplicate")
	assert.Contains(t, joined, "blank")
	assert.Contains(t, joined, "confidence")
}

func TestError_Error(t *testing.T) {
	assert.Equal(t, "exception: boom", (&Error{Code: CodeException, Message: "boom"}).Error())
	assert.Equal(t, "invalid_output_schema: a; b",
		(&Error{Code: CodeInvalidSchema, Checks: []string{"a", "b"}}).Error())
	assert.Equal(t, "exception", (&Error{Code: CodeException}).Error())
}

package sanitize

import (
	"strings"
	"testing"
)

func TestClean_StripsScriptAndStyle(t *testing.T) {
	raw := `<div class="scheme">
	  <script>alert("x")</script>
	  <style>.a{color:red}</style>
	  <p>Eligibility details</p>
	</div>`

	got := string(Clean([]byte(raw)))
	if strings.Contains(got, "alert") {
		t.Fatalf("script content survived: %q", got)
	}
	if strings.Contains(got, "color:red") {
		t.Fatalf("style content survived: %q", got)
	}
	if !strings.Contains(got, "Eligibility details") {
		t.Fatalf("content lost: %q", got)
	}
}

func TestClean_StripsCommentsAndEventHandlers(t *testing.T) {
	raw := `<!-- internal note --><div onclick="steal()" onmouseover="x()" class="criteria" id="main-block">text</div>`

	got := string(Clean([]byte(raw)))
	if strings.Contains(got, "internal note") {
		t.Fatalf("comment survived: %q", got)
	}
	if strings.Contains(got, "onclick") || strings.Contains(got, "onmouseover") {
		t.Fatalf("event handler survived: %q", got)
	}
	// Scorer metadata must survive sanitization.
	if !strings.Contains(got, `class="criteria"`) || !strings.Contains(got, `id="main-block"`) {
		t.Fatalf("class/id stripped: %q", got)
	}
}

func TestClean_KeepsAnchorsAndRoles(t *testing.T) {
	raw := `<section role="region" aria-label="documents"><a href="/apply" title="Apply">Apply Now</a></section>`

	got := string(Clean([]byte(raw)))
	for _, want := range []string{`role="region"`, `aria-label="documents"`, `href="/apply"`, `title="Apply"`, "Apply Now"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %q", want, got)
		}
	}
}

func TestClean_DropsJavascriptHrefs(t *testing.T) {
	got := string(Clean([]byte(`<a href="javascript:alert(1)">Apply</a>`)))
	if strings.Contains(got, "javascript:") {
		t.Fatalf("javascript href survived: %q", got)
	}
}

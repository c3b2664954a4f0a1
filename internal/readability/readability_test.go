package readability

import (
	"errors"
	"strings"
	"testing"
)

func TestFromHTML_TooShort(t *testing.T) {
	_, err := FromHTML([]byte(`<html><body><main><p>Tiny page.</p></main></body></html>`))
	if !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}
}

func TestFromHTML_PrefersMainAndStripsBoilerplate(t *testing.T) {
	para := strings.Repeat("The scheme gives income support to landholding farmer families. ", 12)
	page := `<html><head><title>PM-KISAN</title></head><body>
	  <nav>Home | Schemes | Contact</nav>
	  <main><p>` + para + `</p></main>
	  <footer>Copyright portal</footer>
	</body></html>`

	art, err := FromHTML([]byte(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if art.Title != "PM-KISAN" {
		t.Fatalf("title = %q", art.Title)
	}
	if !strings.Contains(art.Text, "income support") {
		t.Fatalf("main content missing")
	}
	if strings.Contains(art.Text, "Copyright portal") || strings.Contains(art.Text, "Schemes | Contact") {
		t.Fatalf("boilerplate survived: %q", art.Text)
	}
}

func TestFromHTML_FallsBackToBodyContainer(t *testing.T) {
	para := strings.Repeat("Benefits are credited directly to the bank account of the beneficiary. ", 12)
	page := `<html><body><div id="content"><p>` + para + `</p></div></body></html>`

	art, err := FromHTML([]byte(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(art.Text, "credited directly") {
		t.Fatalf("content missing")
	}
}

func TestFromHTML_CollapsesWhitespace(t *testing.T) {
	para := strings.Repeat("word  with   runs ", 40)
	art, err := FromHTML([]byte(`<html><body><main>` + para + `</main></body></html>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(art.Text, "  ") {
		t.Fatalf("whitespace runs survived")
	}
}

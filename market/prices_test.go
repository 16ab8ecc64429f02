package market

import (
	"strings"
	"testing"
)

func TestLookupSpecificProduct(t *testing.T) {
	got := Lookup("hi", "onion")
	if !strings.Contains(got, "प्याज") {
		t.Fatalf("expected Hindi onion sentence, got %q", got)
	}
}

func TestLookupUnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	got := Lookup("xx", "onion")
	if !strings.HasPrefix(got, "Onion price") {
		t.Fatalf("expected English onion sentence, got %q", got)
	}
}

func TestLookupGeneral(t *testing.T) {
	got := Lookup("en", "")
	if !strings.Contains(got, "wheat") {
		t.Fatalf("expected general English sentence, got %q", got)
	}
}

func TestLookupUnknownProductFallsBackToGeneral(t *testing.T) {
	got := Lookup("ta", "mango")
	if got != Lookup("ta", "") {
		t.Fatalf("expected general Tamil sentence for unknown product, got %q", got)
	}
}

func TestLookupProductCaseInsensitive(t *testing.T) {
	if Lookup("en", "Tomato") != Lookup("en", "tomato") {
		t.Fatalf("expected product lookup to ignore case")
	}
}

package catalog

import "testing"

func TestSuggestCloseMisspelling(t *testing.T) {
	got := Suggest(fixture(), "iphon")
	if got != "iphone" {
		t.Fatalf("expected iphone, got %q", got)
	}
}

func TestSuggestIgnoresCase(t *testing.T) {
	got := Suggest(fixture(), "MacBok")
	if got != "macbook" {
		t.Fatalf("expected macbook, got %q", got)
	}
}

func TestSuggestExactWordReturnsNothing(t *testing.T) {
	if got := Suggest(fixture(), "macbook"); got != "" {
		t.Fatalf("exact match should not suggest, got %q", got)
	}
}

func TestSuggestNothingSimilar(t *testing.T) {
	if got := Suggest(fixture(), "qqqqqqqq"); got != "" {
		t.Fatalf("expected no suggestion, got %q", got)
	}
}

func TestSuggestEmptyQuery(t *testing.T) {
	if got := Suggest(fixture(), "   "); got != "" {
		t.Fatalf("expected no suggestion for blank query, got %q", got)
	}
}

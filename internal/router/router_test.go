package router

import (
	"testing"

	"techmarket/internal/catalog"
)

func TestNewRouterStartsOnHome(t *testing.T) {
	r := New()
	if r.Current() != ScreenHome {
		t.Fatalf("expected home, got %s", r.Current())
	}
}

func TestNavigateCarriesPayload(t *testing.T) {
	r := New()
	p := &catalog.Product{ID: "1", Title: "iPhone 14 Pro"}
	r.Navigate(ScreenDetail, WithProduct(p))
	if r.Current() != ScreenDetail {
		t.Fatalf("expected detail, got %s", r.Current())
	}
	if r.Product() != p {
		t.Fatalf("payload product lost")
	}
}

func TestPayloadSurvivesNavigation(t *testing.T) {
	r := New()
	p := &catalog.Product{ID: "1"}
	r.Navigate(ScreenDetail, WithProduct(p))
	r.Navigate(ScreenHome)
	r.Navigate(ScreenPricing)
	if r.Product() != p {
		t.Fatalf("payload should persist until overwritten")
	}
}

func TestNavigateOverwritesOnlyGivenFields(t *testing.T) {
	r := New()
	r.Navigate(ScreenListing, WithCategory("phones"), WithSearch("iphone"))
	r.Navigate(ScreenListing, WithSearch(""))
	if r.Category() != "phones" {
		t.Fatalf("category should be untouched, got %q", r.Category())
	}
	if r.SearchQuery() != "" {
		t.Fatalf("search should be cleared, got %q", r.SearchQuery())
	}
}

func TestNavigateChatPeer(t *testing.T) {
	r := New()
	r.Navigate(ScreenChat, WithChatUser("2"))
	if r.ChatUserID() != "2" {
		t.Fatalf("expected peer 2, got %q", r.ChatUserID())
	}
}

func TestUnknownScreenFailsClosedToHome(t *testing.T) {
	r := New()
	r.Navigate(ScreenDetail, WithProduct(&catalog.Product{ID: "1"}))
	r.Navigate(Screen("settings"))
	if r.Current() != ScreenHome {
		t.Fatalf("expected home for unknown screen, got %s", r.Current())
	}
	if r.Product() == nil {
		t.Fatalf("payload must survive a failed-closed navigation")
	}
}

func TestParseScreen(t *testing.T) {
	for _, s := range Screens() {
		if got := ParseScreen(string(s)); got != s {
			t.Fatalf("round trip failed for %s: %s", s, got)
		}
	}
	if got := ParseScreen("nonsense"); got != ScreenHome {
		t.Fatalf("expected home, got %s", got)
	}
}

package dedup

import (
	"testing"

	"github.com/lassebenni/amsterdam-events-feed/internal/event"
)

func mustEvent(t *testing.T, title, link string) *event.Event {
	t.Helper()
	evt, err := event.New(title, link, "Test")
	if err != nil {
		t.Fatalf("creating event %q: %v", title, err)
	}
	return evt
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Grachtenfestival 2025!", "grachtenfestival 2025"},
		{"  SAIL Amsterdam  ", "sail amsterdam"},
		{"Café-concert: Jazz & Blues", "cafconcert jazz  blues"},
		{"***", ""},
		{"Museumnacht", "museumnacht"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeTitle(tt.in); got != tt.expected {
				t.Errorf("NormalizeTitle(%q) = %q, expected %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestEventsRemovesDuplicates(t *testing.T) {
	events := []*event.Event{
		mustEvent(t, "Grachtenfestival 2025", "https://example.com/a"),
		mustEvent(t, "Museumnacht Amsterdam", "https://example.com/b"),
		// Same normalized title as the first, different link: still a duplicate.
		mustEvent(t, "Grachtenfestival 2025!", "https://example.com/c"),
	}

	unique := Events(events)
	if len(unique) != 2 {
		t.Fatalf("expected 2 events, got %d", len(unique))
	}
	// First occurrence wins, order preserved.
	if unique[0].Link != "https://example.com/a" {
		t.Errorf("expected first occurrence kept, got %s", unique[0].Link)
	}
	if unique[1].Title != "Museumnacht Amsterdam" {
		t.Errorf("order not preserved: %q", unique[1].Title)
	}
}

func TestEventsDropsDegenerateTitles(t *testing.T) {
	events := []*event.Event{
		mustEvent(t, "SAIL!", "https://example.com/sail"), // normalizes to "sail" (4 chars)
		mustEvent(t, "#1!", "https://example.com/one"),
		mustEvent(t, "Vondelpark Openluchttheater", "https://example.com/vondel"),
	}

	unique := Events(events)
	if len(unique) != 1 {
		t.Fatalf("expected 1 event, got %d", len(unique))
	}
	if unique[0].Title != "Vondelpark Openluchttheater" {
		t.Errorf("wrong event kept: %q", unique[0].Title)
	}
}

func TestEventsBoundaryLength(t *testing.T) {
	// Exactly 5 normalized characters is still dropped; 6 is kept.
	events := []*event.Event{
		mustEvent(t, "abcde", "https://example.com/5"),
		mustEvent(t, "abcdef", "https://example.com/6"),
	}

	unique := Events(events)
	if len(unique) != 1 || unique[0].Title != "abcdef" {
		t.Errorf("expected only the 6-char title kept, got %v", unique)
	}
}

func TestEventsIdempotent(t *testing.T) {
	events := []*event.Event{
		mustEvent(t, "Grachtenfestival 2025", "https://example.com/a"),
		mustEvent(t, "Museumnacht Amsterdam", "https://example.com/b"),
		mustEvent(t, "Grachtenfestival 2025", "https://example.com/c"),
	}

	once := Events(events)
	twice := Events(once)

	if len(once) != len(twice) {
		t.Fatalf("dedup not idempotent: %d != %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("element %d changed on second pass", i)
		}
	}
}

func TestEventsEmpty(t *testing.T) {
	if got := Events(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

package dedup

import (
	"regexp"
	"strings"

	"github.com/lassebenni/amsterdam-events-feed/internal/event"
)

// minTitleLength is the floor below which a normalized title is considered
// degenerate (symbol-only or near-empty) and the event is dropped outright.
const minTitleLength = 5

var reNonAlnum = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// NormalizeTitle lower-cases a title, strips every character that is not
// alphanumeric or whitespace, and trims the result. This is the dedup key.
func NormalizeTitle(title string) string {
	return strings.TrimSpace(reNonAlnum.ReplaceAllString(strings.ToLower(title), ""))
}

// Events removes events whose normalized titles collide, keeping the first
// occurrence and preserving order. Events with a normalized title of five
// characters or fewer are dropped regardless of uniqueness. Titles are
// compared by exact normalized-string equality; links play no part in the
// key, so distinct pages sharing a title are deliberately merged.
func Events(events []*event.Event) []*event.Event {
	seen := make(map[string]struct{}, len(events))
	unique := make([]*event.Event, 0, len(events))

	for _, evt := range events {
		key := NormalizeTitle(evt.Title)
		if len(key) <= minTitleLength {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, evt)
	}
	return unique
}

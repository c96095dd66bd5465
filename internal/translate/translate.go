package translate

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Dutch month abbreviations mapped to English. Replaced as plain substrings:
// month tokens rarely collide with other words, and the Dutch-specific forms
// (mrt, mei, okt) never do.
var monthReplacer = strings.NewReplacer(
	"jan", "Jan",
	"feb", "Feb",
	"mrt", "Mar",
	"apr", "Apr",
	"mei", "May",
	"jun", "Jun",
	"jul", "Jul",
	"aug", "Aug",
	"sep", "Sep",
	"okt", "Oct",
	"nov", "Nov",
	"dec", "Dec",
)

// Dutch weekday abbreviations are replaced only as whole words: "do" and "ma"
// are common substrings in Dutch prose.
var reWeekday = regexp.MustCompile(`(?i)\b(ma|di|wo|do|vr|za|zo)\b`)

var weekdays = map[string]string{
	"ma": "Mon",
	"di": "Tue",
	"wo": "Wed",
	"do": "Thu",
	"vr": "Fri",
	"za": "Sat",
	"zo": "Sun",
}

// Date rewrites Dutch day and month abbreviations in a single date string to
// their English equivalents and title-cases the result. Strings without Dutch
// tokens pass through unchanged apart from the title-casing; translating an
// already-translated string is a no-op.
func Date(s string) string {
	s = reWeekday.ReplaceAllStringFunc(s, func(m string) string {
		return weekdays[strings.ToLower(m)]
	})
	s = monthReplacer.Replace(s)
	// Casers are stateful, so a fresh one per call.
	return cases.Title(language.English).String(s)
}

// Dates translates each date string, preserving element count and order.
func Dates(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = Date(s)
	}
	return out
}

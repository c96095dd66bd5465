package extract

import (
	"regexp"
	"strings"
)

// minDescriptionLength is the whitespace-collapsed length a paragraph must
// exceed to qualify as the event description. Shorter blocks are typically
// captions, nav fragments or section headers.
const minDescriptionLength = 80

const monthAbbrevs = `jan|feb|mrt|mar|apr|mei|may|jun|jul|aug|sep|okt|oct|nov|dec`

var (
	reHeading = regexp.MustCompile(`^#{1,6}\s+(.+)$`)

	// Dutch and English weekday abbreviation followed by a day-and-month token,
	// e.g. "di 10 jun" or "Sat 14 Sep".
	reWeekdayDate = regexp.MustCompile(`(?i)\b(?:ma|di|wo|do|vr|za|zo|mon|tue|wed|thu|fri|sat|sun)\.?\s+\d{1,2}\s+(?:` + monthAbbrevs + `)\b`)

	// Day number adjacent to a recognized month abbreviation, e.g. "10 jun"
	// or "04 okt '25".
	reDayMonth = regexp.MustCompile(`(?i)\b\d{1,2}\s*(?:` + monthAbbrevs + `)\b`)

	rePrice = regexp.MustCompile(`(?i)[€$£]|\bgratis\b|\bfree\b`)

	reImageRef      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	reLinkRef       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	reHorizontalBar = regexp.MustCompile(`^\s*(?:-{3,}|\*{3,}|_{3,})\s*$`)
	reWhitespace    = regexp.MustCompile(`\s+`)
)

// datesSectionMarkers identify headings that introduce a block of occurrence
// dates on iamsterdam-style event pages.
var datesSectionMarkers = []string{"datum", "data", "dates", "date", "wanneer", "when"}

// Result holds the structured fields extracted from one page's Markdown.
type Result struct {
	DateText    []string
	PriceText   string
	Description string
}

// Extract runs all three heuristics over the Markdown rendering of a page's
// main content. DateText is empty when no date-shaped lines are found and
// PriceText is empty when no price line is found; the caller substitutes the
// placeholder values. Extraction never fails: under-informative content is a
// normal outcome.
func Extract(markdown string) Result {
	return Result{
		DateText:    Dates(markdown),
		PriceText:   Price(markdown),
		Description: Description(markdown),
	}
}

// Dates scans for lines that look like occurrence dates. When the Markdown
// contains a recognized dates-section heading, the search is restricted to the
// text between that heading and the next one; otherwise the whole text is
// scanned, which may pick up unrelated date-shaped lines elsewhere on the
// page. Matching lines are returned verbatim, in order of appearance, without
// deduplication.
func Dates(markdown string) []string {
	region := datesSection(markdown)
	if region == "" {
		region = markdown
	}

	var dates []string
	for _, line := range strings.Split(region, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if reWeekdayDate.MatchString(line) || reDayMonth.MatchString(line) {
			dates = append(dates, line)
		}
	}
	return dates
}

// datesSection returns the text between a dates-section heading and the next
// heading, or "" when no such heading exists.
func datesSection(markdown string) string {
	lines := strings.Split(markdown, "\n")
	start := -1
	for i, line := range lines {
		m := reHeading.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if start >= 0 {
			return strings.Join(lines[start:i], "\n")
		}
		heading := strings.ToLower(strings.TrimSpace(m[1]))
		for _, marker := range datesSectionMarkers {
			if strings.Contains(heading, marker) {
				start = i + 1
				break
			}
		}
	}
	if start >= 0 {
		return strings.Join(lines[start:], "\n")
	}
	return ""
}

// Price returns the first line containing a currency symbol or the tokens
// "Gratis"/"Free", or "" when no line qualifies.
func Price(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rePrice.MatchString(line) {
			return line
		}
	}
	return ""
}

// Description selects the first substantive paragraph of prose: headings,
// image references and horizontal rules are stripped, link references are
// rewritten to their visible text, and the first paragraph whose collapsed
// form exceeds the minimum length wins. Returns "" when no paragraph
// qualifies.
func Description(markdown string) string {
	var cleaned []string
	for _, line := range strings.Split(markdown, "\n") {
		if reHeading.MatchString(strings.TrimSpace(line)) || reHorizontalBar.MatchString(line) {
			cleaned = append(cleaned, "")
			continue
		}
		line = reImageRef.ReplaceAllString(line, "")
		line = reLinkRef.ReplaceAllString(line, "$1")
		cleaned = append(cleaned, line)
	}

	for _, paragraph := range strings.Split(strings.Join(cleaned, "\n"), "\n\n") {
		collapsed := strings.TrimSpace(reWhitespace.ReplaceAllString(paragraph, " "))
		if len(collapsed) > minDescriptionLength {
			return collapsed
		}
	}
	return ""
}

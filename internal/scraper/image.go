package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// imageSelectors are tried in order against the full page; the iamsterdam
// pages serve their hero images through a Next.js proxy, hence the src
// substring matches.
var imageSelectors = []string{
	`img[src*="thefeedfactory"]`,
	`meta[property="og:image"]`,
	`img[alt*="Amsterdam"]`,
	`img[src*="_next/image"]`,
	`.hero-image img`,
	`article img`,
	`main img`,
}

// extractImage finds a representative image URL for an event page. The
// selector list runs first; the readability lead image is the fallback.
// Returns "" when nothing suitable is found.
func extractImage(pageHTML, readabilityImage, pageURL string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err == nil {
		for _, selector := range imageSelectors {
			sel := doc.Find(selector).First()
			if sel.Length() == 0 {
				continue
			}

			attr := "src"
			if strings.HasPrefix(selector, "meta") {
				attr = "content"
			}
			if raw, ok := sel.Attr(attr); ok && raw != "" {
				return normalizeImageURL(raw, pageURL)
			}
		}
	}

	if readabilityImage != "" {
		return normalizeImageURL(readabilityImage, pageURL)
	}
	return ""
}

// normalizeImageURL unwraps the Next.js image proxy (the original image URL
// travels in a ?url= query parameter) and makes relative URLs absolute.
func normalizeImageURL(raw, pageURL string) string {
	if strings.Contains(raw, "thefeedfactory") && strings.Contains(raw, "url=") {
		if u, err := url.Parse(raw); err == nil {
			if original := u.Query().Get("url"); original != "" {
				raw = original
			}
		}
	}

	if strings.HasPrefix(raw, "/") {
		base, err := url.Parse(pageURL)
		if err != nil {
			return raw
		}
		ref, err := url.Parse(raw)
		if err != nil {
			return raw
		}
		return base.ResolveReference(ref).String()
	}
	return raw
}

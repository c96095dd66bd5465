package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/lassebenni/amsterdam-events-feed/internal/event"
	"github.com/lassebenni/amsterdam-events-feed/internal/extract"
	"github.com/lassebenni/amsterdam-events-feed/internal/translate"
)

// eventKeywords mark a listing-page link as a likely event.
var eventKeywords = []string{
	"amsterdam 750", "tentoonstelling", "concert", "festival", "museum",
	"expositie", "show", "wandeling", "tour", "kunst", "theater", "muziek",
	"evenement", "activiteit", "bezienswaardigheid", "elephant parade",
	"grachtenfestival", "sail", "canal parade",
}

// skipTerms identify navigation chrome and site furniture.
var skipTerms = []string{
	"nederlands", "english", "deutsch", "français", "español", "cookies",
	"privacy", "contact", "volg ons", "over ons", "taal", "language",
	"filter", "sorteren", "ontdek amsterdam", "i amsterdam store",
	"city card", "volgende", "meer data",
}

// hrefKeywords mark a link target as event-like when the title is not.
var hrefKeywords = []string{
	"event", "agenda", "activit", "museum", "festival", "concert", "tentoonstelling",
}

// locationIndicators are checked against page content when the title does not
// already name the place.
var locationIndicators = []string{
	"amsterdam", "museum", "theater", "concertgebouw", "vondelpark", "centrum", "beursplein",
}

// scrapeIAmsterdam walks the official agenda, discovers candidate event links
// by keyword heuristics, and builds a full Event per candidate from its
// detail page.
func (s *Scraper) scrapeIAmsterdam(ctx context.Context, b *budget) []*event.Event {
	doc, err := s.fetchDocument(ctx, s.primaryURL)
	if err != nil {
		s.log.Error("scraping I amsterdam agenda failed", zap.Error(err))
		return nil
	}
	base, err := url.Parse(s.primaryURL)
	if err != nil {
		s.log.Error("parsing agenda URL failed", zap.Error(err))
		return nil
	}

	var events []*event.Event
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(events) >= iamsterdamCap {
			return false
		}

		href, _ := sel.Attr("href")
		title := strings.TrimSpace(sel.Text())
		if !isCandidateLink(title, href) {
			return true
		}
		if !b.take() {
			return false
		}

		link := resolveURL(base, href)
		evt, err := s.candidateEvent(ctx, title, link)
		if err != nil {
			s.log.Warn("skipping candidate", zap.String("url", link), zap.Error(err))
			return true
		}
		events = append(events, evt)
		return true
	})

	s.log.Info("scraped I amsterdam agenda", zap.Int("events", len(events)))
	return events
}

// isCandidateLink applies the title/href keyword heuristics from the agenda
// listing page.
func isCandidateLink(title, href string) bool {
	if href == "" || len(title) < 10 {
		return false
	}

	lower := strings.ToLower(title)
	for _, skip := range skipTerms {
		if strings.Contains(lower, skip) {
			return false
		}
	}
	for _, kw := range eventKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	lowerHref := strings.ToLower(href)
	for _, kw := range hrefKeywords {
		if strings.Contains(lowerHref, kw) {
			return true
		}
	}
	return false
}

// candidateEvent fetches one candidate URL and assembles its Event record:
// main-content isolation, Markdown conversion, field extraction, date token
// translation, tag and location detection, image extraction.
func (s *Scraper) candidateEvent(ctx context.Context, title, link string) (*event.Event, error) {
	pageHTML, err := s.fetchHTML(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("fetching candidate page: %w", err)
	}

	evt, err := event.New(title, link, sourceIAmsterdam)
	if err != nil {
		return nil, err
	}

	content := mainContent(pageHTML, link)
	markdown := toMarkdown(content.html)

	res := extract.Extract(markdown)
	evt.SetDates(translate.Dates(res.DateText))
	evt.SetPrice(res.PriceText)

	description := res.Description
	if description == "" {
		description = fmt.Sprintf("Discover this Amsterdam event: %s", title)
	}
	evt.Description = s.translator.Text(ctx, description)

	evt.Tags = detectTags(markdown)
	if loc := detectLocation(markdown, title); loc != "" {
		evt.Location = loc
	}
	if img := extractImage(pageHTML, content.image, link); img != "" {
		evt.Image = img
	}

	return evt, nil
}

// detectTags finds the fixed set of campaign tags in page content.
func detectTags(text string) []string {
	lower := strings.ToLower(text)
	tags := []string{}
	if strings.Contains(lower, "amsterdam 750") {
		tags = append(tags, "Amsterdam 750 events")
	}
	if strings.Contains(lower, "gratis") || strings.Contains(lower, "free") {
		tags = append(tags, "Gratis entree")
	}
	if strings.Contains(lower, "toekomsttiendaagse") {
		tags = append(tags, "ToekomstTiendaagse")
	}
	return tags
}

// detectLocation returns a display-cased location indicator found in the page
// content but absent from the title, or "" to keep the default.
func detectLocation(text, title string) string {
	lowerText := strings.ToLower(text)
	lowerTitle := strings.ToLower(title)
	for _, indicator := range locationIndicators {
		if strings.Contains(lowerText, indicator) && !strings.Contains(lowerTitle, indicator) {
			return strings.ToUpper(indicator[:1]) + indicator[1:]
		}
	}
	return ""
}

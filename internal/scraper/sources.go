package scraper

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/lassebenni/amsterdam-events-feed/internal/event"
)

// Fallback sources produce listing-only records: title, link and a short
// description, with placeholder dates and prices. They are consulted only
// when the primary agenda comes up short.

var reListingClass = regexp.MustCompile(`(?i)event|listing|card`)

var eventbriteSkipTerms = []string{"sign up", "log in", "create"}

var amsterdamNLKeywords = []string{
	"event", "festival", "show", "concert", "exhibition", "museum", "tour", "market",
}

// scrapeEventbrite picks public event links (the /e/ path) off the Eventbrite
// Amsterdam search page.
func (s *Scraper) scrapeEventbrite(ctx context.Context, b *budget) []*event.Event {
	doc, err := s.fetchDocument(ctx, s.eventbriteURL)
	if err != nil {
		s.log.Error("scraping Eventbrite failed", zap.Error(err))
		return nil
	}
	base, err := url.Parse(s.eventbriteURL)
	if err != nil {
		s.log.Error("parsing Eventbrite URL failed", zap.Error(err))
		return nil
	}

	var events []*event.Event
	doc.Find(`a[href*="/e/"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(events) >= eventbriteCap {
			return false
		}

		title := strings.TrimSpace(sel.Text())
		href, _ := sel.Attr("href")
		if len(title) <= 10 || href == "" {
			return true
		}
		lower := strings.ToLower(title)
		for _, skip := range eventbriteSkipTerms {
			if strings.Contains(lower, skip) {
				return true
			}
		}
		if !b.take() {
			return false
		}

		evt, err := event.New("Eventbrite: "+title, resolveURL(base, href), sourceEventbrite)
		if err != nil {
			s.log.Warn("skipping Eventbrite link", zap.Error(err))
			return true
		}
		evt.Description = fmt.Sprintf("Find this event on Eventbrite: %s", title)
		evt.SetDates([]string{"Check Eventbrite for dates"})
		events = append(events, evt)
		return true
	})

	s.log.Info("scraped Eventbrite Amsterdam", zap.Int("events", len(events)))
	return events
}

// scrapeTimeOut walks Time Out's things-to-do listing cards.
func (s *Scraper) scrapeTimeOut(ctx context.Context, b *budget) []*event.Event {
	doc, err := s.fetchDocument(ctx, s.timeoutURL)
	if err != nil {
		s.log.Error("scraping Time Out failed", zap.Error(err))
		return nil
	}
	base, err := url.Parse(s.timeoutURL)
	if err != nil {
		s.log.Error("parsing Time Out URL failed", zap.Error(err))
		return nil
	}

	var events []*event.Event
	doc.Find("div, article").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		if len(events) >= timeoutCap {
			return false
		}

		class, _ := item.Attr("class")
		if !reListingClass.MatchString(class) {
			return true
		}

		titleSel := item.Find("h1, h2, h3").First()
		if titleSel.Length() == 0 {
			titleSel = item.Find("a").First()
		}
		title := strings.TrimSpace(titleSel.Text())

		linkSel := item.Find("a[href]").First()
		href, ok := linkSel.Attr("href")
		if !ok || title == "" || len(title) <= 5 {
			return true
		}
		if !b.take() {
			return false
		}

		evt, err := event.New(title, resolveURL(base, href), sourceTimeOut)
		if err != nil {
			s.log.Warn("skipping Time Out card", zap.Error(err))
			return true
		}
		if desc := strings.TrimSpace(item.Find("p").First().Text()); desc != "" {
			evt.Description = desc
		} else {
			evt.Description = fmt.Sprintf("Time Out Amsterdam: %s", title)
		}
		events = append(events, evt)
		return true
	})

	s.log.Info("scraped Time Out Amsterdam", zap.Int("events", len(events)))
	return events
}

// scrapeAmsterdamNL picks activity links off the municipal site's English
// front page.
func (s *Scraper) scrapeAmsterdamNL(ctx context.Context, b *budget) []*event.Event {
	doc, err := s.fetchDocument(ctx, s.amsterdamNLURL)
	if err != nil {
		s.log.Error("scraping Amsterdam.nl failed", zap.Error(err))
		return nil
	}
	base, err := url.Parse(s.amsterdamNLURL)
	if err != nil {
		s.log.Error("parsing Amsterdam.nl URL failed", zap.Error(err))
		return nil
	}

	var events []*event.Event
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(events) >= amsterdamNLCap {
			return false
		}

		href, _ := sel.Attr("href")
		title := strings.TrimSpace(sel.Text())
		if len(title) <= 10 || href == "" || strings.HasPrefix(href, "#") {
			return true
		}
		lower := strings.ToLower(title)
		matched := false
		for _, kw := range amsterdamNLKeywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			return true
		}
		if !b.take() {
			return false
		}

		evt, err := event.New("Amsterdam Activity: "+title, resolveURL(base, href), sourceAmsterdamNL)
		if err != nil {
			s.log.Warn("skipping Amsterdam.nl link", zap.Error(err))
			return true
		}
		evt.Description = fmt.Sprintf("Discover this activity in Amsterdam: %s", title)
		evt.SetDates([]string{"Ongoing"})
		events = append(events, evt)
		return true
	})

	s.log.Info("scraped Amsterdam.nl", zap.Int("events", len(events)))
	return events
}

package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lassebenni/amsterdam-events-feed/internal/config"
	"github.com/lassebenni/amsterdam-events-feed/internal/event"
	"github.com/lassebenni/amsterdam-events-feed/internal/translate"
)

// Source pages and their labels as they appear in feed items.
const (
	IAmsterdamURL  = "https://www.iamsterdam.com/uit/agenda"
	EventbriteURL  = "https://www.eventbrite.com/d/netherlands--amsterdam/events/"
	TimeOutURL     = "https://www.timeout.com/amsterdam/things-to-do"
	AmsterdamNLURL = "https://www.amsterdam.nl/en/"

	sourceIAmsterdam  = "I Amsterdam Official"
	sourceEventbrite  = "Eventbrite Amsterdam"
	sourceTimeOut     = "Time Out Amsterdam"
	sourceAmsterdamNL = "Amsterdam.nl"
)

// Per-source event caps, matching the published feed's volume.
const (
	iamsterdamCap  = 15
	eventbriteCap  = 5
	timeoutCap     = 15
	amsterdamNLCap = 10
)

// Scraper fetches the source pages and assembles Event records. Per-candidate
// failures are logged and skipped; a source that fails entirely contributes
// zero events and the run continues.
type Scraper struct {
	client        *http.Client
	limiter       *rate.Limiter
	translator    *translate.Remote
	log           *zap.Logger
	userAgent     string
	primaryTarget int

	// Entry points are fixed in production; tests point them at fixtures.
	primaryURL     string
	eventbriteURL  string
	timeoutURL     string
	amsterdamNLURL string
}

// New creates a Scraper from the run configuration.
func New(cfg *config.Config, log *zap.Logger) *Scraper {
	return &Scraper{
		client:         &http.Client{Timeout: cfg.HTTPTimeout},
		limiter:        rate.NewLimiter(rate.Every(cfg.RequestInterval), 1),
		translator:     translate.NewRemote(cfg.TranslateEndpoint, cfg.HTTPTimeout, log),
		log:            log,
		userAgent:      cfg.UserAgent,
		primaryTarget:  cfg.PrimaryTarget,
		primaryURL:     IAmsterdamURL,
		eventbriteURL:  EventbriteURL,
		timeoutURL:     TimeOutURL,
		amsterdamNLURL: AmsterdamNLURL,
	}
}

// Run performs one linear pass over the sources: the official agenda first,
// then the fallback sources when the agenda yields fewer events than the
// configured target. limit bounds the number of candidate URLs processed
// across all sources; zero means no bound.
func (s *Scraper) Run(ctx context.Context, limit int) []*event.Event {
	b := newBudget(limit)

	events := s.scrapeIAmsterdam(ctx, b)

	if len(events) < s.primaryTarget {
		s.log.Info("primary source below target, adding fallback sources",
			zap.Int("primary_events", len(events)),
			zap.Int("target", s.primaryTarget))
		events = append(events, s.scrapeEventbrite(ctx, b)...)
		events = append(events, s.scrapeTimeOut(ctx, b)...)
		events = append(events, s.scrapeAmsterdamNL(ctx, b)...)
	}

	s.log.Info("scraping complete", zap.Int("events", len(events)))
	return events
}

// fetchHTML fetches a page through the rate limiter and returns its body.
func (s *Scraper) fetchHTML(ctx context.Context, rawURL string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(body), nil
}

// fetchDocument fetches a page and parses it with goquery.
func (s *Scraper) fetchDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	body, err := s.fetchHTML(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// resolveURL makes href absolute against the page it was found on.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// budget bounds how many candidate URLs one run may process.
type budget struct {
	remaining int
	unlimited bool
}

func newBudget(limit int) *budget {
	if limit <= 0 {
		return &budget{unlimited: true}
	}
	return &budget{remaining: limit}
}

// take consumes one candidate slot, reporting false once the budget is spent.
func (b *budget) take() bool {
	if b.unlimited {
		return true
	}
	if b.remaining == 0 {
		return false
	}
	b.remaining--
	return true
}

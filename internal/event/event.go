package event

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Fallback values used when extraction finds nothing usable. A record carrying
// one of these is a successful result, not a failure.
const (
	PlaceholderDates = "Check website for dates"
	PlaceholderPrice = "Check website for prices"
	DefaultLocation  = "Amsterdam"
)

// Event represents one discovered Amsterdam event listing.
type Event struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description,omitempty"`
	Source      string    `json:"source"`
	DateText    []string  `json:"date_text"`
	PriceText   string    `json:"price_text"`
	PubDate     time.Time `json:"pub_date"`
	Tags        []string  `json:"tags"`
	Location    string    `json:"location"`
	Image       string    `json:"image,omitempty"`
}

// New creates an Event with defaults applied: placeholder dates and price,
// Amsterdam as the location, and the current UTC time as the publication date.
// It returns an error when the title is empty or the link is not an absolute URL.
func New(title, link, source string) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("event title is empty")
	}

	u, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("parsing event link %q: %w", link, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("event link %q is not an absolute URL", link)
	}

	return &Event{
		Title:     title,
		Link:      u.String(),
		Source:    source,
		DateText:  []string{PlaceholderDates},
		PriceText: PlaceholderPrice,
		PubDate:   time.Now().UTC(),
		Tags:      []string{},
		Location:  DefaultLocation,
	}, nil
}

// SetDates replaces the date strings, falling back to the placeholder when the
// given slice is empty so the one-element minimum always holds.
func (e *Event) SetDates(dates []string) {
	if len(dates) == 0 {
		e.DateText = []string{PlaceholderDates}
		return
	}
	e.DateText = dates
}

// SetPrice replaces the price string, falling back to the placeholder when the
// given string is blank.
func (e *Event) SetPrice(price string) {
	price = strings.TrimSpace(price)
	if price == "" {
		e.PriceText = PlaceholderPrice
		return
	}
	e.PriceText = price
}

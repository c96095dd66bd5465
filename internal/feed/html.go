package feed

import (
	"fmt"
	"html"
	"strings"

	"github.com/lassebenni/amsterdam-events-feed/internal/event"
)

// ItemHTML renders the rich HTML card embedded in each feed item. Every
// field value is HTML-escaped; the page content is user-sourced.
func ItemHTML(evt *event.Event) string {
	var b strings.Builder

	b.WriteString(`<div class="amsterdam-event-card">`)
	b.WriteString(`<div class="event-details">`)

	writeInfoLine(&b, "Date:", strings.Join(escapeAll(evt.DateText), ", "))
	writeInfoLine(&b, "Location:", html.EscapeString(evt.Location))
	writeInfoLine(&b, "Source:", html.EscapeString(evt.Source))
	if len(evt.Tags) > 0 {
		writeInfoLine(&b, "Tags:", strings.Join(escapeAll(evt.Tags), " &bull; "))
	}
	writeInfoLine(&b, "Price:", html.EscapeString(evt.PriceText))

	b.WriteString(`</div>`)

	if evt.Description != "" && evt.Description != evt.Title {
		b.WriteString(`<div class="event-description">`)
		fmt.Fprintf(&b, `<p class="event-description-text">%s</p>`, html.EscapeString(evt.Description))
		b.WriteString(`</div>`)
	}

	b.WriteString(`<div class="event-actions">`)
	fmt.Fprintf(&b, `<a href="%s" target="_blank" rel="noopener" class="event-link">View Event Details</a>`,
		html.EscapeString(evt.Link))
	b.WriteString(`</div>`)

	b.WriteString(`</div>`)
	return b.String()
}

func writeInfoLine(b *strings.Builder, label, escapedValue string) {
	b.WriteString(`<div class="event-info-line">`)
	fmt.Fprintf(b, `<span class="event-label">%s</span>`, label)
	fmt.Fprintf(b, `<span class="event-value">%s</span>`, escapedValue)
	b.WriteString(`</div>`)
}

func escapeAll(values []string) []string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = html.EscapeString(v)
	}
	return escaped
}

package feed

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lassebenni/amsterdam-events-feed/internal/event"
)

var testMeta = Metadata{
	Title:       "Amsterdam Events Feed",
	Link:        "https://raw.githubusercontent.com/lassebenni/amsterdam-events-feed/master/events.xml",
	Description: "Curated upcoming events and activities in Amsterdam",
	Language:    "en",
	Generator:   "Amsterdam Events Scraper",
}

func testEvent(t *testing.T) *event.Event {
	t.Helper()
	evt, err := event.New("Grachtenfestival 2025", "https://www.iamsterdam.com/uit/agenda/grachtenfestival", "I Amsterdam Official")
	require.NoError(t, err)
	evt.Description = "Ten days of classical music on the Amsterdam canals."
	evt.SetDates([]string{"Fri 15 Aug", "Sat 16 Aug"})
	evt.SetPrice("Toegang: Gratis entree")
	evt.Tags = []string{"Gratis entree"}
	evt.Image = "https://images.example.com/grachten.jpg"
	evt.PubDate = time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	return evt
}

func TestRenderRSS(t *testing.T) {
	now := time.Date(2025, 8, 2, 9, 30, 0, 0, time.UTC)
	data, err := RenderRSS([]*event.Event{testEvent(t)}, testMeta, now)
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().ParseString(string(data))
	require.NoError(t, err, "emitted RSS must parse")

	assert.Equal(t, "Amsterdam Events Feed", parsed.Title)
	assert.Equal(t, "en", parsed.Language)
	require.Len(t, parsed.Items, 1)

	item := parsed.Items[0]
	assert.Equal(t, "Grachtenfestival 2025", item.Title)
	assert.Equal(t, "https://www.iamsterdam.com/uit/agenda/grachtenfestival", item.Link)
	assert.Equal(t, item.Link, item.GUID, "guid should equal the link")
	assert.Equal(t, "Ten days of classical music on the Amsterdam canals.", item.Description)

	require.NotNil(t, item.PublishedParsed)
	assert.True(t, item.PublishedParsed.Equal(time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)))

	require.Len(t, item.Enclosures, 1)
	assert.Equal(t, "https://images.example.com/grachten.jpg", item.Enclosures[0].URL)
	assert.Equal(t, "image/jpeg", item.Enclosures[0].Type)
	assert.Equal(t, "0", item.Enclosures[0].Length)

	assert.Contains(t, item.Content, "Fri 15 Aug")
	assert.Contains(t, item.Content, "View Event Details")
}

func TestRenderRSSChannelDates(t *testing.T) {
	now := time.Date(2025, 8, 2, 9, 30, 0, 0, time.UTC)
	data, err := RenderRSS(nil, testMeta, now)
	require.NoError(t, err)

	assert.Contains(t, string(data), now.Format(time.RFC1123Z))
	assert.Contains(t, string(data), `xmlns:content="http://purl.org/rss/1.0/modules/content/"`)
	assert.Contains(t, string(data), `<rss version="2.0"`)
}

func TestRenderRSSCDATATermination(t *testing.T) {
	evt := testEvent(t)
	evt.Description = "tricky ]]> sequence inside the description"

	data, err := RenderRSS([]*event.Event{evt}, testMeta, time.Now().UTC())
	require.NoError(t, err)

	// The document must survive a strict XML decode.
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		_, err := decoder.Token()
		if err != nil {
			require.Contains(t, err.Error(), "EOF", "XML should stay well-formed: %v", err)
			break
		}
	}

	parsed, perr := gofeed.NewParser().ParseString(string(data))
	require.NoError(t, perr)
	require.Len(t, parsed.Items, 1)
	assert.Contains(t, parsed.Items[0].Content, "]]&gt;")
}

func TestRenderRSSEscapesHTMLValues(t *testing.T) {
	evt := testEvent(t)
	evt.Description = `<script>alert("x")</script> long enough description for the card`

	html := ItemHTML(evt)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestItemHTMLOmitsEmptySections(t *testing.T) {
	evt, err := event.New("Museumnacht Amsterdam", "https://example.com/museumnacht", "Test")
	require.NoError(t, err)

	html := ItemHTML(evt)
	assert.NotContains(t, html, "event-description", "no description block without a description")
	assert.NotContains(t, html, "Tags:", "no tags line without tags")
	assert.Contains(t, html, event.PlaceholderDates)
	assert.Contains(t, html, event.PlaceholderPrice)
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON([]*event.Event{testEvent(t)})
	require.NoError(t, err)

	var decoded []*event.Event
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)

	assert.Equal(t, "Grachtenfestival 2025", decoded[0].Title)
	assert.Equal(t, []string{"Fri 15 Aug", "Sat 16 Aug"}, decoded[0].DateText)
	assert.Equal(t, "Toegang: Gratis entree", decoded[0].PriceText)
	assert.True(t, decoded[0].PubDate.Equal(time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)))
}

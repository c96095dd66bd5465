package feed

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/lassebenni/amsterdam-events-feed/internal/event"
)

// Metadata holds the static channel-level feed fields.
type Metadata struct {
	Title       string
	Link        string
	Description string
	Language    string
	Generator   string
}

type rssFeed struct {
	XMLName   xml.Name    `xml:"rss"`
	Version   string      `xml:"version,attr"`
	ContentNS string      `xml:"xmlns:content,attr"`
	Channel   *rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	Generator     string    `xml:"generator"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	GUID        rssGUID       `xml:"guid"`
	PubDate     string        `xml:"pubDate"`
	Description string        `xml:"description"`
	Content     rssContent
	Enclosure   *rssEnclosure `xml:"enclosure,omitempty"`
}

type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// rssContent carries the rendered HTML card. The ,cdata encoding keeps the
// document well-formed even when the body contains a literal "]]>".
type rssContent struct {
	XMLName xml.Name `xml:"content:encoded"`
	Value   string   `xml:",cdata"`
}

type rssEnclosure struct {
	URL    string `xml:"url,attr"`
	Type   string `xml:"type,attr"`
	Length string `xml:"length,attr"`
}

// RenderRSS serializes the event list as a complete RSS 2.0 document.
// lastBuildDate reflects the serialization time, not any item's time.
func RenderRSS(events []*event.Event, meta Metadata, now time.Time) ([]byte, error) {
	channel := &rssChannel{
		Title:         meta.Title,
		Link:          meta.Link,
		Description:   meta.Description,
		Language:      meta.Language,
		Generator:     meta.Generator,
		LastBuildDate: now.UTC().Format(time.RFC1123Z),
		Items:         make([]rssItem, 0, len(events)),
	}

	for _, evt := range events {
		item := rssItem{
			Title:       evt.Title,
			Link:        evt.Link,
			GUID:        rssGUID{IsPermaLink: "false", Value: evt.Link},
			PubDate:     evt.PubDate.UTC().Format(time.RFC1123Z),
			Description: evt.Description,
			Content:     rssContent{Value: ItemHTML(evt)},
		}
		if evt.Image != "" {
			// Declared length is unknown; most consumers ignore it.
			item.Enclosure = &rssEnclosure{URL: evt.Image, Type: "image/jpeg", Length: "0"}
		}
		channel.Items = append(channel.Items, item)
	}

	doc := rssFeed{
		Version:   "2.0",
		ContentNS: "http://purl.org/rss/1.0/modules/content/",
		Channel:   channel,
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding RSS feed: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// RenderJSON serializes the event list as an indented JSON array, a debuggable
// mirror of the feed state.
func RenderJSON(events []*event.Event) ([]byte, error) {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding events JSON: %w", err)
	}
	return data, nil
}

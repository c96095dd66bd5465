package scraper

import (
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	readability "github.com/go-shiori/go-readability"
)

// pageContent is the isolated main region of a detail page.
type pageContent struct {
	html  string
	image string
}

// mainContent isolates the main content region of a page with a
// readability-style extractor. When isolation fails or yields nothing the
// whole page is used, which the downstream extraction heuristics tolerate.
func mainContent(pageHTML, pageURL string) pageContent {
	u, err := url.Parse(pageURL)
	if err != nil {
		return pageContent{html: pageHTML}
	}

	article, err := readability.FromReader(strings.NewReader(pageHTML), u)
	if err != nil || strings.TrimSpace(article.Content) == "" {
		return pageContent{html: pageHTML}
	}
	return pageContent{html: article.Content, image: article.Image}
}

// toMarkdown converts an HTML fragment to Markdown, the form the extraction
// heuristics operate on. Conversion failure yields "" and downstream
// placeholder fallbacks.
func toMarkdown(htmlFragment string) string {
	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(htmlFragment)
	if err != nil {
		return ""
	}
	return markdown
}

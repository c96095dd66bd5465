// Package scraper fetches a fixed small set of Amsterdam event listing pages
// and assembles Event records from them.
//
// The official I amsterdam agenda is the primary source: candidate event
// links are discovered by keyword heuristics, each candidate's detail page is
// reduced to its main content, converted to Markdown and run through the
// extraction heuristics. Fallback sources (Eventbrite, Time Out,
// Amsterdam.nl) contribute listing-only records when the agenda comes up
// short. One linear pass per run; failed candidates are skipped, never fatal.
package scraper

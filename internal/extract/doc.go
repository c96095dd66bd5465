// Package extract turns the Markdown rendering of an event page's main
// content into structured date, price and description fields.
//
// The extraction is a best-effort text-pattern heuristic over uncontrolled
// third-party content, not a parser: regex line scans for date-shaped text,
// a first-currency-line rule for prices, and a first-substantive-paragraph
// rule for descriptions. Pages that yield none of these are still successful
// extractions; the caller falls back to placeholder values.
package extract

// Package feed renders the final event list as an RSS 2.0 document with an
// embedded HTML card per item, and as a JSON array mirroring the in-memory
// records. Both renderers are pure: they produce complete byte slices and do
// no I/O.
package feed

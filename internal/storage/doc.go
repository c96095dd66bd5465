// Package storage writes the RSS and JSON output files. Writes are atomic
// (temp file plus rename) so a failed run cannot leave a truncated feed.
package storage

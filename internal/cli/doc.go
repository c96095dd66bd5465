// Package cli wires the pipeline together behind a single cobra command:
// scrape the sources, deduplicate, render RSS and JSON, write the output
// files, and optionally publish them. A run that finds no events writes
// nothing and reports that outcome on stdout.
package cli

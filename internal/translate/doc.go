// Package translate rewrites Dutch date tokens to English and optionally
// translates free text through a remote service.
//
// Date translation is a pure, deterministic lookup-table rewrite of day and
// month abbreviations followed by title-casing; there is no calendar parsing
// or locale inference. The remote text translator is best-effort and falls
// back to the original text on any failure.
package translate

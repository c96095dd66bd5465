// Package event defines the structured representation of one scraped Amsterdam
// event listing.
//
// An Event is created once per successfully processed candidate URL and is not
// mutated after assembly. Title and link are always present; dates, price and
// location fall back to fixed placeholder values when the source page yields
// nothing usable, which is a normal outcome rather than an error.
package event

// Package dedup filters an event list by normalized-title collision.
//
// The policy is deliberately coarse: exact equality of lower-cased,
// symbol-stripped titles with a short-title floor. It can over-merge distinct
// events sharing a title pattern, which is accepted behavior.
package dedup

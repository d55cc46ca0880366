// Package source provides the random collaborators the generators draw from.
//
// Range draws numbers uniformly from inclusive ranges of any fixed width
// numeric type. Temporal draws local date-times from a window of years.
// Neither is safe for concurrent use.
package source

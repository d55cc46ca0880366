package primitive

import "time"

// Instant is an absolute point in time, always kept at UTC.
//
// It exists next to time.Time so that a struct field can declare which of the
// two semantics it wants: time.Time fields are bewitched as zoned date-times in
// the local zone, Instant fields as UTC instants.
type Instant struct {
	time.Time
}

// InstantOf returns the instant t refers to, normalized to UTC.
func InstantOf(t time.Time) Instant {
	return Instant{Time: t.UTC()}
}

// Equal reports whether i and u represent the same point in time.
func (i Instant) Equal(u Instant) bool {
	return i.Time.Equal(u.Time)
}

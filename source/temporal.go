package source

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/brianvoe/gofakeit/v7"
)

var ErrInvalidYearRange = errors.New("source: invalid year range")

// Temporal is a TemporalSource backed by a gofakeit faker.
type Temporal struct {
	faker *gofakeit.Faker
}

func NewTemporal(faker *gofakeit.Faker) *Temporal {
	return &Temporal{faker: faker}
}

// Between returns a local date-time uniformly distributed from the first
// instant of yearLow up to, but excluding, the first instant of yearHigh.
func (t *Temporal) Between(yearLow, yearHigh int) (civil.DateTime, error) {
	if yearHigh <= yearLow {
		return civil.DateTime{}, fmt.Errorf("%w: [%d, %d)", ErrInvalidYearRange, yearLow, yearHigh)
	}

	start := time.Date(yearLow, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(yearHigh, time.January, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)

	return civil.DateTimeOf(t.faker.DateRange(start, end).UTC()), nil
}

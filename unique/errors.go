package unique

import (
	"errors"
	"fmt"
)

// ErrExhausted is matched by every *ExhaustionError.
var ErrExhausted = errors.New("unique: no more unique values")

// ExhaustionError reports that an operation kept producing known values.
type ExhaustionError struct {
	Operation Operation
	// Attempts is the number of producer invocations made before giving up.
	Attempts int
	// Last is the final candidate, it was not recorded.
	Last any
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("unique: no new value from %s after %d attempts, last was %v",
		e.Operation, e.Attempts, e.Last)
}

func (e *ExhaustionError) Is(target error) bool {
	return target == ErrExhausted
}

package unique

import "reflect"

// MaxRetries bounds the producer invocations of a single Draw.
const MaxRetries = 100

// Operation names one operation of a capability set.
type Operation string

// Exemptions is the static set of operations excluded from uniqueness checks,
// typically configuration-only operations.
type Exemptions map[Operation]struct{}

// Exempt builds Exemptions from operation names.
func Exempt(ops ...Operation) Exemptions {
	ex := make(Exemptions, len(ops))
	for _, op := range ops {
		ex[op] = struct{}{}
	}

	return ex
}

// Session holds the fingerprints of every value a decorated instance returned.
// It only grows, discard it together with its decorator to start over.
type Session struct {
	exempt Exemptions
	seen   map[uint64]struct{}
}

// NewSession creates an empty session. The exemptions map is not copied and
// must not be modified afterwards.
func NewSession(exempt Exemptions) *Session {
	return &Session{
		exempt: exempt,
		seen:   make(map[uint64]struct{}),
	}
}

// IsExempt reports whether op bypasses uniqueness checks.
func (s *Session) IsExempt(op Operation) bool {
	_, ok := s.exempt[op]
	return ok
}

// Len returns the number of recorded fingerprints.
func (s *Session) Len() int {
	return len(s.seen)
}

// Seen reports whether a value equal to v was already returned.
func (s *Session) Seen(v any) bool {
	_, ok := s.seen[Fingerprint(v)]
	return ok
}

// record inserts the fingerprint of v and reports whether it was new.
func (s *Session) record(v any) bool {
	fp := Fingerprint(v)
	if _, ok := s.seen[fp]; ok {
		return false
	}

	s.seen[fp] = struct{}{}

	return true
}

// Draw invokes produce until it returns a value s has not seen yet.
//
// Exempt operations are invoked once and returned as is. Nil values are
// returned immediately and never recorded. Errors from produce are returned
// without retrying.
func Draw[T any](s *Session, op Operation, produce func() (T, error)) (T, error) {
	if s.IsExempt(op) {
		return produce()
	}

	var last T
	for range MaxRetries {
		candidate, err := produce()
		if err != nil {
			return candidate, err
		}

		if isNil(candidate) || s.record(candidate) {
			return candidate, nil
		}

		last = candidate
	}

	var zero T

	return zero, &ExhaustionError{Operation: op, Attempts: MaxRetries, Last: last}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return false
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
}

// Package unique enforces no-repeat semantics over value producing operations.
//
// A Session remembers a fingerprint of every non-nil value it handed out.
// Draw invokes a producer until it yields a value whose fingerprint is new,
// giving up after MaxRetries attempts with an *ExhaustionError.
//
// Capability sets are decorated explicitly: the decorator implements the same
// interface as the producer it wraps and routes every method through Draw,
// naming the method with an Operation. Operations listed in the session's
// Exemptions bypass the check entirely.
//
// A Session is not safe for concurrent use. Callers sharing one decorated
// producer must serialize access themselves, or own one decorator each.
package unique

package core

import "strings"

// DefaultMaxLength is the logical size cap, in bytes, applied to a log file
// when the caller does not specify one.
const DefaultMaxLength = 5000

// Behaviour selects the overflow policy applied when an append would push a
// log file past its maximum length.
type Behaviour string

const (
	// Stop refuses the write and reports that the log is full.
	Stop Behaviour = "stop"
	// Ignore refuses the write silently.
	Ignore Behaviour = "ignore"
	// Split redirects the overflowing write to an indexed sibling file.
	Split Behaviour = "split"
	// Rewrite trims the oldest whole lines to make room, then appends.
	Rewrite Behaviour = "rewrite"
	// Continue appends past the limit; the limit becomes advisory.
	Continue Behaviour = "continue"
)

// String returns the wire-visible form of the behaviour.
func (b Behaviour) String() string {
	return string(b)
}

// Valid reports whether b is one of the five known policies.
func (b Behaviour) Valid() bool {
	switch b {
	case Stop, Ignore, Split, Rewrite, Continue:
		return true
	default:
		return false
	}
}

// ParseBehaviour converts a string to a Behaviour. The token is matched
// case-insensitively. For unknown tokens it returns the normalized input and
// false; callers are expected to downgrade to Stop with a warning.
func ParseBehaviour(s string) (Behaviour, bool) {
	b := Behaviour(strings.ToLower(strings.TrimSpace(s)))
	return b, b.Valid()
}

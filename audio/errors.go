package audio

import "fmt"

// InvariantError reports construction of a logical type with illegal values:
// negative or zero frequency, phase outside [0, 2π], non-ascending phase
// times, or a first phase coordinate that is not at t=0 and controlled.
type InvariantError struct {
	Field string
	Msg   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("audio: invariant violated for %s: %s", e.Field, e.Msg)
}

func invariantf(field, format string, args ...interface{}) *InvariantError {
	return &InvariantError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// InconsistentEnvelopeError reports that, after trimming, an envelope's
// times and levels could not be reconciled with the phase-defined duration
// of the partial.
type InconsistentEnvelopeError struct {
	Msg string
}

func (e *InconsistentEnvelopeError) Error() string {
	return fmt.Sprintf("audio: inconsistent envelope: %s", e.Msg)
}

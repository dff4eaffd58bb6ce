package score

import (
	"errors"
)

// Output field names read back from the scoring routine.
const (
	OutputClassification   = "EM_CLASSIFICATION"
	OutputEventProbability = "EM_EVENTPROBABILITY"
)

// Call status codes. A runtime failure that carries its own status
// propagates it unchanged; StatusInvokeFailed covers invocation failures
// with no runtime code attached.
const (
	StatusOK            = 0
	StatusPublishFailed = -1
	StatusInvokeFailed  = 1
)

// Result is the outcome of one scoring call: either the two output fields
// with StatusOK, or a non-zero status with no score populated. Produced
// fresh on every call, never cached.
type Result struct {
	Classification   string
	EventProbability float64
	Status           int
}

// statusOf maps an invocation error to the status code the caller sees.
func statusOf(err error) int {
	var rerr *RuntimeError
	if errors.As(err, &rerr) && rerr.Status != 0 {
		return rerr.Status
	}
	return StatusInvokeFailed
}

// Defines the embedding-service boundary the pipeline scores through.

package score

import (
	"fmt"
)

// Runtime is the embedding-service boundary: anything that can host a
// session, load the scoring program, and execute the bound routine satisfies
// it: an in-process interpreter, a subprocess, or an RPC bridge to a model
// server.
type Runtime interface {
	CreateSession() (Session, error)
}

// Session is one embedded execution context holding the loaded model
// artifact and, once published, the bound scoring routine. The adapter keeps
// at most one per process and shares it across calls; callers must not
// assume concurrent Execute calls are safe (the scorer serializes them).
type Session interface {
	// AppendSourceLine stages one line of the scoring program's source.
	AppendSourceLine(line string)
	// Publish builds the staged source under the deployment module
	// identifier and returns its revision. Revisions below 1 mean the
	// publish failed and the session holds no usable routine.
	Publish(moduleID string) (int, error)
	// SelectRoutine binds the named scoring routine for execution.
	SelectRoutine(name string) error
	// BindNumeric and BindText set named parameters for the next Execute.
	BindNumeric(name string, value float64) error
	BindText(name string, value string) error
	// Execute runs the selected routine on the bound parameters.
	Execute() error
	// ReadText and ReadNumeric fetch named outputs of the last Execute.
	ReadText(name string) (string, error)
	ReadNumeric(name string) (float64, error)
}

// RuntimeError is a failed runtime operation together with the status code
// the runtime reported. The scorer propagates Status to the caller
// unchanged, so runtimes control what the host driver sees on failure.
type RuntimeError struct {
	Op     string
	Status int
	Err    error
}

func (e *RuntimeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.Status)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

// Package interp hosts the scoring program in an in-process yaegi
// interpreter. It is the default Runtime implementation: each session
// evaluates the Go source published by the session manager, exposes the
// deployed model to it through the modelrt bridge package, and executes the
// scoring routine on the bound parameters.
package interp

import (
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/score-adapter/score-adapter/score"
)

// maxTextLen bounds text parameters, matching the widest fixed-width
// character slot the runtime will accept.
const maxTextLen = 32767

// Runtime status codes surfaced through score.RuntimeError.
const (
	statusNotPublished = 2
	statusNoRoutine    = 3
	statusBadSignature = 4
	statusBadBind      = 5
	statusExecFailed   = 6
	statusNoOutput     = 7
)

// Predictor is the model-artifact boundary: one fully populated record in,
// classification label and event probability out. The artifact's internal
// algorithm is opaque here.
type Predictor interface {
	Predict(num map[string]float64, txt map[string]string) (label string, probability float64, err error)
}

// Runtime creates yaegi-backed sessions that score through the given
// predictor.
type Runtime struct {
	predictor Predictor
}

func NewRuntime(p Predictor) *Runtime {
	return &Runtime{predictor: p}
}

// CreateSession builds a fresh interpreter with the stdlib symbols and the
// modelrt bridge loaded. Interpreted programs reach the model only through
// modelrt.Predict.
func (r *Runtime) CreateSession() (score.Session, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, err
	}
	predict := func(num map[string]float64, txt map[string]string) (string, float64, error) {
		return r.predictor.Predict(num, txt)
	}
	err := i.Use(interp.Exports{
		"modelrt/modelrt": {
			"Predict": reflect.ValueOf(predict),
		},
	})
	if err != nil {
		return nil, err
	}
	return &session{
		interp: i,
		num:    make(map[string]float64),
		txt:    make(map[string]string),
	}, nil
}

// routineFunc is the signature every published scoring routine must have.
type routineFunc = func(map[string]float64, map[string]string) (map[string]interface{}, error)

// session is one embedded execution context. The session manager performs
// Publish and SelectRoutine inside its loading critical section; the scorer
// serializes Execute and the binds feeding it. Every operation takes the
// session mutex regardless.
type session struct {
	mu        sync.Mutex
	interp    *interp.Interpreter
	source    strings.Builder
	revision  int
	published bool
	routine   routineFunc

	num     map[string]float64
	txt     map[string]string
	outputs map[string]interface{}
}

func (s *session) AppendSourceLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source.WriteString(line)
	s.source.WriteByte('\n')
}

// Publish evaluates the staged source. A failed evaluation reports revision
// 0; successful publishes count up from 1.
func (s *session) Publish(moduleID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.interp.Eval(s.source.String()); err != nil {
		return 0, &score.RuntimeError{Op: "publish " + moduleID, Status: score.StatusPublishFailed, Err: err}
	}
	s.revision++
	s.published = true
	return s.revision, nil
}

func (s *session) SelectRoutine(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.published {
		return &score.RuntimeError{Op: "selectRoutine " + name, Status: statusNotPublished}
	}
	v, err := s.interp.Eval("main." + name)
	if err != nil {
		return &score.RuntimeError{Op: "selectRoutine " + name, Status: statusNoRoutine, Err: err}
	}
	fn, ok := v.Interface().(routineFunc)
	if !ok {
		return &score.RuntimeError{Op: "selectRoutine " + name, Status: statusBadSignature}
	}
	s.routine = fn
	return nil
}

func (s *session) BindNumeric(name string, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.published {
		return &score.RuntimeError{Op: "bindNumeric " + name, Status: statusNotPublished}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &score.RuntimeError{Op: "bindNumeric " + name, Status: statusBadBind}
	}
	s.num[name] = value
	return nil
}

func (s *session) BindText(name string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.published {
		return &score.RuntimeError{Op: "bindText " + name, Status: statusNotPublished}
	}
	if len(value) > maxTextLen {
		return &score.RuntimeError{Op: "bindText " + name, Status: statusBadBind}
	}
	s.txt[name] = value
	return nil
}

func (s *session) Execute() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.routine == nil {
		return &score.RuntimeError{Op: "execute", Status: statusNoRoutine}
	}
	out, err := s.routine(s.num, s.txt)
	if err != nil {
		return &score.RuntimeError{Op: "execute", Status: statusExecFailed, Err: err}
	}
	s.outputs = out
	return nil
}

func (s *session) ReadText(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.outputs[name].(string)
	if !ok {
		return "", &score.RuntimeError{Op: "readText " + name, Status: statusNoOutput}
	}
	return v, nil
}

func (s *session) ReadNumeric(name string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.outputs[name].(float64)
	if !ok {
		return 0, &score.RuntimeError{Op: "readNumeric " + name, Status: statusNoOutput}
	}
	return v, nil
}

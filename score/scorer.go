package score

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Config ties one scorer to one deployed model.
type Config struct {
	Table    *ImputationTable
	Runtime  Runtime
	ModuleID string // stable identifier for this model deployment
	Routine  string // scoring routine name inside the published program
}

// Scorer is the per-deployment scoring pipeline: normalize → ensure session
// → invoke. Safe for concurrent use. Execute, and the binds feeding it, are
// serialized because the embedded runtime guarantees at most one in-flight
// execution per session.
type Scorer struct {
	normalizer *Normalizer
	manager    *SessionManager
	invoker    *Invoker

	execMu sync.Mutex
}

func NewScorer(cfg Config) *Scorer {
	return &Scorer{
		normalizer: NewNormalizer(cfg.Table),
		manager:    NewSessionManager(cfg.Runtime, RenderProgram(cfg.Routine), cfg.ModuleID),
		invoker:    NewInvoker(cfg.Routine),
	}
}

// SessionState reports the lifecycle state of the shared session.
func (s *Scorer) SessionState() SessionState {
	return s.manager.State()
}

// Score runs the pipeline for one raw record. Data-quality problems never
// fail the call; imputation absorbs them. The returned status is 0 on
// success, -1 when the scoring program could not be published, and otherwise
// the runtime's own status for the first fatal invocation error. Non-fatal
// bind failures are logged inside the invoker and do not change the outcome.
func (s *Scorer) Score(raw *Record) Result {
	callID := uuid.NewString()
	clean := s.normalizer.Normalize(raw)
	logrus.Debugf("call %s: normalized %d features", callID, clean.Len())

	sess, err := s.manager.Ensure()
	if err != nil {
		return Result{Status: StatusPublishFailed}
	}

	s.execMu.Lock()
	defer s.execMu.Unlock()

	res, err := s.invoker.Invoke(sess, clean)
	if err != nil {
		return Result{Status: statusOf(err)}
	}
	logrus.Debugf("call %s: scored %s p=%.4f", callID, res.Classification, res.EventProbability)
	return res
}

package score

import (
	"github.com/sirupsen/logrus"
)

// Invoker pushes one clean record into the session and runs the scoring
// routine. Routine selection, execution, and output reads are fatal for the
// call; an individual parameter bind failure is logged and tolerated, and
// the remaining features are still bound.
type Invoker struct {
	routine string
}

func NewInvoker(routine string) *Invoker {
	return &Invoker{routine: routine}
}

// Invoke returns the two output fields, or the first fatal error.
func (inv *Invoker) Invoke(sess Session, clean *Record) (Result, error) {
	if err := sess.SelectRoutine(inv.routine); err != nil {
		logrus.Errorf("routine %s not selectable: %v", inv.routine, err)
		return Result{}, err
	}

	for _, name := range clean.Names() {
		v, _ := clean.Get(name)
		var err error
		switch v.Kind {
		case KindNumeric:
			err = sess.BindNumeric(name, v.Number)
		case KindText:
			err = sess.BindText(name, v.Text)
		}
		if err != nil {
			// Tolerated: the call proceeds with the remaining binds.
			logrus.Warnf("bind of parameter %s failed: %v", name, err)
		}
	}

	if err := sess.Execute(); err != nil {
		logrus.Errorf("execute of routine %s failed: %v", inv.routine, err)
		return Result{}, err
	}

	label, err := sess.ReadText(OutputClassification)
	if err != nil {
		logrus.Errorf("read of output %s failed: %v", OutputClassification, err)
		return Result{}, err
	}
	prob, err := sess.ReadNumeric(OutputEventProbability)
	if err != nil {
		logrus.Errorf("read of output %s failed: %v", OutputEventProbability, err)
		return Result{}, err
	}

	return Result{Classification: label, EventProbability: prob, Status: StatusOK}, nil
}

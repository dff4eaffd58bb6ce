package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// cleanHMEQ returns the reference record after normalization.
func cleanHMEQ() *Record {
	return NewNormalizer(hmeqTable()).Normalize(hmeqRawRecord())
}

func TestInvoker_SelectionFailure_IsFatal(t *testing.T) {
	// GIVEN a session that cannot select the routine
	sess := newStubSession()
	sess.selectErr = &RuntimeError{Op: "selectRoutine Score", Status: 3}
	inv := NewInvoker("Score")

	// WHEN invoked
	_, err := inv.Invoke(sess, cleanHMEQ())

	// THEN the call fails before anything is bound or executed
	assert.Error(t, err)
	assert.Empty(t, sess.bindOrder)
	assert.Equal(t, 0, sess.execCalls)
}

func TestInvoker_BindFailure_ToleratedAndRemainingFeaturesBound(t *testing.T) {
	// A single bind failure is logged but does not abort the call;
	// every remaining feature must still be bound.
	sess := newStubSession()
	sess.bindErrs["MORTDUE"] = &RuntimeError{Op: "bindNumeric MORTDUE", Status: 5}
	sess.label, sess.prob = "bad", 0.73
	inv := NewInvoker("Score")

	// WHEN invoked
	res, err := inv.Invoke(sess, cleanHMEQ())

	// THEN the call still succeeds
	assert.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "bad", res.Classification)

	// AND every feature after the failed one was still bound
	assert.NotContains(t, sess.bindOrder, "MORTDUE")
	assert.Contains(t, sess.bindOrder, "VALUE")
	assert.Contains(t, sess.bindOrder, "DEBTINC")
	assert.Len(t, sess.bindOrder, 11)
}

func TestInvoker_BindsEveryFeatureWithDeclaredType(t *testing.T) {
	// GIVEN the normalized reference record
	sess := newStubSession()
	inv := NewInvoker("Score")

	_, err := inv.Invoke(sess, cleanHMEQ())
	assert.NoError(t, err)

	// THEN numerics and texts went through their matching bind calls
	assert.Equal(t, 18724.52, sess.numBinds["LOAN"])
	assert.Equal(t, 50000.0, sess.numBinds["MORTDUE"])
	assert.Equal(t, "Other", sess.txtBinds["REASON"])
	assert.Equal(t, "", sess.txtBinds["JOB"])
	assert.Len(t, sess.bindOrder, 12)
}

func TestInvoker_ExecutionFailure_IsFatal(t *testing.T) {
	// GIVEN a session whose execute fails with a runtime status
	sess := newStubSession()
	sess.execErr = &RuntimeError{Op: "execute", Status: 6}
	inv := NewInvoker("Score")

	_, err := inv.Invoke(sess, cleanHMEQ())

	assert.Error(t, err)
	assert.Equal(t, 1, sess.execCalls)
	var rerr *RuntimeError
	assert.ErrorAs(t, err, &rerr)
	assert.Equal(t, 6, rerr.Status)
}

func TestInvoker_ReadFailure_IsFatal(t *testing.T) {
	sess := newStubSession()
	sess.readNumErr = &RuntimeError{Op: "readNumeric EM_EVENTPROBABILITY", Status: 7}
	inv := NewInvoker("Score")

	_, err := inv.Invoke(sess, cleanHMEQ())

	assert.Error(t, err)
}

func TestInvoker_Success_PackagesBothOutputs(t *testing.T) {
	// GIVEN a session scoring ("bad", 0.73)
	sess := newStubSession()
	sess.label, sess.prob = "bad", 0.73
	inv := NewInvoker("Score")

	res, err := inv.Invoke(sess, cleanHMEQ())

	assert.NoError(t, err)
	assert.Equal(t, Result{Classification: "bad", EventProbability: 0.73, Status: StatusOK}, res)
	assert.GreaterOrEqual(t, res.EventProbability, 0.0)
	assert.LessOrEqual(t, res.EventProbability, 1.0)
}

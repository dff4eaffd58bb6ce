package score

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// SessionState is the lifecycle state of the shared scoring session.
type SessionState string

const (
	SessionUninitialized SessionState = "uninitialized"
	SessionLoading       SessionState = "loading"
	SessionReady         SessionState = "ready"
	SessionFailed        SessionState = "failed"
)

// SessionManager owns the single long-lived embedded session: on first use
// it creates the session, streams the scoring program into it, and publishes
// it under the deployment module identifier; every later call reuses it.
// Failed is not terminal: each subsequent call re-attempts loading, because
// a transient publish failure is indistinguishable from a broken artifact at
// this layer.
type SessionManager struct {
	mu       sync.Mutex
	runtime  Runtime
	program  string
	moduleID string

	state    SessionState
	session  Session
	revision int
}

func NewSessionManager(runtime Runtime, program, moduleID string) *SessionManager {
	return &SessionManager{
		runtime:  runtime,
		program:  program,
		moduleID: moduleID,
		state:    SessionUninitialized,
	}
}

// State reports the current lifecycle state.
func (m *SessionManager) State() SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Revision reports the revision of the last successful publish (0 if none).
func (m *SessionManager) Revision() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revision
}

// Ensure returns the ready session, loading it first if needed. Loading is a
// critical section: concurrent first calls block here, so the program is
// published exactly once and nobody binds into a half-initialized session.
func (m *SessionManager) Ensure() (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == SessionReady {
		return m.session, nil
	}

	m.state = SessionLoading
	sess, err := m.runtime.CreateSession()
	if err != nil {
		m.state = SessionFailed
		logrus.Errorf("session create for module %s failed (status %d): %v", m.moduleID, StatusPublishFailed, err)
		return nil, &RuntimeError{Op: "createSession", Status: StatusPublishFailed, Err: err}
	}
	for _, line := range strings.Split(m.program, "\n") {
		sess.AppendSourceLine(line)
	}
	rev, err := sess.Publish(m.moduleID)
	if err != nil || rev < 1 {
		m.state = SessionFailed
		logrus.Errorf("publish of module %s failed (status %d): revision=%d err=%v", m.moduleID, StatusPublishFailed, rev, err)
		return nil, &RuntimeError{Op: "publish " + m.moduleID, Status: StatusPublishFailed, Err: err}
	}

	m.session = sess
	m.revision = rev
	m.state = SessionReady
	logrus.Infof("module %s published at revision %d", m.moduleID, rev)
	return m.session, nil
}

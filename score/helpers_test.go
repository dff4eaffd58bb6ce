package score

import (
	"sync"
)

// stubSession records every runtime operation so pipeline tests can assert
// on publish counts, bind order, and failure propagation.
type stubSession struct {
	mu sync.Mutex

	lines           []string
	publishCalls    int
	publishRevision int
	moduleID        string

	selectErr   error
	selectCalls int

	bindErrs  map[string]error
	numBinds  map[string]float64
	txtBinds  map[string]string
	bindOrder []string

	execErr   error
	execCalls int

	label       string
	prob        float64
	readTextErr error
	readNumErr  error
}

func newStubSession() *stubSession {
	return &stubSession{
		publishRevision: 1,
		bindErrs:        map[string]error{},
		numBinds:        map[string]float64{},
		txtBinds:        map[string]string{},
		label:           "good",
		prob:            0.1,
	}
}

func (s *stubSession) AppendSourceLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

func (s *stubSession) Publish(moduleID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publishCalls++
	s.moduleID = moduleID
	return s.publishRevision, nil
}

func (s *stubSession) SelectRoutine(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectCalls++
	return s.selectErr
}

func (s *stubSession) BindNumeric(name string, v float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.bindErrs[name]; err != nil {
		return err
	}
	s.numBinds[name] = v
	s.bindOrder = append(s.bindOrder, name)
	return nil
}

func (s *stubSession) BindText(name string, v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.bindErrs[name]; err != nil {
		return err
	}
	s.txtBinds[name] = v
	s.bindOrder = append(s.bindOrder, name)
	return nil
}

func (s *stubSession) Execute() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.execCalls++
	return s.execErr
}

func (s *stubSession) ReadText(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readTextErr != nil {
		return "", s.readTextErr
	}
	return s.label, nil
}

func (s *stubSession) ReadNumeric(name string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readNumErr != nil {
		return 0, s.readNumErr
	}
	return s.prob, nil
}

// stubRuntime hands out stub sessions. When a sequence is set, sessions pop
// off it until one remains (retry-after-failure tests); otherwise the single
// session is shared across creates.
type stubRuntime struct {
	mu          sync.Mutex
	createCalls int
	session     *stubSession
	sequence    []*stubSession
	createErr   error
}

func newStubRuntime(sess *stubSession) *stubRuntime {
	return &stubRuntime{session: sess}
}

func (r *stubRuntime) CreateSession() (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.createErr != nil {
		return nil, r.createErr
	}
	if len(r.sequence) > 0 {
		s := r.sequence[0]
		if len(r.sequence) > 1 {
			r.sequence = r.sequence[1:]
		}
		return s, nil
	}
	return r.session, nil
}

// hmeqTable returns the frozen HMEQ deployment schema used across tests.
func hmeqTable() *ImputationTable {
	return NewImputationTable([]ImputationEntry{
		{Name: "LOAN", Kind: KindNumeric, Default: 18724.52},
		{Name: "MORTDUE", Kind: KindNumeric, Default: 73760.82},
		{Name: "VALUE", Kind: KindNumeric, Default: 101776.05},
		{Name: "REASON", Kind: KindText},
		{Name: "JOB", Kind: KindText},
		{Name: "YOJ", Kind: KindNumeric, Default: 8.92},
		{Name: "DEROG", Kind: KindNumeric, Default: 0.25},
		{Name: "DELINQ", Kind: KindNumeric, Default: 0.45},
		{Name: "CLAGE", Kind: KindNumeric, Default: 179.77},
		{Name: "NINQ", Kind: KindNumeric, Default: 1.19},
		{Name: "CLNO", Kind: KindNumeric, Default: 21.3},
		{Name: "DEBTINC", Kind: KindNumeric, Default: 33.78},
	})
}

// hmeqRawRecord returns the reference raw input row: LOAN and JOB missing,
// REASON untrimmed, everything else valid.
func hmeqRawRecord() *Record {
	rec := NewRecord()
	rec.Set("LOAN", Missing())
	rec.Set("MORTDUE", Number(50000))
	rec.Set("VALUE", Number(100000))
	rec.Set("REASON", Text(" Other "))
	rec.Set("JOB", Missing())
	rec.Set("YOJ", Number(5))
	rec.Set("DEROG", Number(0))
	rec.Set("DELINQ", Number(0))
	rec.Set("CLAGE", Number(100))
	rec.Set("NINQ", Number(1))
	rec.Set("CLNO", Number(10))
	rec.Set("DEBTINC", Number(30))
	return rec
}

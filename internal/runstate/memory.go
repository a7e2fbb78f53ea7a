package runstate

// MemoryStore keeps the record in memory. It backs tests that should not
// touch the real filesystem.
type MemoryStore struct {
	command  string
	recorded bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Record stores the command, appending ResumeFlag when missing.
func (s *MemoryStore) Record(command string) error {
	s.command = withResume(command)
	s.recorded = true
	return nil
}

// Load returns the recorded command, or ErrNoPriorRun before any Record.
func (s *MemoryStore) Load() (string, error) {
	if !s.recorded {
		return "", ErrNoPriorRun
	}
	return s.command, nil
}

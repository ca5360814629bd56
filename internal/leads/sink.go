package leads

import (
	"sync"

	"github.com/muurk/slidecast/internal/logging"
)

// Sink receives validated registrations.
type Sink interface {
	Record(Registration) error
}

// LogSink records registrations to the structured log at info level.
type LogSink struct{}

// Record logs r.
func (LogSink) Record(r Registration) error {
	if err := r.Validate(); err != nil {
		return err
	}
	logging.LogRegistration(r.ID.String(), r.Name, r.Email, r.SlideID, r.SubmittedAt)
	return nil
}

// MemorySink keeps registrations in memory. Safe for concurrent use.
type MemorySink struct {
	mu      sync.Mutex
	records []Registration
}

// Record appends r.
func (m *MemorySink) Record(r Registration) error {
	if err := r.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return nil
}

// Registrations returns a copy of everything recorded so far.
func (m *MemorySink) Registrations() []Registration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Registration(nil), m.records...)
}

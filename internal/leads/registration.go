package leads

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrMissingField is returned when a required registration field is blank.
var ErrMissingField = errors.New("required field missing")

// Registration is one submitted sign-up.
type Registration struct {
	ID          uuid.UUID
	Name        string
	Email       string
	SlideID     string
	SubmittedAt time.Time
}

// New trims the inputs, validates them and stamps a fresh ID and time.
func New(name, email, slideID string, now time.Time) (Registration, error) {
	r := Registration{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		SlideID: slideID,
	}
	if err := r.Validate(); err != nil {
		return Registration{}, err
	}
	r.ID = uuid.New()
	r.SubmittedAt = now
	return r, nil
}

// Validate requires a non-blank name and email. The email format is not
// checked.
func (r Registration) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name: %w", ErrMissingField)
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email: %w", ErrMissingField)
	}
	return nil
}

package config

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// maxSeconds is the longest duration a time.Duration can hold.
var maxSeconds = float64(math.MaxInt64) / float64(time.Second)

// checkSeconds rejects durations that are not finite, do not fit a
// time.Duration or truncate to zero.
func checkSeconds(field string, seconds float64) *DeckError {
	switch {
	case math.IsNaN(seconds) || math.IsInf(seconds, 0):
		return deckErr(field, "must be a finite number of seconds, got %v", seconds)
	case seconds <= 0:
		return deckErr(field, "must be positive, got %v", seconds)
	case seconds >= maxSeconds:
		return deckErr(field, "%v seconds is too long", seconds)
	case time.Duration(seconds*float64(time.Second)) <= 0:
		return deckErr(field, "%v seconds is too short", seconds)
	}
	return nil
}

// DeckError reports the first invalid field of a deck.
type DeckError struct {
	Field   string // e.g. "slides[2].duration"
	Message string
}

func (e *DeckError) Error() string {
	if e.Field == "" {
		return "invalid deck: " + e.Message
	}
	return fmt.Sprintf("invalid deck: %s: %s", e.Field, e.Message)
}

func deckErr(field, format string, args ...any) *DeckError {
	return &DeckError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the deck and returns a *DeckError for the first problem
// found.
func (d *Deck) Validate() error {
	if d.Version != 1 {
		return deckErr("version", "unsupported version %d (expected 1)", d.Version)
	}
	if len(d.Slides) == 0 {
		return deckErr("slides", "at least one slide is required")
	}
	if d.TestimonialInterval < 0 {
		return deckErr("testimonial_interval", "must not be negative")
	}
	if d.TestimonialInterval != 0 {
		if err := checkSeconds("testimonial_interval", d.TestimonialInterval); err != nil {
			return err
		}
	}

	seen := make(map[string]int, len(d.Slides))
	for i, s := range d.Slides {
		field := func(name string) string {
			return fmt.Sprintf("slides[%d].%s", i, name)
		}

		id := strings.TrimSpace(s.ID)
		if id == "" {
			return deckErr(field("id"), "must not be empty")
		}
		if prev, dup := seen[id]; dup {
			return deckErr(field("id"), "duplicate id %q (also used by slides[%d])", id, prev)
		}
		seen[id] = i

		if strings.TrimSpace(s.Title) == "" {
			return deckErr(field("title"), "must not be empty")
		}
		if err := checkSeconds(field("duration"), s.Duration); err != nil {
			return err
		}
		if !s.Kind.Valid() {
			return deckErr(field("kind"), "unknown kind %q", s.Kind)
		}
		if s.Background != "" && !hexColorPattern.MatchString(s.Background) {
			return deckErr(field("background"), "%q is not a hex color", s.Background)
		}

		switch s.Kind {
		case KindList:
			if len(s.Items) == 0 {
				return deckErr(field("items"), "a list slide needs at least one item")
			}
		case KindBenefits:
			if len(s.Benefits) == 0 {
				return deckErr(field("benefits"), "a benefits slide needs at least one benefit")
			}
		case KindTestimonials:
			if len(s.Testimonials) == 0 {
				return deckErr(field("testimonials"), "a testimonials slide needs at least one testimonial")
			}
		case KindRegistration:
			if s.Event == nil {
				return deckErr(field("event"), "a registration slide needs an event")
			}
		}
	}

	return nil
}

package config

import "time"

// DefaultTestimonialInterval is how long each testimonial is shown when the
// deck does not set testimonial_interval.
const DefaultTestimonialInterval = 2300 * time.Millisecond

// Kind selects the renderer used for a slide.
type Kind string

const (
	KindHero         Kind = "hero"
	KindList         Kind = "list"
	KindBenefits     Kind = "benefits"
	KindProfile      Kind = "profile"
	KindTestimonials Kind = "testimonials"
	KindRegistration Kind = "registration"
)

// Kinds lists every supported slide kind in documentation order.
var Kinds = []Kind{KindHero, KindList, KindBenefits, KindProfile, KindTestimonials, KindRegistration}

// Valid reports whether k is a supported slide kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Deck represents an entire presentation file.
type Deck struct {
	Version             int      `yaml:"version"`
	Title               string   `yaml:"title"`
	Slides              []Slide  `yaml:"slides"`
	Footer              []string `yaml:"footer,omitempty"`               // Credit lines shown under the controls
	TestimonialInterval float64  `yaml:"testimonial_interval,omitempty"` // Seconds per testimonial
}

// Slide is one section of the presentation. Which content fields are used
// depends on Kind.
type Slide struct {
	ID           string        `yaml:"id"`
	Title        string        `yaml:"title"`    // Indicator label
	Duration     float64       `yaml:"duration"` // Seconds on screen while playing
	Kind         Kind          `yaml:"kind"`
	Headline     string        `yaml:"headline,omitempty"`
	Subheadline  string        `yaml:"subheadline,omitempty"`
	Body         string        `yaml:"body,omitempty"` // Markdown
	Items        []string      `yaml:"items,omitempty"`
	Benefits     []Benefit     `yaml:"benefits,omitempty"`
	Testimonials []Testimonial `yaml:"testimonials,omitempty"`
	Event        *Event        `yaml:"event,omitempty"`
	Background   string        `yaml:"background,omitempty"` // Hex color, e.g. "#2c2a4a"
	Closing      string        `yaml:"closing,omitempty"`
}

// Benefit is one tile of a benefits slide.
type Benefit struct {
	Icon string `yaml:"icon,omitempty"`
	Text string `yaml:"text"`
}

// Testimonial is one rotating quote.
type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
}

// Event describes the webinar advertised on a registration slide.
type Event struct {
	Date string `yaml:"date"`
	Time string `yaml:"time"`
	Note string `yaml:"note,omitempty"`
}

// DisplayTime returns the slide duration as a time.Duration.
func (s Slide) DisplayTime() time.Duration {
	return time.Duration(s.Duration * float64(time.Second))
}

// Durations returns the display time of every slide, in order.
func (d *Deck) Durations() []time.Duration {
	out := make([]time.Duration, len(d.Slides))
	for i, s := range d.Slides {
		out[i] = s.DisplayTime()
	}
	return out
}

// RotationInterval returns the testimonial rotation period.
func (d *Deck) RotationInterval() time.Duration {
	if d.TestimonialInterval <= 0 {
		return DefaultTestimonialInterval
	}
	return time.Duration(d.TestimonialInterval * float64(time.Second))
}

// TotalDuration is the length of one full cycle through the deck.
func (d *Deck) TotalDuration() time.Duration {
	var total time.Duration
	for _, s := range d.Slides {
		total += s.DisplayTime()
	}
	return total
}

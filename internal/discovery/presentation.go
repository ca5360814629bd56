package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Presentation is a running slidecast found on the network.
type Presentation struct {
	// Instance is the mDNS instance name (e.g., "slidecast-3f9c2a1b")
	Instance string

	// Hostname is the advertising host (e.g., "studio.local.")
	Hostname string

	// IP is the address of the remote control endpoint
	IP string

	// Port is the remote control port
	Port int

	// Session is the presentation's session ID
	Session string

	// Deck is the title of the deck being shown
	Deck string

	// Metadata holds every TXT record, including session and deck
	Metadata map[string]string

	DiscoveredAt time.Time
}

// String returns a human-readable description of the presentation
func (p *Presentation) String() string {
	return fmt.Sprintf("%q (session %s) at %s", p.Deck, p.Session, p.Addr())
}

// Addr returns the host:port of the remote control endpoint
func (p *Presentation) Addr() string {
	return net.JoinHostPort(p.IP, strconv.Itoa(p.Port))
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (p *Presentation) GetMetadata(key string) string {
	if p.Metadata == nil {
		return ""
	}
	return p.Metadata[key]
}

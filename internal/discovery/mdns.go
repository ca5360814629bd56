package discovery

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceType is the mDNS service type slidecast presentations advertise
	ServiceType = "_slidecast._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for discovery
	DefaultScanTimeout = 3 * time.Second

	// TXT record keys published with the advertisement
	TXTSession = "session"
	TXTDeck    = "deck"
)

// Scanner handles mDNS presentation discovery
type Scanner struct {
	// Timeout is the maximum time to wait for advertisements
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan collects every presentation that answers within the timeout.
// Repeated answers from the same instance are reported once.
func (s *Scanner) Scan(ctx context.Context) ([]*Presentation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	var (
		mu    sync.Mutex
		found []*Presentation
		seen  = make(map[string]bool)
	)

	entries := make(chan *zeroconf.ServiceEntry)
	go func() {
		for entry := range entries {
			p := s.parseServiceEntry(entry)
			if p == nil {
				continue
			}
			mu.Lock()
			if !seen[p.Instance] {
				seen[p.Instance] = true
				found = append(found, p)
			}
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	return append([]*Presentation(nil), found...), nil
}

// WaitForSession waits for the presentation with the given session ID
func (s *Scanner) WaitForSession(ctx context.Context, session string) (*Presentation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	match := make(chan *Presentation, 1)

	go func() {
		for entry := range entries {
			p := s.parseServiceEntry(entry)
			if p != nil && p.Session == session {
				select {
				case match <- p:
				default:
				}
				cancel()
				return
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	select {
	case p := <-match:
		return p, nil
	case <-ctx.Done():
		select {
		case p := <-match:
			return p, nil
		default:
		}
		return nil, fmt.Errorf("presentation with session %s not found within timeout", session)
	}
}

// parseServiceEntry converts a zeroconf service entry to a Presentation.
// Returns nil for entries without a session record or an address.
func (s *Scanner) parseServiceEntry(entry *zeroconf.ServiceEntry) *Presentation {
	// Parse TXT records into metadata
	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		key, value, _ := strings.Cut(txt, "=")
		metadata[key] = value
	}

	session := metadata[TXTSession]
	if session == "" {
		return nil
	}

	// Prefer IPv4
	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" || entry.Port == 0 {
		return nil
	}

	return &Presentation{
		Instance:     entry.Instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         entry.Port,
		Session:      session,
		Deck:         metadata[TXTDeck],
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

// Scan is a convenience function to scan with a custom timeout
func Scan(ctx context.Context, timeout time.Duration) ([]*Presentation, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	return scanner.Scan(ctx)
}

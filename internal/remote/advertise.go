package remote

import (
	"fmt"
	"unicode/utf8"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/slidecast/internal/discovery"
	"github.com/muurk/slidecast/internal/logging"
)

// maxTXTValue keeps a TXT string under the 255 byte record limit.
const maxTXTValue = 200

// instanceName is the mDNS instance the presentation registers.
func (s *Server) instanceName() string {
	return "slidecast-" + s.session[:8]
}

// txtRecords returns the TXT strings describing this presentation.
func (s *Server) txtRecords() []string {
	deck := s.config.DeckTitle
	if len(deck) > maxTXTValue {
		n := maxTXTValue
		for n > 0 && !utf8.RuneStart(deck[n]) {
			n--
		}
		deck = deck[:n]
	}
	return []string{
		discovery.TXTSession + "=" + s.session,
		discovery.TXTDeck + "=" + deck,
	}
}

// advertise registers the remote endpoint over mDNS.
func (s *Server) advertise(port int) error {
	srv, err := zeroconf.Register(
		s.instanceName(),
		discovery.ServiceType,
		discovery.ServiceDomain,
		port,
		s.txtRecords(),
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register mDNS service: %w", err)
	}
	s.mdns = srv

	logging.Info("Advertising presentation over mDNS",
		zap.String("instance", s.instanceName()),
		zap.String("service", discovery.ServiceType),
		zap.Int("port", port),
	)
	return nil
}

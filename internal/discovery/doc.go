// Package discovery finds running slidecast presentations over mDNS.
//
// A presentation started with `slidecast present --remote :port --advertise`
// registers a "_slidecast._tcp" service whose TXT records carry the
// session ID and the deck title. The Scanner browses for that service type
// and turns each answer into a Presentation that the remote client can
// dial.
//
// # Usage Example
//
//	presentations, err := discovery.Scan(ctx, 3*time.Second)
//	if err != nil {
//	    return err
//	}
//	for _, p := range presentations {
//	    fmt.Println(p)
//	}
//
// # Network Requirements
//
//   - Requires multicast support on the network interface
//   - Presenter and remote must share a network segment
//   - Firewall must allow mDNS (UDP port 5353)
package discovery

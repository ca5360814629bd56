// Package remote is the presenter remote: a small HTTP and WebSocket API
// that lets a phone or a second terminal follow and drive a running
// presentation.
//
// # Endpoints
//
//	GET  /healthz            liveness and session ID
//	GET  /state              latest StateFrame as JSON
//	POST /intent/{action}    next, prev, toggle, goto?index=i (0-based)
//	GET  /ws                 state frames out, Command frames in
//
// # Ordering
//
// Handlers never touch presentation state. Intents are handed to a
// Dispatcher (the running tea.Program), so every transition is still
// processed one at a time on the Bubble Tea event loop. State flows the
// other way through Server.Observe, which the presenter calls after each
// transition; the Hub keeps only the newest unsent frame per remote so a
// slow phone never stalls the presentation.
//
// # Discovery
//
// With Config.Advertise the server registers "_slidecast._tcp" over mDNS
// with the session ID and deck title as TXT records. See package discovery
// for the browsing side.
package remote

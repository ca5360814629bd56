// Package logging provides structured logging for slidecast.
//
// This package wraps zap with convenience functions for the events the
// presentation cares about: slide transitions, pause toggles, captured
// registrations and presenter remote traffic.
//
// # Log Levels
//
//   - Debug: transitions and pause toggles (one line per slide change)
//   - Info: registrations, remote connections and commands
//   - Warn: malformed remote frames, advertisement failures
//   - Error: startup failures
//
// # Configuration
//
// Logging is silent unless a level is given, either explicitly or through
// SLIDECAST_LOG_LEVEL. The full-screen presentation owns stdout, so the
// present command points the logger at a file:
//
//	if err := logging.InitializeWithOptions(logging.Options{
//	    Level: "info",
//	    Path:  "/home/me/.config/slidecast/slidecast.log",
//	}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Registrations
//
// Captured leads are written with LogRegistration at info level. That log
// line is the only record of a registration:
//
//	2026-10-19T20:00:01.000Z  INFO  Registration  {"registration_id": "...", "name": "Dana", "email": "dana@example.com"}
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The remote server logs
// from its HTTP goroutines while the presentation logs from the event loop.
package logging

// Package leads is the lead-capture boundary of the registration slide.
//
// A Registration is validated and handed to a Sink. The only Sink shipped
// is LogSink, which writes each registration to the structured log where
// the operator can pick it up. Nothing is sent to a backend.
package leads

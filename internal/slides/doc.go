// Package slides renders the content of one slide and owns its transient
// state.
//
// Each slide kind is a small Bubble Tea component behind the Model
// interface. The presenter mounts a fresh model whenever the active slide
// changes and drops the old one, so slide-local state such as the
// testimonial being shown or half-typed form fields never survives a
// navigation. Timers a slide starts carry its mount ID and are ignored
// once that mount is gone.
//
// Kinds:
//
//	hero          headline, subheadline and an optional markdown body
//	list          headline with bullet items
//	benefits      a grid of icon tiles
//	profile       a monogram and credentials of the presenter
//	testimonials  quotes rotating every RotationInterval
//	registration  name and email form handing leads to a leads.Sink
//
// Slides never touch the presentation state. They only render and react to
// the messages routed to them.
package slides

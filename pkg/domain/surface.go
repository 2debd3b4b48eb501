package domain

// Surface identifies the top-level surface currently presented by the host.
// A single enum (rather than independent booleans) makes the cart vs.
// testimonials mutual exclusion impossible to violate.
type Surface string

const (
	SurfaceNone         Surface = "none"
	SurfaceChat         Surface = "chat"
	SurfaceCart         Surface = "cart"
	SurfaceTestimonials Surface = "testimonials"
)

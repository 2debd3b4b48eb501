package domain

// Hooks defines optional callbacks for widget observability.
// All hooks fire synchronously on the mutating event; implementations must
// not call back into the widget.
type Hooks struct {
	// OnMessage fires for every message appended to the log.
	OnMessage func(Message)

	// OnCheckoutComplete fires exactly once when a checkout instance
	// reaches the complete step.
	OnCheckoutComplete func()

	// OnCartAbandoned fires when the cart surface closes before the
	// checkout completed.
	OnCartAbandoned func()

	// OnSurfaceChange fires whenever the visible surface changes.
	OnSurfaceChange func(Surface)
}

package ports

// CelebrationEffect is a fire-and-forget visual cue on checkout success.
// Trigger must never block and must not affect core state.
type CelebrationEffect interface {
	Trigger()
}

// NopCelebration is the default effect: it does nothing.
type NopCelebration struct{}

func (NopCelebration) Trigger() {}

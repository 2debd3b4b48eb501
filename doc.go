/*
Package careflow implements the interaction core of an embedded
conversational-commerce widget: a chat assistant that elicits preferences,
presents catalog recommendations, and carries selected products through a
cart → address → payment → complete checkout flow.

The package follows a hexagonal layout. The core owns state and transitions
only; everything visual or external is a port the host implements:

  - ports.Renderer displays the current state and feeds user intents back
    into the Widget.
  - ports.Catalog is read-only product lookup.
  - ports.CelebrationEffect is a fire-and-forget success cue.
  - ports.SessionStore persists session snapshots for the session's
    lifetime (memory and redis adapters are provided).

# Usage

	w := careflow.New(catalog.Builtin())
	w.Open()
	w.SubmitOption("hair")
	w.SubmitOption("thinning")
	w.ConfirmConcerns()
	w.Render(myRenderer)

All Widget methods are safe to call from timer callbacks and transport
goroutines; mutations are serialized internally and delayed effects check
session liveness before applying.
*/
package careflow

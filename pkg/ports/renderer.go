package ports

import "github.com/resultflow/careflow/pkg/domain"

// ChatView is the read model the host needs to draw the chat surface.
type ChatView struct {
	Messages    []domain.Message
	Preferences domain.Preferences
	Selected    []string
	Options     []domain.ConcernOption
	ShowOptions bool
	// InputVisible reports whether the free-text input is reachable in the
	// current scripted phase.
	InputVisible bool
	Composing    bool
}

// CartView is the read model for the cart surface.
type CartView struct {
	Step    domain.CheckoutStep
	Items   []domain.CartItem
	Total   float64
	Address domain.AddressForm
	Payment domain.PaymentForm
	// Offer is the derived card offer, nil when the card number matches no
	// issuer bucket.
	Offer *domain.CardOffer
}

// Renderer displays the current widget state. The core pushes views after
// every mutation; the renderer must not mutate state, only emit intents
// back through the Widget API.
type Renderer interface {
	RenderChat(ChatView)
	RenderCart(CartView)
}

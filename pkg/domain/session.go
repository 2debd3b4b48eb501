package domain

import "time"

// Session is the serializable snapshot of one widget session.
// It carries everything needed to persist and resume a session within its
// lifetime; nothing outlives the session.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Messages    []Message   `json:"messages"`
	Preferences Preferences `json:"preferences"`
	Selected    []string    `json:"selected,omitempty"`
	ShowOptions bool        `json:"show_options"`
	Composing   bool        `json:"composing"`

	Cart    []CartItem   `json:"cart,omitempty"`
	Step    CheckoutStep `json:"step"`
	Address AddressForm  `json:"address"`
	Payment PaymentForm  `json:"payment"`

	Surface          Surface `json:"surface"`
	CheckoutComplete bool    `json:"checkout_complete"`
}

// NewSession creates an empty session snapshot.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:          id,
		CreatedAt:   now,
		UpdatedAt:   now,
		Preferences: NewPreferences(),
		Step:        StepCart,
		Surface:     SurfaceNone,
	}
}

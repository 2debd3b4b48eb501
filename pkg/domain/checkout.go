package domain

// CheckoutStep is one stage of the linear purchase flow.
type CheckoutStep string

const (
	StepCart     CheckoutStep = "cart"
	StepAddress  CheckoutStep = "address"
	StepPayment  CheckoutStep = "payment"
	StepComplete CheckoutStep = "complete"
)

// AddressForm holds the shipping details collected at the address step.
type AddressForm struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// PaymentForm holds the card details collected at the payment step.
// Display-only: nothing here is validated or charged.
type PaymentForm struct {
	CardNumber string `json:"card_number"`
	CardHolder string `json:"card_holder"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}

// CardOffer is a derived, display-only discount bundle inferred from the
// card number's leading digit. It is recomputed on every payment edit and
// never stored independently.
type CardOffer struct {
	CardType        string   `json:"card_type"`
	DiscountPercent int      `json:"discount_percent"`
	Benefits        []string `json:"benefits"`
}

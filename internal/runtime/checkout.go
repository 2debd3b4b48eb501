package runtime

import (
	"log/slog"

	"github.com/resultflow/careflow/internal/logging"
	"github.com/resultflow/careflow/pkg/domain"
	"github.com/resultflow/careflow/pkg/ports"
)

// Checkout owns the cart item collection and the linear step machine
// cart → address → payment → complete.
//
// Entering complete is terminal for the instance: no further edits are
// accepted until Reset starts a new instance. Like Conversation, it is
// serialized by the owning Widget.
type Checkout struct {
	celebration ports.CelebrationEffect
	logger      *slog.Logger

	items      []domain.CartItem
	step       domain.CheckoutStep
	address    domain.AddressForm
	payment    domain.PaymentForm
	celebrated bool
}

// NewCheckout creates an empty checkout at the cart step.
func NewCheckout(celebration ports.CelebrationEffect, logger *slog.Logger) *Checkout {
	if celebration == nil {
		celebration = ports.NopCelebration{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Checkout{
		celebration: celebration,
		logger:      logger,
		step:        domain.StepCart,
	}
}

// Upsert adds a product to the cart, incrementing quantity when the product
// is already present.
func (ck *Checkout) Upsert(p domain.Product) {
	for i := range ck.items {
		if ck.items[i].ProductID == p.ID {
			ck.items[i].Quantity++
			return
		}
	}
	ck.items = append(ck.items, domain.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// SetQuantity updates a line's quantity. Zero removes the line, negative
// values are rejected as a no-op. Edits after completion are ignored.
func (ck *Checkout) SetQuantity(productID string, n int) {
	if ck.step == domain.StepComplete {
		return
	}
	if n < 0 {
		ck.logger.Debug("rejected negative quantity", "product_id", productID, "quantity", n)
		return
	}
	for i := range ck.items {
		if ck.items[i].ProductID != productID {
			continue
		}
		if n == 0 {
			ck.items = append(ck.items[:i], ck.items[i+1:]...)
		} else {
			ck.items[i].Quantity = n
		}
		return
	}
}

// Advance moves to the next checkout step. Reaching complete fires the
// celebration effect exactly once per instance; advancing past complete is
// a no-op.
func (ck *Checkout) Advance() {
	switch ck.step {
	case domain.StepCart:
		ck.step = domain.StepAddress
	case domain.StepAddress:
		ck.step = domain.StepPayment
	case domain.StepPayment:
		ck.complete()
	case domain.StepComplete:
		// Terminal; only Reset exits.
	}
}

// CompleteDirectly jumps cart → complete, the simple move-to-cart variant
// of the flow. It is a strict subset of Advance chains: address and payment
// are skipped, the completion side effects are identical.
func (ck *Checkout) CompleteDirectly() {
	if ck.step != domain.StepCart {
		return
	}
	ck.complete()
}

func (ck *Checkout) complete() {
	ck.step = domain.StepComplete
	if !ck.celebrated {
		ck.celebrated = true
		ck.celebration.Trigger()
	}
}

// GoBack returns to the cart step from address or payment. It reports
// whether the call was handled as a step transition; from the cart step it
// returns false so the orchestrator can treat it as a cancel action.
func (ck *Checkout) GoBack() bool {
	switch ck.step {
	case domain.StepAddress, domain.StepPayment:
		ck.step = domain.StepCart
		return true
	default:
		return false
	}
}

// SetAddress replaces the address form. Ignored after completion.
func (ck *Checkout) SetAddress(form domain.AddressForm) {
	if ck.step == domain.StepComplete {
		return
	}
	ck.address = form
}

// SetPayment replaces the payment form. The card offer is derived, not
// stored, so every edit is immediately reflected by Offer. Ignored after
// completion.
func (ck *Checkout) SetPayment(form domain.PaymentForm) {
	if ck.step == domain.StepComplete {
		return
	}
	ck.payment = form
}

// Offer returns the derived card offer for the current payment form, nil
// when no issuer bucket matches.
func (ck *Checkout) Offer() *domain.CardOffer {
	return OfferFor(ck.payment.CardNumber)
}

// Step returns the current checkout step.
func (ck *Checkout) Step() domain.CheckoutStep { return ck.step }

// Completed reports whether this instance reached the complete step.
func (ck *Checkout) Completed() bool { return ck.step == domain.StepComplete }

// Items returns a copy of the cart lines in insertion order.
func (ck *Checkout) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(ck.items))
	copy(out, ck.items)
	return out
}

// Total returns the monthly total across all lines.
func (ck *Checkout) Total() float64 {
	var total float64
	for _, item := range ck.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Address returns the current address form.
func (ck *Checkout) Address() domain.AddressForm { return ck.address }

// Payment returns the current payment form.
func (ck *Checkout) Payment() domain.PaymentForm { return ck.payment }

// Reset starts a new checkout instance at the cart step with blank forms.
// Cart items survive; only the step machine and forms reinitialize. Called
// every time the cart surface (re)opens.
func (ck *Checkout) Reset() {
	ck.step = domain.StepCart
	ck.address = domain.AddressForm{}
	ck.payment = domain.PaymentForm{}
	ck.celebrated = false
}

// Restore replaces checkout state from a session snapshot.
func (ck *Checkout) Restore(sess *domain.Session) {
	ck.items = append([]domain.CartItem(nil), sess.Cart...)
	ck.step = sess.Step
	ck.address = sess.Address
	ck.payment = sess.Payment
	ck.celebrated = sess.Step == domain.StepComplete
}

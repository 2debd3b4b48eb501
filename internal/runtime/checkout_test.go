package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resultflow/careflow/internal/runtime"
	"github.com/resultflow/careflow/internal/testutils"
	"github.com/resultflow/careflow/pkg/domain"
)

func TestCheckout_Upsert(t *testing.T) {
	ck := runtime.NewCheckout(nil, nil)
	p := domain.Product{ID: "p1", Name: "Minoxidil", Price: 25}

	ck.Upsert(p)
	ck.Upsert(p)

	items := ck.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 50, ck.Total(), 0.001)
}

func TestCheckout_SetQuantity(t *testing.T) {
	newCart := func() *runtime.Checkout {
		ck := runtime.NewCheckout(nil, nil)
		ck.Upsert(domain.Product{ID: "p1", Name: "Minoxidil", Price: 25})
		return ck
	}

	t.Run("Updates Line", func(t *testing.T) {
		ck := newCart()
		ck.SetQuantity("p1", 5)
		assert.Equal(t, 5, ck.Items()[0].Quantity)
	})

	t.Run("Zero Removes Line", func(t *testing.T) {
		ck := newCart()
		ck.SetQuantity("p1", 0)
		assert.Empty(t, ck.Items())
	})

	t.Run("Negative Is Rejected", func(t *testing.T) {
		ck := newCart()
		ck.SetQuantity("p1", -3)
		assert.Equal(t, 1, ck.Items()[0].Quantity)
	})

	t.Run("Unknown Product Ignored", func(t *testing.T) {
		ck := newCart()
		ck.SetQuantity("nope", 4)
		require.Len(t, ck.Items(), 1)
		assert.Equal(t, 1, ck.Items()[0].Quantity)
	})
}

func TestCheckout_AdvanceChain(t *testing.T) {
	celebration := &testutils.CelebrationCounter{}
	ck := runtime.NewCheckout(celebration, nil)

	assert.Equal(t, domain.StepCart, ck.Step())
	ck.Advance()
	assert.Equal(t, domain.StepAddress, ck.Step())
	ck.Advance()
	assert.Equal(t, domain.StepPayment, ck.Step())
	ck.Advance()
	assert.Equal(t, domain.StepComplete, ck.Step())
	assert.True(t, ck.Completed())

	// Terminal: further advances neither move nor re-celebrate.
	ck.Advance()
	assert.Equal(t, domain.StepComplete, ck.Step())
	assert.Equal(t, 1, celebration.Count())
}

func TestCheckout_CompleteDirectly(t *testing.T) {
	t.Run("From Cart", func(t *testing.T) {
		celebration := &testutils.CelebrationCounter{}
		ck := runtime.NewCheckout(celebration, nil)
		ck.CompleteDirectly()
		assert.True(t, ck.Completed())
		assert.Equal(t, 1, celebration.Count())
	})

	t.Run("Mid Flow Is NoOp", func(t *testing.T) {
		ck := runtime.NewCheckout(nil, nil)
		ck.Advance() // address
		ck.CompleteDirectly()
		assert.Equal(t, domain.StepAddress, ck.Step())
	})
}

func TestCheckout_GoBack(t *testing.T) {
	ck := runtime.NewCheckout(nil, nil)

	assert.False(t, ck.GoBack(), "cart step leaves back to the orchestrator")

	ck.Advance()
	assert.True(t, ck.GoBack())
	assert.Equal(t, domain.StepCart, ck.Step())

	ck.Advance()
	ck.Advance() // payment
	assert.True(t, ck.GoBack())
	assert.Equal(t, domain.StepCart, ck.Step(), "back from payment skips address")
}

func TestCheckout_TerminalBlocksEdits(t *testing.T) {
	ck := runtime.NewCheckout(nil, nil)
	ck.Upsert(domain.Product{ID: "p1", Name: "Minoxidil", Price: 25})
	ck.SetAddress(domain.AddressForm{City: "Austin"})
	ck.CompleteDirectly()

	ck.SetQuantity("p1", 9)
	ck.SetAddress(domain.AddressForm{City: "Boston"})
	ck.SetPayment(domain.PaymentForm{CardNumber: "4111"})

	assert.Equal(t, 1, ck.Items()[0].Quantity)
	assert.Equal(t, "Austin", ck.Address().City)
	assert.Empty(t, ck.Payment().CardNumber)
}

func TestCheckout_Reset(t *testing.T) {
	celebration := &testutils.CelebrationCounter{}
	ck := runtime.NewCheckout(celebration, nil)
	ck.Upsert(domain.Product{ID: "p1", Name: "Minoxidil", Price: 25})
	ck.SetAddress(domain.AddressForm{City: "Austin"})
	ck.CompleteDirectly()

	ck.Reset()

	assert.Equal(t, domain.StepCart, ck.Step())
	assert.Empty(t, ck.Address().City)
	require.Len(t, ck.Items(), 1, "cart lines survive a reset")

	// A fresh instance celebrates again.
	ck.CompleteDirectly()
	assert.Equal(t, 2, celebration.Count())
}

func TestCheckout_OfferTracksPaymentForm(t *testing.T) {
	ck := runtime.NewCheckout(nil, nil)

	require.Nil(t, ck.Offer())

	ck.SetPayment(domain.PaymentForm{CardNumber: "4111 1111 1111 1111"})
	offer := ck.Offer()
	require.NotNil(t, offer)
	assert.Equal(t, "Bank of America", offer.CardType)

	ck.SetPayment(domain.PaymentForm{CardNumber: "9111"})
	assert.Nil(t, ck.Offer(), "offer is derived, never sticky")
}

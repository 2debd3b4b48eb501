package careflow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resultflow/careflow"
	"github.com/resultflow/careflow/internal/runtime"
	"github.com/resultflow/careflow/internal/testutils"
	"github.com/resultflow/careflow/pkg/catalog"
	"github.com/resultflow/careflow/pkg/domain"
)

func newWidget(t *testing.T, opts ...careflow.Option) (*careflow.Widget, *testutils.FakeScheduler) {
	t.Helper()
	sched := testutils.NewFakeScheduler()
	opts = append([]careflow.Option{
		careflow.WithScheduler(sched),
		careflow.WithConversationOptions(
			runtime.WithJitter(func() time.Duration { return 0 }),
		),
	}, opts...)
	return careflow.New(catalog.Builtin(), opts...), sched
}

func hairProducts(t *testing.T) []domain.Product {
	t.Helper()
	rec, ok := catalog.Builtin().Recommendation(domain.CategoryHair)
	require.True(t, ok)
	return rec.Products
}

func TestWidget_SurfaceLifecycle(t *testing.T) {
	w, _ := newWidget(t)

	assert.Equal(t, domain.SurfaceNone, w.Surface())

	w.Open()
	assert.Equal(t, domain.SurfaceChat, w.Surface())

	w.OpenCart()
	assert.Equal(t, domain.SurfaceCart, w.Surface())

	w.Close()
	assert.Equal(t, domain.SurfaceNone, w.Surface())
}

func TestWidget_CommitSelectionOpensCart(t *testing.T) {
	w, _ := newWidget(t)
	w.Open()
	products := hairProducts(t)

	w.ToggleProduct(products[0].ID)
	w.ToggleProduct(products[1].ID)
	w.CommitSelection(products)

	assert.Equal(t, domain.SurfaceCart, w.Surface())
	cart := w.CartView()
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Empty(t, w.ChatView().Selected, "commit clears the selection")
}

func TestWidget_CommitTwiceDoublesQuantities(t *testing.T) {
	w, _ := newWidget(t)
	w.Open()
	products := hairProducts(t)

	for i := 0; i < 2; i++ {
		w.ToggleSelectAll(products)
		w.CommitSelection(products)
	}

	cart := w.CartView()
	require.Len(t, cart.Items, len(products))
	for _, item := range cart.Items {
		assert.Equal(t, 2, item.Quantity, "item %s", item.ProductID)
	}
}

func TestWidget_AbandonedCartPromptsTestimonials(t *testing.T) {
	abandoned := 0
	w, sched := newWidget(t, careflow.WithHooks(domain.Hooks{
		OnCartAbandoned: func() { abandoned++ },
	}))

	w.Open()
	w.OpenCart()
	w.CloseCart()

	assert.Equal(t, 1, abandoned)
	assert.Equal(t, domain.SurfaceChat, w.Surface(), "chat resurfaces immediately")

	sched.Advance(careflow.DefaultTestimonialsDelay)
	assert.Equal(t, domain.SurfaceTestimonials, w.Surface())

	w.CloseTestimonials()
	assert.Equal(t, domain.SurfaceChat, w.Surface())
}

func TestWidget_CompletionSuppressesTestimonials(t *testing.T) {
	completions := 0
	w, sched := newWidget(t, careflow.WithHooks(domain.Hooks{
		OnCheckoutComplete: func() { completions++ },
	}))

	w.Open()
	w.OpenCart()
	w.Advance() // address
	w.Advance() // payment
	w.Advance() // complete
	assert.Equal(t, 1, completions)

	w.CloseCart()
	sched.Advance(time.Second)
	assert.Equal(t, domain.SurfaceChat, w.Surface(), "completed checkout never prompts testimonials")
	assert.Zero(t, sched.PendingCount())
}

func TestWidget_ReopeningCartResetsSuppression(t *testing.T) {
	w, sched := newWidget(t)
	w.Open()

	w.OpenCart()
	w.CompleteDirectly()
	w.CloseCart()
	sched.Advance(time.Second)
	require.Equal(t, domain.SurfaceChat, w.Surface())

	// A fresh cart instance that is abandoned prompts again.
	w.OpenCart()
	w.CloseCart()
	sched.Advance(careflow.DefaultTestimonialsDelay)
	assert.Equal(t, domain.SurfaceTestimonials, w.Surface())
}

func TestWidget_CartReopenDuringDelayWinsOverTestimonials(t *testing.T) {
	w, sched := newWidget(t)
	w.Open()

	w.OpenCart()
	w.CloseCart()
	w.OpenCart() // reopened before the prompt delay elapses

	sched.Advance(time.Second)
	assert.Equal(t, domain.SurfaceCart, w.Surface(), "cart and testimonials never show together")
}

func TestWidget_GoBackFromCartStepCancels(t *testing.T) {
	w, _ := newWidget(t)
	w.Open()
	w.OpenCart()

	w.GoBack()
	assert.Equal(t, domain.SurfaceChat, w.Surface())

	w.OpenCart()
	w.Advance()
	w.GoBack()
	assert.Equal(t, domain.SurfaceCart, w.Surface(), "back from address is a step change, not a cancel")
	assert.Equal(t, domain.StepCart, w.CartView().Step)
}

func TestWidget_CloseDropsPendingCallbacks(t *testing.T) {
	w, sched := newWidget(t)
	w.Open()

	w.SubmitOption("hair")
	w.SubmitOption("thinning")
	w.ConfirmConcerns()
	before := len(w.ChatView().Messages)

	w.Close()
	sched.Advance(runtime.DefaultFollowUpDelay)

	assert.Len(t, w.ChatView().Messages, before, "pivot scheduled before close must not land")
	assert.Equal(t, domain.CategoryHair, w.ChatView().Preferences.Category)
}

func TestWidget_OnMessageHook(t *testing.T) {
	var seen []domain.Message
	sched := testutils.NewFakeScheduler()
	w := careflow.New(catalog.Builtin(),
		careflow.WithScheduler(sched),
		careflow.WithConversationOptions(runtime.WithJitter(func() time.Duration { return 0 })),
		careflow.WithHooks(domain.Hooks{
			OnMessage: func(m domain.Message) { seen = append(seen, m) },
		}),
	)

	w.Open()
	require.Len(t, seen, 1, "welcome message delivered on open")

	w.SubmitOption("skin")
	assert.Len(t, seen, 3)

	w.SubmitFreeText("how does it work")
	assert.Len(t, seen, 4)

	sched.Advance(runtime.DefaultReplyDelay)
	require.Len(t, seen, 5, "delayed reply reaches the hook too")
	assert.Equal(t, domain.RoleAssistant, seen[4].Role)
}

func TestWidget_EndToEndScriptedFlow(t *testing.T) {
	w, sched := newWidget(t)
	w.Open()

	w.SubmitOption("hair")
	w.SubmitOption("thinning")
	w.SubmitOption("scalp")
	w.ConfirmConcerns()

	view := w.ChatView()
	require.NotEmpty(t, view.Messages)
	rec := view.Messages[len(view.Messages)-1]
	require.Len(t, rec.Recommendations, 1)
	assert.NotEmpty(t, rec.Recommendations[0].Products)
	assert.False(t, view.ShowOptions)

	sched.Advance(runtime.DefaultFollowUpDelay)

	view = w.ChatView()
	assert.Equal(t, domain.CategorySkin, view.Preferences.Category)
	assert.Equal(t, domain.PhaseConcerns, view.Preferences.Phase)
	assert.True(t, view.ShowOptions)

	// Add everything from the recommendation and buy it outright.
	products := rec.Recommendations[0].Products
	w.ToggleSelectAll(products)
	w.CommitSelection(products)
	w.CompleteDirectly()

	cart := w.CartView()
	assert.Equal(t, domain.StepComplete, cart.Step)
	assert.Len(t, cart.Items, len(products))
}

func TestWidget_SnapshotRestore(t *testing.T) {
	w, sched := newWidget(t)
	w.Open()
	w.SubmitOption("hair")
	w.SubmitOption("thinning")
	w.ConfirmConcerns()
	sched.Advance(runtime.DefaultFollowUpDelay)

	products := hairProducts(t)
	w.ToggleProduct(products[0].ID)
	w.CommitSelection(products)
	w.SetAddress(domain.AddressForm{FullName: "Sam Doe", City: "Austin"})
	w.SetPayment(domain.PaymentForm{CardNumber: "4111111111111111"})

	snap := w.Snapshot()

	restored, _ := newWidget(t)
	restored.Restore(snap)

	assert.Equal(t, w.ID(), restored.ID())
	assert.Equal(t, domain.SurfaceCart, restored.Surface())

	chat := restored.ChatView()
	assert.Equal(t, len(w.ChatView().Messages), len(chat.Messages))
	assert.Equal(t, domain.CategorySkin, chat.Preferences.Category)

	cart := restored.CartView()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Austin", cart.Address.City)
	require.NotNil(t, cart.Offer)
	assert.Equal(t, "Bank of America", cart.Offer.CardType)
}

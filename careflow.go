package careflow

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/resultflow/careflow/internal/logging"
	"github.com/resultflow/careflow/internal/runtime"
	"github.com/resultflow/careflow/pkg/domain"
	"github.com/resultflow/careflow/pkg/ports"
)

// DefaultTestimonialsDelay is the pause between an abandoned cart close and
// the testimonials prompt.
const DefaultTestimonialsDelay = 300 * time.Millisecond

// Widget is the high-level entry point: the orchestrator that owns surface
// visibility and wires the conversation engine, the selection set, and the
// checkout machine together without either subsystem knowing the others.
//
// All methods are safe for concurrent use; every mutation is a single
// serialized event, and delayed effects re-check session liveness (the
// epoch captured at schedule time) before applying.
type Widget struct {
	mu sync.Mutex

	conv      *runtime.Conversation
	selection *runtime.Selection
	checkout  *runtime.Checkout

	catalog     ports.Catalog
	scheduler   ports.Scheduler
	celebration ports.CelebrationEffect
	hooks       domain.Hooks
	logger      *slog.Logger

	id        string
	createdAt time.Time

	// epoch is bumped when the chat session ends; scheduled callbacks
	// carrying an older epoch are dropped.
	epoch uint64

	surface  domain.Surface
	chatOpen bool

	// notified tracks how many log messages the OnMessage hook has seen.
	notified int

	testimonialsDelay time.Duration
	convOpts          []runtime.ConversationOption
}

// Option configures a Widget.
type Option func(*Widget)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Widget) { w.logger = logger }
}

// WithScheduler injects the timer source for all delayed effects.
func WithScheduler(s ports.Scheduler) Option {
	return func(w *Widget) { w.scheduler = s }
}

// WithCelebration sets the effect fired on checkout completion.
func WithCelebration(c ports.CelebrationEffect) Option {
	return func(w *Widget) { w.celebration = c }
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.Hooks) Option {
	return func(w *Widget) { w.hooks = hooks }
}

// WithID fixes the session ID (default: random UUID).
func WithID(id string) Option {
	return func(w *Widget) { w.id = id }
}

// WithTestimonialsDelay overrides the abandoned-cart prompt delay.
func WithTestimonialsDelay(d time.Duration) Option {
	return func(w *Widget) { w.testimonialsDelay = d }
}

// WithConversationOptions forwards options to the conversation engine
// (delays, jitter, clock).
func WithConversationOptions(opts ...runtime.ConversationOption) Option {
	return func(w *Widget) { w.convOpts = append(w.convOpts, opts...) }
}

// New creates a widget bound to a catalog. The conversation starts with the
// welcome message; no surface is visible until Open is called.
func New(catalog ports.Catalog, opts ...Option) *Widget {
	w := &Widget{
		catalog:           catalog,
		scheduler:         ports.WallScheduler{},
		celebration:       ports.NopCelebration{},
		logger:            logging.NewNop(),
		id:                uuid.NewString(),
		createdAt:         time.Now(),
		surface:           domain.SurfaceNone,
		testimonialsDelay: DefaultTestimonialsDelay,
	}
	for _, opt := range opts {
		opt(w)
	}

	convOpts := append([]runtime.ConversationOption{
		runtime.WithScheduler(w.scheduler),
		runtime.WithGuard(w.guard),
		runtime.WithConversationLogger(w.logger),
	}, w.convOpts...)

	w.conv = runtime.NewConversation(catalog, convOpts...)
	w.selection = runtime.NewSelection()
	w.checkout = runtime.NewCheckout(w.celebration, w.logger)
	return w
}

// ID returns the session ID.
func (w *Widget) ID() string { return w.id }

// guard wraps a delayed effect in a capture-epoch, compare-and-apply check.
// Called under the widget lock at schedule time; the returned closure
// reacquires the lock at fire time and drops the effect if the session it
// targeted has ended.
func (w *Widget) guard(fn func()) func() {
	epoch := w.epoch
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if epoch != w.epoch {
			w.logger.Debug("dropped stale callback", "scheduled_epoch", epoch, "current_epoch", w.epoch)
			return
		}
		fn()
		w.notifyMessagesLocked()
	}
}

func (w *Widget) setSurfaceLocked(s domain.Surface) {
	if w.surface == s {
		return
	}
	w.surface = s
	if w.hooks.OnSurfaceChange != nil {
		w.hooks.OnSurfaceChange(s)
	}
}

func (w *Widget) notifyMessagesLocked() {
	if w.hooks.OnMessage == nil {
		return
	}
	msgs := w.conv.Messages()
	for ; w.notified < len(msgs); w.notified++ {
		w.hooks.OnMessage(msgs[w.notified])
	}
}

// Open shows the chat surface and re-shows the option panel.
func (w *Widget) Open() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.chatOpen = true
	w.conv.Reopen()
	if w.surface == domain.SurfaceNone || w.surface == domain.SurfaceTestimonials {
		w.setSurfaceLocked(domain.SurfaceChat)
	}
	w.notifyMessagesLocked()
}

// Close ends the chat session. Pending timers scheduled against it become
// no-ops.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.chatOpen = false
	w.epoch++
	w.setSurfaceLocked(domain.SurfaceNone)
}

// SubmitOption forwards an option-panel tap to the conversation engine.
func (w *Widget) SubmitOption(value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.conv.SubmitOption(value)
	w.notifyMessagesLocked()
}

// ConfirmConcerns confirms the selected concerns, producing the
// recommendation message and scheduling the category pivot.
func (w *Widget) ConfirmConcerns() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.conv.ConfirmConcerns()
	w.notifyMessagesLocked()
}

// SubmitFreeText forwards typed input to the conversation engine.
func (w *Widget) SubmitFreeText(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.conv.SubmitFreeText(text)
	w.notifyMessagesLocked()
}

// ToggleProduct flips a product's membership in the selection set.
func (w *Widget) ToggleProduct(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.selection.Toggle(id)
}

// ToggleSelectAll selects exactly the listed products, or clears the
// selection if all of them are already selected.
func (w *Widget) ToggleSelectAll(products []domain.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.selection.ToggleAll(products)
}

// CommitSelection upserts every currently selected candidate into the cart
// (stale selection IDs are ignored), clears the selection, and opens the
// cart surface. Committing the same set twice doubles quantities.
func (w *Widget) CommitSelection(candidates []domain.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()
	picked := w.selection.Drain(candidates)
	for _, p := range picked {
		w.checkout.Upsert(p)
	}
	w.logger.Debug("selection committed", "count", len(picked))
	w.openCartLocked()
}

// OpenCart shows the cart surface, starting a new checkout instance at the
// cart step with blank forms. Reopening also resets the testimonials
// suppression (a fresh instance has not completed).
func (w *Widget) OpenCart() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.openCartLocked()
}

func (w *Widget) openCartLocked() {
	w.checkout.Reset()
	w.setSurfaceLocked(domain.SurfaceCart)
}

// CloseCart hides the cart surface. If the checkout did not complete, the
// testimonials prompt is scheduled after a short delay; completion
// suppresses it for this instance.
func (w *Widget) CloseCart() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closeCartLocked()
}

func (w *Widget) closeCartLocked() {
	if w.surface != domain.SurfaceCart {
		return
	}
	completed := w.checkout.Completed()
	if w.chatOpen {
		w.setSurfaceLocked(domain.SurfaceChat)
	} else {
		w.setSurfaceLocked(domain.SurfaceNone)
	}

	if completed {
		return
	}
	if w.hooks.OnCartAbandoned != nil {
		w.hooks.OnCartAbandoned()
	}
	w.scheduler.AfterFunc(w.testimonialsDelay, w.guard(func() {
		// The cart may have reopened during the delay; cart and
		// testimonials are mutually exclusive.
		if w.surface != domain.SurfaceCart {
			w.setSurfaceLocked(domain.SurfaceTestimonials)
		}
	}))
}

// CloseTestimonials dismisses the testimonials prompt.
func (w *Widget) CloseTestimonials() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.surface != domain.SurfaceTestimonials {
		return
	}
	if w.chatOpen {
		w.setSurfaceLocked(domain.SurfaceChat)
	} else {
		w.setSurfaceLocked(domain.SurfaceNone)
	}
}

// Advance moves the checkout to its next step. Reaching complete fires the
// celebration effect and the completion hook exactly once.
func (w *Widget) Advance() {
	w.mu.Lock()
	defer w.mu.Unlock()
	was := w.checkout.Completed()
	w.checkout.Advance()
	if !was && w.checkout.Completed() && w.hooks.OnCheckoutComplete != nil {
		w.hooks.OnCheckoutComplete()
	}
}

// CompleteDirectly runs the simple cart variant: jump straight from cart to
// complete.
func (w *Widget) CompleteDirectly() {
	w.mu.Lock()
	defer w.mu.Unlock()
	was := w.checkout.Completed()
	w.checkout.CompleteDirectly()
	if !was && w.checkout.Completed() && w.hooks.OnCheckoutComplete != nil {
		w.hooks.OnCheckoutComplete()
	}
}

// GoBack returns to the cart step from address or payment. Invoked at the
// cart step it is a cancel action: the cart surface closes.
func (w *Widget) GoBack() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.checkout.GoBack() {
		return
	}
	if w.checkout.Step() == domain.StepCart {
		w.closeCartLocked()
	}
}

// SetQuantity updates a cart line. Zero removes the line; negative values
// are rejected.
func (w *Widget) SetQuantity(productID string, n int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.checkout.SetQuantity(productID, n)
}

// SetAddress replaces the address form.
func (w *Widget) SetAddress(form domain.AddressForm) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.checkout.SetAddress(form)
}

// SetPayment replaces the payment form; the card offer shown by CartView is
// recomputed from it on every call.
func (w *Widget) SetPayment(form domain.PaymentForm) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.checkout.SetPayment(form)
}

// Surface returns the currently visible top-level surface.
func (w *Widget) Surface() domain.Surface {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.surface
}

// ChatView builds the chat surface read model.
func (w *Widget) ChatView() ports.ChatView {
	w.mu.Lock()
	defer w.mu.Unlock()
	return ports.ChatView{
		Messages:     w.conv.Messages(),
		Preferences:  w.conv.Preferences(),
		Selected:     w.selection.List(),
		Options:      w.conv.Options(),
		ShowOptions:  w.conv.ShowOptions(),
		InputVisible: w.conv.InputVisible(),
		Composing:    w.conv.Composing(),
	}
}

// CartView builds the cart surface read model.
func (w *Widget) CartView() ports.CartView {
	w.mu.Lock()
	defer w.mu.Unlock()
	return ports.CartView{
		Step:    w.checkout.Step(),
		Items:   w.checkout.Items(),
		Total:   w.checkout.Total(),
		Address: w.checkout.Address(),
		Payment: w.checkout.Payment(),
		Offer:   w.checkout.Offer(),
	}
}

// Render pushes both views to a renderer.
func (w *Widget) Render(r ports.Renderer) {
	r.RenderChat(w.ChatView())
	r.RenderCart(w.CartView())
}

// Snapshot captures the session state for persistence.
func (w *Widget) Snapshot() *domain.Session {
	w.mu.Lock()
	defer w.mu.Unlock()
	prefs := w.conv.Preferences()
	return &domain.Session{
		ID:               w.id,
		CreatedAt:        w.createdAt,
		UpdatedAt:        time.Now(),
		Messages:         w.conv.Messages(),
		Preferences:      prefs,
		Selected:         w.selection.List(),
		ShowOptions:      w.conv.ShowOptions(),
		Composing:        w.conv.Composing(),
		Cart:             w.checkout.Items(),
		Step:             w.checkout.Step(),
		Address:          w.checkout.Address(),
		Payment:          w.checkout.Payment(),
		Surface:          w.surface,
		CheckoutComplete: w.checkout.Completed(),
	}
}

// Restore replaces widget state from a snapshot. Pending timers from the
// previous state are invalidated.
func (w *Widget) Restore(sess *domain.Session) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.epoch++
	w.id = sess.ID
	w.createdAt = sess.CreatedAt
	w.conv.Restore(sess)
	w.selection.Restore(sess.Selected)
	w.checkout.Restore(sess)
	w.surface = sess.Surface
	w.chatOpen = sess.Surface == domain.SurfaceChat || sess.Surface == domain.SurfaceCart
	w.notified = len(sess.Messages)
}

package runtime

import (
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/resultflow/careflow/internal/logging"
	"github.com/resultflow/careflow/pkg/domain"
	"github.com/resultflow/careflow/pkg/ports"
)

// Default delays, matching the original widget's pacing.
const (
	// DefaultFollowUpDelay is the pause before the category-pivot upsell
	// message after a recommendation is shown.
	DefaultFollowUpDelay = 2 * time.Second

	// DefaultReplyDelay is the fixed lower bound before a free-text reply;
	// a bounded jitter is added on top to mimic composing time.
	DefaultReplyDelay = 1 * time.Second

	// DefaultReplyJitterBound caps the randomized jitter.
	DefaultReplyJitterBound = 1 * time.Second
)

// Conversation maintains the message log and drives the scripted
// preference-elicitation branch plus the free-text fallback.
//
// Conversation is not safe for concurrent use; the owning Widget serializes
// calls and wraps scheduled callbacks with its liveness guard.
type Conversation struct {
	catalog   ports.Catalog
	scheduler ports.Scheduler
	logger    *slog.Logger

	// guard wraps a delayed effect so it no-ops when the session it was
	// scheduled against has been torn down.
	guard func(fn func()) func()

	now    func() time.Time
	newID  func() string
	jitter func() time.Duration

	followUpDelay time.Duration
	replyDelay    time.Duration

	messages    []domain.Message
	prefs       domain.Preferences
	showOptions bool
	composing   bool
}

// ConversationOption configures a Conversation.
type ConversationOption func(*Conversation)

// WithScheduler injects the timer source (tests use a manual one).
func WithScheduler(s ports.Scheduler) ConversationOption {
	return func(c *Conversation) { c.scheduler = s }
}

// WithGuard injects the liveness wrapper applied to delayed effects.
func WithGuard(guard func(fn func()) func()) ConversationOption {
	return func(c *Conversation) { c.guard = guard }
}

// WithConversationLogger sets the structured logger.
func WithConversationLogger(logger *slog.Logger) ConversationOption {
	return func(c *Conversation) { c.logger = logger }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) ConversationOption {
	return func(c *Conversation) { c.now = now }
}

// WithJitter overrides the reply jitter source.
func WithJitter(jitter func() time.Duration) ConversationOption {
	return func(c *Conversation) { c.jitter = jitter }
}

// WithFollowUpDelay overrides the category-pivot delay.
func WithFollowUpDelay(d time.Duration) ConversationOption {
	return func(c *Conversation) { c.followUpDelay = d }
}

// WithReplyDelay overrides the fixed part of the free-text reply delay.
func WithReplyDelay(d time.Duration) ConversationOption {
	return func(c *Conversation) { c.replyDelay = d }
}

// NewConversation creates a conversation seeded with the welcome message
// and the category option panel visible.
func NewConversation(catalog ports.Catalog, opts ...ConversationOption) *Conversation {
	c := &Conversation{
		catalog:   catalog,
		scheduler: ports.WallScheduler{},
		logger:    logging.NewNop(),
		guard:     func(fn func()) func() { return fn },
		now:       time.Now,
		newID:     uuid.NewString,
		jitter: func() time.Duration {
			return time.Duration(rand.Int63n(int64(DefaultReplyJitterBound)))
		},
		followUpDelay: DefaultFollowUpDelay,
		replyDelay:    DefaultReplyDelay,
		prefs:         domain.NewPreferences(),
		showOptions:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.append(domain.RoleAssistant, welcomeText)
	return c
}

func (c *Conversation) append(role domain.Role, text string, recs ...domain.RecommendationBlock) domain.Message {
	msg := domain.Message{
		ID:              c.newID(),
		Role:            role,
		Text:            text,
		CreatedAt:       c.now(),
		Recommendations: recs,
	}
	c.messages = append(c.messages, msg)
	return msg
}

// SubmitOption handles a tap on the option panel. Before a category is
// chosen the value selects the vertical; afterwards it silently toggles
// concern membership. Taps after confirmation are ignored.
func (c *Conversation) SubmitOption(value string) {
	switch c.prefs.Phase {
	case domain.PhaseCategory:
		category := domain.CategorySkin
		if value == string(domain.CategoryHair) {
			category = domain.CategoryHair
		}
		c.prefs.Category = category
		c.prefs.Phase = domain.PhaseConcerns

		c.append(domain.RoleUser, categoryEcho(category))
		c.append(domain.RoleAssistant, concernPrompt(category))
		c.showOptions = true

	case domain.PhaseConcerns:
		// Silent idempotent toggle; no message until confirmation.
		if c.prefs.HasConcern(value) {
			kept := c.prefs.Concerns[:0]
			for _, v := range c.prefs.Concerns {
				if v != value {
					kept = append(kept, v)
				}
			}
			c.prefs.Concerns = kept
		} else {
			c.prefs.Concerns = append(c.prefs.Concerns, value)
		}

	case domain.PhaseAnswered:
		c.logger.Debug("option ignored after confirmation", "value", value)
	}
}

// ConfirmConcerns closes the elicitation phase: it echoes the selected
// concern labels, attaches the category's recommendation block, and
// schedules the pivot to the other vertical. A confirmation with no
// selected concerns is a no-op.
func (c *Conversation) ConfirmConcerns() {
	if c.prefs.Phase != domain.PhaseConcerns || len(c.prefs.Concerns) == 0 {
		return
	}

	labels := make([]string, 0, len(c.prefs.Concerns))
	for _, value := range c.prefs.Concerns {
		labels = append(labels, concernLabel(c.prefs.Category, value))
	}
	c.append(domain.RoleUser, strings.Join(labels, ", "))

	c.prefs.Phase = domain.PhaseAnswered

	if rec, ok := c.catalog.Recommendation(c.prefs.Category); ok {
		c.append(domain.RoleAssistant, recommendationIntro(c.prefs.Category), rec)
	} else {
		c.logger.Warn("catalog has no recommendation", "category", c.prefs.Category)
		c.append(domain.RoleAssistant, recommendationIntro(c.prefs.Category))
	}
	c.showOptions = false

	// Pivot to the other vertical after a fixed delay. The timer is never
	// cancelled by other activity; the guard drops it only if the session
	// itself ended.
	from := c.prefs.Category
	c.scheduler.AfterFunc(c.followUpDelay, c.guard(func() {
		c.append(domain.RoleAssistant, pivotCopy(from))
		c.prefs = domain.Preferences{
			Category: from.Other(),
			Phase:    domain.PhaseConcerns,
		}
		c.showOptions = true
	}))
}

// SubmitFreeText handles typed input. Blank input is a no-op. The reply is
// picked by the keyword classifier and appended after a randomized delay,
// with the composing indicator raised in between.
func (c *Conversation) SubmitFreeText(text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	c.append(domain.RoleUser, trimmed)
	c.composing = true

	reply := classifyReply(trimmed, c.prefs.Category)
	c.scheduler.AfterFunc(c.replyDelay+c.jitter(), c.guard(func() {
		c.append(domain.RoleAssistant, reply)
		c.composing = false
	}))
}

// Reopen re-shows the option panel, as when the chat dialog is reopened.
func (c *Conversation) Reopen() {
	c.showOptions = true
}

// Messages returns a copy of the message log in append order.
func (c *Conversation) Messages() []domain.Message {
	out := make([]domain.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Preferences returns the current preference state.
func (c *Conversation) Preferences() domain.Preferences {
	return c.prefs
}

// Options returns the option panel content for the current phase.
func (c *Conversation) Options() []domain.ConcernOption {
	switch c.prefs.Phase {
	case domain.PhaseCategory:
		return CategoryOptions
	case domain.PhaseConcerns:
		return ConcernsFor(c.prefs.Category)
	default:
		return nil
	}
}

// ShowOptions reports option panel visibility.
func (c *Conversation) ShowOptions() bool { return c.showOptions }

// Composing reports whether a reply is pending.
func (c *Conversation) Composing() bool { return c.composing }

// InputVisible reports whether the free-text input is reachable: options
// hidden, or preferences answered, or a category set with at least one
// concern picked.
func (c *Conversation) InputVisible() bool {
	if !c.showOptions || c.prefs.Phase == domain.PhaseAnswered {
		return true
	}
	return c.prefs.Category != domain.CategoryUnset && len(c.prefs.Concerns) > 0
}

// Restore replaces conversation state from a session snapshot.
func (c *Conversation) Restore(sess *domain.Session) {
	c.messages = append([]domain.Message(nil), sess.Messages...)
	c.prefs = sess.Preferences
	c.showOptions = sess.ShowOptions
	c.composing = sess.Composing
}

// Package httpapi exposes widget sessions over HTTP. It is the Renderer
// contract over the wire: GET returns the state views, POST intents feed
// user actions back into the core.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/resultflow/careflow"
	"github.com/resultflow/careflow/internal/logging"
	"github.com/resultflow/careflow/pkg/domain"
	"github.com/resultflow/careflow/pkg/observability"
	"github.com/resultflow/careflow/pkg/ports"
	"github.com/resultflow/careflow/pkg/session"
)

// ErrUnknownIntent is returned when an intent type is not recognized.
var ErrUnknownIntent = errors.New("unknown intent")

// Server hosts live widgets keyed by session ID and mirrors their
// snapshots into a SessionStore after every intent.
type Server struct {
	mu      sync.Mutex
	widgets map[string]*careflow.Widget

	sessions *session.Manager
	catalog  ports.Catalog
	metrics  *observability.Metrics
	logger   *slog.Logger

	widgetOpts []careflow.Option
}

// ServerOption configures the Server.
type ServerOption func(*Server)

// WithMetrics attaches Prometheus metrics (and the /metrics endpoint).
func WithMetrics(m *observability.Metrics) ServerOption {
	return func(s *Server) { s.metrics = m }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// WithWidgetOptions forwards options to every widget the server creates.
func WithWidgetOptions(opts ...careflow.Option) ServerOption {
	return func(s *Server) { s.widgetOpts = append(s.widgetOpts, opts...) }
}

// NewServer creates a session server over the given catalog and store.
func NewServer(catalog ports.Catalog, store ports.SessionStore, opts ...ServerOption) *Server {
	s := &Server{
		widgets:  make(map[string]*careflow.Widget),
		sessions: session.NewManager(store),
		catalog:  catalog,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the chi router for the session API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Post("/sessions", s.instrument("create_session", s.handleCreate))
	r.Get("/sessions", s.instrument("list_sessions", s.handleList))
	r.Get("/sessions/{id}", s.instrument("get_session", s.handleGet))
	r.Post("/sessions/{id}/intents", s.instrument("post_intent", s.handleIntent))
	r.Delete("/sessions/{id}", s.instrument("delete_session", s.handleDelete))
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}
	return r
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		if s.metrics != nil {
			s.metrics.ObserveRequest(route, strconv.Itoa(rec.status))
		}
	}
}

// sessionView is the wire shape returned to clients: both surface views
// plus the visible surface.
type sessionView struct {
	ID      string         `json:"id"`
	Surface domain.Surface `json:"surface"`
	Chat    ports.ChatView `json:"chat"`
	Cart    ports.CartView `json:"cart"`
}

func (s *Server) view(w *careflow.Widget) sessionView {
	return sessionView{
		ID:      w.ID(),
		Surface: w.Surface(),
		Chat:    w.ChatView(),
		Cart:    w.CartView(),
	}
}

func (s *Server) widget(id string) (*careflow.Widget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.widgets[id]
	return w, ok
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()

	opts := append([]careflow.Option{careflow.WithID(id), careflow.WithLogger(s.logger)}, s.widgetOpts...)
	if s.metrics != nil {
		opts = append(opts, careflow.WithHooks(s.metrics.Hooks()))
	}
	widget := careflow.New(s.catalog, opts...)
	widget.Open()

	s.mu.Lock()
	s.widgets[id] = widget
	s.mu.Unlock()

	if err := s.sessions.Save(r.Context(), id, widget.Snapshot()); err != nil {
		s.logger.Error("failed to persist new session", "session_id", id, "err", err)
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusCreated, s.view(widget))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.sessions.List(r.Context())
	if err != nil {
		http.Error(w, "failed to list sessions", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"sessions": ids})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	widget, ok := s.widget(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, s.view(widget))
}

func (s *Server) handleIntent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	widget, ok := s.widget(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	var intent Intent
	if err := json.NewDecoder(r.Body).Decode(&intent); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := Dispatch(widget, intent); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.sessions.Save(r.Context(), id, widget.Snapshot()); err != nil {
		s.logger.Warn("failed to persist session snapshot", "session_id", id, "err", err)
	}

	s.writeJSON(w, http.StatusOK, s.view(widget))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	widget, ok := s.widgets[id]
	delete(s.widgets, id)
	s.mu.Unlock()

	if ok {
		widget.Close()
	}
	if err := s.sessions.Delete(r.Context(), id); err != nil {
		s.logger.Warn("failed to delete session snapshot", "session_id", id, "err", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to encode response", "err", err)
	}
}

// Intent is one user action from the rendering layer.
type Intent struct {
	Type     string              `json:"type"`
	Value    string              `json:"value,omitempty"`
	Text     string              `json:"text,omitempty"`
	Product  string              `json:"product_id,omitempty"`
	Quantity int                 `json:"quantity,omitempty"`
	Products []domain.Product    `json:"products,omitempty"`
	Address  *domain.AddressForm `json:"address,omitempty"`
	Payment  *domain.PaymentForm `json:"payment,omitempty"`
}

// Dispatch routes an intent to the matching widget operation.
func Dispatch(w *careflow.Widget, intent Intent) error {
	switch intent.Type {
	case "open_chat":
		w.Open()
	case "close_chat":
		w.Close()
	case "submit_option":
		w.SubmitOption(intent.Value)
	case "confirm_concerns":
		w.ConfirmConcerns()
	case "submit_free_text":
		w.SubmitFreeText(intent.Text)
	case "toggle_product":
		w.ToggleProduct(intent.Product)
	case "toggle_select_all":
		w.ToggleSelectAll(intent.Products)
	case "commit_selection":
		w.CommitSelection(intent.Products)
	case "open_cart":
		w.OpenCart()
	case "close_cart":
		w.CloseCart()
	case "close_testimonials":
		w.CloseTestimonials()
	case "advance":
		w.Advance()
	case "go_back":
		w.GoBack()
	case "complete_directly":
		w.CompleteDirectly()
	case "set_quantity":
		w.SetQuantity(intent.Product, intent.Quantity)
	case "set_address":
		if intent.Address != nil {
			w.SetAddress(*intent.Address)
		}
	case "set_payment":
		if intent.Payment != nil {
			w.SetPayment(*intent.Payment)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownIntent, intent.Type)
	}
	return nil
}

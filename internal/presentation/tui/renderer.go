// Package tui renders widget state in a terminal. It is a host-side
// adapter: the interaction core never depends on it.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/resultflow/careflow/pkg/domain"
	"github.com/resultflow/careflow/pkg/ports"
)

// Renderer implements ports.Renderer for an interactive terminal session.
// Assistant messages are rendered as markdown via glamour.
type Renderer struct {
	out      io.Writer
	markdown func(string) (string, error)

	// rendered tracks how many messages have been printed so repeated
	// RenderChat calls only emit new turns.
	rendered int
}

// NewRenderer creates a terminal renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	render := func(markdown string) (string, error) {
		if r == nil {
			return markdown, nil
		}
		return r.Render(markdown)
	}

	return &Renderer{out: out, markdown: render}
}

// RenderChat prints messages appended since the last call, then the option
// panel and composing indicator.
func (r *Renderer) RenderChat(view ports.ChatView) {
	for ; r.rendered < len(view.Messages); r.rendered++ {
		msg := view.Messages[r.rendered]
		r.printMessage(msg)
	}

	if view.Composing {
		fmt.Fprintln(r.out, "  [assistant is typing...]")
	}

	if view.ShowOptions && len(view.Options) > 0 {
		fmt.Fprintln(r.out)
		for _, opt := range view.Options {
			marker := "( )"
			if view.Preferences.HasConcern(opt.Value) {
				marker = "(x)"
			}
			fmt.Fprintf(r.out, "  %s %s  [%s]\n", marker, opt.Label, opt.Value)
		}
	}
}

func (r *Renderer) printMessage(msg domain.Message) {
	switch msg.Role {
	case domain.RoleUser:
		fmt.Fprintf(r.out, "\n> %s\n", msg.Text)
	case domain.RoleAssistant:
		body, err := r.markdown(msg.Text)
		if err != nil {
			body = msg.Text
		}
		fmt.Fprint(r.out, body)
	}

	for _, rec := range msg.Recommendations {
		fmt.Fprintf(r.out, "\n  ✦ %s\n  %s\n", rec.Title, rec.Description)
		for _, p := range rec.Products {
			fmt.Fprintf(r.out, "    - %s ($%.2f/mo)  [%s]\n", p.Name, p.Price, p.ID)
		}
		if rec.DiscountPercent > 0 {
			fmt.Fprintf(r.out, "    Save %d%% ($%.2f)\n", rec.DiscountPercent, rec.SavingsAmount)
		}
	}
}

// RenderCart prints the cart surface for the current checkout step.
func (r *Renderer) RenderCart(view ports.CartView) {
	if len(view.Items) == 0 {
		return
	}

	fmt.Fprintf(r.out, "\n── Your Smart Cart (%s) ──\n", view.Step)
	for _, item := range view.Items {
		fmt.Fprintf(r.out, "  %dx %s  $%.2f/mo\n", item.Quantity, item.Name, item.Price)
	}
	fmt.Fprintf(r.out, "  Total: $%.2f/mo\n", view.Total)

	if view.Offer != nil {
		fmt.Fprintf(r.out, "  %s offer: %d%% off\n", view.Offer.CardType, view.Offer.DiscountPercent)
		for _, b := range view.Offer.Benefits {
			fmt.Fprintf(r.out, "    • %s\n", b)
		}
	}
	fmt.Fprintln(r.out, strings.Repeat("─", 30))
}

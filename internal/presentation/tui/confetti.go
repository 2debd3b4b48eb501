package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/muesli/termenv"
)

// Confetti implements ports.CelebrationEffect with a colored burst of
// glyphs.
type Confetti struct {
	out io.Writer
}

// NewConfetti creates the effect writing to out.
func NewConfetti(out io.Writer) *Confetti {
	return &Confetti{out: out}
}

var confettiColors = []string{"#f472b6", "#fb7185", "#c084fc", "#818cf8", "#34d399", "#fbbf24"}

const confettiGlyphs = "✦✧★◆●▲"

// Trigger prints the burst. Fire-and-forget: it never blocks on anything
// but the writer and touches no widget state.
func (c *Confetti) Trigger() {
	p := termenv.ColorProfile()
	glyphs := []rune(confettiGlyphs)

	var b strings.Builder
	for line := 0; line < 3; line++ {
		for i := 0; i < 24; i++ {
			if rand.Intn(3) == 0 {
				b.WriteString("  ")
				continue
			}
			glyph := string(glyphs[rand.Intn(len(glyphs))])
			color := confettiColors[rand.Intn(len(confettiColors))]
			b.WriteString(termenv.String(glyph + " ").Foreground(p.Color(color)).String())
		}
		b.WriteString("\n")
	}

	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, b.String())
	congrats := termenv.String("  Your order is complete! 🎉").Bold()
	fmt.Fprintln(c.out, congrats)
}

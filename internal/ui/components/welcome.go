// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/armatupc/armatupc-tui/internal/ui/styles"
)

// =============================================================================
// WELCOME SCREEN
// =============================================================================

// ExamplePrompts are offered in an empty conversation; picking one fills
// the input.
var ExamplePrompts = []string{
	"Quiero una PC para gaming con 2500 soles",
	"Necesito una computadora para diseño gráfico, presupuesto 3500",
	"PC para oficina, algo económico",
	"Una workstation para edición de video con 5000 soles",
}

const welcomeMarkdown = `# armatupc

Describe la PC que necesitas y tu presupuesto, y el asistente armará
una configuración completa: componentes, costos y compatibilidad.

*Escribe tu pedido abajo, o elige un ejemplo con su número.*
`

// Welcome renders the empty-conversation screen with example prompts.
type Welcome struct {
	theme        *styles.Theme
	showExamples bool
	rendered     string
	width        int
}

// NewWelcome creates the welcome screen.
func NewWelcome(theme *styles.Theme, showExamples bool) *Welcome {
	return &Welcome{theme: theme, showExamples: showExamples}
}

// SetSize updates the welcome width and re-renders the markdown body.
func (w *Welcome) SetSize(width int) {
	if width == w.width {
		return
	}
	w.width = width
	w.rendered = ""
}

// View renders the welcome screen.
func (w *Welcome) View() string {
	var b strings.Builder
	b.WriteString(w.markdown())

	if w.showExamples {
		b.WriteString("\n")
		for i, example := range ExamplePrompts {
			b.WriteString("  ")
			b.WriteString(w.theme.ExampleOrdinal.Render(fmt.Sprintf("%d.", i+1)))
			b.WriteString(" ")
			b.WriteString(w.theme.ExamplePrompt.Render(example))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// markdown renders and caches the glamour body for the current width.
func (w *Welcome) markdown() string {
	if w.rendered != "" {
		return w.rendered
	}

	wrap := w.width - 4
	if wrap < 20 {
		wrap = 60
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		w.rendered = welcomeMarkdown
		return w.rendered
	}

	out, err := renderer.Render(welcomeMarkdown)
	if err != nil {
		w.rendered = welcomeMarkdown
		return w.rendered
	}

	w.rendered = out
	return w.rendered
}

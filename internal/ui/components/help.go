// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/glamour"

	"github.com/armatupc/armatupc-tui/internal/ui/styles"
)

// =============================================================================
// HELP OVERLAY
// =============================================================================

const helpMarkdown = `# Ayuda

## Asistente

Describe la PC que necesitas en lenguaje natural, con tu presupuesto en
soles, y presiona **enter**. La configuración generada aparece en el
panel derecho: componentes, costos y compatibilidad.

En una conversación vacía puedes escribir el número de un ejemplo para
cargarlo en el campo de texto.

## Explorar

Navega el catálogo de componentes. Cambia el tipo con **←/→**, escribe
un precio máximo y presiona **enter** para filtrar.

## Atajos

| Tecla    | Acción            |
|----------|-------------------|
| ctrl+e   | cambiar pestaña   |
| ctrl+h   | mostrar/ocultar ayuda |
| esc      | cerrar aviso      |
| ctrl+c   | salir             |
`

// Help renders the help overlay.
type Help struct {
	theme    *styles.Theme
	rendered string
	width    int
}

// NewHelp creates the help overlay.
func NewHelp(theme *styles.Theme) *Help {
	return &Help{theme: theme}
}

// SetSize updates the overlay width and invalidates the rendered cache.
func (h *Help) SetSize(width int) {
	if width == h.width {
		return
	}
	h.width = width
	h.rendered = ""
}

// View renders the help text.
func (h *Help) View() string {
	if h.rendered != "" {
		return h.rendered
	}

	wrap := h.width - 4
	if wrap < 20 {
		wrap = 72
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		h.rendered = helpMarkdown
		return h.rendered
	}

	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		h.rendered = helpMarkdown
		return h.rendered
	}

	h.rendered = out
	return h.rendered
}

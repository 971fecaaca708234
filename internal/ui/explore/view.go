// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package explore

import (
	"strings"

	"github.com/armatupc/armatupc-tui/internal/ui/styles"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the explorer tab: the draft filter controls, then the
// applied listing.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderControls())
	b.WriteString("\n\n")

	if m.browser.TypesFailed() {
		b.WriteString(styles.RenderWarning("No se pudieron cargar los tipos de componentes"))
		b.WriteString("\n\n")
	}

	if m.browser.Loading() {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.ThinkingText.Render(" Cargando componentes..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.table.View())

	return b.String()
}

// renderControls renders the draft type selector and price input.
func (m *Model) renderControls() string {
	typeLabel := "Todos"
	if t := m.selectedType(); t != "" {
		typeLabel = t
	}

	var b strings.Builder
	b.WriteString(m.theme.FilterLabel.Render("Tipo: "))
	b.WriteString(m.theme.FilterValue.Render("< " + typeLabel + " >"))
	b.WriteString("   ")
	b.WriteString(m.priceInput.View())
	return b.String()
}

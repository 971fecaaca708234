// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the armatupc TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/armatupc/armatupc-tui/internal/projection"
	"github.com/armatupc/armatupc-tui/internal/ui/styles"
	"github.com/armatupc/armatupc-tui/internal/util"
)

// =============================================================================
// CONFIGURATION PANEL
// =============================================================================

// placeholderText is shown while no configuration has been generated yet.
const placeholderText = "Tu configuración aparecerá aquí"

// ConfigPanel displays the most recent generated configuration: component
// rows, the cost summary, and the compatibility verdict. It holds whatever
// was last set; a failed submission never clears it.
type ConfigPanel struct {
	theme   *styles.Theme
	display *projection.Display
	width   int
	height  int
}

// NewConfigPanel creates an empty configuration panel.
func NewConfigPanel(theme *styles.Theme) *ConfigPanel {
	return &ConfigPanel{theme: theme}
}

// SetDisplay replaces the panel contents with a new projected configuration.
func (cp *ConfigPanel) SetDisplay(display *projection.Display) {
	cp.display = display
}

// Display returns the currently shown configuration, or nil.
func (cp *ConfigPanel) Display() *projection.Display {
	return cp.display
}

// SetSize updates the panel dimensions.
func (cp *ConfigPanel) SetSize(width, height int) {
	cp.width = width
	cp.height = height
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the panel.
func (cp *ConfigPanel) View() string {
	title := cp.theme.PanelTitle.Render("Tu Configuración")

	if cp.display == nil {
		body := cp.theme.Placeholder.Render(placeholderText)
		return cp.theme.PanelBox.Width(cp.innerWidth()).Render(title + "\n\n" + body)
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")

	b.WriteString(cp.renderRows())
	b.WriteString("\n")
	b.WriteString(cp.renderCosts())
	b.WriteString("\n")
	b.WriteString(cp.renderCompatibility())

	return cp.theme.PanelBox.Width(cp.innerWidth()).Render(b.String())
}

// renderRows renders one line per component, in service order.
func (cp *ConfigPanel) renderRows() string {
	var b strings.Builder

	nameWidth := cp.innerWidth() - 26
	if nameWidth < 10 {
		nameWidth = 10
	}

	for _, row := range cp.display.Rows {
		b.WriteString(cp.theme.RowIcon.Render(row.Icon))
		b.WriteString(" ")
		b.WriteString(cp.theme.RowName.Render(util.PadRight(row.Name, nameWidth)))
		b.WriteString(" ")
		b.WriteString(cp.theme.RowBrand.Render(util.PadRight(row.Brand, 8)))
		b.WriteString(cp.theme.RowPrice.Render(util.PadLeft(row.Price, 11)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderCosts renders the cost summary section.
func (cp *ConfigPanel) renderCosts() string {
	costs := cp.display.Costs
	var b strings.Builder

	b.WriteString(cp.theme.CostLabel.Render("Presupuesto: "))
	b.WriteString(cp.theme.CostValue.Render(costs.Budget))
	b.WriteString("\n")

	b.WriteString(cp.theme.CostLabel.Render("Total:       "))
	b.WriteString(cp.theme.CostValue.Render(costs.Total))
	b.WriteString("\n")

	remainingStyle := cp.theme.BudgetSurplus
	if costs.RemainingClass == projection.RemainingDeficit {
		remainingStyle = cp.theme.BudgetDeficit
	}
	b.WriteString(cp.theme.CostLabel.Render(util.PadRight(costs.RemainingLabel+":", 13)))
	b.WriteString(remainingStyle.Render(costs.Remaining))
	b.WriteString("\n")

	tierStyle := cp.theme.BudgetTierStyle(int(costs.ComplianceTier))
	b.WriteString(cp.theme.CostLabel.Render("Uso:         "))
	b.WriteString(tierStyle.Render(costs.Compliance))
	b.WriteString("\n")

	return b.String()
}

// renderCompatibility renders the verdict banner, then errors, then
// warnings. The banner follows the service verdict alone.
func (cp *ConfigPanel) renderCompatibility() string {
	compat := cp.display.Compatibility
	var b strings.Builder

	if compat.Valid {
		b.WriteString(cp.theme.CompatValid.Render(styles.StatusIndicators.Success + " Compatible"))
	} else {
		b.WriteString(cp.theme.CompatInvalid.Render(styles.StatusIndicators.Error + " Incompatible"))
	}
	b.WriteString("\n")

	for _, msg := range compat.Errors {
		b.WriteString(cp.theme.CompatError.Render(fmt.Sprintf("  %s %s", styles.StatusIndicators.Error, msg)))
		b.WriteString("\n")
	}
	for _, msg := range compat.Warnings {
		b.WriteString(cp.theme.CompatWarning.Render(fmt.Sprintf("  %s %s", styles.StatusIndicators.Warning, msg)))
		b.WriteString("\n")
	}

	return b.String()
}

func (cp *ConfigPanel) innerWidth() int {
	if cp.width <= 4 {
		return 40
	}
	return cp.width - 2
}

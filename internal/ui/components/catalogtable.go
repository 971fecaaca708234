// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/armatupc/armatupc-tui/internal/api"
	"github.com/armatupc/armatupc-tui/internal/projection"
	"github.com/armatupc/armatupc-tui/internal/ui/styles"
	"github.com/armatupc/armatupc-tui/internal/util"
)

// =============================================================================
// CATALOG TABLE
// =============================================================================

// CatalogTable renders the component explorer listing: the applied filter,
// the component rows in service order, and a result count.
type CatalogTable struct {
	theme      *styles.Theme
	components []api.CatalogComponent
	filter     api.ComponentFilter
	width      int
	height     int
}

// NewCatalogTable creates an empty catalog table.
func NewCatalogTable(theme *styles.Theme) *CatalogTable {
	return &CatalogTable{theme: theme}
}

// SetComponents replaces the listed components and the filter they answer.
func (ct *CatalogTable) SetComponents(components []api.CatalogComponent, filter api.ComponentFilter) {
	ct.components = components
	ct.filter = filter
}

// SetSize updates the table dimensions.
func (ct *CatalogTable) SetSize(width, height int) {
	ct.width = width
	ct.height = height
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the table.
func (ct *CatalogTable) View() string {
	var b strings.Builder

	b.WriteString(ct.renderFilter())
	b.WriteString("\n")

	if len(ct.components) == 0 {
		b.WriteString(styles.RenderInfo("Sin componentes para mostrar"))
		b.WriteString("\n")
		return b.String()
	}

	nameWidth := ct.nameWidth()

	header := ct.theme.TableHeader.Render(
		util.PadRight("Tipo", 13) +
			util.PadRight("Componente", nameWidth) +
			util.PadRight("Marca", 12) +
			util.PadLeft("Precio", 11) +
			util.PadLeft("Stock", 7))
	b.WriteString(header)
	b.WriteString("\n")

	for i, comp := range ct.components {
		rowStyle := ct.theme.TableRow
		if i%2 == 1 {
			rowStyle = ct.theme.TableRowAlt
		}

		b.WriteString(rowStyle.Render(
			util.PadRight(comp.Type, 13) +
				util.PadRight(comp.Name, nameWidth) +
				util.PadRight(comp.Brand, 12) +
				util.PadLeft(projection.FormatMoney(comp.RegularPrice), 11)))
		stockStyle := ct.theme.FilterLabel
		if comp.Stock != nil {
			stockStyle = ct.theme.StockStyle(*comp.Stock)
		}
		b.WriteString(stockStyle.Render(util.PadLeft(stockLabel(comp.Stock), 7)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ct.theme.FilterLabel.Render(
		fmt.Sprintf("Mostrando %d componentes", len(ct.components))))
	b.WriteString("\n")

	return b.String()
}

// renderFilter shows the filter behind the current listing.
func (ct *CatalogTable) renderFilter() string {
	var parts []string

	if ct.filter.Type != "" {
		parts = append(parts, ct.theme.FilterLabel.Render("tipo: ")+ct.theme.FilterValue.Render(ct.filter.Type))
	}
	if ct.filter.MaxPrice > 0 {
		parts = append(parts, ct.theme.FilterLabel.Render("precio máx: ")+
			ct.theme.FilterValue.Render(projection.FormatMoney(ct.filter.MaxPrice)))
	}
	if len(parts) == 0 {
		return ct.theme.FilterLabel.Render("Todos los componentes")
	}
	return strings.Join(parts, ct.theme.FilterLabel.Render("  |  "))
}

func (ct *CatalogTable) nameWidth() int {
	w := ct.width - 45
	if w < 16 {
		return 16
	}
	return w
}

// stockLabel renders a stock count: "Agotado" for a reported zero, a dash
// when the service did not report stock at all.
func stockLabel(stock *int) string {
	if stock == nil {
		return "-"
	}
	if *stock <= 0 {
		return "Agotado"
	}
	return fmt.Sprintf("%d", *stock)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package projection maps a raw recommendation payload into the values the
// display needs: component rows, a cost summary, and a compatibility
// verdict. Everything here is pure and deterministic; the service's numbers
// are formatted and classified, never recomputed.
package projection

import (
	"strconv"

	"github.com/armatupc/armatupc-tui/internal/api"
)

// =============================================================================
// DISPLAY MODEL
// =============================================================================

// ComponentRow is one line of the configuration panel.
type ComponentRow struct {
	Type  string // Component type key as sent by the service
	Icon  string // Fixed-width marker; generic for unknown types
	Name  string
	Brand string
	Price string // "S/ 1234.56", always two decimals
}

// RemainingClass classifies the remaining budget line.
type RemainingClass int

const (
	RemainingSurplus RemainingClass = iota // remaining >= 0
	RemainingDeficit                       // remaining < 0
)

// ComplianceTier classifies budget usage for coloring.
type ComplianceTier int

const (
	ComplianceWithin ComplianceTier = iota // <= 100%
	ComplianceMild                         // > 100% and <= 110%
	ComplianceSevere                       // > 110%
)

// CostView is the formatted cost section. Remaining always shows the
// magnitude; the sign is conveyed only by the class and label.
type CostView struct {
	Budget         string // "S/ 2000.00"
	Total          string
	Remaining      string // abs(remaining), two decimals
	RemainingLabel string // "Left over" or "Over budget"
	RemainingClass RemainingClass
	Compliance     string // "81.2%"
	ComplianceTier ComplianceTier
}

// CompatibilityView is the compatibility banner and its detail lines.
// Valid is the service verdict alone; warnings are shown regardless of it.
type CompatibilityView struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// Display is the full display model for one configuration.
type Display struct {
	Rows          []ComponentRow
	Costs         CostView
	Compatibility CompatibilityView
}

// =============================================================================
// COMPONENT ICONS
// =============================================================================

// componentIcons marks the known component types. An unknown type still
// gets a row with the generic marker; it must never fail the projection.
var componentIcons = map[string]string{
	"CPU":         "[CPU]",
	"GPU":         "[GPU]",
	"RAM":         "[RAM]",
	"STORAGE":     "[SSD]",
	"MOTHERBOARD": "[MB ]",
	"PSU":         "[PSU]",
	"CASE":        "[BOX]",
}

// genericIcon is used for component types without a specialized marker.
const genericIcon = "[---]"

// IconFor returns the marker for a component type and whether the type is
// part of the known set.
func IconFor(componentType string) (string, bool) {
	icon, ok := componentIcons[componentType]
	if !ok {
		return genericIcon, false
	}
	return icon, true
}

// =============================================================================
// PROJECTION
// =============================================================================

// Project builds the display model for a configuration. Rows appear in the
// order the service sent them.
func Project(cfg *api.Configuration) Display {
	rows := make([]ComponentRow, 0, len(cfg.Components))
	for _, entry := range cfg.Components {
		icon, _ := IconFor(entry.Type)
		rows = append(rows, ComponentRow{
			Type:  entry.Type,
			Icon:  icon,
			Name:  entry.Choice.Name,
			Brand: entry.Choice.Brand,
			Price: FormatMoney(entry.Choice.Price),
		})
	}

	return Display{
		Rows:          rows,
		Costs:         projectCosts(cfg.Costs),
		Compatibility: projectCompatibility(cfg.Compatibility),
	}
}

func projectCosts(costs api.CostSummary) CostView {
	view := CostView{
		Budget:     FormatMoney(costs.Budget),
		Total:      FormatMoney(costs.Total),
		Compliance: formatPercent(costs.CompliancePercentage),
	}

	remaining := costs.Remaining
	if remaining >= 0 {
		view.RemainingClass = RemainingSurplus
		view.RemainingLabel = "Left over"
	} else {
		view.RemainingClass = RemainingDeficit
		view.RemainingLabel = "Over budget"
		remaining = -remaining
	}
	view.Remaining = FormatMoney(remaining)

	// Boundaries are inclusive on the lower tier: exactly 100 is within
	// budget, exactly 110 is mild.
	switch {
	case costs.CompliancePercentage > 110:
		view.ComplianceTier = ComplianceSevere
	case costs.CompliancePercentage > 100:
		view.ComplianceTier = ComplianceMild
	default:
		view.ComplianceTier = ComplianceWithin
	}

	return view
}

func projectCompatibility(report api.CompatibilityReport) CompatibilityView {
	return CompatibilityView{
		Valid:    report.IsValid,
		Errors:   report.Errors,
		Warnings: report.Warnings,
	}
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatMoney renders a currency value with the sol prefix and exactly two
// decimal places. Values are formatted at display time only; nothing is
// rounded before transmission.
func FormatMoney(v float64) string {
	return "S/ " + strconv.FormatFloat(v, 'f', 2, 64)
}

// formatPercent renders a compliance percentage with one decimal place.
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

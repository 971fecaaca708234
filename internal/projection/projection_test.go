// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package projection

import (
	"testing"

	"github.com/armatupc/armatupc-tui/internal/api"
)

func TestProject_RowsKeepServiceOrder(t *testing.T) {
	cfg := &api.Configuration{
		Components: api.ComponentList{
			{Type: "GPU", Choice: api.ComponentChoice{Name: "RTX 4060", Brand: "NVIDIA", Price: 1200}},
			{Type: "CPU", Choice: api.ComponentChoice{Name: "Ryzen 5 5600", Brand: "AMD", Price: 650}},
			{Type: "RAM", Choice: api.ComponentChoice{Name: "Vengeance 16GB", Brand: "Corsair", Price: 180.5}},
		},
	}

	display := Project(cfg)

	if len(display.Rows) != 3 {
		t.Fatalf("row count: got %d, want 3", len(display.Rows))
	}
	wantOrder := []string{"GPU", "CPU", "RAM"}
	for i, want := range wantOrder {
		if display.Rows[i].Type != want {
			t.Errorf("row %d: got %s, want %s (service order, not re-sorted)", i, display.Rows[i].Type, want)
		}
	}
	if display.Rows[2].Price != "S/ 180.50" {
		t.Errorf("price formatting: got %q, want \"S/ 180.50\"", display.Rows[2].Price)
	}
}

func TestProject_UnknownTypeGetsGenericRow(t *testing.T) {
	cfg := &api.Configuration{
		Components: api.ComponentList{
			{Type: "WIFI_CARD", Choice: api.ComponentChoice{Name: "AX200", Brand: "Intel", Price: 95}},
		},
	}

	display := Project(cfg)

	if len(display.Rows) != 1 {
		t.Fatal("unknown component type must still produce a row")
	}
	row := display.Rows[0]
	if row.Icon != genericIcon {
		t.Errorf("icon: got %q, want generic %q", row.Icon, genericIcon)
	}
	if row.Type != "WIFI_CARD" {
		t.Errorf("type: got %q", row.Type)
	}
}

func TestComplianceTierBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		want       ComplianceTier
	}{
		{"well within", 81.2, ComplianceWithin},
		{"exactly 100 is within", 100.0, ComplianceWithin},
		{"just over 100 is mild", 100.01, ComplianceMild},
		{"exactly 110 is mild not severe", 110.0, ComplianceMild},
		{"just over 110 is severe", 110.01, ComplianceSevere},
		{"far over", 150.0, ComplianceSevere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := projectCosts(api.CostSummary{CompliancePercentage: tt.percentage})
			if view.ComplianceTier != tt.want {
				t.Errorf("tier for %.2f: got %v, want %v", tt.percentage, view.ComplianceTier, tt.want)
			}
		})
	}
}

func TestRemainingSignHandling(t *testing.T) {
	t.Run("deficit shows magnitude with label", func(t *testing.T) {
		view := projectCosts(api.CostSummary{
			Budget: 2000, Total: 2200, Remaining: -200, CompliancePercentage: 110,
		})

		if view.Remaining != "S/ 200.00" {
			t.Errorf("remaining: got %q, want \"S/ 200.00\" (never a negative number)", view.Remaining)
		}
		if view.RemainingClass != RemainingDeficit {
			t.Error("negative remaining must classify as deficit")
		}
		if view.RemainingLabel != "Over budget" {
			t.Errorf("label: got %q", view.RemainingLabel)
		}
	})

	t.Run("surplus", func(t *testing.T) {
		view := projectCosts(api.CostSummary{
			Budget: 2000, Total: 1500, Remaining: 500, CompliancePercentage: 75,
		})

		if view.Remaining != "S/ 500.00" || view.RemainingClass != RemainingSurplus {
			t.Errorf("surplus: got %q class %v", view.Remaining, view.RemainingClass)
		}
	})

	t.Run("zero is surplus", func(t *testing.T) {
		view := projectCosts(api.CostSummary{Remaining: 0})
		if view.RemainingClass != RemainingSurplus {
			t.Error("zero remaining classifies as surplus")
		}
		if view.Remaining != "S/ 0.00" {
			t.Errorf("remaining: got %q", view.Remaining)
		}
	})
}

func TestCompatibility_BannerFromVerdictAlone(t *testing.T) {
	t.Run("valid with warnings still shows warnings", func(t *testing.T) {
		view := projectCompatibility(api.CompatibilityReport{
			IsValid:  true,
			Errors:   []string{},
			Warnings: []string{"PSU wattage is marginal"},
		})

		if !view.Valid {
			t.Error("banner must be positive when is_valid is true")
		}
		if len(view.Warnings) != 1 || view.Warnings[0] != "PSU wattage is marginal" {
			t.Error("warnings must be shown even for a valid configuration")
		}
	})

	t.Run("invalid with empty lists stays invalid", func(t *testing.T) {
		view := projectCompatibility(api.CompatibilityReport{IsValid: false})
		if view.Valid {
			t.Error("banner must follow is_valid, not the error list")
		}
	})

	t.Run("errors keep list order", func(t *testing.T) {
		view := projectCompatibility(api.CompatibilityReport{
			IsValid: false,
			Errors:  []string{"socket mismatch", "PSU too weak"},
		})
		if view.Errors[0] != "socket mismatch" || view.Errors[1] != "PSU too weak" {
			t.Error("errors must render in list order")
		}
	})
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "S/ 0.00"},
		{650, "S/ 650.00"},
		{1234.5, "S/ 1234.50"},
		{99.999, "S/ 100.00"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := formatPercent(81.25); got != "81.2%" && got != "81.3%" {
		// strconv rounds half to even: 81.25 -> 81.2
		t.Errorf("formatPercent(81.25): got %q", got)
	}
	if got := formatPercent(110); got != "110.0%" {
		t.Errorf("formatPercent(110): got %q", got)
	}
}

func TestIconFor(t *testing.T) {
	if icon, known := IconFor("CPU"); !known || icon != "[CPU]" {
		t.Errorf("IconFor(CPU): got %q known=%v", icon, known)
	}
	if _, known := IconFor("WIFI_CARD"); known {
		t.Error("WIFI_CARD should not be a known type")
	}
}

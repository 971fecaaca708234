// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the armatupc TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER AND TAB STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderBrand lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style

	// ==========================================================================
	// TURN BUBBLE STYLES
	// ==========================================================================

	UserBubble   lipgloss.Style
	SystemBubble lipgloss.Style
	TurnMeta     lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// SPINNER AND LOADING STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// ==========================================================================
	// CONFIGURATION PANEL STYLES
	// ==========================================================================

	PanelBox    lipgloss.Style
	PanelTitle  lipgloss.Style
	Placeholder lipgloss.Style

	RowIcon  lipgloss.Style
	RowName  lipgloss.Style
	RowBrand lipgloss.Style
	RowPrice lipgloss.Style

	CostLabel lipgloss.Style
	CostValue lipgloss.Style

	BudgetWithin  lipgloss.Style
	BudgetMild    lipgloss.Style
	BudgetSevere  lipgloss.Style
	BudgetSurplus lipgloss.Style
	BudgetDeficit lipgloss.Style

	CompatValid   lipgloss.Style
	CompatInvalid lipgloss.Style
	CompatError   lipgloss.Style
	CompatWarning lipgloss.Style

	// ==========================================================================
	// CATALOG TABLE STYLES
	// ==========================================================================

	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableRowAlt lipgloss.Style
	FilterLabel lipgloss.Style
	FilterValue lipgloss.Style
	StockIn     lipgloss.Style
	StockLow    lipgloss.Style
	StockOut    lipgloss.Style

	// ==========================================================================
	// STATUS BAR AND TOAST STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	ErrorToast   lipgloss.Style
	WarningToast lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeBox     lipgloss.Style
	WelcomeInfo    lipgloss.Style
	ExamplePrompt  lipgloss.Style
	ExampleOrdinal lipgloss.Style
}

// NewTheme creates a new theme with all styles configured. Mode is "dark",
// "light", or anything else for terminal auto-detection.
func NewTheme(mode string) *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor

	var isDark bool
	switch mode {
	case "dark", "light":
		// An explicit mode overrides detection for every AdaptiveColor.
		isDark = mode == "dark"
		lipgloss.SetHasDarkBackground(isDark)
	default:
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header and tabs
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.Tab = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 2)

	t.TabActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 2)

	// Turn bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.SystemBubble = lipgloss.NewStyle().
		Foreground(SystemBubbleFg).
		Background(SystemBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(SystemBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.TurnMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Spinner
	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Configuration panel
	t.PanelBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Align(lipgloss.Center)

	t.RowIcon = lipgloss.NewStyle().
		Foreground(Cyan)

	t.RowName = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.RowBrand = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.RowPrice = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.CostLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.CostValue = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.BudgetWithin = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.BudgetMild = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.BudgetSevere = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.BudgetSurplus = lipgloss.NewStyle().
		Foreground(Emerald)

	t.BudgetDeficit = lipgloss.NewStyle().
		Foreground(Rose)

	t.CompatValid = lipgloss.NewStyle().
		Foreground(SuccessHighContrast).
		Bold(true)

	t.CompatInvalid = lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)

	t.CompatError = lipgloss.NewStyle().
		Foreground(Rose)

	t.CompatWarning = lipgloss.NewStyle().
		Foreground(Amber)

	// Catalog table
	t.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)

	t.TableRow = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TableRowAlt = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.FilterLabel = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.FilterValue = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.StockIn = lipgloss.NewStyle().
		Foreground(Emerald)

	t.StockLow = lipgloss.NewStyle().
		Foreground(Amber)

	t.StockOut = lipgloss.NewStyle().
		Foreground(Rose)

	// Status bar and toasts
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ErrorToast = lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Rose).
		Padding(0, 1).
		Bold(true)

	t.WarningToast = lipgloss.NewStyle().
		Foreground(WarningHighContrast).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Amber).
		Padding(0, 1)

	// Welcome screen
	t.WelcomeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 3).
		Align(lipgloss.Center)

	t.WelcomeInfo = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.ExamplePrompt = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ExampleOrdinal = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)
}

// SetSize updates the theme layout dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// BudgetTierStyle returns the style for a compliance tier index where
// 0 is within budget, 1 is a mild overrun, and anything else is severe.
func (t *Theme) BudgetTierStyle(tier int) lipgloss.Style {
	switch tier {
	case 0:
		return t.BudgetWithin
	case 1:
		return t.BudgetMild
	default:
		return t.BudgetSevere
	}
}

// StockStyle returns the style for a stock count.
func (t *Theme) StockStyle(stock int) lipgloss.Style {
	switch {
	case stock <= 0:
		return t.StockOut
	case stock <= 3:
		return t.StockLow
	default:
		return t.StockIn
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/armatupc/armatupc-tui/internal/ui/styles"
)

// =============================================================================
// HEADER
// =============================================================================

// Tab identifies a top-level application tab.
type Tab int

const (
	TabChat Tab = iota
	TabExplore
)

// tabLabels in display order.
var tabLabels = []string{"Asistente", "Explorar"}

// Header renders the application title bar with the tab selector.
type Header struct {
	theme  *styles.Theme
	active Tab
	width  int
}

// NewHeader creates a header with the chat tab active.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{theme: theme}
}

// SetActive switches the highlighted tab.
func (h *Header) SetActive(tab Tab) {
	h.active = tab
}

// Active returns the highlighted tab.
func (h *Header) Active() Tab {
	return h.active
}

// SetSize updates the header width.
func (h *Header) SetSize(width int) {
	h.width = width
}

// View renders the header line.
func (h *Header) View() string {
	brand := h.theme.HeaderBrand.Render("armatupc")
	subtitle := h.theme.ShortcutDesc.Render(" · arma tu PC ideal")

	var tabs []string
	for i, label := range tabLabels {
		style := h.theme.Tab
		if Tab(i) == h.active {
			style = h.theme.TabActive
		}
		tabs = append(tabs, style.Render(label))
	}
	tabBar := strings.Join(tabs, " ")

	left := brand + subtitle
	gap := h.width - lipgloss.Width(left) - lipgloss.Width(tabBar) - 2
	if gap < 1 {
		gap = 1
	}

	return h.theme.Header.Width(h.width).Render(
		left + strings.Repeat(" ", gap) + tabBar)
}

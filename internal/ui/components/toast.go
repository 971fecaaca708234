// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/armatupc/armatupc-tui/internal/ui/styles"
)

// =============================================================================
// TOAST
// =============================================================================

// ToastLevel is the severity of a toast notification.
type ToastLevel int

const (
	ToastError ToastLevel = iota
	ToastWarning
)

// toastDuration is how long a toast stays visible without interaction.
const toastDuration = 6 * time.Second

// ToastExpiredMsg signals that a toast timer elapsed. Carries the toast
// generation so an old timer cannot dismiss a newer toast.
type ToastExpiredMsg struct {
	Generation int
}

// Toast shows a transient error or warning banner.
type Toast struct {
	theme      *styles.Theme
	level      ToastLevel
	message    string
	visible    bool
	generation int
	width      int
}

// NewToast creates a hidden toast.
func NewToast(theme *styles.Theme) *Toast {
	return &Toast{theme: theme}
}

// Show displays a message and returns the command that schedules its
// expiry.
func (t *Toast) Show(level ToastLevel, message string) tea.Cmd {
	t.level = level
	t.message = message
	t.visible = true
	t.generation++

	gen := t.generation
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Generation: gen}
	})
}

// Expire hides the toast if the expiry belongs to the current generation.
func (t *Toast) Expire(msg ToastExpiredMsg) {
	if msg.Generation == t.generation {
		t.visible = false
	}
}

// Dismiss hides the toast immediately.
func (t *Toast) Dismiss() {
	t.visible = false
}

// Visible reports whether the toast is showing.
func (t *Toast) Visible() bool {
	return t.visible
}

// SetSize updates the toast width.
func (t *Toast) SetSize(width int) {
	t.width = width
}

// View renders the toast, or "" when hidden.
func (t *Toast) View() string {
	if !t.visible {
		return ""
	}

	style := t.theme.ErrorToast
	indicator := styles.StatusIndicators.Error
	if t.level == ToastWarning {
		style = t.theme.WarningToast
		indicator = styles.StatusIndicators.Warning
	}

	return style.MaxWidth(t.width).Render(indicator + " " + t.message)
}

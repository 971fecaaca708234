// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/armatupc/armatupc-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// Shortcut is one key hint in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom key-hint line.
type StatusBar struct {
	theme     *styles.Theme
	shortcuts []Shortcut
	note      string
	width     int
}

// NewStatusBar creates a status bar with the given shortcuts.
func NewStatusBar(theme *styles.Theme, shortcuts []Shortcut) *StatusBar {
	return &StatusBar{theme: theme, shortcuts: shortcuts}
}

// SetShortcuts replaces the displayed shortcuts (tabs show different keys).
func (sb *StatusBar) SetShortcuts(shortcuts []Shortcut) {
	sb.shortcuts = shortcuts
}

// SetNote sets a transient right-aligned note, "" to clear.
func (sb *StatusBar) SetNote(note string) {
	sb.note = note
}

// SetSize updates the bar width.
func (sb *StatusBar) SetSize(width int) {
	sb.width = width
}

// View renders the status bar line.
func (sb *StatusBar) View() string {
	var parts []string
	for _, s := range sb.shortcuts {
		parts = append(parts,
			sb.theme.ShortcutKey.Render(s.Key)+" "+sb.theme.ShortcutDesc.Render(s.Desc))
	}

	line := strings.Join(parts, sb.theme.ShortcutDesc.Render("  |  "))
	if sb.note != "" {
		line += sb.theme.ShortcutDesc.Render("   " + sb.note)
	}

	return sb.theme.StatusBar.Width(sb.width).Render(line)
}

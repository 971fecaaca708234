// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/armatupc/armatupc-tui/internal/model"
	"github.com/armatupc/armatupc-tui/internal/ui/styles"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat tab: conversation viewport, an activity or error
// line, and the input field.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	snap := m.engine.Snapshot()
	switch {
	case snap.Pending:
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.ThinkingText.Render(" Armando tu configuración..."))
	case snap.LastError != "":
		b.WriteString(styles.RenderError(snap.LastError))
	}
	b.WriteString("\n")

	b.WriteString(m.theme.InputContainer.Width(m.width).Render(m.input.View()))

	return b.String()
}

// refreshViewport rebuilds the conversation transcript.
func (m *Model) refreshViewport() {
	snap := m.engine.Snapshot()

	if len(snap.Turns) == 0 {
		m.viewport.SetContent(m.welcome.View())
		return
	}

	bubbleWidth := m.width - 8
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var b strings.Builder
	for _, turn := range snap.Turns {
		b.WriteString(m.renderTurn(turn, bubbleWidth))
		b.WriteString("\n\n")
	}

	m.viewport.SetContent(b.String())
}

// renderTurn renders one conversation turn as a bubble with its meta line.
func (m *Model) renderTurn(turn *model.Turn, maxWidth int) string {
	meta := m.theme.TurnMeta.Render(
		turn.Role.DisplayName() + " · " + turn.Timestamp.Format("15:04"))

	if turn.Role == model.RoleUser {
		bubble := m.theme.UserBubble.MaxWidth(maxWidth).Render(turn.Text)
		block := meta + "\n" + bubble
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Right).Render(block)
	}

	bubble := m.theme.SystemBubble.MaxWidth(maxWidth).Render(turn.Text)
	return meta + "\n" + bubble
}

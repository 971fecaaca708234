// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the recommendation chat tab for the TUI.
package chat

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/armatupc/armatupc-tui/internal/api"
	"github.com/armatupc/armatupc-tui/internal/engine"
	"github.com/armatupc/armatupc-tui/internal/ui/components"
	"github.com/armatupc/armatupc-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat tab. The engine owns the
// conversation state; this model owns presentation and input.
type Model struct {
	theme  *styles.Theme
	engine *engine.Engine
	client *api.Client

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	welcome  *components.Welcome

	width  int
	height int
}

// New creates the chat tab model.
func New(theme *styles.Theme, eng *engine.Engine, client *api.Client, showExamples bool) *Model {
	input := textinput.New()
	input.Placeholder = "Describe la PC que necesitas..."
	input.Prompt = "> "
	input.PromptStyle = theme.InputPrompt
	input.PlaceholderStyle = theme.InputPlaceholder
	input.TextStyle = theme.InputText
	input.CharLimit = 500
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	vp := viewport.New(80, 20)

	return &Model{
		theme:    theme,
		engine:   eng,
		client:   client,
		viewport: vp,
		input:    input,
		spinner:  sp,
		welcome:  components.NewWelcome(theme, showExamples),
	}
}

// Init returns the initial command for the chat tab.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the chat layout dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// Input row and its border take the bottom of the tab.
	vpHeight := height - 3
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.input.Width = width - 4
	m.welcome.SetSize(width)

	m.refreshViewport()
}

// Focus gives keyboard focus to the input field.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus from the input field.
func (m *Model) Blur() {
	m.input.Blur()
}

// =============================================================================
// SUBMISSION
// =============================================================================

// submit runs the current input through the engine. A bare example number
// in an empty conversation fills the input instead of submitting.
func (m *Model) submit() tea.Cmd {
	text := m.input.Value()

	if m.engine.Conversation().IsEmpty() {
		if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil &&
			n >= 1 && n <= len(components.ExamplePrompts) {
			m.input.SetValue(components.ExamplePrompts[n-1])
			m.input.CursorEnd()
			return nil
		}
	}

	if !m.engine.Begin(text) {
		return nil
	}

	// The input keeps its text until the submission succeeds, so a failed
	// one can be resent as-is.
	m.refreshViewport()
	m.viewport.GotoBottom()

	return tea.Batch(m.recommendCmd(text), m.spinner.Tick)
}

// recommendCmd issues the transport call for an accepted submission.
func (m *Model) recommendCmd(text string) tea.Cmd {
	modelType := m.engine.ModelType()
	return func() tea.Msg {
		cfg, err := m.client.Recommend(context.Background(), text, modelType)
		if err != nil {
			return RecommendResultMsg{Err: err}
		}
		return RecommendResultMsg{Config: cfg}
	}
}

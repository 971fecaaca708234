// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package explore provides the catalog explorer tab for the TUI.
package explore

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/armatupc/armatupc-tui/internal/api"
	"github.com/armatupc/armatupc-tui/internal/catalog"
	"github.com/armatupc/armatupc-tui/internal/ui/components"
	"github.com/armatupc/armatupc-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// CatalogResultMsg resolves a catalog listing fetch. Seq and Filter echo
// the values handed out by the browser when the fetch began.
type CatalogResultMsg struct {
	Seq        uint64
	Filter     api.ComponentFilter
	Components []api.CatalogComponent
	Err        error
}

// TypesResultMsg resolves the component type list fetch.
type TypesResultMsg struct {
	Types []string
	Err   error
}

// =============================================================================
// EXPLORE MODEL
// =============================================================================

// Model is the Bubble Tea model for the catalog explorer tab. The browser
// owns filter and listing state; this model owns presentation and input.
type Model struct {
	theme   *styles.Theme
	browser *catalog.Browser
	client  *api.Client

	table      *components.CatalogTable
	priceInput textinput.Model
	spinner    spinner.Model

	// typeIndex selects within browser.Types(); 0 is "all types".
	typeIndex int

	width  int
	height int
}

// New creates the explorer tab model.
func New(theme *styles.Theme, browser *catalog.Browser, client *api.Client) *Model {
	priceInput := textinput.New()
	priceInput.Placeholder = "precio máximo"
	priceInput.Prompt = "S/ "
	priceInput.PromptStyle = theme.InputPrompt
	priceInput.PlaceholderStyle = theme.InputPlaceholder
	priceInput.TextStyle = theme.InputText
	priceInput.CharLimit = 10
	priceInput.Width = 14

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return &Model{
		theme:      theme,
		browser:    browser,
		client:     client,
		table:      components.NewCatalogTable(theme),
		priceInput: priceInput,
		spinner:    sp,
	}
}

// SetSize updates the explorer layout dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetSize(width, height-4)
}

// Focus gives keyboard focus to the price input.
func (m *Model) Focus() tea.Cmd {
	return m.priceInput.Focus()
}

// Blur removes keyboard focus from the price input.
func (m *Model) Blur() {
	m.priceInput.Blur()
}

// =============================================================================
// COMMANDS
// =============================================================================

// LoadTypesCmd fetches the available component types.
func (m *Model) LoadTypesCmd() tea.Cmd {
	return func() tea.Msg {
		types, err := m.client.ListComponentTypes(context.Background())
		return TypesResultMsg{Types: types, Err: err}
	}
}

// InitialLoadCmd applies the empty filter to populate the first listing.
func (m *Model) InitialLoadCmd() tea.Cmd {
	return m.apply()
}

// apply freezes the draft filter and issues the fetch.
func (m *Model) apply() tea.Cmd {
	m.browser.SetMaxPrice(m.priceInput.Value())
	m.browser.SetType(m.selectedType())

	seq, filter := m.browser.BeginApply()

	fetch := func() tea.Msg {
		comps, err := m.client.ListComponents(context.Background(), filter)
		return CatalogResultMsg{Seq: seq, Filter: filter, Components: comps, Err: err}
	}
	return tea.Batch(fetch, m.spinner.Tick)
}

// selectedType maps the type index to a filter value, "" for all.
func (m *Model) selectedType() string {
	types := m.browser.Types()
	if m.typeIndex <= 0 || m.typeIndex > len(types) {
		return ""
	}
	return types[m.typeIndex-1]
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages routed to the explorer tab.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, m.apply()

		case "left", "shift+tab":
			m.cycleType(-1)
			return m, nil

		case "right", "tab":
			m.cycleType(1)
			return m, nil
		}

		var cmd tea.Cmd
		m.priceInput, cmd = m.priceInput.Update(msg)
		return m, cmd

	case CatalogResultMsg:
		m.browser.CompleteApply(msg.Seq, msg.Filter, msg.Components, msg.Err)
		m.table.SetComponents(m.browser.Components(), m.browser.AppliedFilter())
		return m, nil

	case TypesResultMsg:
		m.browser.CompleteTypes(msg.Types, msg.Err)
		return m, nil

	case spinner.TickMsg:
		if !m.browser.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// cycleType moves the type selector, wrapping around. Index 0 is "all".
func (m *Model) cycleType(delta int) {
	count := len(m.browser.Types()) + 1
	m.typeIndex = (m.typeIndex + delta + count) % count
}

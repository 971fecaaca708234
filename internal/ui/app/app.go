// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app provides the root Bubble Tea model: the tab bar, the chat
// and explorer tabs, the configuration panel, and global notifications.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/armatupc/armatupc-tui/internal/api"
	"github.com/armatupc/armatupc-tui/internal/catalog"
	"github.com/armatupc/armatupc-tui/internal/config"
	"github.com/armatupc/armatupc-tui/internal/engine"
	"github.com/armatupc/armatupc-tui/internal/projection"
	"github.com/armatupc/armatupc-tui/internal/ui/chat"
	"github.com/armatupc/armatupc-tui/internal/ui/components"
	"github.com/armatupc/armatupc-tui/internal/ui/explore"
	"github.com/armatupc/armatupc-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// HealthResultMsg resolves the startup service health check.
type HealthResultMsg struct {
	Err error
}

// ConfigReloadedMsg signals that the configuration file changed on disk
// and was reloaded successfully.
type ConfigReloadedMsg struct {
	Cfg *config.Config
}

// =============================================================================
// APP MODEL
// =============================================================================

// Model is the root Bubble Tea model.
type Model struct {
	theme  *styles.Theme
	client *api.Client
	logger *zap.Logger

	header    *components.Header
	chat      *chat.Model
	explore   *explore.Model
	panel     *components.ConfigPanel
	toast     *components.Toast
	statusBar *components.StatusBar
	help      *components.Help

	showHelp bool
	width    int
	height   int
}

// New assembles the application model. The engine's configuration callback
// is wired to the panel here, so every successful recommendation updates
// the panel exactly once.
func New(cfg *config.Config, client *api.Client, logger *zap.Logger) *Model {
	theme := styles.NewTheme(cfg.UI.Theme)

	eng := engine.New(logger)
	eng.SetModelType(cfg.Recommend.ModelType)

	browser := catalog.New(logger, cfg.Catalog.Limit)

	m := &Model{
		theme:   theme,
		client:  client,
		logger:  logger,
		header:  components.NewHeader(theme),
		chat:    chat.New(theme, eng, client, cfg.UI.ShowExamples),
		explore: explore.New(theme, browser, client),
		panel:   components.NewConfigPanel(theme),
		toast:   components.NewToast(theme),
		help:    components.NewHelp(theme),
	}

	eng.SetOnConfiguration(func(c *api.Configuration) {
		display := projection.Project(c)
		m.panel.SetDisplay(&display)
	})

	m.statusBar = components.NewStatusBar(theme, m.shortcutsFor(components.TabChat))

	return m
}

// Init starts the chat tab, the health check, and the catalog warmup.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.chat.Init(),
		m.healthCheckCmd(),
		m.explore.LoadTypesCmd(),
		m.explore.InitialLoadCmd(),
	)
}

// healthCheckCmd probes the service once at startup.
func (m *Model) healthCheckCmd() tea.Cmd {
	return func() tea.Msg {
		return HealthResultMsg{Err: m.client.CheckHealth(context.Background())}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update routes messages to the global handlers and the active tab.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+e":
			m.showHelp = false
			m.switchTab()
			return m, m.focusActive()

		case "ctrl+h":
			m.showHelp = !m.showHelp
			return m, nil

		case "esc":
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}
			if m.toast.Visible() {
				m.toast.Dismiss()
				return m, nil
			}
		}
		if m.showHelp {
			return m, nil
		}
		return m, m.routeToActive(msg)

	case HealthResultMsg:
		m.statusBar.SetNote(styles.RenderStatus(msg.Err == nil, healthNote(msg.Err)))
		if msg.Err != nil {
			m.logger.Warn("service health check failed", zap.Error(msg.Err))
			return m, m.toast.Show(components.ToastWarning,
				"No se pudo conectar al servicio de recomendaciones")
		}
		return m, nil

	case ConfigReloadedMsg:
		m.client.SetBaseURL(msg.Cfg.Server.URL)
		m.logger.Info("applied reloaded configuration",
			zap.String("server_url", msg.Cfg.Server.URL))
		return m, nil

	case components.ToastExpiredMsg:
		m.toast.Expire(msg)
		return m, nil
	}

	// Async results and ticks go to both tabs; each ignores what is not
	// addressed to it.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	cmds = append(cmds, cmd)
	m.explore, cmd = m.explore.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// routeToActive sends a key press to the tab that has focus.
func (m *Model) routeToActive(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	if m.header.Active() == components.TabChat {
		m.chat, cmd = m.chat.Update(msg)
	} else {
		m.explore, cmd = m.explore.Update(msg)
	}
	return cmd
}

// switchTab toggles between the chat and explorer tabs.
func (m *Model) switchTab() {
	if m.header.Active() == components.TabChat {
		m.header.SetActive(components.TabExplore)
		m.chat.Blur()
	} else {
		m.header.SetActive(components.TabChat)
		m.explore.Blur()
	}
	m.statusBar.SetShortcuts(m.shortcutsFor(m.header.Active()))
}

// focusActive focuses the input of the active tab.
func (m *Model) focusActive() tea.Cmd {
	if m.header.Active() == components.TabChat {
		return m.chat.Focus()
	}
	return m.explore.Focus()
}

// healthNote maps the health check result to the status bar note.
func healthNote(err error) string {
	if err != nil {
		return "Servicio no disponible"
	}
	return "Servicio conectado"
}

// shortcutsFor returns the status bar hints for a tab.
func (m *Model) shortcutsFor(tab components.Tab) []components.Shortcut {
	common := []components.Shortcut{
		{Key: "ctrl+e", Desc: "cambiar pestaña"},
		{Key: "ctrl+h", Desc: "ayuda"},
		{Key: "ctrl+c", Desc: "salir"},
	}
	if tab == components.TabChat {
		return append([]components.Shortcut{
			{Key: "enter", Desc: "enviar"},
		}, common...)
	}
	return append([]components.Shortcut{
		{Key: "enter", Desc: "filtrar"},
		{Key: "←/→", Desc: "tipo"},
	}, common...)
}

// =============================================================================
// LAYOUT
// =============================================================================

// panelWidth is the configuration panel share of the chat tab.
func (m *Model) panelWidth() int {
	w := m.width * 2 / 5
	if w < 36 {
		w = 36
	}
	if w > m.width-30 {
		w = m.width / 2
	}
	return w
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	contentHeight := height - 3 // header + status bar

	m.header.SetSize(width)
	m.statusBar.SetSize(width)
	m.toast.SetSize(width)
	m.help.SetSize(width)

	panelW := m.panelWidth()
	m.chat.SetSize(width-panelW-1, contentHeight)
	m.panel.SetSize(panelW, contentHeight)
	m.explore.SetSize(width-2, contentHeight)
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the full application frame.
func (m *Model) View() string {
	var content string
	if m.showHelp {
		content = m.theme.Container.Render(m.help.View())
	} else if m.header.Active() == components.TabChat {
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			m.chat.View(), " ", m.panel.View())
	} else {
		content = m.theme.Container.Render(m.explore.View())
	}

	sections := []string{m.header.View(), content}
	if m.toast.Visible() {
		sections = append(sections, m.toast.View())
	}
	sections = append(sections, m.statusBar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

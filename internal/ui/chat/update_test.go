// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/armatupc/armatupc-tui/internal/api"
	"github.com/armatupc/armatupc-tui/internal/engine"
	"github.com/armatupc/armatupc-tui/internal/ui/styles"
)

func newTestModel() *Model {
	client := api.NewClientWithConfig(&api.ClientConfig{BaseURL: "http://localhost:0"})
	m := New(styles.NewTheme("auto"), engine.New(nil), client, true)
	m.SetSize(100, 30)
	return m
}

func sampleResult() *api.Configuration {
	return &api.Configuration{
		Components: api.ComponentList{
			{Type: "CPU", Choice: api.ComponentChoice{Name: "Ryzen 5 5600", Brand: "AMD", Price: 650}},
		},
		Costs:         api.CostSummary{Budget: 2500, Total: 650, Remaining: 1850, CompliancePercentage: 26},
		Compatibility: api.CompatibilityReport{IsValid: true},
	}
}

func TestSubmitFailureRetainsInput(t *testing.T) {
	m := newTestModel()

	const prompt = "PC para gaming, 2500 soles"
	m.input.SetValue(prompt)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.input.Value(); got != prompt {
		t.Errorf("input changed while pending: got %q, want %q", got, prompt)
	}

	m, _ = m.Update(RecommendResultMsg{Err: errors.New("service is unreachable")})

	if got := m.input.Value(); got != prompt {
		t.Errorf("failed submission must keep the text for resending: got %q, want %q", got, prompt)
	}
	if m.engine.Pending() {
		t.Error("engine should not be pending after a failed submission")
	}
}

func TestSubmitSuccessClearsInput(t *testing.T) {
	m := newTestModel()

	m.input.SetValue("PC para oficina")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(RecommendResultMsg{Config: sampleResult()})

	if got := m.input.Value(); got != "" {
		t.Errorf("successful submission must clear the input, got %q", got)
	}
}

func TestExampleNumberFillsInput(t *testing.T) {
	m := newTestModel()

	m.input.SetValue("2")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.input.Value(); got == "2" || got == "" {
		t.Errorf("a bare example number should prefill the prompt, got %q", got)
	}
	if !m.engine.Conversation().IsEmpty() {
		t.Error("prefilling an example must not submit anything")
	}
}

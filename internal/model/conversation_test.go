// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"

	"github.com/armatupc/armatupc-tui/internal/api"
)

func TestNewConversation(t *testing.T) {
	conv := NewConversation()

	if conv.ID == "" {
		t.Error("conversation ID should not be empty")
	}
	if !conv.IsEmpty() {
		t.Error("new conversation should be empty")
	}
	if conv.TurnCount() != 0 {
		t.Errorf("turn count: got %d, want 0", conv.TurnCount())
	}
}

func TestConversation_AddTurns(t *testing.T) {
	conv := NewConversation()

	user := conv.AddUserTurn("PC para gaming, 2500 soles")
	if user.Role != RoleUser {
		t.Errorf("role: got %v, want RoleUser", user.Role)
	}
	if user.HasConfig() {
		t.Error("user turn should not carry a configuration")
	}

	cfg := &api.Configuration{
		Costs: api.CostSummary{Budget: 2500, Total: 2030, Remaining: 470, CompliancePercentage: 81.2},
	}
	system := conv.AddSystemTurn("Configuration generated!", cfg)
	if system.Role != RoleSystem {
		t.Errorf("role: got %v, want RoleSystem", system.Role)
	}
	if !system.HasConfig() {
		t.Error("system turn should carry the configuration")
	}

	if conv.TurnCount() != 2 {
		t.Fatalf("turn count: got %d, want 2", conv.TurnCount())
	}
	history := conv.History()
	if history[0].Role != RoleUser || history[1].Role != RoleSystem {
		t.Error("turns must keep insertion order: user then system")
	}
}

func TestConversation_LastConfiguration(t *testing.T) {
	conv := NewConversation()

	if conv.LastConfiguration() != nil {
		t.Error("empty conversation has no configuration")
	}

	first := &api.Configuration{Costs: api.CostSummary{Budget: 1000}}
	second := &api.Configuration{Costs: api.CostSummary{Budget: 2000}}

	conv.AddUserTurn("oficina")
	conv.AddSystemTurn("generated", first)
	conv.AddUserTurn("gaming")
	conv.AddSystemTurn("generated", second)

	got := conv.LastConfiguration()
	if got != second {
		t.Error("LastConfiguration should return the most recent attached configuration")
	}
}

func TestConversation_ClearHistory(t *testing.T) {
	conv := NewConversation()
	conv.AddUserTurn("hola")
	conv.ClearHistory()

	if !conv.IsEmpty() {
		t.Error("conversation should be empty after ClearHistory")
	}
}

func TestConversation_PruneOldTurns(t *testing.T) {
	conv := NewConversation()
	for i := 0; i < MaxTurns+10; i++ {
		conv.AddUserTurn("turn")
	}

	if conv.TurnCount() != MaxTurns {
		t.Errorf("turn count after prune: got %d, want %d", conv.TurnCount(), MaxTurns)
	}
}

func TestTurn_Preview(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"short text unchanged", "hola", 10, "hola"},
		{"long text truncated", "quiero una computadora para gaming", 10, "quiero ..."},
		{"unicode safe", "ñandú ñandú ñandú", 8, "ñandú..."},
		{"tiny max", "abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			turn := NewUserTurn(tt.text)
			if got := turn.Preview(tt.maxLen); got != tt.want {
				t.Errorf("Preview(%d): got %q, want %q", tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestRole_DisplayName(t *testing.T) {
	if RoleUser.DisplayName() != "You" {
		t.Errorf("user display name: got %q", RoleUser.DisplayName())
	}
	if RoleSystem.DisplayName() != "armatupc" {
		t.Errorf("system display name: got %q", RoleSystem.DisplayName())
	}
}

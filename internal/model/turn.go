// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and turns.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/armatupc/armatupc-tui/internal/api"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a chat turn.
type Role string

const (
	RoleUser   Role = "user"
	RoleSystem Role = "system"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleSystem:
		return "armatupc"
	default:
		return string(r)
	}
}

// =============================================================================
// TURN TYPE
// =============================================================================

// Turn is a single entry in the chat log. Turns are never mutated after
// creation; the log is append-only and insertion order is display order.
type Turn struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`

	// Config is the configuration attached to a successful system turn.
	// Nil for user turns and plain system notices.
	Config *api.Configuration `json:"-"`
}

// NewUserTurn creates a user turn.
func NewUserTurn(text string) *Turn {
	return &Turn{
		ID:        "turn_" + uuid.NewString(),
		Role:      RoleUser,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewSystemTurn creates a system turn carrying a generated configuration.
func NewSystemTurn(text string, config *api.Configuration) *Turn {
	return &Turn{
		ID:        "turn_" + uuid.NewString(),
		Role:      RoleSystem,
		Text:      text,
		Timestamp: time.Now(),
		Config:    config,
	}
}

// HasConfig reports whether the turn carries a configuration.
func (t *Turn) HasConfig() bool {
	return t.Config != nil
}

// Preview returns a truncated preview of the turn text.
// Uses rune-based truncation to handle Unicode correctly.
func (t *Turn) Preview(maxLen int) string {
	runes := []rune(t.Text)
	if len(runes) <= maxLen {
		return t.Text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

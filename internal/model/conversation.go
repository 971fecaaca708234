// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/armatupc/armatupc-tui/internal/api"
)

// MaxTurns is the maximum number of turns to keep in the chat log.
// When exceeded, old turns are pruned to prevent unbounded memory growth.
// The log is session-scoped and never persisted.
const MaxTurns = 1000

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the chat log for one session.
type Conversation struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Turns []*Turn `json:"turns"`
}

// NewConversation creates a new conversation with a generated ID.
func NewConversation() *Conversation {
	return &Conversation{
		ID:        "conv_" + uuid.NewString(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Turns:     make([]*Turn, 0),
	}
}

// =============================================================================
// TURN MANAGEMENT
// =============================================================================

// AddTurn appends a turn to the log.
func (c *Conversation) AddTurn(turn *Turn) {
	c.Turns = append(c.Turns, turn)
	c.UpdatedAt = time.Now()
	c.pruneOldTurns()
}

// AddUserTurn creates and appends a user turn.
func (c *Conversation) AddUserTurn(text string) *Turn {
	turn := NewUserTurn(text)
	c.AddTurn(turn)
	return turn
}

// AddSystemTurn creates and appends a system turn with an attached
// configuration.
func (c *Conversation) AddSystemTurn(text string, config *api.Configuration) *Turn {
	turn := NewSystemTurn(text, config)
	c.AddTurn(turn)
	return turn
}

// LastTurn returns the most recent turn, or nil if the log is empty.
func (c *Conversation) LastTurn() *Turn {
	if len(c.Turns) == 0 {
		return nil
	}
	return c.Turns[len(c.Turns)-1]
}

// LastConfiguration returns the configuration attached to the most recent
// system turn that carries one, or nil.
func (c *Conversation) LastConfiguration() *api.Configuration {
	for i := len(c.Turns) - 1; i >= 0; i-- {
		if c.Turns[i].HasConfig() {
			return c.Turns[i].Config
		}
	}
	return nil
}

// History returns the turn log for display.
func (c *Conversation) History() []*Turn {
	return c.Turns
}

// TurnCount returns the number of turns.
func (c *Conversation) TurnCount() int {
	return len(c.Turns)
}

// IsEmpty returns true if there are no turns.
func (c *Conversation) IsEmpty() bool {
	return len(c.Turns) == 0
}

// ClearHistory removes all turns from the conversation.
func (c *Conversation) ClearHistory() {
	c.Turns = make([]*Turn, 0)
	c.UpdatedAt = time.Now()
}

// pruneOldTurns drops the oldest turns once the log exceeds MaxTurns.
func (c *Conversation) pruneOldTurns() {
	if len(c.Turns) <= MaxTurns {
		return
	}
	c.Turns = c.Turns[len(c.Turns)-MaxTurns:]
}

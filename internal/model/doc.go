// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and turns.
//
// This package defines the core domain types used throughout the application
// for representing the chat log of a recommendation session.
//
// # Key Types
//
//   - Conversation: Append-only turn log for one session
//   - Turn: Single chat entry with role, text, and optional attached
//     configuration
//   - Role: Turn role enumeration (user, system)
//
// # Usage
//
// Create a new conversation:
//
//	conv := model.NewConversation()
//	conv.AddUserTurn("PC para gaming, 2500 soles")
//	conv.AddSystemTurn("Configuration generated!", cfg)
//
// Turns are never mutated after creation and the log is held in memory
// only; a full restart resets it.
package model

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the recommendation chat tab for the TUI.
//
// This file defines the Bubble Tea message types used by the chat tab.
// All message types follow Bubble Tea conventions and are immutable.
package chat

import "github.com/armatupc/armatupc-tui/internal/api"

// =============================================================================
// RECOMMENDATION MESSAGES
// =============================================================================

// RecommendResultMsg resolves an in-flight recommendation request.
// Exactly one of Config or Err is set.
type RecommendResultMsg struct {
	Config *api.Configuration
	Err    error
}

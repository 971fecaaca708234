// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine owns the turn-by-turn state of the recommendation chat.
//
// The engine is a single-flight state machine: one free-text submission may
// be outstanding at a time. A submission is split across the asynchronous
// transport boundary into Begin (synchronous accept/reject plus the user
// turn) and Complete/Fail (resolution of the transport call), so the UI
// layer can run the HTTP request as a command while the engine stays a
// plain, independently testable unit.
package engine

import (
	"strings"

	"go.uber.org/zap"

	"github.com/armatupc/armatupc-tui/internal/api"
	"github.com/armatupc/armatupc-tui/internal/model"
)

// GeneratedText is the system turn text shown for a successful response.
const GeneratedText = "Configuration generated! See the details on the right →"

// FailedText is the single user-facing message for any failed submission.
// Transport and service failures are collapsed into it; the distinction
// survives only in the diagnostic log.
const FailedText = "Could not generate the configuration. Try again."

// =============================================================================
// ENGINE
// =============================================================================

// Engine drives the conversational request/response cycle.
type Engine struct {
	conv      *model.Conversation
	pending   bool
	lastError string
	modelType string

	onConfig func(*api.Configuration)
	logger   *zap.Logger
}

// New creates an engine with an empty conversation.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		conv:   model.NewConversation(),
		logger: logger,
	}
}

// SetOnConfiguration registers the callback fired exactly once per
// successful submission with the configuration as received.
func (e *Engine) SetOnConfiguration(fn func(*api.Configuration)) {
	e.onConfig = fn
}

// SetModelType sets an explicit service model choice. Empty means "let the
// service pick", which keeps the model_type key off the wire.
func (e *Engine) SetModelType(modelType string) {
	e.modelType = modelType
}

// ModelType returns the explicit model choice, or "" for the service default.
func (e *Engine) ModelType() string {
	return e.modelType
}

// Conversation returns the underlying turn log.
func (e *Engine) Conversation() *model.Conversation {
	return e.conv
}

// =============================================================================
// SUBMISSION CYCLE
// =============================================================================

// Begin accepts or rejects a submission. Empty/whitespace-only text and
// submissions while another is outstanding are silent no-ops: no turn is
// appended and no transport call should be made. On acceptance the user
// turn is appended synchronously, the engine enters the pending state, and
// the previous error is cleared; the caller must then issue exactly one
// Recommend call and resolve it with Complete or Fail.
func (e *Engine) Begin(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if e.pending {
		return false
	}

	e.conv.AddUserTurn(text)
	e.pending = true
	e.lastError = ""
	return true
}

// Complete resolves the outstanding submission with a generated
// configuration: appends the system turn carrying it and emits it to the
// registered callback. Ignored when nothing is pending.
func (e *Engine) Complete(config *api.Configuration) {
	if !e.pending || config == nil {
		return
	}

	e.conv.AddSystemTurn(GeneratedText, config)
	e.pending = false

	if e.onConfig != nil {
		e.onConfig(config)
	}
}

// Fail resolves the outstanding submission with an error. No system turn is
// appended; only the error banner reflects the failure. The transport vs
// service distinction is kept for the diagnostic log alone.
func (e *Engine) Fail(err error) {
	if !e.pending {
		return
	}

	e.pending = false
	e.lastError = FailedText

	if err == nil {
		return
	}
	if status, ok := api.IsServiceError(err); ok {
		e.logger.Warn("recommendation rejected by service",
			zap.Int("status", status),
			zap.Error(err))
	} else {
		e.logger.Warn("recommendation transport failure", zap.Error(err))
	}
}

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot is a read-only view of the engine state for the presentation
// layer.
type Snapshot struct {
	Turns     []*model.Turn
	Pending   bool
	LastError string
}

// Snapshot returns the current state. The turn slice is shared but turns
// are immutable once appended.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Turns:     e.conv.History(),
		Pending:   e.pending,
		LastError: e.lastError,
	}
}

// Pending reports whether a submission is outstanding.
func (e *Engine) Pending() bool {
	return e.pending
}

// LastError returns the user-facing error from the most recent failed
// submission, or "" when the last submission succeeded or none was made.
func (e *Engine) LastError() string {
	return e.lastError
}

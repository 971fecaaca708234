// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog owns the state of the component explorer: a draft filter
// the user edits, the filter last applied, and the resulting component
// list. Fetches happen only on explicit apply, never per keystroke.
//
// Overlapping applies are allowed and resolved most-recent-wins: every
// BeginApply hands out a sequence number and CompleteApply discards any
// response that is not the latest issued, so a slow stale response can
// never overwrite newer state. Errors are fail-soft: the previous list and
// filter stay on screen.
package catalog

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/armatupc/armatupc-tui/internal/api"
)

// DefaultLimit bounds every catalog listing request.
const DefaultLimit = 50

// =============================================================================
// STATE
// =============================================================================

// State is the browser fetch state.
type State int

const (
	StateIdle State = iota
	StateLoading
)

// Filter is the draft filter as edited by the user. MaxPrice is kept as the
// raw input string; it is parsed only when the filter is applied.
type Filter struct {
	Type     string
	MaxPrice string
}

// Browser is the catalog state machine. It is independent of the chat
// state and carries no single-flight guard; see the package comment for
// the overlap policy.
type Browser struct {
	state State

	draft   Filter
	applied api.ComponentFilter

	components  []api.CatalogComponent
	types       []string
	typesReady  bool
	typesFailed bool

	// seq is the sequence of the most recently issued apply; only the
	// completion carrying it may replace the list.
	seq uint64

	// limit bounds every listing request.
	limit int

	logger *zap.Logger
}

// New creates an idle browser with an empty filter. A non-positive limit
// falls back to DefaultLimit.
func New(logger *zap.Logger, limit int) *Browser {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Browser{logger: logger, limit: limit}
}

// =============================================================================
// DRAFT FILTER
// =============================================================================

// SetType updates the draft component type. It does not affect the
// displayed list until ApplyFilter.
func (b *Browser) SetType(componentType string) {
	b.draft.Type = componentType
}

// SetMaxPrice updates the raw draft max-price input.
func (b *Browser) SetMaxPrice(input string) {
	b.draft.MaxPrice = input
}

// Draft returns the current draft filter.
func (b *Browser) Draft() Filter {
	return b.draft
}

// =============================================================================
// APPLY CYCLE
// =============================================================================

// BeginApply freezes the draft into a transmittable filter and transitions
// to loading. The returned sequence number must be passed back to
// CompleteApply. An unparsable or empty max price means "no price filter",
// not zero.
func (b *Browser) BeginApply() (uint64, api.ComponentFilter) {
	filter := api.ComponentFilter{
		Type:  b.draft.Type,
		Limit: b.limit,
	}

	if raw := strings.TrimSpace(b.draft.MaxPrice); raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil && price > 0 {
			filter.MaxPrice = price
		}
	}

	b.seq++
	b.state = StateLoading
	return b.seq, filter
}

// CompleteApply resolves an apply. Stale completions (a newer apply was
// issued since) are dropped entirely. On success the held list is replaced
// wholesale and the frozen filter becomes the applied one; on error the
// previous list and applied filter are retained.
func (b *Browser) CompleteApply(seq uint64, filter api.ComponentFilter, components []api.CatalogComponent, err error) {
	if seq != b.seq {
		b.logger.Debug("dropping stale catalog response",
			zap.Uint64("seq", seq),
			zap.Uint64("latest", b.seq))
		return
	}

	b.state = StateIdle

	if err != nil {
		b.logger.Warn("catalog fetch failed", zap.Error(err))
		return
	}

	b.applied = filter
	b.components = components
}

// =============================================================================
// TYPE LIST
// =============================================================================

// CompleteTypes resolves the component type fetch issued at startup. A
// failed or empty result leaves typesReady false so a later retry can fill
// it; failures are logged and flagged for the view.
func (b *Browser) CompleteTypes(types []string, err error) {
	if err != nil {
		b.logger.Warn("component type fetch failed", zap.Error(err))
		b.typesFailed = true
		return
	}
	if len(types) == 0 {
		return
	}
	b.types = types
	b.typesReady = true
	b.typesFailed = false
}

// Types returns the available component types.
func (b *Browser) Types() []string {
	return b.types
}

// TypesReady reports whether the type list has been loaded.
func (b *Browser) TypesReady() bool {
	return b.typesReady
}

// TypesFailed reports whether the last type fetch ended in an error.
func (b *Browser) TypesFailed() bool {
	return b.typesFailed
}

// =============================================================================
// SNAPSHOT
// =============================================================================

// Components returns the currently displayed list.
func (b *Browser) Components() []api.CatalogComponent {
	return b.components
}

// AppliedFilter returns the filter behind the displayed list.
func (b *Browser) AppliedFilter() api.ComponentFilter {
	return b.applied
}

// State returns the fetch state.
func (b *Browser) State() State {
	return b.state
}

// Loading reports whether an apply is outstanding.
func (b *Browser) Loading() bool {
	return b.state == StateLoading
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/armatupc/armatupc-tui/internal/api"
)

func sampleComponents(names ...string) []api.CatalogComponent {
	out := make([]api.CatalogComponent, 0, len(names))
	for i, name := range names {
		out = append(out, api.CatalogComponent{
			ID:           int64(i + 1),
			Type:         "GPU",
			Name:         name,
			Brand:        "NVIDIA",
			RegularPrice: 1200,
		})
	}
	return out
}

func TestDraftEditsDoNotTouchAppliedState(t *testing.T) {
	b := New(zap.NewNop(), 0)

	seq, filter := b.BeginApply()
	b.CompleteApply(seq, filter, sampleComponents("RTX 4060"), nil)

	b.SetType("CPU")
	b.SetMaxPrice("500")

	if got := b.AppliedFilter().Type; got != "" {
		t.Errorf("applied filter type changed by a draft edit: %q", got)
	}
	if len(b.Components()) != 1 {
		t.Error("list must not change until the draft is applied")
	}
	if b.Draft().Type != "CPU" || b.Draft().MaxPrice != "500" {
		t.Error("draft should carry the edits")
	}
}

func TestBeginApply_MaxPriceParsing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64 // 0 means the filter field is omitted
	}{
		{"empty means no filter", "", 0},
		{"whitespace only", "   ", 0},
		{"unparsable means no filter", "cheap", 0},
		{"zero means no filter", "0", 0},
		{"negative means no filter", "-100", 0},
		{"plain number", "1500", 1500},
		{"decimal", "1499.99", 1499.99},
		{"surrounding whitespace", "  800 ", 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(zap.NewNop(), 0)
			b.SetMaxPrice(tt.input)

			_, filter := b.BeginApply()
			if filter.MaxPrice != tt.want {
				t.Errorf("max price for %q: got %v, want %v", tt.input, filter.MaxPrice, tt.want)
			}
			if filter.Limit != DefaultLimit {
				t.Errorf("limit: got %d, want %d", filter.Limit, DefaultLimit)
			}
		})
	}
}

func TestCompleteApply_ReplacesListWholesale(t *testing.T) {
	b := New(zap.NewNop(), 0)

	seq, filter := b.BeginApply()
	b.CompleteApply(seq, filter, sampleComponents("RTX 4060", "RTX 4070"), nil)

	b.SetType("GPU")
	b.SetMaxPrice("2000")
	seq, filter = b.BeginApply()
	if !b.Loading() {
		t.Error("browser should be loading after BeginApply")
	}
	b.CompleteApply(seq, filter, sampleComponents("RTX 4060"), nil)

	if b.Loading() {
		t.Error("browser should be idle after CompleteApply")
	}
	if len(b.Components()) != 1 {
		t.Errorf("list length: got %d, want 1 (replaced, not merged)", len(b.Components()))
	}
	if got := b.AppliedFilter(); got.Type != "GPU" || got.MaxPrice != 2000 {
		t.Errorf("applied filter: got %+v", got)
	}
}

func TestCompleteApply_StaleResponseDropped(t *testing.T) {
	b := New(zap.NewNop(), 0)

	b.SetType("GPU")
	staleSeq, staleFilter := b.BeginApply()

	b.SetType("CPU")
	freshSeq, freshFilter := b.BeginApply()

	// The fresh response lands first.
	b.CompleteApply(freshSeq, freshFilter, sampleComponents("Ryzen 5 5600"), nil)
	// The stale one arrives late and must be discarded entirely.
	b.CompleteApply(staleSeq, staleFilter, sampleComponents("RTX 4060", "RTX 4070"), nil)

	if len(b.Components()) != 1 {
		t.Fatalf("list length: got %d, want 1 (stale response must not overwrite)", len(b.Components()))
	}
	if got := b.AppliedFilter().Type; got != "CPU" {
		t.Errorf("applied filter type: got %q, want CPU", got)
	}
}

func TestCompleteApply_StaleDoesNotResetLoading(t *testing.T) {
	b := New(zap.NewNop(), 0)

	staleSeq, staleFilter := b.BeginApply()
	_, _ = b.BeginApply()

	b.CompleteApply(staleSeq, staleFilter, nil, errors.New("late failure"))

	if !b.Loading() {
		t.Error("a stale completion must not clear the loading state of a newer apply")
	}
}

func TestCompleteApply_ErrorKeepsPreviousList(t *testing.T) {
	b := New(zap.NewNop(), 0)

	seq, filter := b.BeginApply()
	b.CompleteApply(seq, filter, sampleComponents("RTX 4060"), nil)

	b.SetType("CPU")
	seq, filter = b.BeginApply()
	b.CompleteApply(seq, filter, nil, api.ErrUnreachable)

	if b.Loading() {
		t.Error("browser should return to idle after a failed apply")
	}
	if len(b.Components()) != 1 || b.Components()[0].Name != "RTX 4060" {
		t.Error("previous list must survive a failed apply")
	}
	if got := b.AppliedFilter().Type; got != "" {
		t.Errorf("applied filter must not advance on failure, got type %q", got)
	}
}

func TestBeginApply_ConfiguredLimit(t *testing.T) {
	b := New(zap.NewNop(), 25)

	_, filter := b.BeginApply()
	if filter.Limit != 25 {
		t.Errorf("limit: got %d, want the configured 25", filter.Limit)
	}

	b = New(zap.NewNop(), 0)
	if _, filter := b.BeginApply(); filter.Limit != DefaultLimit {
		t.Errorf("non-positive limit must fall back to %d, got %d", DefaultLimit, filter.Limit)
	}
}

func TestCompleteTypes(t *testing.T) {
	b := New(zap.NewNop(), 0)

	if b.TypesReady() {
		t.Error("types should not be ready before loading")
	}

	b.CompleteTypes(nil, nil)
	if b.TypesReady() {
		t.Error("an empty result leaves types unloaded so a retry can fill them")
	}

	b.CompleteTypes([]string{"CPU", "GPU", "RAM"}, nil)
	if !b.TypesReady() {
		t.Error("types should be ready after loading")
	}
	if len(b.Types()) != 3 || b.Types()[0] != "CPU" {
		t.Errorf("types: got %v", b.Types())
	}
}

func TestCompleteTypes_ErrorLoggedAndRetryable(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	b := New(zap.New(core), 0)

	b.CompleteTypes(nil, api.ErrUnreachable)

	if b.TypesReady() {
		t.Error("a failed fetch must leave types unloaded")
	}
	if !b.TypesFailed() {
		t.Error("a failed fetch must be flagged for the view")
	}
	if logs.FilterMessage("component type fetch failed").Len() != 1 {
		t.Error("a failed fetch must leave a diagnostic log entry")
	}

	// A later retry fills the list and clears the flag.
	b.CompleteTypes([]string{"CPU", "GPU"}, nil)
	if !b.TypesReady() || b.TypesFailed() {
		t.Error("a successful retry must load types and clear the failure flag")
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// =============================================================================
// RECOMMENDATION TYPES
// =============================================================================

// RecommendRequest is the body for POST /recommend.
//
// ModelType is part of the wire contract: when the user has not chosen a
// model the key must be ABSENT from the JSON, which is how the service
// selects its default model. Sending "" or null is a different (wrong)
// request, so the field relies on omitempty and callers pass "" for
// "not chosen".
type RecommendRequest struct {
	Message   string `json:"message"`
	ModelType string `json:"model_type,omitempty"`
}

// CompareRequest is the body for POST /compare-models.
type CompareRequest struct {
	Message string `json:"message"`
}

// Configuration is a full recommended build as returned by the service:
// one component choice per component type plus cost and compatibility
// summaries. It is immutable once received.
type Configuration struct {
	Components    ComponentList       `json:"configuration"`
	Costs         CostSummary         `json:"costs"`
	Compatibility CompatibilityReport `json:"compatibility"`
}

// ComponentChoice is a single selected part within a configuration.
type ComponentChoice struct {
	Name  string  `json:"name"`
	Brand string  `json:"brand"`
	Price float64 `json:"price"`
}

// ComponentEntry pairs a component type key with its selected part.
type ComponentEntry struct {
	Type   string
	Choice ComponentChoice
}

// ComponentList holds the configuration mapping in the order the service
// sent it. The wire format is a JSON object; a Go map would scramble the
// key order, and the display contract is to render rows in service order,
// so decoding walks the object token by token instead.
type ComponentList []ComponentEntry

// UnmarshalJSON decodes a JSON object into an ordered entry list.
func (l *ComponentList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("configuration: expected object, got %v", tok)
	}

	entries := make(ComponentList, 0, 8)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("configuration: expected string key, got %v", keyTok)
		}

		var choice ComponentChoice
		if err := dec.Decode(&choice); err != nil {
			return fmt.Errorf("configuration %q: %w", key, err)
		}
		entries = append(entries, ComponentEntry{Type: key, Choice: choice})
	}

	if _, err := dec.Token(); err != nil { // closing '}'
		return err
	}

	*l = entries
	return nil
}

// MarshalJSON encodes the list back into a JSON object, preserving order.
func (l ComponentList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Type)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(entry.Choice)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the choice for a component type, if present.
func (l ComponentList) Get(componentType string) (ComponentChoice, bool) {
	for _, entry := range l {
		if entry.Type == componentType {
			return entry.Choice, true
		}
	}
	return ComponentChoice{}, false
}

// CostSummary carries the service-computed cost figures. The client never
// recomputes these; it only formats and classifies them.
type CostSummary struct {
	Budget               float64 `json:"budget"`
	Total                float64 `json:"total"`
	Remaining            float64 `json:"remaining"`
	CompliancePercentage float64 `json:"compliance_percentage"`
}

// CompatibilityReport is the service's compatibility verdict. IsValid is
// authoritative; the error and warning lists may independently be empty
// regardless of the verdict.
type CompatibilityReport struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateRequest is the body for POST /validate.
type ValidateRequest struct {
	Components ComponentList `json:"components"`
}

// =============================================================================
// CATALOG TYPES
// =============================================================================

// CatalogComponent is one entry from the component catalog.
type CatalogComponent struct {
	ID           int64   `json:"id"`
	Type         string  `json:"type"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	RegularPrice float64 `json:"regular_price"`
	// Stock is nil when the service omits the field; that is "unknown",
	// not zero units left.
	Stock *int `json:"stock,omitempty"`
}

// ComponentFilter narrows a catalog listing. Zero values mean "no filter";
// Limit always transmits (the service caps result size with it).
type ComponentFilter struct {
	Type     string
	MaxPrice float64
	Limit    int
}

// ListComponentsResponse is the body of GET /components.
type ListComponentsResponse struct {
	Components []CatalogComponent `json:"components"`
}

// ListTypesResponse is the body of GET /components/types.
type ListTypesResponse struct {
	Types []string `json:"types"`
}

// =============================================================================
// PROFILE TYPES
// =============================================================================

// Profile describes a usage profile the service can recommend against.
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ProfileRecommendation is one entry from GET /recommend/{profile}/{type}.
type ProfileRecommendation struct {
	Name  string  `json:"name"`
	Brand string  `json:"brand"`
	Price float64 `json:"price"`
	Score float64 `json:"score,omitempty"`
}

// =============================================================================
// SERVICE ERROR BODY
// =============================================================================

// serviceError is the error envelope FastAPI-style services return on
// non-2xx responses.
type serviceError struct {
	Detail string `json:"detail"`
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfiguration = `{
	"configuration": {
		"CPU": {"name": "Ryzen 5 5600", "brand": "AMD", "price": 650.0},
		"GPU": {"name": "RTX 4060", "brand": "NVIDIA", "price": 1200.0},
		"RAM": {"name": "Vengeance 16GB", "brand": "Corsair", "price": 180.0}
	},
	"costs": {"budget": 2500, "total": 2030, "remaining": 470, "compliance_percentage": 81.2},
	"compatibility": {"is_valid": true, "errors": [], "warnings": []}
}`

func TestRecommend_OmitsModelTypeWhenNotChosen(t *testing.T) {
	var body map[string]json.RawMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, sampleConfiguration)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	_, err := client.Recommend(context.Background(), "PC para gaming, 2500 soles", "")
	require.NoError(t, err)

	// The key must be absent, not null or empty: omission selects the
	// service's default model.
	_, present := body["model_type"]
	assert.False(t, present, "model_type key must not be transmitted when not chosen")
	assert.JSONEq(t, `"PC para gaming, 2500 soles"`, string(body["message"]))
}

func TestRecommend_SendsModelTypeWhenChosen(t *testing.T) {
	var body map[string]json.RawMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		io.WriteString(w, sampleConfiguration)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	_, err := client.Recommend(context.Background(), "PC para oficina", "embedding")
	require.NoError(t, err)
	assert.JSONEq(t, `"embedding"`, string(body["model_type"]))
}

func TestRecommend_PreservesComponentOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, sampleConfiguration)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	cfg, err := client.Recommend(context.Background(), "gaming", "")
	require.NoError(t, err)

	got := make([]string, 0, len(cfg.Components))
	for _, entry := range cfg.Components {
		got = append(got, entry.Type)
	}
	assert.Equal(t, []string{"CPU", "GPU", "RAM"}, got, "rows must keep service order")

	choice, ok := cfg.Components.Get("GPU")
	require.True(t, ok)
	assert.Equal(t, "NVIDIA", choice.Brand)
	assert.InDelta(t, 1200.0, choice.Price, 1e-9)
}

func TestRecommend_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"detail": "could not parse budget"}`)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	_, err := client.Recommend(context.Background(), "???", "")
	require.Error(t, err)

	status, ok := IsServiceError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, err.Error(), "could not parse budget")
}

func TestRecommend_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"configuration": "not an object"`)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	_, err := client.Recommend(context.Background(), "gaming", "")
	require.Error(t, err)

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, ErrTypeInvalidResponse, clientErr.Type)
}

func TestRecommend_Unreachable(t *testing.T) {
	// A closed server guarantees a connection failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	_, err := client.Recommend(context.Background(), "gaming", "")
	assert.True(t, IsUnreachable(err))
}

func TestListComponents_QueryParameters(t *testing.T) {
	tests := []struct {
		name      string
		filter    ComponentFilter
		wantQuery map[string]string
		absent    []string
	}{
		{
			name:      "all filters",
			filter:    ComponentFilter{Type: "GPU", MaxPrice: 1500, Limit: 50},
			wantQuery: map[string]string{"component_type": "GPU", "max_price": "1500", "limit": "50"},
		},
		{
			name:      "no price filter",
			filter:    ComponentFilter{Type: "CPU", Limit: 50},
			wantQuery: map[string]string{"component_type": "CPU", "limit": "50"},
			absent:    []string{"max_price"},
		},
		{
			name:      "no filters beyond limit",
			filter:    ComponentFilter{Limit: 50},
			wantQuery: map[string]string{"limit": "50"},
			absent:    []string{"component_type", "max_price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery map[string][]string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				io.WriteString(w, `{"components": []}`)
			}))
			defer srv.Close()

			client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
			_, err := client.ListComponents(context.Background(), tt.filter)
			require.NoError(t, err)

			for key, want := range tt.wantQuery {
				require.Len(t, gotQuery[key], 1, "query key %s", key)
				assert.Equal(t, want, gotQuery[key][0])
			}
			for _, key := range tt.absent {
				assert.NotContains(t, gotQuery, key)
			}
		})
	}
}

func TestListComponents_PreservesListOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"components": [
			{"id": 3, "type": "GPU", "name": "RTX 4070", "brand": "NVIDIA", "regular_price": 1800.0, "stock": 4},
			{"id": 1, "type": "GPU", "name": "RX 7600", "brand": "AMD", "regular_price": 1100.0},
			{"id": 2, "type": "GPU", "name": "RTX 4060", "brand": "NVIDIA", "regular_price": 1200.0, "stock": 9}
		]}`)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	components, err := client.ListComponents(context.Background(), ComponentFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, components, 3)

	assert.Equal(t, int64(3), components[0].ID)
	assert.Equal(t, int64(1), components[1].ID)
	assert.Equal(t, int64(2), components[2].ID)

	// An absent stock field decodes to nil, not zero units.
	assert.Nil(t, components[1].Stock)
	require.NotNil(t, components[2].Stock)
	assert.Equal(t, 9, *components[2].Stock)
}

func TestListComponentTypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/components/types", r.URL.Path)
		io.WriteString(w, `{"types": ["CPU", "GPU", "RAM", "STORAGE"]}`)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	types, err := client.ListComponentTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CPU", "GPU", "RAM", "STORAGE"}, types)
}

func TestValidateConfiguration_MarshalsOrderedComponents(t *testing.T) {
	var rawBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rawBody = string(raw)
		io.WriteString(w, `{"is_valid": false, "errors": ["PSU too weak"], "warnings": []}`)
	}))
	defer srv.Close()

	components := ComponentList{
		{Type: "PSU", Choice: ComponentChoice{Name: "CX450", Brand: "Corsair", Price: 220}},
		{Type: "GPU", Choice: ComponentChoice{Name: "RTX 4070", Brand: "NVIDIA", Price: 1800}},
	}

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	report, err := client.ValidateConfiguration(context.Background(), components)
	require.NoError(t, err)

	assert.False(t, report.IsValid)
	assert.Equal(t, []string{"PSU too weak"}, report.Errors)

	// Encoded object keys must appear in the order they were held.
	psuIdx := strings.Index(rawBody, `"PSU"`)
	gpuIdx := strings.Index(rawBody, `"GPU"`)
	require.True(t, psuIdx >= 0 && gpuIdx >= 0)
	assert.Less(t, psuIdx, gpuIdx)
}

func TestCheckHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		io.WriteString(w, `{"status": "ok"}`)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	assert.NoError(t, client.CheckHealth(context.Background()))
}

func TestListProfiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profiles", r.URL.Path)
		io.WriteString(w, `[
			{"id": "gaming", "name": "Gaming", "description": "Juegos exigentes"},
			{"id": "oficina", "name": "Oficina"}
		]`)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	profiles, err := client.ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "gaming", profiles[0].ID)
	assert.Equal(t, "Oficina", profiles[1].Name)
}

func TestGetProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profiles/gaming", r.URL.Path)
		io.WriteString(w, `{"id": "gaming", "name": "Gaming", "description": "Juegos exigentes"}`)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	profile, err := client.GetProfile(context.Background(), "gaming")
	require.NoError(t, err)
	assert.Equal(t, "Gaming", profile.Name)
}

func TestRecommendByProfile_PathAndQuery(t *testing.T) {
	var gotPath, gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `[
			{"name": "RTX 4060", "brand": "NVIDIA", "price": 1200, "score": 0.93},
			{"name": "RX 7600", "brand": "AMD", "price": 1100, "score": 0.88}
		]`)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	recs, err := client.RecommendByProfile(context.Background(), "gaming", "GPU", "", 2)
	require.NoError(t, err)

	assert.Equal(t, "/recommend/gaming/GPU", gotPath)
	assert.Equal(t, "top_k=2", gotQuery, "model_type must be omitted when not chosen")
	require.Len(t, recs, 2)
	assert.Equal(t, "RTX 4060", recs[0].Name)
}

func TestCompareModels_ReturnsRawJSON(t *testing.T) {
	const comparison = `{"basic": {"total": 2100}, "advanced": {"total": 2030}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/compare-models", r.URL.Path)
		io.WriteString(w, comparison)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	raw, err := client.CompareModels(context.Background(), "PC para gaming")
	require.NoError(t, err)
	assert.JSONEq(t, comparison, string(raw))
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the armatupc recommendation service.
//
// The client covers four operation groups: recommendation (free-text request
// to configuration), catalog browsing (component lists and types), profile
// lookup, and configuration validation. Each operation issues exactly one
// request; there are no retries. Errors are classified as connection,
// timeout, service (non-2xx with a body), or invalid-response so callers can
// log the distinction while showing a single collapsed message to the user.
package api

/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package statusmap

import (
	"fmt"
	"strings"

	"dirpx.dev/parsex/apis"
	"dirpx.dev/parsex/kind"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for
// long-lived reuse. Each build creates a self-contained mapper
// instance — no shared references to global state or user-provided
// structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults and overrides).
//  3. Validate every kind the options referenced against the closed
//     vocabulary.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate options referencing a
// kind outside the closed set.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	// We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options (defaults and overrides).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Reject options that referenced an unknown kind. The
	// vocabulary is closed, so anything else is a configuration bug.
	for _, m := range []map[kind.Kind]int{b.httpDefaults, b.grpcDefaults, b.httpOverride, b.grpcOverride} {
		for k := range m {
			if err := kind.Validate(k); err != nil {
				return nil, fmt.Errorf("statusmap: invalid kind %q: %w", k, err)
			}
		}
	}

	// (4) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated.
	m := &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-kind
// defaults and per-kind exact overrides. Lookups are O(1) and safe for
// concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given failure kind.
	// Used when no override is present.
	httpDefault map[kind.Kind]int

	// grpcDefault holds the base gRPC status for a given failure kind.
	grpcDefault map[kind.Kind]codes.Code

	// httpOverride holds explicit HTTP statuses for specific kinds.
	// These take precedence over defaults.
	httpOverride map[kind.Kind]int

	// grpcOverride holds explicit gRPC statuses for specific kinds.
	grpcOverride map[kind.Kind]codes.Code

	// fallbackHTTP is used when there is no mapping at all for a kind.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a kind.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind.
//
// Resolution order (highest to lowest):
//  1. exact per-kind override (explicitly registered);
//  2. per-kind default (library or user replaced);
//  3. hardcoded ultimate fallback (500).
func (m *mapper) HTTPStatus(k kind.Kind) int {
	// 1. Fast path: exact override for this kind.
	if v, ok := m.httpOverride[k]; ok {
		return v
	}

	// 2. Per-kind default.
	if v, ok := m.httpDefault[k]; ok {
		return v
	}

	// 3. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given kind.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
func (m *mapper) GRPCStatus(k kind.Kind) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[k]; ok {
		return v
	}

	// 2. Default for this kind.
	if v, ok := m.grpcDefault[k]; ok {
		return v
	}

	// 3. Ultimate fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/gRPC decisions consistent for a single failure.
func (m *mapper) Status(k kind.Kind) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k),
		GRPC: m.GRPCStatus(k),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and
// gRPC statuses for a particular kind.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, default, or fallback).
//
// Example output:
//
//	kind="int"
//	http:  source=default -> 400
//	grpc:  source=default -> InvalidArgument(3)
//
// Notes:
//   - source ∈ {override | default | fallback}
func (m *mapper) Explain(k kind.Kind) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q\n", k)

	// ---- HTTP ----
	if v, ok := m.httpOverride[k]; ok {
		_, _ = fmt.Fprintf(&b, "http:  source=override -> %d\n", v)
	} else if v, ok := m.httpDefault[k]; ok {
		_, _ = fmt.Fprintf(&b, "http:  source=default -> %d\n", v)
	} else {
		_, _ = fmt.Fprintf(&b, "http:  source=fallback -> %d\n", m.fallbackHTTP)
	}

	// ---- gRPC ----
	if v, ok := m.grpcOverride[k]; ok {
		_, _ = fmt.Fprintf(&b, "grpc:  source=override -> %v(%d)\n", v, v)
	} else if v, ok := m.grpcDefault[k]; ok {
		_, _ = fmt.Fprintf(&b, "grpc:  source=default -> %v(%d)\n", v, v)
	} else {
		_, _ = fmt.Fprintf(&b, "grpc:  source=fallback -> %v(%d)\n", m.fallbackGRPC, m.fallbackGRPC)
	}

	return b.String()
}

// freezeHTTP copies an int-valued kind map into a fresh allocation.
func freezeHTTP(src map[kind.Kind]int) map[kind.Kind]int {
	dst := make(map[kind.Kind]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC copies an int-valued kind map into a fresh codes.Code map.
func freezeGRPC(src map[kind.Kind]int) map[kind.Kind]codes.Code {
	dst := make(map[kind.Kind]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

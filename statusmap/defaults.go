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
	"net/http"

	"dirpx.dev/parsex/kind"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for the
// parse failure kinds. These are only defaults: callers are expected
// to override them at the boundary where HTTP is actually produced if
// a different policy is required.
//
// The common case is "the client sent text we could not convert",
// which is a plain 400. The escape-hatch kinds deviate: Other carries
// an application-defined rule violation (422), and Dyn is an opaque
// failure we cannot attribute to the client (500).
var defaultHTTP = map[kind.Kind]int{
	// Client sent malformed values.
	kind.Int:     http.StatusBadRequest, // Integer text did not parse.
	kind.Bool:    http.StatusBadRequest, // Boolean text did not parse.
	kind.Char:    http.StatusBadRequest, // Not exactly one character.
	kind.Float:   http.StatusBadRequest, // Float text did not parse.
	kind.Addr:    http.StatusBadRequest, // Network address text did not parse.
	kind.Literal: http.StatusBadRequest, // Template token mismatch.
	kind.Array:   http.StatusBadRequest, // Wrong element count.

	// Escape hatches.
	kind.Other: http.StatusUnprocessableEntity, // Custom conversion rejected well-formed text.
	kind.Dyn:   http.StatusInternalServerError, // Opaque boxed cause; do not blame the client.

	// Context kinds, for callers that resolve without unwrapping.
	// Adapters normally resolve the leaf kind instead.
	kind.Multi:   http.StatusBadRequest,
	kind.Context: http.StatusBadRequest,
}

// defaultGRPC defines the library's built-in gRPC mappings for the
// parse failure kinds, aligned with canonical gRPC status semantics.
var defaultGRPC = map[kind.Kind]codes.Code{
	// Client sent malformed values.
	kind.Int:     codes.InvalidArgument,
	kind.Bool:    codes.InvalidArgument,
	kind.Char:    codes.InvalidArgument,
	kind.Float:   codes.InvalidArgument,
	kind.Addr:    codes.InvalidArgument,
	kind.Literal: codes.InvalidArgument,
	kind.Array:   codes.InvalidArgument,

	// Escape hatches.
	kind.Other: codes.InvalidArgument, // Still an input problem, just custom-worded.
	kind.Dyn:   codes.Unknown,         // We genuinely do not know what went wrong.

	// Context kinds, for callers that resolve without unwrapping.
	kind.Multi:   codes.InvalidArgument,
	kind.Context: codes.InvalidArgument,
}

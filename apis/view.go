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

package apis

// ViewProvider is implemented by errors that can produce a
// transport-friendly, self-contained representation of themselves.
//
// This is useful for HTTP/gRPC adapters that want to send "the
// canonical form" of the error to the client without having to know
// about the concrete error type.
//
// The returned view MUST be safe to marshal (to JSON/proto) and SHOULD
// contain all information that is safe to disclose to the client.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable representation of a parse
// failure with its context chain flattened.
//
// This is *not* the concrete error type used internally — it is the
// shape that we are comfortable exposing over the wire or logging.
// Keeping it here (in apis) allows both HTTP and gRPC adapters to
// share the same struct.
type ErrorView struct {
	// Kind is the leaf failure kind, e.g. "int", "literal", "other".
	// Context layers are flattened into Frames, so Kind always names
	// the terminal cause.
	Kind string `json:"kind"`

	// Message is the fully rendered failure, including the recursively
	// indented context chain.
	Message string `json:"message,omitempty"`

	// Expected and Found carry the literal-mismatch payload; empty for
	// other kinds.
	Expected string `json:"expected,omitempty"`
	Found    string `json:"found,omitempty"`

	// WantItems and GotItems carry the arity-mismatch payload; zero
	// for other kinds.
	WantItems int `json:"want_items,omitempty"`
	GotItems  int `json:"got_items,omitempty"`

	// Frames lists the context layers from outermost to innermost.
	// Empty when the failure was not wrapped.
	Frames []Frame `json:"frames,omitempty"`
}

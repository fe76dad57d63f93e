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

// KindedError represents an error that is classified into a
// well-defined, machine-readable failure *kind*.
//
// A kind denotes the variant of the parse failure, such as:
//   - "int"     — an integer target could not be parsed,
//   - "literal" — a template token did not match,
//   - "array"   — a fixed-arity conversion saw the wrong count,
//   - "context" — a wrapped failure with surrounding input attached.
//
// Kinds are stable and enumerable (see parsex/kind). They are the
// primary value that higher-level adapters (HTTP, gRPC) use to decide
// which status to return to the client.
//
// Implementations are expected to return a canonical member of the
// closed kind set. Adapters should treat unknown or empty kinds as
// internal/server errors.
type KindedError interface {
	error

	// ErrorKind returns the machine-readable failure kind.
	//
	// The returned value MUST be non-empty and MUST be a member of the
	// closed set enumerated by parsex/kind. Callers should not try to
	// "fix" or "guess" the value here — if it's invalid, it should be
	// handled as an internal error at the boundary.
	ErrorKind() string
}

// CausedError represents an error that exposes its underlying cause.
//
// The method is the standard errors.Unwrap shape, so both errors.Is /
// errors.As and callers of this contract traverse the same chain.
// Context kinds expose the wrapped parse error; primitive kinds expose
// the platform parser's error; structural kinds have no cause.
//
// Implementations SHOULD return the direct, immediate cause of the
// error. If there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Unwrap returns the underlying error that triggered this error,
	// if any. May return nil.
	Unwrap() error
}

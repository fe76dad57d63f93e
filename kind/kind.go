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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Kind is the canonical, validated discriminant of a parse error.
//
// It is defined as a separate type (not just string) so that other
// packages can explicitly declare which values they expect and to avoid
// accidental mixing of raw user input with normalized values.
//
// IMPORTANT: Empty kinds ("") are NOT allowed. Every parse error MUST
// have a non-empty kind.
type Kind string

var (
	// ErrKindInvalid is returned when a value cannot be parsed or
	// validated as a parsex kind.
	//
	// Having a dedicated sentinel error makes it easier for callers and
	// tests to detect "this is about kind membership" vs "this is some
	// other error".
	ErrKindInvalid = errors.New("parsex: invalid kind")
)

// Ensure Kind implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Empty is the zero-value kind. It never appears in a constructed parse
// error; it only exists so callers can represent "not provided" while
// assembling values. Validate rejects it.
var Empty Kind = ""

// Parse takes a user-provided string, normalizes it and checks it
// against the closed set. On success it returns the canonical Kind.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize takes an arbitrary string and tries to bring it closer to
// the canonical kind form.
//
// This function is intentionally conservative: it only performs
// obvious, non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//
// It does NOT guarantee that the result is a member of the set —
// callers should still call Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return s
}

// Validate checks whether the provided Kind is a member of the closed
// set. The empty kind ("") is considered invalid.
func Validate(k Kind) error {
	return validate(string(k))
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Leaf reports whether the kind is a terminal failure — one that never
// wraps another parse error. Context chains always bottom out on a
// leaf kind.
func (k Kind) Leaf() bool {
	return !k.Contextual() && members[k]
}

// Contextual reports whether the kind wraps a prior parse error
// together with the surrounding input text.
func (k Kind) Contextual() bool {
	return k == Context || k == Multi
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (k *Kind) UnmarshalText(text []byte) error {
	// We copy into a buffer to avoid changing the input slice.
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// validate is a helper that checks set membership for the raw string.
//
// A regexp is unnecessary here: the set is closed and enumerable, so
// membership in the members map is the whole validity rule.
func validate(s string) error {
	if !members[Kind(s)] {
		return ErrKindInvalid
	}
	return nil
}

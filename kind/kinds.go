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

// Primitive conversion kinds
//
// These kinds classify failures of the platform's standard textual
// parsers. The underlying parser error is carried as the error cause.
const (
	// Int indicates that an integer target (any signed or unsigned
	// width) could not be parsed from the input text.
	// The cause is the strconv error describing syntax vs range.
	//
	// Transport mapping is policy; the library default is HTTP 400.
	Int Kind = "int"

	// Bool indicates that a boolean target could not be parsed.
	// strconv.ParseBool accepts 1/t/T/TRUE/true/True and the false
	// forms; everything else fails with this kind.
	//
	// Transport mapping is policy; the library default is HTTP 400.
	Bool Kind = "bool"

	// Char indicates that a single-character target could not be
	// parsed: the input was empty, held more than one character, or
	// was not valid UTF-8.
	//
	// Transport mapping is policy; the library default is HTTP 400.
	Char Kind = "char"

	// Float indicates that a floating-point target could not be
	// parsed. The cause is the strconv error describing syntax vs
	// range.
	//
	// Transport mapping is policy; the library default is HTTP 400.
	Float Kind = "float"

	// Addr indicates that a network-address target (IP address,
	// address/port, prefix, or hardware address) could not be parsed.
	// The cause is the net/netip parser error.
	//
	// Transport mapping is policy; the library default is HTTP 400.
	Addr Kind = "addr"
)

// Escape-hatch kinds
//
// These kinds originate from conversion implementations outside the
// built-in set and deliberately trade precision for openness.
const (
	// Dyn indicates a failure carried as an arbitrary boxed error from
	// a caller-supplied conversion. The boxed cause is reachable via
	// Unwrap, but Dyn errors never compare equal — not even to
	// themselves across two independent failures. This is documented
	// behavior, not a bug: opaque causes cannot be compared.
	//
	// Transport mapping is policy; the library default is HTTP 500.
	Dyn Kind = "dyn"

	// Other indicates a free-form failure built from a message via
	// parsex.New. This is the sanctioned extension point for custom
	// conversion implementations that need their own wording without
	// defining a new kind.
	//
	// Transport mapping is policy; the library default is HTTP 422.
	Other Kind = "other"
)

// Structural kinds
//
// These kinds are reported by the template-matching collaborator when
// the shape of the input, rather than a single value, is wrong.
const (
	// Literal indicates that a template expected an exact fixed token
	// and the input contained different text. Carries the expected and
	// found snippets (owned copies).
	//
	// Transport mapping is policy; the library default is HTTP 400.
	Literal Kind = "literal"

	// Array indicates that a fixed-arity collection conversion
	// received a different element count than expected. Carries both
	// counts.
	//
	// Transport mapping is policy; the library default is HTTP 400.
	Array Kind = "array"
)

// Context kinds
//
// These kinds are never leaves: each wraps exactly one prior parse
// error together with surrounding input text. Chains strictly decrease
// and terminate on a non-context kind.
const (
	// Multi wraps a failure that occurred while parsing one element of
	// a repeated group. Carries the whole group text and the failing
	// element text.
	//
	// Transport mapping follows the wrapped leaf kind.
	Multi Kind = "multi"

	// Context wraps a failure that occurred while parsing one labelled
	// item inside a larger templated input. Carries the entire
	// original input and the failing item text.
	//
	// Transport mapping follows the wrapped leaf kind.
	Context Kind = "context"
)

// members is the authoritative membership set. validate() and the
// predicates consult it; Known() exposes it in stable order.
var members = map[Kind]bool{
	Int:     true,
	Bool:    true,
	Char:    true,
	Float:   true,
	Addr:    true,
	Dyn:     true,
	Other:   true,
	Literal: true,
	Array:   true,
	Multi:   true,
	Context: true,
}

// Known returns every member of the closed kind set in declaration
// order. The returned slice is freshly allocated on each call, so
// callers may modify it freely.
func Known() []Kind {
	return []Kind{
		Int, Bool, Char, Float, Addr,
		Dyn, Other,
		Literal, Array,
		Multi, Context,
	}
}

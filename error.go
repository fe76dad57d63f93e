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

package parsex

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"dirpx.dev/parsex/kind"
)

// Error is the canonical parse failure for parsex.
//
// It is a closed tagged union: Kind selects the variant, and only the
// payload fields belonging to that variant are populated. The set of
// kinds is fixed in parsex/kind; application code extends parsex by
// implementing the conversion capability for its own types (producing
// Other or Dyn errors), never by inventing kinds.
//
// Payload fields per kind:
//
//   - Int/Bool/Char/Float/Addr: Cause holds the platform parser error;
//   - Dyn:                      Cause holds an arbitrary boxed error;
//   - Literal:                  Expected / Found text snippets;
//   - Array:                    WantItems / GotItems counts;
//   - Other:                    Message;
//   - Multi/Context:            Input / Item snippets, Cause holds the
//     wrapped *Error.
//
// An Error is constructed once at the point of failure, optionally
// wrapped by WrapItem/WrapGroup as it propagates, and is read-only once
// returned. It is safe to share across goroutines provided any Dyn
// cause upholds the same property.
type Error struct {
	// Kind is the variant discriminant. Always a member of the closed
	// set enumerated by kind.Known().
	Kind kind.Kind

	// Expected and Found carry the Literal payload: the exact template
	// token that was expected and the text that was present instead.
	// Owned copies — never views into a caller's buffer lifecycle.
	Expected string
	Found    string

	// WantItems and GotItems carry the Array payload: the element
	// count a fixed-arity conversion expected vs what it received.
	WantItems int
	GotItems  int

	// Message carries the Other payload: free-form text supplied by a
	// custom conversion implementation via New.
	Message string

	// Input and Item carry the context payloads. For Context, Input is
	// the entire original input and Item the failing sub-slice; for
	// Multi, Input is the whole repeated-group text and Item the
	// failing element.
	Input string
	Item  string

	// Cause holds the wrapped underlying error: the standard parser
	// failure for primitive kinds, the boxed error for Dyn, and the
	// inner *Error for Multi/Context. Nil for Literal/Array/Other.
	Cause error
}

// New builds an Other error from anything renderable as text.
//
// This is the sanctioned extension point for custom conversion
// implementations that need their own message without defining a new
// kind:
//
//	func (f *Flag) ParseText(s string) error {
//	    switch s {
//	    case "on":  *f = true
//	    case "off": *f = false
//	    default:
//	        return parsex.New(fmt.Sprintf("expected on or off, found %s", s))
//	    }
//	    return nil
//	}
//
// Under the parsex_slim build tag the message is dropped and the error
// renders as a bare "unable to parse into type".
func New(message any) *Error {
	if !diagEnabled {
		return &Error{Kind: kind.Other}
	}
	return &Error{Kind: kind.Other, Message: fmt.Sprint(message)}
}

// NewLiteral builds a Literal error: a template expected the exact
// token expected but the input contained found.
//
// Both snippets are captured as owned copies. Under the parsex_slim
// build tag they are dropped.
func NewLiteral(expected, found string) *Error {
	if !diagEnabled {
		return &Error{Kind: kind.Literal}
	}
	return &Error{Kind: kind.Literal, Expected: expected, Found: found}
}

// NewArity builds an Array error: a fixed-arity conversion expected
// `expected` elements but `found` were present.
func NewArity(expected, found int) *Error {
	return &Error{Kind: kind.Array, WantItems: expected, GotItems: found}
}

// FromError adopts an arbitrary error into the parsex taxonomy.
//
// Classification:
//
//   - nil stays nil;
//   - *Error passes through unchanged (no double boxing);
//   - strconv failures map to Int/Bool/Float by the failing function;
//   - net address failures map to Addr;
//   - everything else is boxed as Dyn.
//
// The original error is always retained as the cause, so errors.Is and
// errors.As keep working across the adoption boundary.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*Error); ok {
		return pe
	}

	var ne *strconv.NumError
	if errors.As(err, &ne) {
		switch ne.Func {
		case "ParseBool":
			return &Error{Kind: kind.Bool, Cause: err}
		case "ParseFloat", "ParseComplex":
			return &Error{Kind: kind.Float, Cause: err}
		default:
			// ParseInt, ParseUint, Atoi.
			return &Error{Kind: kind.Int, Cause: err}
		}
	}

	var npe *net.ParseError
	var nae *net.AddrError
	if errors.As(err, &npe) || errors.As(err, &nae) {
		return &Error{Kind: kind.Addr, Cause: err}
	}

	return &Error{Kind: kind.Dyn, Cause: err}
}

// Error implements the built-in error interface.
//
// Rendering is one line per kind; the context kinds append the wrapped
// cause on an indented continuation line, so a chain renders as a
// readable, recursively indented trace.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case kind.Int:
		return "unable to parse as an integer"
	case kind.Bool:
		return "unable to parse as a boolean"
	case kind.Char:
		return "unable to parse as a character"
	case kind.Float:
		return "unable to parse as a float"
	case kind.Addr:
		return "unable to parse as an address"
	case kind.Literal:
		if !diagEnabled {
			return "invalid literal match"
		}
		return fmt.Sprintf("invalid literal match (expected to find %q, found %q)", e.Expected, e.Found)
	case kind.Array:
		return fmt.Sprintf("invalid number of items (expected to find %d, found %d)", e.WantItems, e.GotItems)
	case kind.Other:
		if !diagEnabled {
			return "unable to parse into type"
		}
		return e.Message
	case kind.Multi:
		return fmt.Sprintf("unable to parse multi-item %q when parsing %q:\n\t%s", e.Item, e.Input, causeText(e.Cause))
	case kind.Context:
		return fmt.Sprintf("unable to parse %q when parsing %q:\n\t%s", e.Item, e.Input, causeText(e.Cause))
	}
	// Dyn and anything malformed.
	return "unable to parse into type"
}

// Unwrap returns the wrapped cause, enabling errors.Is / errors.As
// traversal: the standard parser error for primitive kinds, the boxed
// error for Dyn, and the inner *Error for the context kinds. Returns
// nil for Literal/Array/Other.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorKind returns the kind as its canonical string. This satisfies
// the apis.KindedError contract without the root package depending on
// apis.
func (e *Error) ErrorKind() string { return e.Kind.String() }

// Leaf follows the context chain to the deepest non-context error.
//
// Chains are acyclic by construction — each wrap takes ownership of a
// fully built inner error — so this always terminates. For a leaf
// error it returns the receiver itself.
func (e *Error) Leaf() *Error {
	for e.Kind.Contextual() {
		inner, ok := e.Cause.(*Error)
		if !ok {
			break
		}
		e = inner
	}
	return e
}

// Equal reports structural, variant-aware equality.
//
// Two errors are equal iff they carry the same kind and all payload
// fields compare equal, recursively through wrapped *Error causes.
// Cross-kind comparisons are always unequal.
//
// Dyn errors are NEVER equal — not to other errors, and not to an
// independently produced Dyn from the same cause. Opaque boxed causes
// cannot be compared, and pretending otherwise would silently change
// failure-matching semantics; match Dyn causes with errors.Is instead.
//
// Primitive kinds compare by failure class (syntax vs range) where the
// platform parser exposes one, otherwise by rendered cause text.
func (e *Error) Equal(o *Error) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Kind != o.Kind {
		return false
	}
	switch e.Kind {
	case kind.Dyn:
		return false
	case kind.Int, kind.Bool, kind.Char, kind.Float, kind.Addr:
		return causeEqual(e.Cause, o.Cause)
	case kind.Literal:
		return e.Expected == o.Expected && e.Found == o.Found
	case kind.Array:
		return e.WantItems == o.WantItems && e.GotItems == o.GotItems
	case kind.Other:
		return e.Message == o.Message
	case kind.Multi, kind.Context:
		if e.Input != o.Input || e.Item != o.Item {
			return false
		}
		ec, eok := e.Cause.(*Error)
		oc, ook := o.Cause.(*Error)
		return eok && ook && ec.Equal(oc)
	}
	return false
}

// causeEqual compares two leaf parser errors.
//
// strconv failures carry a sentinel (ErrSyntax / ErrRange) describing
// the failure class independent of the failing input; two integer
// failures on different inputs with the same class compare equal.
// Other parser errors fall back to rendered-text comparison.
func causeEqual(x, y error) bool {
	if x == nil || y == nil {
		return x == y
	}
	var nx, ny *strconv.NumError
	if errors.As(x, &nx) && errors.As(y, &ny) {
		return nx.Err == ny.Err
	}
	return x.Error() == y.Error()
}

// causeText renders a wrapped cause for the context kinds.
func causeText(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}

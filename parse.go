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
	"net/netip"
	"strconv"
	"unicode/utf8"

	"dirpx.dev/parsex/kind"
)

// Char is a single-character target type.
//
// Go's rune is an alias of int32, so a bare rune target is
// indistinguishable from a 32-bit integer at dispatch time and parses
// as one. Char exists so callers can ask for "exactly one character"
// semantics: the input must be a single, valid UTF-8 encoded rune.
type Char rune

// Sentinel causes for Char failures. They are reachable via
// errors.Is on a kind.Char error.
var (
	// ErrCharEmpty is the cause when a Char target received empty input.
	ErrCharEmpty = errors.New("parsex: empty input for character")
	// ErrCharCount is the cause when the input held more than one character.
	ErrCharCount = errors.New("parsex: more than one character in input")
	// ErrCharEncoding is the cause when the input is not valid UTF-8.
	ErrCharEncoding = errors.New("parsex: input is not valid UTF-8")
)

// TextParser is the extension interface of the conversion protocol.
//
// A type that wants to be a Parse target implements ParseText on its
// pointer receiver — the same shape as encoding.TextUnmarshaler, but
// returning errors destined for the parsex taxonomy:
//
//   - return a *Error (e.g. from New) to pick the variant yourself;
//   - return any other error and Parse boxes it as Dyn.
//
// Implementations may recurse into Parse for sub-fields; context
// wrapping at composition boundaries is the collaborator's job, not
// the implementation's.
type TextParser interface {
	ParseText(s string) error
}

// Parse converts the string s into a value of type T.
//
// Dispatch is resolved from the static type argument: a type switch
// over the built-in target set, falling through to the TextParser
// extension interface. No reflection, no registry — the built-in set
// is closed per build and open only to types the application links in.
//
// Built-in targets:
//
//   - string (identity, zero copy, never fails) and []byte (owned copy);
//   - bool;
//   - int, int8, int16, int32, int64, uint, uint8, uint16, uint32,
//     uint64, uintptr (base 10);
//   - float32, float64;
//   - Char (exactly one character);
//   - netip.Addr, netip.AddrPort, netip.Prefix, net.IP, net.HardwareAddr.
//
// On failure the returned error is a *Error whose kind matches the
// target and whose cause is the platform parser's error. Requesting a
// type outside the set yields an Other error naming the type.
func Parse[T any](s string) (T, error) {
	var v T
	if err := parseInto(any(&v), s); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// MustParse is the panic-on-error convenience entry point.
//
// It is intended for callers that have asserted the input is
// well-formed — typically generated code — and want an unrecoverable
// abort with the fully rendered error chain on failure. Library code
// never calls it.
func MustParse[T any](s string) T {
	v, err := Parse[T](s)
	if err != nil {
		panic(fmt.Sprintf("unable to parse input:\n\t%s", err))
	}
	return v
}

// parseInto is the per-type dispatch table behind Parse. dst is always
// a *T for the requested target type.
func parseInto(dst any, s string) error {
	switch p := dst.(type) {
	case *string:
		// Identity conversion: always succeeds, returns the input
		// unchanged. Go strings are immutable values, so this is the
		// zero-copy "lending" case with no lifetime hazard.
		*p = s
		return nil

	case *[]byte:
		*p = []byte(s)
		return nil

	case *bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return &Error{Kind: kind.Bool, Cause: err}
		}
		*p = b
		return nil

	case *int:
		n, err := strconv.ParseInt(s, 10, 0)
		if err != nil {
			return &Error{Kind: kind.Int, Cause: err}
		}
		*p = int(n)
		return nil
	case *int8:
		n, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return &Error{Kind: kind.Int, Cause: err}
		}
		*p = int8(n)
		return nil
	case *int16:
		n, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return &Error{Kind: kind.Int, Cause: err}
		}
		*p = int16(n)
		return nil
	case *int32:
		// Also covers rune targets: rune is an alias of int32.
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return &Error{Kind: kind.Int, Cause: err}
		}
		*p = int32(n)
		return nil
	case *int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return &Error{Kind: kind.Int, Cause: err}
		}
		*p = n
		return nil

	case *uint:
		n, err := strconv.ParseUint(s, 10, 0)
		if err != nil {
			return &Error{Kind: kind.Int, Cause: err}
		}
		*p = uint(n)
		return nil
	case *uint8:
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return &Error{Kind: kind.Int, Cause: err}
		}
		*p = uint8(n)
		return nil
	case *uint16:
		n, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return &Error{Kind: kind.Int, Cause: err}
		}
		*p = uint16(n)
		return nil
	case *uint32:
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return &Error{Kind: kind.Int, Cause: err}
		}
		*p = uint32(n)
		return nil
	case *uint64:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return &Error{Kind: kind.Int, Cause: err}
		}
		*p = n
		return nil
	case *uintptr:
		n, err := strconv.ParseUint(s, 10, strconv.IntSize)
		if err != nil {
			return &Error{Kind: kind.Int, Cause: err}
		}
		*p = uintptr(n)
		return nil

	case *float32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return &Error{Kind: kind.Float, Cause: err}
		}
		*p = float32(f)
		return nil
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return &Error{Kind: kind.Float, Cause: err}
		}
		*p = f
		return nil

	case *Char:
		r, size := utf8.DecodeRuneInString(s)
		switch {
		case size == 0:
			return &Error{Kind: kind.Char, Cause: ErrCharEmpty}
		case r == utf8.RuneError && size == 1:
			return &Error{Kind: kind.Char, Cause: ErrCharEncoding}
		case size != len(s):
			return &Error{Kind: kind.Char, Cause: ErrCharCount}
		}
		*p = Char(r)
		return nil

	case *netip.Addr:
		a, err := netip.ParseAddr(s)
		if err != nil {
			return &Error{Kind: kind.Addr, Cause: err}
		}
		*p = a
		return nil
	case *netip.AddrPort:
		ap, err := netip.ParseAddrPort(s)
		if err != nil {
			return &Error{Kind: kind.Addr, Cause: err}
		}
		*p = ap
		return nil
	case *netip.Prefix:
		pf, err := netip.ParsePrefix(s)
		if err != nil {
			return &Error{Kind: kind.Addr, Cause: err}
		}
		*p = pf
		return nil
	case *net.IP:
		ip := net.ParseIP(s)
		if ip == nil {
			// net.ParseIP reports failure by returning nil; synthesize
			// the parser error it would have produced.
			return &Error{Kind: kind.Addr, Cause: &net.ParseError{Type: "IP address", Text: s}}
		}
		*p = ip
		return nil
	case *net.HardwareAddr:
		hw, err := net.ParseMAC(s)
		if err != nil {
			return &Error{Kind: kind.Addr, Cause: err}
		}
		*p = hw
		return nil

	case TextParser:
		if err := p.ParseText(s); err != nil {
			return FromError(err)
		}
		return nil
	}

	return New(fmt.Sprintf("unsupported target type %T", dst))
}

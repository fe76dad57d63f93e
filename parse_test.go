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
	"net"
	"net/netip"
	"strconv"
	"strings"
	"testing"

	"dirpx.dev/parsex/kind"
)

func wantKind(t *testing.T, err error, k kind.Kind) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a %q failure, got nil", k)
	}
	pe, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if pe.Kind != k {
		t.Fatalf("kind = %q, want %q", pe.Kind, k)
	}
	return pe
}

func TestParse_Identity(t *testing.T) {
	for _, s := range []string{"", "hello", "x=abc,y=5", "\tütf8 ✓"} {
		got, err := Parse[string](s)
		if err != nil {
			t.Fatalf("identity conversion of %q failed: %v", s, err)
		}
		if got != s {
			t.Fatalf("identity conversion changed value: %q -> %q", s, got)
		}
	}
}

func TestParse_Bytes(t *testing.T) {
	got, err := Parse[[]byte]("abc")
	if err != nil {
		t.Fatalf("byte conversion failed: %v", err)
	}
	if string(got) != "abc" {
		t.Fatalf("byte conversion = %q, want abc", got)
	}
}

func TestParse_Int32(t *testing.T) {
	got, err := Parse[int32]("42")
	if err != nil {
		t.Fatalf("Parse[int32](42): %v", err)
	}
	if got != 42 {
		t.Fatalf("Parse[int32](42) = %d, want 42", got)
	}

	_, err = Parse[int32]("abc")
	pe := wantKind(t, err, kind.Int)
	if pe.Error() != "unable to parse as an integer" {
		t.Fatalf("rendering = %q", pe.Error())
	}
}

func TestParse_Integers(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{"int ok", func() error { _, err := Parse[int]("7"); return err }},
		{"int8 range", func() error { _, err := Parse[int8]("200"); return err }},
		{"int16 ok", func() error { _, err := Parse[int16]("-300"); return err }},
		{"int64 ok", func() error { _, err := Parse[int64]("-9007199254740993"); return err }},
		{"uint negative", func() error { _, err := Parse[uint]("-1"); return err }},
		{"uint8 range", func() error { _, err := Parse[uint8]("256"); return err }},
		{"uint64 ok", func() error { _, err := Parse[uint64]("18446744073709551615"); return err }},
		{"uintptr ok", func() error { _, err := Parse[uintptr]("4096"); return err }},
	}
	wantErr := map[string]bool{
		"int8 range": true, "uint negative": true, "uint8 range": true,
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if wantErr[tt.name] {
				wantKind(t, err, kind.Int)
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// TestParse_PrimitiveDeterminism checks that conversion agrees with the
// platform parser on both value and failure for a spread of inputs.
func TestParse_PrimitiveDeterminism(t *testing.T) {
	inputs := []string{"0", "-17", "42", "  5", "5 ", "+8", "0x1f", "abc", "", "128", "-129"}
	for _, s := range inputs {
		t.Run("int8/"+s, func(t *testing.T) {
			want, wantErr := strconv.ParseInt(s, 10, 8)
			got, gotErr := Parse[int8](s)
			if (wantErr == nil) != (gotErr == nil) {
				t.Fatalf("disagree with strconv on %q: strconv err=%v, parse err=%v", s, wantErr, gotErr)
			}
			if wantErr == nil && int8(want) != got {
				t.Fatalf("value mismatch on %q: strconv %d, parse %d", s, want, got)
			}
			if gotErr != nil {
				wantKind(t, gotErr, kind.Int)
			}
		})
	}

	bools := []string{"true", "True", "TRUE", "t", "1", "false", "f", "0", "yes", "no", ""}
	for _, s := range bools {
		t.Run("bool/"+s, func(t *testing.T) {
			want, wantErr := strconv.ParseBool(s)
			got, gotErr := Parse[bool](s)
			if (wantErr == nil) != (gotErr == nil) {
				t.Fatalf("disagree with strconv on %q", s)
			}
			if wantErr == nil && want != got {
				t.Fatalf("value mismatch on %q", s)
			}
			if gotErr != nil {
				wantKind(t, gotErr, kind.Bool)
			}
		})
	}

	floats := []string{"1.5", "-0.25", "1e10", "NaN", "Inf", "nope", ""}
	for _, s := range floats {
		t.Run("float64/"+s, func(t *testing.T) {
			want, wantErr := strconv.ParseFloat(s, 64)
			got, gotErr := Parse[float64](s)
			if (wantErr == nil) != (gotErr == nil) {
				t.Fatalf("disagree with strconv on %q", s)
			}
			// NaN != NaN; compare through formatting.
			if wantErr == nil && strconv.FormatFloat(want, 'g', -1, 64) != strconv.FormatFloat(got, 'g', -1, 64) {
				t.Fatalf("value mismatch on %q", s)
			}
			if gotErr != nil {
				wantKind(t, gotErr, kind.Float)
			}
		})
	}
}

func TestParse_Char(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     Char
		wantErr  bool
		sentinel error
	}{
		{"ascii", "x", 'x', false, nil},
		{"multibyte", "é", 'é', false, nil},
		{"empty", "", 0, true, ErrCharEmpty},
		{"two chars", "ab", 0, true, ErrCharCount},
		{"rune plus byte", "é!", 0, true, ErrCharCount},
		{"invalid utf8", "\xff", 0, true, ErrCharEncoding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse[Char](tt.in)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Parse[Char](%q): %v", tt.in, err)
				}
				if got != tt.want {
					t.Fatalf("Parse[Char](%q) = %q, want %q", tt.in, got, tt.want)
				}
				return
			}
			pe := wantKind(t, err, kind.Char)
			if !errors.Is(pe, tt.sentinel) {
				t.Fatalf("cause = %v, want %v", pe.Cause, tt.sentinel)
			}
		})
	}
}

func TestParse_Rune_IsInt32(t *testing.T) {
	// rune is an alias of int32, so it follows integer parsing.
	got, err := Parse[rune]("65")
	if err != nil {
		t.Fatalf("Parse[rune](65): %v", err)
	}
	if got != 65 {
		t.Fatalf("Parse[rune](65) = %d, want 65", got)
	}
}

func TestParse_Addresses(t *testing.T) {
	t.Run("netip.Addr ok", func(t *testing.T) {
		got, err := Parse[netip.Addr]("192.0.2.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != netip.MustParseAddr("192.0.2.1") {
			t.Fatalf("got %v", got)
		}
	})
	t.Run("netip.Addr bad", func(t *testing.T) {
		_, err := Parse[netip.Addr]("not-an-ip")
		pe := wantKind(t, err, kind.Addr)
		if pe.Error() != "unable to parse as an address" {
			t.Fatalf("rendering = %q", pe.Error())
		}
	})
	t.Run("netip.AddrPort", func(t *testing.T) {
		got, err := Parse[netip.AddrPort]("[2001:db8::1]:443")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Port() != 443 {
			t.Fatalf("port = %d", got.Port())
		}
		_, err = Parse[netip.AddrPort]("2001:db8::1")
		wantKind(t, err, kind.Addr)
	})
	t.Run("netip.Prefix", func(t *testing.T) {
		got, err := Parse[netip.Prefix]("10.0.0.0/8")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Bits() != 8 {
			t.Fatalf("bits = %d", got.Bits())
		}
	})
	t.Run("net.IP", func(t *testing.T) {
		got, err := Parse[net.IP]("203.0.113.9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(net.ParseIP("203.0.113.9")) {
			t.Fatalf("got %v", got)
		}
		_, err = Parse[net.IP]("nope")
		wantKind(t, err, kind.Addr)
	})
	t.Run("net.HardwareAddr", func(t *testing.T) {
		got, err := Parse[net.HardwareAddr]("00:1a:2b:3c:4d:5e")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.String() != "00:1a:2b:3c:4d:5e" {
			t.Fatalf("got %v", got)
		}
		_, err = Parse[net.HardwareAddr]("zz:zz")
		wantKind(t, err, kind.Addr)
	})
}

// onOff is a custom target exercising the TextParser extension point.
type onOff bool

func (f *onOff) ParseText(s string) error {
	switch s {
	case "on":
		*f = true
	case "off":
		*f = false
	default:
		return New("expected on or off, found " + s)
	}
	return nil
}

// opaque is a custom target whose failures are not *Error values.
type opaque struct{}

func (o *opaque) ParseText(s string) error { return errors.New("opaque failure: " + s) }

func TestParse_TextParser(t *testing.T) {
	got, err := Parse[onOff]("on")
	if err != nil {
		t.Fatalf("Parse[onOff](on): %v", err)
	}
	if !bool(got) {
		t.Fatal("on must parse to true")
	}

	_, err = Parse[onOff]("maybe")
	pe := wantKind(t, err, kind.Other)
	if pe.Error() != "expected on or off, found maybe" {
		t.Fatalf("rendering = %q", pe.Error())
	}

	_, err = Parse[opaque]("zzz")
	pe = wantKind(t, err, kind.Dyn)
	if pe.Cause == nil || pe.Cause.Error() != "opaque failure: zzz" {
		t.Fatalf("Dyn must box the original error, got %v", pe.Cause)
	}
}

func TestParse_UnsupportedTarget(t *testing.T) {
	type plain struct{ X int }
	_, err := Parse[plain]("whatever")
	pe := wantKind(t, err, kind.Other)
	if !strings.Contains(pe.Error(), "unsupported target type") {
		t.Fatalf("rendering = %q", pe.Error())
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse[int32]("42"); got != 42 {
		t.Fatalf("MustParse = %d, want 42", got)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustParse on bad input must panic")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("panic payload is %T, want string", r)
		}
		if !strings.HasPrefix(msg, "unable to parse input:\n\t") {
			t.Fatalf("panic message = %q", msg)
		}
		if !strings.Contains(msg, "unable to parse as an integer") {
			t.Fatalf("panic message must include the rendered chain, got %q", msg)
		}
	}()
	MustParse[int32]("abc")
}

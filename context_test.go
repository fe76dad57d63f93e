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
	"testing"

	"dirpx.dev/parsex/kind"
)

func TestParseItem_Success_PassesThrough(t *testing.T) {
	got, err := ParseItem[int32]("5", "x=abc,y=5")
	if err != nil {
		t.Fatalf("ParseItem on valid input: %v", err)
	}
	if got != 5 {
		t.Fatalf("ParseItem = %d, want 5", got)
	}

	s, err := ParseItem[string]("abc", "x=abc")
	if err != nil || s != "abc" {
		t.Fatalf("identity through ParseItem = %q, %v", s, err)
	}
}

func TestParseItem_Failure_WrapsOnce(t *testing.T) {
	_, err := ParseItem[int32]("abc", "x=abc,y=5")
	pe := wantKind(t, err, kind.Context)

	if pe.Input != "x=abc,y=5" || pe.Item != "abc" {
		t.Fatalf("context payload = (%q, %q)", pe.Input, pe.Item)
	}
	inner, ok := pe.Cause.(*Error)
	if !ok {
		t.Fatalf("cause is %T, want *Error", pe.Cause)
	}
	if inner.Kind != kind.Int {
		t.Fatalf("inner kind = %q, want int", inner.Kind)
	}

	// Structural check against an independently built expectation.
	want := &Error{Kind: kind.Context, Input: "x=abc,y=5", Item: "abc", Cause: intErr(t, "abc")}
	if !pe.Equal(want) {
		t.Fatalf("Equal mismatch:\n got: %#v\nwant: %#v", pe, want)
	}
}

func TestWrapItem_NilInNilOut(t *testing.T) {
	if WrapItem(nil, "full", "item") != nil {
		t.Fatal("WrapItem(nil) must be nil")
	}
	if WrapGroup(nil, "group", "elem") != nil {
		t.Fatal("WrapGroup(nil) must be nil")
	}
}

func TestWrapGroup_Failure(t *testing.T) {
	_, err := Parse[int32]("x")
	wrapped := WrapGroup(err, "1,2,x", "x")
	pe := wantKind(t, wrapped, kind.Multi)

	if pe.Input != "1,2,x" || pe.Item != "x" {
		t.Fatalf("multi payload = (%q, %q)", pe.Input, pe.Item)
	}
	want := &Error{Kind: kind.Multi, Input: "1,2,x", Item: "x", Cause: intErr(t, "x")}
	if !pe.Equal(want) {
		t.Fatal("Equal mismatch on multi context")
	}
}

// TestContext_Monotone checks that wrapping never changes the identity
// of the deepest cause and that unwrapping descends one layer at a
// time with no cycles.
func TestContext_Monotone(t *testing.T) {
	leaf := intErr(t, "x")

	var err error = leaf
	texts := []struct{ outer, item string }{
		{"1,2,x", "x"},
		{"v=[1,2,x]", "1,2,x"},
		{"line: v=[1,2,x]", "v=[1,2,x]"},
	}
	for i, tt := range texts {
		if i%2 == 0 {
			err = WrapGroup(err, tt.outer, tt.item)
		} else {
			err = WrapItem(err, tt.outer, tt.item)
		}
	}

	// Each unwrap must reach either another context layer or the leaf.
	steps := 0
	cur := err.(*Error)
	for cur.Kind.Contextual() {
		steps++
		if steps > len(texts) {
			t.Fatal("context chain longer than the number of wraps — cycle?")
		}
		next, ok := cur.Cause.(*Error)
		if !ok {
			t.Fatalf("context cause is %T, want *Error", cur.Cause)
		}
		cur = next
	}
	if steps != len(texts) {
		t.Fatalf("chain depth = %d, want %d", steps, len(texts))
	}
	if cur != leaf {
		t.Fatal("deepest cause must be the original leaf error")
	}
}

func TestWrapping_DoesNotDeduplicate(t *testing.T) {
	leaf := intErr(t, "x")
	once := WrapItem(leaf, "x", "x")
	twice := WrapItem(once, "x", "x")

	pe := twice.(*Error)
	if pe.Kind != kind.Context {
		t.Fatalf("outer kind = %q", pe.Kind)
	}
	inner, ok := pe.Cause.(*Error)
	if !ok || inner.Kind != kind.Context {
		t.Fatal("identical nested context text must not be flattened")
	}
}

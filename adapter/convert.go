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

package adapter

import (
	"dirpx.dev/parsex"
	"dirpx.dev/parsex/apis"
	"dirpx.dev/parsex/kind"
)

// ToView converts a parse error into a public ErrorView: the context
// chain flattened into frames (outermost first) with the leaf failure
// surfaced at the top level. This function performs no redaction or
// filtering; it exposes exactly what the error instance contains. It
// is up to the caller or API layer to decide whether the failing input
// text is safe to return to clients.
func ToView(e *parsex.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}

	frames := Frames(e)
	leaf := e.Leaf()

	return apis.ErrorView{
		Kind:      string(leaf.Kind),
		Message:   e.Error(),
		Expected:  leaf.Expected,
		Found:     leaf.Found,
		WantItems: leaf.WantItems,
		GotItems:  leaf.GotItems,
		Frames:    frames,
	}
}

// ToDescriptor converts a parse error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or
// message bus propagation. It carries both the logical kind and the
// concrete transport statuses (HTTP and gRPC).
func ToDescriptor(e *parsex.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Kind:       string(e.Leaf().Kind),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Error(),
		Depth:      len(Frames(e)),
	}
}

// Frames flattens the context chain of e into view frames, outermost
// wrap first. A leaf error yields nil.
func Frames(e *parsex.Error) []apis.Frame {
	var frames []apis.Frame
	for e != nil && e.Kind.Contextual() {
		frames = append(frames, apis.Frame{
			Input: e.Input,
			Item:  e.Item,
			Group: e.Kind == kind.Multi,
		})
		inner, ok := e.Cause.(*parsex.Error)
		if !ok {
			break
		}
		e = inner
	}
	return frames
}

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

// Frame represents one context layer of a parse failure, from the
// outermost wrap down towards the leaf. This is a *view type* — small,
// transport-friendly, and suitable for JSON or proto mapping.
//
// We keep it in apis so that different parts of the system (HTTP/gRPC
// adapters, loggers) can speak about "where in the input the failure
// happened" without importing the concrete error implementation.
type Frame struct {
	// Input is the surrounding text of this layer: the entire original
	// input for a single-item context, or the whole repeated-group
	// text for a repetition context.
	Input string `json:"input"`

	// Item is the specific sub-slice of Input whose conversion failed.
	Item string `json:"item"`

	// Group is true for repetition-context layers (one element of a
	// repeated group failed) and false for single-item layers.
	Group bool `json:"group,omitempty"`
}

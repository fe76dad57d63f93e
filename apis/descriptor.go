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

// ErrorDescriptor is a flat, transport-friendly description of a parse
// failure together with its resolved transport statuses.
//
// This type intentionally uses strings and ints (not the internal kind
// value type or grpc codes) so that it can live in the public "apis"
// layer and be handed to structured loggers, tracing attributes, or
// message-bus payloads without dragging transport dependencies along.
type ErrorDescriptor struct {
	// Kind is the leaf failure kind, e.g. "int", "literal".
	//
	// Implementations SHOULD store only canonical members of the
	// closed kind set here.
	Kind string `json:"kind"`

	// HTTPStatus is the HTTP status resolved for this failure. A value
	// of 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) resolved for this
	// failure. A value of 0 means OK / "not resolved".
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the fully rendered failure text.
	Message string `json:"message,omitempty"`

	// Depth is the number of context layers that were wrapped around
	// the leaf failure. Zero for an unwrapped failure.
	Depth int `json:"depth,omitempty"`
}

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

// Package statusmap resolves parse failure kinds into transport
// statuses (HTTP and gRPC).
//
// The mapper is built once from library defaults plus caller options
// and then frozen into an immutable snapshot, safe for concurrent use
// and long-lived reuse. Resolution order, highest to lowest:
//
//  1. exact per-kind override (explicitly registered);
//  2. per-kind default (library or user replaced);
//  3. hardcoded ultimate fallback (500 / codes.Internal).
//
// The kind vocabulary is flat and closed, so there is no pattern or
// prefix tier: an override and a default per kind express every
// possible policy.
//
// Adapters should resolve the *leaf* kind of a wrapped failure
// (parsex.Error.Leaf) so that a context-wrapped integer failure maps
// like an integer failure; the context kinds still resolve on their
// own for callers that do not unwrap.
package statusmap

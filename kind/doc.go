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

// Package kind provides the closed vocabulary of parsex failure kinds.
//
// A "kind" is the machine-readable discriminant of a parse error, such
// as "int", "literal" or "context". Kinds are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - suitable for use in JSON/proto payloads and for matching in
//     switch statements at the caller.
//
// Unlike free-form classification schemes, the set of kinds is CLOSED:
// every member is declared in this package and Known() enumerates all
// of them. Application code extends parsex by implementing the
// conversion capability for its own types, never by inventing kinds.
//
// This package defines the canonical representation and the functions
// that convert arbitrary user input to that canonical form.
package kind

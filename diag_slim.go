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

//go:build parsex_slim

package parsex

// diagEnabled is off in the reduced-footprint configuration: Literal
// and Other become payload-free, and WrapItem/WrapGroup return the
// inner error unchanged. Diagnostics are best-effort, never a hard
// dependency of the conversion logic.
const diagEnabled = false

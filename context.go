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

import "dirpx.dev/parsex/kind"

// ParseItem converts one labelled item cut from a larger templated
// input. On failure the error is wrapped in a Context layer carrying
// the entire original input and the failing item, so the caller sees
// where inside full the failure happened.
//
// On success the value passes through untouched. Leaf conversion
// implementations never see the wrapping — composition is entirely the
// caller's concern.
func ParseItem[T any](item, full string) (T, error) {
	v, err := Parse[T](item)
	if err != nil {
		return v, WrapItem(err, full, item)
	}
	return v, nil
}

// WrapItem attaches single-item context to an existing conversion
// failure: full is the entire original input, item the sub-slice whose
// conversion failed.
//
// Nil in, nil out. On failure exactly one Context layer is added per
// call — no flattening, no deduplication — and the underlying cause is
// untouched. Under the parsex_slim build tag wrapping is a no-op and
// the inner error is returned unchanged.
func WrapItem(err error, full, item string) error {
	if err == nil || !diagEnabled {
		return err
	}
	return &Error{Kind: kind.Context, Input: full, Item: item, Cause: FromError(err)}
}

// WrapGroup attaches repetition-item context to an existing conversion
// failure: group is the whole repeated-group text, elem the specific
// element whose conversion failed.
//
// This is applied by the repetition-handling collaborator after it has
// already obtained a result, so it only transforms an existing error
// rather than invoking conversion itself. Same guarantees as WrapItem.
func WrapGroup(err error, group, elem string) error {
	if err == nil || !diagEnabled {
		return err
	}
	return &Error{Kind: kind.Multi, Input: group, Item: elem, Cause: FromError(err)}
}

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

package grpcx

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/parsex"
	"dirpx.dev/parsex/adapter"
	"dirpx.dev/parsex/apis"
)

// Domain is the error-info domain attached to every parse failure
// exposed over gRPC. Clients use it to recognize parsex details among
// other google.rpc.ErrorInfo payloads.
const Domain = "parsex.dirpx.dev"

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that
// maps *parsex.Error into gRPC errors with google.rpc detail payloads.
//
// The provided apis.Mapper is used to map the failure's leaf kind into
// the transport status code; the context chain rides along as a
// BadRequest detail, one field violation per layer.
//
// Errors that are not parse failures are returned as-is.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var pe *parsex.Error
		if !errors.As(err, &pe) {
			// Not ours — return as-is.
			return nil, err
		}

		return nil, StatusError(m, pe)
	}
}

// StatusError converts a parse failure into a gRPC status error with
// detail payloads:
//
//   - errdetails.ErrorInfo with the leaf kind as reason and Domain as
//     domain;
//   - errdetails.BadRequest with one field violation per context
//     layer (absent for unwrapped failures).
//
// If attaching details fails — which can only happen when a payload
// cannot be marshalled — the bare status is returned instead. The
// status code must never be lost to a decoration problem.
func StatusError(m apis.Mapper, pe *parsex.Error) error {
	if pe == nil {
		return nil
	}

	leaf := pe.Leaf()
	st := m.Status(leaf.Kind)
	base := gstatus.New(st.GRPC, pe.Error())

	info := &errdetails.ErrorInfo{
		Reason: strings.ToUpper(string(leaf.Kind)),
		Domain: Domain,
	}

	if br := badRequest(pe); br != nil {
		if with, err := base.WithDetails(info, br); err == nil {
			return with.Err()
		}
	} else if with, err := base.WithDetails(info); err == nil {
		return with.Err()
	}

	return base.Err()
}

// badRequest flattens the context chain into a BadRequest detail.
// Returns nil when the failure carries no context layers.
func badRequest(pe *parsex.Error) *errdetails.BadRequest {
	frames := adapter.Frames(pe)
	if len(frames) == 0 {
		return nil
	}
	leafLine := pe.Leaf().Error()

	br := &errdetails.BadRequest{}
	for _, f := range frames {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       f.Item,
			Description: leafLine,
		})
	}
	return br
}

// ExtractErrorInfo pulls the parsex ErrorInfo detail out of a gRPC
// error, if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := statusOf(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok && ei.GetDomain() == Domain {
			return ei, true
		}
	}
	return nil, false
}

// ExtractBadRequest pulls the BadRequest detail out of a gRPC error,
// if present.
func ExtractBadRequest(err error) (*errdetails.BadRequest, bool) {
	st, ok := statusOf(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			return br, true
		}
	}
	return nil, false
}

func statusOf(err error) (*gstatus.Status, bool) {
	if err == nil {
		return nil, false
	}
	return gstatus.FromError(err)
}

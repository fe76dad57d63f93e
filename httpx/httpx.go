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

package httpx

import (
	"net/http"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/parsex"
	"dirpx.dev/parsex/adapter"
	"dirpx.dev/parsex/apis"
)

// Domain is the error-info domain attached to every parse failure
// exposed over HTTP. It matches the gRPC surface so clients can share
// detail-recognition logic across transports.
const Domain = "parsex.dirpx.dev"

// marshal is the options set for rendering the response body.
//
// IMPORTANT: protojson output is not byte-stable across library
// versions. Options are pinned explicitly so that a behavior change
// upstream surfaces as a test failure here rather than as a silent
// wire change.
var marshal = protojson.MarshalOptions{
	UseProtoNames:   false,
	EmitUnpopulated: false,
}

// Writer renders parse failures as HTTP responses carrying a
// google.rpc.Status JSON body. The zero value is not usable; Mapper
// must be set.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves the failure's leaf kind through the mapper and writes
// the response: mapper-resolved HTTP status, application/json content
// type, and a google.rpc.Status body with the same detail payloads the
// gRPC surface attaches (ErrorInfo plus, for wrapped failures, a
// BadRequest with one field violation per context layer).
//
// A nil error writes nothing and reports false. The boolean result
// tells the caller whether a response was produced.
func (w Writer) Write(rw http.ResponseWriter, err *parsex.Error) bool {
	if err == nil {
		return false
	}

	leaf := err.Leaf()
	st := w.Mapper.Status(leaf.Kind)

	body := &spb.Status{
		Code:    int32(st.GRPC),
		Message: err.Error(),
	}

	info := &errdetails.ErrorInfo{
		Reason: strings.ToUpper(string(leaf.Kind)),
		Domain: Domain,
	}
	if a, aerr := anypb.New(info); aerr == nil {
		body.Details = append(body.Details, a)
	}
	if br := badRequest(err); br != nil {
		if a, aerr := anypb.New(br); aerr == nil {
			body.Details = append(body.Details, a)
		}
	}

	buf, merr := marshal.Marshal(body)
	if merr != nil {
		// Marshalling a status can only fail on a broken detail
		// payload. Fall back to a bare status line.
		http.Error(rw, err.Error(), st.HTTP)
		return true
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(buf)
	return true
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

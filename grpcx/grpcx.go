/*
   Copyright 2025 The TYL Authors

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

// Package grpcx renders tyl-errors over gRPC using the standard
// google.rpc error details: ErrorInfo carries the kind, category and
// context metadata, and RetryInfo carries the backoff hint for retriable
// errors.
package grpcx

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"

	tylerrors "github.com/the-yaml-life/tyl-errors"
	"github.com/the-yaml-life/tyl-errors/apis"
	"github.com/the-yaml-life/tyl-errors/kind"
)

// Domain is the value placed into google.rpc.ErrorInfo.domain for errors
// produced by this library.
const Domain = "tyl-errors"

// Metadata keys used inside google.rpc.ErrorInfo.metadata. Context
// annotations are carried under their own keys next to these.
const (
	metaKind     = "kind"
	metaCategory = "category"
	metaErrorID  = "error_id"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// tylerrors.Error into gRPC status errors with google.rpc details.
//
// The provided apis.Mapper resolves the (kind, category) pair into a
// transport status code. ErrorInfo is always attached; RetryInfo is attached
// only for retriable errors, using the error's own first-attempt delay.
//
// Errors that do not carry a tylerrors.Error anywhere in their chain are
// returned as-is.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var de *tylerrors.Error
		if !errors.As(err, &de) {
			// Not ours — return as-is.
			return nil, err
		}

		return nil, ToStatusError(m, de)
	}
}

// ToStatusError converts a single error into a gRPC status error with
// details attached. Exposed for handlers that build responses outside the
// interceptor.
func ToStatusError(m apis.Mapper, de *tylerrors.Error) error {
	st := m.Status(de.Kind, de.ErrorCategory())
	base := gstatus.New(st.GRPC, de.Message)

	info := &errdetails.ErrorInfo{
		Reason:   infoReason(de.ErrorCategory()),
		Domain:   Domain,
		Metadata: infoMetadata(de),
	}

	if de.Retriable() {
		retry := &errdetails.RetryInfo{
			RetryDelay: durationpb.New(de.RetryAfter(0)),
		}
		if with, err := base.WithDetails(info, retry); err == nil {
			return with.Err()
		}
	} else if with, err := base.WithDetails(info); err == nil {
		return with.Err()
	}

	// Detail attachment failed; the status code and message still stand.
	return base.Err()
}

// FromStatus reconstructs a tylerrors.Error from a gRPC status error
// produced by this package. The kind is recovered from ErrorInfo metadata;
// custom classifications degrade to the default fallback, mirroring the
// JSON wire format. Returns (nil, false) for foreign errors.
func FromStatus(err error) (*tylerrors.Error, bool) {
	info, ok := ExtractErrorInfo(err)
	if !ok || info.GetDomain() != Domain {
		return nil, false
	}
	st, _ := gstatus.FromError(err)

	k, perr := kind.Parse(info.GetMetadata()[metaKind])
	if perr != nil {
		k = kind.Internal
	}

	e := &tylerrors.Error{Kind: k, Message: st.Message()}
	for key, value := range info.GetMetadata() {
		switch key {
		case metaKind, metaCategory, metaErrorID:
		default:
			e = e.WithMetadata(key, value)
		}
	}
	return e, true
}

// ExtractErrorInfo pulls google.rpc.ErrorInfo out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// ExtractRetryInfo pulls google.rpc.RetryInfo out of a gRPC error, if
// present.
func ExtractRetryInfo(err error) (*errdetails.RetryInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if retry, ok := d.(*errdetails.RetryInfo); ok {
			return retry, true
		}
	}
	return nil, false
}

// infoReason formats a category name as an ErrorInfo reason:
// UPPER_SNAKE_CASE with dots folded to underscores, per the google.rpc
// conventions.
func infoReason(category string) string {
	return strings.ToUpper(strings.ReplaceAll(category, ".", "_"))
}

// infoMetadata flattens the error's identity and context annotations into
// the string map carried by ErrorInfo.
func infoMetadata(de *tylerrors.Error) map[string]string {
	md := map[string]string{
		metaKind:     de.ErrorKind(),
		metaCategory: de.ErrorCategory(),
	}
	if ctx := de.Context; ctx != nil {
		md[metaErrorID] = ctx.ID().String()
		for _, p := range ctx.Metadata() {
			if _, taken := md[p.Key]; !taken {
				md[p.Key] = p.Value
			}
		}
	}
	return md
}

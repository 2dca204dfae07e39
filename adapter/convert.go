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

// Package adapter converts domain-level errors into the portable view types
// declared in apis. HTTP and gRPC layers share these converters so a single
// failure renders identically on both transports.
package adapter

import (
	tylerrors "github.com/the-yaml-life/tyl-errors"
	"github.com/the-yaml-life/tyl-errors/apis"
)

// ToDescriptor converts a domain-level error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the logical kind/category and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(e *tylerrors.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Kind:       e.ErrorKind(),
		Category:   e.ErrorCategory(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message,
	}
}

// ToView converts a domain-level error into a public ErrorView. This
// function performs no automatic redaction or filtering; it exposes exactly
// what the error instance contains, including its context metadata. It is up
// to the caller or API layer to decide whether to redact sensitive keys.
func ToView(e *tylerrors.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Kind:      e.ErrorKind(),
		Category:  e.ErrorCategory(),
		Retriable: e.Retriable(),
		Message:   e.Message,
	}
	if ctx := e.Context; ctx != nil {
		v.ErrorID = ctx.ID().String()
		v.OccurredAt = ctx.OccurredAt()
		if pairs := ctx.Metadata(); len(pairs) > 0 {
			v.Annotations = make([]apis.Annotation, len(pairs))
			for i, p := range pairs {
				v.Annotations[i] = apis.Annotation{Key: p.Key, Value: p.Value}
			}
		}
	}
	return v
}

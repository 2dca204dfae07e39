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

package apis

// ErrorDescriptor is a flat, transport-friendly description of a known
// (kind, category) pair.
//
// This type intentionally uses strings (not the internal kind value type) so
// that it can live in the public "apis" layer and be used by adapters (HTTP,
// gRPC) and by user-defined registries.
//
// Implementations may choose to store a richer descriptor internally, but
// this shape is what the rest of the system can rely on.
type ErrorDescriptor struct {
	// Kind is the canonical kind tag, e.g. "validation", "not_found",
	// "database".
	//
	// Implementations SHOULD store only normalized, validated tags here.
	Kind string `json:"kind"`

	// Category is the classification's display name, e.g. "rate_limited",
	// "circuit_open".
	//
	// It MAY be empty when the descriptor applies to the whole kind.
	Category string `json:"category,omitempty"`

	// HTTPStatus is an optional HTTP status that should be used when this
	// (kind, category) is exposed over HTTP. A value of 0 means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is an optional gRPC status code (as integer) that should be
	// used when this (kind, category) is exposed over gRPC. A value of 0
	// means "not specified".
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is an optional human-friendly default message or template that
	// can be used when the error instance itself did not provide one.
	Message string `json:"message,omitempty"`
}

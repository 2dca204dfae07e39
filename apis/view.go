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

import "time"

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
//
// This is useful for HTTP/gRPC adapters that want to send "the canonical form"
// of the error to the client without having to know about the concrete error
// type.
//
// The returned view MUST be safe to marshal (to JSON/proto) and SHOULD contain
// all information that is safe to disclose to the client.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable representation of an error.
//
// This is *not* the concrete error type used internally — it is the shape
// that we are comfortable exposing over the wire or logging. Keeping it here
// (in apis) allows both HTTP and gRPC adapters to share the same struct.
type ErrorView struct {
	// Kind is the canonical kind tag, e.g. "validation", "not_found".
	//
	// Implementations SHOULD store only normalized, validated tags here.
	Kind string `json:"kind"`
	// Category is the display name of the retry classification. For
	// built-in kinds it equals Kind; for custom errors it is whatever the
	// owned classifier reports.
	Category string `json:"category,omitempty"`
	// Retriable mirrors the classification's verdict so clients can decide
	// to retry without understanding the category name.
	Retriable bool `json:"retriable"`
	// Message is an optional human-friendly message.
	Message string `json:"message,omitempty"`
	// ErrorID is the unique identity from the error's context, if present.
	ErrorID string `json:"error_id,omitempty"`
	// OccurredAt is the failure time from the error's context, if present.
	OccurredAt time.Time `json:"occurred_at,omitzero"`
	// Annotations is the ordered diagnostic metadata, if present.
	Annotations []Annotation `json:"annotations,omitempty"`
}

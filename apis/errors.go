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

// KindedError represents an error that is classified into a well-defined,
// machine-readable error *kind*.
//
// The kind set is closed:
//   - "database"    — a datastore operation failed,
//   - "network"     — transport-level failure,
//   - "validation"  — input failed validation,
//   - "not_found"   — a referenced object does not exist,
//   - "internal"    — unexpected server-side failure,
//   - "custom"      — caller-defined classification.
//
// Kinds are stable and enumerable. They are the primary value that
// higher-level adapters (HTTP, gRPC) use to decide which status code to
// return to the client.
//
// Implementations are expected to return the *canonical* kind tag — i.e.
// normalized to the format enforced by the kind package (lowercase,
// underscores). Adapters should treat unknown or empty kinds as internal
// errors.
type KindedError interface {
	error

	// ErrorKind returns the machine-readable kind tag.
	//
	// The returned value MUST be non-empty and MUST already be normalized.
	// Callers should not try to "fix" or "guess" the value here — if it's
	// invalid, it should be handled as an internal error at the boundary.
	ErrorKind() string
}

// CategorizedError represents an error that exposes the display name of its
// retry classification in addition to the kind tag.
//
// While the kind answers "what kind of error is this?", the category name
// answers "which classification decides its retry behavior?". For built-in
// kinds the two coincide; for custom errors the category name is whatever
// the caller's classifier reports (e.g. "rate_limited", "circuit_open").
//
// Having a separate interface lets code degrade gracefully: if an error does
// not expose a category, the caller can still act on the kind.
type CategorizedError interface {
	error

	// ErrorCategory returns the classification's display name.
	//
	// The returned value MAY equal the kind tag for built-in kinds. Callers
	// should be prepared for arbitrary names on custom errors.
	ErrorCategory() string
}

// RetriableError represents an error whose classification can drive a retry
// loop. Both methods are pure decision primitives: nothing here sleeps or
// counts attempts.
type RetriableError interface {
	error

	// Retriable reports whether retrying this class of failure can ever help.
	Retriable() bool

	// RetryAfter returns the suggested wait before the given 0-indexed
	// attempt. Non-retriable errors return zero.
	RetryAfter(attempt int) time.Duration
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// us work with wrapped errors in places where we want to keep the contract
// explicit rather than depend on errors.As / errors.Is directly.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Unwrap returns the underlying error that triggered this error, if any.
	// May return nil.
	Unwrap() error
}

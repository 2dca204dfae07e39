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

// Package tylerrors is the canonical rich error type for TYL services: a
// closed taxonomy of error kinds, pluggable retry classification, and a
// diagnostic context that travels with the error value.
package tylerrors

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/the-yaml-life/tyl-errors/category"
	"github.com/the-yaml-life/tyl-errors/kind"
)

// Error is the aggregate error value.
//
// It carries:
//   - Kind: which member of the closed taxonomy this failure is (required);
//   - Message: human-oriented description (what went wrong);
//   - Context: optional diagnostic metadata (identity, timestamp, key/value
//     annotations, cause chain);
//   - Cause: wrapped underlying Go error for errors.Is / errors.As;
//   - a classifier, present only when Kind is kind.Custom.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances can
// be safely shared and modified in a functional style. Once constructed, an
// Error is a terminal fact about a failure: it has no state transitions.
type Error struct {
	// Kind is the primary classification of the error. Must be a member of
	// the closed set in the kind package.
	Kind kind.Kind

	// Message is a human-readable explanation. This is what should end up
	// in logs or in the "message" field of a serialized error.
	Message string

	// Context is optional diagnostic metadata. Treated as immutable:
	// WithMetadata always produces a new Context value.
	Context *Context

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers. It does not
	// serialize; durable cause history belongs in the Context chain.
	Cause error

	// classifier is owned exclusively by this value and set only for
	// kind.Custom. Built-in kinds resolve classification by table lookup,
	// never from stored state.
	classifier category.Classifier
}

// Option is a functional option applied at construction time; see option.go.
type Option func(*Error) *Error

// Database creates a database-kind error for a failed datastore operation.
func Database(operation, message string, opts ...Option) *Error {
	return newError(kind.Database, fmt.Sprintf("%s: %s", operation, message), opts)
}

// Network creates a network-kind error.
func Network(message string, opts ...Option) *Error {
	return newError(kind.Network, message, opts)
}

// Validation creates a validation-kind error for a specific field.
func Validation(field, message string, opts ...Option) *Error {
	return newError(kind.Validation, fmt.Sprintf("%s: %s", field, message), opts)
}

// NotFound creates a not_found-kind error for a missing resource.
func NotFound(resource, id string, opts ...Option) *Error {
	return newError(kind.NotFound, fmt.Sprintf("%s with id %s not found", resource, id), opts)
}

// Internal creates an internal-kind error. Use it as the fallback when no
// more specific kind applies.
func Internal(message string, opts ...Option) *Error {
	return newError(kind.Internal, message, opts)
}

// Custom creates an error whose classification is supplied by the caller.
// The classifier is owned by the returned value: cloning the error clones
// the classifier, and nothing else ever aliases it.
//
// A nil classifier is accepted and resolves to category.Default(), the same
// fallback used when a custom error is decoded from the wire.
func Custom(message string, c category.Classifier, opts ...Option) *Error {
	e := &Error{Kind: kind.Custom, Message: message, classifier: c}
	return applyOptions(e, opts)
}

// Parsing creates a validation error on the well-known "parsing" field.
func Parsing(message string, opts ...Option) *Error {
	return Validation("parsing", message, opts...)
}

// Serialization creates an internal error for encode/decode failures.
func Serialization(message string, opts ...Option) *Error {
	return newError(kind.Internal, "serialization error: "+message, opts)
}

// Connection creates a network error for connection-establishment failures.
func Connection(message string, opts ...Option) *Error {
	return newError(kind.Network, "connection error: "+message, opts)
}

// Initialization creates an internal error for startup/bootstrap failures.
func Initialization(message string, opts ...Option) *Error {
	return newError(kind.Internal, "initialization error: "+message, opts)
}

func newError(k kind.Kind, message string, opts []Option) *Error {
	return applyOptions(&Error{Kind: k, Message: message}, opts)
}

func applyOptions(e *Error, opts []Option) *Error {
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <message>
//
// This makes the error both human- and machine-scannable in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Category resolves the classification for this error.
//
// Built-in kinds dispatch to the shared table entry for the kind tag; Custom
// returns the owned classifier. A Custom error without a classifier (decoded
// from the wire, or constructed with nil) resolves to category.Default().
// This indirection is the sole mechanism for extending classification
// without modifying the closed taxonomy.
func (e *Error) Category() category.Classifier {
	if e.Kind == kind.Custom && e.classifier != nil {
		return e.classifier
	}
	return category.ForKind(e.Kind)
}

// ShouldRetry reports whether the caller's retry loop should try again,
// combining the category's retriability with the process-wide attempt budget
// (TYL_ERROR_MAX_RETRIES, default 3). attempt is the 0-indexed count of
// prior failed attempts.
func (e *Error) ShouldRetry(attempt int) bool {
	return e.Category().IsRetriable() && attempt >= 0 && attempt < Settings().MaxRetries
}

// ErrorKind returns the kind tag as a string. Adapters use this to stay
// decoupled from the concrete type.
func (e *Error) ErrorKind() string {
	if e == nil {
		return ""
	}
	return e.Kind.String()
}

// ErrorCategory returns the classification's display name.
func (e *Error) ErrorCategory() string {
	if e == nil {
		return ""
	}
	return e.Category().Name()
}

// Retriable reports the classification's verdict on whether retrying can
// ever help.
func (e *Error) Retriable() bool { return e.Category().IsRetriable() }

// RetryAfter returns the classification's suggested wait before the given
// 0-indexed attempt. Zero for non-retriable errors.
func (e *Error) RetryAfter(attempt int) time.Duration {
	return e.Category().RetryDelay(attempt)
}

// Clone returns a deep copy: the classifier is duplicated via its Clone
// method and the context chain is copied, so the two values share no mutable
// state and can be inspected concurrently without coordination.
func (e *Error) Clone() *Error {
	if e == nil {
		return nil
	}
	cp := *e
	if e.classifier != nil {
		cp.classifier = e.classifier.Clone()
	}
	if e.Context != nil {
		cp.Context = e.Context.clone()
	}
	return &cp
}

// WithContext returns a shallow copy of e with the given context attached.
// The original error is not modified.
func (e *Error) WithContext(ctx *Context) *Error {
	cp := *e
	cp.Context = ctx
	return &cp
}

// WithMetadata returns a shallow copy of e whose context carries one more
// key/value annotation. A context is created on first use.
func (e *Error) WithMetadata(key, value string) *Error {
	cp := *e
	if cp.Context == nil {
		cp.Context = NewContext()
	}
	cp.Context = cp.Context.WithMetadata(key, value)
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// errorJSON is the wire shape of an Error: kind tag, message, and optional
// context. The classifier and the Go-level cause are intentionally absent —
// built-in classifications are stateless singletons identified by the kind
// tag, and custom classifiers are type-erased values with no structural
// representation.
type errorJSON struct {
	Kind    kind.Kind `json:"kind"`
	Message string    `json:"message"`
	Context *Context  `json:"context,omitempty"`
}

// MarshalJSON implements json.Marshaler; see errorJSON for the shape.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorJSON{Kind: e.Kind, Message: e.Message, Context: e.Context})
}

// UnmarshalJSON implements json.Unmarshaler.
//
// Classification is re-resolved from the kind tag on the next Category call:
// exact for built-in kinds, category.Default() for custom. That fallback is
// a permanent information-loss boundary of the wire format, not a decoding
// failure.
func (e *Error) UnmarshalJSON(data []byte) error {
	var w errorJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.Kind = w.Kind
	e.Message = w.Message
	e.Context = w.Context
	e.Cause = nil
	e.classifier = nil
	return nil
}

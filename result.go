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

package tylerrors

import (
	"errors"

	"github.com/the-yaml-life/tyl-errors/kind"
)

// Result pairs a value with the library's error type so call sites read as
// (value, *Error) rather than (value, error). Idiomatic Go still prefers the
// two-value return; Result exists for tables, channels, and batch APIs where
// a single slot must carry both outcomes.
type Result[T any] struct {
	Value T
	Err   *Error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fail wraps a failed outcome.
func Fail[T any](err *Error) Result[T] {
	return Result[T]{Err: err}
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool { return r.Err == nil }

// Unpack converts back to the conventional two-value form.
func (r Result[T]) Unpack() (T, *Error) { return r.Value, r.Err }

// From converts an arbitrary error into the library's error type.
//
// A nil error stays nil. An *Error (possibly wrapped) passes through
// unchanged via errors.As, so classification and context survive; anything
// else becomes an internal-kind error carrying the original as cause.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err.Error(), WithCauseOption(err))
}

// Wrap is From with a message prefix: foreign errors become internal-kind
// errors described by msg, library errors pass through unchanged.
func Wrap(err error, msg string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(msg+": "+err.Error(), WithCauseOption(err))
}

// WrapAs converts a foreign error into an error of the given kind. Library
// errors pass through unchanged; use it at boundaries where the failure
// domain is known (a driver error at the repository layer, a dial error in a
// client).
func WrapAs(err error, k kind.Kind, msg string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if kind.Validate(k) != nil || k == kind.Custom {
		k = kind.Internal
	}
	return &Error{
		Kind:    k,
		Message: msg + ": " + err.Error(),
		Cause:   err,
	}
}

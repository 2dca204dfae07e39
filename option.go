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

// WithContextOption attaches a context on construction.
// Intended to be used with the factory functions.
func WithContextOption(ctx *Context) Option {
	return func(e *Error) *Error {
		return e.WithContext(ctx)
	}
}

// WithMetadataOption adds a single metadata key/value on construction,
// creating a context if the error has none yet.
// Intended to be used with the factory functions.
func WithMetadataOption(key, value string) Option {
	return func(e *Error) *Error {
		return e.WithMetadata(key, value)
	}
}

// WithCauseOption attaches an underlying cause on construction.
// Intended to be used with the factory functions.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}

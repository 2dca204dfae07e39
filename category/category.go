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

package category

import (
	"time"

	"github.com/the-yaml-life/tyl-errors/kind"
)

// Classifier is the polymorphic contract every failure category satisfies:
// the five built-in kinds through the constant table in this package, and
// user-defined categories through values passed to the Custom factory.
//
// All methods must be pure: no side effects, and for a given receiver state
// the same inputs always produce the same outputs. Implementations are
// queried from arbitrary goroutines without coordination.
type Classifier interface {
	// IsRetriable reports whether failures in this category are worth
	// retrying at all. Callers must check this before acting on RetryDelay.
	IsRetriable() bool

	// RetryDelay computes the suggested wait before the next attempt.
	// attempt is the 0-indexed count of prior failed attempts. The function
	// is total: non-retriable categories return a defined value (zero)
	// rather than panicking, and large attempt counts saturate instead of
	// overflowing.
	RetryDelay(attempt int) time.Duration

	// Name is a stable display identifier for the category. Uniqueness
	// across custom implementations is not enforced and must not be
	// assumed by callers.
	Name() string

	// Clone produces an independent copy with no shared mutable state.
	// Required because classifiers are stored as type-erased values inside
	// error values: cloning an error must not alias classifier state
	// across the copies.
	Clone() Classifier
}

// ForKind resolves the built-in classification for a kind tag.
//
// Unknown tags and kind.Custom resolve to Default: the former should not
// happen for validated kinds, and the latter by definition has no table
// entry — its classification lives on the error value itself.
func ForKind(k kind.Kind) Classifier {
	if c, ok := table[k]; ok {
		return c
	}
	return Default()
}

// Default returns the fallback classification: non-retriable, zero delay,
// named after kind.Internal.
//
// This is the documented information-loss boundary for serialization: a
// decoded Custom error has no classifier (classifiers never serialize), so
// its category resolves here instead of failing the decode.
func Default() Classifier {
	return table[kind.Internal]
}

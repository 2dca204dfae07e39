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

// builtin is the shared, stateless classification for a built-in kind.
//
// It is a value type on purpose: every ForKind/Clone call hands out a copy,
// so no caller can ever observe another caller's instance. There is nothing
// mutable inside, which is what lets the table below be plain package-level
// data with no init/teardown lifecycle.
type builtin struct {
	// name is the stable display identifier; it matches the kind tag.
	name string

	// retriable marks the category as worth retrying at all.
	retriable bool

	// base and max bound the exponential backoff schedule. Both are zero
	// for non-retriable categories, whose RetryDelay is a constant zero.
	base time.Duration
	max  time.Duration
}

// table maps built-in kind tags to their classification.
//
// Backoff parameters (factor is fixed at 2 for every retriable kind):
//
//	database:  retriable, 50ms base, 5s cap
//	network:   retriable, 100ms base, 10s cap
//	validation, not_found, internal: not retriable
//
// kind.Custom deliberately has no entry — custom classification is owned by
// the error value, never looked up here.
var table = map[kind.Kind]builtin{
	kind.Database:   {name: "database", retriable: true, base: 50 * time.Millisecond, max: 5 * time.Second},
	kind.Network:    {name: "network", retriable: true, base: 100 * time.Millisecond, max: 10 * time.Second},
	kind.Validation: {name: "validation"},
	kind.NotFound:   {name: "not_found"},
	kind.Internal:   {name: "internal"},
}

// IsRetriable implements Classifier.
func (b builtin) IsRetriable() bool { return b.retriable }

// RetryDelay implements Classifier.
//
// For retriable categories the schedule is min(base << attempt, max),
// saturating at the cap. Non-retriable categories return zero so the
// capability stays total; callers must consult IsRetriable first.
func (b builtin) RetryDelay(attempt int) time.Duration {
	if !b.retriable {
		return 0
	}
	return saturatingBackoff(b.base, b.max, attempt)
}

// Name implements Classifier.
func (b builtin) Name() string { return b.name }

// Clone implements Classifier. The value receiver already copies, so the
// returned instance shares nothing with the original.
func (b builtin) Clone() Classifier { return b }

// saturatingBackoff doubles base attempt times, clamping at max.
//
// The loop exits as soon as the next doubling would reach the cap, so the
// cost is bounded by log2(max/base) regardless of how large attempt is, and
// the multiplication can never overflow.
func saturatingBackoff(base, max time.Duration, attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if base <= 0 {
		return 0
	}
	if base >= max {
		return max
	}
	d := base
	for i := 0; i < attempt; i++ {
		if d >= max/2 {
			return max
		}
		d *= 2
	}
	if d > max {
		return max
	}
	return d
}

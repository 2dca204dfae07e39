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

// Package category defines the classification capability that drives retry
// decisions in tyl-errors.
//
// # The capability
//
// A Classifier answers four questions about a failure category: is it worth
// retrying, how long to wait before attempt N, what the category is called,
// and how to produce an independent copy. Everything is pure computation —
// this package never sleeps, loops, or schedules; executing retries is the
// caller's job.
//
// # Built-in vs custom
//
// The five built-in kinds resolve to fixed, stateless entries in a constant
// table (ForKind). Only errors tagged kind.Custom carry their own Classifier
// value, supplied by the caller; that is the taxonomy's single extension
// point. Default returns the documented fallback classification used when a
// custom error is decoded from the wire and its classifier is gone:
// non-retriable, internal-equivalent.
//
// # Backoff
//
// Built-in delays follow delay = min(base << attempt, cap) with attempt
// counting prior failed attempts from zero. The computation saturates at the
// cap instead of overflowing, so arbitrarily large attempt counts are safe.
//
// RetryPolicy is the caller-tunable counterpart: a value type with the same
// pure-computation contract but configurable curve, cap, attempt budget and
// optional jitter.
package category

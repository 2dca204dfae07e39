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

// Package mapper provides deterministic, immutable mappings from logical
// error kinds (github.com/the-yaml-life/tyl-errors/kind) and optional
// category names to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// In tyl-errors a failure is expressed in two parts:
//
//  1. a high-level Kind from the closed taxonomy (e.g. kind.Database,
//     kind.Validation),
//  2. an optional, more specific category name reported by the error's
//     classification (e.g. "upstream.rate_limited").
//
// Transport layers (HTTP handlers, gRPC servers) need to turn this pair
// into concrete status codes. Package mapper does that in a way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per Kind;
//   - prefix-aware — callers can add fine-grained rules for specific
//     category names;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Kind;
//  2. per-Kind longest-prefix-match (LPM) on the category name;
//  3. per-Kind default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware: category names are treated as
// "."-separated segments, and "*" matches exactly one segment. For example:
//
//	WithHTTPPrefix(kind.Custom, "upstream.rate_limited", http.StatusTooManyRequests)
//	WithHTTPPrefix(kind.Custom, "upstream.*.throttled", http.StatusTooManyRequests)
//
// The more specific prefix wins.
//
// # Library defaults
//
// The package ships with defaults for the whole taxonomy: the retriable
// kinds (database, network) map to 503 / Unavailable so clients back off,
// validation maps to 400 / InvalidArgument, not_found to 404 / NotFound,
// internal to 500 / Internal, and custom to 500 / Unknown until a prefix
// rule teaches the mapper about the category.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(kind.Network, http.StatusBadGateway),
//	    mapper.WithHTTPPrefix(kind.Custom, "rate_limited", http.StatusTooManyRequests),
//	)
//	if err != nil {
//	    // invalid prefix, etc.
//	}
//
//	st := m.Status(kind.Custom, "rate_limited")
//	// st.HTTP == 429, st.GRPC == codes.Unknown
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a particular (kind, category) was resolved, including which tier
// matched and, for prefixes, which pattern was used.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's maps or slices.
// This makes it safe to share a single instance across handlers, goroutines,
// and requests.
package mapper

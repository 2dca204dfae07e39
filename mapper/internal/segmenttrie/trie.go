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

// Package segmenttrie implements a segment-aware prefix index for
// dot-separated category names. It backs the mapper's longest-prefix-match
// rules.
package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated keys (category
// names). Each node represents one segment; the wildcard "*" matches exactly
// one segment. The trie supports longest-prefix-match (LPM) with segment
// boundaries, so a more specific rule wins over a shorter one.
type Trie[T any] struct {
	// children contains next segments, including "*" for a single-segment wildcard.
	children map[string]*Trie[T]
	// hasVal marks that this node carries a value for the prefix ending here.
	hasVal bool
	val    T
	// pattern is the canonical dotted prefix (with '*' if wildcard was used)
	// for this node, set only when hasVal=true. It is reported by
	// MatchWithPattern for Explain(), so lookups never build strings.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty segments, contains invalid characters, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a dot-separated prefix to the trie and associates it with val.
//
// Examples:
//
//	"rate_limited"
//	"upstream.circuit_open"
//	"upstream.*.throttled"
//
// The wildcard "*" matches exactly one segment. A prefix made only of "*"
// segments is rejected, because it is too generic. Returns ErrInvalidPrefix
// on malformed input.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := splitAndValidate(prefix)
	if !ok || len(segs) == 0 {
		return ErrInvalidPrefix
	}

	// Require at least one non-wildcard segment to avoid catching everything.
	allWild := true
	for _, s := range segs {
		if s != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	if cur.pattern == "" {
		// build pattern once; cost is at build time, not on hot path
		cur.pattern = prefix
	}
	return nil
}

// Match finds the best (deepest) prefix match for a full category name and
// returns (value, true) on success. If the name is invalid or nothing
// matches, it returns the zero value and false.
func (t *Trie[T]) Match(name string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(name)
	return v, ok
}

// MatchWithPattern is Match plus the stored rule pattern, for Explain().
//
// The name is treated as a dot-separated sequence of segments. Both exact
// segment matches and "*" wildcard branches are explored; the deepest node
// carrying a value wins. Segments are parsed in place from the input string,
// so the traversal does not allocate.
func (t *Trie[T]) MatchWithPattern(name string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	bestDepth := -1
	var bestVal T
	var bestPat string

	// dfs scans the next segment starting at byte offset off, with depth
	// segments already consumed.
	var dfs func(n *Trie[T], off, depth int)
	dfs = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if off >= len(name) {
			return
		}

		// parse next segment [off:end), validating [a-z][a-z0-9_]*
		end, ok := scanSegment(name, off)
		if !ok {
			return
		}
		seg := name[off:end] // substring; no heap alloc
		nextOff := end
		if nextOff < len(name) && name[nextOff] == '.' {
			nextOff++
		}

		if next, ok := n.children[seg]; ok {
			dfs(next, nextOff, depth+1)
		}
		if next, ok := n.children["*"]; ok {
			dfs(next, nextOff, depth+1)
		}
	}

	dfs(t, 0, 0)
	if bestDepth < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// scanSegment returns the end offset of the segment starting at off, or
// ok=false if the segment is malformed.
func scanSegment(s string, off int) (int, bool) {
	i := off
	c := s[i]
	if c < 'a' || c > 'z' {
		return 0, false
	}
	i++
	for i < len(s) {
		c = s[i]
		if c == '.' {
			break
		}
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_') {
			return 0, false
		}
		i++
	}
	return i, true
}

// splitAndValidate splits a dot-separated string into segments and validates
// each segment. A segment that is exactly "*" is accepted.
// Returns (segments, true) on success, or (nil, false) on invalid input.
func splitAndValidate(s string) ([]string, bool) {
	if s == "" {
		return []string{}, true
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if !validSegment(seg) {
			return nil, false
		}
	}
	return segs, true
}

// validSegment reports whether seg is a valid trie segment.
// Rules:
//   - empty segments are invalid;
//   - the segment "*" is allowed;
//   - otherwise the segment must match: [a-z][a-z0-9_]*
//
// These rules keep category prefixes simple, predictable and easy to
// normalize.
func validSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return true
	}
	// [a-z][a-z0-9_]*
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}

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

package segmenttrie

import "testing"

func TestInsertAndMatch_Simple(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("rate_limited", 429))
	must(t, tr.Insert("upstream.circuit_open", 503))
	must(t, tr.Insert("upstream.payments.declined", 402))

	if v, ok, p := tr.MatchWithPattern("rate_limited.burst"); !ok || v != 429 || p != "rate_limited" {
		t.Fatalf("match rate_limited.burst => ok=%v v=%v p=%q; want ok=true v=429 p=rate_limited", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("upstream.circuit_open"); !ok || v != 503 || p != "upstream.circuit_open" {
		t.Fatalf("match upstream.circuit_open => ok=%v v=%v p=%q; want ok=true v=503", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("upstream.payments.declined.card"); !ok || v != 402 || p != "upstream.payments.declined" {
		t.Fatalf("match declined.card => ok=%v v=%v p=%q; want 402, upstream.payments.declined", ok, v, p)
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("upstream.*.throttled", 429))
	must(t, tr.Insert("upstream.payments.throttled", 503)) // exact should beat wildcard at same depth

	// exact match wins
	if v, ok, p := tr.MatchWithPattern("upstream.payments.throttled"); !ok || v != 503 || p != "upstream.payments.throttled" {
		t.Fatalf("exact must win over wildcard, got ok=%v v=%v p=%q", ok, v, p)
	}
	// wildcard matches a different middle segment
	if v, ok, p := tr.MatchWithPattern("upstream.search.throttled.hard"); !ok || v != 429 || p != "upstream.*.throttled" {
		t.Fatalf("wildcard match failed: ok=%v v=%v p=%q", ok, v, p)
	}
	// wildcard must match exactly one segment, not zero
	if _, ok, _ := tr.MatchWithPattern("upstream.throttled"); ok {
		t.Fatalf("wildcard should not match zero segments")
	}
}

func TestLPM_PrefersDeeperEvenIfExactBranchExists(t *testing.T) {
	tr := New[int]()
	// wildcard path can produce deeper match than an existing (but shallow) exact branch
	must(t, tr.Insert("a.*.c", 7))
	// create an exact branch that doesn't lead to a value at the same depth
	// (common pitfall for greedy algorithms)
	must(t, tr.Insert("a.b", 1))

	if v, ok, p := tr.MatchWithPattern("a.b.c"); !ok || v != 7 || p != "a.*.c" {
		t.Fatalf("LPM must choose wildcard path: ok=%v v=%v p=%q", ok, v, p)
	}
}

func TestMatch_DelegatesToMatchWithPattern(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("rate_limited", 429))
	if v, ok := tr.Match("rate_limited.burst"); !ok || v != 429 {
		t.Fatalf("Match => ok=%v v=%v; want ok=true v=429", ok, v)
	}
	if _, ok := tr.Match("unknown"); ok {
		t.Fatalf("Match should miss for unknown name")
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	if err := tr.Insert("", 1); err == nil {
		t.Fatalf("empty prefix must be invalid")
	}
	if err := tr.Insert("UPPER.case", 1); err == nil {
		t.Fatalf("uppercase must be invalid")
	}
	if err := tr.Insert("a..b", 1); err == nil {
		t.Fatalf("empty segment must be invalid")
	}
	if err := tr.Insert("*", 1); err == nil {
		t.Fatalf("wildcard-only prefix must be invalid")
	}

	if _, ok, _ := tr.MatchWithPattern("UPPER.case"); ok {
		t.Fatalf("match should be false for invalid name")
	}
	if _, ok, _ := tr.MatchWithPattern("a..b"); ok {
		t.Fatalf("match should be false for invalid name")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

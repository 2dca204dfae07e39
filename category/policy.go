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
	"math/rand"
	"time"
)

// RetryPolicy is a caller-owned backoff configuration for operations that
// want a different curve than the built-in per-kind schedules.
//
// Like the Classifier capability, a policy only computes: Delay and
// ShouldRetry are decision primitives for the caller's own retry loop.
// The policy never sleeps and owns no attempt counter.
type RetryPolicy struct {
	// MaxAttempts is the attempt budget consulted by ShouldRetry.
	MaxAttempts int

	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration

	// MaxDelay caps the computed delay.
	MaxDelay time.Duration

	// Multiplier is the exponential growth factor between attempts.
	Multiplier float64

	// Jitter randomizes the delay by ±25% to avoid thundering herds.
	// When set, Delay is no longer deterministic; classifiers embedded in
	// error values must stay deterministic, which is why jitter lives here
	// and not in the built-in table.
	Jitter bool
}

// StandardPolicy returns the default policy: 3 attempts, 100ms base,
// 30s cap, doubling, jittered.
func StandardPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    30 * time.Second,
		Multiplier:  2.0,
		Jitter:      true,
	}
}

// FastPolicy suits quick, cheap operations: short delays, low cap.
func FastPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   50 * time.Millisecond,
		MaxDelay:    time.Second,
		Multiplier:  1.5,
		Jitter:      true,
	}
}

// SlowPolicy suits expensive operations where hammering helps nobody.
func SlowPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    60 * time.Second,
		Multiplier:  2.0,
		Jitter:      true,
	}
}

// NetworkPolicy is tuned for transport-level flakiness.
func NetworkPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 4,
		BaseDelay:   250 * time.Millisecond,
		MaxDelay:    30 * time.Second,
		Multiplier:  2.0,
		Jitter:      true,
	}
}

// DatabasePolicy is tuned for datastore hiccups.
func DatabasePolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    10 * time.Second,
		Multiplier:  2.0,
		Jitter:      true,
	}
}

// Delay computes the wait before the given attempt.
//
// attempt is 1-based here (the policy predates the 0-indexed classifier
// contract and keeps its original meaning): attempt 0 means "no retry has
// happened yet" and yields zero. The exponential value is capped at
// MaxDelay before jitter is applied.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt <= 0 || p.BaseDelay <= 0 {
		return 0
	}

	d := float64(p.BaseDelay)
	for i := 1; i < attempt; i++ {
		d *= p.Multiplier
		if p.MaxDelay > 0 && d >= float64(p.MaxDelay) {
			d = float64(p.MaxDelay)
			break
		}
	}
	delay := time.Duration(d)
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		delay = p.MaxDelay
	}

	if p.Jitter {
		delay = jitter(delay)
	}
	return delay
}

// ShouldRetry reports whether the attempt budget allows another try.
// attempt is the 0-indexed count of prior failed attempts.
func (p RetryPolicy) ShouldRetry(attempt int) bool {
	return attempt >= 0 && attempt < p.MaxAttempts
}

// jitter scales a delay by a random factor in [0.75, 1.25).
func jitter(d time.Duration) time.Duration {
	f := 0.75 + 0.5*rand.Float64()
	return time.Duration(float64(d) * f)
}

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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPolicyPresets(t *testing.T) {
	tests := []struct {
		name        string
		policy      RetryPolicy
		maxAttempts int
		base        time.Duration
		max         time.Duration
		multiplier  float64
	}{
		{"standard", StandardPolicy(), 3, 100 * time.Millisecond, 30 * time.Second, 2.0},
		{"fast", FastPolicy(), 3, 50 * time.Millisecond, time.Second, 1.5},
		{"slow", SlowPolicy(), 5, 500 * time.Millisecond, 60 * time.Second, 2.0},
		{"network", NetworkPolicy(), 4, 250 * time.Millisecond, 30 * time.Second, 2.0},
		{"database", DatabasePolicy(), 3, 100 * time.Millisecond, 10 * time.Second, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.maxAttempts, tt.policy.MaxAttempts)
			assert.Equal(t, tt.base, tt.policy.BaseDelay)
			assert.Equal(t, tt.max, tt.policy.MaxDelay)
			assert.Equal(t, tt.multiplier, tt.policy.Multiplier)
			assert.True(t, tt.policy.Jitter)
		})
	}
}

func TestPolicyDelay_ExponentialWithoutJitter(t *testing.T) {
	p := RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    30 * time.Second,
		Multiplier:  2.0,
	}
	assert.Equal(t, time.Duration(0), p.Delay(0))
	assert.Equal(t, 100*time.Millisecond, p.Delay(1))
	assert.Equal(t, 200*time.Millisecond, p.Delay(2))
	assert.Equal(t, 400*time.Millisecond, p.Delay(3))
}

func TestPolicyDelay_CapApplies(t *testing.T) {
	p := RetryPolicy{
		MaxAttempts: 100,
		BaseDelay:   time.Second,
		MaxDelay:    5 * time.Second,
		Multiplier:  2.0,
	}
	assert.Equal(t, 5*time.Second, p.Delay(4))
	assert.Equal(t, 5*time.Second, p.Delay(50))
}

func TestPolicyDelay_JitterStaysInBand(t *testing.T) {
	p := RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    time.Minute,
		Multiplier:  2.0,
		Jitter:      true,
	}
	for i := 0; i < 100; i++ {
		d := p.Delay(1)
		assert.GreaterOrEqual(t, d, 750*time.Millisecond)
		assert.Less(t, d, 1250*time.Millisecond)
	}
}

func TestPolicyShouldRetry(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 3}
	assert.True(t, p.ShouldRetry(0))
	assert.True(t, p.ShouldRetry(2))
	assert.False(t, p.ShouldRetry(3))
	assert.False(t, p.ShouldRetry(10))
	assert.False(t, p.ShouldRetry(-1))
}

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
	"github.com/stretchr/testify/require"

	"github.com/the-yaml-life/tyl-errors/kind"
)

func TestForKind_RetriableFlags(t *testing.T) {
	assert.True(t, ForKind(kind.Database).IsRetriable())
	assert.True(t, ForKind(kind.Network).IsRetriable())
	assert.False(t, ForKind(kind.Validation).IsRetriable())
	assert.False(t, ForKind(kind.NotFound).IsRetriable())
	assert.False(t, ForKind(kind.Internal).IsRetriable())
}

func TestForKind_Names(t *testing.T) {
	for _, k := range []kind.Kind{kind.Database, kind.Network, kind.Validation, kind.NotFound, kind.Internal} {
		assert.Equal(t, k.String(), ForKind(k).Name())
	}
}

func TestForKind_CustomAndUnknownFallBack(t *testing.T) {
	// Custom has no table entry; classification lives on the error value.
	c := ForKind(kind.Custom)
	assert.False(t, c.IsRetriable())
	assert.Equal(t, "internal", c.Name())

	u := ForKind(kind.Kind("nonsense"))
	assert.False(t, u.IsRetriable())
	assert.Equal(t, "internal", u.Name())
}

func TestDefault_IsNonRetriableInternal(t *testing.T) {
	d := Default()
	assert.False(t, d.IsRetriable())
	assert.Equal(t, "internal", d.Name())
	assert.Equal(t, time.Duration(0), d.RetryDelay(0))
	assert.Equal(t, time.Duration(0), d.RetryDelay(100))
}

func TestRetryDelay_NetworkSchedule(t *testing.T) {
	n := ForKind(kind.Network)
	assert.Equal(t, 100*time.Millisecond, n.RetryDelay(0))
	assert.Equal(t, 200*time.Millisecond, n.RetryDelay(1))
	assert.Equal(t, 800*time.Millisecond, n.RetryDelay(3))
	// 100ms * 2^10 = 102.4s saturates at the 10s cap.
	assert.Equal(t, 10*time.Second, n.RetryDelay(10))
}

func TestRetryDelay_DatabaseSchedule(t *testing.T) {
	d := ForKind(kind.Database)
	assert.Equal(t, 50*time.Millisecond, d.RetryDelay(0))
	assert.Equal(t, 400*time.Millisecond, d.RetryDelay(3))
	assert.Equal(t, 5*time.Second, d.RetryDelay(20))
}

func TestRetryDelay_MonotonicAndBounded(t *testing.T) {
	caps := map[kind.Kind]time.Duration{
		kind.Database: 5 * time.Second,
		kind.Network:  10 * time.Second,
	}
	for k, cap := range caps {
		c := ForKind(k)
		prev := time.Duration(-1)
		for attempt := 0; attempt <= 40; attempt++ {
			d := c.RetryDelay(attempt)
			require.GreaterOrEqual(t, d, prev, "kind %s attempt %d not monotonic", k, attempt)
			require.LessOrEqual(t, d, cap, "kind %s attempt %d exceeds cap", k, attempt)
			prev = d
		}
	}
}

func TestRetryDelay_NegativeAttemptBehavesLikeZero(t *testing.T) {
	n := ForKind(kind.Network)
	assert.Equal(t, n.RetryDelay(0), n.RetryDelay(-5))
}

func TestRetryDelay_HugeAttemptSaturates(t *testing.T) {
	n := ForKind(kind.Network)
	assert.Equal(t, 10*time.Second, n.RetryDelay(1<<40))
}

func TestClone_IsIndependent(t *testing.T) {
	orig := ForKind(kind.Database)
	dup := orig.Clone()
	require.NotNil(t, dup)
	assert.Equal(t, orig.Name(), dup.Name())
	assert.Equal(t, orig.IsRetriable(), dup.IsRetriable())
	assert.Equal(t, orig.RetryDelay(2), dup.RetryDelay(2))
}

func TestSaturatingBackoff_Edges(t *testing.T) {
	assert.Equal(t, time.Duration(0), saturatingBackoff(0, time.Second, 3))
	// base at or above the cap clamps immediately
	assert.Equal(t, time.Second, saturatingBackoff(2*time.Second, time.Second, 0))
	assert.Equal(t, time.Second, saturatingBackoff(time.Second, time.Second, 5))
}

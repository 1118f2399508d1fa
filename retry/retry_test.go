// Copyright (c) 2023 IBM Corp.
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package retry

import (
	"testing"
	"time"

	O "github.com/paths-fp/paths/option"
	"github.com/stretchr/testify/assert"
)

func statusAt(iter uint) RetryStatus {
	return RetryStatus{IterNumber: iter}
}

func TestLimitRetries(t *testing.T) {
	policy := LimitRetries(2)
	assert.Equal(t, O.Some(time.Duration(0)), policy(statusAt(0)))
	assert.Equal(t, O.Some(time.Duration(0)), policy(statusAt(1)))
	assert.Equal(t, O.None[time.Duration](), policy(statusAt(2)))
}

func TestConstantDelay(t *testing.T) {
	policy := ConstantDelay(50 * time.Millisecond)
	assert.Equal(t, O.Some(50*time.Millisecond), policy(statusAt(9)))
}

func TestExponentialBackoffDoubles(t *testing.T) {
	policy := ExponentialBackoff(10 * time.Millisecond)
	assert.Equal(t, O.Some(10*time.Millisecond), policy(statusAt(0)))
	assert.Equal(t, O.Some(20*time.Millisecond), policy(statusAt(1)))
	assert.Equal(t, O.Some(40*time.Millisecond), policy(statusAt(2)))
}

func TestExponentialBackoffWithJitterStaysBelowBound(t *testing.T) {
	policy := ExponentialBackoffWithJitter(10 * time.Millisecond)
	for iter := uint(0); iter < 4; iter++ {
		bound := 10 * time.Millisecond * time.Duration(1<<iter)
		for i := 0; i < 32; i++ {
			delay, ok := O.Unwrap(policy(statusAt(iter)))
			assert.True(t, ok)
			assert.GreaterOrEqual(t, delay, time.Duration(0))
			assert.Less(t, delay, bound)
		}
	}
}

func TestCapDelay(t *testing.T) {
	policy := CapDelay(15*time.Millisecond, ExponentialBackoff(10*time.Millisecond))
	assert.Equal(t, O.Some(10*time.Millisecond), policy(statusAt(0)))
	assert.Equal(t, O.Some(15*time.Millisecond), policy(statusAt(1)))
	assert.Equal(t, O.Some(15*time.Millisecond), policy(statusAt(5)))
}

func TestMonoidNoneDominates(t *testing.T) {
	combined := Monoid.Concat(LimitRetries(1), ConstantDelay(30*time.Millisecond))
	assert.Equal(t, O.Some(30*time.Millisecond), combined(statusAt(0)))
	assert.Equal(t, O.None[time.Duration](), combined(statusAt(1)))
}

func TestMonoidTakesLargerDelay(t *testing.T) {
	combined := Monoid.Concat(ConstantDelay(10*time.Millisecond), ConstantDelay(30*time.Millisecond))
	assert.Equal(t, O.Some(30*time.Millisecond), combined(statusAt(0)))
}

func TestFixedTotalAttempts(t *testing.T) {
	// two retries after the initial attempt, then give up
	policy := Fixed(2, 5*time.Millisecond)
	assert.Equal(t, O.Some(5*time.Millisecond), policy(statusAt(0)))
	assert.Equal(t, O.Some(5*time.Millisecond), policy(statusAt(1)))
	assert.Equal(t, O.None[time.Duration](), policy(statusAt(2)))
}

func TestNoRetry(t *testing.T) {
	assert.Equal(t, O.None[time.Duration](), NoRetry()(statusAt(0)))
}

func TestApplyPolicy(t *testing.T) {
	status := ApplyPolicy(ConstantDelay(10*time.Millisecond), DefaultRetryStatus)
	assert.Equal(t, uint(1), status.IterNumber)
	assert.Equal(t, 10*time.Millisecond, status.CumulativeDelay)
	assert.Equal(t, O.Some(10*time.Millisecond), status.PreviousDelay)
}

func TestExhaustedErrorWraps(t *testing.T) {
	err := &ExhaustedError{Attempts: 3, Last: assert.AnError}
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "3 attempts")
}

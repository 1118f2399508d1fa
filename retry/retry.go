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

// package retry implements retry policies as composable values. A policy maps
// the current [RetryStatus] onto an optional delay; None terminates the
// retrying. Policies form a [M.Monoid], see [Monoid].
package retry

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	F "github.com/paths-fp/paths/function"
	M "github.com/paths-fp/paths/monoid"
	O "github.com/paths-fp/paths/option"
	"github.com/paths-fp/paths/ord"
)

// RetryStatus is the state threaded through consecutive attempts
type RetryStatus struct {
	// Iteration number, where 0 is the first try
	IterNumber uint
	// Delay incurred so far from retries
	CumulativeDelay time.Duration
	// Latest attempt's delay. Will always be None on the first run.
	PreviousDelay O.Option[time.Duration]
}

// RetryPolicy is a function that takes a [RetryStatus] and possibly returns a
// delay. Iteration numbers start at zero and increase by one on each retry. A
// None return value from the function implies we have reached the retry limit.
type RetryPolicy = func(RetryStatus) O.Option[time.Duration]

const emptyDuration = time.Duration(0)

var ordDuration = ord.FromStrictCompare[time.Duration]()

// Monoid collapses multiple policies into one with the semantics:
//
// 1. if either policy returns None, the combined policy returns None. This can
// be used to inhibit after a number of retries.
//
// 2. if both policies return a delay, the larger delay is used.
var Monoid = M.FunctionMonoid[RetryStatus](O.ApplicativeMonoid(M.MakeMonoid(
	ord.Max(ordDuration), emptyDuration)))

// LimitRetries retries immediately, but only up to `i` times
func LimitRetries(i uint) RetryPolicy {
	pred := func(value uint) bool {
		return value < i
	}
	empty := F.Constant1[uint](emptyDuration)
	return func(status RetryStatus) O.Option[time.Duration] {
		return F.Pipe2(
			status.IterNumber,
			O.FromPredicate(pred),
			O.Map(empty),
		)
	}
}

// NoRetry gives up after the first attempt
func NoRetry() RetryPolicy {
	return LimitRetries(0)
}

// ConstantDelay delays with unlimited retries
func ConstantDelay(delay time.Duration) RetryPolicy {
	return F.Constant1[RetryStatus](O.Of(delay))
}

// Fixed delays by a constant amount, up to `i` retries
func Fixed(i uint, delay time.Duration) RetryPolicy {
	return Monoid.Concat(LimitRetries(i), ConstantDelay(delay))
}

// CapDelay sets a time upperbound for any delays that may be directed by the
// given policy. This function does not terminate the retrying; the policy
// CapDelay(maxDelay, ExponentialBackoff(n)) will reach a state where it
// retries forever with a delay of maxDelay between attempts. To get
// termination combine with one of the LimitRetries variants.
func CapDelay(maxDelay time.Duration, policy RetryPolicy) RetryPolicy {
	return F.Flow2(
		policy,
		O.Map(F.Bind1st(ord.Min(ordDuration), maxDelay)),
	)
}

// ExponentialBackoff grows the delay exponentially, doubling it each iteration
func ExponentialBackoff(delay time.Duration) RetryPolicy {
	return func(status RetryStatus) O.Option[time.Duration] {
		return O.Some(delay * time.Duration(math.Pow(2, float64(status.IterNumber))))
	}
}

// ExponentialBackoffWithJitter grows the delay exponentially and randomizes it
// with full jitter: the effective delay is drawn uniformly from [0, d) where d
// is the exponential delay of the iteration
func ExponentialBackoffWithJitter(delay time.Duration) RetryPolicy {
	backoff := ExponentialBackoff(delay)
	return F.Flow2(
		backoff,
		O.Map(func(d time.Duration) time.Duration {
			if d <= 0 {
				return d
			}
			return time.Duration(rand.Int63n(int64(d)))
		}),
	)
}

// DefaultRetryStatus is the initial retry status, exported mostly to allow
// user code to test handlers and retry policies
var DefaultRetryStatus = RetryStatus{
	IterNumber:      0,
	CumulativeDelay: 0,
	PreviousDelay:   O.None[time.Duration](),
}

var getOrElseDelay = O.GetOrElse(F.Constant(emptyDuration))

// ApplyPolicy applies a policy to a status to compute the next status
func ApplyPolicy(policy RetryPolicy, status RetryStatus) RetryStatus {
	previousDelay := policy(status)
	return RetryStatus{
		IterNumber:      status.IterNumber + 1,
		CumulativeDelay: status.CumulativeDelay + getOrElseDelay(previousDelay),
		PreviousDelay:   previousDelay,
	}
}

// ExhaustedError is the failure raised when a policy gives up. It carries the
// total number of attempts and wraps the last underlying error.
type ExhaustedError struct {
	Attempts uint
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retry exhausted after %d attempts: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

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

package ioresult

import (
	"time"

	ET "github.com/paths-fp/paths/either"
	F "github.com/paths-fp/paths/function"
	R "github.com/paths-fp/paths/result"
	RT "github.com/paths-fp/paths/retry"
)

func delayIOResult[A any](delay time.Duration) func(IOResult[A]) IOResult[A] {
	return func(ga IOResult[A]) IOResult[A] {
		return func() R.Result[A] {
			time.Sleep(delay)
			return ga()
		}
	}
}

// Retrying retries the action according to the policy as long as the check on
// the returned result holds
func Retrying[A any](
	policy RT.RetryPolicy,
	action func(RT.RetryStatus) IOResult[A],
	check func(R.Result[A]) bool,
) IOResult[A] {
	return RT.Retrying(
		func(f func(R.Result[A]) IOResult[A]) func(IOResult[A]) IOResult[A] {
			return func(ma IOResult[A]) IOResult[A] {
				return func() R.Result[A] {
					return f(ma())()
				}
			}
		},
		func(f func(RT.RetryStatus) IOResult[A]) func(IOResult[RT.RetryStatus]) IOResult[A] {
			return Chain(f)
		},
		FromResult[A],
		Of[RT.RetryStatus],
		delayIOResult[RT.RetryStatus],
		policy,
		action,
		check,
	)
}

// WithRetry re-runs the computation according to the policy for as long as it
// fails with an error selected by shouldRetry. Errors rejected by the
// predicate surface immediately without delay. Once the policy gives up the
// computation fails with a [RT.ExhaustedError] carrying the attempt count and
// the last underlying error.
func WithRetry[A any](policy RT.RetryPolicy, shouldRetry func(error) bool) func(IOResult[A]) IOResult[A] {
	return func(fa IOResult[A]) IOResult[A] {
		return func() R.Result[A] {
			attempts := uint(0)
			run := Retrying(policy, func(_ RT.RetryStatus) IOResult[A] {
				return func() R.Result[A] {
					attempts++
					return fa()
				}
			}, func(res R.Result[A]) bool {
				return ET.MonadFold(res, shouldRetry, F.Constant1[A](false))
			})
			return ET.MonadFold(run(), func(err error) R.Result[A] {
				if !shouldRetry(err) {
					return R.Error[A](err)
				}
				return R.Error[A](&RT.ExhaustedError{Attempts: attempts, Last: err})
			}, R.Ok[A])
		}
	}
}

// Retry is the fixed-policy shorthand: up to maxAttempts total attempts with a
// constant delay in between, every error eligible
func Retry[A any](maxAttempts uint, delay time.Duration) func(IOResult[A]) IOResult[A] {
	if maxAttempts == 0 {
		maxAttempts = 1
	}
	return WithRetry[A](RT.Fixed(maxAttempts-1, delay), F.Constant1[error](true))
}

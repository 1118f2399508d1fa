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

package task

import (
	"context"
	"errors"

	ET "github.com/paths-fp/paths/either"
	F "github.com/paths-fp/paths/function"
	R "github.com/paths-fp/paths/result"
	RT "github.com/paths-fp/paths/retry"
)

// Retrying retries the task according to the policy as long as the check on
// the result holds. Delays between attempts are suspension points and respect
// cancellation.
func Retrying[A any](
	policy RT.RetryPolicy,
	action func(RT.RetryStatus) Task[A],
	check func(R.Result[A]) bool,
) Task[A] {
	return RT.Retrying(
		func(f func(R.Result[A]) Task[A]) func(Task[A]) Task[A] {
			return func(ma Task[A]) Task[A] {
				return func(ctx context.Context) R.Result[A] {
					return f(ma(ctx))(ctx)
				}
			}
		},
		func(f func(RT.RetryStatus) Task[A]) func(Task[RT.RetryStatus]) Task[A] {
			return Chain(f)
		},
		FromResult[A],
		Of[RT.RetryStatus],
		Delay[RT.RetryStatus],
		policy,
		action,
		check,
	)
}

// WithRetry re-runs the task according to the policy for as long as it fails
// with an error selected by shouldRetry. Cancellation errors are never
// retried. Once the policy gives up the task fails with a [RT.ExhaustedError].
func WithRetry[A any](policy RT.RetryPolicy, shouldRetry func(error) bool) func(Task[A]) Task[A] {
	eligible := func(err error) bool {
		if errors.Is(err, ErrCanceled) || errors.Is(err, ErrTimeout) {
			return false
		}
		return shouldRetry(err)
	}
	return func(fa Task[A]) Task[A] {
		return func(ctx context.Context) R.Result[A] {
			attempts := uint(0)
			run := Retrying(policy, func(_ RT.RetryStatus) Task[A] {
				return func(innerCtx context.Context) R.Result[A] {
					attempts++
					return fa(innerCtx)
				}
			}, func(res R.Result[A]) bool {
				return ET.MonadFold(res, eligible, F.Constant1[A](false))
			})
			return ET.MonadFold(run(ctx), func(err error) R.Result[A] {
				if !eligible(err) {
					return R.Error[A](err)
				}
				return R.Error[A](&RT.ExhaustedError{Attempts: attempts, Last: err})
			}, R.Ok[A])
		}
	}
}

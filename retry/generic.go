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
	"time"

	F "github.com/paths-fp/paths/function"
	O "github.com/paths-fp/paths/option"
)

// applyAndDelay applies the policy and delays by its amount if it directs one.
// HKTSTATUS = HKT<RetryStatus>
func applyAndDelay[HKTSTATUS any](
	monadOf func(RetryStatus) HKTSTATUS,
	monadDelay func(time.Duration) func(HKTSTATUS) HKTSTATUS,
) func(policy RetryPolicy, status RetryStatus) HKTSTATUS {
	return func(policy RetryPolicy, status RetryStatus) HKTSTATUS {
		newStatus := ApplyPolicy(policy, status)
		return F.Pipe1(
			newStatus.PreviousDelay,
			O.Fold(
				F.Nullary2(F.Constant(newStatus), monadOf),
				func(delay time.Duration) HKTSTATUS {
					return monadDelay(delay)(monadOf(newStatus))
				},
			),
		)
	}
}

// Retrying is the retry combinator for actions that signal their outcome in
// their value, such as Either or its effectful variants.
//
// policy - the retry policy
// action - converts a status into an operation to be executed
// check  - tests if the result of the action needs to be retried
func Retrying[HKTA, HKTSTATUS, A any](
	monadChain func(func(A) HKTA) func(HKTA) HKTA,
	monadChainStatus func(func(RetryStatus) HKTA) func(HKTSTATUS) HKTA,
	monadOf func(A) HKTA,
	monadOfStatus func(RetryStatus) HKTSTATUS,
	monadDelay func(time.Duration) func(HKTSTATUS) HKTSTATUS,

	policy RetryPolicy,
	action func(RetryStatus) HKTA,
	check func(A) bool,
) HKTA {
	applyDelay := applyAndDelay(monadOfStatus, monadDelay)

	checkForRetry := O.FromPredicate(check)

	var f func(status RetryStatus) HKTA

	// lazy init because the definition references itself in the chain
	f = func(status RetryStatus) HKTA {
		return F.Pipe2(
			status,
			action,
			monadChain(func(a A) HKTA {
				return F.Pipe3(
					a,
					checkForRetry,
					O.Map(func(a A) HKTA {
						return F.Pipe1(
							applyDelay(policy, status),
							monadChainStatus(func(status RetryStatus) HKTA {
								return F.Pipe1(
									status.PreviousDelay,
									O.Fold(F.Constant(monadOf(a)), func(_ time.Duration) HKTA {
										return f(status)
									}),
								)
							}),
						)
					}),
					O.GetOrElse(F.Constant(monadOf(a))),
				)
			}),
		)
	}
	return f(DefaultRetryStatus)
}

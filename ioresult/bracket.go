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
	"io"

	ET "github.com/paths-fp/paths/either"
	F "github.com/paths-fp/paths/function"
	R "github.com/paths-fp/paths/result"
)

// Bracket makes sure that a resource is cleaned up in the event of a failure.
// The release action is called exactly once with the outcome of the use step,
// regardless of whether that step succeeded or failed; a failing release turns
// a successful outcome into a failure.
func Bracket[A, B any](
	acquire IOResult[A],
	use func(A) IOResult[B],
	release func(A, R.Result[B]) IOResult[F.Void],
) IOResult[B] {
	return MonadChain(acquire, func(a A) IOResult[B] {
		return func() R.Result[B] {
			outcome := use(a)()
			released := release(a, outcome)()
			return ET.MonadFold(released, R.Error[B], F.Constant1[F.Void](outcome))
		}
	})
}

// Guarantee runs a finalizer on every exit path of the computation, success or
// failure. The finalizer observes nothing and cannot rescue a failure, but a
// failing finalizer replaces a successful outcome.
func Guarantee[A any](finalizer IOResult[F.Void]) func(IOResult[A]) IOResult[A] {
	return func(fa IOResult[A]) IOResult[A] {
		return Bracket(Of(F.VOID), F.Constant1[F.Void](fa), func(_ F.Void, _ R.Result[A]) IOResult[F.Void] {
			return finalizer
		})
	}
}

// WithResource creates a function that acquires a closeable resource, operates
// on it and then closes it on every exit path
func WithResource[B any, A io.Closer](acquire IOResult[A]) func(func(A) IOResult[B]) IOResult[B] {
	return func(use func(A) IOResult[B]) IOResult[B] {
		return Bracket(acquire, use, func(a A, _ R.Result[B]) IOResult[F.Void] {
			return TryCatch(func() (F.Void, error) {
				return F.VOID, a.Close()
			})
		})
	}
}

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

package either

import (
	CH "github.com/paths-fp/paths/choice"
	F "github.com/paths-fp/paths/function"
)

// MonadSelect applies the function only to left selections:
//
//	Select(Right(b), _) == Of(b)
//	Select(Left(a), ff) == Ap(ff, Of(a))
func MonadSelect[E, A, B any](fab Either[E, CH.Choice[A, B]], ff Either[E, func(A) B]) Either[E, B] {
	return MonadChain(fab, CH.Fold(func(a A) Either[E, B] {
		return MonadMap(ff, func(f func(A) B) B {
			return f(a)
		})
	}, Of[E, B]))
}

// Select is the curried version of [MonadSelect]
func Select[E, A, B any](ff Either[E, func(A) B]) func(Either[E, CH.Choice[A, B]]) Either[E, B] {
	return F.Bind2nd(MonadSelect[E, A, B], ff)
}

// Branch dispatches a [CH.Choice] to one of two handler effects
func Branch[E, A, B, C any](onLeft Either[E, func(A) C], onRight Either[E, func(B) C]) func(Either[E, CH.Choice[A, B]]) Either[E, C] {
	return func(fab Either[E, CH.Choice[A, B]]) Either[E, C] {
		return MonadChain(fab, CH.Fold(func(a A) Either[E, C] {
			return MonadFlap(onLeft, a)
		}, func(b B) Either[E, C] {
			return MonadFlap(onRight, b)
		}))
	}
}

// IfS selects one of two effects based on an effectful condition
func IfS[E, A any](onTrue Either[E, A], onFalse Either[E, A]) func(Either[E, bool]) Either[E, A] {
	return Chain(func(cond bool) Either[E, A] {
		if cond {
			return onTrue
		}
		return onFalse
	})
}

// WhenS runs the effect only when the condition holds
func WhenS[E any](fa Either[E, F.Void]) func(Either[E, bool]) Either[E, F.Void] {
	return IfS(fa, Of[E](F.VOID))
}

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

package option

import (
	CH "github.com/paths-fp/paths/choice"
	F "github.com/paths-fp/paths/function"
)

// MonadSelect applies the function only to left selections:
//
//	Select(Right(b), _) == Of(b)
//	Select(Left(a), ff) == Ap(ff, Of(a))
func MonadSelect[A, B any](fab Option[CH.Choice[A, B]], ff Option[func(A) B]) Option[B] {
	return MonadChain(fab, CH.Fold(func(a A) Option[B] {
		return MonadMap(ff, func(f func(A) B) B {
			return f(a)
		})
	}, Of[B]))
}

// Select is the curried version of [MonadSelect]
func Select[A, B any](ff Option[func(A) B]) func(Option[CH.Choice[A, B]]) Option[B] {
	return F.Bind2nd(MonadSelect[A, B], ff)
}

// Branch dispatches a [CH.Choice] to one of two handler effects
func Branch[A, B, C any](onLeft Option[func(A) C], onRight Option[func(B) C]) func(Option[CH.Choice[A, B]]) Option[C] {
	return func(fab Option[CH.Choice[A, B]]) Option[C] {
		return MonadChain(fab, CH.Fold(func(a A) Option[C] {
			return MonadFlap(onLeft, a)
		}, func(b B) Option[C] {
			return MonadFlap(onRight, b)
		}))
	}
}

// IfS selects one of two effects based on an effectful condition
func IfS[A any](onTrue Option[A], onFalse Option[A]) func(Option[bool]) Option[A] {
	return Chain(func(cond bool) Option[A] {
		if cond {
			return onTrue
		}
		return onFalse
	})
}

// WhenS runs the effect only when the condition holds
func WhenS(fa Option[F.Void]) func(Option[bool]) Option[F.Void] {
	return IfS(fa, Of(F.VOID))
}

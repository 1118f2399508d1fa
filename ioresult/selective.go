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
	CH "github.com/paths-fp/paths/choice"
	F "github.com/paths-fp/paths/function"
)

// MonadSelect applies the function effect only to left selections; for right
// selections the function effect never runs:
//
//	Select(Right(b), _) == Of(b)
//	Select(Left(a), ff) == Ap(ff, Of(a))
func MonadSelect[A, B any](fab IOResult[CH.Choice[A, B]], ff IOResult[func(A) B]) IOResult[B] {
	return MonadChain(fab, CH.Fold(func(a A) IOResult[B] {
		return MonadMap(ff, func(f func(A) B) B {
			return f(a)
		})
	}, Of[B]))
}

// Select is the curried version of [MonadSelect]
func Select[A, B any](ff IOResult[func(A) B]) func(IOResult[CH.Choice[A, B]]) IOResult[B] {
	return F.Bind2nd(MonadSelect[A, B], ff)
}

// Branch dispatches a [CH.Choice] to one of two handler effects, only the
// selected handler runs
func Branch[A, B, C any](onLeft IOResult[func(A) C], onRight IOResult[func(B) C]) func(IOResult[CH.Choice[A, B]]) IOResult[C] {
	return func(fab IOResult[CH.Choice[A, B]]) IOResult[C] {
		return MonadChain(fab, CH.Fold(func(a A) IOResult[C] {
			return MonadMap(onLeft, func(f func(A) C) C {
				return f(a)
			})
		}, func(b B) IOResult[C] {
			return MonadMap(onRight, func(f func(B) C) C {
				return f(b)
			})
		}))
	}
}

// IfS runs one of two effects based on an effectful condition, the untaken
// branch never executes
func IfS[A any](onTrue IOResult[A], onFalse IOResult[A]) func(IOResult[bool]) IOResult[A] {
	return Chain(func(cond bool) IOResult[A] {
		if cond {
			return onTrue
		}
		return onFalse
	})
}

// WhenS runs the effect only when the condition holds
func WhenS(fa IOResult[F.Void]) func(IOResult[bool]) IOResult[F.Void] {
	return IfS(fa, Of(F.VOID))
}

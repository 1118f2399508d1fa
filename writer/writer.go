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

// package writer implements the logging effect path, a computation that
// produces a value together with an accumulated output. The output is combined
// through the [M.Monoid] passed to the combinators, the dictionary-passing
// rendition of a writer carrying its monoid.
package writer

import (
	F "github.com/paths-fp/paths/function"
	M "github.com/paths-fp/paths/monoid"
	P "github.com/paths-fp/paths/pair"
)

// Writer represents a computation yielding a value and an accumulated output
type Writer[W, A any] func() P.Pair[A, W]

// MakeWriter wraps a value and an output
func MakeWriter[W, A any](a A, w W) Writer[W, A] {
	return F.Constant(P.MakePair(a, w))
}

// Of wraps a value with the empty output
func Of[W, A any](m M.Monoid[W]) func(A) Writer[W, A] {
	return func(a A) Writer[W, A] {
		return MakeWriter(a, m.Empty())
	}
}

// Tell appends output without producing a value
func Tell[W any](w W) Writer[W, F.Void] {
	return MakeWriter(F.VOID, w)
}

// MonadMap transforms the value, the output is unchanged
func MonadMap[W, A, B any](fa Writer[W, A], f func(A) B) Writer[W, B] {
	return func() P.Pair[B, W] {
		return P.MapHead[W](f)(fa())
	}
}

// Map is the curried version of [MonadMap]
func Map[W, A, B any](f func(A) B) func(Writer[W, A]) Writer[W, B] {
	return F.Bind2nd(MonadMap[W, A, B], f)
}

// MonadChain composes computations in sequence, combining the outputs through the monoid
func MonadChain[W, A, B any](m M.Monoid[W], fa Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
	return func() P.Pair[B, W] {
		first := fa()
		second := f(P.Head(first))()
		return P.MakePair(P.Head(second), m.Concat(P.Tail(first), P.Tail(second)))
	}
}

// Chain is the curried version of [MonadChain]
func Chain[W, A, B any](m M.Monoid[W]) func(func(A) Writer[W, B]) func(Writer[W, A]) Writer[W, B] {
	return func(f func(A) Writer[W, B]) func(Writer[W, A]) Writer[W, B] {
		return func(fa Writer[W, A]) Writer[W, B] {
			return MonadChain(m, fa, f)
		}
	}
}

// MonadChainFirst runs a second computation for its output and keeps the first value
func MonadChainFirst[W, A, B any](m M.Monoid[W], fa Writer[W, A], f func(A) Writer[W, B]) Writer[W, A] {
	return MonadChain(m, fa, func(a A) Writer[W, A] {
		return MonadMap(f(a), F.Constant1[B](a))
	})
}

// MonadAp applies a wrapped function to a wrapped value, combining the outputs
func MonadAp[W, B, A any](m M.Monoid[W], fab Writer[W, func(A) B], fa Writer[W, A]) Writer[W, B] {
	return MonadChain(m, fab, func(ab func(A) B) Writer[W, B] {
		return MonadMap(fa, ab)
	})
}

// Ap is the curried version of [MonadAp]
func Ap[B, W, A any](m M.Monoid[W]) func(Writer[W, A]) func(Writer[W, func(A) B]) Writer[W, B] {
	return func(fa Writer[W, A]) func(Writer[W, func(A) B]) Writer[W, B] {
		return func(fab Writer[W, func(A) B]) Writer[W, B] {
			return MonadAp(m, fab, fa)
		}
	}
}

// Listen exposes the accumulated output alongside the value
func Listen[W, A any](fa Writer[W, A]) Writer[W, P.Pair[A, W]] {
	return func() P.Pair[P.Pair[A, W], W] {
		res := fa()
		return P.MakePair(res, P.Tail(res))
	}
}

// Pass applies an output transformation produced by the computation itself
func Pass[W, A any](fa Writer[W, P.Pair[A, func(W) W]]) Writer[W, A] {
	return func() P.Pair[A, W] {
		res := fa()
		inner := P.Head(res)
		return P.MakePair(P.Head(inner), P.Tail(inner)(P.Tail(res)))
	}
}

// Censor transforms the accumulated output
func Censor[W, A any](f func(W) W) func(Writer[W, A]) Writer[W, A] {
	return func(fa Writer[W, A]) Writer[W, A] {
		return func() P.Pair[A, W] {
			return P.MapTail[A](f)(fa())
		}
	}
}

// Evaluate runs the computation and returns the value
func Evaluate[W, A any](fa Writer[W, A]) A {
	return P.Head(fa())
}

// Execute runs the computation and returns the accumulated output
func Execute[W, A any](fa Writer[W, A]) W {
	return P.Tail(fa())
}

// Run executes the computation, returning both value and output
func Run[W, A any](fa Writer[W, A]) P.Pair[A, W] {
	return fa()
}

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

// package state implements the stateful effect path, a computation that
// threads an immutable state value and yields a value/state [P.Pair]
package state

import (
	F "github.com/paths-fp/paths/function"
	P "github.com/paths-fp/paths/pair"
)

// State represents a computation from a state to a value and the next state
type State[S, A any] func(S) P.Pair[A, S]

// Get yields the current state as the value
func Get[S any]() State[S, S] {
	return func(s S) P.Pair[S, S] {
		return P.MakePair(s, s)
	}
}

// Gets derives a value from the current state
func Gets[S, A any](f func(S) A) State[S, A] {
	return func(s S) P.Pair[A, S] {
		return P.MakePair(f(s), s)
	}
}

// Inspect is an alias of [Gets]
func Inspect[S, A any](f func(S) A) State[S, A] {
	return Gets(f)
}

// Put replaces the state
func Put[S any](s S) State[S, F.Void] {
	return func(S) P.Pair[F.Void, S] {
		return P.MakePair(F.VOID, s)
	}
}

// Modify transforms the state
func Modify[S any](f func(S) S) State[S, F.Void] {
	return func(s S) P.Pair[F.Void, S] {
		return P.MakePair(F.VOID, f(s))
	}
}

// Of wraps a value without touching the state
func Of[S, A any](a A) State[S, A] {
	return func(s S) P.Pair[A, S] {
		return P.MakePair(a, s)
	}
}

// MonadMap transforms the value of the computation
func MonadMap[S, A, B any](fa State[S, A], f func(A) B) State[S, B] {
	return func(s S) P.Pair[B, S] {
		return P.MapHead[S](f)(fa(s))
	}
}

// Map is the curried version of [MonadMap]
func Map[S, A, B any](f func(A) B) func(State[S, A]) State[S, B] {
	return F.Bind2nd(MonadMap[S, A, B], f)
}

// MonadChain composes stateful computations in sequence
func MonadChain[S, A, B any](fa State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) P.Pair[B, S] {
		res := fa(s)
		return f(P.Head(res))(P.Tail(res))
	}
}

// Chain is the curried version of [MonadChain]
func Chain[S, A, B any](f func(A) State[S, B]) func(State[S, A]) State[S, B] {
	return F.Bind2nd(MonadChain[S, A, B], f)
}

// MonadChainFirst runs a second computation for its state effect and keeps the first value
func MonadChainFirst[S, A, B any](fa State[S, A], f func(A) State[S, B]) State[S, A] {
	return MonadChain(fa, func(a A) State[S, A] {
		return MonadMap(f(a), F.Constant1[B](a))
	})
}

// ChainFirst is the curried version of [MonadChainFirst]
func ChainFirst[S, A, B any](f func(A) State[S, B]) func(State[S, A]) State[S, A] {
	return F.Bind2nd(MonadChainFirst[S, A, B], f)
}

// MonadAp applies a stateful function to a stateful value, threading the state
// through the function first
func MonadAp[S, B, A any](fab State[S, func(A) B], fa State[S, A]) State[S, B] {
	return MonadChain(fab, func(ab func(A) B) State[S, B] {
		return MonadMap(fa, ab)
	})
}

// Ap is the curried version of [MonadAp]
func Ap[B, S, A any](fa State[S, A]) func(State[S, func(A) B]) State[S, B] {
	return F.Bind2nd(MonadAp[S, B, A], fa)
}

// Flatten removes one level of nesting
func Flatten[S, A any](mma State[S, State[S, A]]) State[S, A] {
	return MonadChain(mma, F.Identity[State[S, A]])
}

// Run executes the computation against an initial state
func Run[S, A any](s S) func(State[S, A]) P.Pair[A, S] {
	return func(fa State[S, A]) P.Pair[A, S] {
		return fa(s)
	}
}

// Evaluate executes the computation and returns the value
func Evaluate[S, A any](s S) func(State[S, A]) A {
	return func(fa State[S, A]) A {
		return P.Head(fa(s))
	}
}

// Execute executes the computation and returns the final state
func Execute[S, A any](s S) func(State[S, A]) S {
	return func(fa State[S, A]) S {
		return P.Tail(fa(s))
	}
}

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

// package lazy implements the lazy effect path, a deferred, side effect free
// computation of a single value. Forcing a composed value forces its
// predecessors; [Memoize] caches the result with at most once evaluation and a
// happens-before edge between the producer and every later reader.
package lazy

import (
	"sync"

	F "github.com/paths-fp/paths/function"
)

// Lazy represents a deferred computation of a value
type Lazy[A any] func() A

// Of creates an already evaluated [Lazy]
func Of[A any](a A) Lazy[A] {
	return F.Constant(a)
}

// Make defers the computation of a value
func Make[A any](f func() A) Lazy[A] {
	return f
}

// Defer creates a [Lazy] by creating a brand new computation via a generator function, each time
func Defer[A any](gen func() Lazy[A]) Lazy[A] {
	return func() A {
		return gen()()
	}
}

// MonadMap transforms the value once the computation is forced
func MonadMap[A, B any](fa Lazy[A], f func(A) B) Lazy[B] {
	return func() B {
		return f(fa())
	}
}

// Map is the curried version of [MonadMap]
func Map[A, B any](f func(A) B) func(Lazy[A]) Lazy[B] {
	return F.Bind2nd(MonadMap[A, B], f)
}

// MonadChain composes deferred computations in sequence
func MonadChain[A, B any](fa Lazy[A], f func(A) Lazy[B]) Lazy[B] {
	return func() B {
		return f(fa())()
	}
}

// Chain is the curried version of [MonadChain]
func Chain[A, B any](f func(A) Lazy[B]) func(Lazy[A]) Lazy[B] {
	return F.Bind2nd(MonadChain[A, B], f)
}

// MonadAp applies a deferred function to a deferred value
func MonadAp[B, A any](fab Lazy[func(A) B], fa Lazy[A]) Lazy[B] {
	return func() B {
		return fab()(fa())
	}
}

// Ap is the curried version of [MonadAp]
func Ap[B, A any](fa Lazy[A]) func(Lazy[func(A) B]) Lazy[B] {
	return F.Bind2nd(MonadAp[B, A], fa)
}

// Flatten removes one level of deferral
func Flatten[A any](mma Lazy[Lazy[A]]) Lazy[A] {
	return MonadChain(mma, F.Identity[Lazy[A]])
}

// Memoize computes the value of the provided [Lazy] at most once. The cache
// write is published via [sync.Once], later readers observe it without further
// synchronization.
func Memoize[A any](ma Lazy[A]) Lazy[A] {
	var once sync.Once
	var value A
	return func() A {
		once.Do(func() {
			value = ma()
		})
		return value
	}
}

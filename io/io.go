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

// package io implements the synchronous effect path for computations that
// cannot fail. A value of type [IO] describes the computation, nothing runs
// until the descriptor is invoked.
package io

import (
	"sync"
	"time"

	F "github.com/paths-fp/paths/function"
)

// IO represents a synchronous computation that cannot fail
type IO[A any] func() A

// MakeIO lifts a thunk into the [IO] context
func MakeIO[A any](f func() A) IO[A] {
	return f
}

// Of wraps a pure value into an [IO] that returns it
func Of[A any](a A) IO[A] {
	return F.Constant(a)
}

// FromImpure converts a side effect without a return value into an [IO]
func FromImpure(f func()) IO[F.Void] {
	return func() F.Void {
		f()
		return F.VOID
	}
}

// MonadMap transforms the result of the computation
func MonadMap[A, B any](fa IO[A], f func(A) B) IO[B] {
	return func() B {
		return f(fa())
	}
}

// Map is the curried version of [MonadMap]
func Map[A, B any](f func(A) B) func(IO[A]) IO[B] {
	return F.Bind2nd(MonadMap[A, B], f)
}

// MonadMapTo replaces the result of the computation
func MonadMapTo[A, B any](fa IO[A], b B) IO[B] {
	return MonadMap(fa, F.Constant1[A](b))
}

// MapTo is the curried version of [MonadMapTo]
func MapTo[A, B any](b B) func(IO[A]) IO[B] {
	return F.Bind2nd(MonadMapTo[A, B], b)
}

// MonadChain composes computations in sequence, using the return value of one
// computation to determine the next computation
func MonadChain[A, B any](fa IO[A], f func(A) IO[B]) IO[B] {
	return func() B {
		return f(fa())()
	}
}

// Chain is the curried version of [MonadChain]
func Chain[A, B any](f func(A) IO[B]) func(IO[A]) IO[B] {
	return F.Bind2nd(MonadChain[A, B], f)
}

// MonadChainFirst runs a second computation for its effect and keeps the first result
func MonadChainFirst[A, B any](fa IO[A], f func(A) IO[B]) IO[A] {
	return MonadChain(fa, func(a A) IO[A] {
		return MonadMap(f(a), F.Constant1[B](a))
	})
}

// ChainFirst is the curried version of [MonadChainFirst]
func ChainFirst[A, B any](f func(A) IO[B]) func(IO[A]) IO[A] {
	return F.Bind2nd(MonadChainFirst[A, B], f)
}

// MonadChainTo composes computations in sequence, ignoring the first result
func MonadChainTo[A, B any](fa IO[A], fb IO[B]) IO[B] {
	return MonadChain(fa, F.Constant1[A](fb))
}

// ChainTo is the curried version of [MonadChainTo]
func ChainTo[A, B any](fb IO[B]) func(IO[A]) IO[B] {
	return F.Bind2nd(MonadChainTo[A, B], fb)
}

// MonadApSeq implements the applicative on a single goroutine by first
// executing mab and then ma
func MonadApSeq[A, B any](mab IO[func(A) B], ma IO[A]) IO[B] {
	return MonadChain(mab, F.Bind1st(MonadMap[A, B], ma))
}

// MonadApPar implements the applicative on two goroutines, the calling
// goroutine executes mab and the apply operation, a second goroutine computes
// ma. Communication happens via a channel.
func MonadApPar[A, B any](mab IO[func(A) B], ma IO[A]) IO[B] {
	return func() B {
		c := make(chan A, 1)
		go func() {
			c <- ma()
			close(c)
		}()
		return mab()(<-c)
	}
}

// MonadAp implements the ap operation, the parallel implementation is the default
func MonadAp[B, A any](mab IO[func(A) B], ma IO[A]) IO[B] {
	return MonadApPar(mab, ma)
}

// Ap is the curried version of [MonadAp]
func Ap[B, A any](ma IO[A]) func(IO[func(A) B]) IO[B] {
	return F.Bind2nd(MonadAp[B, A], ma)
}

// ApSeq is the curried version of [MonadApSeq]
func ApSeq[B, A any](ma IO[A]) func(IO[func(A) B]) IO[B] {
	return F.Bind2nd(MonadApSeq[A, B], ma)
}

// Flatten removes one level of nesting
func Flatten[A any](mma IO[IO[A]]) IO[A] {
	return MonadChain(mma, F.Identity[IO[A]])
}

// Defer creates an [IO] by creating a brand new computation via a generator function, each time
func Defer[A any](gen func() IO[A]) IO[A] {
	return func() A {
		return gen()()
	}
}

// Memoize computes the value of the provided [IO] lazily but exactly once
func Memoize[A any](ma IO[A]) IO[A] {
	var once sync.Once
	var value A
	return func() A {
		once.Do(func() {
			value = ma()
		})
		return value
	}
}

// Now returns the current timestamp
var Now IO[time.Time] = time.Now

// Delay creates an operation that passes in the value after some delay
func Delay[A any](delay time.Duration) func(IO[A]) IO[A] {
	return func(ga IO[A]) IO[A] {
		return func() A {
			time.Sleep(delay)
			return ga()
		}
	}
}

// After creates an operation that passes after the given timestamp
func After[A any](timestamp time.Time) func(IO[A]) IO[A] {
	return func(ga IO[A]) IO[A] {
		return func() A {
			time.Sleep(time.Until(timestamp))
			return ga()
		}
	}
}

// MonadFlap applies a value to a function inside the computation
func MonadFlap[B, A any](fab IO[func(A) B], a A) IO[B] {
	return MonadMap(fab, func(f func(A) B) B {
		return f(a)
	})
}

// Flap is the curried version of [MonadFlap]
func Flap[B, A any](a A) func(IO[func(A) B]) IO[B] {
	return F.Bind2nd(MonadFlap[B, A], a)
}

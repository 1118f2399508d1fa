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

// package reader implements the environment effect path, a computation that
// reads from a shared immutable environment
package reader

import (
	F "github.com/paths-fp/paths/function"
)

// Reader represents a computation that depends on an environment R
type Reader[R, A any] func(R) A

// Ask reads the environment itself
func Ask[R any]() Reader[R, R] {
	return F.Identity[R]
}

// Asks derives a computation from an accessor of the environment
func Asks[R, A any](f func(R) A) Reader[R, A] {
	return f
}

// Of wraps a value into a computation that ignores the environment
func Of[R, A any](a A) Reader[R, A] {
	return F.Constant1[R](a)
}

// MonadMap transforms the result of the computation
func MonadMap[R, A, B any](fa Reader[R, A], f func(A) B) Reader[R, B] {
	return func(r R) B {
		return f(fa(r))
	}
}

// Map is the curried version of [MonadMap]
func Map[R, A, B any](f func(A) B) func(Reader[R, A]) Reader[R, B] {
	return F.Bind2nd(MonadMap[R, A, B], f)
}

// MonadChain composes computations over the same environment
func MonadChain[R, A, B any](fa Reader[R, A], f func(A) Reader[R, B]) Reader[R, B] {
	return func(r R) B {
		return f(fa(r))(r)
	}
}

// Chain is the curried version of [MonadChain]
func Chain[R, A, B any](f func(A) Reader[R, B]) func(Reader[R, A]) Reader[R, B] {
	return F.Bind2nd(MonadChain[R, A, B], f)
}

// MonadChainFirst runs a second computation for its effect and keeps the first result
func MonadChainFirst[R, A, B any](fa Reader[R, A], f func(A) Reader[R, B]) Reader[R, A] {
	return MonadChain(fa, func(a A) Reader[R, A] {
		return MonadMap(f(a), F.Constant1[B](a))
	})
}

// ChainFirst is the curried version of [MonadChainFirst]
func ChainFirst[R, A, B any](f func(A) Reader[R, B]) func(Reader[R, A]) Reader[R, A] {
	return F.Bind2nd(MonadChainFirst[R, A, B], f)
}

// MonadAp applies a function computed from the environment to a value computed
// from the same environment
func MonadAp[R, B, A any](fab Reader[R, func(A) B], fa Reader[R, A]) Reader[R, B] {
	return func(r R) B {
		return fab(r)(fa(r))
	}
}

// Ap is the curried version of [MonadAp]
func Ap[B, R, A any](fa Reader[R, A]) func(Reader[R, func(A) B]) Reader[R, B] {
	return F.Bind2nd(MonadAp[R, B, A], fa)
}

// Flatten removes one level of nesting
func Flatten[R, A any](mma Reader[R, Reader[R, A]]) Reader[R, A] {
	return MonadChain(mma, F.Identity[Reader[R, A]])
}

// Local runs a computation under a modified environment. This is the
// contravariant side of the profunctor.
func Local[A, R1, R2 any](f func(R2) R1) func(Reader[R1, A]) Reader[R2, A] {
	return func(fa Reader[R1, A]) Reader[R2, A] {
		return F.Flow2(f, fa)
	}
}

// Promap maps the environment contravariantly and the result covariantly
func Promap[R1, R2, A, B any](f func(R2) R1, g func(A) B) func(Reader[R1, A]) Reader[R2, B] {
	return func(fa Reader[R1, A]) Reader[R2, B] {
		return F.Flow3(f, fa, g)
	}
}

// MonadZipWith combines two computations over the same environment
func MonadZipWith[R, A, B, C any](fa Reader[R, A], fb Reader[R, B], f func(A, B) C) Reader[R, C] {
	return func(r R) C {
		return f(fa(r), fb(r))
	}
}

// ZipWith is the curried version of [MonadZipWith]
func ZipWith[R, A, B, C any](fb Reader[R, B], f func(A, B) C) func(Reader[R, A]) Reader[R, C] {
	return func(fa Reader[R, A]) Reader[R, C] {
		return MonadZipWith(fa, fb, f)
	}
}

// Read runs the computation against an environment
func Read[R, A any](r R) func(Reader[R, A]) A {
	return func(fa Reader[R, A]) A {
		return fa(r)
	}
}

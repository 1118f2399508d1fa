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

// package resource implements the bracket pattern as a composable value. A
// [Resource] describes how to acquire a value and how to release it; [Use]
// guarantees that the release runs exactly once on every exit path of the
// computation. Composed resources release in reverse order of acquisition,
// finalizers run after the primary release in reverse order of registration.
package resource

import (
	"io"

	F "github.com/paths-fp/paths/function"
	IOR "github.com/paths-fp/paths/ioresult"
	R "github.com/paths-fp/paths/result"
)

// Resource describes the acquisition and release of a value
type Resource[A any] func() R.Result[acquired[A]]

type acquired[A any] struct {
	value A
	// primary cleanup of the value
	release func() R.Result[F.Void]
	// run after release; the slice is ordered newest registration first
	finalizers []func() R.Result[F.Void]
}

// releaseAll runs the primary release and then every finalizer. Everything
// runs; the first failure observed wins.
func releaseAll[A any](acq acquired[A]) R.Result[F.Void] {
	res := acq.release()
	for _, finalizer := range acq.finalizers {
		finRes := finalizer()
		if R.IsOk(res) && R.IsError(finRes) {
			res = finRes
		}
	}
	return res
}

// Make creates a [Resource] from an acquire and a release action
func Make[A any](acquire IOR.IOResult[A], release func(A) IOR.IOResult[F.Void]) Resource[A] {
	return func() R.Result[acquired[A]] {
		return R.Map[A](func(a A) acquired[A] {
			return acquired[A]{value: a, release: func() R.Result[F.Void] {
				return release(a)()
			}}
		})(acquire())
	}
}

// FromAutoCloseable creates a [Resource] whose release closes the value
func FromAutoCloseable[A io.Closer](acquire IOR.IOResult[A]) Resource[A] {
	return Make(acquire, func(a A) IOR.IOResult[F.Void] {
		return IOR.TryCatch(func() (F.Void, error) {
			return F.VOID, a.Close()
		})
	})
}

// Of creates a [Resource] without any cleanup
func Of[A any](a A) Resource[A] {
	return Make(IOR.Of(a), F.Constant1[A](IOR.Of(F.VOID)))
}

// MonadMap transforms the acquired value, the cleanup is unchanged
func MonadMap[A, B any](fa Resource[A], f func(A) B) Resource[B] {
	return func() R.Result[acquired[B]] {
		return R.Map[acquired[A]](func(acq acquired[A]) acquired[B] {
			return acquired[B]{value: f(acq.value), release: acq.release, finalizers: acq.finalizers}
		})(fa())
	}
}

// Map is the curried version of [MonadMap]
func Map[A, B any](f func(A) B) func(Resource[A]) Resource[B] {
	return F.Bind2nd(MonadMap[A, B], f)
}

// MonadChain acquires a dependent resource. The dependent resource fully
// releases, finalizers included, before its parent.
func MonadChain[A, B any](fa Resource[A], f func(A) Resource[B]) Resource[B] {
	return func() R.Result[acquired[B]] {
		resA := fa()
		return R.Fold(R.Error[acquired[B]], func(acqA acquired[A]) R.Result[acquired[B]] {
			resB := f(acqA.value)()
			return R.Fold(func(err error) R.Result[acquired[B]] {
				// acquiring the dependent resource failed, release the parent
				releaseAll(acqA)
				return R.Error[acquired[B]](err)
			}, func(acqB acquired[B]) R.Result[acquired[B]] {
				return R.Ok(acquired[B]{
					value: acqB.value,
					release: func() R.Result[F.Void] {
						resB := releaseAll(acqB)
						resA := releaseAll(acqA)
						if R.IsError(resB) {
							return resB
						}
						return resA
					},
				})
			})(resB)
		})(resA)
	}
}

// Chain is the curried version of [MonadChain]
func Chain[A, B any](f func(A) Resource[B]) func(Resource[A]) Resource[B] {
	return F.Bind2nd(MonadChain[A, B], f)
}

// And composes two independent resources into a pair of values. Release runs
// in reverse acquisition order, the second resource before the first.
func And[B, A any](fb Resource[B]) func(Resource[A]) Resource[func() (A, B)] {
	return func(fa Resource[A]) Resource[func() (A, B)] {
		return MonadChain(fa, func(a A) Resource[func() (A, B)] {
			return MonadMap(fb, func(b B) func() (A, B) {
				return func() (A, B) {
					return a, b
				}
			})
		})
	}
}

// WithFinalizer adds a cleanup action that runs after the primary release.
// Finalizers registered later run earlier, reverse registration order.
func WithFinalizer[A any](finalizer IOR.IOResult[F.Void]) func(Resource[A]) Resource[A] {
	return func(fa Resource[A]) Resource[A] {
		return func() R.Result[acquired[A]] {
			return R.Map[acquired[A]](func(acq acquired[A]) acquired[A] {
				finalizers := make([]func() R.Result[F.Void], 0, len(acq.finalizers)+1)
				finalizers = append(finalizers, func() R.Result[F.Void] {
					return finalizer()
				})
				finalizers = append(finalizers, acq.finalizers...)
				return acquired[A]{value: acq.value, release: acq.release, finalizers: finalizers}
			})(fa())
		}
	}
}

// Use acquires the resource, runs the computation and releases on every exit
// path. The release runs exactly once; a failing release replaces a
// successful outcome, a panic in the computation is materialized as a failure
// before the release runs.
func Use[A, B any](use func(A) IOR.IOResult[B]) func(Resource[A]) IOR.IOResult[B] {
	return func(fa Resource[A]) IOR.IOResult[B] {
		return func() R.Result[B] {
			return R.Fold(R.Error[B], func(acq acquired[A]) R.Result[B] {
				outcome := IOR.TryCatch(func() (B, error) {
					return R.Unwrap(use(acq.value)())
				})()
				released := releaseAll(acq)
				if _, err := R.Unwrap(released); err != nil && R.IsOk(outcome) {
					return R.Error[B](err)
				}
				return outcome
			})(fa())
		}
	}
}

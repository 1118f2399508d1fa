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

// package ioresult implements the failable synchronous effect path. An
// [IOResult] describes a computation that, when run, yields a value or the
// error that prevented it. Panics raised by wrapped thunks are caught at the
// path boundary and materialized as failures; no panic crosses an [IOResult].
package ioresult

import (
	ET "github.com/paths-fp/paths/either"
	F "github.com/paths-fp/paths/function"
	IO "github.com/paths-fp/paths/io"
	O "github.com/paths-fp/paths/option"
	R "github.com/paths-fp/paths/result"
)

// IOResult represents a synchronous computation that may fail
type IOResult[A any] func() R.Result[A]

// Of wraps a pure value into a successful computation
func Of[A any](a A) IOResult[A] {
	return F.Constant(R.Ok(a))
}

// Left wraps an error into a failed computation
func Left[A any](err error) IOResult[A] {
	return F.Constant(R.Error[A](err))
}

// FromResult lifts an already computed [R.Result]
func FromResult[A any](res R.Result[A]) IOResult[A] {
	return F.Constant(res)
}

// FromIO lifts an infallible computation
func FromIO[A any](ma IO.IO[A]) IOResult[A] {
	return func() R.Result[A] {
		return R.Ok(ma())
	}
}

// FromOption lifts an optional value, the onNone callback supplies the error
func FromOption[A any](onNone func() error) func(O.Option[A]) IOResult[A] {
	from := R.FromOption[A](onNone)
	return func(ma O.Option[A]) IOResult[A] {
		return FromResult(from(ma))
	}
}

// TryCatch wraps a fallible thunk, converting a panic into a failure
func TryCatch[A any](f func() (A, error)) IOResult[A] {
	return func() R.Result[A] {
		return R.TryCatch(f)
	}
}

// MonadMap transforms the success value
func MonadMap[A, B any](fa IOResult[A], f func(A) B) IOResult[B] {
	return func() R.Result[B] {
		return R.Map[A, B](f)(fa())
	}
}

// Map is the curried version of [MonadMap]
func Map[A, B any](f func(A) B) func(IOResult[A]) IOResult[B] {
	return F.Bind2nd(MonadMap[A, B], f)
}

// MonadMapError transforms the error of a failed computation
func MonadMapError[A any](fa IOResult[A], f func(error) error) IOResult[A] {
	return func() R.Result[A] {
		return R.MapError[A](f)(fa())
	}
}

// MapError is the curried version of [MonadMapError]
func MapError[A any](f func(error) error) func(IOResult[A]) IOResult[A] {
	return F.Bind2nd(MonadMapError[A], f)
}

// MonadChain composes computations in sequence. A failure short circuits, the
// continuation is not executed.
func MonadChain[A, B any](fa IOResult[A], f func(A) IOResult[B]) IOResult[B] {
	return func() R.Result[B] {
		return ET.MonadFold(fa(), R.Error[B], func(a A) R.Result[B] {
			return f(a)()
		})
	}
}

// Chain is the curried version of [MonadChain]
func Chain[A, B any](f func(A) IOResult[B]) func(IOResult[A]) IOResult[B] {
	return F.Bind2nd(MonadChain[A, B], f)
}

// MonadChainFirst runs a second computation for its effect and keeps the first result
func MonadChainFirst[A, B any](fa IOResult[A], f func(A) IOResult[B]) IOResult[A] {
	return MonadChain(fa, func(a A) IOResult[A] {
		return MonadMap(f(a), F.Constant1[B](a))
	})
}

// ChainFirst is the curried version of [MonadChainFirst]
func ChainFirst[A, B any](f func(A) IOResult[B]) func(IOResult[A]) IOResult[A] {
	return F.Bind2nd(MonadChainFirst[A, B], f)
}

// MonadChainTo composes computations in sequence, ignoring the first result
func MonadChainTo[A, B any](fa IOResult[A], fb IOResult[B]) IOResult[B] {
	return MonadChain(fa, F.Constant1[A](fb))
}

// ChainTo is the curried version of [MonadChainTo]
func ChainTo[A, B any](fb IOResult[B]) func(IOResult[A]) IOResult[B] {
	return F.Bind2nd(MonadChainTo[A, B], fb)
}

// ChainIOK chains into an infallible computation
func ChainIOK[A, B any](f func(A) IO.IO[B]) func(IOResult[A]) IOResult[B] {
	return Chain(F.Flow2(f, FromIO[B]))
}

// ChainResultK chains into an already computed result
func ChainResultK[A, B any](f func(A) R.Result[B]) func(IOResult[A]) IOResult[B] {
	return Chain(F.Flow2(f, FromResult[B]))
}

// MonadAp runs both computations and applies the function to the value. The
// argument is computed on a second goroutine like the parallel ap of the io
// path; the first failure wins.
func MonadAp[B, A any](mab IOResult[func(A) B], ma IOResult[A]) IOResult[B] {
	return func() R.Result[B] {
		c := make(chan R.Result[A], 1)
		go func() {
			c <- ma()
			close(c)
		}()
		fab := mab()
		fa := <-c
		return ET.MonadFold(fab, R.Error[B], func(ab func(A) B) R.Result[B] {
			return R.Map[A, B](ab)(fa)
		})
	}
}

// Ap is the curried version of [MonadAp]
func Ap[B, A any](ma IOResult[A]) func(IOResult[func(A) B]) IOResult[B] {
	return F.Bind2nd(MonadAp[B, A], ma)
}

// Flatten removes one level of nesting
func Flatten[A any](mma IOResult[IOResult[A]]) IOResult[A] {
	return MonadChain(mma, F.Identity[IOResult[A]])
}

// Fold eliminates the computation into an infallible one
func Fold[A, B any](onError func(error) IO.IO[B], onOk func(A) IO.IO[B]) func(IOResult[A]) IO.IO[B] {
	return func(ma IOResult[A]) IO.IO[B] {
		return func() B {
			return ET.MonadFold(ma(), func(err error) B {
				return onError(err)()
			}, func(a A) B {
				return onOk(a)()
			})
		}
	}
}

// MonadHandleErrorWith rescues a failure with a new computation
func MonadHandleErrorWith[A any](fa IOResult[A], onError func(error) IOResult[A]) IOResult[A] {
	return func() R.Result[A] {
		return ET.MonadFold(fa(), func(err error) R.Result[A] {
			return onError(err)()
		}, R.Ok[A])
	}
}

// HandleErrorWith is the curried version of [MonadHandleErrorWith]
func HandleErrorWith[A any](onError func(error) IOResult[A]) func(IOResult[A]) IOResult[A] {
	return F.Bind2nd(MonadHandleErrorWith[A], onError)
}

// HandleError rescues a failure with a pure value
func HandleError[A any](onError func(error) A) func(IOResult[A]) IOResult[A] {
	return HandleErrorWith(F.Flow2(onError, Of[A]))
}

// OrElse is an alias of [HandleErrorWith]
func OrElse[A any](onError func(error) IOResult[A]) func(IOResult[A]) IOResult[A] {
	return HandleErrorWith(onError)
}

// Alt returns the result of the first computation if it succeeds, else runs the second
func Alt[A any](that func() IOResult[A]) func(IOResult[A]) IOResult[A] {
	return HandleErrorWith(F.Ignore1of1[error](that))
}

// Memoize computes the value of the provided computation lazily but exactly once
func Memoize[A any](ma IOResult[A]) IOResult[A] {
	return IOResult[A](IO.Memoize(IO.IO[R.Result[A]](ma)))
}

// Defer creates an [IOResult] by creating a brand new computation via a generator function, each time
func Defer[A any](gen func() IOResult[A]) IOResult[A] {
	return func() R.Result[A] {
		return gen()()
	}
}

// RunSafe executes the computation and returns the outcome as a value, never panicking
func RunSafe[A any](ma IOResult[A]) R.Result[A] {
	return ma()
}

// Unwrap executes the computation and returns the idiomatic value/error tuple
func Unwrap[A any](ma IOResult[A]) (A, error) {
	return R.Unwrap(ma())
}

// UnsafeRun executes the computation, panicking with the error on failure
func UnsafeRun[A any](ma IOResult[A]) A {
	return ET.MonadFold(ma(), func(err error) A {
		panic(err)
	}, F.Identity[A])
}

// ToIO converts into an infallible computation of a [R.Result]
func ToIO[A any](ma IOResult[A]) IO.IO[R.Result[A]] {
	return IO.IO[R.Result[A]](ma)
}

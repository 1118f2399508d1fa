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

// package readerresult implements the configuration + error effect context, a
// computation that reads from an environment and may fail
package readerresult

import (
	ET "github.com/paths-fp/paths/either"
	F "github.com/paths-fp/paths/function"
	RD "github.com/paths-fp/paths/reader"
	R "github.com/paths-fp/paths/result"
)

// ReaderResult represents a fallible computation over an environment
type ReaderResult[C, A any] = RD.Reader[C, R.Result[A]]

// Of wraps a value into a successful computation
func Of[C, A any](a A) ReaderResult[C, A] {
	return RD.Of[C](R.Ok(a))
}

// Left wraps an error into a failed computation
func Left[C, A any](err error) ReaderResult[C, A] {
	return RD.Of[C](R.Error[A](err))
}

// Ask reads the environment itself
func Ask[C any]() ReaderResult[C, C] {
	return F.Flow2(F.Identity[C], R.Ok[C])
}

// Asks derives a computation from an accessor of the environment
func Asks[C, A any](f func(C) A) ReaderResult[C, A] {
	return F.Flow2(f, R.Ok[A])
}

// FromResult lifts an already computed result
func FromResult[C, A any](res R.Result[A]) ReaderResult[C, A] {
	return RD.Of[C](res)
}

// FromReader lifts an infallible environment computation
func FromReader[C, A any](fa RD.Reader[C, A]) ReaderResult[C, A] {
	return F.Flow2(fa, R.Ok[A])
}

// Map transforms the success value
func Map[C, A, B any](f func(A) B) func(ReaderResult[C, A]) ReaderResult[C, B] {
	return RD.Map[C](R.Map[A, B](f))
}

// MapError transforms the error
func MapError[C, A any](f func(error) error) func(ReaderResult[C, A]) ReaderResult[C, A] {
	return RD.Map[C](R.MapError[A](f))
}

// Chain composes computations over the same environment, failures short circuit
func Chain[C, A, B any](f func(A) ReaderResult[C, B]) func(ReaderResult[C, A]) ReaderResult[C, B] {
	return func(fa ReaderResult[C, A]) ReaderResult[C, B] {
		return func(c C) R.Result[B] {
			return ET.MonadFold(fa(c), R.Error[B], func(a A) R.Result[B] {
				return f(a)(c)
			})
		}
	}
}

// Ap applies a function computed from the environment to a value computed from
// the same environment, failures short circuit
func Ap[B, C, A any](fa ReaderResult[C, A]) func(ReaderResult[C, func(A) B]) ReaderResult[C, B] {
	return func(fab ReaderResult[C, func(A) B]) ReaderResult[C, B] {
		return func(c C) R.Result[B] {
			return ET.MonadChain(fab(c), func(ab func(A) B) R.Result[B] {
				return R.Map[A, B](ab)(fa(c))
			})
		}
	}
}

// OrElse recovers from a failure with a new computation
func OrElse[C, A any](onError func(error) ReaderResult[C, A]) func(ReaderResult[C, A]) ReaderResult[C, A] {
	return func(fa ReaderResult[C, A]) ReaderResult[C, A] {
		return func(c C) R.Result[A] {
			return ET.MonadFold(fa(c), func(err error) R.Result[A] {
				return onError(err)(c)
			}, R.Ok[A])
		}
	}
}

// Local runs a computation under a modified environment
func Local[A, C1, C2 any](f func(C2) C1) func(ReaderResult[C1, A]) ReaderResult[C2, A] {
	return RD.Local[R.Result[A]](f)
}

// Read runs the computation against an environment
func Read[C, A any](c C) func(ReaderResult[C, A]) R.Result[A] {
	return RD.Read[C, R.Result[A]](c)
}

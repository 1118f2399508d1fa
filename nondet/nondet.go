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

// package nondet implements the non-deterministic effect path. A [NonDet] is
// algebraically a list but every element is read as one possible outcome of the
// computation; [Chain] and [Ap] enumerate all combinations in declaration order.
package nondet

import (
	A "github.com/paths-fp/paths/array"
	F "github.com/paths-fp/paths/function"
)

// NonDet describes a computation with any number of possible outcomes
type NonDet[A any] []A

// Of describes a computation with exactly one outcome
func Of[T any](t T) NonDet[T] {
	return NonDet[T]{t}
}

// From enumerates the possible outcomes
func From[T any](data ...T) NonDet[T] {
	return data
}

// FromArray reads each element of a slice as a possible outcome
func FromArray[T any](as []T) NonDet[T] {
	return as
}

// Zero describes a computation without any outcome
func Zero[T any]() NonDet[T] {
	return nil
}

// ToArray enumerates the outcomes in declaration order
func ToArray[T any](fa NonDet[T]) []T {
	return fa
}

// MonadMap transforms every outcome
func MonadMap[T, U any](fa NonDet[T], f func(T) U) NonDet[U] {
	return A.MonadMap(fa, f)
}

// Map is the curried version of [MonadMap]
func Map[T, U any](f func(T) U) func(NonDet[T]) NonDet[U] {
	return F.Bind2nd(MonadMap[T, U], f)
}

// MonadChain continues the computation with every outcome, enumerating all combinations
func MonadChain[T, U any](fa NonDet[T], f func(T) NonDet[U]) NonDet[U] {
	return A.MonadChain(fa, func(t T) []U {
		return f(t)
	})
}

// Chain is the curried version of [MonadChain]
func Chain[T, U any](f func(T) NonDet[U]) func(NonDet[T]) NonDet[U] {
	return F.Bind2nd(MonadChain[T, U], f)
}

// MonadAp is the Cartesian applicative over possible outcomes
func MonadAp[U, T any](fab NonDet[func(T) U], fa NonDet[T]) NonDet[U] {
	return MonadChain(fab, func(f func(T) U) NonDet[U] {
		return MonadMap(fa, f)
	})
}

// Ap is the curried version of [MonadAp]
func Ap[U, T any](fa NonDet[T]) func(NonDet[func(T) U]) NonDet[U] {
	return F.Bind2nd(MonadAp[U, T], fa)
}

// Filter prunes the outcomes that fail the predicate
func Filter[T any](pred func(T) bool) func(NonDet[T]) NonDet[T] {
	return func(fa NonDet[T]) NonDet[T] {
		return A.Filter(pred)(fa)
	}
}

// MonadAlt merges the outcomes of two computations
func MonadAlt[T any](fa NonDet[T], that func() NonDet[T]) NonDet[T] {
	return append(A.Copy(fa), that()...)
}

// Alt is the curried version of [MonadAlt]
func Alt[T any](that func() NonDet[T]) func(NonDet[T]) NonDet[T] {
	return F.Bind2nd(MonadAlt[T], that)
}

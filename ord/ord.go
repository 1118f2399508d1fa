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

// package ord implements total orderings as first class values
package ord

import (
	"cmp"

	E "github.com/paths-fp/paths/eq"
)

// Ord is a total ordering for values of type T
type Ord[T any] interface {
	E.Eq[T]
	Compare(x, y T) int
}

type ord[T any] struct {
	c func(x, y T) int
	e func(x, y T) bool
}

func (o ord[T]) Compare(x, y T) int {
	return o.c(x, y)
}

func (o ord[T]) Equals(x, y T) bool {
	return o.e(x, y)
}

// MakeOrd constructs an [Ord] from a compare and an equals function
func MakeOrd[T any](c func(x, y T) int, e func(x, y T) bool) Ord[T] {
	return ord[T]{c: c, e: e}
}

// FromCompare constructs an [Ord] from a compare function alone
func FromCompare[T any](c func(x, y T) int) Ord[T] {
	return MakeOrd(c, func(x, y T) bool {
		return c(x, y) == 0
	})
}

// FromStrictCompare constructs an [Ord] from the canonical ordering operators
func FromStrictCompare[T cmp.Ordered]() Ord[T] {
	return FromCompare(cmp.Compare[T])
}

// Reverse inverts an ordering
func Reverse[T any](o Ord[T]) Ord[T] {
	return MakeOrd(func(x, y T) int {
		return o.Compare(y, x)
	}, o.Equals)
}

// Min takes the smaller of two values
func Min[T any](o Ord[T]) func(T, T) T {
	return func(x, y T) T {
		if o.Compare(x, y) <= 0 {
			return x
		}
		return y
	}
}

// Max takes the larger of two values
func Max[T any](o Ord[T]) func(T, T) T {
	return func(x, y T) T {
		if o.Compare(x, y) >= 0 {
			return x
		}
		return y
	}
}

// Lt tests whether one value is strictly less than another
func Lt[T any](o Ord[T]) func(T) func(T) bool {
	return func(y T) func(T) bool {
		return func(x T) bool {
			return o.Compare(x, y) < 0
		}
	}
}

// Between tests whether a value lies in the closed range [lo, hi]
func Between[T any](o Ord[T]) func(lo, hi T) func(T) bool {
	return func(lo, hi T) func(T) bool {
		return func(x T) bool {
			return o.Compare(x, lo) >= 0 && o.Compare(x, hi) <= 0
		}
	}
}

// Contramap creates an [Ord] on T out of an [Ord] on A via a mapping from T to A
func Contramap[T, A any](f func(T) A) func(Ord[A]) Ord[T] {
	return func(o Ord[A]) Ord[T] {
		return MakeOrd(func(x, y T) int {
			return o.Compare(f(x), f(y))
		}, func(x, y T) bool {
			return o.Equals(f(x), f(y))
		})
	}
}

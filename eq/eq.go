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

// package eq implements equality predicates as first class values
package eq

import (
	F "github.com/paths-fp/paths/function"
)

// Eq asserts the equality of two values of the same type
type Eq[T any] interface {
	Equals(x, y T) bool
}

type eq[T any] struct {
	c func(x, y T) bool
}

func (e eq[T]) Equals(x, y T) bool {
	return e.c(x, y)
}

func strictEq[A comparable](a, b A) bool {
	return a == b
}

// FromStrictEquals constructs an [Eq] from the canonical comparison operator
func FromStrictEquals[T comparable]() Eq[T] {
	return FromEquals(strictEq[T])
}

// FromEquals constructs an [Eq] from a comparison function
func FromEquals[T any](c func(x, y T) bool) Eq[T] {
	return eq[T]{c: c}
}

// Empty considers all values equal
func Empty[T any]() Eq[T] {
	return FromEquals(F.Constant2[T, T](true))
}

// Equals curries the equality check
func Equals[T any](eq Eq[T]) func(T) func(T) bool {
	return func(other T) func(T) bool {
		return F.Bind2nd(eq.Equals, other)
	}
}

// Contramap creates an [Eq] on T out of an [Eq] on A via a mapping from T to A
func Contramap[T, A any](f func(T) A) func(Eq[A]) Eq[T] {
	return func(e Eq[A]) Eq[T] {
		return FromEquals(func(x, y T) bool {
			return e.Equals(f(x), f(y))
		})
	}
}

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

// package pair implements a strongly typed two element container. The [Pair] is the
// value/state product returned by stateful computations.
package pair

import (
	"fmt"

	T "github.com/paths-fp/paths/tuple"
)

// Pair defines a data structure that holds two strongly typed values
type Pair[A, B any] struct {
	h A
	t B
}

// String prints some debug info for the object
func (s Pair[A, B]) String() string {
	return fmt.Sprintf("Pair[%T, %T](%v, %v)", s.h, s.t, s.h, s.t)
}

// Format prints some debug info for the object
func (s Pair[A, B]) Format(f fmt.State, c rune) {
	switch c {
	default:
		fmt.Fprint(f, s.String())
	}
}

// MakePair creates a [Pair] from two values
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{h: a, t: b}
}

// Of creates a [Pair] with the same value in both fields
func Of[A any](value A) Pair[A, A] {
	return MakePair(value, value)
}

// Head returns the head value of the pair
func Head[A, B any](fa Pair[A, B]) A {
	return fa.h
}

// Tail returns the tail value of the pair
func Tail[A, B any](fa Pair[A, B]) B {
	return fa.t
}

// FromTuple creates a [Pair] from a [T.Tuple2]
func FromTuple[A, B any](t T.Tuple2[A, B]) Pair[A, B] {
	return MakePair(t.F1, t.F2)
}

// ToTuple creates a [T.Tuple2] from a [Pair]
func ToTuple[A, B any](p Pair[A, B]) T.Tuple2[A, B] {
	return T.MakeTuple2(p.h, p.t)
}

// Swap exchanges head and tail
func Swap[A, B any](fa Pair[A, B]) Pair[B, A] {
	return MakePair(fa.t, fa.h)
}

// MapHead transforms the head value
func MapHead[B, A, A1 any](f func(A) A1) func(Pair[A, B]) Pair[A1, B] {
	return func(fa Pair[A, B]) Pair[A1, B] {
		return MakePair(f(fa.h), fa.t)
	}
}

// MapTail transforms the tail value
func MapTail[A, B, B1 any](f func(B) B1) func(Pair[A, B]) Pair[A, B1] {
	return func(fa Pair[A, B]) Pair[A, B1] {
		return MakePair(fa.h, f(fa.t))
	}
}

// BiMap transforms both values
func BiMap[A, B, A1, B1 any](f func(A) A1, g func(B) B1) func(Pair[A, B]) Pair[A1, B1] {
	return func(fa Pair[A, B]) Pair[A1, B1] {
		return MakePair(f(fa.h), g(fa.t))
	}
}

// Merge collapses a pair via a binary function
func Merge[A, B, R any](f func(A, B) R) func(Pair[A, B]) R {
	return func(fa Pair[A, B]) R {
		return f(fa.h, fa.t)
	}
}

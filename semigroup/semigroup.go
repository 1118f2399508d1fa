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

// package semigroup implements associative combining operations. The associativity law
//
//	Concat(a, Concat(b, c)) == Concat(Concat(a, b), c)
//
// is assumed for every instance and validated by the law tests.
package semigroup

import (
	F "github.com/paths-fp/paths/function"
	M "github.com/paths-fp/paths/magma"
	O "github.com/paths-fp/paths/ord"
)

// Semigroup is an associative [M.Magma]
type Semigroup[A any] interface {
	M.Magma[A]
}

type semigroup[A any] struct {
	c func(A, A) A
}

func (s semigroup[A]) Concat(x A, y A) A {
	return s.c(x, y)
}

// MakeSemigroup creates a [Semigroup] from an associative binary function
func MakeSemigroup[A any](c func(A, A) A) Semigroup[A] {
	return semigroup[A]{c: c}
}

// Reverse returns the dual of a [Semigroup], obtained by swapping the arguments of Concat
func Reverse[A any](s Semigroup[A]) Semigroup[A] {
	return MakeSemigroup(M.Reverse[A](s).Concat)
}

// First always returns the first argument
func First[A any]() Semigroup[A] {
	return MakeSemigroup(F.First[A, A])
}

// Last always returns the last argument
func Last[A any]() Semigroup[A] {
	return MakeSemigroup(F.Second[A, A])
}

// MinSemigroup takes the smaller of two values
func MinSemigroup[A any](o O.Ord[A]) Semigroup[A] {
	return MakeSemigroup(O.Min(o))
}

// MaxSemigroup takes the larger of two values
func MaxSemigroup[A any](o O.Ord[A]) Semigroup[A] {
	return MakeSemigroup(O.Max(o))
}

// FunctionSemigroup forms a semigroup of functions as long as you can provide a semigroup for the codomain
func FunctionSemigroup[A, B any](s Semigroup[B]) Semigroup[func(A) B] {
	return MakeSemigroup(func(f func(A) B, g func(A) B) func(A) B {
		return func(a A) B {
			return s.Concat(f(a), g(a))
		}
	})
}

// ApplySemigroup lifts a [Semigroup] on the element into a semigroup on the effect, given
// the map and ap capabilities of any Apply
func ApplySemigroup[A, HKTA, HKTFA any](
	fmap func(HKTA, func(A) func(A) A) HKTFA,
	fap func(HKTFA, HKTA) HKTA,
	s Semigroup[A],
) Semigroup[HKTA] {
	concat := F.Curry2(s.Concat)
	return MakeSemigroup(func(x HKTA, y HKTA) HKTA {
		return fap(fmap(x, concat), y)
	})
}

// ConcatAll combines a list of values with a seed
func ConcatAll[A any](s Semigroup[A]) func(A) func([]A) A {
	return func(initial A) func([]A) A {
		return func(as []A) A {
			acc := initial
			for _, a := range as {
				acc = s.Concat(acc, a)
			}
			return acc
		}
	}
}

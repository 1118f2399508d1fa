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

// package monoid implements associative combining operations with an identity element.
// In addition to associativity, every instance satisfies
//
//	Concat(Empty(), a) == a == Concat(a, Empty())
package monoid

import (
	E "github.com/paths-fp/paths/eq"
	S "github.com/paths-fp/paths/semigroup"
)

// Monoid is a [S.Semigroup] with an identity element
type Monoid[A any] interface {
	S.Semigroup[A]
	Empty() A
}

type monoid[A any] struct {
	c func(A, A) A
	e A
}

func (m monoid[A]) Concat(x A, y A) A {
	return m.c(x, y)
}

func (m monoid[A]) Empty() A {
	return m.e
}

// MakeMonoid creates a [Monoid] given a concat function and an empty element
func MakeMonoid[A any](c func(A, A) A, e A) Monoid[A] {
	return monoid[A]{c: c, e: e}
}

// Reverse returns the dual of a [Monoid], obtained by swapping the arguments of Concat
func Reverse[A any](m Monoid[A]) Monoid[A] {
	return MakeMonoid(S.Reverse[A](m).Concat, m.Empty())
}

// ToSemigroup forgets the identity element
func ToSemigroup[A any](m Monoid[A]) S.Semigroup[A] {
	return S.Semigroup[A](m)
}

// FunctionMonoid forms a monoid of functions as long as you can provide a monoid for the codomain
func FunctionMonoid[A, B any](m Monoid[B]) Monoid[func(A) B] {
	empty := m.Empty()
	return MakeMonoid(S.FunctionSemigroup[A](m).Concat, func(_ A) B {
		return empty
	})
}

// ApplicativeMonoid lifts a [Monoid] on the element into a monoid on the effect, given
// the of, map and ap capabilities of any Applicative
func ApplicativeMonoid[A, HKTA, HKTFA any](
	fof func(A) HKTA,
	fmap func(HKTA, func(A) func(A) A) HKTFA,
	fap func(HKTFA, HKTA) HKTA,
	m Monoid[A],
) Monoid[HKTA] {
	return MakeMonoid(S.ApplySemigroup(fmap, fap, S.Semigroup[A](m)).Concat, fof(m.Empty()))
}

// ConcatAll folds a list of values starting with the identity element
func ConcatAll[A any](m Monoid[A]) func([]A) A {
	return S.ConcatAll[A](m)(m.Empty())
}

// ConcatN combines a value with itself n times, n == 0 yields the identity element
func ConcatN[A any](m Monoid[A]) func(A, uint) A {
	return func(a A, n uint) A {
		acc := m.Empty()
		for i := uint(0); i < n; i++ {
			acc = m.Concat(acc, a)
		}
		return acc
	}
}

// IsEmpty tests a value for equality with the identity element
func IsEmpty[A any](e E.Eq[A], m Monoid[A]) func(A) bool {
	return func(a A) bool {
		return e.Equals(a, m.Empty())
	}
}

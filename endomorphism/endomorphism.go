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

// package endomorphism implements functions from a type onto itself, which
// form a monoid under composition
package endomorphism

import (
	F "github.com/paths-fp/paths/function"
	M "github.com/paths-fp/paths/monoid"
)

// Endomorphism is a function from a type onto itself
type Endomorphism[A any] func(A) A

// Identity is the neutral endomorphism
func Identity[A any]() Endomorphism[A] {
	return F.Identity[A]
}

// Compose applies the endomorphisms left to right
func Compose[A any](f Endomorphism[A], g Endomorphism[A]) Endomorphism[A] {
	return func(a A) A {
		return g(f(a))
	}
}

// Monoid composes endomorphisms, empty is the identity function
func Monoid[A any]() M.Monoid[Endomorphism[A]] {
	return M.MakeMonoid(Compose[A], Identity[A]())
}

// Curry2 converts a binary function into a curried function yielding an endomorphism
func Curry2[A, S any](f func(S, A) S) func(A) Endomorphism[S] {
	return func(a A) Endomorphism[S] {
		return func(s S) S {
			return f(s, a)
		}
	}
}

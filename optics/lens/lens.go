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

// package lens implements the optic used to zoom inside a product
package lens

import (
	EM "github.com/paths-fp/paths/endomorphism"
	F "github.com/paths-fp/paths/function"
)

// Lens is a reference to a subpart of a data type
type Lens[S, A any] struct {
	Get func(s S) A
	Set func(a A) EM.Endomorphism[S]
}

// MakeLens creates a [Lens] based on a getter and a setter function. Make sure
// the setter creates a shallow copy of the data, which happens automatically
// if the data is passed by value.
func MakeLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return MakeLensCurried(get, EM.Curry2(set))
}

// MakeLensCurried creates a [Lens] based on a getter and a curried setter
func MakeLensCurried[S, A any](get func(S) A, set func(A) EM.Endomorphism[S]) Lens[S, A] {
	return Lens[S, A]{Get: get, Set: set}
}

// Id returns a [Lens] implementing the identity operation
func Id[S any]() Lens[S, S] {
	return MakeLens(F.Identity[S], F.Second[S, S])
}

// Compose focuses the lens deeper into the data structure
func Compose[S, A, B any](ab Lens[A, B]) func(Lens[S, A]) Lens[S, B] {
	return func(sa Lens[S, A]) Lens[S, B] {
		return MakeLensCurried(
			F.Flow2(sa.Get, ab.Get),
			func(b B) EM.Endomorphism[S] {
				return func(s S) S {
					return sa.Set(ab.Set(b)(sa.Get(s)))(s)
				}
			},
		)
	}
}

// Modify transforms the focused value through a function
func Modify[S, A any](f func(A) A) func(Lens[S, A]) EM.Endomorphism[S] {
	return func(sa Lens[S, A]) EM.Endomorphism[S] {
		return func(s S) S {
			return sa.Set(f(sa.Get(s)))(s)
		}
	}
}

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

// package optional implements the affine optic, a reference to a subpart of a
// data type that may be absent
package optional

import (
	EM "github.com/paths-fp/paths/endomorphism"
	F "github.com/paths-fp/paths/function"
	L "github.com/paths-fp/paths/optics/lens"
	O "github.com/paths-fp/paths/option"
)

// Optional is a reference to a subpart of a data type that is not always present
type Optional[S, A any] struct {
	GetOption func(s S) O.Option[A]
	Set       func(a A) EM.Endomorphism[S]
}

// MakeOptional creates an [Optional] from an optional getter and a setter
func MakeOptional[S, A any](getOption func(S) O.Option[A], set func(S, A) S) Optional[S, A] {
	return Optional[S, A]{GetOption: getOption, Set: EM.Curry2(set)}
}

// Id returns an [Optional] implementing the identity operation
func Id[S any]() Optional[S, S] {
	return MakeOptional(O.Some[S], F.Second[S, S])
}

// FromPredicate focuses on the value only when it satisfies the predicate
func FromPredicate[S any](pred func(S) bool) Optional[S, S] {
	return MakeOptional(O.FromPredicate(pred), F.Second[S, S])
}

// FromLens weakens a [L.Lens] into an [Optional] that always matches
func FromLens[S, A any](sa L.Lens[S, A]) Optional[S, A] {
	return Optional[S, A]{GetOption: F.Flow2(sa.Get, O.Some[A]), Set: sa.Set}
}

// Compose matches the optional deeper into the data structure
func Compose[S, A, B any](ab Optional[A, B]) func(Optional[S, A]) Optional[S, B] {
	return func(sa Optional[S, A]) Optional[S, B] {
		return Optional[S, B]{
			GetOption: func(s S) O.Option[B] {
				return O.MonadChain(sa.GetOption(s), ab.GetOption)
			},
			Set: func(b B) EM.Endomorphism[S] {
				return func(s S) S {
					return O.MonadFold(sa.GetOption(s), F.Constant(s), func(a A) S {
						return sa.Set(ab.Set(b)(a))(s)
					})
				}
			},
		}
	}
}

// Modify transforms the focused value if it is present, else leaves the data unchanged
func Modify[S, A any](f func(A) A) func(Optional[S, A]) EM.Endomorphism[S] {
	return func(sa Optional[S, A]) EM.Endomorphism[S] {
		return func(s S) S {
			return O.MonadFold(sa.GetOption(s), F.Constant(s), func(a A) S {
				return sa.Set(f(a))(s)
			})
		}
	}
}

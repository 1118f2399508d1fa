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

package option

import (
	M "github.com/paths-fp/paths/monoid"
	O "github.com/paths-fp/paths/ord"
	S "github.com/paths-fp/paths/semigroup"
)

// FirstMonoid keeps the first [Option] that holds a value
func FirstMonoid[A any]() M.Monoid[Option[A]] {
	return M.MakeMonoid(func(x Option[A], y Option[A]) Option[A] {
		return MonadAlt(x, func() Option[A] {
			return y
		})
	}, None[A]())
}

// LastMonoid keeps the last [Option] that holds a value
func LastMonoid[A any]() M.Monoid[Option[A]] {
	return M.Reverse(FirstMonoid[A]())
}

// MinMonoid keeps the smaller value, None is the identity
func MinMonoid[A any](o O.Ord[A]) M.Monoid[Option[A]] {
	return optionMonoid(S.MinSemigroup(o))
}

// MaxMonoid keeps the larger value, None is the identity
func MaxMonoid[A any](o O.Ord[A]) M.Monoid[Option[A]] {
	return optionMonoid(S.MaxSemigroup(o))
}

func optionMonoid[A any](s S.Semigroup[A]) M.Monoid[Option[A]] {
	return M.MakeMonoid(func(x Option[A], y Option[A]) Option[A] {
		return MonadFold(x, func() Option[A] {
			return y
		}, func(a A) Option[A] {
			return MonadFold(y, func() Option[A] {
				return x
			}, func(b A) Option[A] {
				return Some(s.Concat(a, b))
			})
		})
	}, None[A]())
}

// ApplicativeMonoid lifts a [M.Monoid] on the value into a monoid on options,
// combining only when both sides hold a value
func ApplicativeMonoid[A any](m M.Monoid[A]) M.Monoid[Option[A]] {
	return M.ApplicativeMonoid(Of[A], MonadMap[A, func(A) A], MonadAp[A, A], m)
}

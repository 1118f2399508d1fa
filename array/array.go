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

// package array implements the eager list effect path on top of go slices.
// Both [Map] and [Chain] run eagerly; [Chain] has concatenation semantics and
// the empty slice is the zero of the alternative structure.
package array

import (
	F "github.com/paths-fp/paths/function"
	M "github.com/paths-fp/paths/monoid"
	O "github.com/paths-fp/paths/option"
)

// Empty returns the empty slice
func Empty[A any]() []A {
	return []A{}
}

// Zero is the identity of [Alt] and the filter zero
func Zero[A any]() []A {
	return Empty[A]()
}

// Of creates a single element slice
func Of[A any](a A) []A {
	return []A{a}
}

// From constructs a slice from variadic arguments
func From[A any](data ...A) []A {
	return data
}

// IsEmpty tests if the slice is empty
func IsEmpty[A any](as []A) bool {
	return len(as) == 0
}

// Size returns the number of elements
func Size[A any](as []A) int {
	return len(as)
}

// MonadMap transforms every element eagerly
func MonadMap[A, B any](as []A, f func(a A) B) []B {
	bs := make([]B, len(as))
	for i, a := range as {
		bs[i] = f(a)
	}
	return bs
}

// Map is the curried version of [MonadMap]
func Map[A, B any](f func(a A) B) func([]A) []B {
	return F.Bind2nd(MonadMap[A, B], f)
}

// MonadChain maps every element to a slice and concatenates the results
func MonadChain[A, B any](fa []A, f func(a A) []B) []B {
	var bs []B
	for _, a := range fa {
		bs = append(bs, f(a)...)
	}
	return bs
}

// Chain is the curried version of [MonadChain]
func Chain[A, B any](f func(A) []B) func([]A) []B {
	return F.Bind2nd(MonadChain[A, B], f)
}

// MonadChainFirst runs a second computation per element and keeps the element
// once per produced value
func MonadChainFirst[A, B any](fa []A, f func(A) []B) []A {
	return MonadChain(fa, func(a A) []A {
		return MonadMap(f(a), F.Constant1[B](a))
	})
}

// ChainFirst is the curried version of [MonadChainFirst]
func ChainFirst[A, B any](f func(A) []B) func([]A) []A {
	return F.Bind2nd(MonadChainFirst[A, B], f)
}

// MonadAp is the Cartesian applicative of slices
func MonadAp[B, A any](fab []func(A) B, fa []A) []B {
	return MonadChain(fab, F.Bind1st(MonadMap[A, B], fa))
}

// Ap is the curried version of [MonadAp]
func Ap[B, A any](fa []A) func([]func(A) B) []B {
	return F.Bind2nd(MonadAp[B, A], fa)
}

// Flatten concatenates a slice of slices
func Flatten[A any](mma [][]A) []A {
	return MonadChain(mma, F.Identity[[]A])
}

// Filter keeps the elements that satisfy the predicate
func Filter[A any](pred func(A) bool) func([]A) []A {
	return func(as []A) []A {
		var res []A
		for _, a := range as {
			if pred(a) {
				res = append(res, a)
			}
		}
		return res
	}
}

// FilterMap keeps and transforms the elements with a defined image
func FilterMap[A, B any](f func(A) O.Option[B]) func([]A) []B {
	return func(as []A) []B {
		var res []B
		for _, a := range as {
			if b, ok := O.Unwrap(f(a)); ok {
				res = append(res, b)
			}
		}
		return res
	}
}

// MonadReduce folds the slice from the left
func MonadReduce[A, B any](fa []A, f func(B, A) B, initial B) B {
	acc := initial
	for _, a := range fa {
		acc = f(acc, a)
	}
	return acc
}

// Reduce is the curried version of [MonadReduce]
func Reduce[A, B any](f func(B, A) B, initial B) func([]A) B {
	return func(as []A) B {
		return MonadReduce(as, f, initial)
	}
}

// FoldMap maps every element into a monoid and combines the results
func FoldMap[A, B any](m M.Monoid[B]) func(func(A) B) func([]A) B {
	return func(f func(A) B) func([]A) B {
		return Reduce(func(b B, a A) B {
			return m.Concat(b, f(a))
		}, m.Empty())
	}
}

// Fold combines all elements of a monoid
func Fold[A any](m M.Monoid[A]) func([]A) A {
	return Reduce(m.Concat, m.Empty())
}

// Monoid concatenates slices, empty is the empty slice
func Monoid[A any]() M.Monoid[[]A] {
	return M.MakeMonoid(func(x []A, y []A) []A {
		res := make([]A, 0, len(x)+len(y))
		res = append(res, x...)
		return append(res, y...)
	}, Empty[A]())
}

// MonadAlt concatenates with an alternative slice
func MonadAlt[A any](fa []A, that func() []A) []A {
	return Monoid[A]().Concat(fa, that())
}

// Alt is the curried version of [MonadAlt]
func Alt[A any](that func() []A) func([]A) []A {
	return F.Bind2nd(MonadAlt[A], that)
}

// Head returns the first element if present
func Head[A any](as []A) O.Option[A] {
	if len(as) == 0 {
		return O.None[A]()
	}
	return O.Some(as[0])
}

// Last returns the final element if present
func Last[A any](as []A) O.Option[A] {
	if len(as) == 0 {
		return O.None[A]()
	}
	return O.Some(as[len(as)-1])
}

// Lookup accesses an element by index
func Lookup[A any](idx int) func([]A) O.Option[A] {
	return func(as []A) O.Option[A] {
		if idx < 0 || idx >= len(as) {
			return O.None[A]()
		}
		return O.Some(as[idx])
	}
}

// Take keeps the first n elements
func Take[A any](n int) func([]A) []A {
	return func(as []A) []A {
		if n >= len(as) {
			return as
		}
		if n <= 0 {
			return Empty[A]()
		}
		return as[:n]
	}
}

// Drop removes the first n elements
func Drop[A any](n int) func([]A) []A {
	return func(as []A) []A {
		if n >= len(as) {
			return Empty[A]()
		}
		if n <= 0 {
			return as
		}
		return as[n:]
	}
}

// Uniq removes duplicates, keeping the first occurrence in order
func Uniq[A any, K comparable](key func(A) K) func([]A) []A {
	return func(as []A) []A {
		seen := make(map[K]struct{}, len(as))
		var res []A
		for _, a := range as {
			k := key(a)
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				res = append(res, a)
			}
		}
		return res
	}
}

// MonadZipWith combines two slices positionally, the shorter length wins
func MonadZipWith[A, B, C any](as []A, bs []B, f func(A, B) C) []C {
	size := min(len(as), len(bs))
	cs := make([]C, size)
	for i := 0; i < size; i++ {
		cs[i] = f(as[i], bs[i])
	}
	return cs
}

// ZipWith is the curried version of [MonadZipWith]
func ZipWith[A, B, C any](bs []B, f func(A, B) C) func([]A) []C {
	return func(as []A) []C {
		return MonadZipWith(as, bs, f)
	}
}

// Exists tests if any element satisfies the predicate
func Exists[A any](pred func(A) bool) func([]A) bool {
	return func(as []A) bool {
		for _, a := range as {
			if pred(a) {
				return true
			}
		}
		return false
	}
}

// ForAll tests if every element satisfies the predicate
func ForAll[A any](pred func(A) bool) func([]A) bool {
	return func(as []A) bool {
		for _, a := range as {
			if !pred(a) {
				return false
			}
		}
		return true
	}
}

// FindFirst returns the first element satisfying the predicate
func FindFirst[A any](pred func(A) bool) func([]A) O.Option[A] {
	return func(as []A) O.Option[A] {
		for _, a := range as {
			if pred(a) {
				return O.Some(a)
			}
		}
		return O.None[A]()
	}
}

// Copy creates a shallow copy
func Copy[A any](b []A) []A {
	buf := make([]A, len(b))
	copy(buf, b)
	return buf
}

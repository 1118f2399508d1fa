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

package stream

import (
	M "github.com/paths-fp/paths/monoid"
	O "github.com/paths-fp/paths/option"
)

// MonadReduce pulls the stream and folds it from the left
func MonadReduce[U, V any](ma Stream[U], f func(V, U) V, initial V) V {
	acc := initial
	next := ma()
	for {
		t, ok := O.Unwrap(next)
		if !ok {
			return acc
		}
		acc = f(acc, t.F2)
		next = t.F1()
	}
}

// Reduce is the curried version of [MonadReduce]
func Reduce[U, V any](f func(V, U) V, initial V) func(Stream[U]) V {
	return func(ma Stream[U]) V {
		return MonadReduce(ma, f, initial)
	}
}

// ToArray pulls the whole stream into a slice
func ToArray[U any](ma Stream[U]) []U {
	return MonadReduce(ma, func(acc []U, u U) []U {
		return append(acc, u)
	}, nil)
}

// FoldMap maps every element into a monoid and combines the results
func FoldMap[U, V any](m M.Monoid[V]) func(func(U) V) func(Stream[U]) V {
	return func(f func(U) V) func(Stream[U]) V {
		return Reduce(func(acc V, u U) V {
			return m.Concat(acc, f(u))
		}, m.Empty())
	}
}

// Fold combines all elements of a monoid
func Fold[U any](m M.Monoid[U]) func(Stream[U]) U {
	return Reduce(m.Concat, m.Empty())
}

// Size pulls the stream and counts its elements
func Size[U any](ma Stream[U]) int {
	return MonadReduce(ma, func(count int, _ U) int {
		return count + 1
	}, 0)
}

// Head returns the first element if the stream is not empty
func Head[U any](ma Stream[U]) O.Option[U] {
	return O.MonadMap(ma(), Current[U])
}

// Last pulls the stream and returns its final element
func Last[U any](ma Stream[U]) O.Option[U] {
	return MonadReduce(ma, func(_ O.Option[U], u U) O.Option[U] {
		return O.Some(u)
	}, O.None[U]())
}

// Find pulls the stream until an element satisfies the predicate
func Find[U any](pred func(U) bool) func(Stream[U]) O.Option[U] {
	return func(ma Stream[U]) O.Option[U] {
		next := ma()
		for {
			t, ok := O.Unwrap(next)
			if !ok {
				return O.None[U]()
			}
			if pred(t.F2) {
				return O.Some(t.F2)
			}
			next = t.F1()
		}
	}
}

// Exists tests if any element satisfies the predicate
func Exists[U any](pred func(U) bool) func(Stream[U]) bool {
	return func(ma Stream[U]) bool {
		return O.IsSome(Find(pred)(ma))
	}
}

// ForAll tests if every element satisfies the predicate
func ForAll[U any](pred func(U) bool) func(Stream[U]) bool {
	return func(ma Stream[U]) bool {
		return !Exists(func(u U) bool {
			return !pred(u)
		})(ma)
	}
}

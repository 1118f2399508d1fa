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

// package stream implements the lazy sequence effect path, a stateless pull
// stream of zero or more values. Intermediate operations are deferred;
// terminal operations pull the stream. A [Stream] is a pure description, so
// terminal operations are restartable: pulling twice replays the sequence.
// Sources wrapping external mutable state must be materialized by the caller
// first, e.g. via [ToArray] and [FromArray].
package stream

import (
	F "github.com/paths-fp/paths/function"
	O "github.com/paths-fp/paths/option"
	T "github.com/paths-fp/paths/tuple"
)

// Stream represents a stateless, restartable sequence of values. Pulling
// yields None at the end of the sequence or the rest of the stream and the
// current value.
type Stream[U any] func() O.Option[T.Tuple2[Stream[U], U]]

// Next returns the rest of the stream after the current element
func Next[U any](m T.Tuple2[Stream[U], U]) Stream[U] {
	return m.F1
}

// Current returns the current element
func Current[U any](m T.Tuple2[Stream[U], U]) U {
	return m.F2
}

// Empty returns the empty stream
func Empty[U any]() Stream[U] {
	return F.Constant(O.None[T.Tuple2[Stream[U], U]]())
}

// Of returns a stream with a single element
func Of[U any](a U) Stream[U] {
	return F.Constant(O.Some(T.MakeTuple2(Empty[U](), a)))
}

// FromArray returns a stream over the elements of a slice
func FromArray[U any](as []U) Stream[U] {
	var at func(int) Stream[U]
	at = func(idx int) Stream[U] {
		return func() O.Option[T.Tuple2[Stream[U], U]] {
			if idx >= len(as) {
				return O.None[T.Tuple2[Stream[U], U]]()
			}
			return O.Some(T.MakeTuple2(at(idx+1), as[idx]))
		}
	}
	return at(0)
}

// From constructs a stream from variadic arguments
func From[U any](data ...U) Stream[U] {
	return FromArray(data)
}

// MakeBy returns an infinite stream with the elements f(0), f(1), ...
func MakeBy[U any](f func(int) U) Stream[U] {
	var at func(int) Stream[U]
	at = func(idx int) Stream[U] {
		return func() O.Option[T.Tuple2[Stream[U], U]] {
			return O.Some(T.MakeTuple2(at(idx+1), f(idx)))
		}
	}
	return at(0)
}

// Count returns the infinite stream of consecutive integers starting at start
func Count(start int) Stream[int] {
	return MakeBy(func(i int) int {
		return start + i
	})
}

// Replicate returns the infinite stream repeating a single value
func Replicate[U any](a U) Stream[U] {
	return MakeBy(F.Constant1[int](a))
}

// MonadMap transforms every element, deferred
func MonadMap[U, V any](ma Stream[U], f func(U) V) Stream[V] {
	return func() O.Option[T.Tuple2[Stream[V], V]] {
		return O.MonadMap(ma(), func(t T.Tuple2[Stream[U], U]) T.Tuple2[Stream[V], V] {
			return T.MakeTuple2(MonadMap(t.F1, f), f(t.F2))
		})
	}
}

// Map is the curried version of [MonadMap]
func Map[U, V any](f func(U) V) func(Stream[U]) Stream[V] {
	return F.Bind2nd(MonadMap[U, V], f)
}

// MonadConcat appends a second stream after the first, deferred
func MonadConcat[U any](first Stream[U], second Stream[U]) Stream[U] {
	return func() O.Option[T.Tuple2[Stream[U], U]] {
		return O.MonadFold(first(), second, func(t T.Tuple2[Stream[U], U]) O.Option[T.Tuple2[Stream[U], U]] {
			return O.Some(T.MakeTuple2(MonadConcat(t.F1, second), t.F2))
		})
	}
}

// Concat is the curried version of [MonadConcat]
func Concat[U any](second Stream[U]) func(Stream[U]) Stream[U] {
	return F.Bind2nd(MonadConcat[U], second)
}

// MonadChain maps every element onto a stream and flattens, deferred
func MonadChain[U, V any](ma Stream[U], f func(U) Stream[V]) Stream[V] {
	return func() O.Option[T.Tuple2[Stream[V], V]] {
		return O.MonadFold(ma(), O.None[T.Tuple2[Stream[V], V]], func(t T.Tuple2[Stream[U], U]) O.Option[T.Tuple2[Stream[V], V]] {
			return MonadConcat(f(t.F2), MonadChain(t.F1, f))()
		})
	}
}

// Chain is the curried version of [MonadChain]
func Chain[U, V any](f func(U) Stream[V]) func(Stream[U]) Stream[V] {
	return F.Bind2nd(MonadChain[U, V], f)
}

// MonadAp enumerates all applications of the functions to the values, deferred
func MonadAp[V, U any](fab Stream[func(U) V], ma Stream[U]) Stream[V] {
	return MonadChain(fab, func(f func(U) V) Stream[V] {
		return MonadMap(ma, f)
	})
}

// Ap is the curried version of [MonadAp]
func Ap[V, U any](ma Stream[U]) func(Stream[func(U) V]) Stream[V] {
	return F.Bind2nd(MonadAp[V, U], ma)
}

// Flatten concatenates a stream of streams, deferred
func Flatten[U any](ma Stream[Stream[U]]) Stream[U] {
	return MonadChain(ma, F.Identity[Stream[U]])
}

// FilterMap keeps and transforms the elements with a defined image, deferred
func FilterMap[U, V any](f func(U) O.Option[V]) func(Stream[U]) Stream[V] {
	var filter func(ma Stream[U]) Stream[V]
	filter = func(ma Stream[U]) Stream[V] {
		return func() O.Option[T.Tuple2[Stream[V], V]] {
			next := ma()
			for {
				t, ok := O.Unwrap(next)
				if !ok {
					return O.None[T.Tuple2[Stream[V], V]]()
				}
				if v, defined := O.Unwrap(f(t.F2)); defined {
					return O.Some(T.MakeTuple2(filter(t.F1), v))
				}
				next = t.F1()
			}
		}
	}
	return filter
}

// Filter keeps the elements that satisfy the predicate, deferred
func Filter[U any](pred func(U) bool) func(Stream[U]) Stream[U] {
	return FilterMap(O.FromPredicate(pred))
}

// Take keeps the first n elements, deferred
func Take[U any](n int) func(Stream[U]) Stream[U] {
	return func(ma Stream[U]) Stream[U] {
		if n <= 0 {
			return Empty[U]()
		}
		return func() O.Option[T.Tuple2[Stream[U], U]] {
			return O.MonadMap(ma(), func(t T.Tuple2[Stream[U], U]) T.Tuple2[Stream[U], U] {
				return T.MakeTuple2(Take[U](n-1)(t.F1), t.F2)
			})
		}
	}
}

// Drop removes the first n elements, deferred
func Drop[U any](n int) func(Stream[U]) Stream[U] {
	return func(ma Stream[U]) Stream[U] {
		return func() O.Option[T.Tuple2[Stream[U], U]] {
			next := ma()
			remaining := n
			for remaining > 0 {
				t, ok := O.Unwrap(next)
				if !ok {
					return O.None[T.Tuple2[Stream[U], U]]()
				}
				next = t.F1()
				remaining--
			}
			return next
		}
	}
}

// TakeWhile keeps the leading elements satisfying the predicate, deferred
func TakeWhile[U any](pred func(U) bool) func(Stream[U]) Stream[U] {
	var take func(ma Stream[U]) Stream[U]
	take = func(ma Stream[U]) Stream[U] {
		return func() O.Option[T.Tuple2[Stream[U], U]] {
			return O.MonadChain(ma(), func(t T.Tuple2[Stream[U], U]) O.Option[T.Tuple2[Stream[U], U]] {
				if !pred(t.F2) {
					return O.None[T.Tuple2[Stream[U], U]]()
				}
				return O.Some(T.MakeTuple2(take(t.F1), t.F2))
			})
		}
	}
	return take
}

// DropWhile removes the leading elements satisfying the predicate, deferred
func DropWhile[U any](pred func(U) bool) func(Stream[U]) Stream[U] {
	return func(ma Stream[U]) Stream[U] {
		return func() O.Option[T.Tuple2[Stream[U], U]] {
			next := ma()
			for {
				t, ok := O.Unwrap(next)
				if !ok || !pred(t.F2) {
					return next
				}
				next = t.F1()
			}
		}
	}
}

// Uniq removes duplicates keyed by the given function, keeping the first
// occurrence, deferred
func Uniq[U any, K comparable](key func(U) K) func(Stream[U]) Stream[U] {
	var uniq func(seen map[K]struct{}, ma Stream[U]) Stream[U]
	uniq = func(seen map[K]struct{}, ma Stream[U]) Stream[U] {
		return func() O.Option[T.Tuple2[Stream[U], U]] {
			next := ma()
			for {
				t, ok := O.Unwrap(next)
				if !ok {
					return O.None[T.Tuple2[Stream[U], U]]()
				}
				k := key(t.F2)
				if _, dup := seen[k]; !dup {
					nextSeen := make(map[K]struct{}, len(seen)+1)
					for s := range seen {
						nextSeen[s] = struct{}{}
					}
					nextSeen[k] = struct{}{}
					return O.Some(T.MakeTuple2(uniq(nextSeen, t.F1), t.F2))
				}
				next = t.F1()
			}
		}
	}
	return func(ma Stream[U]) Stream[U] {
		return uniq(map[K]struct{}{}, ma)
	}
}

// MonadZipWith pairs two streams positionally through a function, the shorter
// stream ends the result, deferred
func MonadZipWith[U, V, W any](ma Stream[U], mb Stream[V], f func(U, V) W) Stream[W] {
	return func() O.Option[T.Tuple2[Stream[W], W]] {
		return O.MonadChain(ma(), func(tu T.Tuple2[Stream[U], U]) O.Option[T.Tuple2[Stream[W], W]] {
			return O.MonadMap(mb(), func(tv T.Tuple2[Stream[V], V]) T.Tuple2[Stream[W], W] {
				return T.MakeTuple2(MonadZipWith(tu.F1, tv.F1, f), f(tu.F2, tv.F2))
			})
		})
	}
}

// ZipWith is the curried version of [MonadZipWith]
func ZipWith[U, V, W any](mb Stream[V], f func(U, V) W) func(Stream[U]) Stream[W] {
	return func(ma Stream[U]) Stream[W] {
		return MonadZipWith(ma, mb, f)
	}
}

// Zip pairs two streams positionally, deferred
func Zip[U, V any](mb Stream[V]) func(Stream[U]) Stream[T.Tuple2[U, V]] {
	return ZipWith[U, V](mb, T.MakeTuple2[U, V])
}

// Scan emits the running fold of the stream, deferred
func Scan[U, V any](f func(V, U) V, initial V) func(Stream[U]) Stream[V] {
	var scan func(acc V, ma Stream[U]) Stream[V]
	scan = func(acc V, ma Stream[U]) Stream[V] {
		return func() O.Option[T.Tuple2[Stream[V], V]] {
			return O.MonadMap(ma(), func(t T.Tuple2[Stream[U], U]) T.Tuple2[Stream[V], V] {
				next := f(acc, t.F2)
				return T.MakeTuple2(scan(next, t.F1), next)
			})
		}
	}
	return func(ma Stream[U]) Stream[V] {
		return scan(initial, ma)
	}
}

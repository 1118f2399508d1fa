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

// package validated implements the Validated effect path.
//
// A [Validated] is an [ET.Either] with two distinct ways of combining:
// the monadic combinators ([Chain], [SequenceT2], ...) short circuit on the
// first invalid value, the accumulating combinators ([SequenceT2Accum],
// [AndAlso], [TraverseArrayAccum], ...) run every branch and merge the errors
// through the [SG.Semigroup] supplied at the call site. The semigroup argument
// is the dictionary-passing rendition of a Validated value carrying its error
// combiner.
package validated

import (
	ET "github.com/paths-fp/paths/either"
	SG "github.com/paths-fp/paths/semigroup"
	T "github.com/paths-fp/paths/tuple"
)

// Validated holds either a valid value or the accumulated invalid state
type Validated[E, A any] = ET.Either[E, A]

// Valid wraps a value
func Valid[E, A any](a A) Validated[E, A] {
	return ET.Right[E](a)
}

// Invalid wraps an error
func Invalid[A, E any](e E) Validated[E, A] {
	return ET.Left[A](e)
}

// Of is an alias of [Valid]
func Of[E, A any](a A) Validated[E, A] {
	return Valid[E](a)
}

// IsValid tests for the valid case
func IsValid[E, A any](ma Validated[E, A]) bool {
	return ET.IsRight(ma)
}

// IsInvalid tests for the invalid case
func IsInvalid[E, A any](ma Validated[E, A]) bool {
	return ET.IsLeft(ma)
}

// Map transforms the valid value
func Map[E, A, B any](f func(A) B) func(Validated[E, A]) Validated[E, B] {
	return ET.Map[E](f)
}

// MapInvalid transforms the invalid value
func MapInvalid[A, E1, E2 any](f func(E1) E2) func(Validated[E1, A]) Validated[E2, A] {
	return ET.MapLeft[A](f)
}

// Chain composes computations in sequence. The first invalid value wins, no
// accumulation takes place.
func Chain[E, A, B any](f func(A) Validated[E, B]) func(Validated[E, A]) Validated[E, B] {
	return ET.Chain[E](f)
}

// Fold eliminates a [Validated] into a value
func Fold[E, A, B any](onInvalid func(E) B, onValid func(A) B) func(Validated[E, A]) B {
	return ET.Fold(onInvalid, onValid)
}

// MonadApAccum is the accumulating applicative: both sides are evaluated and
// invalid values are merged through the semigroup
func MonadApAccum[E, A, B any](s SG.Semigroup[E], fab Validated[E, func(A) B], fa Validated[E, A]) Validated[E, B] {
	return ET.MonadFold(fab, func(e1 E) Validated[E, B] {
		return ET.MonadFold(fa, func(e2 E) Validated[E, B] {
			return Invalid[B](s.Concat(e1, e2))
		}, func(_ A) Validated[E, B] {
			return Invalid[B](e1)
		})
	}, func(ab func(A) B) Validated[E, B] {
		return ET.MonadFold(fa, Invalid[B, E], func(a A) Validated[E, B] {
			return Valid[E](ab(a))
		})
	})
}

// ApAccum is the curried version of [MonadApAccum]
func ApAccum[E, A, B any](s SG.Semigroup[E], fa Validated[E, A]) func(Validated[E, func(A) B]) Validated[E, B] {
	return func(fab Validated[E, func(A) B]) Validated[E, B] {
		return MonadApAccum(s, fab, fa)
	}
}

// MonadAndAlso runs both computations, accumulates the errors and keeps the
// value of the first if both are valid
func MonadAndAlso[E, A, B any](s SG.Semigroup[E], fa Validated[E, A], fb Validated[E, B]) Validated[E, A] {
	return MonadApAccum(s, Map[E](func(a A) func(B) A {
		return func(_ B) A {
			return a
		}
	})(fa), fb)
}

// AndAlso is the curried version of [MonadAndAlso]
func AndAlso[E, A, B any](s SG.Semigroup[E], fb Validated[E, B]) func(Validated[E, A]) Validated[E, A] {
	return func(fa Validated[E, A]) Validated[E, A] {
		return MonadAndAlso(s, fa, fb)
	}
}

// SequenceT2 combines two computations, short circuiting on the first invalid value
func SequenceT2[E, T1, T2 any](e1 Validated[E, T1], e2 Validated[E, T2]) Validated[E, T.Tuple2[T1, T2]] {
	return ET.SequenceT2(e1, e2)
}

// SequenceT2Accum combines two computations, accumulating the invalid values
func SequenceT2Accum[E, T1, T2 any](s SG.Semigroup[E], e1 Validated[E, T1], e2 Validated[E, T2]) Validated[E, T.Tuple2[T1, T2]] {
	return MonadApAccum(s, Map[E](func(t1 T1) func(T2) T.Tuple2[T1, T2] {
		return func(t2 T2) T.Tuple2[T1, T2] {
			return T.MakeTuple2(t1, t2)
		}
	})(e1), e2)
}

// SequenceT3Accum combines three computations, accumulating the invalid values
func SequenceT3Accum[E, T1, T2, T3 any](s SG.Semigroup[E], e1 Validated[E, T1], e2 Validated[E, T2], e3 Validated[E, T3]) Validated[E, T.Tuple3[T1, T2, T3]] {
	return MonadApAccum(s, Map[E](func(t T.Tuple2[T1, T2]) func(T3) T.Tuple3[T1, T2, T3] {
		return func(t3 T3) T.Tuple3[T1, T2, T3] {
			return T.MakeTuple3(t.F1, t.F2, t3)
		}
	})(SequenceT2Accum(s, e1, e2)), e3)
}

// SequenceT4Accum combines four computations, accumulating the invalid values
func SequenceT4Accum[E, T1, T2, T3, T4 any](s SG.Semigroup[E], e1 Validated[E, T1], e2 Validated[E, T2], e3 Validated[E, T3], e4 Validated[E, T4]) Validated[E, T.Tuple4[T1, T2, T3, T4]] {
	return MonadApAccum(s, Map[E](func(t T.Tuple3[T1, T2, T3]) func(T4) T.Tuple4[T1, T2, T3, T4] {
		return func(t4 T4) T.Tuple4[T1, T2, T3, T4] {
			return T.MakeTuple4(t.F1, t.F2, t.F3, t4)
		}
	})(SequenceT3Accum(s, e1, e2, e3)), e4)
}

// ZipWith2Accum combines two computations through a function, accumulating the invalid values
func ZipWith2Accum[E, T1, T2, R any](s SG.Semigroup[E], f func(T1, T2) R) func(Validated[E, T1], Validated[E, T2]) Validated[E, R] {
	return func(e1 Validated[E, T1], e2 Validated[E, T2]) Validated[E, R] {
		return Map[E](T.Tupled2(f))(SequenceT2Accum(s, e1, e2))
	}
}

// ZipWith3Accum combines three computations through a function, accumulating the invalid values
func ZipWith3Accum[E, T1, T2, T3, R any](s SG.Semigroup[E], f func(T1, T2, T3) R) func(Validated[E, T1], Validated[E, T2], Validated[E, T3]) Validated[E, R] {
	return func(e1 Validated[E, T1], e2 Validated[E, T2], e3 Validated[E, T3]) Validated[E, R] {
		return Map[E](T.Tupled3(f))(SequenceT3Accum(s, e1, e2, e3))
	}
}

// MonadTraverseArrayAccum maps every element and accumulates all invalid values
func MonadTraverseArrayAccum[E, A, B any](s SG.Semigroup[E], as []A, f func(A) Validated[E, B]) Validated[E, []B] {
	acc := Valid[E](make([]B, 0, len(as)))
	for _, a := range as {
		acc = MonadApAccum(s, Map[E](func(bs []B) func(B) []B {
			return func(b B) []B {
				return append(bs, b)
			}
		})(acc), f(a))
	}
	return acc
}

// TraverseArrayAccum is the curried version of [MonadTraverseArrayAccum]
func TraverseArrayAccum[E, A, B any](s SG.Semigroup[E], f func(A) Validated[E, B]) func([]A) Validated[E, []B] {
	return func(as []A) Validated[E, []B] {
		return MonadTraverseArrayAccum(s, as, f)
	}
}

// ToEither reinterprets a [Validated] as a plain [ET.Either]
func ToEither[E, A any](ma Validated[E, A]) ET.Either[E, A] {
	return ma
}

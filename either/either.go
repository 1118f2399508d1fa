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

// package either implements the Either effect path.
//
// A data type that can be of either of two types but not both, typically used
// to carry a typed error or a return value. All combinators are biased on the
// right; the first left value short circuits the computation.
package either

import (
	CH "github.com/paths-fp/paths/choice"
	F "github.com/paths-fp/paths/function"
	FC "github.com/paths-fp/paths/internal/functor"
	O "github.com/paths-fp/paths/option"
)

// Of is equivalent to [Right]
func Of[E, A any](value A) Either[E, A] {
	return Right[E](value)
}

// MonadAp is the applicative functor of [Either]
func MonadAp[B, E, A any](fab Either[E, func(a A) B], fa Either[E, A]) Either[E, B] {
	return MonadFold(fab, Left[B, E], func(ab func(A) B) Either[E, B] {
		return MonadFold(fa, Left[B, E], F.Flow2(ab, Right[E, B]))
	})
}

// Ap is the curried version of [MonadAp]
func Ap[B, E, A any](fa Either[E, A]) func(fab Either[E, func(a A) B]) Either[E, B] {
	return F.Bind2nd(MonadAp[B, E, A], fa)
}

// MonadMap transforms the right value
func MonadMap[E, A, B any](fa Either[E, A], f func(a A) B) Either[E, B] {
	return MonadChain(fa, F.Flow2(f, Right[E, B]))
}

// Map is the curried version of [MonadMap]
func Map[E, A, B any](f func(a A) B) func(fa Either[E, A]) Either[E, B] {
	return Chain(F.Flow2(f, Right[E, B]))
}

// MonadBiMap maps a pair of functions over the two type arguments of the bifunctor
func MonadBiMap[E1, E2, A, B any](fa Either[E1, A], f func(E1) E2, g func(a A) B) Either[E2, B] {
	return MonadFold(fa, F.Flow2(f, Left[B, E2]), F.Flow2(g, Right[E2, B]))
}

// BiMap maps a pair of functions over the two type arguments of the bifunctor
func BiMap[E1, E2, A, B any](f func(E1) E2, g func(a A) B) func(Either[E1, A]) Either[E2, B] {
	return Fold(F.Flow2(f, Left[B, E2]), F.Flow2(g, Right[E2, B]))
}

// MonadMapTo replaces the right value
func MonadMapTo[E, A, B any](fa Either[E, A], b B) Either[E, B] {
	return MonadMap(fa, F.Constant1[A](b))
}

// MapTo is the curried version of [MonadMapTo]
func MapTo[E, A, B any](b B) func(Either[E, A]) Either[E, B] {
	return Map[E](F.Constant1[A](b))
}

// MonadMapLeft applies a mapping function to the error channel
func MonadMapLeft[E1, A, E2 any](fa Either[E1, A], f func(E1) E2) Either[E2, A] {
	return MonadFold(fa, F.Flow2(f, Left[A, E2]), Right[E2, A])
}

// MapLeft applies a mapping function to the error channel
func MapLeft[A, E1, E2 any](f func(E1) E2) func(fa Either[E1, A]) Either[E2, A] {
	return Fold(F.Flow2(f, Left[A, E2]), Right[E2, A])
}

// MonadChain composes computations in sequence. The first left value wins and
// the continuation is not executed.
func MonadChain[E, A, B any](fa Either[E, A], f func(a A) Either[E, B]) Either[E, B] {
	return MonadFold(fa, Left[B, E], f)
}

// Chain is the curried version of [MonadChain]
func Chain[E, A, B any](f func(a A) Either[E, B]) func(Either[E, A]) Either[E, B] {
	return Fold(Left[B, E], f)
}

// MonadChainFirst runs a second computation and keeps the first value
func MonadChainFirst[E, A, B any](ma Either[E, A], f func(a A) Either[E, B]) Either[E, A] {
	return MonadChain(ma, func(a A) Either[E, A] {
		return MonadMap(f(a), F.Constant1[B](a))
	})
}

// ChainFirst is the curried version of [MonadChainFirst]
func ChainFirst[E, A, B any](f func(a A) Either[E, B]) func(Either[E, A]) Either[E, A] {
	return F.Bind2nd(MonadChainFirst[E, A, B], f)
}

// MonadChainTo composes computations in sequence, discarding the first value
func MonadChainTo[A, E, B any](ma Either[E, A], mb Either[E, B]) Either[E, B] {
	return MonadChain(ma, F.Constant1[A](mb))
}

// ChainTo is the curried version of [MonadChainTo]
func ChainTo[A, E, B any](mb Either[E, B]) func(Either[E, A]) Either[E, B] {
	return F.Bind2nd(MonadChainTo[A, E, B], mb)
}

// MonadChainOptionK chains into an optional continuation, the onNone callback
// provides the error for the empty case
func MonadChainOptionK[A, B, E any](onNone func() E, ma Either[E, A], f func(A) O.Option[B]) Either[E, B] {
	return MonadChain(ma, F.Flow2(f, FromOption[B](onNone)))
}

// ChainOptionK is the curried version of [MonadChainOptionK]
func ChainOptionK[A, B, E any](onNone func() E) func(func(A) O.Option[B]) func(Either[E, A]) Either[E, B] {
	from := FromOption[B](onNone)
	return func(f func(A) O.Option[B]) func(Either[E, A]) Either[E, B] {
		return Chain(F.Flow2(f, from))
	}
}

// Flatten removes one level of nesting
func Flatten[E, A any](mma Either[E, Either[E, A]]) Either[E, A] {
	return MonadChain(mma, F.Identity[Either[E, A]])
}

// TryCatch converts a value/error tuple into an [Either] mapping the error
func TryCatch[E, A any](val A, err error, onThrow func(error) E) Either[E, A] {
	if err != nil {
		return Left[A](onThrow(err))
	}
	return Right[E](val)
}

// Fold is the curried version of [MonadFold]. The fold is total, both callbacks
// are mandatory.
func Fold[E, A, B any](onLeft func(E) B, onRight func(A) B) func(Either[E, A]) B {
	return func(ma Either[E, A]) B {
		return MonadFold(ma, onLeft, onRight)
	}
}

// FromOption converts an [O.Option] into an [Either], the onNone callback supplies the left value
func FromOption[A, E any](onNone func() E) func(O.Option[A]) Either[E, A] {
	return O.Fold(F.Nullary2(onNone, Left[A, E]), Right[E, A])
}

// ToOption converts an [Either] into an [O.Option] discarding the error
func ToOption[E, A any](ma Either[E, A]) O.Option[A] {
	return MonadFold(ma, F.Ignore1of1[E](O.None[A]), O.Some[A])
}

// FromPredicate validates a value, the onFalse callback supplies the left value
func FromPredicate[E, A any](pred func(A) bool, onFalse func(A) E) func(A) Either[E, A] {
	return func(a A) Either[E, A] {
		if pred(a) {
			return Right[E](a)
		}
		return Left[A](onFalse(a))
	}
}

// FromNillable converts a pointer, nil becomes the given left value
func FromNillable[A, E any](e E) func(*A) Either[E, *A] {
	return FromPredicate(F.IsNonNil[A], F.Constant1[*A](e))
}

// GetOrElse extracts the right value or computes a default from the error
func GetOrElse[E, A any](onLeft func(E) A) func(Either[E, A]) A {
	return Fold(onLeft, F.Identity[A])
}

// Reduce folds the either into an accumulator, left values yield the seed
func Reduce[E, A, B any](f func(B, A) B, initial B) func(Either[E, A]) B {
	return Fold(
		F.Constant1[E](initial),
		F.Bind1st(f, initial),
	)
}

// MonadAlt returns the first either if it is right, else evaluates the second
func MonadAlt[E, A any](fa Either[E, A], that func() Either[E, A]) Either[E, A] {
	return MonadFold(fa, F.Ignore1of1[E](that), Of[E, A])
}

// Alt is the curried version of [MonadAlt]
func Alt[E, A any](that func() Either[E, A]) func(Either[E, A]) Either[E, A] {
	return Fold(F.Ignore1of1[E](that), Of[E, A])
}

// OrElse recovers from the error channel with a new computation
func OrElse[E, A any](onLeft func(e E) Either[E, A]) func(Either[E, A]) Either[E, A] {
	return Fold(onLeft, Of[E, A])
}

// Swap changes the order of type parameters
func Swap[E, A any](val Either[E, A]) Either[A, E] {
	return MonadFold(val, Right[A, E], Left[E, A])
}

// ToChoice reinterprets an [Either] as a selection for the selective combinators
func ToChoice[E, A any](ma Either[E, A]) CH.Choice[E, A] {
	return MonadFold(ma, CH.Left[A, E], CH.Right[E, A])
}

// FromChoice reinterprets a selection as an [Either]
func FromChoice[E, A any](c CH.Choice[E, A]) Either[E, A] {
	return CH.MonadFold(c, Left[A, E], Right[E, A])
}

// MonadFlap applies a value to a function carried in the either
func MonadFlap[E, B, A any](fab Either[E, func(A) B], a A) Either[E, B] {
	return FC.MonadFlap(MonadMap[E, func(A) B, B], fab, a)
}

// Flap is the curried version of [MonadFlap]
func Flap[E, B, A any](a A) func(Either[E, func(A) B]) Either[E, B] {
	return F.Bind2nd(MonadFlap[E, B, A], a)
}

// MonadSequence2 runs two eithers and combines the values. The first left wins.
func MonadSequence2[E, T1, T2, R any](e1 Either[E, T1], e2 Either[E, T2], f func(T1, T2) Either[E, R]) Either[E, R] {
	return MonadFold(e1, Left[R, E], func(t1 T1) Either[E, R] {
		return MonadFold(e2, Left[R, E], func(t2 T2) Either[E, R] {
			return f(t1, t2)
		})
	})
}

// MonadSequence3 runs three eithers and combines the values. The first left wins.
func MonadSequence3[E, T1, T2, T3, R any](e1 Either[E, T1], e2 Either[E, T2], e3 Either[E, T3], f func(T1, T2, T3) Either[E, R]) Either[E, R] {
	return MonadSequence2(e1, e2, func(t1 T1, t2 T2) Either[E, R] {
		return MonadFold(e3, Left[R, E], func(t3 T3) Either[E, R] {
			return f(t1, t2, t3)
		})
	})
}

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

// package option implements the Option effect path, a data type that either holds
// a value or nothing. All combinators short circuit on None; None is the zero
// of the alternative structure, which is what makes Filter style guards lawful.
package option

import (
	F "github.com/paths-fp/paths/function"
	FC "github.com/paths-fp/paths/internal/functor"
)

func fromPredicate[A any](a A, pred func(A) bool) Option[A] {
	if pred(a) {
		return Some(a)
	}
	return None[A]()
}

// FromPredicate creates a constructor that validates a value before wrapping it
func FromPredicate[A any](pred func(A) bool) func(A) Option[A] {
	return F.Bind2nd(fromPredicate[A], pred)
}

// FromNillable converts a pointer into an [Option] that is empty for nil. This is
// the only place a nil pointer crosses into the library.
func FromNillable[A any](a *A) Option[*A] {
	return fromPredicate(a, F.IsNonNil[A])
}

// ToNillable converts an [Option] into a pointer, nil for None
func ToNillable[A any](ma Option[A]) *A {
	if ma.isSome {
		v := ma.value
		return &v
	}
	return nil
}

// FromValidation converts a comma-ok style accessor into an optional one
func FromValidation[A, B any](f func(A) (B, bool)) func(A) Option[B] {
	return func(a A) Option[B] {
		b, ok := f(a)
		if ok {
			return Some(b)
		}
		return None[B]()
	}
}

// TryCatch converts a fallible computation into an [Option], discarding the error
func TryCatch[A any](f func() (A, error)) Option[A] {
	val, err := f()
	if err != nil {
		return None[A]()
	}
	return Some(val)
}

// MonadAp is the applicative functor of [Option]
func MonadAp[B, A any](fab Option[func(A) B], fa Option[A]) Option[B] {
	return MonadFold(fab, None[B], func(ab func(A) B) Option[B] {
		return MonadFold(fa, None[B], F.Flow2(ab, Some[B]))
	})
}

// Ap is the curried version of [MonadAp]
func Ap[B, A any](fa Option[A]) func(Option[func(A) B]) Option[B] {
	return F.Bind2nd(MonadAp[B, A], fa)
}

// MonadMap transforms the value of an [Option]
func MonadMap[A, B any](fa Option[A], f func(A) B) Option[B] {
	return MonadChain(fa, F.Flow2(f, Some[B]))
}

// Map is the curried version of [MonadMap]
func Map[A, B any](f func(a A) B) func(Option[A]) Option[B] {
	return Chain(F.Flow2(f, Some[B]))
}

// MonadMapTo replaces the value of an [Option]
func MonadMapTo[A, B any](fa Option[A], b B) Option[B] {
	return MonadMap(fa, F.Constant1[A](b))
}

// MapTo is the curried version of [MonadMapTo]
func MapTo[A, B any](b B) func(Option[A]) Option[B] {
	return F.Bind2nd(MonadMapTo[A, B], b)
}

// Fold is the curried version of [MonadFold]
func Fold[A, B any](onNone func() B, onSome func(a A) B) func(Option[A]) B {
	return func(ma Option[A]) B {
		return MonadFold(ma, onNone, onSome)
	}
}

// MonadGetOrElse extracts the value or computes a default
func MonadGetOrElse[A any](fa Option[A], onNone func() A) A {
	return MonadFold(fa, onNone, F.Identity[A])
}

// GetOrElse is the curried version of [MonadGetOrElse]
func GetOrElse[A any](onNone func() A) func(Option[A]) A {
	return Fold(onNone, F.Identity[A])
}

// MonadChain composes computations in sequence. None short circuits.
func MonadChain[A, B any](fa Option[A], f func(A) Option[B]) Option[B] {
	return MonadFold(fa, None[B], f)
}

// Chain is the curried version of [MonadChain]
func Chain[A, B any](f func(A) Option[B]) func(Option[A]) Option[B] {
	return F.Bind2nd(MonadChain[A, B], f)
}

// MonadChainTo composes computations in sequence, discarding the first value
func MonadChainTo[A, B any](ma Option[A], mb Option[B]) Option[B] {
	return MonadChain(ma, F.Constant1[A](mb))
}

// ChainTo is the curried version of [MonadChainTo]
func ChainTo[A, B any](mb Option[B]) func(Option[A]) Option[B] {
	return F.Bind2nd(MonadChainTo[A, B], mb)
}

// MonadChainFirst runs a second computation and keeps the first value. This is
// the observation hook of the option path, the observer cannot change the result
// other than by returning None.
func MonadChainFirst[A, B any](ma Option[A], f func(A) Option[B]) Option[A] {
	return MonadChain(ma, func(a A) Option[A] {
		return MonadMap(f(a), F.Constant1[B](a))
	})
}

// ChainFirst is the curried version of [MonadChainFirst]
func ChainFirst[A, B any](f func(A) Option[B]) func(Option[A]) Option[A] {
	return F.Bind2nd(MonadChainFirst[A, B], f)
}

// Flatten removes one level of nesting
func Flatten[A any](mma Option[Option[A]]) Option[A] {
	return MonadChain(mma, F.Identity[Option[A]])
}

// MonadAlt returns the first option if it holds a value, else evaluates the second
func MonadAlt[A any](fa Option[A], that func() Option[A]) Option[A] {
	return MonadFold(fa, that, Of[A])
}

// Alt is the curried version of [MonadAlt]
func Alt[A any](that func() Option[A]) func(Option[A]) Option[A] {
	return Fold(that, Of[A])
}

// AltAll returns the first of the alternatives that holds a value
func AltAll[A any](alternatives ...func() Option[A]) func(Option[A]) Option[A] {
	return func(fa Option[A]) Option[A] {
		res := fa
		for _, alt := range alternatives {
			if res.isSome {
				return res
			}
			res = alt()
		}
		return res
	}
}

// Zero returns the empty [Option], the identity of [Alt]
func Zero[A any]() Option[A] {
	return None[A]()
}

// Guard returns Some(Void) if the condition holds, None otherwise
func Guard(cond bool) Option[F.Void] {
	if cond {
		return Some(F.VOID)
	}
	return None[F.Void]()
}

// Filter keeps the value only if the predicate holds
func Filter[A any](pred func(A) bool) func(Option[A]) Option[A] {
	return Fold(None[A], F.Ternary(pred, Of[A], F.Ignore1of1[A](None[A])))
}

// FilterMap combines [Filter] and [Map] in a single pass
func FilterMap[A, B any](f func(A) Option[B]) func(Option[A]) Option[B] {
	return Chain(f)
}

// Reduce folds the option into an accumulator
func Reduce[A, B any](f func(B, A) B, initial B) func(Option[A]) B {
	return Fold(F.Constant(initial), F.Bind1st(f, initial))
}

// MonadFlap applies a value to a function inside the option
func MonadFlap[B, A any](fab Option[func(A) B], a A) Option[B] {
	return FC.MonadFlap(MonadMap[func(A) B, B], fab, a)
}

// Flap is the curried version of [MonadFlap]
func Flap[B, A any](a A) func(Option[func(A) B]) Option[B] {
	return F.Bind2nd(MonadFlap[B, A], a)
}

// MonadSequence2 runs two options and combines the values. The first None wins.
func MonadSequence2[T1, T2, R any](o1 Option[T1], o2 Option[T2], f func(T1, T2) Option[R]) Option[R] {
	return MonadFold(o1, None[R], func(t1 T1) Option[R] {
		return MonadFold(o2, None[R], func(t2 T2) Option[R] {
			return f(t1, t2)
		})
	})
}

// Sequence2 is the curried version of [MonadSequence2]
func Sequence2[T1, T2, R any](f func(T1, T2) Option[R]) func(Option[T1], Option[T2]) Option[R] {
	return func(o1 Option[T1], o2 Option[T2]) Option[R] {
		return MonadSequence2(o1, o2, f)
	}
}

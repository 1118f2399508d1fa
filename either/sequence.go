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

package either

import (
	T "github.com/paths-fp/paths/tuple"
)

// SequenceT2 combines two eithers into an either of a tuple. The first left wins.
func SequenceT2[E, T1, T2 any](e1 Either[E, T1], e2 Either[E, T2]) Either[E, T.Tuple2[T1, T2]] {
	return MonadSequence2(e1, e2, func(t1 T1, t2 T2) Either[E, T.Tuple2[T1, T2]] {
		return Of[E](T.MakeTuple2(t1, t2))
	})
}

// SequenceT3 combines three eithers into an either of a tuple. The first left wins.
func SequenceT3[E, T1, T2, T3 any](e1 Either[E, T1], e2 Either[E, T2], e3 Either[E, T3]) Either[E, T.Tuple3[T1, T2, T3]] {
	return MonadSequence3(e1, e2, e3, func(t1 T1, t2 T2, t3 T3) Either[E, T.Tuple3[T1, T2, T3]] {
		return Of[E](T.MakeTuple3(t1, t2, t3))
	})
}

// SequenceT4 combines four eithers into an either of a tuple. The first left wins.
func SequenceT4[E, T1, T2, T3, T4 any](e1 Either[E, T1], e2 Either[E, T2], e3 Either[E, T3], e4 Either[E, T4]) Either[E, T.Tuple4[T1, T2, T3, T4]] {
	return MonadChain(SequenceT3(e1, e2, e3), func(t T.Tuple3[T1, T2, T3]) Either[E, T.Tuple4[T1, T2, T3, T4]] {
		return MonadMap(e4, func(t4 T4) T.Tuple4[T1, T2, T3, T4] {
			return T.MakeTuple4(t.F1, t.F2, t.F3, t4)
		})
	})
}

// MonadTraverseArray maps each element to an [Either] and collects the results.
// The first left aborts the traversal.
func MonadTraverseArray[E, A, B any](as []A, f func(A) Either[E, B]) Either[E, []B] {
	bs := make([]B, 0, len(as))
	for _, a := range as {
		eb := f(a)
		if IsLeft(eb) {
			return Left[[]B](eb.left)
		}
		bs = append(bs, eb.right)
	}
	return Right[E](bs)
}

// TraverseArray is the curried version of [MonadTraverseArray]
func TraverseArray[E, A, B any](f func(A) Either[E, B]) func([]A) Either[E, []B] {
	return func(as []A) Either[E, []B] {
		return MonadTraverseArray(as, f)
	}
}

// SequenceArray collects an array of eithers into an either of an array
func SequenceArray[E, A any](as []Either[E, A]) Either[E, []A] {
	return MonadTraverseArray(as, func(a Either[E, A]) Either[E, A] {
		return a
	})
}

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
	T "github.com/paths-fp/paths/tuple"
)

// SequenceT2 combines two options into an option of a tuple. The first None wins.
func SequenceT2[T1, T2 any](o1 Option[T1], o2 Option[T2]) Option[T.Tuple2[T1, T2]] {
	return MonadSequence2(o1, o2, func(t1 T1, t2 T2) Option[T.Tuple2[T1, T2]] {
		return Of(T.MakeTuple2(t1, t2))
	})
}

// SequenceT3 combines three options into an option of a tuple. The first None wins.
func SequenceT3[T1, T2, T3 any](o1 Option[T1], o2 Option[T2], o3 Option[T3]) Option[T.Tuple3[T1, T2, T3]] {
	return MonadChain(SequenceT2(o1, o2), func(t12 T.Tuple2[T1, T2]) Option[T.Tuple3[T1, T2, T3]] {
		return MonadMap(o3, func(t3 T3) T.Tuple3[T1, T2, T3] {
			return T.MakeTuple3(t12.F1, t12.F2, t3)
		})
	})
}

// SequenceT4 combines four options into an option of a tuple. The first None wins.
func SequenceT4[T1, T2, T3, T4 any](o1 Option[T1], o2 Option[T2], o3 Option[T3], o4 Option[T4]) Option[T.Tuple4[T1, T2, T3, T4]] {
	return MonadChain(SequenceT3(o1, o2, o3), func(t T.Tuple3[T1, T2, T3]) Option[T.Tuple4[T1, T2, T3, T4]] {
		return MonadMap(o4, func(t4 T4) T.Tuple4[T1, T2, T3, T4] {
			return T.MakeTuple4(t.F1, t.F2, t.F3, t4)
		})
	})
}

// MonadTraverseArray maps each element to an [Option] and collects the results.
// The first None aborts the traversal.
func MonadTraverseArray[A, B any](as []A, f func(A) Option[B]) Option[[]B] {
	bs := make([]B, 0, len(as))
	for _, a := range as {
		ob := f(a)
		if IsNone(ob) {
			return None[[]B]()
		}
		bs = append(bs, ob.value)
	}
	return Some(bs)
}

// TraverseArray is the curried version of [MonadTraverseArray]
func TraverseArray[A, B any](f func(A) Option[B]) func([]A) Option[[]B] {
	return func(as []A) Option[[]B] {
		return MonadTraverseArray(as, f)
	}
}

// SequenceArray collects an array of options into an option of an array
func SequenceArray[A any](as []Option[A]) Option[[]A] {
	return MonadTraverseArray(as, func(a Option[A]) Option[A] {
		return a
	})
}

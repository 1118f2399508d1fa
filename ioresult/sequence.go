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

package ioresult

import (
	ET "github.com/paths-fp/paths/either"
	R "github.com/paths-fp/paths/result"
	T "github.com/paths-fp/paths/tuple"
)

// SequenceT2 combines two computations into one yielding a tuple. The
// computations run sequentially; the first failure wins.
func SequenceT2[T1, T2 any](io1 IOResult[T1], io2 IOResult[T2]) IOResult[T.Tuple2[T1, T2]] {
	return MonadChain(io1, func(t1 T1) IOResult[T.Tuple2[T1, T2]] {
		return MonadMap(io2, func(t2 T2) T.Tuple2[T1, T2] {
			return T.MakeTuple2(t1, t2)
		})
	})
}

// SequenceT3 combines three computations into one yielding a tuple
func SequenceT3[T1, T2, T3 any](io1 IOResult[T1], io2 IOResult[T2], io3 IOResult[T3]) IOResult[T.Tuple3[T1, T2, T3]] {
	return MonadChain(SequenceT2(io1, io2), func(t T.Tuple2[T1, T2]) IOResult[T.Tuple3[T1, T2, T3]] {
		return MonadMap(io3, func(t3 T3) T.Tuple3[T1, T2, T3] {
			return T.MakeTuple3(t.F1, t.F2, t3)
		})
	})
}

// MonadTraverseArray maps each element to a computation and runs them in
// sequence. The first failure aborts the traversal.
func MonadTraverseArray[A, B any](as []A, f func(A) IOResult[B]) IOResult[[]B] {
	return func() R.Result[[]B] {
		acc := R.Ok(make([]B, 0, len(as)))
		for _, a := range as {
			if R.IsError(acc) {
				return acc
			}
			acc = ET.MonadChain(f(a)(), func(b B) R.Result[[]B] {
				return R.Map[[]B, []B](func(bs []B) []B {
					return append(bs, b)
				})(acc)
			})
		}
		return acc
	}
}

// TraverseArray is the curried version of [MonadTraverseArray]
func TraverseArray[A, B any](f func(A) IOResult[B]) func([]A) IOResult[[]B] {
	return func(as []A) IOResult[[]B] {
		return MonadTraverseArray(as, f)
	}
}

// SequenceArray runs an array of computations in sequence and collects the results
func SequenceArray[A any](as []IOResult[A]) IOResult[[]A] {
	return MonadTraverseArray(as, func(a IOResult[A]) IOResult[A] {
		return a
	})
}

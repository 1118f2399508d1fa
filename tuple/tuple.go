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

// package tuple provides product types of fixed arity, see the generated [Tuple1] through [Tuple12]
package tuple

// First returns the first element of a [Tuple2]
func First[T1, T2 any](t Tuple2[T1, T2]) T1 {
	return t.F1
}

// Second returns the second element of a [Tuple2]
func Second[T1, T2 any](t Tuple2[T1, T2]) T2 {
	return t.F2
}

// Swap exchanges the elements of a [Tuple2]
func Swap[T1, T2 any](t Tuple2[T1, T2]) Tuple2[T2, T1] {
	return MakeTuple2(t.F2, t.F1)
}

// Replicate2 duplicates a value into both slots of a [Tuple2]
func Replicate2[T any](t T) Tuple2[T, T] {
	return MakeTuple2(t, t)
}

// Map2 applies two functions to the elements of a [Tuple2]
func Map2[T1, T2, R1, R2 any](f1 func(T1) R1, f2 func(T2) R2) func(Tuple2[T1, T2]) Tuple2[R1, R2] {
	return func(t Tuple2[T1, T2]) Tuple2[R1, R2] {
		return MakeTuple2(f1(t.F1), f2(t.F2))
	}
}

// BiMap is an alias for [Map2], the bifunctor on pairs
func BiMap[T1, T2, R1, R2 any](f1 func(T1) R1, f2 func(T2) R2) func(Tuple2[T1, T2]) Tuple2[R1, R2] {
	return Map2(f1, f2)
}

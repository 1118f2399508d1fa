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

// package erasure provides utilities for type erasure and type safe conversion
// between generic types and the any type. The free program encodings store
// intermediate values erased and restore the types at the edges.
package erasure

import (
	F "github.com/paths-fp/paths/function"
	R "github.com/paths-fp/paths/result"
)

// Erase converts a typed value into an erased one
func Erase[T any](t T) any {
	return t
}

// Unerase restores the type of an erased value. The conversion panics if the
// types do not line up; use [SafeUnerase] at untrusted boundaries.
func Unerase[T any](t any) T {
	return t.(T)
}

// SafeUnerase restores the type of an erased value, failing instead of panicking
func SafeUnerase[T any](t any) R.Result[T] {
	if res, ok := t.(T); ok {
		return R.Ok(res)
	}
	return R.Errorf[T]("value of type %T cannot be converted", t)
}

// Erase1 converts a typed function into one over erased values
func Erase1[T1, R1 any](f func(T1) R1) func(any) any {
	return F.Flow3(Unerase[T1], f, Erase[R1])
}

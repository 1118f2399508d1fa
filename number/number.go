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

// package number contains the canonical algebraic instances for numeric types
package number

import (
	M "github.com/paths-fp/paths/monoid"
	S "github.com/paths-fp/paths/semigroup"
)

// Number is the constraint for the built-in numeric types
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

func add[A Number](x A, y A) A {
	return x + y
}

func mul[A Number](x A, y A) A {
	return x * y
}

// Add returns the curried addition
func Add[A Number](x A) func(A) A {
	return func(y A) A {
		return x + y
	}
}

// Mul returns the curried multiplication
func Mul[A Number](x A) func(A) A {
	return func(y A) A {
		return x * y
	}
}

// SemigroupSum combines numbers under addition
func SemigroupSum[A Number]() S.Semigroup[A] {
	return S.MakeSemigroup(add[A])
}

// SemigroupProduct combines numbers under multiplication
func SemigroupProduct[A Number]() S.Semigroup[A] {
	return S.MakeSemigroup(mul[A])
}

// MonoidSum combines numbers under addition, empty is 0
func MonoidSum[A Number]() M.Monoid[A] {
	return M.MakeMonoid(add[A], 0)
}

// MonoidProduct combines numbers under multiplication, empty is 1
func MonoidProduct[A Number]() M.Monoid[A] {
	return M.MakeMonoid(mul[A], 1)
}

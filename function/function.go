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

// package function implements function composition primitives such as [Pipe1] and [Flow1] as
// well as small helpers to manipulate function arguments
package function

// Identity returns the value 'a'
func Identity[A any](a A) A {
	return a
}

// Constant creates a nullary function that returns the constant value 'a'
func Constant[A any](a A) func() A {
	return func() A {
		return a
	}
}

// Constant1 creates a unary function that ignores its argument and returns the constant value 'a'
func Constant1[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Constant2 creates a binary function that ignores its arguments and returns the constant value 'a'
func Constant2[B, C, A any](a A) func(B, C) A {
	return func(_ B, _ C) A {
		return a
	}
}

// Ignore1of1 converts a nullary function into a unary function that ignores its argument
func Ignore1of1[T1, R any](f func() R) func(T1) R {
	return func(_ T1) R {
		return f()
	}
}

// IsNil checks if the pointer is nil
func IsNil[A any](a *A) bool {
	return a == nil
}

// IsNonNil checks if the pointer is not nil
func IsNonNil[A any](a *A) bool {
	return a != nil
}

// Swap reverses the argument order of a binary function
func Swap[T1, T2, R any](f func(T1, T2) R) func(T2, T1) R {
	return func(t2 T2, t1 T1) R {
		return f(t1, t2)
	}
}

// First returns the first of two arguments
func First[T1, T2 any](t1 T1, _ T2) T1 {
	return t1
}

// Second returns the second of two arguments
func Second[T1, T2 any](_ T1, t2 T2) T2 {
	return t2
}

func Nullary1[R any](f1 func() R) func() R {
	return f1
}

func Nullary2[T1, R any](f1 func() T1, f2 func(t1 T1) R) func() R {
	return func() R {
		return Pipe1(f1(), f2)
	}
}

func Nullary3[T1, T2, R any](f1 func() T1, f2 func(t1 T1) T2, f3 func(t2 T2) R) func() R {
	return func() R {
		return Pipe2(f1(), f2, f3)
	}
}

func Nullary4[T1, T2, T3, R any](f1 func() T1, f2 func(t1 T1) T2, f3 func(t2 T2) T3, f4 func(t3 T3) R) func() R {
	return func() R {
		return Pipe3(f1(), f2, f3, f4)
	}
}

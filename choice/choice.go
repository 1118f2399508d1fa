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

// package choice implements the tagged union consumed by the selective
// combinators. Unlike an error channel the left branch carries pending work,
// not a failure.
package choice

import "fmt"

// Choice is a value of either the left or the right branch
type Choice[A, B any] struct {
	right  bool
	lValue A
	rValue B
}

// String prints some debug info for the object
func (c Choice[A, B]) String() string {
	if c.right {
		return fmt.Sprintf("Right[%T](%v)", c.rValue, c.rValue)
	}
	return fmt.Sprintf("Left[%T](%v)", c.lValue, c.lValue)
}

// Left injects into the left branch
func Left[B, A any](a A) Choice[A, B] {
	return Choice[A, B]{lValue: a}
}

// Right injects into the right branch
func Right[A, B any](b B) Choice[A, B] {
	return Choice[A, B]{right: true, rValue: b}
}

// IsRight tests for the right branch
func IsRight[A, B any](c Choice[A, B]) bool {
	return c.right
}

// MonadFold eliminates a [Choice] into a value
func MonadFold[A, B, R any](c Choice[A, B], onLeft func(A) R, onRight func(B) R) R {
	if c.right {
		return onRight(c.rValue)
	}
	return onLeft(c.lValue)
}

// Fold is the curried version of [MonadFold]
func Fold[A, B, R any](onLeft func(A) R, onRight func(B) R) func(Choice[A, B]) R {
	return func(c Choice[A, B]) R {
		return MonadFold(c, onLeft, onRight)
	}
}

// BiMap transforms both branches
func BiMap[A, B, A1, B1 any](f func(A) A1, g func(B) B1) func(Choice[A, B]) Choice[A1, B1] {
	return Fold(func(a A) Choice[A1, B1] {
		return Left[B1](f(a))
	}, func(b B) Choice[A1, B1] {
		return Right[A1](g(b))
	})
}

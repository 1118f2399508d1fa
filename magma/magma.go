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

// package magma provides the most basic combining operation, a closed binary function
package magma

// Magma is a binary operation closed over A. No laws are implied.
type Magma[A any] interface {
	Concat(x A, y A) A
}

type magma[A any] struct {
	c func(A, A) A
}

func (m magma[A]) Concat(x A, y A) A {
	return m.c(x, y)
}

// MakeMagma creates a [Magma] from a binary function
func MakeMagma[A any](c func(A, A) A) Magma[A] {
	return magma[A]{c: c}
}

// Reverse swaps the arguments of the combining operation
func Reverse[A any](m Magma[A]) Magma[A] {
	return MakeMagma(func(x A, y A) A {
		return m.Concat(y, x)
	})
}

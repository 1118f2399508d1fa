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

// package identity implements the trivial effect path that simply carries a value
package identity

import (
	F "github.com/paths-fp/paths/function"
)

// Of returns its argument
func Of[A any](a A) A {
	return a
}

// MonadMap applies a function to the value
func MonadMap[A, B any](fa A, f func(A) B) B {
	return f(fa)
}

// Map is the curried version of [MonadMap]
func Map[A, B any](f func(A) B) func(A) B {
	return f
}

// MonadChain applies a function to the value
func MonadChain[A, B any](fa A, f func(A) B) B {
	return f(fa)
}

// Chain is the curried version of [MonadChain]
func Chain[A, B any](f func(A) B) func(A) B {
	return f
}

// MonadAp applies a wrapped function to the value
func MonadAp[B, A any](fab func(A) B, fa A) B {
	return fab(fa)
}

// Ap is the curried version of [MonadAp]
func Ap[B, A any](fa A) func(func(A) B) B {
	return F.Bind2nd(MonadAp[B, A], fa)
}

// Extract returns the carried value
func Extract[A any](fa A) A {
	return fa
}

// Flatten is the identity, there is no nesting to remove
func Flatten[A any](mma A) A {
	return mma
}

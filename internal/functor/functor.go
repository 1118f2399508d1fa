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

// Package functor contains derivations that only require the map capability of a
// type constructor. The type parameters HKTS1, HKTS2 and alike represent the
// instantiations F<S1>, F<S2> of the (unrepresentable) higher kinded type F.
package functor

// Let attaches the result of a pure computation to a context [S1] to produce a context [S2]
func Let[S1, S2, B, HKTS1, HKTS2 any](
	fmap func(func(S1) S2) func(HKTS1) HKTS2,
	key func(B) func(S1) S2,
	f func(S1) B,
) func(HKTS1) HKTS2 {
	return fmap(func(s1 S1) S2 {
		return key(f(s1))(s1)
	})
}

// LetTo attaches a constant value to a context [S1] to produce a context [S2]
func LetTo[S1, S2, B, HKTS1, HKTS2 any](
	fmap func(func(S1) S2) func(HKTS1) HKTS2,
	key func(B) func(S1) S2,
	b B,
) func(HKTS1) HKTS2 {
	return fmap(func(s1 S1) S2 {
		return key(b)(s1)
	})
}

// MonadFlap applies a value to a function inside the context
func MonadFlap[FAB ~func(A) B, A, B, HKTFAB, HKTB any](
	fmap func(HKTFAB, func(FAB) B) HKTB,
	fab HKTFAB,
	a A,
) HKTB {
	return fmap(fab, func(f FAB) B {
		return f(a)
	})
}

// Flap is the curried version of [MonadFlap]
func Flap[FAB ~func(A) B, A, B, HKTFAB, HKTB any](
	fmap func(HKTFAB, func(FAB) B) HKTB,
	a A,
) func(HKTFAB) HKTB {
	return func(fab HKTFAB) HKTB {
		return MonadFlap(fmap, fab, a)
	}
}

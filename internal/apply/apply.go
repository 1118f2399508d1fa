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

// Package apply contains derivations over the ap capability of a type
// constructor. The HKTx type parameters represent instantiations of the higher
// kinded type, e.g. HKTA = F<A>.
package apply

import (
	F "github.com/paths-fp/paths/function"
)

// MonadApFirst combines two effectful actions, keeping only the result of the first
func MonadApFirst[A, B, HKTA, HKTB, HKTBA any](
	fap func(HKTBA, HKTB) HKTA,
	fmap func(HKTA, func(A) func(B) A) HKTBA,
	first HKTA,
	second HKTB,
) HKTA {
	return fap(fmap(first, F.Constant1[B, A]), second)
}

// ApFirst is the curried version of [MonadApFirst]
func ApFirst[A, B, HKTA, HKTB, HKTBA any](
	fap func(HKTBA, HKTB) HKTA,
	fmap func(HKTA, func(A) func(B) A) HKTBA,
	second HKTB,
) func(HKTA) HKTA {
	return func(first HKTA) HKTA {
		return MonadApFirst(fap, fmap, first, second)
	}
}

// MonadApSecond combines two effectful actions, keeping only the result of the second
func MonadApSecond[A, B, HKTA, HKTB, HKTBB any](
	fap func(HKTBB, HKTB) HKTB,
	fmap func(HKTA, func(A) func(B) B) HKTBB,
	first HKTA,
	second HKTB,
) HKTB {
	return fap(fmap(first, F.Constant1[A](F.Identity[B])), second)
}

// ApSecond is the curried version of [MonadApSecond]
func ApSecond[A, B, HKTA, HKTB, HKTBB any](
	fap func(HKTBB, HKTB) HKTB,
	fmap func(HKTA, func(A) func(B) B) HKTBB,
	second HKTB,
) func(HKTA) HKTB {
	return func(first HKTA) HKTB {
		return MonadApSecond(fap, fmap, first, second)
	}
}

// ApS attaches the value of a computation to a context [S1] to produce a context [S2],
// considering the context and the computation concurrently
func ApS[S1, S2, B, HKTS1, HKTS2, HKTB, HKTBS2 any](
	fap func(HKTB) func(HKTBS2) HKTS2,
	fmap func(func(S1) func(B) S2) func(HKTS1) HKTBS2,
	setter func(B) func(S1) S2,
	fb HKTB,
) func(HKTS1) HKTS2 {
	return func(fa HKTS1) HKTS2 {
		return fap(fb)(fmap(func(s1 S1) func(B) S2 {
			return func(b B) S2 {
				return setter(b)(s1)
			}
		})(fa))
	}
}

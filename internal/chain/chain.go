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

// Package chain contains derivations over the chain capability of a type
// constructor. The HKTx type parameters represent instantiations of the higher
// kinded type, e.g. HKTA = F<A>.
package chain

import (
	F "github.com/paths-fp/paths/function"
)

// MonadChainFirst runs a second computation for its effect and keeps the first result
func MonadChainFirst[A, B, HKTA, HKTB any](
	mchain func(HKTA, func(A) HKTA) HKTA,
	mmap func(HKTB, func(B) A) HKTA,
	first HKTA,
	f func(A) HKTB,
) HKTA {
	return mchain(first, func(a A) HKTA {
		return mmap(f(a), F.Constant1[B](a))
	})
}

// ChainFirst is the curried version of [MonadChainFirst]
func ChainFirst[A, B, HKTA, HKTB any](
	mchain func(HKTA, func(A) HKTA) HKTA,
	mmap func(HKTB, func(B) A) HKTA,
	f func(A) HKTB,
) func(HKTA) HKTA {
	return F.Bind2nd(mchain, func(a A) HKTA {
		return mmap(f(a), F.Constant1[B](a))
	})
}

// Bind attaches the result of a computation to a context [S1] to produce a context [S2]
func Bind[S1, S2, B, HKTS1, HKTS2, HKTB any](
	mchain func(func(S1) HKTS2) func(HKTS1) HKTS2,
	mmap func(func(B) S2) func(HKTB) HKTS2,
	setter func(B) func(S1) S2,
	f func(S1) HKTB,
) func(HKTS1) HKTS2 {
	return mchain(func(s1 S1) HKTS2 {
		return mmap(func(b B) S2 {
			return setter(b)(s1)
		})(f(s1))
	})
}

// BindTo initializes a new context [S1] from the value of a computation
func BindTo[S1, B, HKTS1, HKTB any](
	mmap func(func(B) S1) func(HKTB) HKTS1,
	setter func(B) S1,
) func(HKTB) HKTS1 {
	return mmap(setter)
}

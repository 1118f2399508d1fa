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

package state

import (
	L "github.com/paths-fp/paths/optics/lens"
	P "github.com/paths-fp/paths/pair"
)

// Focus zooms a stateful computation over the focus of a lens into a
// computation over the whole structure
func Focus[S, A, B any](sa L.Lens[S, A]) func(State[A, B]) State[S, B] {
	return func(fa State[A, B]) State[S, B] {
		return func(s S) P.Pair[B, S] {
			res := fa(sa.Get(s))
			return P.MakePair(P.Head(res), sa.Set(P.Tail(res))(s))
		}
	}
}

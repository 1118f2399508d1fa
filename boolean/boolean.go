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

// package boolean contains the canonical algebraic instances for bool
package boolean

import (
	M "github.com/paths-fp/paths/monoid"
	S "github.com/paths-fp/paths/semigroup"
)

func and(x bool, y bool) bool {
	return x && y
}

func or(x bool, y bool) bool {
	return x || y
}

// SemigroupAll combines under conjunction
var SemigroupAll = S.MakeSemigroup(and)

// SemigroupAny combines under disjunction
var SemigroupAny = S.MakeSemigroup(or)

// MonoidAll combines under conjunction, empty is true
var MonoidAll = M.MakeMonoid(and, true)

// MonoidAny combines under disjunction, empty is false
var MonoidAny = M.MakeMonoid(or, false)

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

// package strings contains the canonical algebraic instances for string
package strings

import (
	M "github.com/paths-fp/paths/monoid"
	S "github.com/paths-fp/paths/semigroup"
)

func concat(x string, y string) string {
	return x + y
}

// Semigroup concatenates strings
var Semigroup = S.MakeSemigroup(concat)

// Monoid concatenates strings, empty is ""
var Monoid = M.MakeMonoid(concat, "")

// JoinMonoid concatenates strings with a delimiter between non-empty operands
func JoinMonoid(sep string) M.Monoid[string] {
	return M.MakeMonoid(func(x string, y string) string {
		if x == "" {
			return y
		}
		if y == "" {
			return x
		}
		return x + sep + y
	}, "")
}

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

// package natural names the polymorphic conversions between effect paths. A
// transformation at one element type is an ordinary function FA -> GA; an
// implementation is natural when it commutes with map:
//
//	gmap(f)(nat(fa)) == nat(fmap(f)(fa))
//
// The conversion functions of the effect packages ([either.ToOption],
// [either.FromOption], [result.ToOption], ...) are the canonical instances and
// the law is part of their test suites.
package natural

import (
	F "github.com/paths-fp/paths/function"
)

// Transformation converts one effect into another at a fixed element type
type Transformation[FA, GA any] func(FA) GA

// Identity is the trivial transformation of an effect onto itself
func Identity[FA any]() Transformation[FA, FA] {
	return F.Identity[FA]
}

// Compose applies one transformation after another
func Compose[FA, GA, HA any](f Transformation[FA, GA], g Transformation[GA, HA]) Transformation[FA, HA] {
	return F.Flow2(f, g)
}

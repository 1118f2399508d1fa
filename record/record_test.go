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

package record

import (
	"testing"

	O "github.com/paths-fp/paths/option"
	S "github.com/paths-fp/paths/semigroup"
	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	m := map[string]int{"a": 1}
	assert.Equal(t, O.Some(1), Lookup[string, int]("a")(m))
	assert.Equal(t, O.None[int](), Lookup[string, int]("b")(m))
}

func TestUnionMonoidMergesValues(t *testing.T) {
	sum := S.MakeSemigroup(func(x int, y int) int {
		return x + y
	})
	m := UnionMonoid[string](sum)
	merged := m.Concat(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 3, "c": 4})
	assert.Equal(t, map[string]int{"a": 1, "b": 5, "c": 4}, merged)
	assert.Equal(t, map[string]int{"a": 1}, m.Concat(m.Empty(), map[string]int{"a": 1}))
}

func TestSetUnion(t *testing.T) {
	sets := SetUnionMonoid[string]()
	merged := sets.Concat(map[string]struct{}{"a": {}}, map[string]struct{}{"a": {}, "b": {}})
	assert.Equal(t, map[string]struct{}{"a": {}, "b": {}}, merged)
}

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

package array

import (
	"fmt"
	"testing"

	F "github.com/paths-fp/paths/function"
	M "github.com/paths-fp/paths/monoid"
	O "github.com/paths-fp/paths/option"
	"github.com/stretchr/testify/assert"
)

var intSum = M.MakeMonoid(func(x int, y int) int {
	return x + y
}, 0)

func TestMapIsEager(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6}, F.Pipe1([]int{1, 2, 3}, Map(func(n int) int {
		return n * 2
	})))
}

func TestChainConcatenates(t *testing.T) {
	assert.Equal(t, []int{1, 1, 2, 2}, F.Pipe1([]int{1, 2}, Chain(func(n int) []int {
		return []int{n, n}
	})))
}

func TestApIsCartesian(t *testing.T) {
	res := F.Pipe1(
		[]func(int) int{func(n int) int { return n + 1 }, func(n int) int { return n * 10 }},
		Ap[int]([]int{1, 2}),
	)
	assert.Equal(t, []int{2, 3, 10, 20}, res)
}

func TestFilter(t *testing.T) {
	assert.Equal(t, []int{2, 4}, F.Pipe1([]int{1, 2, 3, 4}, Filter(func(n int) bool {
		return n%2 == 0
	})))
}

func TestZipWithTruncatesToShortest(t *testing.T) {
	res := MonadZipWith([]int{1, 2, 3}, []string{"a", "b"}, func(n int, s string) string {
		return fmt.Sprintf("%d%s", n, s)
	})
	assert.Equal(t, []string{"1a", "2b"}, res)
}

func TestTakeDrop(t *testing.T) {
	assert.Equal(t, []int{1, 2}, F.Pipe1([]int{1, 2, 3}, Take[int](2)))
	assert.Equal(t, []int{3}, F.Pipe1([]int{1, 2, 3}, Drop[int](2)))
	assert.Empty(t, F.Pipe1([]int{1, 2}, Take[int](0)))
	assert.Equal(t, []int{1, 2}, F.Pipe1([]int{1, 2}, Take[int](5)))
}

func TestUniq(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, F.Pipe1([]int{1, 2, 1, 3, 2}, Uniq(F.Identity[int])))
}

func TestHeadLastLookup(t *testing.T) {
	assert.Equal(t, O.Some(1), Head([]int{1, 2, 3}))
	assert.Equal(t, O.Some(3), Last([]int{1, 2, 3}))
	assert.Equal(t, O.None[int](), Head([]int{}))
	assert.Equal(t, O.Some(2), Lookup[int](1)([]int{1, 2, 3}))
	assert.Equal(t, O.None[int](), Lookup[int](9)([]int{1, 2, 3}))
}

func TestFoldMap(t *testing.T) {
	sum := FoldMap[int](intSum)(F.Identity[int])
	assert.Equal(t, 6, sum([]int{1, 2, 3}))
}

func TestMonoidConcat(t *testing.T) {
	m := Monoid[int]()
	assert.Equal(t, []int{1, 2, 3}, m.Concat([]int{1, 2}, []int{3}))
	assert.Equal(t, []int{1}, m.Concat(m.Empty(), []int{1}))
}

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
	"testing"

	F "github.com/paths-fp/paths/function"
	L "github.com/paths-fp/paths/optics/lens"
	P "github.com/paths-fp/paths/pair"
	"github.com/stretchr/testify/assert"
)

func TestGetPutModify(t *testing.T) {
	program := F.Pipe2(
		Get[int](),
		Chain(func(n int) State[int, F.Void] {
			return Put(n + 1)
		}),
		Chain(func(F.Void) State[int, F.Void] {
			return Modify(func(n int) int {
				return n * 10
			})
		}),
	)
	assert.Equal(t, 30, Execute[int, F.Void](2)(program))
}

func TestEvaluateAndExecute(t *testing.T) {
	program := F.Pipe1(
		Get[int](),
		Chain(func(n int) State[int, string] {
			return F.Pipe1(Put(n*2), Map[int](F.Constant1[F.Void]("done")))
		}),
	)
	assert.Equal(t, "done", Evaluate[int, string](3)(program))
	assert.Equal(t, 6, Execute[int, string](3)(program))
	assert.Equal(t, P.MakePair("done", 6), Run[int, string](3)(program))
}

func TestGets(t *testing.T) {
	length := Gets(func(s string) int {
		return len(s)
	})
	assert.Equal(t, 3, Evaluate[string, int]("abc")(length))
}

func TestChainThreadsState(t *testing.T) {
	push := func(n int) State[[]int, int] {
		return func(s []int) P.Pair[int, []int] {
			return P.MakePair(n, append(s, n))
		}
	}
	program := F.Pipe1(push(1), Chain(func(int) State[[]int, int] {
		return push(2)
	}))
	assert.Equal(t, []int{1, 2}, Execute[[]int, int](nil)(program))
}

type counter struct {
	value int
	label string
}

func TestFocusZoomsThroughLens(t *testing.T) {
	valueLens := L.MakeLens(func(c counter) int {
		return c.value
	}, func(c counter, v int) counter {
		c.value = v
		return c
	})

	increment := Modify(func(n int) int {
		return n + 1
	})

	res := Execute[counter, F.Void](counter{value: 1, label: "c"})(Focus[counter, int, F.Void](valueLens)(increment))
	assert.Equal(t, counter{value: 2, label: "c"}, res)
}

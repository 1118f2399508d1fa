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

package function

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipe(t *testing.T) {
	res := Pipe3(1,
		func(n int) int { return n + 1 },
		func(n int) int { return n * 10 },
		strconv.Itoa,
	)
	assert.Equal(t, "20", res)
}

func TestFlow(t *testing.T) {
	f := Flow2(func(n int) int { return n * 2 }, strconv.Itoa)
	assert.Equal(t, "4", f(2))
}

func TestBind(t *testing.T) {
	sub := func(x int, y int) int { return x - y }
	assert.Equal(t, 7, Bind1st(sub, 10)(3))
	assert.Equal(t, -7, Bind2nd(sub, 10)(3))
}

func TestCurry(t *testing.T) {
	add3 := func(a int, b int, c int) int { return a + b + c }
	assert.Equal(t, 6, Curry3(add3)(1)(2)(3))
	assert.Equal(t, 6, Uncurry3(Curry3(add3))(1, 2, 3))
}

func TestConstantsAndIdentity(t *testing.T) {
	assert.Equal(t, 1, Identity(1))
	assert.Equal(t, "a", Constant("a")())
	assert.Equal(t, "a", Constant1[int]("a")(42))
}

func TestTernary(t *testing.T) {
	classify := Ternary(
		func(n int) bool { return n%2 == 0 },
		func(int) string { return "even" },
		func(int) string { return "odd" },
	)
	assert.Equal(t, "even", classify(2))
	assert.Equal(t, "odd", classify(3))
}

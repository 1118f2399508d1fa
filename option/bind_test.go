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

package option

import (
	"testing"

	F "github.com/paths-fp/paths/function"
	"github.com/stretchr/testify/assert"
)

type withFirst struct {
	first int
}

type withBoth struct {
	first  int
	second int
}

func setFirst(first int) func(struct{}) withFirst {
	return func(struct{}) withFirst {
		return withFirst{first: first}
	}
}

func setSecond(second int) func(withFirst) withBoth {
	return func(s withFirst) withBoth {
		return withBoth{first: s.first, second: second}
	}
}

func TestDoBind(t *testing.T) {
	res := F.Pipe3(
		Do(struct{}{}),
		Bind(setFirst, func(struct{}) Option[int] {
			return Some(1)
		}),
		Bind(setSecond, func(s withFirst) Option[int] {
			return Some(s.first + 1)
		}),
		Map(func(s withBoth) int {
			return s.first + s.second
		}),
	)
	assert.Equal(t, Some(3), res)
}

func TestDoBindShortCircuit(t *testing.T) {
	res := F.Pipe3(
		Do(struct{}{}),
		Bind(setFirst, func(struct{}) Option[int] {
			return Some(1)
		}),
		Bind(setSecond, func(withFirst) Option[int] {
			return None[int]()
		}),
		Map(func(s withBoth) int {
			return s.first + s.second
		}),
	)
	assert.Equal(t, None[int](), res)
}

func TestDoLetAndApS(t *testing.T) {
	res := F.Pipe3(
		Do(struct{}{}),
		Bind(setFirst, func(struct{}) Option[int] {
			return Some(10)
		}),
		Let(setSecond, func(s withFirst) int {
			return s.first * 2
		}),
		Map(func(s withBoth) int {
			return s.second
		}),
	)
	assert.Equal(t, Some(20), res)

	apRes := F.Pipe3(
		Do(struct{}{}),
		Bind(setFirst, func(struct{}) Option[int] {
			return Some(1)
		}),
		ApS(setSecond, Some(5)),
		Map(func(s withBoth) int {
			return s.first + s.second
		}),
	)
	assert.Equal(t, Some(6), apRes)
}

func TestDoWithGuard(t *testing.T) {
	run := func(first int) Option[int] {
		return F.Pipe3(
			Do(struct{}{}),
			Bind(setFirst, F.Constant1[struct{}](Some(first))),
			Filter(func(s withFirst) bool {
				return s.first%2 == 0
			}),
			Map(func(s withFirst) int {
				return s.first
			}),
		)
	}
	assert.Equal(t, Some(2), run(2))
	assert.Equal(t, None[int](), run(3))
}

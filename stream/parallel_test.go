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

package stream

import (
	"context"
	"sort"
	"testing"
	"time"

	R "github.com/paths-fp/paths/result"
	TA "github.com/paths-fp/paths/task"
	"github.com/stretchr/testify/assert"
)

func TestParEvalMapPreservesInputOrder(t *testing.T) {
	// later elements finish earlier, the output order must not change
	slowDouble := func(n int) TA.Task[int] {
		return TA.MonadChainTo(
			TA.Sleep(time.Duration(40-10*n)*time.Millisecond),
			TA.Of(n*2),
		)
	}
	res := ParEvalMap(4, slowDouble)(From(1, 2, 3))(context.Background())
	assert.Equal(t, R.Ok([]int{2, 4, 6}), res)
}

func TestParEvalMapFailureCancelsPeers(t *testing.T) {
	res := ParEvalMap(4, func(n int) TA.Task[int] {
		if n == 2 {
			return TA.Fail[int](assert.AnError)
		}
		return TA.MonadChainTo(TA.Sleep(50*time.Millisecond), TA.Of(n))
	})(From(1, 2, 3))(context.Background())
	assert.True(t, R.IsError(res))
}

func TestParEvalMapUnorderedEmitsAllResults(t *testing.T) {
	res := ParEvalMapUnordered(4, func(n int) TA.Task[int] {
		return TA.MonadChainTo(
			TA.Sleep(time.Duration(30-10*n)*time.Millisecond),
			TA.Of(n),
		)
	})(From(1, 2))(context.Background())

	values, err := R.Unwrap(res)
	assert.NoError(t, err)
	sort.Ints(values)
	assert.Equal(t, []int{1, 2}, values)
}

func TestParEvalFlatMap(t *testing.T) {
	res := ParEvalFlatMap(2, func(n int) TA.Task[[]int] {
		return TA.Of([]int{n, n * 10})
	})(From(1, 2))(context.Background())
	assert.Equal(t, R.Ok([]int{1, 10, 2, 20}), res)
}

func TestMergePreservesPerSourceOrder(t *testing.T) {
	res := Merge([]Stream[int]{From(1, 2, 3), From(10, 20)})(context.Background())
	values, err := R.Unwrap(res)
	assert.NoError(t, err)
	assert.Len(t, values, 5)

	positions := make(map[int]int, len(values))
	for i, v := range values {
		positions[v] = i
	}
	assert.Less(t, positions[1], positions[2])
	assert.Less(t, positions[2], positions[3])
	assert.Less(t, positions[10], positions[20])
}

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

package lazy

import (
	"sync"
	"sync/atomic"
	"testing"

	F "github.com/paths-fp/paths/function"
	"github.com/stretchr/testify/assert"
)

func TestOfAndMake(t *testing.T) {
	assert.Equal(t, 1, Of(1)())
	assert.Equal(t, 2, Make(func() int { return 2 })())
}

func TestForcingForcesPredecessors(t *testing.T) {
	var forced []string
	base := Make(func() int {
		forced = append(forced, "base")
		return 1
	})
	mapped := F.Pipe1(base, Map(func(n int) int {
		forced = append(forced, "map")
		return n + 1
	}))
	assert.Empty(t, forced)
	assert.Equal(t, 2, mapped())
	assert.Equal(t, []string{"base", "map"}, forced)
}

func TestMemoizeAtMostOnce(t *testing.T) {
	var calls atomic.Int32
	memoized := Memoize(Make(func() int {
		calls.Add(1)
		return 9
	}))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 9, memoized())
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestChain(t *testing.T) {
	res := F.Pipe1(Of(2), Chain(func(n int) Lazy[int] {
		return Of(n * 3)
	}))
	assert.Equal(t, 6, res())
}

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

package io

import (
	"sync"
	"sync/atomic"
	"testing"

	F "github.com/paths-fp/paths/function"
	"github.com/stretchr/testify/assert"
)

func TestOfIsPure(t *testing.T) {
	assert.Equal(t, 42, Of(42)())
}

func TestMapChainAreDeferred(t *testing.T) {
	var calls atomic.Int32
	computation := F.Pipe2(
		MakeIO(func() int {
			calls.Add(1)
			return 1
		}),
		Map(func(n int) int { return n + 1 }),
		Chain(func(n int) IO[int] { return Of(n * 10) }),
	)
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, 20, computation())
	assert.Equal(t, 20, computation())
	assert.Equal(t, int32(2), calls.Load())
}

func TestMemoizeEvaluatesOnce(t *testing.T) {
	var calls atomic.Int32
	memoized := Memoize(MakeIO(func() int {
		calls.Add(1)
		return 7
	}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 7, memoized())
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestApParRunsBothSides(t *testing.T) {
	res := MonadAp(
		Of(func(n int) int { return n + 1 }),
		Of(2),
	)
	assert.Equal(t, 3, res())
}

func TestChainFirstKeepsFirstResult(t *testing.T) {
	var observed int
	res := F.Pipe1(Of(5), ChainFirst(func(n int) IO[F.Void] {
		return FromImpure(func() {
			observed = n
		})
	}))
	assert.Equal(t, 5, res())
	assert.Equal(t, 5, observed)
}

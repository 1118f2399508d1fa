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

package ioresult

import (
	"errors"
	"testing"
	"time"

	F "github.com/paths-fp/paths/function"
	R "github.com/paths-fp/paths/result"
	RT "github.com/paths-fp/paths/retry"
	"github.com/stretchr/testify/assert"
)

var errFlaky = errors.New("flaky")

func TestRetryExhaustion(t *testing.T) {
	attempts := 0
	failing := TryCatch(func() (int, error) {
		attempts++
		return 0, errFlaky
	})

	start := time.Now()
	res := RunSafe(F.Pipe1(failing, WithRetry[int](RT.Fixed(2, 50*time.Millisecond), F.Constant1[error](true))))
	elapsed := time.Since(start)

	assert.Equal(t, 3, attempts)
	_, err := R.Unwrap(res)
	var exhausted *RT.ExhaustedError
	assert.ErrorAs(t, err, &exhausted)
	assert.Equal(t, uint(3), exhausted.Attempts)
	assert.ErrorIs(t, err, errFlaky)
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
}

func TestRetrySucceedsEventually(t *testing.T) {
	attempts := 0
	flaky := TryCatch(func() (int, error) {
		attempts++
		if attempts < 3 {
			return 0, errFlaky
		}
		return 42, nil
	})

	res := RunSafe(F.Pipe1(flaky, Retry[int](5, time.Millisecond)))
	assert.Equal(t, R.Ok(42), res)
	assert.Equal(t, 3, attempts)
}

func TestRetryPredicateGatesErrors(t *testing.T) {
	fatal := errors.New("fatal")
	attempts := 0
	failing := TryCatch(func() (int, error) {
		attempts++
		return 0, fatal
	})

	start := time.Now()
	res := RunSafe(F.Pipe1(failing, WithRetry[int](RT.Fixed(5, 100*time.Millisecond), func(err error) bool {
		return !errors.Is(err, fatal)
	})))
	elapsed := time.Since(start)

	// the non matching error surfaces immediately, unwrapped and without delay
	assert.Equal(t, 1, attempts)
	_, err := R.Unwrap(res)
	assert.ErrorIs(t, err, fatal)
	var exhausted *RT.ExhaustedError
	assert.False(t, errors.As(err, &exhausted))
	assert.Less(t, elapsed, 50*time.Millisecond)
}

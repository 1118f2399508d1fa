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

package scope

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	O "github.com/paths-fp/paths/option"
	R "github.com/paths-fp/paths/result"
	TA "github.com/paths-fp/paths/task"
	VD "github.com/paths-fp/paths/validated"
	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func sleepThen[A any](d time.Duration, a A) TA.Task[A] {
	return TA.MonadChainTo(TA.Sleep(d), TA.Of(a))
}

func TestAllSucceedForkOrder(t *testing.T) {
	s := New[int](context.Background(), AllSucceed)
	s.Fork(sleepThen(30*time.Millisecond, 1))
	s.Fork(sleepThen(5*time.Millisecond, 2))
	s.Fork(sleepThen(15*time.Millisecond, 3))
	assert.Equal(t, R.Ok([]int{1, 2, 3}), s.Join())
}

func TestAllSucceedFailureCancelsPeers(t *testing.T) {
	var canceled atomic.Bool
	s := New[int](context.Background(), AllSucceed)
	s.Fork(func(ctx context.Context) R.Result[int] {
		<-ctx.Done()
		canceled.Store(true)
		return R.Error[int](TA.ErrCanceled)
	})
	s.Fork(TA.Fail[int](errBoom))

	res := s.Join()
	_, err := R.Unwrap(res)
	assert.ErrorIs(t, err, errBoom)
	// the join waited for the canceled peer, no fork outlives the scope
	assert.True(t, canceled.Load())
}

func TestAnySucceedReturnsFirstSuccess(t *testing.T) {
	s := New[string](context.Background(), AnySucceed)
	s.Fork(TA.Fail[string](errBoom))
	s.Fork(sleepThen(10*time.Millisecond, "winner"))
	s.Fork(sleepThen(5*time.Second, "slow"))

	start := time.Now()
	assert.Equal(t, R.Ok([]string{"winner"}), s.Join())
	assert.Less(t, time.Since(start), time.Second)
}

func TestAnySucceedAllFail(t *testing.T) {
	s := New[string](context.Background(), AnySucceed)
	s.Fork(TA.Fail[string](errBoom))
	s.Fork(TA.Fail[string](errors.New("late")))
	assert.True(t, R.IsError(s.Join()))
}

func TestFirstCompleteReturnsFirstOutcome(t *testing.T) {
	s := New[int](context.Background(), FirstComplete)
	s.Fork(sleepThen(5*time.Millisecond, 1))
	s.Fork(sleepThen(300*time.Millisecond, 2))
	assert.Equal(t, R.Ok([]int{1}), s.Join())
}

func TestFirstCompleteFailureWins(t *testing.T) {
	s := New[int](context.Background(), FirstComplete)
	s.Fork(TA.Fail[int](errBoom))
	s.Fork(sleepThen(300*time.Millisecond, 2))
	_, err := R.Unwrap(s.Join())
	assert.ErrorIs(t, err, errBoom)
}

func TestAccumulatingCollectsEverything(t *testing.T) {
	s := New[int](context.Background(), Accumulating)
	s.Fork(TA.Of(1))
	s.Fork(TA.Fail[int](errBoom))
	s.Fork(TA.Fail[int](errors.New("other")))

	res := s.JoinValidated()
	assert.True(t, VD.IsInvalid(res))

	ok := New[int](context.Background(), Accumulating)
	ok.Fork(TA.Of(1))
	ok.Fork(TA.Of(2))
	assert.Equal(t, VD.Valid[[]error]([]int{1, 2}), ok.JoinValidated())
}

func TestScopeTimeout(t *testing.T) {
	s := New[int](context.Background(), AllSucceed, WithTimeout(30*time.Millisecond))
	s.Fork(sleepThen(5*time.Second, 1))

	start := time.Now()
	res := s.Join()
	assert.Less(t, time.Since(start), time.Second)
	_, err := R.Unwrap(res)
	assert.ErrorIs(t, err, TA.ErrTimeout)
}

func TestJoinProjections(t *testing.T) {
	s := New[int](context.Background(), AllSucceed)
	s.Fork(TA.Fail[int](errBoom))
	assert.Equal(t, O.None[[]int](), s.JoinMaybe())

	ok := New[int](context.Background(), AllSucceed)
	ok.Fork(TA.Of(2))
	assert.Equal(t, R.Ok([]int{2}), ok.JoinSafe())
}

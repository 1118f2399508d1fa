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

	F "github.com/paths-fp/paths/function"
	R "github.com/paths-fp/paths/result"
	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func TestRunSafeNeverPanics(t *testing.T) {
	assert.Equal(t, R.Ok(1), RunSafe(Of(1)))
	assert.Equal(t, R.Error[int](errBoom), RunSafe(Left[int](errBoom)))
}

func TestTryCatchCatchesPanic(t *testing.T) {
	res := RunSafe(TryCatch(func() (int, error) {
		panic("kaboom")
	}))
	assert.True(t, R.IsError(res))
}

func TestUnsafeRunPanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		UnsafeRun(Left[int](errBoom))
	})
	assert.Equal(t, 2, UnsafeRun(Of(2)))
}

func TestChainShortCircuits(t *testing.T) {
	invoked := false
	res := F.Pipe1(Left[int](errBoom), Chain(func(n int) IOResult[int] {
		invoked = true
		return Of(n + 1)
	}))
	assert.Equal(t, R.Error[int](errBoom), RunSafe(res))
	assert.False(t, invoked)
}

func TestHandleError(t *testing.T) {
	res := F.Pipe1(Left[int](errBoom), HandleError(F.Constant1[error](0)))
	assert.Equal(t, R.Ok(0), RunSafe(res))
}

func TestGuaranteeRunsOnEveryExit(t *testing.T) {
	var finalized int
	finalizer := TryCatch(func() (F.Void, error) {
		finalized++
		return F.VOID, nil
	})

	assert.Equal(t, R.Ok(1), RunSafe(F.Pipe1(Of(1), Guarantee[int](finalizer))))
	assert.Equal(t, 1, finalized)

	assert.True(t, R.IsError(RunSafe(F.Pipe1(Left[int](errBoom), Guarantee[int](finalizer)))))
	assert.Equal(t, 2, finalized)
}

func TestBracketReleasesExactlyOnce(t *testing.T) {
	var released []string
	release := func(name string) func(string, R.Result[int]) IOResult[F.Void] {
		return func(string, R.Result[int]) IOResult[F.Void] {
			return TryCatch(func() (F.Void, error) {
				released = append(released, name)
				return F.VOID, nil
			})
		}
	}

	ok := Bracket(Of("res"), func(string) IOResult[int] {
		return Of(1)
	}, release("ok"))
	assert.Equal(t, R.Ok(1), RunSafe(ok))
	assert.Equal(t, []string{"ok"}, released)

	released = nil
	failing := Bracket(Of("res"), func(string) IOResult[int] {
		return Left[int](errBoom)
	}, release("fail"))
	assert.Equal(t, R.Error[int](errBoom), RunSafe(failing))
	assert.Equal(t, []string{"fail"}, released)
}

func TestBracketReleaseObservesOutcome(t *testing.T) {
	var outcome R.Result[int]
	run := Bracket(Of("res"), func(string) IOResult[int] {
		return Left[int](errBoom)
	}, func(_ string, res R.Result[int]) IOResult[F.Void] {
		outcome = res
		return Of(F.VOID)
	})
	RunSafe(run)
	assert.True(t, R.IsError(outcome))
}

func TestPeekDoesNotAffectOutcome(t *testing.T) {
	var seen []int
	observed := F.Pipe1(Of(3), Peek(func(n int) {
		seen = append(seen, n)
	}))
	assert.Equal(t, R.Ok(3), RunSafe(observed))
	assert.Equal(t, []int{3}, seen)

	// a panicking observer is contained
	panicking := F.Pipe1(Of(4), Peek(func(int) {
		panic("observer blew up")
	}))
	assert.Equal(t, R.Ok(4), RunSafe(panicking))

	// the observer does not run on failures
	failing := F.Pipe1(Left[int](errBoom), Peek(func(n int) {
		seen = append(seen, n)
	}))
	assert.True(t, R.IsError(RunSafe(failing)))
	assert.Equal(t, []int{3}, seen)
}

func TestPeekError(t *testing.T) {
	var seen error
	failing := F.Pipe1(Left[int](errBoom), PeekError[int](func(err error) {
		seen = err
	}))
	assert.True(t, R.IsError(RunSafe(failing)))
	assert.ErrorIs(t, seen, errBoom)
}

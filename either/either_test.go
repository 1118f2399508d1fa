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

package either

import (
	"fmt"
	"testing"

	F "github.com/paths-fp/paths/function"
	O "github.com/paths-fp/paths/option"
	"github.com/stretchr/testify/assert"
)

func double(n int) int {
	return n * 2
}

func TestMapEither(t *testing.T) {
	assert.Equal(t, Right[string](4), F.Pipe1(Right[string](2), Map[string](double)))
	assert.Equal(t, Left[int]("err"), F.Pipe1(Left[int]("err"), Map[string](double)))
}

func TestChainShortCircuit(t *testing.T) {
	invoked := false
	res := F.Pipe2(
		Left[int]("boom"),
		Chain(func(n int) Either[string, int] {
			invoked = true
			return Right[string](n + 1)
		}),
		Map[string](double),
	)
	assert.Equal(t, Left[int]("boom"), res)
	assert.False(t, invoked)
}

func TestMonadLaws(t *testing.T) {
	f := func(n int) Either[string, int] { return Right[string](n + 1) }
	g := func(n int) Either[string, int] { return Right[string](n * 3) }

	assert.Equal(t, f(1), F.Pipe1(Of[string](1), Chain(f)))
	assert.Equal(t, Right[string](1), F.Pipe1(Right[string](1), Chain(Of[string, int])))

	left := F.Pipe2(Right[string](2), Chain(f), Chain(g))
	right := F.Pipe1(Right[string](2), Chain(func(n int) Either[string, int] {
		return F.Pipe1(f(n), Chain(g))
	}))
	assert.Equal(t, left, right)
}

func TestBiMap(t *testing.T) {
	upper := func(s string) string { return s + "!" }
	assert.Equal(t, Right[string](4), F.Pipe1(Right[string](2), BiMap(upper, double)))
	assert.Equal(t, Left[int]("e!"), F.Pipe1(Left[int]("e"), BiMap(upper, double)))
}

func TestMapLeft(t *testing.T) {
	assert.Equal(t, Left[int]("wrapped: e"), F.Pipe1(
		Left[int]("e"),
		MapLeft[int](func(e string) string {
			return "wrapped: " + e
		}),
	))
}

func TestFoldIsTotal(t *testing.T) {
	fold := Fold(
		func(e string) string { return "left:" + e },
		func(n int) string { return fmt.Sprintf("right:%d", n) },
	)
	assert.Equal(t, "left:e", fold(Left[int]("e")))
	assert.Equal(t, "right:2", fold(Right[string](2)))
}

func TestOrElse(t *testing.T) {
	rescue := OrElse(func(e string) Either[string, int] {
		return Right[string](len(e))
	})
	assert.Equal(t, Right[string](4), rescue(Left[int]("boom")))
	assert.Equal(t, Right[string](7), rescue(Right[string](7)))
}

func TestSwap(t *testing.T) {
	assert.Equal(t, Left[string](2), Swap(Right[string](2)))
	assert.Equal(t, Right[int]("e"), Swap(Left[int]("e")))
}

func TestOptionConversions(t *testing.T) {
	assert.Equal(t, O.Some(2), ToOption(Right[string](2)))
	assert.Equal(t, O.None[int](), ToOption(Left[int]("e")))

	fromOption := FromOption[int](F.Constant("missing"))
	assert.Equal(t, Right[string](2), fromOption(O.Some(2)))
	assert.Equal(t, Left[int]("missing"), fromOption(O.None[int]()))
}

func TestSequenceT2(t *testing.T) {
	assert.True(t, IsRight(SequenceT2(Right[string](1), Right[string]("a"))))
	assert.True(t, IsLeft(SequenceT2(Left[int]("e"), Right[string]("a"))))
}

func TestTraverseArrayFirstErrorWins(t *testing.T) {
	check := func(n int) Either[string, int] {
		if n < 0 {
			return Left[int](fmt.Sprintf("negative: %d", n))
		}
		return Right[string](n)
	}
	assert.Equal(t, Right[string]([]int{1, 2}), F.Pipe1([]int{1, 2}, TraverseArray(check)))
	assert.Equal(t, Left[[]int]("negative: -1"), F.Pipe1([]int{1, -1, -2}, TraverseArray(check)))
}

type account struct {
	id      string
	balance int
}

type insufficientFunds struct {
	id      string
	balance int
}

func (e insufficientFunds) Error() string {
	return fmt.Sprintf("insufficient funds on %s: %d", e.id, e.balance)
}

func lookupAccount(id string) Either[error, account] {
	return Right[error](account{id: id, balance: 50})
}

func validateBalance(a account, amount int) Either[error, account] {
	if a.balance < amount {
		return Left[account, error](insufficientFunds{id: a.id, balance: a.balance})
	}
	return Right[error](a)
}

func TestPaymentWorkflowShortCircuits(t *testing.T) {
	confirmed := false
	res := F.Pipe2(
		lookupAccount("acc-2"),
		Chain(func(a account) Either[error, account] {
			return validateBalance(a, 100)
		}),
		Map[error](func(a account) account {
			confirmed = true
			return a
		}),
	)
	assert.Equal(t, Left[account, error](insufficientFunds{id: "acc-2", balance: 50}), res)
	assert.False(t, confirmed)
}

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
	"fmt"
	"testing"

	CH "github.com/paths-fp/paths/choice"
	F "github.com/paths-fp/paths/function"
	"github.com/stretchr/testify/assert"
)

func double(n int) int {
	return n * 2
}

func TestIsNone(t *testing.T) {
	assert.True(t, IsNone(None[int]()))
	assert.False(t, IsNone(Of(1)))
}

func TestIsSome(t *testing.T) {
	assert.True(t, IsSome(Of(1)))
	assert.False(t, IsSome(None[int]()))
}

func TestMapOption(t *testing.T) {
	assert.Equal(t, Some(4), F.Pipe1(Some(2), Map(double)))
	assert.Equal(t, None[int](), F.Pipe1(None[int](), Map(double)))
}

func TestFunctorIdentity(t *testing.T) {
	assert.Equal(t, Some(3), F.Pipe1(Some(3), Map(F.Identity[int])))
	assert.Equal(t, None[int](), F.Pipe1(None[int](), Map(F.Identity[int])))
}

func TestFunctorComposition(t *testing.T) {
	inc := func(n int) int { return n + 1 }
	composed := F.Pipe1(Some(2), Map(F.Flow2(double, inc)))
	stepped := F.Pipe2(Some(2), Map(double), Map(inc))
	assert.Equal(t, composed, stepped)
}

func TestAp(t *testing.T) {
	assert.Equal(t, Some(4), F.Pipe1(
		Some(double),
		Ap[int](Some(2)),
	))
	assert.Equal(t, None[int](), F.Pipe1(
		Some(double),
		Ap[int](None[int]()),
	))
	assert.Equal(t, None[int](), F.Pipe1(
		None[func(int) int](),
		Ap[int](Some(2)),
	))
}

func TestApplicativeIdentity(t *testing.T) {
	assert.Equal(t, Some(7), F.Pipe1(
		Some(F.Identity[int]),
		Ap[int](Some(7)),
	))
}

func TestApplicativeHomomorphism(t *testing.T) {
	assert.Equal(t, Some(double(5)), F.Pipe1(
		Some(double),
		Ap[int](Some(5)),
	))
}

func TestChain(t *testing.T) {
	f := func(n int) Option[int] { return Some(n * 2) }
	g := func(_ int) Option[int] { return None[int]() }
	assert.Equal(t, Some(2), F.Pipe1(Some(1), Chain(f)))
	assert.Equal(t, None[int](), F.Pipe1(None[int](), Chain(f)))
	assert.Equal(t, None[int](), F.Pipe1(Some(1), Chain(g)))
}

func TestMonadLeftIdentity(t *testing.T) {
	f := func(n int) Option[string] { return Some(fmt.Sprintf("%d", n)) }
	assert.Equal(t, f(3), F.Pipe1(Of(3), Chain(f)))
}

func TestMonadRightIdentity(t *testing.T) {
	assert.Equal(t, Some(3), F.Pipe1(Some(3), Chain(Of[int])))
	assert.Equal(t, None[int](), F.Pipe1(None[int](), Chain(Of[int])))
}

func TestMonadAssociativity(t *testing.T) {
	f := func(n int) Option[int] { return Some(n + 1) }
	g := func(n int) Option[int] { return Some(n * 3) }
	left := F.Pipe2(Some(2), Chain(f), Chain(g))
	right := F.Pipe1(Some(2), Chain(func(n int) Option[int] {
		return F.Pipe1(f(n), Chain(g))
	}))
	assert.Equal(t, left, right)
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, Of(1), F.Pipe1(Of(Of(1)), Flatten[int]))
}

func TestFold(t *testing.T) {
	onNone := F.Constant("none")
	onSome := func(s string) string { return fmt.Sprintf("some%d", len(s)) }
	fold := Fold(onNone, onSome)
	assert.Equal(t, "none", fold(None[string]()))
	assert.Equal(t, "some3", fold(Some("abc")))
}

func TestFromPredicate(t *testing.T) {
	f := FromPredicate(func(n int) bool { return n > 2 })
	assert.Equal(t, None[int](), f(1))
	assert.Equal(t, Some(3), f(3))
}

func TestAlt(t *testing.T) {
	assert.Equal(t, Some(1), F.Pipe1(Some(1), Alt(F.Constant(Some(2)))))
	assert.Equal(t, Some(2), F.Pipe1(Some(2), Alt(F.Constant(None[int]()))))
	assert.Equal(t, Some(1), F.Pipe1(None[int](), Alt(F.Constant(Some(1)))))
	assert.Equal(t, None[int](), F.Pipe1(None[int](), Alt(F.Constant(None[int]()))))
}

func TestAltIdentities(t *testing.T) {
	// zero is both a left and a right identity of alt
	assert.Equal(t, Some(5), F.Pipe1(Zero[int](), Alt(F.Constant(Some(5)))))
	assert.Equal(t, Some(5), F.Pipe1(Some(5), Alt(F.Constant(Zero[int]()))))
}

func TestApAbsorption(t *testing.T) {
	// applying through the zero stays the zero
	assert.Equal(t, None[int](), F.Pipe1(
		None[func(int) int](),
		Ap[int](Some(1)),
	))
	assert.Equal(t, None[int](), F.Pipe1(
		Some(double),
		Ap[int](None[int]()),
	))
}

func TestFilter(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }
	assert.Equal(t, Some(2), F.Pipe1(Some(2), Filter(isEven)))
	assert.Equal(t, None[int](), F.Pipe1(Some(3), Filter(isEven)))
	assert.Equal(t, None[int](), F.Pipe1(None[int](), Filter(isEven)))
}

func TestGuard(t *testing.T) {
	assert.True(t, IsSome(Guard(true)))
	assert.True(t, IsNone(Guard(false)))
}

func TestGetOrElse(t *testing.T) {
	assert.Equal(t, 2, F.Pipe1(Some(2), GetOrElse(F.Constant(0))))
	assert.Equal(t, 0, F.Pipe1(None[int](), GetOrElse(F.Constant(0))))
}

func TestFromNillable(t *testing.T) {
	value := 1
	assert.True(t, IsSome(FromNillable(&value)))
	assert.True(t, IsNone(FromNillable[int](nil)))
}

func TestChainFirst(t *testing.T) {
	var seen []int
	observe := func(n int) Option[int] {
		seen = append(seen, n)
		return Some(n)
	}
	assert.Equal(t, Some(2), F.Pipe1(Some(2), ChainFirst(observe)))
	assert.Equal(t, []int{2}, seen)
	assert.Equal(t, None[int](), F.Pipe1(None[int](), ChainFirst(observe)))
	assert.Equal(t, []int{2}, seen)
}

func TestSelectRight(t *testing.T) {
	// Select(Right(b), ff) == Of(b), the function side is never consulted
	assert.Equal(t, Some(2), MonadSelect(Some(CH.Right[int](2)), None[func(int) int]()))
}

func TestSelectLeft(t *testing.T) {
	// Select(Left(a), ff) == Ap(ff, Of(a))
	choice := Some(CH.Left[int](3))
	assert.Equal(t, Some(6), MonadSelect(choice, Some(double)))
	assert.Equal(t,
		F.Pipe1(Some(double), Ap[int](Some(3))),
		MonadSelect(choice, Some(double)),
	)
}

func TestIfS(t *testing.T) {
	assert.Equal(t, Some("yes"), F.Pipe1(Some(true), IfS(Some("yes"), Some("no"))))
	assert.Equal(t, Some("no"), F.Pipe1(Some(false), IfS(Some("yes"), Some("no"))))
}

func TestSequenceT(t *testing.T) {
	st := SequenceT2(Some(1), Some("a"))
	assert.True(t, IsSome(st))
	assert.True(t, IsNone(SequenceT2(Some(1), None[string]())))
}

func TestTraverseArray(t *testing.T) {
	positive := func(n int) Option[int] {
		if n > 0 {
			return Some(n)
		}
		return None[int]()
	}
	assert.Equal(t, Some([]int{1, 2}), F.Pipe1([]int{1, 2}, TraverseArray(positive)))
	assert.Equal(t, None[[]int](), F.Pipe1([]int{1, -2}, TraverseArray(positive)))
}

func TestJSONRoundTrip(t *testing.T) {
	some := Some(42)
	data, err := some.MarshalJSON()
	assert.NoError(t, err)
	var back Option[int]
	assert.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, some, back)

	none := None[int]()
	data, err = none.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
	assert.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, none, back)
}

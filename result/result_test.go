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

package result

import (
	"errors"
	"fmt"
	"testing"

	ET "github.com/paths-fp/paths/either"
	F "github.com/paths-fp/paths/function"
	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func TestFromGo(t *testing.T) {
	assert.Equal(t, Ok(1), FromGo(1, nil))
	assert.Equal(t, Error[int](errBoom), FromGo(0, errBoom))
}

func TestTryCatchCatchesPanic(t *testing.T) {
	res := TryCatch(func() (int, error) {
		panic("kaboom")
	})
	assert.True(t, IsError(res))
	_, err := Unwrap(res)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestMapAndChain(t *testing.T) {
	assert.Equal(t, Ok(4), F.Pipe1(Ok(2), Map(func(n int) int { return n * 2 })))
	assert.Equal(t, Error[int](errBoom), F.Pipe1(
		Error[int](errBoom),
		Chain(func(n int) Result[int] { return Ok(n + 1) }),
	))
}

func TestRecover(t *testing.T) {
	assert.Equal(t, Ok(0), F.Pipe1(Error[int](errBoom), Recover(F.Constant1[error](0))))
	assert.Equal(t, Ok(5), F.Pipe1(Ok(5), Recover(F.Constant1[error](0))))
}

func TestRecoverWith(t *testing.T) {
	rescue := RecoverWith(func(err error) Result[int] {
		if errors.Is(err, errBoom) {
			return Ok(-1)
		}
		return Error[int](err)
	})
	assert.Equal(t, Ok(-1), rescue(Error[int](errBoom)))
	other := errors.New("other")
	assert.Equal(t, Error[int](other), rescue(Error[int](other)))
}

func TestMapError(t *testing.T) {
	wrapped := F.Pipe1(Error[int](errBoom), MapError[int](func(err error) error {
		return fmt.Errorf("wrapped: %w", err)
	}))
	_, err := Unwrap(wrapped)
	assert.ErrorIs(t, err, errBoom)
}

func TestToEitherRequiresExplicitMapping(t *testing.T) {
	toCode := ToEither[int](func(err error) string {
		return err.Error()
	})
	assert.Equal(t, ET.Left[int]("boom"), toCode(Error[int](errBoom)))
	assert.Equal(t, ET.Right[string](3), toCode(Ok(3)))
}

func TestUnwrap(t *testing.T) {
	v, err := Unwrap(Ok(2))
	assert.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = Unwrap(Error[int](errBoom))
	assert.ErrorIs(t, err, errBoom)
}

func TestSequenceArray(t *testing.T) {
	assert.Equal(t, Ok([]int{1, 2}), SequenceArray([]Result[int]{Ok(1), Ok(2)}))
	assert.True(t, IsError(SequenceArray([]Result[int]{Ok(1), Error[int](errBoom)})))
}

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

package validated

import (
	"strings"
	"testing"

	SG "github.com/paths-fp/paths/semigroup"
	T "github.com/paths-fp/paths/tuple"
	"github.com/stretchr/testify/assert"
)

var errs = SG.MakeSemigroup(func(x []string, y []string) []string {
	return append(append([]string{}, x...), y...)
})

type user struct {
	name  string
	email string
	age   int
}

func validateName(name string) Validated[[]string, string] {
	if len(name) < 2 {
		return Invalid[string]([]string{"Name must be at least 2 characters"})
	}
	return Valid[[]string](name)
}

func validateEmail(email string) Validated[[]string, string] {
	if !strings.Contains(email, "@") {
		return Invalid[string]([]string{"Invalid email format"})
	}
	return Valid[[]string](email)
}

func validateAge(age int) Validated[[]string, int] {
	if age < 0 || age > 150 {
		return Invalid[int]([]string{"Age must be between 0 and 150"})
	}
	return Valid[[]string](age)
}

func TestAccumulateAllErrors(t *testing.T) {
	res := ZipWith3Accum(errs, func(name string, email string, age int) user {
		return user{name: name, email: email, age: age}
	})(validateName("A"), validateEmail("not-an-email"), validateAge(-5))

	assert.Equal(t, Invalid[user]([]string{
		"Name must be at least 2 characters",
		"Invalid email format",
		"Age must be between 0 and 150",
	}), res)
}

func TestAccumulateAllValid(t *testing.T) {
	res := ZipWith3Accum(errs, func(name string, email string, age int) user {
		return user{name: name, email: email, age: age}
	})(validateName("Ada"), validateEmail("ada@example.com"), validateAge(36))

	assert.Equal(t, Valid[[]string](user{name: "Ada", email: "ada@example.com", age: 36}), res)
}

func TestInvalidTimesInvalidCombines(t *testing.T) {
	// accumulation never short circuits, both sides contribute
	res := SequenceT2Accum(errs,
		Invalid[int]([]string{"e1"}),
		Invalid[string]([]string{"e2"}),
	)
	assert.Equal(t, Invalid[T.Tuple2[int, string]]([]string{"e1", "e2"}), res)
}

func TestChainShortCircuits(t *testing.T) {
	invoked := false
	res := Chain(func(int) Validated[[]string, int] {
		invoked = true
		return Valid[[]string](1)
	})(Invalid[int]([]string{"e1"}))
	assert.True(t, IsInvalid(res))
	assert.False(t, invoked)
}

func TestAndAlso(t *testing.T) {
	// both valid keeps the value of the receiver
	assert.Equal(t, Valid[[]string](1), AndAlso[[]string, int](errs, Valid[[]string]("ok"))(Valid[[]string](1)))
	// both invalid accumulates
	res := AndAlso[[]string, int](errs, Invalid[string]([]string{"e2"}))(Invalid[int]([]string{"e1"}))
	assert.True(t, IsInvalid(res))
}

func TestTraverseArrayAccum(t *testing.T) {
	res := TraverseArrayAccum(errs, validateAge)([]int{10, -1, 200})
	assert.True(t, IsInvalid(res))

	ok := TraverseArrayAccum(errs, validateAge)([]int{10, 20})
	assert.Equal(t, Valid[[]string]([]int{10, 20}), ok)
}

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

package freeap

import (
	"testing"

	ER "github.com/paths-fp/paths/erasure"
	M "github.com/paths-fp/paths/monoid"
	O "github.com/paths-fp/paths/option"
	"github.com/stretchr/testify/assert"
)

// a tiny form field instruction set
type field struct {
	name string
}

func ask(name string) FreeAp[field, string] {
	return LiftF[string](field{name: name})
}

var countOps = M.MakeMonoid(func(x int, y int) int {
	return x + y
}, 0)

func TestAnalyzeCountsWithoutRunning(t *testing.T) {
	program := MonadZipWith(ask("first"), ask("last"), func(first string, last string) string {
		return first + " " + last
	})

	count := Analyze[string](countOps, func(field) int {
		return 1
	})(program)
	assert.Equal(t, 2, count)
}

func TestAnalyzeCollectsNames(t *testing.T) {
	program := MonadZipWith(ask("first"), ask("last"), func(first string, last string) string {
		return first + last
	})

	names := Analyze[string](M.MakeMonoid(func(x []string, y []string) []string {
		return append(append([]string{}, x...), y...)
	}, nil), func(f field) []string {
		return []string{f.name}
	})(program)
	assert.Equal(t, []string{"first", "last"}, names)
}

// optionApplicative is the erased applicative dictionary of the option effect
var optionApplicative = Applicative[O.Option[any]]{
	Of: O.Some[any],
	Map: func(fa O.Option[any], f func(any) any) O.Option[any] {
		return O.MonadMap(fa, f)
	},
	Ap: func(fab O.Option[any], fa O.Option[any]) O.Option[any] {
		return O.MonadChain(fab, func(f any) O.Option[any] {
			return O.MonadMap(fa, f.(func(any) any))
		})
	},
}

func answersNat(answers map[string]string) func(field) O.Option[any] {
	return func(f field) O.Option[any] {
		if v, ok := answers[f.name]; ok {
			return O.Some[any](v)
		}
		return O.None[any]()
	}
}

func TestFoldMapAllPresent(t *testing.T) {
	program := MonadZipWith(ask("first"), ask("last"), func(first string, last string) string {
		return first + " " + last
	})

	res := FoldMap[string](answersNat(map[string]string{
		"first": "Grace",
		"last":  "Hopper",
	}), optionApplicative)(program)

	assert.Equal(t, O.Some[any]("Grace Hopper"), res)
}

func TestFoldMapMissingAnswer(t *testing.T) {
	program := MonadZipWith(ask("first"), ask("last"), func(first string, last string) string {
		return first + last
	})

	res := FoldMap[string](answersNat(map[string]string{
		"first": "Grace",
	}), optionApplicative)(program)

	assert.Equal(t, O.None[any](), res)
}

func TestFoldMapPure(t *testing.T) {
	res := FoldMap[int](answersNat(nil), optionApplicative)(Of[field](7))
	assert.Equal(t, 7, ER.Unerase[int](O.MonadGetOrElse(res, func() any { return 0 })))
}

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

// package record implements functional operations on go maps
package record

import (
	M "github.com/paths-fp/paths/monoid"
	O "github.com/paths-fp/paths/option"
	S "github.com/paths-fp/paths/semigroup"
)

// Lookup accesses a key in a map
func Lookup[K comparable, V any](k K) func(map[K]V) O.Option[V] {
	return func(m map[K]V) O.Option[V] {
		if v, ok := m[k]; ok {
			return O.Some(v)
		}
		return O.None[V]()
	}
}

// Keys returns the keys of the map in iteration order
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func union[K comparable, V any](s S.Semigroup[V], left map[K]V, right map[K]V) map[K]V {
	merged := make(map[K]V, len(left)+len(right))
	for k, v := range left {
		merged[k] = v
	}
	for k, v := range right {
		if existing, ok := merged[k]; ok {
			merged[k] = s.Concat(existing, v)
		} else {
			merged[k] = v
		}
	}
	return merged
}

// UnionSemigroup merges maps, combining values for duplicate keys with the value semigroup
func UnionSemigroup[K comparable, V any](s S.Semigroup[V]) S.Semigroup[map[K]V] {
	return S.MakeSemigroup(func(x map[K]V, y map[K]V) map[K]V {
		return union(s, x, y)
	})
}

// UnionMonoid merges maps, combining values for duplicate keys with the value semigroup, empty is the empty map
func UnionMonoid[K comparable, V any](s S.Semigroup[V]) M.Monoid[map[K]V] {
	return M.MakeMonoid(UnionSemigroup[K](s).Concat, map[K]V{})
}

// SetUnionMonoid merges sets represented as maps to [struct{}]
func SetUnionMonoid[K comparable]() M.Monoid[map[K]struct{}] {
	return UnionMonoid[K](S.First[struct{}]())
}

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
	"bytes"
	"encoding/json"
	"fmt"
)

var jsonNull = []byte("null")

// Option defines a data structure that logically holds a value or not
type Option[A any] struct {
	isSome bool
	value  A
}

func optString(isSome bool, value any) string {
	if isSome {
		return fmt.Sprintf("Some[%T](%v)", value, value)
	}
	return fmt.Sprintf("None[%T]", value)
}

// String prints some debug info for the object
func (s Option[A]) String() string {
	return optString(s.isSome, s.value)
}

// Format prints some debug info for the object
func (s Option[A]) Format(f fmt.State, c rune) {
	switch c {
	default:
		fmt.Fprint(f, s.String())
	}
}

// MarshalJSON serializes None as the null literal
func (s Option[A]) MarshalJSON() ([]byte, error) {
	if s.isSome {
		return json.Marshal(s.value)
	}
	return jsonNull, nil
}

// UnmarshalJSON deserializes the null literal as None
func (s *Option[A]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		var empty A
		s.isSome = false
		s.value = empty
		return nil
	}
	s.isSome = true
	return json.Unmarshal(data, &s.value)
}

// Some creates an [Option] holding the value
func Some[T any](value T) Option[T] {
	return Option[T]{isSome: true, value: value}
}

// Of is an alias of [Some]
func Of[T any](value T) Option[T] {
	return Some(value)
}

// None creates the empty [Option]
func None[T any]() Option[T] {
	return Option[T]{isSome: false}
}

// IsSome tests if the option holds a value
func IsSome[T any](val Option[T]) bool {
	return val.isSome
}

// IsNone tests if the option is empty
func IsNone[T any](val Option[T]) bool {
	return !val.isSome
}

// MonadFold eliminates an [Option] into a value
func MonadFold[A, B any](ma Option[A], onNone func() B, onSome func(A) B) B {
	if ma.isSome {
		return onSome(ma.value)
	}
	return onNone()
}

// Unwrap converts an [Option] into the idiomatic comma-ok tuple
func Unwrap[A any](ma Option[A]) (A, bool) {
	return ma.value, ma.isSome
}

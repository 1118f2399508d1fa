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

// package result implements the Try effect path, an [ET.Either] with the error
// channel fixed to the go error type. Failures short circuit; conversions to a
// typed error channel always require an explicit mapping.
package result

import (
	"fmt"

	ET "github.com/paths-fp/paths/either"
	F "github.com/paths-fp/paths/function"
	O "github.com/paths-fp/paths/option"
)

// Result holds either a value or the error that prevented its computation
type Result[A any] = ET.Either[error, A]

// Ok wraps a value into a successful [Result]
func Ok[A any](a A) Result[A] {
	return ET.Right[error](a)
}

// Of is an alias of [Ok]
func Of[A any](a A) Result[A] {
	return Ok(a)
}

// Error wraps an error into a failed [Result]
func Error[A any](err error) Result[A] {
	return ET.Left[A](err)
}

// Errorf formats a new failure
func Errorf[A any](format string, args ...any) Result[A] {
	return Error[A](fmt.Errorf(format, args...))
}

// FromGo converts the idiomatic value/error tuple into a [Result]
func FromGo[A any](a A, err error) Result[A] {
	if err != nil {
		return Error[A](err)
	}
	return Ok(a)
}

// TryCatch runs a fallible computation, converting a panic into a failure
func TryCatch[A any](f func() (A, error)) (res Result[A]) {
	defer func() {
		if r := recover(); r != nil {
			res = Errorf[A]("recovered from panic: %v", r)
		}
	}()
	return FromGo(f())
}

// IsOk tests for the success case
func IsOk[A any](ma Result[A]) bool {
	return ET.IsRight(ma)
}

// IsError tests for the failure case
func IsError[A any](ma Result[A]) bool {
	return ET.IsLeft(ma)
}

// Map transforms the success value
func Map[A, B any](f func(A) B) func(Result[A]) Result[B] {
	return ET.Map[error](f)
}

// MapError transforms the error
func MapError[A any](f func(error) error) func(Result[A]) Result[A] {
	return ET.MapLeft[A](f)
}

// Chain composes computations in sequence. The first failure wins.
func Chain[A, B any](f func(A) Result[B]) func(Result[A]) Result[B] {
	return ET.Chain[error](f)
}

// ChainFirst runs a second computation and keeps the first value
func ChainFirst[A, B any](f func(A) Result[B]) func(Result[A]) Result[A] {
	return ET.ChainFirst[error](f)
}

// Ap is the applicative functor of [Result]
func Ap[B, A any](fa Result[A]) func(Result[func(A) B]) Result[B] {
	return ET.Ap[B, error, A](fa)
}

// Fold eliminates a [Result] into a value
func Fold[A, B any](onError func(error) B, onOk func(A) B) func(Result[A]) B {
	return ET.Fold(onError, onOk)
}

// GetOrElse extracts the value or computes a default from the error
func GetOrElse[A any](onError func(error) A) func(Result[A]) A {
	return ET.GetOrElse(onError)
}

// Recover rescues a failure with a pure value
func Recover[A any](onError func(error) A) func(Result[A]) Result[A] {
	return ET.OrElse(F.Flow2(onError, Ok[A]))
}

// RecoverWith rescues a failure with a new computation
func RecoverWith[A any](onError func(error) Result[A]) func(Result[A]) Result[A] {
	return ET.OrElse(onError)
}

// Alt returns the first result if it succeeded, else evaluates the second
func Alt[A any](that func() Result[A]) func(Result[A]) Result[A] {
	return ET.Alt(that)
}

// ToEither converts a [Result] into a typed error channel. The mapping of the
// error is mandatory, there is no implicit conversion.
func ToEither[A, E any](onError func(error) E) func(Result[A]) ET.Either[E, A] {
	return ET.MapLeft[A](onError)
}

// ToOption converts a [Result] into an [O.Option], discarding the error
func ToOption[A any](ma Result[A]) O.Option[A] {
	return ET.ToOption(ma)
}

// FromOption converts an [O.Option] into a [Result], the onNone callback supplies the error
func FromOption[A any](onNone func() error) func(O.Option[A]) Result[A] {
	return ET.FromOption[A](onNone)
}

// Unwrap converts a [Result] into the idiomatic value/error tuple
func Unwrap[A any](ma Result[A]) (A, error) {
	return ET.Unwrap(ma)
}

// TraverseArray maps each element to a [Result] and collects the results. The
// first failure aborts the traversal.
func TraverseArray[A, B any](f func(A) Result[B]) func([]A) Result[[]B] {
	return ET.TraverseArray[error](f)
}

// SequenceArray collects an array of results into a result of an array
func SequenceArray[A any](as []Result[A]) Result[[]A] {
	return ET.SequenceArray(as)
}

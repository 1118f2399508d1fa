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

package io

import (
	"log"

	F "github.com/paths-fp/paths/function"
	L "github.com/paths-fp/paths/logging"
)

// Logger constructs a logger function that can be used with ChainFirst
func Logger[A any](loggers ...*log.Logger) func(string) func(A) IO[F.Void] {
	logf, _ := L.LoggingCallbacks(loggers...)
	return func(prefix string) func(A) IO[F.Void] {
		return func(a A) IO[F.Void] {
			return FromImpure(func() {
				logf("%s: %v", prefix, a)
			})
		}
	}
}

// Logf constructs a logger function that can be used with ChainFirst, the
// prefix contains the format string for the value
func Logf[A any](prefix string) func(A) IO[F.Void] {
	logf, _ := L.LoggingCallbacks()
	return func(a A) IO[F.Void] {
		return FromImpure(func() {
			logf(prefix, a)
		})
	}
}

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
	"log"

	F "github.com/paths-fp/paths/function"
	IO "github.com/paths-fp/paths/io"
	L "github.com/paths-fp/paths/logging"
)

// Peek observes the success value without affecting the computation. The
// observer runs only on success, never on failure; a panic inside the observer
// is contained and silently dropped.
func Peek[A any](observer func(A)) func(IOResult[A]) IOResult[A] {
	return ChainFirst(func(a A) IOResult[F.Void] {
		return F.Pipe1(
			TryCatch(func() (F.Void, error) {
				observer(a)
				return F.VOID, nil
			}),
			HandleError[F.Void](F.Constant1[error](F.VOID)),
		)
	})
}

// PeekError observes the error of a failed computation without affecting it
func PeekError[A any](observer func(error)) func(IOResult[A]) IOResult[A] {
	return func(fa IOResult[A]) IOResult[A] {
		return MonadHandleErrorWith(fa, func(err error) IOResult[A] {
			observer(err)
			return Left[A](err)
		})
	}
}

// Logger constructs a logger function that can be used with [ChainFirst]
func Logger[A any](loggers ...*log.Logger) func(string) func(A) IOResult[F.Void] {
	logf, _ := L.LoggingCallbacks(loggers...)
	return func(prefix string) func(A) IOResult[F.Void] {
		return func(a A) IOResult[F.Void] {
			return FromIO(IO.FromImpure(func() {
				logf("%s: %v", prefix, a)
			}))
		}
	}
}

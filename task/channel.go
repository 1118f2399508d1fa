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

package task

import (
	"context"

	R "github.com/paths-fp/paths/result"
)

// FromChannel adapts a host future, a channel expected to deliver exactly one
// result, into a [Task]. Waiting on the channel is a suspension point.
func FromChannel[A any](c <-chan R.Result[A]) Task[A] {
	return func(ctx context.Context) R.Result[A] {
		select {
		case <-ctx.Done():
			return R.Error[A](fromContextErr(ctx))
		case res := <-c:
			return res
		}
	}
}

// ToChannel starts the task on its own goroutine and exposes the outcome as a
// single element channel, the host flavored future
func ToChannel[A any](fa Task[A]) func(context.Context) <-chan R.Result[A] {
	return func(ctx context.Context) <-chan R.Result[A] {
		c := make(chan R.Result[A], 1)
		go func() {
			c <- fa(ctx)
			close(c)
		}()
		return c
	}
}

// Join starts the task and blocks until it resolves, returning the idiomatic
// value/error tuple
func Join[A any](ctx context.Context) func(Task[A]) (A, error) {
	return func(fa Task[A]) (A, error) {
		return R.Unwrap(fa(ctx))
	}
}

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
	"sync"

	R "github.com/paths-fp/paths/result"
	T "github.com/paths-fp/paths/tuple"
)

// ParSequenceArray runs all tasks on their own goroutines and collects the
// results in argument order. The first failure cancels the peers and becomes
// the outcome.
func ParSequenceArray[A any](tasks []Task[A]) Task[[]A] {
	return func(ctx context.Context) R.Result[[]A] {
		if ctx.Err() != nil {
			return R.Error[[]A](fromContextErr(ctx))
		}

		cancelCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		results := make([]R.Result[A], len(tasks))
		var wg sync.WaitGroup
		wg.Add(len(tasks))
		for i, t := range tasks {
			go func(idx int, t Task[A]) {
				defer wg.Done()
				res := t(cancelCtx)
				if R.IsError(res) {
					cancel()
				}
				results[idx] = res
			}(i, t)
		}
		wg.Wait()

		collected := make([]A, len(tasks))
		for i, res := range results {
			a, err := R.Unwrap(res)
			if err != nil {
				return R.Error[[]A](err)
			}
			collected[i] = a
		}
		return R.Ok(collected)
	}
}

// ParTraverseArray maps every element onto a task and runs them in parallel
func ParTraverseArray[A, B any](f func(A) Task[B]) func([]A) Task[[]B] {
	return func(as []A) Task[[]B] {
		tasks := make([]Task[B], len(as))
		for i, a := range as {
			tasks[i] = f(a)
		}
		return ParSequenceArray(tasks)
	}
}

// ParSequenceT2 runs two tasks in parallel and pairs the results in argument
// order. The first failure cancels the peer.
func ParSequenceT2[T1, T2 any](t1 Task[T1], t2 Task[T2]) Task[T.Tuple2[T1, T2]] {
	return MonadAp(MonadMap(t1, func(v1 T1) func(T2) T.Tuple2[T1, T2] {
		return func(v2 T2) T.Tuple2[T1, T2] {
			return T.MakeTuple2(v1, v2)
		}
	}), t2)
}

// ParSequenceT3 runs three tasks in parallel and tuples the results in argument order
func ParSequenceT3[T1, T2, T3 any](t1 Task[T1], t2 Task[T2], t3 Task[T3]) Task[T.Tuple3[T1, T2, T3]] {
	return MonadAp(MonadMap(ParSequenceT2(t1, t2), func(t12 T.Tuple2[T1, T2]) func(T3) T.Tuple3[T1, T2, T3] {
		return func(v3 T3) T.Tuple3[T1, T2, T3] {
			return T.MakeTuple3(t12.F1, t12.F2, v3)
		}
	}), t3)
}

// ParSequenceT4 runs four tasks in parallel and tuples the results in argument order
func ParSequenceT4[T1, T2, T3, T4 any](t1 Task[T1], t2 Task[T2], t3 Task[T3], t4 Task[T4]) Task[T.Tuple4[T1, T2, T3, T4]] {
	return MonadAp(MonadMap(ParSequenceT3(t1, t2, t3), func(t123 T.Tuple3[T1, T2, T3]) func(T4) T.Tuple4[T1, T2, T3, T4] {
		return func(v4 T4) T.Tuple4[T1, T2, T3, T4] {
			return T.MakeTuple4(t123.F1, t123.F2, t123.F3, v4)
		}
	}), t4)
}

// ParZipWith combines two tasks running in parallel through a function
func ParZipWith[T1, T2, C any](t2 Task[T2], f func(T1, T2) C) func(Task[T1]) Task[C] {
	return func(t1 Task[T1]) Task[C] {
		return MonadMap(ParSequenceT2(t1, t2), T.Tupled2(f))
	}
}

// Race runs all tasks in parallel and emits the first success; the losers are
// canceled. If every task fails the outcome is the last error observed.
func Race[A any](tasks []Task[A]) Task[A] {
	return func(ctx context.Context) R.Result[A] {
		if len(tasks) == 0 {
			return R.Error[A](ErrCanceled)
		}
		if ctx.Err() != nil {
			return R.Error[A](fromContextErr(ctx))
		}

		cancelCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		c := make(chan R.Result[A], len(tasks))
		for _, t := range tasks {
			go func(t Task[A]) {
				c <- t(cancelCtx)
			}(t)
		}

		var last R.Result[A]
		for range tasks {
			last = <-c
			if R.IsOk(last) {
				cancel()
				return last
			}
		}
		return last
	}
}

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

package stream

import (
	"context"
	"sync"

	O "github.com/paths-fp/paths/option"
	R "github.com/paths-fp/paths/result"
	TA "github.com/paths-fp/paths/task"
	T "github.com/paths-fp/paths/tuple"
)

// ParEvalMap evaluates the effect for up to maxConcurrent elements at a time
// and emits the outputs in input order. The whole stream is pulled and
// processed as one task; the first failure cancels the workers.
func ParEvalMap[U, V any](maxConcurrent int, f func(U) TA.Task[V]) func(Stream[U]) TA.Task[[]V] {
	return func(ma Stream[U]) TA.Task[[]V] {
		return func(ctx context.Context) R.Result[[]V] {
			inputs := ToArray(ma)
			if maxConcurrent < 1 {
				maxConcurrent = 1
			}

			cancelCtx, cancel := context.WithCancel(ctx)
			defer cancel()

			sem := make(chan struct{}, maxConcurrent)
			results := make([]R.Result[V], len(inputs))
			var wg sync.WaitGroup
			wg.Add(len(inputs))
			for i, u := range inputs {
				sem <- struct{}{}
				go func(idx int, u U) {
					defer wg.Done()
					defer func() { <-sem }()
					res := f(u)(cancelCtx)
					if R.IsError(res) {
						cancel()
					}
					results[idx] = res
				}(i, u)
			}
			wg.Wait()

			collected := make([]V, len(inputs))
			for i, res := range results {
				v, err := R.Unwrap(res)
				if err != nil {
					return R.Error[[]V](err)
				}
				collected[i] = v
			}
			return R.Ok(collected)
		}
	}
}

// ParEvalMapUnordered evaluates the effect for up to maxConcurrent elements at
// a time and emits the outputs in completion order
func ParEvalMapUnordered[U, V any](maxConcurrent int, f func(U) TA.Task[V]) func(Stream[U]) TA.Task[[]V] {
	return func(ma Stream[U]) TA.Task[[]V] {
		return func(ctx context.Context) R.Result[[]V] {
			inputs := ToArray(ma)
			if maxConcurrent < 1 {
				maxConcurrent = 1
			}

			cancelCtx, cancel := context.WithCancel(ctx)
			defer cancel()

			sem := make(chan struct{}, maxConcurrent)
			completions := make(chan R.Result[V], len(inputs))
			for _, u := range inputs {
				sem <- struct{}{}
				go func(u U) {
					defer func() { <-sem }()
					res := f(u)(cancelCtx)
					if R.IsError(res) {
						cancel()
					}
					completions <- res
				}(u)
			}

			collected := make([]V, 0, len(inputs))
			received := 0
			for received < len(inputs) {
				res := <-completions
				received++
				v, err := R.Unwrap(res)
				if err != nil {
					// drain the remaining workers before reporting
					for received < len(inputs) {
						<-completions
						received++
					}
					return R.Error[[]V](err)
				}
				collected = append(collected, v)
			}
			return R.Ok(collected)
		}
	}
}

// ParEvalFlatMap evaluates a stream returning effect per element and
// concatenates the outputs in input order
func ParEvalFlatMap[U, V any](maxConcurrent int, f func(U) TA.Task[[]V]) func(Stream[U]) TA.Task[[]V] {
	return func(ma Stream[U]) TA.Task[[]V] {
		return TA.MonadMap(ParEvalMap(maxConcurrent, f)(ma), func(groups [][]V) []V {
			var flat []V
			for _, group := range groups {
				flat = append(flat, group...)
			}
			return flat
		})
	}
}

// Merge interleaves the streams non-deterministically, preserving the order of
// elements within each source. Every source is pulled on its own goroutine.
func Merge[U any](streams []Stream[U]) TA.Task[[]U] {
	return func(ctx context.Context) R.Result[[]U] {
		out := make(chan U)
		var wg sync.WaitGroup
		wg.Add(len(streams))
		for _, ma := range streams {
			go func(ma Stream[U]) {
				defer wg.Done()
				next := ma()
				for {
					t, ok := O.Unwrap(next)
					if !ok {
						return
					}
					select {
					case <-ctx.Done():
						return
					case out <- t.F2:
					}
					next = t.F1()
				}
			}(ma)
		}
		go func() {
			wg.Wait()
			close(out)
		}()

		var merged []U
		for u := range out {
			merged = append(merged, u)
		}
		if ctx.Err() != nil {
			return R.Error[[]U](context.Cause(ctx))
		}
		return R.Ok(merged)
	}
}

// Chunk groups consecutive elements into slices of at most n elements, deferred
func Chunk[U any](n int) func(Stream[U]) Stream[[]U] {
	if n < 1 {
		n = 1
	}
	var chunk func(ma Stream[U]) Stream[[]U]
	chunk = func(ma Stream[U]) Stream[[]U] {
		return func() O.Option[T.Tuple2[Stream[[]U], []U]] {
			var group []U
			next := ma()
			for len(group) < n {
				t, ok := O.Unwrap(next)
				if !ok {
					break
				}
				group = append(group, t.F2)
				next = t.F1()
			}
			if len(group) == 0 {
				return O.None[T.Tuple2[Stream[[]U], []U]]()
			}
			rest := func() O.Option[T.Tuple2[Stream[U], U]] {
				return next
			}
			return O.Some(T.MakeTuple2(chunk(rest), group))
		}
	}
	return chunk
}

// ChunkWhile groups consecutive elements for as long as the predicate relates
// the previous and the next element, deferred
func ChunkWhile[U any](pred func(U, U) bool) func(Stream[U]) Stream[[]U] {
	var chunk func(ma Stream[U]) Stream[[]U]
	chunk = func(ma Stream[U]) Stream[[]U] {
		return func() O.Option[T.Tuple2[Stream[[]U], []U]] {
			t, ok := O.Unwrap(ma())
			if !ok {
				return O.None[T.Tuple2[Stream[[]U], []U]]()
			}
			group := []U{t.F2}
			next := t.F1()
			for {
				tn, more := O.Unwrap(next)
				if !more || !pred(group[len(group)-1], tn.F2) {
					break
				}
				group = append(group, tn.F2)
				next = tn.F1()
			}
			rest := func() O.Option[T.Tuple2[Stream[U], U]] {
				return next
			}
			return O.Some(T.MakeTuple2(chunk(rest), group))
		}
	}
	return chunk
}

// MapChunked processes the stream in chunks of n elements through a slice
// transformation and emits the transformed elements, deferred
func MapChunked[U, V any](n int, f func([]U) []V) func(Stream[U]) Stream[V] {
	return func(ma Stream[U]) Stream[V] {
		return MonadChain(Chunk[U](n)(ma), func(group []U) Stream[V] {
			return FromArray(f(group))
		})
	}
}

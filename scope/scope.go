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

// package scope implements structured concurrency for tasks. A [Scope] owns
// the tasks forked into it; joining the scope waits for the outcome dictated
// by the joiner chosen at construction and guarantees that no fork outlives
// the join. Cancellation flows through the scope context and is cooperative.
package scope

import (
	"context"
	"sync"
	"time"

	O "github.com/paths-fp/paths/option"
	R "github.com/paths-fp/paths/result"
	SG "github.com/paths-fp/paths/semigroup"
	TA "github.com/paths-fp/paths/task"
	VD "github.com/paths-fp/paths/validated"
)

// Joiner selects how a [Scope] combines the outcomes of its forks
type Joiner int

const (
	// AllSucceed waits for every fork; the first failure cancels the peers
	// and fails the scope, otherwise the results are collected in fork order
	AllSucceed Joiner = iota
	// AnySucceed returns the first success and cancels the rest; if every
	// fork fails the scope fails with the last error
	AnySucceed
	// FirstComplete returns the first fork to finish, success or failure
	FirstComplete
	// Accumulating runs every fork to completion and collects successes and
	// failures separately, see [Scope.JoinValidated]
	Accumulating
)

// Scope hosts forked tasks until they are joined
type Scope[A any] struct {
	joiner  Joiner
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	results []R.Result[A]
	signal  chan int
	joined  bool
}

// Option configures a [Scope] at construction
type Option func(ctx context.Context) (context.Context, context.CancelFunc)

// WithTimeout bounds the lifetime of the scope. On expiry the remaining forks
// are canceled and resolve with [TA.ErrTimeout].
func WithTimeout(timeout time.Duration) Option {
	return func(ctx context.Context) (context.Context, context.CancelFunc) {
		return context.WithTimeoutCause(ctx, timeout, context.DeadlineExceeded)
	}
}

// New creates a [Scope] with the given joiner
func New[A any](ctx context.Context, joiner Joiner, options ...Option) *Scope[A] {
	scopeCtx, cancel := context.WithCancel(ctx)
	for _, opt := range options {
		next, nextCancel := opt(scopeCtx)
		prevCancel := cancel
		scopeCtx = next
		cancel = func() {
			nextCancel()
			prevCancel()
		}
	}
	return &Scope[A]{
		joiner: joiner,
		ctx:    scopeCtx,
		cancel: cancel,
		signal: make(chan int),
	}
}

// Fork starts a task on its own goroutine, owned by the scope. Forking after
// [Scope.Join] panics, the scope is closed at that point.
func (s *Scope[A]) Fork(t TA.Task[A]) {
	s.mu.Lock()
	if s.joined {
		s.mu.Unlock()
		panic("scope: fork after join")
	}
	idx := len(s.results)
	var pending A
	s.results = append(s.results, R.Ok(pending))
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		res := t(s.ctx)
		s.mu.Lock()
		s.results[idx] = res
		s.mu.Unlock()
		s.signal <- idx
	}()
}

// join drives the scope to completion: it receives every completion signal,
// cancels the survivors as soon as the joiner has decided, and only returns
// once all forks have finished. The second return value is the index of the
// deciding fork, -1 if the joiner never decided; the third is the index of the
// last fork to complete.
func (s *Scope[A]) join() ([]R.Result[A], int, int) {
	s.mu.Lock()
	if s.joined {
		panic("scope: joined twice")
	}
	s.joined = true
	count := len(s.results)
	s.mu.Unlock()

	decider := -1
	last := -1
	for i := 0; i < count; i++ {
		idx := <-s.signal
		last = idx
		if decider >= 0 {
			continue
		}
		s.mu.Lock()
		res := s.results[idx]
		s.mu.Unlock()
		switch s.joiner {
		case AllSucceed:
			if R.IsError(res) {
				decider = idx
			}
		case AnySucceed:
			if R.IsOk(res) {
				decider = idx
			}
		case FirstComplete:
			decider = idx
		}
		if decider >= 0 {
			s.cancel()
		}
	}
	s.cancel()
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results, decider, last
}

// Join waits for the scope's outcome as directed by the joiner. For
// [AllSucceed] and [Accumulating] the success carries the results in fork
// order; for [AnySucceed] and [FirstComplete] it carries the single deciding
// result. An [Accumulating] scope with failures fails with the first error,
// use [Scope.JoinValidated] to observe all of them.
func (s *Scope[A]) Join() R.Result[[]A] {
	results, decider, last := s.join()
	single := func(res R.Result[A]) R.Result[[]A] {
		return R.Map[A](func(a A) []A {
			return []A{a}
		})(res)
	}
	switch s.joiner {
	case AnySucceed, FirstComplete:
		if decider >= 0 {
			return single(results[decider])
		}
		if last >= 0 {
			return single(results[last])
		}
		return R.Ok([]A{})
	default:
		if decider >= 0 {
			_, err := R.Unwrap(results[decider])
			return R.Error[[]A](err)
		}
		return R.SequenceArray(results)
	}
}

// JoinValidated runs every fork to completion and collects the failures and
// the successes, combining the error lists through the accumulating semigroup
func (s *Scope[A]) JoinValidated() VD.Validated[[]error, []A] {
	results, _, _ := s.join()
	sg := SG.MakeSemigroup(func(x []error, y []error) []error {
		return append(append([]error{}, x...), y...)
	})
	return VD.MonadTraverseArrayAccum(sg, results, func(res R.Result[A]) VD.Validated[[]error, A] {
		return R.Fold(func(err error) VD.Validated[[]error, A] {
			return VD.Invalid[A]([]error{err})
		}, VD.Valid[[]error, A])(res)
	})
}

// JoinSafe never panics, the outcome is projected into a [R.Result]
func (s *Scope[A]) JoinSafe() (res R.Result[[]A]) {
	defer func() {
		if r := recover(); r != nil {
			res = R.Errorf[[]A]("%v", r)
		}
	}()
	return s.Join()
}

// JoinEither is an alias of [Scope.JoinSafe], the result is the underlying either
func (s *Scope[A]) JoinEither() R.Result[[]A] {
	return s.JoinSafe()
}

// JoinMaybe projects the outcome into an [O.Option], discarding the error
func (s *Scope[A]) JoinMaybe() O.Option[[]A] {
	return R.ToOption(s.JoinSafe())
}

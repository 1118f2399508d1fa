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

// package task implements the asynchronous effect path. A [Task] describes a
// computation over a [context.Context]; the parallel combinators fork
// goroutines and cancel the peers of a failed branch through the context.
// Cancellation is cooperative: a task is expected to observe its context at
// suspension points. No scheduler state is owned by the library, the lifecycle
// of the context belongs to the embedding application.
package task

import (
	"context"
	"errors"
	"time"

	ET "github.com/paths-fp/paths/either"
	F "github.com/paths-fp/paths/function"
	IO "github.com/paths-fp/paths/io"
	IOR "github.com/paths-fp/paths/ioresult"
	R "github.com/paths-fp/paths/result"
)

// Task represents an asynchronous computation that yields a value or fails
type Task[A any] func(context.Context) R.Result[A]

// ErrTimeout is the failure of a task whose deadline expired
var ErrTimeout = errors.New("task: timeout")

// ErrCanceled is the failure of a task whose context was canceled
var ErrCanceled = errors.New("task: canceled")

// fromContextErr maps a context error onto the distinguished task errors
func fromContextErr(ctx context.Context) error {
	if errors.Is(context.Cause(ctx), context.DeadlineExceeded) {
		return ErrTimeout
	}
	return ErrCanceled
}

// Of wraps a pure value into a successful task
func Of[A any](a A) Task[A] {
	return F.Constant1[context.Context](R.Ok(a))
}

// Fail wraps an error into a failed task
func Fail[A any](err error) Task[A] {
	return F.Constant1[context.Context](R.Error[A](err))
}

// FromResult lifts an already computed result
func FromResult[A any](res R.Result[A]) Task[A] {
	return F.Constant1[context.Context](res)
}

// FromIOResult lifts a synchronous fallible computation
func FromIOResult[A any](ma IOR.IOResult[A]) Task[A] {
	return func(ctx context.Context) R.Result[A] {
		if ctx.Err() != nil {
			return R.Error[A](fromContextErr(ctx))
		}
		return ma()
	}
}

// FromIO lifts a synchronous infallible computation
func FromIO[A any](ma IO.IO[A]) Task[A] {
	return FromIOResult(IOR.FromIO(ma))
}

// TryCatch wraps a context aware thunk, converting a panic into a failure
func TryCatch[A any](f func(context.Context) (A, error)) Task[A] {
	return func(ctx context.Context) R.Result[A] {
		return R.TryCatch(func() (A, error) {
			return f(ctx)
		})
	}
}

// MonadMap transforms the success value
func MonadMap[A, B any](fa Task[A], f func(A) B) Task[B] {
	return func(ctx context.Context) R.Result[B] {
		return R.Map[A, B](f)(fa(ctx))
	}
}

// Map is the curried version of [MonadMap]
func Map[A, B any](f func(A) B) func(Task[A]) Task[B] {
	return F.Bind2nd(MonadMap[A, B], f)
}

// MonadMapError transforms the error of a failed task
func MonadMapError[A any](fa Task[A], f func(error) error) Task[A] {
	return func(ctx context.Context) R.Result[A] {
		return R.MapError[A](f)(fa(ctx))
	}
}

// MapError is the curried version of [MonadMapError]
func MapError[A any](f func(error) error) func(Task[A]) Task[A] {
	return F.Bind2nd(MonadMapError[A], f)
}

// MonadChain composes tasks in sequence. A failure short circuits, a canceled
// context fails the chain before the continuation starts.
func MonadChain[A, B any](fa Task[A], f func(A) Task[B]) Task[B] {
	return func(ctx context.Context) R.Result[B] {
		return ET.MonadFold(fa(ctx), R.Error[B], func(a A) R.Result[B] {
			if ctx.Err() != nil {
				return R.Error[B](fromContextErr(ctx))
			}
			return f(a)(ctx)
		})
	}
}

// Chain is the curried version of [MonadChain]
func Chain[A, B any](f func(A) Task[B]) func(Task[A]) Task[B] {
	return F.Bind2nd(MonadChain[A, B], f)
}

// MonadChainFirst runs a second task for its effect and keeps the first result
func MonadChainFirst[A, B any](fa Task[A], f func(A) Task[B]) Task[A] {
	return MonadChain(fa, func(a A) Task[A] {
		return MonadMap(f(a), F.Constant1[B](a))
	})
}

// ChainFirst is the curried version of [MonadChainFirst]
func ChainFirst[A, B any](f func(A) Task[B]) func(Task[A]) Task[A] {
	return F.Bind2nd(MonadChainFirst[A, B], f)
}

// MonadChainTo composes tasks in sequence, ignoring the first result
func MonadChainTo[A, B any](fa Task[A], fb Task[B]) Task[B] {
	return MonadChain(fa, F.Constant1[A](fb))
}

// ChainTo is the curried version of [MonadChainTo]
func ChainTo[A, B any](fb Task[B]) func(Task[A]) Task[B] {
	return F.Bind2nd(MonadChainTo[A, B], fb)
}

// HandleErrorWith rescues a failed task with a new computation
func HandleErrorWith[A any](onError func(error) Task[A]) func(Task[A]) Task[A] {
	return func(fa Task[A]) Task[A] {
		return func(ctx context.Context) R.Result[A] {
			return ET.MonadFold(fa(ctx), func(err error) R.Result[A] {
				return onError(err)(ctx)
			}, R.Ok[A])
		}
	}
}

// HandleError rescues a failed task with a pure value
func HandleError[A any](onError func(error) A) func(Task[A]) Task[A] {
	return HandleErrorWith(F.Flow2(onError, Of[A]))
}

// MonadAp runs the function and the argument on separate goroutines, the first
// failure cancels the peer
func MonadAp[B, A any](fab Task[func(A) B], fa Task[A]) Task[B] {
	return func(ctx context.Context) R.Result[B] {
		if ctx.Err() != nil {
			return R.Error[B](fromContextErr(ctx))
		}

		cancelCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		c := make(chan R.Result[A], 1)
		go func() {
			res := fa(cancelCtx)
			if R.IsError(res) {
				cancel()
			}
			c <- res
		}()

		resAB := fab(cancelCtx)
		if R.IsError(resAB) {
			cancel()
		}
		resA := <-c

		return ET.MonadFold(resAB, func(err error) R.Result[B] {
			return R.Error[B](err)
		}, func(ab func(A) B) R.Result[B] {
			return R.Map[A, B](ab)(resA)
		})
	}
}

// Ap is the curried version of [MonadAp]
func Ap[B, A any](fa Task[A]) func(Task[func(A) B]) Task[B] {
	return F.Bind2nd(MonadAp[B, A], fa)
}

// Sleep succeeds with Void after the duration, or fails early when the context
// is canceled. Sleeping is a suspension point.
func Sleep(delay time.Duration) Task[F.Void] {
	return func(ctx context.Context) R.Result[F.Void] {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return R.Error[F.Void](fromContextErr(ctx))
		case <-timer.C:
			return R.Ok(F.VOID)
		}
	}
}

// Delay postpones the start of a task
func Delay[A any](delay time.Duration) func(Task[A]) Task[A] {
	return func(fa Task[A]) Task[A] {
		return MonadChainTo(Sleep(delay), fa)
	}
}

// WithTimeout fails the task with [ErrTimeout] if it does not resolve within
// the duration. The underlying computation is canceled through its context.
func WithTimeout[A any](timeout time.Duration) func(Task[A]) Task[A] {
	return func(fa Task[A]) Task[A] {
		return func(ctx context.Context) R.Result[A] {
			timeoutCtx, cancel := context.WithTimeoutCause(ctx, timeout, context.DeadlineExceeded)
			defer cancel()

			c := make(chan R.Result[A], 1)
			go func() {
				c <- fa(timeoutCtx)
			}()

			select {
			case res := <-c:
				return res
			case <-timeoutCtx.Done():
				return R.Error[A](fromContextErr(timeoutCtx))
			}
		}
	}
}

// Run executes the task on the calling goroutine
func Run[A any](ctx context.Context) func(Task[A]) R.Result[A] {
	return func(fa Task[A]) R.Result[A] {
		return fa(ctx)
	}
}

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

// package trampoline implements stack safe recursion as an effect path. A
// [Trampoline] either landed on a final value, defers the next step, or binds
// a continuation onto a sub computation. [Run] drives the steps in a loop with
// an explicit continuation stack on the heap, so the goroutine stack stays
// flat no matter how deep the recursion or how the binds nest.
package trampoline

import (
	ER "github.com/paths-fp/paths/erasure"
	F "github.com/paths-fp/paths/function"
)

const (
	kindDone = iota
	kindMore
	kindBind
)

// node is the erased spine of the computation. Values inside are erased, the
// typed surface restores them at the edges.
type node struct {
	kind  int
	value any
	thunk func() *node
	sub   *node
	cont  func(any) *node
}

// Trampoline describes one step of a recursive computation yielding an A
type Trampoline[A any] struct {
	n *node
}

// Done lands the computation on a final value
func Done[A any](a A) Trampoline[A] {
	return Trampoline[A]{n: &node{kind: kindDone, value: a}}
}

// Of is an alias of [Done]
func Of[A any](a A) Trampoline[A] {
	return Done(a)
}

// More defers the next step of the computation
func More[A any](next func() Trampoline[A]) Trampoline[A] {
	return Trampoline[A]{n: &node{kind: kindMore, thunk: func() *node {
		return next().n
	}}}
}

// IsDone tests if the computation landed
func IsDone[A any](ma Trampoline[A]) bool {
	return ma.n.kind == kindDone
}

// MonadChain sequences a continuation after the computation. The continuation
// is pushed onto the interpreter's heap stack, never onto the goroutine stack.
func MonadChain[A, B any](fa Trampoline[A], f func(A) Trampoline[B]) Trampoline[B] {
	return Trampoline[B]{n: &node{kind: kindBind, sub: fa.n, cont: func(x any) *node {
		return f(ER.Unerase[A](x)).n
	}}}
}

// Chain is the curried version of [MonadChain]
func Chain[A, B any](f func(A) Trampoline[B]) func(Trampoline[A]) Trampoline[B] {
	return F.Bind2nd(MonadChain[A, B], f)
}

// MonadMap transforms the final value without deepening the stack
func MonadMap[A, B any](fa Trampoline[A], f func(A) B) Trampoline[B] {
	return MonadChain(fa, F.Flow2(f, Done[B]))
}

// Map is the curried version of [MonadMap]
func Map[A, B any](f func(A) B) func(Trampoline[A]) Trampoline[B] {
	return F.Bind2nd(MonadMap[A, B], f)
}

// MonadAp applies a suspended function to a suspended value
func MonadAp[B, A any](fab Trampoline[func(A) B], fa Trampoline[A]) Trampoline[B] {
	return MonadChain(fab, func(ab func(A) B) Trampoline[B] {
		return MonadMap(fa, ab)
	})
}

// Ap is the curried version of [MonadAp]
func Ap[B, A any](fa Trampoline[A]) func(Trampoline[func(A) B]) Trampoline[B] {
	return F.Bind2nd(MonadAp[B, A], fa)
}

// Flatten removes one level of nesting
func Flatten[A any](mma Trampoline[Trampoline[A]]) Trampoline[A] {
	return MonadChain(mma, F.Identity[Trampoline[A]])
}

// Run drives the computation until it lands. Every iteration handles exactly
// one node; pending continuations live in a slice on the heap, so host stack
// usage is constant regardless of depth or bind nesting.
func Run[A any](ma Trampoline[A]) A {
	current := ma.n
	var conts []func(any) *node
	for {
		switch current.kind {
		case kindDone:
			if len(conts) == 0 {
				return ER.Unerase[A](current.value)
			}
			last := len(conts) - 1
			cont := conts[last]
			conts = conts[:last]
			current = cont(current.value)
		case kindMore:
			current = current.thunk()
		case kindBind:
			conts = append(conts, current.cont)
			current = current.sub
		}
	}
}

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

// package free implements programs as data over an instruction set F. A [Free]
// value is a pure result, a single instruction, or a bind node; continuations
// are reified on the heap and the interpreters drive them with an explicit
// stack, so the goroutine stack stays flat no matter how the binds nest.
//
// Since go cannot abstract over type constructors, the value flowing out of an
// instruction is erased inside the tree and restored with [erasure.Unerase] at
// the typed edges; interpreters are passed explicitly as values per the
// dictionary-passing convention of the library.
package free

import (
	ER "github.com/paths-fp/paths/erasure"
	F "github.com/paths-fp/paths/function"
)

// Monad is the erased capability dictionary of the target effect of [FoldMap].
// HKT stands for the instantiation M<any> of the target constructor.
type Monad[HKT any] struct {
	Of    func(any) HKT
	Chain func(HKT, func(any) HKT) HKT
}

const (
	kindPure = iota
	kindSuspend
	kindBind
)

// node is the erased spine of the program
type node[I any] struct {
	kind  int
	value any
	instr I
	sub   *node[I]
	cont  func(any) *node[I]
}

// Free describes a program over the instruction set F yielding an A. The zero
// value is not meaningful, use the constructors.
type Free[I, A any] struct {
	n *node[I]
}

// Of lifts a pure value into a program
func Of[I, A any](a A) Free[I, A] {
	return Free[I, A]{n: &node[I]{kind: kindPure, value: a}}
}

// LiftF lifts a single instruction into a program. The interpreter must
// produce a value of type A for this instruction.
func LiftF[A, I any](instr I) Free[I, A] {
	return Free[I, A]{n: &node[I]{kind: kindSuspend, instr: instr}}
}

// IsPure tests if the program is a pure value
func IsPure[I, A any](fa Free[I, A]) bool {
	return fa.n.kind == kindPure
}

// MonadChain sequences a continuation after the program. The continuation is
// stored as a bind node, never evaluated during construction.
func MonadChain[I, A, B any](fa Free[I, A], f func(A) Free[I, B]) Free[I, B] {
	return Free[I, B]{n: &node[I]{kind: kindBind, sub: fa.n, cont: func(x any) *node[I] {
		return f(ER.Unerase[A](x)).n
	}}}
}

// Chain is the curried version of [MonadChain]
func Chain[I, A, B any](f func(A) Free[I, B]) func(Free[I, A]) Free[I, B] {
	return F.Bind2nd(MonadChain[I, A, B], f)
}

// MonadMap transforms the result of the program
func MonadMap[I, A, B any](fa Free[I, A], f func(A) B) Free[I, B] {
	return MonadChain(fa, F.Flow2(f, Of[I, B]))
}

// Map is the curried version of [MonadMap]
func Map[I, A, B any](f func(A) B) func(Free[I, A]) Free[I, B] {
	return F.Bind2nd(MonadMap[I, A, B], f)
}

// Flatten removes one level of nesting
func Flatten[I, A any](mma Free[I, Free[I, A]]) Free[I, A] {
	return MonadChain(mma, F.Identity[Free[I, A]])
}

// Run interprets the program iteratively with a pure handler. Every iteration
// handles exactly one node; pending continuations live in a slice on the
// heap, so host stack usage is constant for programs of any depth.
func Run[I, A any](interp func(I) any) func(Free[I, A]) A {
	return func(fa Free[I, A]) A {
		current := fa.n
		var conts []func(any) *node[I]

		resume := func(value any) (A, bool) {
			if len(conts) == 0 {
				return ER.Unerase[A](value), true
			}
			last := len(conts) - 1
			cont := conts[last]
			conts = conts[:last]
			current = cont(value)
			var empty A
			return empty, false
		}

		for {
			switch current.kind {
			case kindPure:
				if res, done := resume(current.value); done {
					return res
				}
			case kindSuspend:
				if res, done := resume(interp(current.instr)); done {
					return res
				}
			case kindBind:
				conts = append(conts, current.cont)
				current = current.sub
			}
		}
	}
}

// FoldMap interprets the program into a target effect through a natural
// transformation of the instructions and the target's [Monad] dictionary. The
// bind spine is walked iteratively; host stack usage during execution follows
// the target's Chain, so unbounded programs should target an effect with a
// deferred Chain (io, task, trampoline, lazy) or use [Run].
func FoldMap[A, I, HKT any](nat func(I) HKT, m Monad[HKT]) func(Free[I, A]) HKT {
	var fold func(*node[I]) HKT
	fold = func(n *node[I]) HKT {
		var conts []func(any) *node[I]
		for n.kind == kindBind {
			conts = append(conts, n.cont)
			n = n.sub
		}

		var base HKT
		if n.kind == kindPure {
			base = m.Of(n.value)
		} else {
			base = nat(n.instr)
		}

		for i := len(conts) - 1; i >= 0; i-- {
			cont := conts[i]
			base = m.Chain(base, func(x any) HKT {
				return fold(cont(x))
			})
		}
		return base
	}
	return func(fa Free[I, A]) HKT {
		return fold(fa.n)
	}
}

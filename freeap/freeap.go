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

// package freeap implements applicative programs as data over an instruction
// set F. Unlike the monadic [github.com/paths-fp/paths/free] encoding, the
// structure never depends on runtime values: every instruction is visible
// before execution, which is what makes [Analyze] possible.
package freeap

import (
	ER "github.com/paths-fp/paths/erasure"
	F "github.com/paths-fp/paths/function"
	M "github.com/paths-fp/paths/monoid"
)

// Applicative is the erased capability dictionary of the target effect of
// [FoldMap]. HKT stands for the instantiation G<any> of the target
// constructor; Ap applies an erased function inside the effect.
type Applicative[HKT any] struct {
	Of  func(any) HKT
	Map func(HKT, func(any) any) HKT
	Ap  func(HKT, HKT) HKT
}

// node is the erased program tree: either a pure value or the application of a
// function program to the result of one instruction
type node[I any] struct {
	pure  bool
	value any
	fn    *node[I]
	instr I
}

// FreeAp describes an applicative program over the instruction set F yielding an A
type FreeAp[I, A any] struct {
	n *node[I]
}

func pureNode[I any](value any) *node[I] {
	return &node[I]{pure: true, value: value}
}

func mapNode[I any](fa *node[I], f func(any) any) *node[I] {
	if fa.pure {
		return pureNode[I](f(fa.value))
	}
	composed := mapNode(fa.fn, func(g any) any {
		gg := g.(func(any) any)
		return func(x any) any {
			return f(gg(x))
		}
	})
	return &node[I]{fn: composed, instr: fa.instr}
}

func apNode[I any](fab *node[I], fa *node[I]) *node[I] {
	if fa.pure {
		return mapNode(fab, func(f any) any {
			return f.(func(any) any)(fa.value)
		})
	}
	composed := apNode(mapNode(fab, func(f any) any {
		ff := f.(func(any) any)
		return func(g any) any {
			gg := g.(func(any) any)
			return func(x any) any {
				return ff(gg(x))
			}
		}
	}), fa.fn)
	return &node[I]{fn: composed, instr: fa.instr}
}

// Of lifts a pure value into a program
func Of[I, A any](a A) FreeAp[I, A] {
	return FreeAp[I, A]{n: pureNode[I](ER.Erase(a))}
}

// LiftF lifts a single instruction into a program. The interpreter must
// produce a value of type A for this instruction.
func LiftF[A, I any](instr I) FreeAp[I, A] {
	identity := pureNode[I](any(func(x any) any {
		return x
	}))
	return FreeAp[I, A]{n: &node[I]{fn: identity, instr: instr}}
}

// MonadMap transforms the result of the program
func MonadMap[I, A, B any](fa FreeAp[I, A], f func(A) B) FreeAp[I, B] {
	return FreeAp[I, B]{n: mapNode(fa.n, func(x any) any {
		return ER.Erase(f(ER.Unerase[A](x)))
	})}
}

// Map is the curried version of [MonadMap]
func Map[I, A, B any](f func(A) B) func(FreeAp[I, A]) FreeAp[I, B] {
	return F.Bind2nd(MonadMap[I, A, B], f)
}

// MonadAp applies a program computing a function to a program computing its argument
func MonadAp[I, B, A any](fab FreeAp[I, func(A) B], fa FreeAp[I, A]) FreeAp[I, B] {
	erased := mapNode(fab.n, func(f any) any {
		ff := f.(func(A) B)
		return func(x any) any {
			return ER.Erase(ff(ER.Unerase[A](x)))
		}
	})
	return FreeAp[I, B]{n: apNode(erased, fa.n)}
}

// Ap is the curried version of [MonadAp]
func Ap[B, I, A any](fa FreeAp[I, A]) func(FreeAp[I, func(A) B]) FreeAp[I, B] {
	return F.Bind2nd(MonadAp[I, B, A], fa)
}

// MonadZipWith combines two programs through a binary function
func MonadZipWith[I, A, B, C any](fa FreeAp[I, A], fb FreeAp[I, B], f func(A, B) C) FreeAp[I, C] {
	return MonadAp(MonadMap(fa, func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}), fb)
}

// ZipWith is the curried version of [MonadZipWith]
func ZipWith[I, A, B, C any](fb FreeAp[I, B], f func(A, B) C) func(FreeAp[I, A]) FreeAp[I, C] {
	return func(fa FreeAp[I, A]) FreeAp[I, C] {
		return MonadZipWith(fa, fb, f)
	}
}

// FoldMap interprets the program into a target applicative through a natural
// transformation of the instructions. The value inside the returned effect is
// erased, restore it with [erasure.Unerase] via the target's map.
func FoldMap[A, I, HKT any](nat func(I) HKT, ap Applicative[HKT]) func(FreeAp[I, A]) HKT {
	var fold func(*node[I]) HKT
	fold = func(n *node[I]) HKT {
		if n.pure {
			return ap.Of(n.value)
		}
		return ap.Ap(fold(n.fn), nat(n.instr))
	}
	return func(fa FreeAp[I, A]) HKT {
		return fold(fa.n)
	}
}

// Analyze folds the instructions of the program into a monoid without running
// anything, e.g. to count or bound the operations ahead of execution
func Analyze[A, I, W any](m M.Monoid[W], f func(I) W) func(FreeAp[I, A]) W {
	var analyze func(*node[I]) W
	analyze = func(n *node[I]) W {
		if n.pure {
			return m.Empty()
		}
		return m.Concat(analyze(n.fn), f(n.instr))
	}
	return func(fa FreeAp[I, A]) W {
		return analyze(fa.n)
	}
}

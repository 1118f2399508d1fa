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

package cli

import (
	"context"
	"fmt"
	"os"

	C "github.com/urfave/cli/v3"
)

func writeTupleType(f *os.File, i int) {
	fmt.Fprintf(f, "Tuple%d[", i)
	for j := 1; j <= i; j++ {
		if j > 1 {
			fmt.Fprintf(f, ", ")
		}
		fmt.Fprintf(f, "T%d", j)
	}
	fmt.Fprintf(f, "]")
}

func writeTypeList(f *os.File, i int) {
	for j := 1; j <= i; j++ {
		if j > 1 {
			fmt.Fprintf(f, ", ")
		}
		fmt.Fprintf(f, "T%d", j)
	}
}

func generateTupleType(f *os.File, i int) {
	fmt.Fprintf(f, "\n// Tuple%d is a product type with %d elements\n", i, i)
	fmt.Fprintf(f, "type Tuple%d[", i)
	writeTypeList(f, i)
	fmt.Fprintf(f, " any] struct {\n")
	for j := 1; j <= i; j++ {
		fmt.Fprintf(f, "  F%d T%d\n", j, j)
	}
	fmt.Fprintf(f, "}\n")
}

func generateMakeTuple(f *os.File, i int) {
	fmt.Fprintf(f, "\n// MakeTuple%d creates a [Tuple%d] from its values\n", i, i)
	fmt.Fprintf(f, "func MakeTuple%d[", i)
	writeTypeList(f, i)
	fmt.Fprintf(f, " any](")
	for j := 1; j <= i; j++ {
		if j > 1 {
			fmt.Fprintf(f, ", ")
		}
		fmt.Fprintf(f, "t%d T%d", j, j)
	}
	fmt.Fprintf(f, ") ")
	writeTupleType(f, i)
	fmt.Fprintf(f, " {\n  return ")
	writeTupleType(f, i)
	fmt.Fprintf(f, "{")
	for j := 1; j <= i; j++ {
		if j > 1 {
			fmt.Fprintf(f, ", ")
		}
		fmt.Fprintf(f, "t%d", j)
	}
	fmt.Fprintf(f, "}\n}\n")
}

func generateTupled(f *os.File, i int) {
	fmt.Fprintf(f, "\n// Tupled%d converts an uncurried function into a function taking a [Tuple%d]\n", i, i)
	fmt.Fprintf(f, "func Tupled%d[", i)
	writeTypeList(f, i)
	fmt.Fprintf(f, ", R any](f func(")
	for j := 1; j <= i; j++ {
		if j > 1 {
			fmt.Fprintf(f, ", ")
		}
		fmt.Fprintf(f, "t%d T%d", j, j)
	}
	fmt.Fprintf(f, ") R) func(")
	writeTupleType(f, i)
	fmt.Fprintf(f, ") R {\n  return func(t ")
	writeTupleType(f, i)
	fmt.Fprintf(f, ") R {\n    return f(")
	for j := 1; j <= i; j++ {
		if j > 1 {
			fmt.Fprintf(f, ", ")
		}
		fmt.Fprintf(f, "t.F%d", j)
	}
	fmt.Fprintf(f, ")\n  }\n}\n")
}

func generateUntupled(f *os.File, i int) {
	fmt.Fprintf(f, "\n// Untupled%d converts a function taking a [Tuple%d] into an uncurried function\n", i, i)
	fmt.Fprintf(f, "func Untupled%d[", i)
	writeTypeList(f, i)
	fmt.Fprintf(f, ", R any](f func(")
	writeTupleType(f, i)
	fmt.Fprintf(f, ") R) func(")
	for j := 1; j <= i; j++ {
		if j > 1 {
			fmt.Fprintf(f, ", ")
		}
		fmt.Fprintf(f, "t%d T%d", j, j)
	}
	fmt.Fprintf(f, ") R {\n  return func(")
	for j := 1; j <= i; j++ {
		if j > 1 {
			fmt.Fprintf(f, ", ")
		}
		fmt.Fprintf(f, "t%d T%d", j, j)
	}
	fmt.Fprintf(f, ") R {\n    return f(MakeTuple%d(", i)
	for j := 1; j <= i; j++ {
		if j > 1 {
			fmt.Fprintf(f, ", ")
		}
		fmt.Fprintf(f, "t%d", j)
	}
	fmt.Fprintf(f, "))\n  }\n}\n")
}

func generateTupleHelpers(dir string, filename string, count int) error {
	f, err := createOutput(dir, filename, "tuple")
	if err != nil {
		return err
	}
	defer f.Close()

	for i := 1; i <= count; i++ {
		generateTupleType(f, i)
		generateMakeTuple(f, i)
		generateTupled(f, i)
		generateUntupled(f, i)
	}
	return nil
}

// TupleCommand creates the command that generates the tuple helpers
func TupleCommand() *C.Command {
	return &C.Command{
		Name:  "tuple",
		Usage: "generate the tuple types and helpers",
		Flags: []C.Flag{
			flagDir,
			flagFilename,
			flagCount,
		},
		Action: func(_ context.Context, cmd *C.Command) error {
			return generateTupleHelpers(cmd.String(keyDir), cmd.String(keyFilename), cmd.Int(keyCount))
		},
	}
}

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

func generatePipe(f *os.File, i int) {
	fmt.Fprintf(f, "\nfunc Pipe%d[A", i)
	for j := 1; j < i; j++ {
		fmt.Fprintf(f, ", T%d", j)
	}
	fmt.Fprintf(f, ", R any](a A")
	for j := 1; j <= i; j++ {
		if j == 1 {
			fmt.Fprintf(f, ", f%d func(a A) ", j)
		} else {
			fmt.Fprintf(f, ", f%d func(t%d T%d) ", j, j-1, j-1)
		}
		if j == i {
			fmt.Fprintf(f, "R")
		} else {
			fmt.Fprintf(f, "T%d", j)
		}
	}
	fmt.Fprintf(f, ") R {\n")
	prev := "a"
	for j := 1; j <= i; j++ {
		fmt.Fprintf(f, "  r%d := f%d(%s)\n", j, j, prev)
		prev = fmt.Sprintf("r%d", j)
	}
	fmt.Fprintf(f, "  return r%d\n}\n", i)
}

func generateFlow(f *os.File, i int) {
	fmt.Fprintf(f, "\nfunc Flow%d[A", i)
	for j := 1; j < i; j++ {
		fmt.Fprintf(f, ", T%d", j)
	}
	fmt.Fprintf(f, ", R any](")
	for j := 1; j <= i; j++ {
		if j > 1 {
			fmt.Fprintf(f, ", ")
		}
		if j == 1 {
			fmt.Fprintf(f, "f%d func(a A) ", j)
		} else {
			fmt.Fprintf(f, "f%d func(t%d T%d) ", j, j-1, j-1)
		}
		if j == i {
			fmt.Fprintf(f, "R")
		} else {
			fmt.Fprintf(f, "T%d", j)
		}
	}
	fmt.Fprintf(f, ") func(a A) R {\n  return func(a A) R {\n    return Pipe%d(a", i)
	for j := 1; j <= i; j++ {
		fmt.Fprintf(f, ", f%d", j)
	}
	fmt.Fprintf(f, ")\n  }\n}\n")
}

func generatePipeHelpers(dir string, filename string, count int) error {
	f, err := createOutput(dir, filename, "function")
	if err != nil {
		return err
	}
	defer f.Close()

	for i := 1; i <= count; i++ {
		generatePipe(f, i)
	}
	for i := 1; i <= count; i++ {
		generateFlow(f, i)
	}
	return nil
}

// PipeCommand creates the command that generates the pipe and flow compositions
func PipeCommand() *C.Command {
	return &C.Command{
		Name:  "pipe",
		Usage: "generate the pipe and flow compositions",
		Flags: []C.Flag{
			flagDir,
			flagFilename,
			flagCount,
		},
		Action: func(_ context.Context, cmd *C.Command) error {
			return generatePipeHelpers(cmd.String(keyDir), cmd.String(keyFilename), cmd.Int(keyCount))
		},
	}
}

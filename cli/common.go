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

// package cli hosts the code generator for the arity dependent parts of the
// library, the tuple types and the pipe and flow compositions
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	C "github.com/urfave/cli/v3"
)

const (
	keyFilename = "filename"
	keyCount    = "count"
	keyDir      = "dir"
)

var (
	flagFilename = &C.StringFlag{
		Name:  keyFilename,
		Value: "gen.go",
		Usage: "Name of the generated file",
	}

	flagCount = &C.IntFlag{
		Name:  keyCount,
		Value: 12,
		Usage: "Number of variations to create",
	}

	flagDir = &C.StringFlag{
		Name:  keyDir,
		Value: ".",
		Usage: "Directory to write the generated file to",
	}
)

func writeHeader(f *os.File, pkg string) {
	fmt.Fprintf(f, `// Copyright (c) %d IBM Corp.
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

// Code generated by the arity generator, DO NOT EDIT.

package %s
`, time.Now().Year(), pkg)
}

func createOutput(dir string, filename string, pkg string) (*os.File, error) {
	f, err := os.Create(filepath.Clean(filepath.Join(dir, filename)))
	if err != nil {
		return nil, err
	}
	writeHeader(f, pkg)
	return f, nil
}

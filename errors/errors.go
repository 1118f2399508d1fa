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

// package errors contains helpers to convert between go errors and functional error channels
package errors

import (
	"errors"
	"fmt"
)

// IdentityError returns its argument, the identity on the error channel
func IdentityError(err error) error {
	return err
}

// OnError creates an error handler that wraps the original error with a formatted message
func OnError(msg string, args ...any) func(error) error {
	return func(err error) error {
		return fmt.Errorf(msg+": %w", append(args, err)...)
	}
}

// ToString converts an error to its message
func ToString(err error) string {
	return err.Error()
}

// Is returns a predicate that checks an error against a target via [errors.Is]
func Is(target error) func(error) bool {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

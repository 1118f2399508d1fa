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

package resource

import (
	"errors"
	"testing"

	F "github.com/paths-fp/paths/function"
	IOR "github.com/paths-fp/paths/ioresult"
	R "github.com/paths-fp/paths/result"
	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func tracked(name string, log *[]string) Resource[string] {
	return Make(
		IOR.TryCatch(func() (string, error) {
			*log = append(*log, "acquire "+name)
			return name, nil
		}),
		func(string) IOR.IOResult[F.Void] {
			return IOR.TryCatch(func() (F.Void, error) {
				*log = append(*log, "release "+name)
				return F.VOID, nil
			})
		},
	)
}

func TestUseReleasesOnSuccess(t *testing.T) {
	var log []string
	res := IOR.RunSafe(Use(func(name string) IOR.IOResult[string] {
		return IOR.Of(name + "!")
	})(tracked("r1", &log)))

	assert.Equal(t, R.Ok("r1!"), res)
	assert.Equal(t, []string{"acquire r1", "release r1"}, log)
}

func TestUseReleasesOnFailure(t *testing.T) {
	var log []string
	res := IOR.RunSafe(Use(func(string) IOR.IOResult[string] {
		return IOR.Left[string](errBoom)
	})(tracked("r1", &log)))

	assert.True(t, R.IsError(res))
	assert.Equal(t, []string{"acquire r1", "release r1"}, log)
}

func TestUseReleasesOnPanic(t *testing.T) {
	var log []string
	res := IOR.RunSafe(Use(func(string) IOR.IOResult[string] {
		panic("use blew up")
	})(tracked("r1", &log)))

	assert.True(t, R.IsError(res))
	assert.Equal(t, []string{"acquire r1", "release r1"}, log)
}

func TestAndReleasesInReverseOrder(t *testing.T) {
	var log []string
	combined := F.Pipe1(tracked("r1", &log), And[string, string](tracked("r2", &log)))

	for _, use := range []func(func() (string, string)) IOR.IOResult[string]{
		func(pair func() (string, string)) IOR.IOResult[string] {
			first, second := pair()
			return IOR.Of(first + second)
		},
		func(func() (string, string)) IOR.IOResult[string] {
			return IOR.Left[string](errBoom)
		},
	} {
		log = nil
		IOR.RunSafe(Use(use)(combined))
		assert.Equal(t, []string{"acquire r1", "acquire r2", "release r2", "release r1"}, log)
	}
}

func TestChainReleasesDependentFirst(t *testing.T) {
	var log []string
	dependent := F.Pipe1(tracked("parent", &log), Chain(func(parent string) Resource[string] {
		return tracked(parent+"-child", &log)
	}))

	IOR.RunSafe(Use(func(name string) IOR.IOResult[string] {
		return IOR.Of(name)
	})(dependent))

	assert.Equal(t, []string{
		"acquire parent",
		"acquire parent-child",
		"release parent-child",
		"release parent",
	}, log)
}

func TestChainReleasesParentWhenChildAcquireFails(t *testing.T) {
	var log []string
	dependent := F.Pipe1(tracked("parent", &log), Chain(func(string) Resource[string] {
		return Make(IOR.Left[string](errBoom), func(string) IOR.IOResult[F.Void] {
			return IOR.Of(F.VOID)
		})
	}))

	res := IOR.RunSafe(Use(func(name string) IOR.IOResult[string] {
		return IOR.Of(name)
	})(dependent))

	assert.True(t, R.IsError(res))
	assert.Equal(t, []string{"acquire parent", "release parent"}, log)
}

func TestFinalizersRunInReverseRegistrationOrder(t *testing.T) {
	var log []string
	finalizer := func(name string) IOR.IOResult[F.Void] {
		return IOR.TryCatch(func() (F.Void, error) {
			log = append(log, name)
			return F.VOID, nil
		})
	}

	wired := F.Pipe2(
		tracked("r1", &log),
		WithFinalizer[string](finalizer("f1")),
		WithFinalizer[string](finalizer("f2")),
	)

	IOR.RunSafe(Use(func(name string) IOR.IOResult[string] {
		return IOR.Of(name)
	})(wired))

	assert.Equal(t, []string{"acquire r1", "release r1", "f2", "f1"}, log)
}

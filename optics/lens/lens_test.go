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

package lens

import (
	"testing"

	F "github.com/paths-fp/paths/function"
	"github.com/stretchr/testify/assert"
)

type street struct {
	name string
}

type address struct {
	street street
	city   string
}

var streetLens = MakeLens(func(a address) street {
	return a.street
}, func(a address, s street) address {
	a.street = s
	return a
})

var nameLens = MakeLens(func(s street) string {
	return s.name
}, func(s street, name string) street {
	s.name = name
	return s
})

func TestGetSet(t *testing.T) {
	a := address{street: street{name: "main"}, city: "rome"}
	assert.Equal(t, street{name: "main"}, streetLens.Get(a))

	updated := streetLens.Set(street{name: "side"})(a)
	assert.Equal(t, "side", updated.street.name)
	assert.Equal(t, "rome", updated.city)
	// the original is untouched
	assert.Equal(t, "main", a.street.name)
}

func TestLensLaws(t *testing.T) {
	a := address{street: street{name: "main"}}
	// set then get
	assert.Equal(t, street{name: "x"}, streetLens.Get(streetLens.Set(street{name: "x"})(a)))
	// get then set
	assert.Equal(t, a, streetLens.Set(streetLens.Get(a))(a))
}

func TestCompose(t *testing.T) {
	deep := F.Pipe1(streetLens, Compose[address](nameLens))
	a := address{street: street{name: "main"}, city: "rome"}
	assert.Equal(t, "main", deep.Get(a))

	updated := deep.Set("broad")(a)
	assert.Equal(t, "broad", updated.street.name)
	assert.Equal(t, "rome", updated.city)
}

func TestModify(t *testing.T) {
	upper := Modify[address](func(s street) street {
		s.name = s.name + "!"
		return s
	})(streetLens)
	assert.Equal(t, "main!", upper(address{street: street{name: "main"}}).street.name)
}

func TestId(t *testing.T) {
	id := Id[int]()
	assert.Equal(t, 5, id.Get(5))
	assert.Equal(t, 7, id.Set(7)(5))
}

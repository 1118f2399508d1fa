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

package optional

import (
	"testing"

	ET "github.com/paths-fp/paths/either"
	F "github.com/paths-fp/paths/function"
	O "github.com/paths-fp/paths/option"
	"github.com/stretchr/testify/assert"
)

type request struct {
	user *user
}

type user struct {
	name string
}

var userOptional = MakeOptional(func(r request) O.Option[user] {
	if r.user == nil {
		return O.None[user]()
	}
	return O.Some(*r.user)
}, func(r request, u user) request {
	r.user = &u
	return r
})

func TestGetOption(t *testing.T) {
	assert.Equal(t, O.None[user](), userOptional.GetOption(request{}))
	assert.Equal(t, O.Some(user{name: "ada"}), userOptional.GetOption(request{user: &user{name: "ada"}}))
}

func TestModifyOnMissingFocusIsIdentity(t *testing.T) {
	rename := Modify[request](func(u user) user {
		u.name = "renamed"
		return u
	})(userOptional)

	empty := request{}
	assert.Equal(t, empty, rename(empty))

	populated := rename(request{user: &user{name: "ada"}})
	assert.Equal(t, "renamed", populated.user.name)
}

func TestMatchIntoEither(t *testing.T) {
	// the no-match case of an effect without a zero carries a distinguished error
	match := F.Flow2(
		userOptional.GetOption,
		ET.FromOption[user](F.Constant("no user on request")),
	)
	assert.Equal(t, ET.Left[user]("no user on request"), match(request{}))
	assert.Equal(t, ET.Right[string](user{name: "ada"}), match(request{user: &user{name: "ada"}}))
}

func TestFromPredicate(t *testing.T) {
	positive := FromPredicate(func(n int) bool {
		return n > 0
	})
	assert.Equal(t, O.Some(2), positive.GetOption(2))
	assert.Equal(t, O.None[int](), positive.GetOption(-2))
}

func TestCompose(t *testing.T) {
	inner := FromPredicate(func(u user) bool {
		return u.name != ""
	})
	named := F.Pipe1(userOptional, Compose[request](inner))
	assert.Equal(t, O.None[user](), named.GetOption(request{user: &user{}}))
	assert.Equal(t, O.Some(user{name: "ada"}), named.GetOption(request{user: &user{name: "ada"}}))
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/address"
	"github.com/bitmark-inc/compressed-counter/fault"
)

func makeAccount(t *testing.T, fill byte) *account.Account {
	key := make([]byte, 32)
	for i := range key {
		key[i] = fill
	}
	a, err := account.New(key, true)
	assert.Nil(t, err, "account")
	return a
}

func randomAccount(t *testing.T) *account.Account {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	assert.Nil(t, err, "random")
	a, err := account.New(key, true)
	assert.Nil(t, err, "account")
	return a
}

func counterSeeds(owner *account.Account) [][]byte {
	return [][]byte{[]byte("counter"), owner.PublicKeyBytes()}
}

func TestDeterministic(t *testing.T) {
	program := makeAccount(t, 0x11)
	tree := makeAccount(t, 0x22)
	owner := makeAccount(t, 0x33)

	a1, s1 := address.Derive(counterSeeds(owner), tree, program)
	a2, s2 := address.Derive(counterSeeds(owner), tree, program)
	assert.Equal(t, a1, a2, "address")
	assert.Equal(t, s1, s2, "seed")
	assert.Equal(t, byte(0), a1[0], "address fits field")
	assert.Equal(t, byte(0), s1[0], "seed fits field")

	assert.Equal(t, s1, address.DeriveSeed(counterSeeds(owner), program), "seed half")
	assert.Equal(t, a1, address.DeriveFromSeed(s1, tree), "address half")
}

func TestDistinctOwners(t *testing.T) {
	program := makeAccount(t, 0x11)
	tree := makeAccount(t, 0x22)

	seen := make(map[address.Address]struct{})
	for i := 0; i < 1000; i += 1 {
		a, _ := address.Derive(counterSeeds(randomAccount(t)), tree, program)
		_, ok := seen[a]
		assert.False(t, ok, "%d: collision: %s", i, a)
		seen[a] = struct{}{}
	}
	assert.Equal(t, 1000, len(seen), "distinct addresses")
}

func TestDistinctTreesAndPrograms(t *testing.T) {
	program := makeAccount(t, 0x11)
	owner := makeAccount(t, 0x33)

	a1, s1 := address.Derive(counterSeeds(owner), makeAccount(t, 0x22), program)
	a2, s2 := address.Derive(counterSeeds(owner), makeAccount(t, 0x44), program)
	assert.Equal(t, s1, s2, "seed does not depend on tree")
	assert.NotEqual(t, a1, a2, "tree changes address")

	a3, s3 := address.Derive(counterSeeds(owner), makeAccount(t, 0x22), makeAccount(t, 0x55))
	assert.NotEqual(t, s1, s3, "program changes seed")
	assert.NotEqual(t, a1, a3, "program changes address")
}

func TestText(t *testing.T) {
	a, s := address.Derive([][]byte{[]byte("counter")}, makeAccount(t, 1), makeAccount(t, 2))

	text, err := a.MarshalText()
	assert.Nil(t, err, "marshal address")
	var ra address.Address
	assert.Nil(t, ra.UnmarshalText(text), "unmarshal address")
	assert.Equal(t, a, ra, "address")

	text, err = s.MarshalText()
	assert.Nil(t, err, "marshal seed")
	var rs address.Seed
	assert.Nil(t, rs.UnmarshalText(text), "unmarshal seed")
	assert.Equal(t, s, rs, "seed")

	assert.Equal(t, fault.ErrInvalidLength, ra.UnmarshalText([]byte("00")), "short")
	_, err = address.FromBytes([]byte{1})
	assert.Equal(t, fault.ErrInvalidLength, err, "from bytes")
}

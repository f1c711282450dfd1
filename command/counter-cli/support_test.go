// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/compressed-counter/fixtures"
	"github.com/bitmark-inc/compressed-counter/ledger"
)

func TestSelectTree(t *testing.T) {
	trees := []ledger.TreeInfo{
		{Tree: fixtures.Account(0xa0)},
		{Tree: fixtures.Account(0xa2)},
	}

	tree, err := selectTree(trees, "")
	assert.Nil(t, err, "default")
	assert.True(t, fixtures.Account(0xa0).Equal(tree), "first tree")

	tree, err = selectTree(trees, fixtures.Account(0xa2).String())
	assert.Nil(t, err, "named")
	assert.True(t, fixtures.Account(0xa2).Equal(tree), "named tree")

	_, err = selectTree(trees, fixtures.Account(0xa4).String())
	assert.NotNil(t, err, "unregistered")

	_, err = selectTree(nil, "")
	assert.NotNil(t, err, "no trees")
}

func TestOwnerKey(t *testing.T) {
	_, err := ownerKey(&metadata{})
	assert.NotNil(t, err, "missing key")

	key, err := ownerKey(&metadata{key: fixtures.Key(3).Seed()})
	assert.Nil(t, err, "seed")
	assert.True(t, fixtures.Account(3).Equal(key.Account()), "account")
}

func TestPrintJson(t *testing.T) {
	reply := struct {
		Tag   string `json:"instruction"`
		Value uint64 `json:"value"`
		Note  string `json:"note,omitempty"`
	}{
		Tag:   "Create",
		Value: 3,
		Note:  "<zero>",
	}

	var buffer bytes.Buffer
	err := printJson(&buffer, reply)
	assert.Nil(t, err, "print")
	expected := "{\n  \"instruction\": \"Create\",\n  \"value\": 3,\n  \"note\": \"<zero>\"\n}\n"
	assert.Equal(t, expected, buffer.String(), "output")

	err = printJson(&buffer, make(chan int))
	assert.NotNil(t, err, "unsupported type")
}

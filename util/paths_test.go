// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/compressed-counter/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/rpc.crt", util.EnsureAbsolute("/data", "rpc.crt"), "relative")
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data/", "./log/"), "cleaned")
	assert.Equal(t, "/etc/rpc.key", util.EnsureAbsolute("/data", "/etc//rpc.key"), "absolute")
}

func TestEnsureFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "paths")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "file")
	assert.False(t, util.EnsureFileExists(name), "missing")

	err = ioutil.WriteFile(name, []byte("x"), 0600)
	assert.Nil(t, err, "write")
	assert.True(t, util.EnsureFileExists(name), "present")
}

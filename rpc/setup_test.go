// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"fmt"
	"io/ioutil"
	"math/rand"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/fixtures"
	"github.com/bitmark-inc/compressed-counter/rpc"
	"github.com/bitmark-inc/compressed-counter/rpc/listeners"
)

func TestInitialiseAndFinalise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := rpc.Finalise()
	assert.Equal(t, fault.ErrNotInitialised, err, "finalise before initialise")

	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	configuration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{listen},
	}

	err = rpc.Initialise(&configuration, "1.0", fixtures.Account(0x70), nil, nil)
	assert.Nil(t, err, "initialise")

	conn, err := net.Dial("tcp", listen)
	assert.Nil(t, err, "dial")
	if nil == err {
		_ = conn.Close()
	}

	err = rpc.Initialise(&configuration, "1.0", fixtures.Account(0x70), nil, nil)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")

	err = rpc.Finalise()
	assert.Nil(t, err, "finalise")
}

func TestInitialiseTLS(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "rpc-setup")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	certificatePEM, keyPEM := fixtures.Certificate(t)
	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	assert.Nil(t, ioutil.WriteFile(certificateFile, []byte(certificatePEM), 0600), "write certificate")
	assert.Nil(t, ioutil.WriteFile(keyFile, []byte(keyPEM), 0600), "write key")

	configuration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)},
		Certificate:        filepath.Join(dir, "missing.crt"),
		PrivateKey:         keyFile,
	}

	err = rpc.Initialise(&configuration, "1.0", fixtures.Account(0x70), nil, nil)
	assert.NotNil(t, err, "missing certificate file")

	configuration.Certificate = certificateFile
	err = rpc.Initialise(&configuration, "1.0", fixtures.Account(0x70), nil, nil)
	assert.Nil(t, err, "initialise with TLS")

	err = rpc.Finalise()
	assert.Nil(t, err, "finalise")
}

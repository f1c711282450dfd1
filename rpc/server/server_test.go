// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"fmt"
	"math/rand"
	"net"
	"net/rpc"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/compressed-counter/counter"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/fixtures"
	"github.com/bitmark-inc/compressed-counter/ledger"
	"github.com/bitmark-inc/compressed-counter/rpc/indexer"
	"github.com/bitmark-inc/compressed-counter/rpc/node"
	"github.com/bitmark-inc/compressed-counter/rpc/programs"
	"github.com/bitmark-inc/compressed-counter/rpc/server"
)

var port string

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	port = fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000) // 30,000 - 60,000
	c := counter.Counter(0)
	r := server.Create(logger.New(fixtures.LogCategory), "1.0", &c, fixtures.Account(0x70), nil, nil)
	l, err := net.Listen("tcp", port)
	if nil != err {
		fmt.Printf("listen error: %s\n", err)
		os.Exit(1)
	}

	go r.Accept(l)

	rc := m.Run()

	_ = l.Close()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// each call fails with an error only the registered method returns,
// which shows the method is reachable under its service name

func dial(t *testing.T) *rpc.Client {
	conn, err := net.Dial("tcp", port)
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	return rpc.NewClient(conn)
}

func TestNodeInfo(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.NotNil(t, err, "wrong Node.Info")
	assert.Equal(t, fault.ErrDatabaseIsNotSet.Error(), err.Error(), "wrong reply")
}

func TestIndexerCounter(t *testing.T) {
	client := dial(t)
	defer client.Close()

	arg := indexer.CounterArguments{
		Tree: fixtures.Account(0xa0),
	}
	var reply indexer.CounterReply
	err := client.Call("Indexer.Counter", &arg, &reply)
	assert.NotNil(t, err, "wrong Indexer.Counter")
	assert.Equal(t, fault.ErrMissingOwner.Error(), err.Error(), "wrong reply")
}

func TestIndexerValidityProof(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply ledger.ValidityProofResult
	err := client.Call("Indexer.ValidityProof", &indexer.ProofArguments{}, &reply)
	assert.NotNil(t, err, "wrong Indexer.ValidityProof")
	assert.Equal(t, fault.ErrInvalidCount.Error(), err.Error(), "wrong reply")
}

func TestProgramSubmit(t *testing.T) {
	client := dial(t)
	defer client.Close()

	arg := programs.SubmitArguments{
		Instruction: "00",
	}
	var reply programs.SubmitReply
	err := client.Call("Program.Submit", &arg, &reply)
	assert.NotNil(t, err, "wrong Program.Submit")
	assert.Equal(t, fault.ErrMissingSink.Error(), err.Error(), "wrong reply")
}

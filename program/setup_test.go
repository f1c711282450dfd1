// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program_test

import (
	"context"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/client"
	"github.com/bitmark-inc/compressed-counter/fixtures"
	"github.com/bitmark-inc/compressed-counter/ledger"
	"github.com/bitmark-inc/compressed-counter/program"
	"github.com/bitmark-inc/compressed-counter/storage"
)

const databaseFileName = "test.leveldb"

var (
	stateTree    = fixtures.Account(0xb0)
	stateQueue   = fixtures.Account(0xb1)
	addressTree  = fixtures.Account(0xa0)
	addressQueue = fixtures.Account(0xa1)
	programID    = fixtures.Account(0x70)
)

// a program running against a fresh ledger
type harness struct {
	t       *testing.T
	ledger  *ledger.Ledger
	program *program.Program
}

func removeFiles() {
	os.RemoveAll(databaseFileName)
}

func setupLedger(t *testing.T) *harness {
	fixtures.SetupTestLogger()
	removeFiles()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	conf := &ledger.Configuration{
		RootHistory: 16,
		StateTrees: []ledger.TreeConfiguration{
			{Tree: stateTree.String(), Queue: stateQueue.String()},
		},
		AddressTrees: []ledger.TreeConfiguration{
			{Tree: addressTree.String(), Queue: addressQueue.String()},
		},
	}
	l, err := ledger.New(conf, logger.New("ledger"))
	if nil != err {
		t.Fatalf("ledger error: %s", err)
	}

	p, err := program.New(programID, logger.New("program"))
	if nil != err {
		t.Fatalf("program error: %s", err)
	}

	return &harness{
		t:       t,
		ledger:  l,
		program: p,
	}
}

func teardownLedger() {
	storage.Finalise()
	removeFiles()
	fixtures.TeardownTestLogger()
}

func (h *harness) create(key *account.PrivateKey) (*program.Result, error) {
	signed, err := client.Create(h.ledger, programID, key, addressTree, stateTree)
	if nil != err {
		return nil, err
	}
	return h.program.Process(context.Background(), signed, h.ledger)
}

// the live counter of an owner
func (h *harness) counter(owner *account.Account) (*ledger.CompressedAccount, error) {
	addr, _ := program.DeriveAddress(programID, owner, addressTree)
	return h.ledger.AccountByAddress(programID, addr)
}

func (h *harness) increment(key *account.PrivateKey) error {
	acc, err := h.counter(key.Account())
	if nil != err {
		return err
	}
	signed, err := client.Increment(h.ledger, programID, key, acc)
	if nil != err {
		return err
	}
	_, err = h.program.Process(context.Background(), signed, h.ledger)
	return err
}

func (h *harness) value(owner *account.Account) uint64 {
	acc, err := h.counter(owner)
	if nil != err {
		h.t.Fatalf("counter error: %s", err)
	}
	value, err := client.CounterValue(acc)
	if nil != err {
		h.t.Fatalf("counter value error: %s", err)
	}
	return value
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package indexer - RPC access to ledger records and validity proofs
package indexer

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/address"
	"github.com/bitmark-inc/compressed-counter/client"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/ledger"
	"github.com/bitmark-inc/compressed-counter/merkle"
	"github.com/bitmark-inc/compressed-counter/program"
	"github.com/bitmark-inc/compressed-counter/rpc/ratelimit"
)

const (
	rateLimitIndexer = 200
	rateBurstIndexer = 100

	// maximum claims in one proof request
	maximumClaims = 8
)

// Ledger - the parts of the ledger served here
type Ledger interface {
	Account(hash merkle.Digest) (*ledger.CompressedAccount, error)
	AccountByAddress(program *account.Account, addr address.Address) (*ledger.CompressedAccount, error)
	AccountsByOwner(program *account.Account) ([]*ledger.CompressedAccount, error)
	AccountProof(hash merkle.Digest) (*ledger.MerkleProof, error)
	ValidityProof(hashes []merkle.Digest, addresses []ledger.AddressWithTree) (*ledger.ValidityProofResult, error)
}

// Indexer - type for RPC calls
type Indexer struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Program *account.Account
	Ledger  Ledger
}

// New - create the indexer service for one program
func New(log *logger.L, programID *account.Account, l Ledger) *Indexer {
	return &Indexer{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitIndexer, rateBurstIndexer),
		Program: programID,
		Ledger:  l,
	}
}

// ---

// AccountsArguments - empty arguments, the program is fixed
type AccountsArguments struct{}

// AccountsReply - all live records of the program
type AccountsReply struct {
	Accounts []*ledger.CompressedAccount `json:"accounts"`
}

// Accounts - list the live records of the program
func (indexer *Indexer) Accounts(_ *AccountsArguments, reply *AccountsReply) error {
	if err := ratelimit.Limit(indexer.Limiter); nil != err {
		return err
	}

	accounts, err := indexer.Ledger.AccountsByOwner(indexer.Program)
	if nil != err {
		return err
	}
	reply.Accounts = accounts
	return nil
}

// ---

// CounterArguments - owner and the address tree the counter was created in
type CounterArguments struct {
	Owner *account.Account `json:"owner"`
	Tree  *account.Account `json:"tree"`
}

// CounterReply - the live counter record and its value
type CounterReply struct {
	Account *ledger.CompressedAccount `json:"account"`
	Value   uint64                    `json:"value"`
}

// Counter - look up the counter of an owner
func (indexer *Indexer) Counter(arguments *CounterArguments, reply *CounterReply) error {
	if err := ratelimit.Limit(indexer.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.ErrMissingOwner
	}
	if nil == arguments.Tree {
		return fault.ErrTreeNotRegistered
	}

	addr, _ := program.DeriveAddress(indexer.Program, arguments.Owner, arguments.Tree)
	acc, err := indexer.Ledger.AccountByAddress(indexer.Program, addr)
	if nil != err {
		return err
	}

	c, err := client.CounterValue(acc)
	if nil != err {
		return err
	}

	indexer.Log.Debugf("counter: owner: %s  address: %s  value: %d", arguments.Owner, addr, c)

	reply.Account = acc
	reply.Value = c
	return nil
}

// ---

// ProofArguments - claims to prove
type ProofArguments struct {
	Hashes    []merkle.Digest          `json:"hashes"`
	Addresses []ledger.AddressWithTree `json:"addresses"`
}

// ValidityProof - proof for existing records and new addresses
func (indexer *Indexer) ValidityProof(arguments *ProofArguments, reply *ledger.ValidityProofResult) error {
	count := len(arguments.Hashes) + len(arguments.Addresses)
	if err := ratelimit.LimitN(indexer.Limiter, count, maximumClaims); nil != err {
		return err
	}

	result, err := indexer.Ledger.ValidityProof(arguments.Hashes, arguments.Addresses)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// ---

// AccountProofArguments - a record hash
type AccountProofArguments struct {
	Hash merkle.Digest `json:"hash"`
}

// AccountProof - Merkle inclusion path of a live record
func (indexer *Indexer) AccountProof(arguments *AccountProofArguments, reply *ledger.MerkleProof) error {
	if err := ratelimit.Limit(indexer.Limiter); nil != err {
		return err
	}

	p, err := indexer.Ledger.AccountProof(arguments.Hash)
	if nil != err {
		return err
	}
	*reply = *p
	return nil
}

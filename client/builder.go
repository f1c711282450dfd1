// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client

import (
	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/instruction"
	"github.com/bitmark-inc/compressed-counter/ledger"
	"github.com/bitmark-inc/compressed-counter/merkle"
	"github.com/bitmark-inc/compressed-counter/program"
	"github.com/bitmark-inc/compressed-counter/record"
)

// Prover - source of validity proofs
type Prover interface {
	ValidityProof(hashes []merkle.Digest, addresses []ledger.AddressWithTree) (*ledger.ValidityProofResult, error)
}

// NewAddress - the counter address of an owner, ready for a proof request
func NewAddress(programID *account.Account, owner *account.Account, addressTree *account.Account) ledger.AddressWithTree {
	addr, _ := program.DeriveAddress(programID, owner, addressTree)
	return ledger.AddressWithTree{
		Address: addr,
		Tree:    addressTree,
	}
}

// CreateInstruction - create the owner's counter
//
// result must prove the absence of the owner's counter address and
// nothing else
func CreateInstruction(programID *account.Account, owner *account.Account, result *ledger.ValidityProofResult, outputTree *account.Account) (*instruction.Instruction, error) {
	if 1 != len(result.Addresses) || 0 != len(result.Accounts) {
		return nil, fault.ErrInvalidCount
	}
	a := result.Addresses[0]

	packed := NewPackedAccounts()
	addressTree, err := packed.PackAddressMerkleContext(a.Tree, a.Queue, a.RootIndex)
	if nil != err {
		return nil, err
	}
	outputIndex, err := packed.InsertOrGet(outputTree)
	if nil != err {
		return nil, err
	}

	args := &instruction.Create{
		Proof:                result.Proof,
		AddressTreeInfo:      addressTree,
		OutputStateTreeIndex: outputIndex,
	}
	return &instruction.Instruction{
		Program:  programID,
		Signer:   owner,
		Accounts: packed.Accounts(),
		Data:     args.Pack(),
	}, nil
}

// IncrementInstruction - add one to a counter claimed to hold counterValue
func IncrementInstruction(programID *account.Account, owner *account.Account, acc *ledger.CompressedAccount, counterValue uint64, result *ledger.ValidityProofResult) (*instruction.Instruction, error) {
	accounts, meta, err := accountMeta(acc, result)
	if nil != err {
		return nil, err
	}
	args := &instruction.Increment{
		Proof:        result.Proof,
		CounterValue: counterValue,
		AccountMeta:  meta,
	}
	return &instruction.Instruction{
		Program:  programID,
		Signer:   owner,
		Accounts: accounts,
		Data:     args.Pack(),
	}, nil
}

// DeleteInstruction - close a counter claimed to hold counterValue
func DeleteInstruction(programID *account.Account, owner *account.Account, acc *ledger.CompressedAccount, counterValue uint64, result *ledger.ValidityProofResult) (*instruction.Instruction, error) {
	accounts, meta, err := accountMeta(acc, result)
	if nil != err {
		return nil, err
	}
	args := &instruction.Delete{
		Proof:        result.Proof,
		CounterValue: counterValue,
		AccountMeta:  meta,
	}
	return &instruction.Instruction{
		Program:  programID,
		Signer:   owner,
		Accounts: accounts,
		Data:     args.Pack(),
	}, nil
}

// CounterValue - decode the value stored in a counter account
func CounterValue(acc *ledger.CompressedAccount) (uint64, error) {
	if record.CounterDiscriminator != acc.Discriminator {
		return 0, fault.ErrInvalidDiscriminator
	}
	c, err := record.Unpack(acc.Data)
	if nil != err {
		return 0, err
	}
	return c.Value, nil
}

// the updated record stays in the tree of the current one
func accountMeta(acc *ledger.CompressedAccount, result *ledger.ValidityProofResult) ([]*account.Account, instruction.CompressedAccountMeta, error) {
	if 1 != len(result.Accounts) || 0 != len(result.Addresses) {
		return nil, instruction.CompressedAccountMeta{}, fault.ErrInvalidCount
	}
	proved := result.Accounts[0]

	packed := NewPackedAccounts()
	merkleContext, err := packed.PackMerkleContext(proved.Tree, proved.Queue, proved.LeafIndex)
	if nil != err {
		return nil, instruction.CompressedAccountMeta{}, err
	}
	outputIndex, err := packed.InsertOrGet(acc.Tree)
	if nil != err {
		return nil, instruction.CompressedAccountMeta{}, err
	}

	meta := instruction.CompressedAccountMeta{
		MerkleContext:         merkleContext,
		Address:               acc.Address,
		RootIndex:             proved.RootIndex,
		OutputMerkleTreeIndex: outputIndex,
	}
	return packed.Accounts(), meta, nil
}

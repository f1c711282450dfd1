// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package client - build counter instructions from ledger state
package client

import (
	"math"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/instruction"
)

// PackedAccounts - the remaining accounts of one instruction
//
// each distinct account is stored once and referred to by its index
type PackedAccounts struct {
	accounts []*account.Account
	index    map[[32]byte]uint8
}

// NewPackedAccounts - empty account list
func NewPackedAccounts() *PackedAccounts {
	return &PackedAccounts{
		accounts: make([]*account.Account, 0, 4),
		index:    make(map[[32]byte]uint8),
	}
}

// InsertOrGet - index of an account, appending it if not present
func (p *PackedAccounts) InsertOrGet(a *account.Account) (uint8, error) {
	if nil == a {
		return 0, fault.ErrInvalidTreeIndex
	}
	key := a.Key()
	if i, ok := p.index[key]; ok {
		return i, nil
	}
	// an instruction carries at most 255 accounts
	if len(p.accounts) >= math.MaxUint8 {
		return 0, fault.ErrInvalidTreeIndex
	}
	i := uint8(len(p.accounts))
	p.accounts = append(p.accounts, a)
	p.index[key] = i
	return i, nil
}

// Accounts - the list in index order
func (p *PackedAccounts) Accounts() []*account.Account {
	return p.accounts
}

// PackMerkleContext - tree and queue of an existing record as indices
func (p *PackedAccounts) PackMerkleContext(tree *account.Account, queue *account.Account, leafIndex uint32) (instruction.PackedMerkleContext, error) {
	treeIndex, err := p.InsertOrGet(tree)
	if nil != err {
		return instruction.PackedMerkleContext{}, err
	}
	queueIndex, err := p.InsertOrGet(queue)
	if nil != err {
		return instruction.PackedMerkleContext{}, err
	}
	return instruction.PackedMerkleContext{
		MerkleTreeIndex: treeIndex,
		QueueIndex:      queueIndex,
		LeafIndex:       leafIndex,
	}, nil
}

// PackAddressMerkleContext - address tree and queue as indices
func (p *PackedAccounts) PackAddressMerkleContext(tree *account.Account, queue *account.Account, rootIndex uint16) (instruction.PackedAddressMerkleContext, error) {
	treeIndex, err := p.InsertOrGet(tree)
	if nil != err {
		return instruction.PackedAddressMerkleContext{}, err
	}
	queueIndex, err := p.InsertOrGet(queue)
	if nil != err {
		return instruction.PackedAddressMerkleContext{}, err
	}
	return instruction.PackedAddressMerkleContext{
		AddressMerkleTreeIndex: treeIndex,
		AddressQueueIndex:      queueIndex,
		RootIndex:              rootIndex,
	}, nil
}

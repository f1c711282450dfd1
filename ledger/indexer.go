// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/address"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/merkle"
	"github.com/bitmark-inc/compressed-counter/storage"
)

// MerkleProof - inclusion path of an account in its state tree
type MerkleProof struct {
	Hash      merkle.Digest    `json:"hash"`
	Tree      *account.Account `json:"tree"`
	LeafIndex uint32           `json:"leafIndex"`
	Path      []merkle.Digest  `json:"path"`
	Root      merkle.Digest    `json:"root"`
	RootIndex uint16           `json:"rootIndex"`
}

// Account - fetch a live account by its hash
func (l *Ledger) Account(hash merkle.Digest) (*CompressedAccount, error) {
	l.RLock()
	defer l.RUnlock()
	return l.liveAccount(hash)
}

// AccountByAddress - the live account of a program holding an address
func (l *Ledger) AccountByAddress(program *account.Account, addr address.Address) (*CompressedAccount, error) {
	accounts, err := l.AccountsByOwner(program)
	if nil != err {
		return nil, err
	}
	for _, acc := range accounts {
		if addr == acc.Address {
			return acc, nil
		}
	}
	return nil, fault.ErrAccountNotFound
}

// AccountsByOwner - all live accounts belonging to a program
func (l *Ledger) AccountsByOwner(program *account.Account) ([]*CompressedAccount, error) {
	if nil == program {
		return nil, fault.ErrInvalidProgram
	}

	l.RLock()
	defer l.RUnlock()

	prefix := program.PublicKeyBytes()
	hashes := make([]merkle.Digest, 0, 16)
	err := storage.Pool.OwnerIndex.NewPrefixCursor(prefix).Map(func(key []byte, value []byte) error {
		var hash merkle.Digest
		err := merkle.DigestFromBytes(&hash, key[len(prefix):])
		if nil != err {
			return err
		}
		hashes = append(hashes, hash)
		return nil
	})
	if nil != err {
		return nil, err
	}

	accounts := make([]*CompressedAccount, 0, len(hashes))
	for _, hash := range hashes {
		acc, err := l.liveAccount(hash)
		if nil != err {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// AccountProof - current inclusion path for an account
func (l *Ledger) AccountProof(hash merkle.Digest) (*MerkleProof, error) {
	l.RLock()
	defer l.RUnlock()

	acc, err := l.liveAccount(hash)
	if nil != err {
		return nil, err
	}
	t, ok := l.trees[acc.Tree.Key()]
	if !ok {
		return nil, fault.ErrTreeNotRegistered
	}
	path, err := merkle.InclusionPath(t.leaves, uint64(acc.LeafIndex))
	if nil != err {
		return nil, err
	}
	return &MerkleProof{
		Hash:      hash,
		Tree:      t.id,
		LeafIndex: acc.LeafIndex,
		Path:      path,
		Root:      t.currentRoot(),
		RootIndex: t.rootIndex,
	}, nil
}

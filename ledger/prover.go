// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/address"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/merkle"
	"github.com/bitmark-inc/compressed-counter/proof"
	"github.com/bitmark-inc/compressed-counter/storage"
)

const proofDomain = "compressed-counter validity proof v1"

// AddressWithTree - an address expected to be absent from a tree
type AddressWithTree struct {
	Address address.Address  `json:"address"`
	Tree    *account.Account `json:"tree"`
}

// AccountProofInputs - the state an inclusion claim was proved against
type AccountProofInputs struct {
	Hash      merkle.Digest    `json:"hash"`
	Root      merkle.Digest    `json:"root"`
	RootIndex uint16           `json:"rootIndex"`
	LeafIndex uint32           `json:"leafIndex"`
	Tree      *account.Account `json:"tree"`
	Queue     *account.Account `json:"queue"`
}

// AddressProofInputs - the state a non-inclusion claim was proved against
type AddressProofInputs struct {
	Address   address.Address  `json:"address"`
	Root      merkle.Digest    `json:"root"`
	RootIndex uint16           `json:"rootIndex"`
	Tree      *account.Account `json:"tree"`
	Queue     *account.Account `json:"queue"`
}

// ValidityProofResult - a proof with the context needed to use it
type ValidityProofResult struct {
	Proof     proof.ValidityProof  `json:"proof"`
	Accounts  []AccountProofInputs `json:"accounts"`
	Addresses []AddressProofInputs `json:"addresses"`
}

// ValidityProof - prove inclusion of account hashes and absence of addresses
//
// all claims are made against the current roots; an empty request
// gives an empty proof
func (l *Ledger) ValidityProof(hashes []merkle.Digest, addresses []AddressWithTree) (*ValidityProofResult, error) {
	l.RLock()
	defer l.RUnlock()

	result := &ValidityProofResult{
		Accounts:  make([]AccountProofInputs, 0, len(hashes)),
		Addresses: make([]AddressProofInputs, 0, len(addresses)),
	}

	for _, hash := range hashes {
		acc, err := l.liveAccount(hash)
		if nil != err {
			return nil, err
		}
		t, ok := l.trees[acc.Tree.Key()]
		if !ok || StateTree != t.treeType {
			return nil, fault.ErrTreeNotRegistered
		}
		path, err := merkle.InclusionPath(t.leaves, uint64(acc.LeafIndex))
		if nil != err {
			return nil, err
		}
		root := t.currentRoot()
		if !merkle.VerifyInclusion(root, hash, uint64(acc.LeafIndex), path) {
			l.log.Criticalf("account: %s  not in tree: %s", hash, t.id)
			return nil, fault.ErrProofRejected
		}
		result.Accounts = append(result.Accounts, AccountProofInputs{
			Hash:      hash,
			Root:      root,
			RootIndex: t.rootIndex,
			LeafIndex: acc.LeafIndex,
			Tree:      t.id,
			Queue:     t.queue,
		})
	}

	for _, a := range addresses {
		if nil == a.Tree {
			return nil, fault.ErrTreeNotRegistered
		}
		t, ok := l.trees[a.Tree.Key()]
		if !ok || AddressTree != t.treeType {
			return nil, fault.ErrTreeNotRegistered
		}
		if storage.Pool.Addresses.Has(addressKey(t.id, a.Address[:])) {
			return nil, fault.ErrAddressExists
		}
		result.Addresses = append(result.Addresses, AddressProofInputs{
			Address:   a.Address,
			Root:      t.currentRoot(),
			RootIndex: t.rootIndex,
			Tree:      t.id,
			Queue:     t.queue,
		})
	}

	if 0 == len(result.Accounts) && 0 == len(result.Addresses) {
		return result, nil
	}

	a := publicInputs(result.Accounts, result.Addresses)
	compressed := proof.CompressedProof{
		A: a,
		C: l.fingerprint,
	}
	copy(compressed.B[:], l.prover.Sign(a[:]))
	result.Proof = proof.New(compressed)

	l.log.Debugf("proof: accounts: %d  addresses: %d  inputs: %s", len(hashes), len(addresses), a)
	return result, nil
}

// account for a hash that has not been nullified
func (l *Ledger) liveAccount(hash merkle.Digest) (*CompressedAccount, error) {
	packed := storage.Pool.Accounts.Get(hash[:])
	if nil == packed {
		if storage.Pool.Nullifiers.Has(hash[:]) {
			return nil, fault.ErrInputSpent
		}
		return nil, fault.ErrAccountNotFound
	}
	return unpackAccount(hash, packed)
}

// verify a proof against the roots it claims
func (l *Ledger) verify(p proof.ValidityProof, accounts []AccountProofInputs, addresses []AddressProofInputs) error {
	if 0 == len(accounts) && 0 == len(addresses) {
		return nil
	}
	if p.IsEmpty() {
		return fault.ErrProofRejected
	}
	expected := publicInputs(accounts, addresses)
	if expected != merkle.Digest(p.Compressed.A) {
		return fault.ErrProofRejected
	}
	if l.fingerprint != merkle.Digest(p.Compressed.C) {
		return fault.ErrProofRejected
	}
	err := l.prover.Account().CheckSignature(expected[:], p.Compressed.B[:])
	if nil != err {
		return fault.ErrProofRejected
	}
	return nil
}

// digest over everything a proof attests to
func publicInputs(accounts []AccountProofInputs, addresses []AddressProofInputs) merkle.Digest {
	counts := make([]byte, 8)
	binary.BigEndian.PutUint32(counts[:4], uint32(len(accounts)))
	binary.BigEndian.PutUint32(counts[4:], uint32(len(addresses)))

	parts := [][]byte{[]byte(proofDomain), counts}
	for _, a := range accounts {
		parts = append(parts, a.Hash[:], a.Tree.PublicKeyBytes(), rootIndexBytes(a.RootIndex), a.Root[:])
	}
	for _, a := range addresses {
		parts = append(parts, a.Address[:], a.Tree.PublicKeyBytes(), rootIndexBytes(a.RootIndex), a.Root[:])
	}
	return merkle.Sum(parts...)
}

func rootIndexBytes(index uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, index)
	return b
}

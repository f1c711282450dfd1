// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"context"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/address"
	"github.com/bitmark-inc/compressed-counter/cpi"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/merkle"
	"github.com/bitmark-inc/compressed-counter/proof"
	"github.com/bitmark-inc/compressed-counter/storage"
)

// a resolved input with its account hash
type stagedInput struct {
	cpi.InputAccount
	hash merkle.Digest
	tree *tree
}

// a resolved new address
type stagedAddress struct {
	address   address.Address
	rootIndex uint16
	tree      *tree
}

// working copies of trees touched by one request
type staging struct {
	l     *Ledger
	trees map[[32]byte]*tree
	order []*tree
}

func (s *staging) get(id *account.Account, treeType TreeType) (*tree, error) {
	if nil == id {
		return nil, fault.ErrTreeNotRegistered
	}
	key := id.Key()
	if t, ok := s.trees[key]; ok {
		if treeType != t.treeType {
			return nil, fault.ErrTreeNotRegistered
		}
		return t, nil
	}
	live, ok := s.l.trees[key]
	if !ok || treeType != live.treeType {
		return nil, fault.ErrTreeNotRegistered
	}
	t := live.clone()
	s.trees[key] = t
	s.order = append(s.order, t)
	return t, nil
}

// Commit - apply a request as a single atomic batch
//
// nothing is written unless every input, address and output is valid
func (l *Ledger) Commit(ctx context.Context, request *cpi.Request) error {
	if nil == request.Signer {
		return fault.ErrMissingSigner
	}
	if nil == request.Program {
		return fault.ErrInvalidProgram
	}
	if nil != ctx.Err() {
		return fault.ErrCommitFailed
	}

	l.Lock()
	defer l.Unlock()

	s := &staging{
		l:     l,
		trees: make(map[[32]byte]*tree),
	}

	inputs, err := l.stageInputs(s, request)
	if nil != err {
		l.log.Warnf("commit: signer: %s  inputs error: %s", request.Signer, err)
		return err
	}

	addresses, err := l.stageAddresses(s, request)
	if nil != err {
		l.log.Warnf("commit: signer: %s  address error: %s", request.Signer, err)
		return err
	}

	err = checkClaims(request)
	if nil != err {
		l.log.Warnf("commit: signer: %s  claims error: %s", request.Signer, err)
		return err
	}

	err = l.verify(request.Proof, proofAccounts(inputs), proofAddresses(addresses))
	if nil != err {
		l.log.Warnf("commit: signer: %s  proof error: %s", request.Signer, err)
		return err
	}

	for _, in := range inputs {
		if storage.Pool.Nullifiers.Has(in.hash[:]) {
			return fault.ErrInputSpent
		}
		if int(in.LeafIndex) >= len(in.tree.leaves) || in.tree.leaves[in.LeafIndex] != in.hash {
			return fault.ErrInputNotFound
		}
	}

	err = checkOutputAddresses(request.Outputs, inputs, addresses)
	if nil != err {
		return err
	}

	err = l.apply(s, request, inputs, addresses)
	if nil != err {
		return err
	}

	for key, t := range s.trees {
		l.trees[key] = t
	}

	l.log.Infof("commit: program: %s  signer: %s  inputs: %d  addresses: %d  outputs: %d", request.Program, request.Signer, len(inputs), len(addresses), len(request.Outputs))
	return nil
}

func (l *Ledger) stageInputs(s *staging, request *cpi.Request) ([]stagedInput, error) {
	inputs := make([]stagedInput, 0, len(request.Inputs))
	seen := make(map[merkle.Digest]struct{})

	for _, in := range request.Inputs {
		t, err := s.get(in.Tree, StateTree)
		if nil != err {
			return nil, err
		}
		if !in.Queue.Equal(t.queue) {
			return nil, fault.ErrTreeNotRegistered
		}
		if _, err := t.root(in.RootIndex); nil != err {
			return nil, err
		}

		hash := AccountHash(request.Program, in.LeafIndex, t.id, in.Address, in.Discriminator, in.DataHash)
		if _, ok := seen[hash]; ok {
			return nil, fault.ErrDuplicateInput
		}
		seen[hash] = struct{}{}

		err = checkAuthority(t, in, request)
		if nil != err {
			return nil, err
		}

		inputs = append(inputs, stagedInput{
			InputAccount: in,
			hash:         hash,
			tree:         t,
		})
	}
	return inputs, nil
}

// the live record at an input position must belong to the program
// and have been written by the same signer
func checkAuthority(t *tree, in cpi.InputAccount, request *cpi.Request) error {
	if int(in.LeafIndex) >= len(t.leaves) {
		return nil
	}
	leaf := t.leaves[in.LeafIndex]
	packed := storage.Pool.Accounts.Get(leaf[:])
	if nil == packed {
		return nil
	}
	live, err := unpackAccount(leaf, packed)
	if nil != err {
		return err
	}
	if live.Address != in.Address {
		return nil
	}
	if !live.Program.Equal(request.Program) {
		return fault.ErrProgramNotOwner
	}
	if !live.Authority.Equal(request.Signer) {
		return fault.ErrSignerNotOwner
	}
	return nil
}

func (l *Ledger) stageAddresses(s *staging, request *cpi.Request) ([]stagedAddress, error) {
	addresses := make([]stagedAddress, 0, len(request.NewAddresses))
	seen := make(map[address.Address]struct{})

	for _, a := range request.NewAddresses {
		t, err := s.get(a.Tree, AddressTree)
		if nil != err {
			return nil, err
		}
		if !a.Queue.Equal(t.queue) {
			return nil, fault.ErrTreeNotRegistered
		}
		if _, err := t.root(a.RootIndex); nil != err {
			return nil, err
		}

		addr := address.DeriveFromSeed(a.Seed, t.id)
		if _, ok := seen[addr]; ok {
			return nil, fault.ErrAddressExists
		}
		seen[addr] = struct{}{}
		if storage.Pool.Addresses.Has(addressKey(t.id, addr[:])) {
			return nil, fault.ErrAddressExists
		}

		addresses = append(addresses, stagedAddress{
			address:   addr,
			rootIndex: a.RootIndex,
			tree:      t,
		})
	}
	return addresses, nil
}

// the claims bound to the proof must be the inputs then the new
// addresses, with the same subjects and root indices
func checkClaims(request *cpi.Request) error {
	if len(request.Claims) != len(request.Inputs)+len(request.NewAddresses) {
		return fault.ErrClaimMismatch
	}
	for i, in := range request.Inputs {
		c := request.Claims[i]
		if proof.Inclusion != c.Kind || c.Subject != [32]byte(in.DataHash) || c.RootIndex != in.RootIndex {
			return fault.ErrClaimMismatch
		}
	}
	claims := request.Claims[len(request.Inputs):]
	for i, a := range request.NewAddresses {
		c := claims[i]
		if proof.NonInclusion != c.Kind || c.Subject != [32]byte(a.Seed) || c.RootIndex != a.RootIndex {
			return fault.ErrClaimMismatch
		}
	}
	return nil
}

// outputs may only carry an address that is being consumed or created
func checkOutputAddresses(outputs []cpi.OutputAccount, inputs []stagedInput, addresses []stagedAddress) error {
	allowed := make(map[address.Address]struct{})
	for _, in := range inputs {
		allowed[in.Address] = struct{}{}
	}
	for _, a := range addresses {
		allowed[a.address] = struct{}{}
	}
	for _, out := range outputs {
		if _, ok := allowed[out.Address]; !ok {
			return fault.ErrOutputAddressNotAuthorised
		}
	}
	return nil
}

func (l *Ledger) apply(s *staging, request *cpi.Request, inputs []stagedInput, addresses []stagedAddress) error {

	// resolve output trees before anything is written
	outputTrees := make([]*tree, len(request.Outputs))
	for i, out := range request.Outputs {
		t, err := s.get(out.Tree, StateTree)
		if nil != err {
			return err
		}
		outputTrees[i] = t
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		l.log.Errorf("commit: start transaction error: %s", err)
		return fault.ErrCommitFailed
	}

	for _, in := range inputs {
		var empty merkle.Digest
		in.tree.leaves[in.LeafIndex] = empty
		trx.Put(storage.Pool.Leaves, leafKey(in.tree.id, in.LeafIndex), empty[:])
		trx.PutN(storage.Pool.Nullifiers, in.hash[:], uint64(in.LeafIndex))
		trx.Delete(storage.Pool.Accounts, in.hash[:])
		trx.Delete(storage.Pool.OwnerIndex, ownerKey(request.Program, in.hash))
	}

	for _, a := range addresses {
		leafIndex, err := a.tree.appendLeaf(merkle.Digest(a.address))
		if nil != err {
			trx.Abort()
			return err
		}
		trx.Put(storage.Pool.Leaves, leafKey(a.tree.id, leafIndex), a.address[:])
		trx.PutN(storage.Pool.Addresses, addressKey(a.tree.id, a.address[:]), uint64(leafIndex))
	}

	for i, out := range request.Outputs {
		t := outputTrees[i]
		leafIndex := uint32(len(t.leaves))
		hash := AccountHash(request.Program, leafIndex, t.id, out.Address, out.Discriminator, out.DataHash)
		if _, err := t.appendLeaf(hash); nil != err {
			trx.Abort()
			return err
		}
		acc := &CompressedAccount{
			Hash:          hash,
			Program:       request.Program,
			Authority:     request.Signer,
			Address:       out.Address,
			Discriminator: out.Discriminator,
			DataHash:      out.DataHash,
			Data:          out.Data,
			Tree:          t.id,
			Queue:         t.queue,
			LeafIndex:     leafIndex,
		}
		trx.Put(storage.Pool.Leaves, leafKey(t.id, leafIndex), hash[:])
		trx.Put(storage.Pool.Accounts, hash[:], acc.pack())
		trx.Put(storage.Pool.OwnerIndex, ownerKey(request.Program, hash), []byte{})
		l.log.Debugf("output: %s  address: %s  tree: %s  leaf: %d", hash, out.Address, t.id, leafIndex)
	}

	for _, t := range s.order {
		t.pushRoot()
		trx.Put(storage.Pool.Roots, rootKey(t.id, t.rootIndex), t.roots[t.rootIndex][:])
		trx.Put(storage.Pool.Trees, t.id.PublicKeyBytes(), t.packMeta())
	}

	err = trx.Commit()
	if nil != err {
		l.log.Errorf("commit: write error: %s", err)
		return fault.ErrCommitFailed
	}
	return nil
}

func ownerKey(program *account.Account, hash merkle.Digest) []byte {
	key := append([]byte{}, program.PublicKeyBytes()...)
	return append(key, hash[:]...)
}

func proofAccounts(inputs []stagedInput) []AccountProofInputs {
	accounts := make([]AccountProofInputs, len(inputs))
	for i, in := range inputs {
		root, _ := in.tree.root(in.RootIndex)
		accounts[i] = AccountProofInputs{
			Hash:      in.hash,
			Root:      root,
			RootIndex: in.RootIndex,
			LeafIndex: in.LeafIndex,
			Tree:      in.tree.id,
			Queue:     in.tree.queue,
		}
	}
	return accounts
}

func proofAddresses(addresses []stagedAddress) []AddressProofInputs {
	result := make([]AddressProofInputs, len(addresses))
	for i, a := range addresses {
		root, _ := a.tree.root(a.rootIndex)
		result[i] = AddressProofInputs{
			Address:   a.address,
			Root:      root,
			RootIndex: a.rootIndex,
			Tree:      a.tree.id,
			Queue:     a.tree.queue,
		}
	}
	return result
}

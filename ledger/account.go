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
	"github.com/bitmark-inc/compressed-counter/record"
	"github.com/bitmark-inc/compressed-counter/util"
)

// CompressedAccount - a live record in a state tree
//
// Authority is the signer that wrote the current state
type CompressedAccount struct {
	Hash          merkle.Digest        `json:"hash"`
	Program       *account.Account     `json:"program"`
	Authority     *account.Account     `json:"authority"`
	Address       address.Address      `json:"address"`
	Discriminator record.Discriminator `json:"discriminator"`
	DataHash      merkle.Digest        `json:"dataHash"`
	Data          []byte               `json:"data"`
	Tree          *account.Account     `json:"tree"`
	Queue         *account.Account     `json:"queue"`
	LeafIndex     uint32               `json:"leafIndex"`
}

// AccountHash - the leaf value of a compressed account
//
// binds the owning program, the position in the tree, the address and
// the data commitment
func AccountHash(program *account.Account, leafIndex uint32, tree *account.Account, addr address.Address, discriminator record.Discriminator, dataHash merkle.Digest) merkle.Digest {
	leaf := make([]byte, 4)
	binary.BigEndian.PutUint32(leaf, leafIndex)
	return merkle.Sum(
		program.PublicKeyBytes(),
		leaf,
		tree.PublicKeyBytes(),
		addr[:],
		discriminator[:],
		dataHash[:],
	)
}

func (c *CompressedAccount) pack() []byte {
	buffer := util.PackBytes(nil, c.Program.Bytes())
	buffer = util.PackBytes(buffer, c.Authority.Bytes())
	buffer = append(buffer, c.Address[:]...)
	buffer = append(buffer, c.Discriminator[:]...)
	buffer = append(buffer, c.DataHash[:]...)
	buffer = util.PackBytes(buffer, c.Data)
	buffer = util.PackBytes(buffer, c.Tree.Bytes())
	buffer = util.PackBytes(buffer, c.Queue.Bytes())
	return append(buffer, util.ToVarint64(uint64(c.LeafIndex))...)
}

func unpackAccount(hash merkle.Digest, buffer []byte) (*CompressedAccount, error) {
	c := &CompressedAccount{
		Hash: hash,
	}

	n := 0
	nextAccount := func() (*account.Account, error) {
		b, m, err := util.UnpackBytes(buffer[n:])
		if nil != err {
			return nil, err
		}
		n += m
		return account.FromBytes(b)
	}
	fixed := func(destination []byte) error {
		if n+len(destination) > len(buffer) {
			return fault.ErrDataBufferTooShort
		}
		n += copy(destination, buffer[n:])
		return nil
	}

	var err error
	if c.Program, err = nextAccount(); nil != err {
		return nil, err
	}
	if c.Authority, err = nextAccount(); nil != err {
		return nil, err
	}
	if err = fixed(c.Address[:]); nil != err {
		return nil, err
	}
	if err = fixed(c.Discriminator[:]); nil != err {
		return nil, err
	}
	if err = fixed(c.DataHash[:]); nil != err {
		return nil, err
	}

	data, m, err := util.UnpackBytes(buffer[n:])
	if nil != err {
		return nil, err
	}
	c.Data = data
	n += m

	if c.Tree, err = nextAccount(); nil != err {
		return nil, err
	}
	if c.Queue, err = nextAccount(); nil != err {
		return nil, err
	}

	leafIndex, m, err := util.UnpackVarint64(buffer[n:])
	if nil != err {
		return nil, err
	}
	if n+m != len(buffer) {
		return nil, fault.ErrInvalidLength
	}
	c.LeafIndex = uint32(leafIndex)

	return c, nil
}

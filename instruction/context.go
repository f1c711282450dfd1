// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/compressed-counter/address"
)

// PackedMerkleContext - location of an existing record
//
// tree and queue are indices into the remaining accounts of the
// instruction
type PackedMerkleContext struct {
	MerkleTreeIndex uint8  `json:"merkleTreeIndex"`
	QueueIndex      uint8  `json:"queueIndex"`
	LeafIndex       uint32 `json:"leafIndex"`
}

// PackedAddressMerkleContext - address tree to derive a new address against
type PackedAddressMerkleContext struct {
	AddressMerkleTreeIndex uint8  `json:"addressMerkleTreeIndex"`
	AddressQueueIndex      uint8  `json:"addressQueueIndex"`
	RootIndex              uint16 `json:"rootIndex"`
}

// CompressedAccountMeta - everything needed to claim an existing record
type CompressedAccountMeta struct {
	MerkleContext         PackedMerkleContext `json:"merkleContext"`
	Address               address.Address     `json:"address"`
	RootIndex             uint16              `json:"rootIndex"`
	OutputMerkleTreeIndex uint8               `json:"outputMerkleTreeIndex"`
}

// NewAddressParamsPacked - request to create an address from a seed
type NewAddressParamsPacked struct {
	Seed                       address.Seed `json:"seed"`
	AddressQueueIndex          uint8        `json:"addressQueueIndex"`
	AddressMerkleTreeIndex     uint8        `json:"addressMerkleTreeIndex"`
	AddressMerkleTreeRootIndex uint16       `json:"addressMerkleTreeRootIndex"`
}

// NewAddressParams - combine the packed address tree with a derived seed
func (c PackedAddressMerkleContext) NewAddressParams(seed address.Seed) NewAddressParamsPacked {
	return NewAddressParamsPacked{
		Seed:                       seed,
		AddressQueueIndex:          c.AddressQueueIndex,
		AddressMerkleTreeIndex:     c.AddressMerkleTreeIndex,
		AddressMerkleTreeRootIndex: c.RootIndex,
	}
}

func (c PackedMerkleContext) pack(buffer []byte) []byte {
	buffer = appendUint(buffer, uint64(c.MerkleTreeIndex))
	buffer = appendUint(buffer, uint64(c.QueueIndex))
	return appendUint(buffer, uint64(c.LeafIndex))
}

func (u *unpacker) merkleContext() PackedMerkleContext {
	return PackedMerkleContext{
		MerkleTreeIndex: u.uint8(),
		QueueIndex:      u.uint8(),
		LeafIndex:       u.uint32(),
	}
}

func (c PackedAddressMerkleContext) pack(buffer []byte) []byte {
	buffer = appendUint(buffer, uint64(c.AddressMerkleTreeIndex))
	buffer = appendUint(buffer, uint64(c.AddressQueueIndex))
	return appendUint(buffer, uint64(c.RootIndex))
}

func (u *unpacker) addressMerkleContext() PackedAddressMerkleContext {
	return PackedAddressMerkleContext{
		AddressMerkleTreeIndex: u.uint8(),
		AddressQueueIndex:      u.uint8(),
		RootIndex:              u.uint16(),
	}
}

func (m CompressedAccountMeta) pack(buffer []byte) []byte {
	buffer = m.MerkleContext.pack(buffer)
	buffer = append(buffer, m.Address[:]...)
	buffer = appendUint(buffer, uint64(m.RootIndex))
	return appendUint(buffer, uint64(m.OutputMerkleTreeIndex))
}

func (u *unpacker) accountMeta() CompressedAccountMeta {
	m := CompressedAccountMeta{
		MerkleContext: u.merkleContext(),
	}
	copy(m.Address[:], u.fixed(address.Length))
	m.RootIndex = u.uint16()
	m.OutputMerkleTreeIndex = u.uint8()
	return m
}

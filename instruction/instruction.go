// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - argument encodings for the counter program and
// the signed envelope that carries them
package instruction

import (
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/proof"
)

// Tag - type code for instruction arguments
type Tag uint64

// enumerate the possible instructions
const (
	NullTag      Tag = iota // not a valid instruction
	CreateTag    Tag = iota
	IncrementTag Tag = iota
	DeleteTag    Tag = iota

	// this item must be last
	InvalidTag Tag = iota
)

// String - name of the instruction
func (t Tag) String() string {
	switch t {
	case CreateTag:
		return "create"
	case IncrementTag:
		return "increment"
	case DeleteTag:
		return "delete"
	default:
		return "*unknown*"
	}
}

// Packed - packed instruction arguments
type Packed []byte

// Arguments - generic argument interface
type Arguments interface {
	Tag() Tag
	Pack() Packed
}

// Create - arguments to create a counter
type Create struct {
	Proof                proof.ValidityProof        `json:"proof"`
	AddressTreeInfo      PackedAddressMerkleContext `json:"addressTreeInfo"`
	OutputStateTreeIndex uint8                      `json:"outputStateTreeIndex"`
}

// Increment - arguments to increment a counter
type Increment struct {
	Proof        proof.ValidityProof   `json:"proof"`
	CounterValue uint64                `json:"counterValue"`
	AccountMeta  CompressedAccountMeta `json:"accountMeta"`
}

// Delete - arguments to close a counter
type Delete struct {
	Proof        proof.ValidityProof   `json:"proof"`
	CounterValue uint64                `json:"counterValue"`
	AccountMeta  CompressedAccountMeta `json:"accountMeta"`
}

// Tag - type code
func (c *Create) Tag() Tag { return CreateTag }

// Tag - type code
func (i *Increment) Tag() Tag { return IncrementTag }

// Tag - type code
func (d *Delete) Tag() Tag { return DeleteTag }

// Pack - tag, proof, address tree, output tree
func (c *Create) Pack() Packed {
	buffer := packHeader(CreateTag, c.Proof)
	buffer = c.AddressTreeInfo.pack(buffer)
	return appendUint(buffer, uint64(c.OutputStateTreeIndex))
}

// Pack - tag, proof, claimed counter, account meta
func (i *Increment) Pack() Packed {
	return packExisting(IncrementTag, i.Proof, i.CounterValue, i.AccountMeta)
}

// Pack - tag, proof, claimed counter, account meta
func (d *Delete) Pack() Packed {
	return packExisting(DeleteTag, d.Proof, d.CounterValue, d.AccountMeta)
}

func packHeader(tag Tag, p proof.ValidityProof) []byte {
	buffer := appendUint(nil, uint64(tag))
	return append(buffer, packProof(p)...)
}

func packProof(p proof.ValidityProof) []byte {
	b := p.Bytes()
	return append(appendUint(nil, uint64(len(b))), b...)
}

func packExisting(tag Tag, p proof.ValidityProof, value uint64, meta CompressedAccountMeta) Packed {
	buffer := packHeader(tag, p)
	buffer = appendUint(buffer, value)
	return meta.pack(buffer)
}

// Unpack - decode arguments
//
// the result must be cast to the correct type
//
//	switch args := result.(type) {
//	case *instruction.Create:
func (record Packed) Unpack() (Arguments, int, error) {
	u := &unpacker{buffer: record}

	tag := Tag(u.uint64())
	if nil != u.err {
		return nil, 0, u.err
	}

	var validity proof.ValidityProof
	if tag > NullTag && tag < InvalidTag {
		var err error
		validity, err = proof.FromBytes(u.bytes())
		if nil == u.err && nil != err {
			return nil, 0, err
		}
	}

	var result Arguments
	switch tag {
	case CreateTag:
		result = &Create{
			Proof:                validity,
			AddressTreeInfo:      u.addressMerkleContext(),
			OutputStateTreeIndex: u.uint8(),
		}

	case IncrementTag:
		result = &Increment{
			Proof:        validity,
			CounterValue: u.uint64(),
			AccountMeta:  u.accountMeta(),
		}

	case DeleteTag:
		result = &Delete{
			Proof:        validity,
			CounterValue: u.uint64(),
			AccountMeta:  u.accountMeta(),
		}

	default:
		return nil, 0, fault.ErrUnknownInstruction
	}

	if nil != u.err {
		return nil, 0, u.err
	}
	return result, u.n, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/address"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/instruction"
	"github.com/bitmark-inc/compressed-counter/proof"
	"github.com/bitmark-inc/compressed-counter/util"
)

func makeProof(fill byte) proof.ValidityProof {
	c := proof.CompressedProof{}
	c.A[0] = fill
	c.B[63] = fill
	c.C[31] = fill
	return proof.New(c)
}

func makeMeta() instruction.CompressedAccountMeta {
	return instruction.CompressedAccountMeta{
		MerkleContext: instruction.PackedMerkleContext{
			MerkleTreeIndex: 2,
			QueueIndex:      3,
			LeafIndex:       70000,
		},
		Address:               address.Address{0x00, 0x01, 0x02},
		RootIndex:             2399,
		OutputMerkleTreeIndex: 2,
	}
}

func TestCreate(t *testing.T) {
	c := &instruction.Create{
		Proof: makeProof(7),
		AddressTreeInfo: instruction.PackedAddressMerkleContext{
			AddressMerkleTreeIndex: 0,
			AddressQueueIndex:      1,
			RootIndex:              300,
		},
		OutputStateTreeIndex: 2,
	}

	packed := c.Pack()
	result, n, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, len(packed), n, "consumed")

	r, ok := result.(*instruction.Create)
	assert.True(t, ok, "type")
	assert.Equal(t, instruction.CreateTag, r.Tag(), "tag")
	assert.Equal(t, c.AddressTreeInfo, r.AddressTreeInfo, "address tree")
	assert.Equal(t, c.OutputStateTreeIndex, r.OutputStateTreeIndex, "output tree")
	assert.Equal(t, c.Proof.Bytes(), r.Proof.Bytes(), "proof")
}

func TestIncrementAndDelete(t *testing.T) {
	items := []instruction.Arguments{
		&instruction.Increment{Proof: makeProof(1), CounterValue: 0xffffffffffffffff, AccountMeta: makeMeta()},
		&instruction.Delete{Proof: makeProof(2), CounterValue: 1, AccountMeta: makeMeta()},
	}

	for i, item := range items {
		result, _, err := item.Pack().Unpack()
		assert.Nil(t, err, "%d: unpack", i)
		assert.Equal(t, item.Tag(), result.Tag(), "%d: tag", i)

		switch r := result.(type) {
		case *instruction.Increment:
			original := item.(*instruction.Increment)
			assert.Equal(t, original.CounterValue, r.CounterValue, "%d: counter", i)
			assert.Equal(t, original.AccountMeta, r.AccountMeta, "%d: meta", i)
		case *instruction.Delete:
			original := item.(*instruction.Delete)
			assert.Equal(t, original.CounterValue, r.CounterValue, "%d: counter", i)
			assert.Equal(t, original.AccountMeta, r.AccountMeta, "%d: meta", i)
		default:
			t.Errorf("%d: unexpected type: %T", i, result)
		}
	}
}

func TestUnpackErrors(t *testing.T) {
	_, _, err := instruction.Packed{0x09}.Unpack()
	assert.Equal(t, fault.ErrUnknownInstruction, err, "unknown tag")

	_, _, err = instruction.Packed{}.Unpack()
	assert.Equal(t, fault.ErrDataBufferTooShort, err, "empty")

	packed := (&instruction.Delete{Proof: makeProof(2), AccountMeta: makeMeta()}).Pack()
	_, _, err = packed[:len(packed)-20].Unpack()
	assert.Equal(t, fault.ErrDataBufferTooShort, err, "truncated")

	// tag followed by a proof of the wrong size
	_, _, err = instruction.Packed{0x01, 0x02, 0xaa, 0xbb, 0x00, 0x00, 0x00, 0x00}.Unpack()
	assert.Equal(t, fault.ErrInvalidProofLength, err, "bad proof")
}

func TestSignTooManyAccounts(t *testing.T) {
	signerKey, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "signer key")

	accounts := make([]*account.Account, 256)
	for n := range accounts {
		accounts[n] = signerKey.Account()
	}
	i := &instruction.Instruction{
		Program:  signerKey.Account(),
		Signer:   signerKey.Account(),
		Accounts: accounts,
		Data:     (&instruction.Delete{}).Pack(),
	}
	_, err = i.Sign(signerKey)
	assert.Equal(t, fault.ErrInvalidCount, err, "256 accounts")

	i.Accounts = accounts[:255]
	signed, err := i.Sign(signerKey)
	assert.Nil(t, err, "255 accounts")
	decoded, err := instruction.UnpackSignedHex(signed.String())
	assert.Nil(t, err, "unpack")
	assert.Equal(t, 255, len(decoded.Accounts), "decoded accounts")
}

func TestUnpackSignedInvalidLength(t *testing.T) {
	huge := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	k, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "key")
	key := k.Account().Bytes()

	// program and signer followed by the rest of the message
	message := func(rest ...byte) []byte {
		m := util.PackBytes(nil, key)
		m = util.PackBytes(m, key)
		return append(m, rest...)
	}
	envelope := func(m []byte) string {
		buffer := util.PackBytes(nil, m)
		buffer = util.PackBytes(buffer, make([]byte, 64))
		return hex.EncodeToString(buffer)
	}

	items := []struct {
		name    string
		encoded string
		err     error
	}{
		{"huge message length", hex.EncodeToString(huge), fault.ErrDataBufferTooShort},
		{"huge message length with data", hex.EncodeToString(append(huge, 0x01, 0x02, 0x03)), fault.ErrDataBufferTooShort},
		{"truncated message", "0501", fault.ErrDataBufferTooShort},
		{"huge program length", envelope(huge), fault.ErrDataBufferTooShort},
		{"huge account count", envelope(message(huge...)), fault.ErrInvalidCount},
		{"too many accounts", envelope(message(0x80, 0x02)), fault.ErrInvalidCount},
		{"huge account length", envelope(message(append([]byte{0x01}, huge...)...)), fault.ErrDataBufferTooShort},
		{"huge data length", envelope(message(append([]byte{0x00}, huge...)...)), fault.ErrDataBufferTooShort},
	}

	for _, item := range items {
		assert.NotPanics(t, func() {
			signed, err := instruction.UnpackSignedHex(item.encoded)
			assert.Equal(t, item.err, err, "%s: error", item.name)
			assert.Nil(t, signed, "%s: signed", item.name)
		}, item.name)
	}
}

func TestSigned(t *testing.T) {
	signerKey, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "signer key")
	otherKey, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "other key")

	i := &instruction.Instruction{
		Program:  otherKey.Account(),
		Signer:   signerKey.Account(),
		Accounts: []*account.Account{otherKey.Account(), signerKey.Account()},
		Data:     (&instruction.Increment{Proof: makeProof(3), CounterValue: 5, AccountMeta: makeMeta()}).Pack(),
	}

	_, err = i.Sign(otherKey)
	assert.Equal(t, fault.ErrMissingSigner, err, "wrong key")

	signed, err := i.Sign(signerKey)
	assert.Nil(t, err, "sign")
	assert.Nil(t, signed.Verify(), "verify")

	decoded, err := instruction.UnpackSignedHex(signed.String())
	assert.Nil(t, err, "unpack")
	assert.Nil(t, decoded.Verify(), "verify decoded")
	assert.True(t, decoded.Program.Equal(i.Program), "program")
	assert.True(t, decoded.Signer.Equal(i.Signer), "signer")
	assert.Equal(t, 2, len(decoded.Accounts), "accounts")
	assert.Equal(t, i.Data, decoded.Data, "data")

	// replace the data after signing
	decoded.Data = (&instruction.Increment{Proof: makeProof(3), CounterValue: 6, AccountMeta: makeMeta()}).Pack()
	assert.Equal(t, fault.ErrInvalidSignature, decoded.Verify(), "tampered")

	buffer, err := signed.Pack()
	assert.Nil(t, err, "pack")
	_, err = instruction.UnpackSigned(append(buffer, 0x00))
	assert.Equal(t, fault.ErrInvalidLength, err, "trailing data")
}

func TestNewAddressParams(t *testing.T) {
	c := instruction.PackedAddressMerkleContext{
		AddressMerkleTreeIndex: 4,
		AddressQueueIndex:      5,
		RootIndex:              6,
	}
	seed := address.Seed{0x00, 0x99}
	p := c.NewAddressParams(seed)
	assert.Equal(t, seed, p.Seed, "seed")
	assert.Equal(t, uint8(4), p.AddressMerkleTreeIndex, "tree")
	assert.Equal(t, uint8(5), p.AddressQueueIndex, "queue")
	assert.Equal(t, uint16(6), p.AddressMerkleTreeRootIndex, "root index")
}

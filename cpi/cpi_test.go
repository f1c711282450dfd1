// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpi_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/address"
	"github.com/bitmark-inc/compressed-counter/cpi"
	"github.com/bitmark-inc/compressed-counter/cpi/mocks"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/instruction"
	"github.com/bitmark-inc/compressed-counter/proof"
	"github.com/bitmark-inc/compressed-counter/record"
)

func makeAccount(t *testing.T, fill byte) *account.Account {
	key := make([]byte, 32)
	for i := range key {
		key[i] = fill
	}
	a, err := account.New(key, true)
	assert.Nil(t, err, "account")
	return a
}

func makeProof() proof.ValidityProof {
	return proof.New(proof.CompressedProof{A: [32]byte{1}})
}

// signer, program, then remaining: address tree, address queue, state tree, state queue
func makeAccounts(t *testing.T) (*cpi.Accounts, []*account.Account) {
	remaining := []*account.Account{
		makeAccount(t, 0xa0),
		makeAccount(t, 0xa1),
		makeAccount(t, 0xb0),
		makeAccount(t, 0xb1),
	}
	accounts, err := cpi.NewAccounts(makeAccount(t, 0x01), makeAccount(t, 0x02), remaining)
	assert.Nil(t, err, "accounts")
	return accounts, remaining
}

func TestNewAccounts(t *testing.T) {
	_, err := cpi.NewAccounts(nil, makeAccount(t, 2), nil)
	assert.Equal(t, fault.ErrMissingSigner, err, "signer")

	_, err = cpi.NewAccounts(makeAccount(t, 1), nil, nil)
	assert.Equal(t, fault.ErrInvalidProgram, err, "program")

	accounts, remaining := makeAccounts(t)
	tree, err := accounts.TreeAccount(2)
	assert.Nil(t, err, "in range")
	assert.True(t, remaining[2].Equal(tree), "resolved")

	_, err = accounts.TreeAccount(4)
	assert.Equal(t, fault.ErrInvalidTreeIndex, err, "out of range")
}

func TestInvokeCreate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	accounts, remaining := makeAccounts(t)

	h := record.NewInit(address.Address{0x00, 0x07}, 2)
	h.Owner = accounts.Signer()
	diff, err := h.Diff()
	assert.Nil(t, err, "diff")

	params := instruction.PackedAddressMerkleContext{
		AddressMerkleTreeIndex: 0,
		AddressQueueIndex:      1,
		RootIndex:              5,
	}.NewAddressParams(address.Seed{0x00, 0x08})

	p := makeProof()
	sink := mocks.NewMockSink(ctl)
	sink.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *cpi.Request) error {
			assert.True(t, accounts.Signer().Equal(r.Signer), "signer")
			assert.True(t, accounts.Program().Equal(r.Program), "program")
			assert.Equal(t, p.Bytes(), r.Proof.Bytes(), "proof forwarded")
			assert.Equal(t, 0, len(r.Inputs), "inputs")
			assert.Equal(t, 1, len(r.Outputs), "outputs")
			assert.True(t, remaining[2].Equal(r.Outputs[0].Tree), "output tree")
			assert.Equal(t, diff.Output.DataHash, r.Outputs[0].DataHash, "output hash")
			assert.Equal(t, 1, len(r.NewAddresses), "new addresses")
			assert.True(t, remaining[0].Equal(r.NewAddresses[0].Tree), "address tree")
			assert.True(t, remaining[1].Equal(r.NewAddresses[0].Queue), "address queue")
			assert.Equal(t, uint16(5), r.NewAddresses[0].RootIndex, "root index")
			expected := []proof.Claim{{
				Kind:      proof.NonInclusion,
				Subject:   address.Seed{0x00, 0x08},
				RootIndex: 5,
			}}
			assert.Equal(t, expected, r.Claims, "claims")
			return nil
		}).Times(1)

	inputs := cpi.NewInputsWithAddress(p, []*record.Diff{diff}, []instruction.NewAddressParamsPacked{params})
	assert.Nil(t, inputs.Invoke(context.Background(), accounts, sink), "invoke")

	err = inputs.Invoke(context.Background(), accounts, sink)
	assert.Equal(t, fault.ErrValidityProofConsumed, err, "second invoke")
}

func TestInvokeMutate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	accounts, remaining := makeAccounts(t)
	meta := instruction.CompressedAccountMeta{
		MerkleContext: instruction.PackedMerkleContext{
			MerkleTreeIndex: 2,
			QueueIndex:      3,
			LeafIndex:       12,
		},
		Address:               address.Address{0x00, 0x07},
		RootIndex:             3,
		OutputMerkleTreeIndex: 2,
	}
	h, err := record.NewMutate(meta, record.Counter{Owner: accounts.Signer(), Value: 0})
	assert.Nil(t, err, "handle")
	h.Value += 1
	diff, err := h.Diff()
	assert.Nil(t, err, "diff")

	sink := mocks.NewMockSink(ctl)
	sink.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *cpi.Request) error {
			assert.Equal(t, 1, len(r.Inputs), "inputs")
			assert.True(t, remaining[2].Equal(r.Inputs[0].Tree), "input tree")
			assert.True(t, remaining[3].Equal(r.Inputs[0].Queue), "input queue")
			assert.Equal(t, uint32(12), r.Inputs[0].LeafIndex, "leaf index")
			assert.Equal(t, uint16(3), r.Inputs[0].RootIndex, "root index")
			assert.Equal(t, diff.Input.DataHash, r.Inputs[0].DataHash, "claimed hash")
			assert.Equal(t, 1, len(r.Outputs), "outputs")
			assert.Equal(t, 0, len(r.NewAddresses), "no new address")
			expected := []proof.Claim{{
				Kind:      proof.Inclusion,
				Subject:   diff.Input.DataHash,
				RootIndex: 3,
			}}
			assert.Equal(t, expected, r.Claims, "claims")
			return nil
		}).Times(1)

	assert.Nil(t, cpi.NewInputs(makeProof(), diff).Invoke(context.Background(), accounts, sink), "invoke")
}

func TestInvokeSinkErrorVerbatim(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	accounts, _ := makeAccounts(t)
	h, err := record.NewClose(instruction.CompressedAccountMeta{}, record.Counter{Owner: accounts.Signer()})
	assert.Nil(t, err, "handle")
	diff, err := h.Diff()
	assert.Nil(t, err, "diff")

	sink := mocks.NewMockSink(ctl)
	sink.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(fault.ErrInputSpent).Times(1)

	err = cpi.NewInputs(makeProof(), diff).Invoke(context.Background(), accounts, sink)
	assert.Equal(t, fault.ErrInputSpent, err, "sink error")
}

func TestInvokeRejectsBeforeSink(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	accounts, _ := makeAccounts(t)
	sink := mocks.NewMockSink(ctl)
	sink.EXPECT().Commit(gomock.Any(), gomock.Any()).Times(0)

	h, err := record.NewClose(instruction.CompressedAccountMeta{}, record.Counter{Owner: accounts.Signer()})
	assert.Nil(t, err, "handle")
	diff, err := h.Diff()
	assert.Nil(t, err, "diff")

	err = cpi.NewInputs(proof.ValidityProof{}, diff).Invoke(context.Background(), accounts, sink)
	assert.Equal(t, fault.ErrMissingValidityProof, err, "claim without proof")

	h = record.NewInit(address.Address{}, 9)
	h.Owner = accounts.Signer()
	diff, err = h.Diff()
	assert.Nil(t, err, "diff")

	err = cpi.NewInputs(makeProof(), diff).Invoke(context.Background(), accounts, sink)
	assert.Equal(t, fault.ErrUnboundValidityProof, err, "proof without claim")

	err = cpi.NewInputs(proof.ValidityProof{}, diff).Invoke(context.Background(), accounts, sink)
	assert.Equal(t, fault.ErrInvalidTreeIndex, err, "output tree out of range")
}

func TestInvokeConcurrentOnce(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	accounts, _ := makeAccounts(t)
	h, err := record.NewClose(instruction.CompressedAccountMeta{}, record.Counter{Owner: accounts.Signer()})
	assert.Nil(t, err, "handle")
	diff, err := h.Diff()
	assert.Nil(t, err, "diff")

	sink := mocks.NewMockSink(ctl)
	sink.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	const callers = 8
	inputs := cpi.NewInputs(makeProof(), diff)
	errs := make(chan error, callers)
	for n := 0; n < callers; n += 1 {
		go func() {
			errs <- inputs.Invoke(context.Background(), accounts, sink)
		}()
	}

	committed := 0
	for n := 0; n < callers; n += 1 {
		err := <-errs
		if nil == err {
			committed += 1
			continue
		}
		assert.Equal(t, fault.ErrValidityProofConsumed, err, "later invoke")
	}
	assert.Equal(t, 1, committed, "single commit")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/compressed-counter/address"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/instruction"
	"github.com/bitmark-inc/compressed-counter/merkle"
)

// Mode - lifecycle intent of a handle
type Mode int

// handle modes
const (
	ModeInit   Mode = iota // new record: output only
	ModeMutate Mode = iota // existing record: input and output
	ModeClose  Mode = iota // existing record: input only
)

// String - name of the mode
func (m Mode) String() string {
	switch m {
	case ModeInit:
		return "init"
	case ModeMutate:
		return "mutate"
	case ModeClose:
		return "close"
	default:
		return "*unknown*"
	}
}

// Input - prior-state claim for an existing record
type Input struct {
	Discriminator Discriminator
	DataHash      merkle.Digest
	MerkleContext instruction.PackedMerkleContext
	RootIndex     uint16
}

// Output - new state of a record
type Output struct {
	Discriminator   Discriminator
	DataHash        merkle.Digest
	Data            []byte
	OutputTreeIndex uint8
}

// Diff - the change one handle makes
type Diff struct {
	Address address.Address
	Input   *Input
	Output  *Output
}

// Handle - a counter bound to its proof context and lifecycle intent
//
// the counter may be changed freely until Diff is taken, after which
// the handle is spent
type Handle struct {
	Counter

	mode            Mode
	address         address.Address
	outputTreeIndex uint8
	input           *Input
	consumed        bool
}

// NewInit - a record that does not exist yet
func NewInit(addr address.Address, outputTreeIndex uint8) *Handle {
	return &Handle{
		mode:            ModeInit,
		address:         addr,
		outputTreeIndex: outputTreeIndex,
	}
}

// NewMutate - an existing record that will be updated
//
// the claimed counter is taken as given, it is authenticated only by
// the validity proof that accompanies the diff
func NewMutate(meta instruction.CompressedAccountMeta, counter Counter) (*Handle, error) {
	return newExisting(ModeMutate, meta, counter)
}

// NewClose - an existing record that will be removed
func NewClose(meta instruction.CompressedAccountMeta, counter Counter) (*Handle, error) {
	return newExisting(ModeClose, meta, counter)
}

func newExisting(mode Mode, meta instruction.CompressedAccountMeta, counter Counter) (*Handle, error) {
	dataHash, err := counter.DataHash()
	if nil != err {
		return nil, err
	}
	return &Handle{
		Counter:         counter,
		mode:            mode,
		address:         meta.Address,
		outputTreeIndex: meta.OutputMerkleTreeIndex,
		input: &Input{
			Discriminator: CounterDiscriminator,
			DataHash:      dataHash,
			MerkleContext: meta.MerkleContext,
			RootIndex:     meta.RootIndex,
		},
	}, nil
}

// Mode - lifecycle intent
func (h *Handle) Mode() Mode {
	return h.mode
}

// Address - the record address
func (h *Handle) Address() address.Address {
	return h.address
}

// Diff - produce the record diff, once only
func (h *Handle) Diff() (*Diff, error) {
	if h.consumed {
		return nil, fault.ErrHandleConsumed
	}

	d := &Diff{
		Address: h.address,
		Input:   h.input,
	}

	if ModeClose != h.mode {
		data, err := h.Counter.Pack()
		if nil != err {
			return nil, err
		}
		dataHash, err := h.Counter.DataHash()
		if nil != err {
			return nil, err
		}
		d.Output = &Output{
			Discriminator:   CounterDiscriminator,
			DataHash:        dataHash,
			Data:            data,
			OutputTreeIndex: h.outputTreeIndex,
		}
	}

	h.consumed = true
	return d, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpi

import (
	"context"

	"github.com/bitmark-inc/compressed-counter/instruction"
	"github.com/bitmark-inc/compressed-counter/proof"
	"github.com/bitmark-inc/compressed-counter/record"
)

// Inputs - a validity proof with the diffs and new addresses it covers
//
// the proof is bound to the claims when inputs are made and the
// binding is released to the sink once
type Inputs struct {
	gate         *proof.Gate
	err          error
	diffs        []*record.Diff
	newAddresses []instruction.NewAddressParamsPacked
}

// NewInputs - diffs of existing records
func NewInputs(p proof.ValidityProof, diffs ...*record.Diff) *Inputs {
	return bind(p, diffs, nil)
}

// NewInputsWithAddress - diffs together with address creation requests
func NewInputsWithAddress(p proof.ValidityProof, diffs []*record.Diff, newAddresses []instruction.NewAddressParamsPacked) *Inputs {
	return bind(p, diffs, newAddresses)
}

func bind(p proof.ValidityProof, diffs []*record.Diff, newAddresses []instruction.NewAddressParamsPacked) *Inputs {
	i := &Inputs{
		diffs:        diffs,
		newAddresses: newAddresses,
	}
	i.gate, i.err = proof.Bind(p, i.claims())
	return i
}

// claims in request order: inputs first, then new addresses
func (i *Inputs) claims() []proof.Claim {
	claims := make([]proof.Claim, 0, len(i.diffs)+len(i.newAddresses))
	for _, d := range i.diffs {
		if nil == d.Input {
			continue
		}
		claims = append(claims, proof.Claim{
			Kind:      proof.Inclusion,
			Subject:   d.Input.DataHash,
			RootIndex: d.Input.RootIndex,
		})
	}
	for _, a := range i.newAddresses {
		claims = append(claims, proof.Claim{
			Kind:      proof.NonInclusion,
			Subject:   a.Seed,
			RootIndex: a.AddressMerkleTreeRootIndex,
		})
	}
	return claims
}

// Invoke - submit everything to the sink as one request
//
// inputs can be invoked once; an error from the sink is returned as is
func (i *Inputs) Invoke(ctx context.Context, accounts *Accounts, sink Sink) error {
	if nil != i.err {
		return i.err
	}
	attestation, err := i.gate.Consume()
	if nil != err {
		return err
	}

	request, err := i.resolve(accounts, attestation)
	if nil != err {
		return err
	}

	return sink.Commit(ctx, request)
}

func (i *Inputs) resolve(accounts *Accounts, attestation *proof.Attestation) (*Request, error) {
	request := &Request{
		Program:      accounts.Program(),
		Signer:       accounts.Signer(),
		Proof:        attestation.Proof,
		Claims:       attestation.Claims,
		Inputs:       make([]InputAccount, 0, len(i.diffs)),
		Outputs:      make([]OutputAccount, 0, len(i.diffs)),
		NewAddresses: make([]NewAddress, 0, len(i.newAddresses)),
	}

	for _, d := range i.diffs {
		if nil != d.Input {
			tree, err := accounts.TreeAccount(d.Input.MerkleContext.MerkleTreeIndex)
			if nil != err {
				return nil, err
			}
			queue, err := accounts.TreeAccount(d.Input.MerkleContext.QueueIndex)
			if nil != err {
				return nil, err
			}
			request.Inputs = append(request.Inputs, InputAccount{
				Address:       d.Address,
				Discriminator: d.Input.Discriminator,
				DataHash:      d.Input.DataHash,
				Tree:          tree,
				Queue:         queue,
				LeafIndex:     d.Input.MerkleContext.LeafIndex,
				RootIndex:     d.Input.RootIndex,
			})
		}
		if nil != d.Output {
			tree, err := accounts.TreeAccount(d.Output.OutputTreeIndex)
			if nil != err {
				return nil, err
			}
			request.Outputs = append(request.Outputs, OutputAccount{
				Address:       d.Address,
				Discriminator: d.Output.Discriminator,
				DataHash:      d.Output.DataHash,
				Data:          d.Output.Data,
				Tree:          tree,
			})
		}
	}

	for _, a := range i.newAddresses {
		tree, err := accounts.TreeAccount(a.AddressMerkleTreeIndex)
		if nil != err {
			return nil, err
		}
		queue, err := accounts.TreeAccount(a.AddressQueueIndex)
		if nil != err {
			return nil, err
		}
		request.NewAddresses = append(request.NewAddresses, NewAddress{
			Seed:      a.Seed,
			Tree:      tree,
			Queue:     queue,
			RootIndex: a.AddressMerkleTreeRootIndex,
		})
	}

	return request, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"context"

	"github.com/bitmark-inc/compressed-counter/address"
	"github.com/bitmark-inc/compressed-counter/cpi"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/instruction"
)

// Result - outcome of a processed instruction
type Result struct {
	Tag     instruction.Tag  `json:"instruction"`
	Address *address.Address `json:"address,omitempty"`
}

// Process - authenticate a signed instruction and run it
func (p *Program) Process(ctx context.Context, signed *instruction.Signed, sink cpi.Sink) (*Result, error) {
	if err := signed.Verify(); nil != err {
		p.log.Debugf("process: signature error: %s", err)
		return nil, err
	}
	if !p.id.Equal(signed.Program) {
		return nil, fault.ErrInvalidProgram
	}

	args, n, err := signed.Data.Unpack()
	if nil != err {
		return nil, err
	}
	if n != len(signed.Data) {
		return nil, fault.ErrInvalidLength
	}

	c := &Context{
		Signer:   signed.Signer,
		Accounts: signed.Accounts,
		Sink:     sink,
	}

	result := &Result{
		Tag: args.Tag(),
	}

	switch a := args.(type) {
	case *instruction.Create:
		addr, err := p.Create(ctx, c, a.Proof, a.AddressTreeInfo, a.OutputStateTreeIndex)
		if nil != err {
			return nil, err
		}
		result.Address = &addr

	case *instruction.Increment:
		err = p.Increment(ctx, c, a.Proof, a.CounterValue, a.AccountMeta)

	case *instruction.Delete:
		err = p.Delete(ctx, c, a.Proof, a.CounterValue, a.AccountMeta)

	default:
		err = fault.ErrUnknownInstruction
	}

	if nil != err {
		return nil, err
	}
	return result, nil
}

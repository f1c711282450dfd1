// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"context"

	"github.com/bitmark-inc/compressed-counter/address"
	"github.com/bitmark-inc/compressed-counter/cpi"
	"github.com/bitmark-inc/compressed-counter/instruction"
	"github.com/bitmark-inc/compressed-counter/proof"
	"github.com/bitmark-inc/compressed-counter/record"
)

// Create - a new counter at zero for the signer
//
// the proof must attest that the derived address is absent from the
// address tree at addressTree.RootIndex
func (p *Program) Create(ctx context.Context, c *Context, validity proof.ValidityProof, addressTree instruction.PackedAddressMerkleContext, outputTreeIndex uint8) (address.Address, error) {
	accounts, err := p.accounts(c)
	if nil != err {
		return address.Address{}, err
	}

	tree, err := accounts.TreeAccount(addressTree.AddressMerkleTreeIndex)
	if nil != err {
		return address.Address{}, err
	}
	addr, seed := DeriveAddress(p.id, c.Signer, tree)

	h := record.NewInit(addr, outputTreeIndex)
	h.Owner = c.Signer

	diff, err := h.Diff()
	if nil != err {
		return address.Address{}, err
	}

	inputs := cpi.NewInputsWithAddress(
		validity,
		[]*record.Diff{diff},
		[]instruction.NewAddressParamsPacked{addressTree.NewAddressParams(seed)},
	)
	err = inputs.Invoke(ctx, accounts, c.Sink)
	if nil != err {
		p.log.Warnf("create: owner: %s  address: %s  error: %s", c.Signer, addr, err)
		return address.Address{}, err
	}

	p.log.Infof("create: owner: %s  address: %s", c.Signer, addr)
	return addr, nil
}

// Increment - add one to the signer's counter
//
// counterValue is the caller's claim of the current value, it is
// authenticated only by the proof
func (p *Program) Increment(ctx context.Context, c *Context, validity proof.ValidityProof, counterValue uint64, meta instruction.CompressedAccountMeta) error {
	accounts, err := p.accounts(c)
	if nil != err {
		return err
	}

	h, err := record.NewMutate(meta, record.Counter{Owner: c.Signer, Value: counterValue})
	if nil != err {
		return err
	}

	// wraps at the integer boundary
	h.Value += 1

	diff, err := h.Diff()
	if nil != err {
		return err
	}

	err = cpi.NewInputs(validity, diff).Invoke(ctx, accounts, c.Sink)
	if nil != err {
		p.log.Warnf("increment: owner: %s  address: %s  claimed: %d  error: %s", c.Signer, meta.Address, counterValue, err)
		return err
	}

	p.log.Debugf("increment: owner: %s  address: %s  value: %d", c.Signer, meta.Address, h.Value)
	return nil
}

// Delete - close the signer's counter
func (p *Program) Delete(ctx context.Context, c *Context, validity proof.ValidityProof, counterValue uint64, meta instruction.CompressedAccountMeta) error {
	accounts, err := p.accounts(c)
	if nil != err {
		return err
	}

	h, err := record.NewClose(meta, record.Counter{Owner: c.Signer, Value: counterValue})
	if nil != err {
		return err
	}

	diff, err := h.Diff()
	if nil != err {
		return err
	}

	err = cpi.NewInputs(validity, diff).Invoke(ctx, accounts, c.Sink)
	if nil != err {
		p.log.Warnf("delete: owner: %s  address: %s  claimed: %d  error: %s", c.Signer, meta.Address, counterValue, err)
		return err
	}

	p.log.Infof("delete: owner: %s  address: %s", c.Signer, meta.Address)
	return nil
}

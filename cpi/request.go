// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpi

import (
	"context"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/address"
	"github.com/bitmark-inc/compressed-counter/merkle"
	"github.com/bitmark-inc/compressed-counter/proof"
	"github.com/bitmark-inc/compressed-counter/record"
)

// InputAccount - an existing record to be nullified
type InputAccount struct {
	Address       address.Address      `json:"address"`
	Discriminator record.Discriminator `json:"discriminator"`
	DataHash      merkle.Digest        `json:"dataHash"`
	Tree          *account.Account     `json:"tree"`
	Queue         *account.Account     `json:"queue"`
	LeafIndex     uint32               `json:"leafIndex"`
	RootIndex     uint16               `json:"rootIndex"`
}

// OutputAccount - a record to be appended
type OutputAccount struct {
	Address       address.Address      `json:"address"`
	Discriminator record.Discriminator `json:"discriminator"`
	DataHash      merkle.Digest        `json:"dataHash"`
	Data          []byte               `json:"data"`
	Tree          *account.Account     `json:"tree"`
}

// NewAddress - an address to be inserted
type NewAddress struct {
	Seed      address.Seed     `json:"seed"`
	Tree      *account.Account `json:"tree"`
	Queue     *account.Account `json:"queue"`
	RootIndex uint16           `json:"rootIndex"`
}

// Request - one atomic batch for the system-of-record
//
// Claims are the ones the proof was bound to: one inclusion claim per
// input followed by one non-inclusion claim per new address, in the
// same order as Inputs and NewAddresses
type Request struct {
	Program      *account.Account    `json:"program"`
	Signer       *account.Account    `json:"signer"`
	Proof        proof.ValidityProof `json:"proof"`
	Claims       []proof.Claim       `json:"claims"`
	Inputs       []InputAccount      `json:"inputs"`
	Outputs      []OutputAccount     `json:"outputs"`
	NewAddresses []NewAddress        `json:"newAddresses"`
}

// Sink - the system-of-record
//
// Commit applies the whole request or nothing
type Sink interface {
	Commit(ctx context.Context, request *Request) error
}

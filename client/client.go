// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client

import (
	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/instruction"
	"github.com/bitmark-inc/compressed-counter/ledger"
	"github.com/bitmark-inc/compressed-counter/merkle"
)

// Create - prove the owner's address is free and sign a create
func Create(prover Prover, programID *account.Account, key *account.PrivateKey, addressTree *account.Account, outputTree *account.Account) (*instruction.Signed, error) {
	owner := key.Account()
	result, err := prover.ValidityProof(nil, []ledger.AddressWithTree{NewAddress(programID, owner, addressTree)})
	if nil != err {
		return nil, err
	}
	i, err := CreateInstruction(programID, owner, result, outputTree)
	if nil != err {
		return nil, err
	}
	return i.Sign(key)
}

// Increment - prove the current record and sign an increment of its stored value
func Increment(prover Prover, programID *account.Account, key *account.PrivateKey, acc *ledger.CompressedAccount) (*instruction.Signed, error) {
	value, err := CounterValue(acc)
	if nil != err {
		return nil, err
	}
	result, err := prover.ValidityProof([]merkle.Digest{acc.Hash}, nil)
	if nil != err {
		return nil, err
	}
	i, err := IncrementInstruction(programID, key.Account(), acc, value, result)
	if nil != err {
		return nil, err
	}
	return i.Sign(key)
}

// Delete - prove the current record and sign its removal
func Delete(prover Prover, programID *account.Account, key *account.PrivateKey, acc *ledger.CompressedAccount) (*instruction.Signed, error) {
	value, err := CounterValue(acc)
	if nil != err {
		return nil, err
	}
	result, err := prover.ValidityProof([]merkle.Digest{acc.Hash}, nil)
	if nil != err {
		return nil, err
	}
	i, err := DeleteInstruction(programID, key.Account(), acc, value, result)
	if nil != err {
		return nil, err
	}
	return i.Sign(key)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cpi - hands record diffs to the system-of-record
//
// packed tree indices are resolved against the instruction's remaining
// accounts, the validity proof is paired with the claims the diffs make,
// and the whole batch is submitted as one atomic request
package cpi

import (
	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/fault"
)

// Accounts - the signer, the invoking program and the remaining accounts
type Accounts struct {
	signer    *account.Account
	program   *account.Account
	remaining []*account.Account
}

// NewAccounts - accounts for one invocation
func NewAccounts(signer *account.Account, program *account.Account, remaining []*account.Account) (*Accounts, error) {
	if nil == signer {
		return nil, fault.ErrMissingSigner
	}
	if nil == program {
		return nil, fault.ErrInvalidProgram
	}
	return &Accounts{
		signer:    signer,
		program:   program,
		remaining: remaining,
	}, nil
}

// Signer - the authenticated caller
func (a *Accounts) Signer() *account.Account {
	return a.signer
}

// Program - the invoking program
func (a *Accounts) Program() *account.Account {
	return a.program
}

// TreeAccount - resolve a packed index
func (a *Accounts) TreeAccount(index uint8) (*account.Account, error) {
	if int(index) >= len(a.remaining) {
		return nil, fault.ErrInvalidTreeIndex
	}
	return a.remaining[index], nil
}

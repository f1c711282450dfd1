// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package program - the counter lifecycle
//
// each owner has at most one counter, addressed by the owner's key in
// the "counter" namespace; the record lives in the system-of-record and
// every change is submitted through the commit invoker together with
// the validity proof supplied by the caller
package program

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/address"
	"github.com/bitmark-inc/compressed-counter/cpi"
	"github.com/bitmark-inc/compressed-counter/fault"
)

// Namespace - fixed first seed of every counter address
const Namespace = "counter"

// Program - the counter program bound to its identity
type Program struct {
	id  *account.Account
	log *logger.L
}

// Context - one invocation
//
// the signer has been authenticated by the surrounding envelope;
// Accounts are the tree and queue identifiers packed indices refer to
type Context struct {
	Signer   *account.Account
	Accounts []*account.Account
	Sink     cpi.Sink
}

// New - create a program with the configured identity
func New(id *account.Account, log *logger.L) (*Program, error) {
	if nil == id {
		return nil, fault.ErrInvalidProgram
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Program{
		id:  id,
		log: log,
	}, nil
}

// ID - program identity
func (p *Program) ID() *account.Account {
	return p.id
}

// Seeds - address seeds of an owner's counter
func Seeds(owner *account.Account) [][]byte {
	return [][]byte{[]byte(Namespace), owner.PublicKeyBytes()}
}

// DeriveAddress - counter address of an owner in an address tree
func DeriveAddress(program *account.Account, owner *account.Account, tree *account.Account) (address.Address, address.Seed) {
	return address.Derive(Seeds(owner), tree, program)
}

func (p *Program) accounts(c *Context) (*cpi.Accounts, error) {
	if nil == c.Sink {
		return nil, fault.ErrMissingSink
	}
	return cpi.NewAccounts(c.Signer, p.id, c.Accounts)
}

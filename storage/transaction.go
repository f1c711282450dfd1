// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - atomic group of writes across pools
//
// Get and Has observe the writes made so far in the transaction
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

type transactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &transactionData{
		access: access,
	}
}

func (t *transactionData) Begin() error {
	return t.access.Begin()
}

func (t *transactionData) Put(p *PoolHandle, key []byte, value []byte) {
	p.put(key, value)
}

func (t *transactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	p.putN(key, value)
}

func (t *transactionData) Delete(p *PoolHandle, key []byte) {
	p.remove(key)
}

func (t *transactionData) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

func (t *transactionData) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.GetN(key)
}

func (t *transactionData) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}

func (t *transactionData) Commit() error {
	return t.access.Commit()
}

func (t *transactionData) Abort() {
	t.access.Abort()
}

func (t *transactionData) InUse() bool {
	return t.access.InUse()
}

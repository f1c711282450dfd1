// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - reference system-of-record for compressed records
//
// holds registered state and address trees in leveldb, produces
// validity proofs for their recent roots, and applies commit requests
// atomically
package ledger

import (
	"math"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/merkle"
	"github.com/bitmark-inc/compressed-counter/storage"
)

// DefaultRootHistory - number of recent roots a proof may refer to
const DefaultRootHistory = 2400

// TreeConfiguration - a tree and its queue, base58 accounts
type TreeConfiguration struct {
	Tree  string `gluamapper:"tree" json:"tree"`
	Queue string `gluamapper:"queue" json:"queue"`
}

// Configuration - ledger setup
type Configuration struct {
	RootHistory  int                 `gluamapper:"root_history" json:"root_history"`
	ProverSeed   string              `gluamapper:"prover_seed" json:"prover_seed"`
	StateTrees   []TreeConfiguration `gluamapper:"state_trees" json:"state_trees"`
	AddressTrees []TreeConfiguration `gluamapper:"address_trees" json:"address_trees"`
}

// Ledger - trees, accounts and the prover key
type Ledger struct {
	sync.RWMutex
	log          *logger.L
	prover       *account.PrivateKey
	fingerprint  merkle.Digest
	trees        map[[32]byte]*tree
	stateTrees   []*account.Account
	addressTrees []*account.Account
}

// New - open the ledger over initialised storage
//
// configured trees missing from storage are registered empty; trees
// already present must match their configured type and queue
func New(configuration *Configuration, log *logger.L) (*Ledger, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	history := configuration.RootHistory
	if 0 == history {
		history = DefaultRootHistory
	}
	if history < 1 || history > math.MaxUint16+1 {
		return nil, fault.ErrInvalidRootHistory
	}

	var prover *account.PrivateKey
	var err error
	if "" == configuration.ProverSeed {
		prover, err = account.NewPrivateKey(false)
	} else {
		prover, err = account.PrivateKeyFromHexSeed(configuration.ProverSeed, false)
	}
	if nil != err {
		return nil, err
	}

	l := &Ledger{
		log:         log,
		prover:      prover,
		fingerprint: merkle.NewDigest(prover.Account().PublicKeyBytes()),
		trees:       make(map[[32]byte]*tree),
	}

	for _, c := range configuration.StateTrees {
		id, err := l.open(c, StateTree, history)
		if nil != err {
			return nil, err
		}
		l.stateTrees = append(l.stateTrees, id)
	}
	for _, c := range configuration.AddressTrees {
		id, err := l.open(c, AddressTree, history)
		if nil != err {
			return nil, err
		}
		l.addressTrees = append(l.addressTrees, id)
	}

	log.Infof("prover: %s", prover.Account())
	return l, nil
}

func (l *Ledger) open(c TreeConfiguration, treeType TreeType, history int) (*account.Account, error) {
	id, err := account.FromBase58(c.Tree)
	if nil != err {
		return nil, err
	}
	queue, err := account.FromBase58(c.Queue)
	if nil != err {
		return nil, err
	}

	key := id.Key()
	if _, ok := l.trees[key]; ok {
		return nil, fault.ErrTreeAlreadyRegistered
	}

	packed := storage.Pool.Trees.Get(id.PublicKeyBytes())
	if nil == packed {
		t, err := l.register(id, queue, treeType, history)
		if nil != err {
			return nil, err
		}
		l.trees[key] = t
		return id, nil
	}

	t, err := unpackMeta(id, packed)
	if nil != err {
		return nil, err
	}
	if treeType != t.treeType {
		return nil, fault.ErrInvalidTreeType
	}
	if !queue.Equal(t.queue) {
		return nil, fault.ErrTreeAlreadyRegistered
	}
	if history != len(t.roots) {
		l.log.Warnf("tree: %s  configured root history: %d  stored: %d", id, history, len(t.roots))
	}

	err = storage.Pool.Leaves.NewPrefixCursor(id.PublicKeyBytes()).Map(func(key []byte, value []byte) error {
		var leaf merkle.Digest
		if err := merkle.DigestFromBytes(&leaf, value); nil != err {
			return err
		}
		t.leaves = append(t.leaves, leaf)
		return nil
	})
	if nil != err {
		return nil, err
	}

	for i := range t.roots {
		if uint64(i) >= t.rootCount {
			break
		}
		value := storage.Pool.Roots.Get(rootKey(id, uint16(i)))
		if err := merkle.DigestFromBytes(&t.roots[i], value); nil != err {
			return nil, err
		}
	}
	if merkle.Root(t.leaves) != t.currentRoot() {
		l.log.Criticalf("tree: %s  stored root does not match leaves", id)
		return nil, fault.ErrInvalidRootHistory
	}

	l.log.Infof("open %s tree: %s  leaves: %d  root index: %d", treeType, id, len(t.leaves), t.rootIndex)
	return t.id, nil
}

func (l *Ledger) register(id *account.Account, queue *account.Account, treeType TreeType, history int) (*tree, error) {
	t := newTree(id, queue, treeType, history)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	trx.Put(storage.Pool.Trees, id.PublicKeyBytes(), t.packMeta())
	trx.Put(storage.Pool.Roots, rootKey(id, t.rootIndex), t.roots[t.rootIndex][:])
	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	l.log.Infof("register %s tree: %s  queue: %s", treeType, id, queue)
	return t, nil
}

// Prover - account whose signatures make up validity proofs
func (l *Ledger) Prover() *account.Account {
	return l.prover.Account()
}

// Trees - state and address tree descriptions
func (l *Ledger) Trees() (state []TreeInfo, addresses []TreeInfo) {
	l.RLock()
	defer l.RUnlock()

	for _, id := range l.stateTrees {
		state = append(state, l.trees[id.Key()].info())
	}
	for _, id := range l.addressTrees {
		addresses = append(addresses, l.trees[id.Key()].info())
	}
	return state, addresses
}

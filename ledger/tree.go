// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/merkle"
	"github.com/bitmark-inc/compressed-counter/util"
)

// TreeType - what a tree holds
type TreeType uint8

// tree types
const (
	StateTree   TreeType = 1 // compressed account hashes
	AddressTree TreeType = 2 // record addresses
)

// String - name of the tree type
func (t TreeType) String() string {
	switch t {
	case StateTree:
		return "state"
	case AddressTree:
		return "address"
	default:
		return "*unknown*"
	}
}

// TreeInfo - public description of a registered tree
type TreeInfo struct {
	Tree      *account.Account `json:"tree"`
	Queue     *account.Account `json:"queue"`
	Type      string           `json:"type"`
	Leaves    uint64           `json:"leaves"`
	RootIndex uint16           `json:"rootIndex"`
	Root      merkle.Digest    `json:"root"`
}

// in-memory copy of a tree with a ring buffer of recent roots
type tree struct {
	id        *account.Account
	queue     *account.Account
	treeType  TreeType
	leaves    []merkle.Digest
	roots     []merkle.Digest
	rootIndex uint16
	rootCount uint64
}

func newTree(id *account.Account, queue *account.Account, treeType TreeType, history int) *tree {
	t := &tree{
		id:        id,
		queue:     queue,
		treeType:  treeType,
		leaves:    make([]merkle.Digest, 0, 64),
		roots:     make([]merkle.Digest, history),
		rootIndex: 0,
		rootCount: 1,
	}
	t.roots[0] = merkle.Root(t.leaves)
	return t
}

// copy for staging changes; leaves and roots are not shared
func (t *tree) clone() *tree {
	c := *t
	c.leaves = make([]merkle.Digest, len(t.leaves), len(t.leaves)+8)
	copy(c.leaves, t.leaves)
	c.roots = make([]merkle.Digest, len(t.roots))
	copy(c.roots, t.roots)
	return &c
}

func (t *tree) info() TreeInfo {
	return TreeInfo{
		Tree:      t.id,
		Queue:     t.queue,
		Type:      t.treeType.String(),
		Leaves:    uint64(len(t.leaves)),
		RootIndex: t.rootIndex,
		Root:      t.roots[t.rootIndex],
	}
}

// root held at a history position
//
// positions that have never been written are invalid
func (t *tree) root(index uint16) (merkle.Digest, error) {
	if int(index) >= len(t.roots) || uint64(index) >= t.rootCount {
		return merkle.Digest{}, fault.ErrInvalidRootIndex
	}
	return t.roots[index], nil
}

func (t *tree) currentRoot() merkle.Digest {
	return t.roots[t.rootIndex]
}

func (t *tree) appendLeaf(leaf merkle.Digest) (uint32, error) {
	if uint64(len(t.leaves)) >= math.MaxUint32 {
		return 0, fault.ErrInvalidLeafIndex
	}
	t.leaves = append(t.leaves, leaf)
	return uint32(len(t.leaves) - 1), nil
}

// recompute the root and advance the ring buffer
func (t *tree) pushRoot() {
	t.rootIndex = uint16((int(t.rootIndex) + 1) % len(t.roots))
	t.roots[t.rootIndex] = merkle.Root(t.leaves)
	t.rootCount += 1
}

// storage keys

func leafKey(id *account.Account, index uint32) []byte {
	key := append([]byte{}, id.PublicKeyBytes()...)
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, index)
	return append(key, b...)
}

func rootKey(id *account.Account, index uint16) []byte {
	key := append([]byte{}, id.PublicKeyBytes()...)
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, index)
	return append(key, b...)
}

func addressKey(id *account.Account, addr []byte) []byte {
	key := append([]byte{}, id.PublicKeyBytes()...)
	return append(key, addr...)
}

// tree metadata: type, queue, history size, root index, root count
func (t *tree) packMeta() []byte {
	buffer := []byte{byte(t.treeType)}
	buffer = util.PackBytes(buffer, t.queue.Bytes())
	buffer = append(buffer, util.ToVarint64(uint64(len(t.roots)))...)
	buffer = append(buffer, util.ToVarint64(uint64(t.rootIndex))...)
	return append(buffer, util.ToVarint64(t.rootCount)...)
}

func unpackMeta(id *account.Account, buffer []byte) (*tree, error) {
	if len(buffer) < 1 {
		return nil, fault.ErrDataBufferTooShort
	}
	treeType := TreeType(buffer[0])
	if StateTree != treeType && AddressTree != treeType {
		return nil, fault.ErrInvalidTreeType
	}
	n := 1

	queueBytes, m, err := util.UnpackBytes(buffer[n:])
	if nil != err {
		return nil, err
	}
	n += m
	queue, err := account.FromBytes(queueBytes)
	if nil != err {
		return nil, err
	}

	values := make([]uint64, 3)
	for i := range values {
		values[i], m, err = util.UnpackVarint64(buffer[n:])
		if nil != err {
			return nil, err
		}
		n += m
	}
	history, rootIndex, rootCount := values[0], values[1], values[2]
	if 0 == history || history > math.MaxUint16+1 || rootIndex >= history {
		return nil, fault.ErrInvalidRootHistory
	}

	return &tree{
		id:        id,
		queue:     queue,
		treeType:  treeType,
		leaves:    make([]merkle.Digest, 0, 64),
		roots:     make([]merkle.Digest, history),
		rootIndex: uint16(rootIndex),
		rootCount: rootCount,
	}, nil
}

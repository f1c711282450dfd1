// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"github.com/bitmark-inc/compressed-counter/fault"
)

// FullMerkleTree - build the complete tree
//
// leaves first then each level in turn, the last element is the
// root; an odd node at the end of a level is paired with itself
func FullMerkleTree(leaves []Digest) []Digest {
	count := len(leaves)

	totalLength := 1
	for n := count; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	tree := make([]Digest, totalLength)
	copy(tree, leaves)

	n := count
	j := 0
	for width := count; width > 1; width = (width + 1) / 2 {
		for i := 0; i < width; i += 2 {
			k := j + 1
			if i+1 == width {
				k = j
			}
			tree[n] = combine(tree[j], tree[k])
			n += 1
			j = k + 1
		}
	}
	return tree
}

// Root - root of the tree over the leaves, zero digest for no leaves
func Root(leaves []Digest) Digest {
	if 0 == len(leaves) {
		return Digest{}
	}
	tree := FullMerkleTree(leaves)
	return tree[len(tree)-1]
}

// InclusionPath - the sibling at each level from the leaf up to the root
func InclusionPath(leaves []Digest, index uint64) ([]Digest, error) {
	if index >= uint64(len(leaves)) {
		return nil, fault.ErrInvalidLeafIndex
	}

	path := make([]Digest, 0, 32)
	level := leaves
	for len(level) > 1 {
		sibling := index ^ 1
		if sibling >= uint64(len(level)) {
			sibling = index
		}
		path = append(path, level[sibling])

		next := make([]Digest, (len(level)+1)/2)
		for i := range next {
			l := 2 * i
			r := l + 1
			if r == len(level) {
				r = l
			}
			next[i] = combine(level[l], level[r])
		}
		level = next
		index >>= 1
	}
	return path, nil
}

// VerifyInclusion - true if leaf at index combined with path reproduces root
func VerifyInclusion(root Digest, leaf Digest, index uint64, path []Digest) bool {
	current := leaf
	for _, p := range path {
		if 0 == index&1 {
			current = combine(current, p)
		} else {
			current = combine(p, current)
		}
		index >>= 1
	}
	return 0 == index && current == root
}

func combine(left Digest, right Digest) Digest {
	return Sum(left[:], right[:])
}

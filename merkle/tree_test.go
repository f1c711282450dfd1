// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/merkle"
)

func makeLeaves(n int) []merkle.Digest {
	leaves := make([]merkle.Digest, n)
	for i := range leaves {
		leaves[i] = merkle.NewDigest([]byte(fmt.Sprintf("leaf-%d", i)))
	}
	return leaves
}

func TestRootSmall(t *testing.T) {
	assert.Equal(t, merkle.Digest{}, merkle.Root(nil), "empty")

	leaves := makeLeaves(3)
	assert.Equal(t, leaves[0], merkle.Root(leaves[:1]), "single leaf is the root")

	ab := merkle.Sum(leaves[0][:], leaves[1][:])
	cc := merkle.Sum(leaves[2][:], leaves[2][:])
	expected := merkle.Sum(ab[:], cc[:])
	assert.Equal(t, expected, merkle.Root(leaves), "odd leaf paired with itself")
}

func TestInclusion(t *testing.T) {
	for n := 1; n <= 17; n += 1 {
		leaves := makeLeaves(n)
		root := merkle.Root(leaves)
		for i := 0; i < n; i += 1 {
			path, err := merkle.InclusionPath(leaves, uint64(i))
			assert.Nil(t, err, "path error")
			assert.True(t, merkle.VerifyInclusion(root, leaves[i], uint64(i), path), "n: %d  i: %d", n, i)

			other := merkle.NewDigest([]byte("other"))
			assert.False(t, merkle.VerifyInclusion(root, other, uint64(i), path), "forged leaf n: %d  i: %d", n, i)
		}
	}
}

func TestInclusionWrongIndex(t *testing.T) {
	leaves := makeLeaves(8)
	root := merkle.Root(leaves)
	path, err := merkle.InclusionPath(leaves, 2)
	assert.Nil(t, err, "path error")
	assert.False(t, merkle.VerifyInclusion(root, leaves[2], 3, path), "wrong index")

	_, err = merkle.InclusionPath(leaves, 8)
	assert.Equal(t, fault.ErrInvalidLeafIndex, err, "out of range")
}

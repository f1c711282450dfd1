// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/compressed-counter/fault"
)

// test that the error classes are disjoint
func TestClasses(t *testing.T) {
	errorList := []struct {
		err           error
		authorisation bool
		commit        bool
		exists        bool
		invalid       bool
		length        bool
		notFound      bool
		process       bool
		proof         bool
	}{
		{fault.ErrSignerNotOwner, true, false, false, false, false, false, false, false},
		{fault.ErrCommitFailed, false, true, false, false, false, false, false, false},
		{fault.ErrAddressExists, false, false, true, false, false, false, false, false},
		{fault.ErrMissingValidityProof, false, false, false, true, false, false, false, false},
		{fault.ErrInvalidProofLength, false, false, false, false, true, false, false, false},
		{fault.ErrAccountNotFound, false, false, false, false, false, true, false, false},
		{fault.ErrHandleConsumed, false, false, false, false, false, false, true, false},
		{fault.ErrProofRejected, false, false, false, false, false, false, false, true},
		{fault.ErrInputSpent, false, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		assert.Equal(t, e.authorisation, fault.IsErrAuthorisation(err), "%d: authorisation for: %v", i, err)
		assert.Equal(t, e.commit, fault.IsErrCommit(err), "%d: commit for: %v", i, err)
		assert.Equal(t, e.exists, fault.IsErrExists(err), "%d: exists for: %v", i, err)
		assert.Equal(t, e.invalid, fault.IsErrInvalid(err), "%d: invalid for: %v", i, err)
		assert.Equal(t, e.length, fault.IsErrLength(err), "%d: length for: %v", i, err)
		assert.Equal(t, e.notFound, fault.IsErrNotFound(err), "%d: not found for: %v", i, err)
		assert.Equal(t, e.process, fault.IsErrProcess(err), "%d: process for: %v", i, err)
		assert.Equal(t, e.proof, fault.IsErrProof(err), "%d: proof for: %v", i, err)
	}
}

func TestIdentity(t *testing.T) {
	var err error = fault.ErrProofRejected
	assert.Equal(t, fault.ErrProofRejected, err, "same instance")
	assert.NotEqual(t, fault.ErrInputSpent, err, "different instance")
	assert.Equal(t, "validity proof rejected", err.Error(), "message")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/ledger"
	"github.com/bitmark-inc/compressed-counter/merkle"
	"github.com/bitmark-inc/compressed-counter/rpc/indexer"
)

// Counter - the live counter of an owner in an address tree
func (c *Client) Counter(owner *account.Account, tree *account.Account) (*indexer.CounterReply, error) {
	arguments := indexer.CounterArguments{
		Owner: owner,
		Tree:  tree,
	}
	var reply indexer.CounterReply
	if err := c.call("Indexer.Counter", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ValidityProof - ask the daemon to prove the claims
func (c *Client) ValidityProof(hashes []merkle.Digest, addresses []ledger.AddressWithTree) (*ledger.ValidityProofResult, error) {
	arguments := indexer.ProofArguments{
		Hashes:    hashes,
		Addresses: addresses,
	}
	var reply ledger.ValidityProofResult
	if err := c.call("Indexer.ValidityProof", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

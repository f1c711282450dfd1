// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/command/counter-cli/rpccalls"
	"github.com/bitmark-inc/compressed-counter/ledger"
	"github.com/bitmark-inc/compressed-counter/rpc/node"
)

func connect(m *metadata) (*rpccalls.Client, *node.InfoReply, error) {
	client, err := rpccalls.NewClient(m.useTLS, m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	info, err := client.GetInfo()
	if nil != err {
		client.Close()
		return nil, nil, err
	}
	return client, info, nil
}

func ownerKey(m *metadata) (*account.PrivateKey, error) {
	if "" == m.key {
		return nil, fmt.Errorf("owner key is required, use --key or COUNTER_KEY")
	}
	return account.PrivateKeyFromBase58Seed(m.key)
}

// a blank name selects the first registered tree
func selectTree(trees []ledger.TreeInfo, name string) (*account.Account, error) {
	if 0 == len(trees) {
		return nil, fmt.Errorf("no trees registered")
	}
	if "" == name {
		return trees[0].Tree, nil
	}
	a, err := account.FromBase58(name)
	if nil != err {
		return nil, err
	}
	for _, t := range trees {
		if a.Equal(t.Tree) {
			return t.Tree, nil
		}
	}
	return nil, fmt.Errorf("tree: %s is not registered", name)
}

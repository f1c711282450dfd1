// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/client"
	"github.com/bitmark-inc/compressed-counter/command/counter-cli/rpccalls"
	"github.com/bitmark-inc/compressed-counter/instruction"
	"github.com/bitmark-inc/compressed-counter/ledger"
)

type builder func(client.Prover, *account.Account, *account.PrivateKey, *ledger.CompressedAccount) (*instruction.Signed, error)

func runIncrement(c *cli.Context) error {
	return mutate(c, client.Increment)
}

func runDelete(c *cli.Context) error {
	return mutate(c, client.Delete)
}

// fetch the current record, prove it and submit the signed change
func mutate(c *cli.Context, build builder) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := ownerKey(m)
	if nil != err {
		return err
	}

	rpcClient, info, err := connect(m)
	if nil != err {
		return err
	}
	defer rpcClient.Close()

	addressTree, err := selectTree(info.AddressTrees, c.String("address-tree"))
	if nil != err {
		return err
	}

	current, err := rpcClient.Counter(key.Account(), addressTree)
	if nil != err {
		return err
	}

	signed, err := build(rpcClient, info.Program, key, current.Account)
	if nil != err {
		return err
	}

	return submit(m, rpcClient, signed)
}

func submit(m *metadata, rpcClient *rpccalls.Client, signed *instruction.Signed) error {
	reply, err := rpcClient.Submit(signed)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/compressed-counter/client"
)

func runCreate(c *cli.Context) error {

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
	stateTree, err := selectTree(info.StateTrees, c.String("state-tree"))
	if nil != err {
		return err
	}

	signed, err := client.Create(rpcClient, info.Program, key, addressTree, stateTree)
	if nil != err {
		return err
	}

	return submit(m, rpcClient, signed)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/compressed-counter/account"
)

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var owner *account.Account
	if c.NArg() > 0 {
		a, err := account.FromBase58(c.Args().Get(0))
		if nil != err {
			return err
		}
		owner = a
	} else {
		key, err := ownerKey(m)
		if nil != err {
			return err
		}
		owner = key.Account()
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

	reply, err := rpcClient.Counter(owner, addressTree)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/compressed-counter/account"
)

type generateReply struct {
	Seed    string           `json:"seed"`
	Account *account.Account `json:"account"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey(c.Bool("test"))
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		Seed:    key.Seed(),
		Account: key.Account(),
	})
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	useTLS  bool
	key     string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "counter-cli"
	app.Usage = "create, increment and delete compressed counters"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	treeFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "address-tree, a",
			Value: "",
			Usage: " address tree `ACCOUNT` [default: first registered]",
		},
		cli.StringFlag{
			Name:  "state-tree, s",
			Value: "",
			Usage: " output state tree `ACCOUNT` [default: first registered]",
		},
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2150",
			Usage: " counterd `HOST:PORT`",
		},
		cli.BoolFlag{
			Name:  "tls, t",
			Usage: " connect using TLS",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " owner private key `SEED` as printed by generate",
			EnvVar: "COUNTER_KEY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "generate",
			Usage: "generate a new owner key",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "test",
					Usage: " make a test network key",
				},
			},
			Action: runGenerate,
		},
		{
			Name:   "info",
			Usage:  "display counterd program and trees",
			Action: runInfo,
		},
		{
			Name:   "create",
			Usage:  "create the counter of the key owner",
			Flags:  treeFlags,
			Action: runCreate,
		},
		{
			Name:   "increment",
			Usage:  "add one to the counter of the key owner",
			Flags:  treeFlags[:1],
			Action: runIncrement,
		},
		{
			Name:   "delete",
			Usage:  "remove the counter of the key owner",
			Flags:  treeFlags[:1],
			Action: runDelete,
		},
		{
			Name:      "show",
			Usage:     "display a counter",
			ArgsUsage: "[OWNER]",
			Flags:     treeFlags[:1],
			Action:    runShow,
		},
		{
			Name:  "version",
			Usage: "display counter-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			useTLS:  c.GlobalBool("tls"),
			key:     c.GlobalString("key"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

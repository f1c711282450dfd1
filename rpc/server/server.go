// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/counter"
	"github.com/bitmark-inc/compressed-counter/cpi"
	"github.com/bitmark-inc/compressed-counter/rpc/indexer"
	"github.com/bitmark-inc/compressed-counter/rpc/node"
	"github.com/bitmark-inc/compressed-counter/rpc/programs"
)

// Ledger - everything the RPC services need from the system-of-record
type Ledger interface {
	indexer.Ledger
	node.Trees
	cpi.Sink
}

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, programID *account.Account, l Ledger, processor programs.Processor) *rpc.Server {

	start := time.Now().UTC()

	// keep untyped nils when no ledger is attached
	var (
		trees node.Trees
		sink  cpi.Sink
	)
	if nil != l {
		trees = l
		sink = l
	}

	server := rpc.NewServer()

	_ = server.Register(indexer.New(log, programID, l))
	_ = server.Register(node.New(log, start, version, programID, trees, rpcCount))
	_ = server.Register(programs.New(log, processor, sink))

	return server
}

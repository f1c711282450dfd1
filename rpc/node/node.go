// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - RPC information about the running daemon
package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/counter"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/ledger"
	"github.com/bitmark-inc/compressed-counter/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Trees - registered trees and the prover identity
type Trees interface {
	Trees() ([]ledger.TreeInfo, []ledger.TreeInfo)
	Prover() *account.Account
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Program *account.Account
	Trees   Trees
	counter *counter.Counter
}

// New - create the node service
func New(log *logger.L, start time.Time, version string, programID *account.Account, trees Trees, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Program: programID,
		Trees:   trees,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Program      *account.Account  `json:"program"`
	Prover       *account.Account  `json:"prover"`
	StateTrees   []ledger.TreeInfo `json:"stateTrees"`
	AddressTrees []ledger.TreeInfo `json:"addressTrees"`
	RPCs         uint64            `json:"rpcs"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
}

// Info - return enough information for clients to build instructions
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Trees {
		return fault.ErrDatabaseIsNotSet
	}

	reply.Program = node.Program
	reply.Prover = node.Trees.Prover()
	reply.StateTrees, reply.AddressTrees = node.Trees.Trees()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

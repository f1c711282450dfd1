// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package programs - RPC submission of signed counter instructions
package programs

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/compressed-counter/address"
	"github.com/bitmark-inc/compressed-counter/cpi"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/instruction"
	"github.com/bitmark-inc/compressed-counter/program"
	"github.com/bitmark-inc/compressed-counter/rpc/ratelimit"
)

const (
	rateLimitProgram = 100
	rateBurstProgram = 50

	submitTimeout = 10 * time.Second
)

// Processor - runs one signed instruction against a sink
type Processor interface {
	Process(ctx context.Context, signed *instruction.Signed, sink cpi.Sink) (*program.Result, error)
}

// Program - type for RPC calls
type Program struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Processor Processor
	Sink      cpi.Sink
}

// New - create the submission service
func New(log *logger.L, processor Processor, sink cpi.Sink) *Program {
	return &Program{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitProgram, rateBurstProgram),
		Processor: processor,
		Sink:      sink,
	}
}

// SubmitArguments - hex encoded signed instruction
type SubmitArguments struct {
	Instruction string `json:"instruction"`
}

// SubmitReply - outcome of a committed instruction
type SubmitReply struct {
	Tag     string           `json:"instruction"`
	Address *address.Address `json:"address,omitempty"`
}

// Submit - process a signed instruction and commit its effects
func (p *Program) Submit(arguments *SubmitArguments, reply *SubmitReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	if nil == p.Sink {
		return fault.ErrMissingSink
	}

	if nil == arguments || "" == arguments.Instruction {
		return fault.ErrInvalidLength
	}

	signed, err := instruction.UnpackSignedHex(arguments.Instruction)
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	result, err := p.Processor.Process(ctx, signed, p.Sink)
	if nil != err {
		p.Log.Infof("submit: signer: %s  error: %s", signed.Signer, err)
		return err
	}

	p.Log.Infof("submit: signer: %s  instruction: %s", signed.Signer, result.Tag)

	reply.Tag = result.Tag.String()
	reply.Address = result.Address
	return nil
}

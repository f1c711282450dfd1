// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/compressed-counter/instruction"
	"github.com/bitmark-inc/compressed-counter/rpc/programs"
)

// Submit - send a signed instruction for processing
func (c *Client) Submit(signed *instruction.Signed) (*programs.SubmitReply, error) {
	arguments := programs.SubmitArguments{
		Instruction: signed.String(),
	}
	var reply programs.SubmitReply
	if err := c.call("Program.Submit", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

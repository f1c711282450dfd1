// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - set up and handle the incoming JSON RPC requests from
// counter clients
//
// standard golang RPC clients using the jsonrpc codec can access these
// services
package rpc

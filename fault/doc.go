// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances for the counter ledger and RPC
//
// each error is a single typed value, so callers compare with == and
// test the class with the IsErrXxx functions
package fault

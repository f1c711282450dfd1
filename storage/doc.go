// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - leveldb pools for the system-of-record
//
// every pool shares one database, keys are distinguished by a single
// prefix byte; all writes go through a Transaction which collects them
// in a batch and applies them atomically on Commit
package storage

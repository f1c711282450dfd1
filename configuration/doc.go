// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is a Lua chunk that returns a table; the usual base Lua
// libraries are available so values can be computed or read from the
// environment with os.getenv
package configuration

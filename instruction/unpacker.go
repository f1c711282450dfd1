// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"math"

	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/util"
)

// sequential reader over a packed buffer
//
// the first error sticks and all later reads return zero values
type unpacker struct {
	buffer []byte
	n      int
	err    error
}

func appendUint(buffer []byte, value uint64) []byte {
	return append(buffer, util.ToVarint64(value)...)
}

func (u *unpacker) uint(maximum uint64) uint64 {
	if nil != u.err {
		return 0
	}
	value, n, err := util.UnpackVarint64(u.buffer[u.n:])
	if nil != err {
		u.err = err
		return 0
	}
	if value > maximum {
		u.err = fault.ErrInvalidCount
		return 0
	}
	u.n += n
	return value
}

func (u *unpacker) uint8() uint8   { return uint8(u.uint(math.MaxUint8)) }
func (u *unpacker) uint16() uint16 { return uint16(u.uint(math.MaxUint16)) }
func (u *unpacker) uint32() uint32 { return uint32(u.uint(math.MaxUint32)) }
func (u *unpacker) uint64() uint64 { return u.uint(math.MaxUint64) }

func (u *unpacker) bytes() []byte {
	if nil != u.err {
		return nil
	}
	data, n, err := util.UnpackBytes(u.buffer[u.n:])
	if nil != err {
		u.err = err
		return nil
	}
	u.n += n
	return data
}

func (u *unpacker) fixed(length int) []byte {
	if nil != u.err {
		return nil
	}
	if u.n+length > len(u.buffer) {
		u.err = fault.ErrDataBufferTooShort
		return nil
	}
	data := make([]byte, length)
	copy(data, u.buffer[u.n:])
	u.n += length
	return data
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/compressed-counter/fault"
)

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// seven bits per byte, least significant group first, high bit set
// on every byte except the last; the ninth byte carries a full eight
// bits so the encoding never exceeds Varint64MaximumBytes
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	for i := 1; i < Varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint64 - decode a Varint64 from the start of buffer
//
// returns the value and the number of bytes consumed
// returns 0, 0 if the buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	shift := uint(0)
	for i, b := range buffer {
		if i == Varint64MaximumBytes-1 {
			return value | uint64(b)<<shift, i + 1
		}
		value |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return value, i + 1
		}
		shift += 7
	}
	return 0, 0
}

// PackBytes - append a Varint64 length followed by the data
func PackBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// UnpackBytes - extract a length prefixed byte slice
//
// returns a copy of the data and the number of bytes consumed
func UnpackBytes(buffer []byte) ([]byte, int, error) {
	length, n := FromVarint64(buffer)
	if 0 == n {
		return nil, 0, fault.ErrDataBufferTooShort
	}
	if length > uint64(len(buffer)-n) {
		return nil, 0, fault.ErrDataBufferTooShort
	}
	end := n + int(length)
	data := make([]byte, length)
	copy(data, buffer[n:end])
	return data, end, nil
}

// UnpackVarint64 - extract a Varint64 as an error checked value
func UnpackVarint64(buffer []byte) (uint64, int, error) {
	value, n := FromVarint64(buffer)
	if 0 == n {
		return 0, 0, fault.ErrDataBufferTooShort
	}
	return value, n, nil
}

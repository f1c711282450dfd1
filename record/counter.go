// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the counter record and its compressed handle
package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/merkle"
	"github.com/bitmark-inc/compressed-counter/util"
)

// DiscriminatorLength - bytes in a record type discriminator
const DiscriminatorLength = 8

// Discriminator - record type tag
type Discriminator [DiscriminatorLength]byte

// CounterDiscriminator - type tag of counter records
var CounterDiscriminator = makeDiscriminator("CounterCompressedAccount")

func makeDiscriminator(name string) Discriminator {
	var d Discriminator
	digest := merkle.NewDigest([]byte(name))
	copy(d[:], digest[:])
	return d
}

// Counter - the per-owner record
type Counter struct {
	Owner *account.Account `json:"owner"`
	Value uint64           `json:"value"`
}

// Pack - owner then value
func (c *Counter) Pack() ([]byte, error) {
	if nil == c.Owner {
		return nil, fault.ErrMissingOwner
	}
	buffer := util.PackBytes(nil, c.Owner.Bytes())
	return append(buffer, util.ToVarint64(c.Value)...), nil
}

// Unpack - decode a packed counter
func Unpack(data []byte) (*Counter, error) {
	ownerBytes, n, err := util.UnpackBytes(data)
	if nil != err {
		return nil, err
	}
	owner, err := account.FromBytes(ownerBytes)
	if nil != err {
		return nil, err
	}
	value, m, err := util.UnpackVarint64(data[n:])
	if nil != err {
		return nil, err
	}
	if n+m != len(data) {
		return nil, fault.ErrInvalidLength
	}
	return &Counter{
		Owner: owner,
		Value: value,
	}, nil
}

// DataHash - commitment to the record contents
//
// the owner key is hashed and truncated to the field size, then
// hashed with the big endian counter value
func (c *Counter) DataHash() (merkle.Digest, error) {
	if nil == c.Owner {
		return merkle.Digest{}, fault.ErrMissingOwner
	}
	owner := merkle.NewDigest(c.Owner.PublicKeyBytes())
	owner[0] = 0

	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, c.Value)

	return merkle.Sum(owner[:], value), nil
}

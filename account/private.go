// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/compressed-counter/fault"
)

// seed text form: header, network, key seed, checksum
var seedHeader = []byte{0x5a, 0xfe, 0x02}

const (
	seedNetworkLength = 1
	seedChecksumStart = 3 + seedNetworkLength + ed25519.SeedSize
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	test       bool
	privateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a random key
func NewPrivateKey(test bool) (*PrivateKey, error) {
	seed := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(seed); nil != err {
		return nil, err
	}
	return PrivateKeyFromSeed(seed, test)
}

// PrivateKeyFromSeed - deterministic key from a 32 byte seed
func PrivateKeyFromSeed(seed []byte, test bool) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &PrivateKey{
		test:       test,
		privateKey: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// PrivateKeyFromHexSeed - key from a hex encoded seed
func PrivateKeyFromHexSeed(s string, test bool) (*PrivateKey, error) {
	seed, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	return PrivateKeyFromSeed(seed, test)
}

// PrivateKeyFromBase58Seed - decode the checksummed seed text form
func PrivateKeyFromBase58Seed(s string) (*PrivateKey, error) {
	decoded, err := base58.Decode(s)
	if nil != err {
		return nil, err
	}
	if seedChecksumStart+checksumLength != len(decoded) || !bytes.HasPrefix(decoded, seedHeader) {
		return nil, fault.ErrInvalidKeyLength
	}
	checksum := sha3.Sum256(decoded[:seedChecksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[seedChecksumStart:]) {
		return nil, fault.ErrInvalidChecksum
	}
	test := 0 != decoded[len(seedHeader)]
	return PrivateKeyFromSeed(decoded[len(seedHeader)+seedNetworkLength:seedChecksumStart], test)
}

// Account - the public half
func (privateKey *PrivateKey) Account() *Account {
	account, _ := New(privateKey.privateKey.Public().(ed25519.PublicKey), privateKey.test)
	return account
}

// Sign - ed25519 signature of a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.privateKey, message)
}

// IsTesting - true for test network keys
func (privateKey *PrivateKey) IsTesting() bool {
	return privateKey.test
}

// Seed - the checksummed base58 seed text
func (privateKey *PrivateKey) Seed() string {
	network := byte(0)
	if privateKey.test {
		network = 1
	}
	buffer := append([]byte{}, seedHeader...)
	buffer = append(buffer, network)
	buffer = append(buffer, privateKey.privateKey.Seed()...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// HexSeed - the raw seed as hex, the form PrivateKeyFromHexSeed reads
func (privateKey *PrivateKey) HexSeed() string {
	return hex.EncodeToString(privateKey.privateKey.Seed())
}

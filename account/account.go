// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/util"
)

// enumeration of supported key algorithms
const (
	Nothing = iota // zero keytype, never valid
	ED25519 = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode  = 0x01
	testKeyCode    = 0x02
	algorithmShift = 4
)

// Account - an ed25519 public key
//
// identifies record owners, the counter program, and the state and
// address trees and their queues
type Account struct {
	test      bool
	publicKey [ed25519.PublicKeySize]byte
}

// New - create an account from a raw public key
func New(publicKey []byte, test bool) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	account := &Account{test: test}
	copy(account.publicKey[:], publicKey)
	return account, nil
}

// FromBase58 - decode the checksummed text form
func FromBase58(accountBase58Encoded string) (*Account, error) {
	decoded, err := base58.Decode(accountBase58Encoded)
	if nil != err {
		return nil, err
	}
	if len(decoded) <= checksumLength {
		return nil, fault.ErrInvalidKeyLength
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrInvalidChecksum
	}
	return FromBytes(decoded[:checksumStart])
}

// FromBytes - decode the key variant prefixed binary form
func FromBytes(accountBytes []byte) (*Account, error) {
	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrInvalidKeyType
	}
	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}
	return New(accountBytes[keyVariantLength:], 0 != keyVariant&testKeyCode)
}

// PublicKeyBytes - the raw public key
func (account *Account) PublicKeyBytes() []byte {
	return account.publicKey[:]
}

// Key - fixed size key for use in maps and storage keys
func (account *Account) Key() [ed25519.PublicKeySize]byte {
	return account.publicKey
}

// IsTesting - true for test network keys
func (account *Account) IsTesting() bool {
	return account.test
}

// Equal - same public key
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	return account.publicKey == other.publicKey
}

// CheckSignature - verify an ed25519 signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(account.publicKey[:], message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Bytes - key variant followed by the public key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.publicKey[:]...)
}

// String - base58 of the binary form with a checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert base58 text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - deterministic record addresses
//
// an address is derived in two steps so that the intermediate seed can
// travel with a new address request and be re-derived against the
// address tree by the system-of-record:
//
//	seed    = H(program ‖ seeds…)
//	address = H(tree ‖ seed)
//
// where H is Keccak-256 over the inputs followed by a 0xff bump byte,
// with the first byte cleared so the value fits the BN254 scalar field
package address

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/fault"
)

// Length - number of bytes in an address or seed
const Length = 32

const bumpSeed = 0xff

// Address - a record address in an address tree
type Address [Length]byte

// Seed - program scoped intermediate value of an address
type Seed [Length]byte

// DeriveSeed - the program scoped seed
func DeriveSeed(seeds [][]byte, program *account.Account) Seed {
	inputs := make([][]byte, 0, len(seeds)+1)
	inputs = append(inputs, program.PublicKeyBytes())
	inputs = append(inputs, seeds...)
	return Seed(hashToFieldSize(inputs))
}

// DeriveFromSeed - bind a seed to an address tree
func DeriveFromSeed(seed Seed, tree *account.Account) Address {
	return Address(hashToFieldSize([][]byte{tree.PublicKeyBytes(), seed[:]}))
}

// Derive - address and seed for a set of seeds, a tree and a program
func Derive(seeds [][]byte, tree *account.Account, program *account.Account) (Address, Seed) {
	seed := DeriveSeed(seeds, program)
	return DeriveFromSeed(seed, tree), seed
}

func hashToFieldSize(inputs [][]byte) [Length]byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range inputs {
		h.Write(b)
	}
	h.Write([]byte{bumpSeed})

	var result [Length]byte
	copy(result[:], h.Sum(nil))
	result[0] = 0
	return result
}

// FromBytes - validate and convert a byte slice
func FromBytes(buffer []byte) (Address, error) {
	var a Address
	if Length != len(buffer) {
		return a, fault.ErrInvalidLength
	}
	copy(a[:], buffer)
	return a, nil
}

// String - hex form
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// MarshalText - convert to hex text
func (a Address) MarshalText() ([]byte, error) {
	return marshalText(a[:]), nil
}

// UnmarshalText - convert hex text to an address
func (a *Address) UnmarshalText(s []byte) error {
	return unmarshalText(a[:], s)
}

// String - hex form
func (s Seed) String() string {
	return hex.EncodeToString(s[:])
}

// MarshalText - convert to hex text
func (s Seed) MarshalText() ([]byte, error) {
	return marshalText(s[:]), nil
}

// UnmarshalText - convert hex text to a seed
func (s *Seed) UnmarshalText(text []byte) error {
	return unmarshalText(s[:], text)
}

func marshalText(b []byte) []byte {
	buffer := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(buffer, b)
	return buffer
}

func unmarshalText(destination []byte, s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidLength
	}
	_, err := hex.Decode(destination, s)
	return err
}

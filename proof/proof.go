// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proof - validity proofs and the gate that pairs them with claims
//
// a validity proof is opaque here: it is produced by the proof service
// and checked by the system-of-record; this package only carries it and
// guarantees it is bound to exactly one set of prior-state claims
package proof

import (
	"encoding/hex"

	"github.com/bitmark-inc/compressed-counter/fault"
)

// sizes of the compressed proof components
const (
	ALength = 32
	BLength = 64
	CLength = 32

	CompressedLength = ALength + BLength + CLength
)

// CompressedProof - the three proof points
type CompressedProof struct {
	A [ALength]byte
	B [BLength]byte
	C [CLength]byte
}

// ValidityProof - an optional compressed proof
//
// the zero value carries no proof, which is only acceptable for
// operations that make no prior-state claims
type ValidityProof struct {
	Compressed *CompressedProof
}

// New - wrap a compressed proof
func New(compressed CompressedProof) ValidityProof {
	return ValidityProof{Compressed: &compressed}
}

// FromBytes - decode either an empty or a full length proof
func FromBytes(buffer []byte) (ValidityProof, error) {
	switch len(buffer) {
	case 0:
		return ValidityProof{}, nil
	case CompressedLength:
		c := &CompressedProof{}
		n := copy(c.A[:], buffer)
		n += copy(c.B[:], buffer[n:])
		copy(c.C[:], buffer[n:])
		return ValidityProof{Compressed: c}, nil
	default:
		return ValidityProof{}, fault.ErrInvalidProofLength
	}
}

// IsEmpty - true if no proof is present
func (p ValidityProof) IsEmpty() bool {
	return nil == p.Compressed
}

// Bytes - A ‖ B ‖ C or empty
func (p ValidityProof) Bytes() []byte {
	if p.IsEmpty() {
		return []byte{}
	}
	buffer := make([]byte, 0, CompressedLength)
	buffer = append(buffer, p.Compressed.A[:]...)
	buffer = append(buffer, p.Compressed.B[:]...)
	return append(buffer, p.Compressed.C[:]...)
}

// String - hex form
func (p ValidityProof) String() string {
	return hex.EncodeToString(p.Bytes())
}

// MarshalText - convert to hex text, empty for no proof
func (p ValidityProof) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText - convert hex text to a proof
func (p *ValidityProof) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	r, err := FromBytes(buffer[:n])
	if nil != err {
		return err
	}
	*p = r
	return nil
}

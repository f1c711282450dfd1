// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"sync"

	"github.com/bitmark-inc/compressed-counter/fault"
)

// ClaimKind - what a claim asserts about the external state
type ClaimKind int

// claim kinds
const (
	Inclusion    ClaimKind = iota // an existing record hash is in a state tree
	NonInclusion ClaimKind = iota // a new address is absent from an address tree
)

// Claim - one prior-state assertion
//
// Subject is the claimed record data hash for inclusion or the address
// seed for non-inclusion; RootIndex selects the tree root it holds at
type Claim struct {
	Kind      ClaimKind
	Subject   [32]byte
	RootIndex uint16
}

// Attestation - a set of claims together with the single proof for all of them
type Attestation struct {
	Claims []Claim
	Proof  ValidityProof
}

// Gate - binds one proof to one claim set and releases it once
type Gate struct {
	sync.Mutex
	attestation *Attestation
	consumed    bool
}

// Bind - pair a proof with its claims
//
// claims without a proof and a proof without claims are both rejected
func Bind(p ValidityProof, claims []Claim) (*Gate, error) {
	if 0 != len(claims) && p.IsEmpty() {
		return nil, fault.ErrMissingValidityProof
	}
	if 0 == len(claims) && !p.IsEmpty() {
		return nil, fault.ErrUnboundValidityProof
	}

	c := make([]Claim, len(claims))
	copy(c, claims)

	return &Gate{
		attestation: &Attestation{
			Claims: c,
			Proof:  p,
		},
	}, nil
}

// Consume - release the attestation, exactly once
func (g *Gate) Consume() (*Attestation, error) {
	g.Lock()
	defer g.Unlock()

	if g.consumed {
		return nil, fault.ErrValidityProofConsumed
	}
	g.consumed = true
	a := g.attestation
	g.attestation = nil
	return a, nil
}

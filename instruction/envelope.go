// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/hex"
	"math"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/util"
)

// Instruction - a call of the counter program
//
// Accounts holds the tree and queue identifiers that the packed
// indices in Data refer to
type Instruction struct {
	Program  *account.Account   `json:"program"`
	Signer   *account.Account   `json:"signer"`
	Accounts []*account.Account `json:"accounts"`
	Data     Packed             `json:"data"`
}

// Signed - an instruction with the signer's signature over its packed form
type Signed struct {
	Instruction
	Signature account.Signature `json:"signature"`
}

// Pack - the byte form that is signed
func (i *Instruction) Pack() ([]byte, error) {
	if nil == i.Program {
		return nil, fault.ErrInvalidProgram
	}
	if nil == i.Signer {
		return nil, fault.ErrMissingSigner
	}
	if len(i.Accounts) > math.MaxUint8 {
		return nil, fault.ErrInvalidCount
	}
	buffer := util.PackBytes(nil, i.Program.Bytes())
	buffer = util.PackBytes(buffer, i.Signer.Bytes())
	buffer = appendUint(buffer, uint64(len(i.Accounts)))
	for _, a := range i.Accounts {
		buffer = util.PackBytes(buffer, a.Bytes())
	}
	return util.PackBytes(buffer, i.Data), nil
}

// Sign - sign with the signer's private key
func (i *Instruction) Sign(privateKey *account.PrivateKey) (*Signed, error) {
	if nil == i.Signer || !i.Signer.Equal(privateKey.Account()) {
		return nil, fault.ErrMissingSigner
	}
	message, err := i.Pack()
	if nil != err {
		return nil, err
	}
	return &Signed{
		Instruction: *i,
		Signature:   privateKey.Sign(message),
	}, nil
}

// Verify - check the signature against the signer
func (s *Signed) Verify() error {
	message, err := s.Instruction.Pack()
	if nil != err {
		return err
	}
	return s.Signer.CheckSignature(message, s.Signature)
}

// Pack - signed envelope as bytes
func (s *Signed) Pack() ([]byte, error) {
	message, err := s.Instruction.Pack()
	if nil != err {
		return nil, err
	}
	buffer := util.PackBytes(nil, message)
	return util.PackBytes(buffer, s.Signature), nil
}

// String - hex of the packed envelope
func (s *Signed) String() string {
	buffer, err := s.Pack()
	if nil != err {
		return ""
	}
	return hex.EncodeToString(buffer)
}

// UnpackSigned - decode a signed envelope
func UnpackSigned(buffer []byte) (*Signed, error) {
	outer := &unpacker{buffer: buffer}
	message := outer.bytes()
	signature := outer.bytes()
	if nil != outer.err {
		return nil, outer.err
	}
	if outer.n != len(buffer) {
		return nil, fault.ErrInvalidLength
	}

	u := &unpacker{buffer: message}
	program, err := account.FromBytes(u.bytes())
	if nil != u.err {
		return nil, u.err
	}
	if nil != err {
		return nil, err
	}
	signer, err := account.FromBytes(u.bytes())
	if nil != u.err {
		return nil, u.err
	}
	if nil != err {
		return nil, err
	}

	count := u.uint(math.MaxUint8)
	accounts := make([]*account.Account, 0, count)
	for i := uint64(0); i < count; i += 1 {
		a, err := account.FromBytes(u.bytes())
		if nil != u.err {
			return nil, u.err
		}
		if nil != err {
			return nil, err
		}
		accounts = append(accounts, a)
	}

	data := u.bytes()
	if nil != u.err {
		return nil, u.err
	}
	if u.n != len(message) {
		return nil, fault.ErrInvalidLength
	}

	return &Signed{
		Instruction: Instruction{
			Program:  program,
			Signer:   signer,
			Accounts: accounts,
			Data:     data,
		},
		Signature: signature,
	}, nil
}

// UnpackSignedHex - decode a hex encoded signed envelope
func UnpackSignedHex(s string) (*Signed, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	return UnpackSigned(buffer)
}

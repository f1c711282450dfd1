// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type CommitError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ProofError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountNotFound              = NotFoundError("account not found")
	ErrAddressExists                = ExistsError("address already exists")
	ErrAlreadyInitialised           = InvalidError("already initialised")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrClaimMismatch                = ProofError("validity proof claims do not match request")
	ErrCommitFailed                 = CommitError("commit failed")
	ErrConnectionLimitReached       = ProcessError("connection limit reached")
	ErrDataBufferTooShort           = LengthError("data buffer too short")
	ErrDatabaseIsNotSet             = ProcessError("database is not set")
	ErrDuplicateInput               = InvalidError("duplicate input")
	ErrHandleConsumed               = ProcessError("record handle already consumed")
	ErrIncompatibleDatabaseVersion  = InvalidError("incompatible database version")
	ErrInputNotFound                = ProofError("input not found")
	ErrInputSpent                   = ProofError("input already spent")
	ErrInvalidChecksum              = InvalidError("invalid checksum")
	ErrInvalidConfiguration         = InvalidError("invalid configuration")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidDiscriminator         = InvalidError("invalid discriminator")
	ErrInvalidKeyLength             = LengthError("invalid key length")
	ErrInvalidKeyType               = InvalidError("invalid key type")
	ErrInvalidLeafIndex             = InvalidError("invalid leaf index")
	ErrInvalidLength                = LengthError("invalid length")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidPortNumber            = InvalidError("invalid port number")
	ErrInvalidProgram               = InvalidError("invalid program")
	ErrInvalidProofLength           = LengthError("invalid proof length")
	ErrInvalidRootHistory           = InvalidError("invalid root history")
	ErrInvalidRootIndex             = ProofError("invalid root index")
	ErrInvalidSignature             = AuthorisationError("invalid signature")
	ErrInvalidTreeIndex             = InvalidError("invalid tree index")
	ErrInvalidTreeType              = InvalidError("invalid tree type")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingOwner                 = InvalidError("missing owner")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrMissingSink                  = InvalidError("missing commit sink")
	ErrMissingSigner                = AuthorisationError("missing signer")
	ErrMissingValidityProof         = InvalidError("missing validity proof")
	ErrNotInitialised               = InvalidError("not initialised")
	ErrNotTestKey                   = InvalidError("not a test key")
	ErrOutputAddressNotAuthorised   = InvalidError("output address not authorised")
	ErrProgramNotOwner              = AuthorisationError("program does not own account")
	ErrProofRejected                = ProofError("validity proof rejected")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrSignerNotOwner               = AuthorisationError("signer does not own record")
	ErrTestKey                      = InvalidError("test key")
	ErrTransactionAlreadyStarted    = ProcessError("transaction already started")
	ErrTreeAlreadyRegistered        = ExistsError("tree already registered")
	ErrTreeNotRegistered            = InvalidError("tree not registered")
	ErrUnboundValidityProof         = InvalidError("validity proof without claims")
	ErrUnknownInstruction           = InvalidError("unknown instruction")
	ErrValidityProofConsumed        = ProcessError("validity proof already consumed")
	ErrWrongNetworkForPublicKey     = InvalidError("wrong network for public key")
)

// the error interface methods
func (e GenericError) Error() string       { return string(e) }
func (e AuthorisationError) Error() string { return string(e) }
func (e CommitError) Error() string        { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e ProofError) Error() string         { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrCommit(e error) bool        { _, ok := e.(CommitError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrProof(e error) bool         { _, ok := e.(ProofError); return ok }

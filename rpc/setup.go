// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io/ioutil"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/compressed-counter/account"
	"github.com/bitmark-inc/compressed-counter/counter"
	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/rpc/certificate"
	"github.com/bitmark-inc/compressed-counter/rpc/listeners"
	"github.com/bitmark-inc/compressed-counter/rpc/programs"
	"github.com/bitmark-inc/compressed-counter/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of open client connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC listeners
//
// the certificate and private key are file names, TLS is disabled when
// no certificate is configured
func Initialise(configuration *listeners.RPCConfiguration, version string, programID *account.Account, l server.Ledger, processor programs.Processor) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	configured := *configuration
	if "" != configuration.Certificate {
		certificatePEM, err := ioutil.ReadFile(configuration.Certificate)
		if nil != err {
			log.Errorf("read certificate: %q  error: %s", configuration.Certificate, err)
			return err
		}
		keyPEM, err := ioutil.ReadFile(configuration.PrivateKey)
		if nil != err {
			log.Errorf("read private key: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
		configured.Certificate = string(certificatePEM)
		configured.PrivateKey = string(keyPEM)
	}

	rpcListener, err := newListener(log, &configured, version, programID, l, processor)
	if nil != err {
		return err
	}

	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// configuration holds PEM data rather than file names here
func newListener(log *logger.L, configuration *listeners.RPCConfiguration, version string, programID *account.Account, l server.Ledger, processor programs.Processor) (listeners.Listener, error) {
	s := server.Create(log, version, &connectionCountRPC, programID, l, processor)

	if "" == configuration.Certificate {
		log.Warnf("%s: TLS disabled", tlsName)
		return listeners.NewRPC(configuration, log, &connectionCountRPC, s, nil)
	}

	tlsConfig, fingerprint, err := certificate.Get(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, fingerprint)

	return listeners.NewRPC(configuration, log, &connectionCountRPC, s, tlsConfig)
}

// Finalise - stop all background tasks
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

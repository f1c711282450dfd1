// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
)

// Certificate - fresh self-signed PEM certificate and key for localhost
func Certificate(t *testing.T) (string, string) {
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("counterd test", validUntil, false, []string{"localhost", "127.0.0.1"})
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	return string(cert), string(key)
}

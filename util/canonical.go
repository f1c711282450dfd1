// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/compressed-counter/fault"
)

// CanonicalIPandPort - make the IP:Port canonical and select the network
//
// examples:
//
//	IPv4:  127.0.0.1:1234  tcp4
//	IPv6:  [::1]:1234      tcp6
//	any:   *:1234          tcp  (listens as [::]:1234)
func CanonicalIPandPort(hostPort string) (string, string, error) {

	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", "", fault.ErrInvalidIPAddress
	}

	network := "tcp"
	var IP net.IP
	if "*" == host {
		IP = net.IPv6zero
	} else {
		IP = net.ParseIP(host)
		if nil == IP {
			return "", "", fault.ErrInvalidIPAddress
		}
		network = "tcp6"
		if nil != IP.To4() {
			network = "tcp4"
		}
	}

	numericPort, err := strconv.Atoi(port)
	if nil != err {
		return "", "", fault.ErrInvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return "", "", fault.ErrInvalidPortNumber
	}

	return network, net.JoinHostPort(IP.String(), strconv.Itoa(numericPort)), nil
}

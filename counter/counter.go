// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - atomic count of things in use, such as open
// connections
package counter

import (
	"sync/atomic"
)

// Counter - unsigned count that is safe for concurrent use
type Counter uint64

// Increment - add 1, returns the new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - subtract 1, returns the new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Acquire - increment only while the count is below a limit
//
// returns false and leaves the count unchanged when at the limit
func (c *Counter) Acquire(limit uint64) bool {
	for {
		current := atomic.LoadUint64((*uint64)(c))
		if current >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), current, current+1) {
			return true
		}
	}
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - true if nothing is counted
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}

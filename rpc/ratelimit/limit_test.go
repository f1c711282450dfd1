// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/compressed-counter/fault"
	"github.com/bitmark-inc/compressed-counter/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	assert.Nil(t, ratelimit.Limit(limiter), "unlimited")

	// burst of zero can never be satisfied
	blocked := rate.NewLimiter(1, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(blocked), "blocked")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 10)

	assert.Nil(t, ratelimit.LimitN(limiter, 3, 5), "in range")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 5), "zero")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 6, 5), "too many")

	small := rate.NewLimiter(1, 2)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(small, 3, 5), "above burst")
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "errors"

var (
	ErrNoLiquidity           = errors.New("pool has no liquidity")
	ErrInsufficientLiquidity = errors.New("requested output exceeds reserve")
	ErrInvariantViolation    = errors.New("swap denominator is not positive")
)

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pricing implements the constant-product reserve math. All
// functions are pure and operate on uint64 reserves with floor division;
// checked arithmetic keeps every intermediate value in the non-negative
// domain.
package pricing

import (
	smath "github.com/ava-labs/avalanchego/utils/math"
)

// AmountOut returns the output amount for a swap of [amountIn] against the
// given reserves:
//
//	amountOut = reserveOut * amountIn / (reserveIn + amountIn)
//
// A zero denominator (both reserveIn and amountIn zero) fails with
// [ErrNoLiquidity].
func AmountOut(reserveIn uint64, reserveOut uint64, amountIn uint64) (uint64, error) {
	numerator, err := smath.Mul(reserveOut, amountIn)
	if err != nil {
		return 0, err
	}
	denominator, err := smath.Add(reserveIn, amountIn)
	if err != nil {
		return 0, err
	}
	if denominator == 0 {
		return 0, ErrNoLiquidity
	}
	return numerator / denominator, nil
}

// AmountIn returns the input amount required to withdraw [amountOut] from
// the given reserves:
//
//	amountIn = reserveIn * amountOut / (reserveOut - amountOut)
//
// Requesting more than the reserve holds fails with
// [ErrInsufficientLiquidity]; requesting exactly the reserve would zero the
// denominator and fails with [ErrInvariantViolation].
func AmountIn(reserveIn uint64, reserveOut uint64, amountOut uint64) (uint64, error) {
	if amountOut > reserveOut {
		return 0, ErrInsufficientLiquidity
	}
	denominator := reserveOut - amountOut
	if denominator == 0 {
		return 0, ErrInvariantViolation
	}
	numerator, err := smath.Mul(reserveIn, amountOut)
	if err != nil {
		return 0, err
	}
	return numerator / denominator, nil
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrIdenticalTokens     = errors.New("token addresses are identical")
	ErrInsufficientBalance = errors.New("insufficient token balance")
)

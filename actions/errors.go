// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	// Token-related errors
	ErrOutputTokenNameEmpty        = errors.New("token name is empty")
	ErrOutputTokenNameTooLarge     = errors.New("token name is too large")
	ErrOutputTokenSymbolEmpty      = errors.New("token symbol is empty")
	ErrOutputTokenSymbolTooLarge   = errors.New("token symbol is too large")
	ErrOutputTokenMetadataEmpty    = errors.New("token metadata is empty")
	ErrOutputTokenMetadataTooLarge = errors.New("token metadata is too large")
	ErrOutputTokenAlreadyExists    = errors.New("token already exists")
	ErrOutputTokenDoesNotExist     = errors.New("token does not exist")
	ErrOutputTokenNotOwner         = errors.New("actor is not token owner")
	ErrOutputMintValueZero         = errors.New("mint value is zero")
	ErrOutputTransferValueZero     = errors.New("transfer value is zero")

	// Wire errors
	ErrUnmarshalEmptyAction = errors.New("cannot unmarshal empty bytes as action")

	// Exchange-related errors
	ErrOutputIdenticalTokens      = errors.New("token in and token out are identical")
	ErrOutputTokenInDoesNotExist  = errors.New("token in does not exist")
	ErrOutputTokenOutDoesNotExist = errors.New("token out does not exist")
	ErrOutputPoolAlreadyExists    = errors.New("pool already exists")
	ErrOutputPoolDoesNotExist     = errors.New("pool does not exist")
	ErrOutputSlippageExceeded     = errors.New("slippage limit exceeded")
)

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

const (
	CreateTokenComputeUnits   = 1
	MintTokenComputeUnits     = 1
	TransferTokenComputeUnits = 1
	CreatePoolComputeUnits    = 1
	SellComputeUnits          = 1
	BuyComputeUnits           = 1

	// Upper bound for any serialized action or result
	MaxActionSize = 2048
)

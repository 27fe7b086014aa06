// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"
)

// TypeIDs for actions
const (
	// Token-related
	CreateTokenID uint8 = iota
	MintTokenID
	TransferTokenID

	// Exchange-related
	CreatePoolID
	SellID
	BuyID
)

// TypeIDs for auth
const (
	// Required
	ED25519ID uint8 = iota
	SECP256R1ID
	BLSID

	// Relating to DEXVM address generation
	TOKENID
	POOLID
	LPTOKENID
)

const (
	Name = "DEXVM"
	HRP  = "dex"
)

var ID ids.ID

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name))
	vmID, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ID = vmID
}

var Version = &version.Semantic{
	Major: 0,
	Minor: 0,
	Patch: 1,
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/hypersdk/codec"

	"github.com/kaupangdx/dex-runtime/storage"
)

const (
	TokenOneName     = "LuigiCoin"
	TokenOneSymbol   = "LC"
	TokenOneMetadata = "A coin that represents Luigi"

	TokenTwoName     = "Martin"
	TokenTwoSymbol   = "MC"
	TokenTwoMetadata = "A coin that represents Martin"

	GhostTokenName     = "Ghost"
	GhostTokenSymbol   = "GST"
	GhostTokenMetadata = "A coin that was never created"

	InitialTokenMint = 5_000

	SeedAmountOne = 1_000
	SeedAmountTwo = 2_000
)

var (
	tokenOneAddress   = storage.TokenAddress([]byte(TokenOneName), []byte(TokenOneSymbol), []byte(TokenOneMetadata))
	tokenTwoAddress   = storage.TokenAddress([]byte(TokenTwoName), []byte(TokenTwoSymbol), []byte(TokenTwoMetadata))
	ghostTokenAddress = storage.TokenAddress([]byte(GhostTokenName), []byte(GhostTokenSymbol), []byte(GhostTokenMetadata))

	poolAddress    = mustPoolAddress(tokenOneAddress, tokenTwoAddress)
	lpTokenAddress = mustLPTokenAddress(tokenOneAddress, tokenTwoAddress)
)

func mustPoolAddress(tokenA codec.Address, tokenB codec.Address) codec.Address {
	addr, err := storage.PoolAddress(tokenA, tokenB)
	if err != nil {
		panic(err)
	}
	return addr
}

func mustLPTokenAddress(tokenA codec.Address, tokenB codec.Address) codec.Address {
	addr, err := storage.LPTokenAddress(tokenA, tokenB)
	if err != nil {
		panic(err)
	}
	return addr
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state/metadata"

	"github.com/kaupangdx/dex-runtime/consts"
)

// Key prefixes. The metadata manager reserves everything below
// [metadata.DefaultMinimumPrefix].
const (
	tokenInfoPrefix byte = metadata.DefaultMinimumPrefix + iota
	tokenAccountBalancePrefix
	poolPrefix
)

// Chunks
const (
	TokenInfoChunks           uint16 = 2
	TokenAccountBalanceChunks uint16 = 1
	PoolChunks                uint16 = 1
)

// Related to action invariants
const (
	MaxTokenNameSize     = 64
	MaxTokenSymbolSize   = 8
	MaxTokenMetadataSize = 256
)

// All LP tokens carry the same descriptive data; identity comes from the
// token pair, not from this metadata.
const (
	LPTokenName     = "DEX-Pair"
	LPTokenSymbol   = "DEXP"
	LPTokenMetadata = "A liquidity pool share"
)

// Data for the native DEXVM coin
const (
	Symbol   = "DEX"
	Metadata = "A constant-product exchange runtime"
)

var CoinAddress codec.Address

func init() {
	CoinAddress = TokenAddress([]byte(consts.Name), []byte(Symbol), []byte(Metadata))
}

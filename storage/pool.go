// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/utils"

	"github.com/kaupangdx/dex-runtime/consts"

	hconsts "github.com/ava-labs/hypersdk/consts"
)

type ComparisonValue int

const (
	LessThan ComparisonValue = iota - 1
	Equal
	GreaterThan
)

func CompareAddress(a codec.Address, b codec.Address) ComparisonValue {
	for i := range a {
		if a[i] < b[i] {
			return LessThan
		} else if a[i] > b[i] {
			return GreaterThan
		}
	}
	return Equal
}

// CanonicalTokenPair orders two token addresses with the larger address
// first, so that both argument orders yield the same pair. Identical
// addresses are rejected.
func CanonicalTokenPair(tokenA codec.Address, tokenB codec.Address) (codec.Address, codec.Address, error) {
	switch CompareAddress(tokenA, tokenB) {
	case GreaterThan:
		return tokenA, tokenB, nil
	case LessThan:
		return tokenB, tokenA, nil
	default:
		return codec.EmptyAddress, codec.EmptyAddress, ErrIdenticalTokens
	}
}

func packTokenPair(first codec.Address, second codec.Address) []byte {
	v := make([]byte, codec.AddressLen+codec.AddressLen)
	copy(v, first[:])
	copy(v[codec.AddressLen:], second[:])
	return v
}

// PoolAddress derives the pool account address from the canonical token
// pair. Both argument orders yield the same address.
func PoolAddress(tokenA codec.Address, tokenB codec.Address) (codec.Address, error) {
	first, second, err := CanonicalTokenPair(tokenA, tokenB)
	if err != nil {
		return codec.EmptyAddress, err
	}
	id := utils.ToID(packTokenPair(first, second))
	return codec.CreateAddress(consts.POOLID, id), nil
}

// LPTokenAddress derives the liquidity token address from the same
// canonical pair encoding as PoolAddress; the address type byte is the
// domain separator between the two.
func LPTokenAddress(tokenA codec.Address, tokenB codec.Address) (codec.Address, error) {
	first, second, err := CanonicalTokenPair(tokenA, tokenB)
	if err != nil {
		return codec.EmptyAddress, err
	}
	id := utils.ToID(packTokenPair(first, second))
	return codec.CreateAddress(consts.LPTOKENID, id), nil
}

func PoolKey(poolAddress codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = poolPrefix
	copy(k[1:1+codec.AddressLen], poolAddress[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], PoolChunks)
	return k
}

// SetPool writes the pool existence marker. The record holds the canonical
// token pair and the liquidity token address; reserves are never stored
// here, they are the pool account's token balances.
func SetPool(
	ctx context.Context,
	mu state.Mutable,
	poolAddress codec.Address,
	tokenX codec.Address,
	tokenY codec.Address,
	lpToken codec.Address,
) error {
	k := PoolKey(poolAddress)
	v := make([]byte, codec.AddressLen+codec.AddressLen+codec.AddressLen)
	copy(v, tokenX[:])
	copy(v[codec.AddressLen:], tokenY[:])
	copy(v[codec.AddressLen+codec.AddressLen:], lpToken[:])
	return mu.Insert(ctx, k, v)
}

func GetPoolNoController(
	ctx context.Context,
	mu state.Immutable,
	poolAddress codec.Address,
) (codec.Address, codec.Address, codec.Address, error) {
	k := PoolKey(poolAddress)
	v, err := mu.GetValue(ctx, k)
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, codec.EmptyAddress, err
	}
	return innerGetPool(v)
}

func GetPoolFromState(
	ctx context.Context,
	f ReadState,
	poolAddress codec.Address,
) (codec.Address, codec.Address, codec.Address, error) {
	k := PoolKey(poolAddress)
	values, errs := f(ctx, [][]byte{k})
	if errs[0] != nil {
		return codec.EmptyAddress, codec.EmptyAddress, codec.EmptyAddress, errs[0]
	}
	return innerGetPool(values[0])
}

func innerGetPool(
	v []byte,
) (codec.Address, codec.Address, codec.Address, error) {
	tokenX := codec.Address(v[:codec.AddressLen])
	tokenY := codec.Address(v[codec.AddressLen : codec.AddressLen+codec.AddressLen])
	lpToken := codec.Address(v[codec.AddressLen+codec.AddressLen:])
	return tokenX, tokenY, lpToken, nil
}

func PoolExists(
	ctx context.Context,
	mu state.Immutable,
	poolAddress codec.Address,
) bool {
	v, err := mu.GetValue(ctx, PoolKey(poolAddress))
	return v != nil && err == nil
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/kaupangdx/dex-runtime/consts"
	"github.com/kaupangdx/dex-runtime/storage"
)

var _ chain.Action = (*CreatePool)(nil)

// CreatePool opens the pool for an unordered token pair and seeds both
// reserves from the actor's balances. The pool address and the LP token
// address are derived from the canonical pair, so both argument orders
// target the same pool.
type CreatePool struct {
	TokenIn       codec.Address `serialize:"true" json:"tokenIn"`
	TokenOut      codec.Address `serialize:"true" json:"tokenOut"`
	AmountInSeed  uint64        `serialize:"true" json:"amountInSeed"`
	AmountOutSeed uint64        `serialize:"true" json:"amountOutSeed"`
}

func (*CreatePool) GetTypeID() uint8 {
	return consts.CreatePoolID
}

func (c *CreatePool) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	poolAddress, _ := storage.PoolAddress(c.TokenIn, c.TokenOut)
	lpTokenAddress, _ := storage.LPTokenAddress(c.TokenIn, c.TokenOut)
	return state.Keys{
		string(storage.TokenInfoKey(c.TokenIn)):                         state.Read,
		string(storage.TokenInfoKey(c.TokenOut)):                        state.Read,
		string(storage.PoolKey(poolAddress)):                            state.All,
		string(storage.TokenInfoKey(lpTokenAddress)):                    state.All,
		string(storage.TokenAccountBalanceKey(c.TokenIn, actor)):        state.All,
		string(storage.TokenAccountBalanceKey(c.TokenOut, actor)):       state.All,
		string(storage.TokenAccountBalanceKey(c.TokenIn, poolAddress)):  state.All,
		string(storage.TokenAccountBalanceKey(c.TokenOut, poolAddress)): state.All,
		string(storage.TokenAccountBalanceKey(lpTokenAddress, actor)):   state.All,
	}
}

func (c *CreatePool) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, 128),
		MaxSize: MaxActionSize,
	}
	p.PackByte(consts.CreatePoolID)
	if err := codec.LinearCodec.MarshalInto(c, p); err != nil {
		panic(err)
	}
	return p.Bytes
}

func UnmarshalCreatePool(bytes []byte) (chain.Action, error) {
	c := &CreatePool{}
	if len(bytes) == 0 {
		return nil, ErrUnmarshalEmptyAction
	}
	if bytes[0] != consts.CreatePoolID {
		return nil, fmt.Errorf("unexpected create pool typeID: %d != %d", bytes[0], consts.CreatePoolID)
	}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: bytes[1:]},
		c,
	); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CreatePool) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([]byte, error) {
	if storage.CompareAddress(c.TokenIn, c.TokenOut) == storage.Equal {
		return nil, ErrOutputIdenticalTokens
	}
	if !storage.TokenExists(ctx, mu, c.TokenIn) {
		return nil, ErrOutputTokenInDoesNotExist
	}
	if !storage.TokenExists(ctx, mu, c.TokenOut) {
		return nil, ErrOutputTokenOutDoesNotExist
	}

	poolAddress, err := storage.PoolAddress(c.TokenIn, c.TokenOut)
	if err != nil {
		return nil, ErrOutputIdenticalTokens
	}
	if storage.PoolExists(ctx, mu, poolAddress) {
		return nil, ErrOutputPoolAlreadyExists
	}
	lpTokenAddress, err := storage.LPTokenAddress(c.TokenIn, c.TokenOut)
	if err != nil {
		return nil, ErrOutputIdenticalTokens
	}

	// Register the LP token owned by the pool account
	if err := storage.SetTokenInfo(ctx, mu, lpTokenAddress, []byte(storage.LPTokenName), []byte(storage.LPTokenSymbol), []byte(storage.LPTokenMetadata), 0, poolAddress); err != nil {
		return nil, err
	}

	tokenX, tokenY, err := storage.CanonicalTokenPair(c.TokenIn, c.TokenOut)
	if err != nil {
		return nil, ErrOutputIdenticalTokens
	}
	if err := storage.SetPool(ctx, mu, poolAddress, tokenX, tokenY, lpTokenAddress); err != nil {
		return nil, err
	}

	// Seed the reserves
	if err := storage.TransferToken(ctx, mu, c.TokenIn, actor, poolAddress, c.AmountInSeed); err != nil {
		return nil, err
	}
	if err := storage.TransferToken(ctx, mu, c.TokenOut, actor, poolAddress, c.AmountOutSeed); err != nil {
		return nil, err
	}

	// LP tokens minted equal the token-in seed amount
	if err := storage.MintToken(ctx, mu, lpTokenAddress, actor, c.AmountInSeed); err != nil {
		return nil, err
	}

	result := &CreatePoolResult{
		PoolAddress:    poolAddress,
		LPTokenAddress: lpTokenAddress,
	}
	return result.Bytes(), nil
}

func (*CreatePool) ComputeUnits(chain.Rules) uint64 {
	return CreatePoolComputeUnits
}

func (*CreatePool) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*CreatePoolResult)(nil)

type CreatePoolResult struct {
	PoolAddress    codec.Address `serialize:"true" json:"poolAddress"`
	LPTokenAddress codec.Address `serialize:"true" json:"lpTokenAddress"`
}

func (*CreatePoolResult) GetTypeID() uint8 {
	return consts.CreatePoolID
}

func (c *CreatePoolResult) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, 128),
		MaxSize: MaxActionSize,
	}
	p.PackByte(consts.CreatePoolID)
	if err := codec.LinearCodec.MarshalInto(c, p); err != nil {
		panic(err)
	}
	return p.Bytes
}

func UnmarshalCreatePoolResult(b []byte) (codec.Typed, error) {
	c := &CreatePoolResult{}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: b[1:]},
		c,
	); err != nil {
		return nil, err
	}
	return c, nil
}

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
	"github.com/kaupangdx/dex-runtime/pricing"
	"github.com/kaupangdx/dex-runtime/storage"
)

var _ chain.Action = (*Buy)(nil)

// Buy swaps the smallest input amount that yields an exact output amount.
// The required input is quoted from the current reserves and bounded by
// MaxAmountIn.
type Buy struct {
	TokenIn     codec.Address `serialize:"true" json:"tokenIn"`
	TokenOut    codec.Address `serialize:"true" json:"tokenOut"`
	AmountOut   uint64        `serialize:"true" json:"amountOut"`
	MaxAmountIn uint64        `serialize:"true" json:"maxAmountIn"`
}

func (*Buy) GetTypeID() uint8 {
	return consts.BuyID
}

func (b *Buy) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	poolAddress, _ := storage.PoolAddress(b.TokenIn, b.TokenOut)
	return state.Keys{
		string(storage.PoolKey(poolAddress)):                            state.Read,
		string(storage.TokenAccountBalanceKey(b.TokenIn, actor)):        state.All,
		string(storage.TokenAccountBalanceKey(b.TokenOut, actor)):       state.All,
		string(storage.TokenAccountBalanceKey(b.TokenIn, poolAddress)):  state.All,
		string(storage.TokenAccountBalanceKey(b.TokenOut, poolAddress)): state.All,
	}
}

func (b *Buy) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, 128),
		MaxSize: MaxActionSize,
	}
	p.PackByte(consts.BuyID)
	if err := codec.LinearCodec.MarshalInto(b, p); err != nil {
		panic(err)
	}
	return p.Bytes
}

func UnmarshalBuy(bytes []byte) (chain.Action, error) {
	b := &Buy{}
	if len(bytes) == 0 {
		return nil, ErrUnmarshalEmptyAction
	}
	if bytes[0] != consts.BuyID {
		return nil, fmt.Errorf("unexpected buy typeID: %d != %d", bytes[0], consts.BuyID)
	}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: bytes[1:]},
		b,
	); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Buy) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([]byte, error) {
	poolAddress, err := storage.PoolAddress(b.TokenIn, b.TokenOut)
	if err != nil {
		return nil, ErrOutputIdenticalTokens
	}
	if !storage.PoolExists(ctx, mu, poolAddress) {
		return nil, ErrOutputPoolDoesNotExist
	}

	reserveIn, err := storage.GetTokenAccountBalanceNoController(ctx, mu, b.TokenIn, poolAddress)
	if err != nil {
		return nil, err
	}
	reserveOut, err := storage.GetTokenAccountBalanceNoController(ctx, mu, b.TokenOut, poolAddress)
	if err != nil {
		return nil, err
	}

	amountIn, err := pricing.AmountIn(reserveIn, reserveOut, b.AmountOut)
	if err != nil {
		return nil, err
	}
	if amountIn > b.MaxAmountIn {
		return nil, ErrOutputSlippageExceeded
	}

	if err := storage.TransferToken(ctx, mu, b.TokenOut, poolAddress, actor, b.AmountOut); err != nil {
		return nil, err
	}
	if err := storage.TransferToken(ctx, mu, b.TokenIn, actor, poolAddress, amountIn); err != nil {
		return nil, err
	}

	result := &BuyResult{AmountIn: amountIn}
	return result.Bytes(), nil
}

func (*Buy) ComputeUnits(chain.Rules) uint64 {
	return BuyComputeUnits
}

func (*Buy) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*BuyResult)(nil)

type BuyResult struct {
	AmountIn uint64 `serialize:"true" json:"amountIn"`
}

func (*BuyResult) GetTypeID() uint8 {
	return consts.BuyID
}

func (b *BuyResult) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, 16),
		MaxSize: MaxActionSize,
	}
	p.PackByte(consts.BuyID)
	if err := codec.LinearCodec.MarshalInto(b, p); err != nil {
		panic(err)
	}
	return p.Bytes
}

func UnmarshalBuyResult(b []byte) (codec.Typed, error) {
	r := &BuyResult{}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: b[1:]},
		r,
	); err != nil {
		return nil, err
	}
	return r, nil
}

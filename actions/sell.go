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

var _ chain.Action = (*Sell)(nil)

// Sell swaps an exact input amount for as much output as the reserves
// allow. Both reserves are read once at call start; the transfers settle
// against that single snapshot.
type Sell struct {
	TokenIn      codec.Address `serialize:"true" json:"tokenIn"`
	TokenOut     codec.Address `serialize:"true" json:"tokenOut"`
	AmountIn     uint64        `serialize:"true" json:"amountIn"`
	MinAmountOut uint64        `serialize:"true" json:"minAmountOut"`
}

func (*Sell) GetTypeID() uint8 {
	return consts.SellID
}

func (s *Sell) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	poolAddress, _ := storage.PoolAddress(s.TokenIn, s.TokenOut)
	return state.Keys{
		string(storage.PoolKey(poolAddress)):                            state.Read,
		string(storage.TokenAccountBalanceKey(s.TokenIn, actor)):        state.All,
		string(storage.TokenAccountBalanceKey(s.TokenOut, actor)):       state.All,
		string(storage.TokenAccountBalanceKey(s.TokenIn, poolAddress)):  state.All,
		string(storage.TokenAccountBalanceKey(s.TokenOut, poolAddress)): state.All,
	}
}

func (s *Sell) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, 128),
		MaxSize: MaxActionSize,
	}
	p.PackByte(consts.SellID)
	if err := codec.LinearCodec.MarshalInto(s, p); err != nil {
		panic(err)
	}
	return p.Bytes
}

func UnmarshalSell(bytes []byte) (chain.Action, error) {
	s := &Sell{}
	if len(bytes) == 0 {
		return nil, ErrUnmarshalEmptyAction
	}
	if bytes[0] != consts.SellID {
		return nil, fmt.Errorf("unexpected sell typeID: %d != %d", bytes[0], consts.SellID)
	}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: bytes[1:]},
		s,
	); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sell) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([]byte, error) {
	poolAddress, err := storage.PoolAddress(s.TokenIn, s.TokenOut)
	if err != nil {
		return nil, ErrOutputIdenticalTokens
	}
	if !storage.PoolExists(ctx, mu, poolAddress) {
		return nil, ErrOutputPoolDoesNotExist
	}

	reserveIn, err := storage.GetTokenAccountBalanceNoController(ctx, mu, s.TokenIn, poolAddress)
	if err != nil {
		return nil, err
	}
	reserveOut, err := storage.GetTokenAccountBalanceNoController(ctx, mu, s.TokenOut, poolAddress)
	if err != nil {
		return nil, err
	}

	amountOut, err := pricing.AmountOut(reserveIn, reserveOut, s.AmountIn)
	if err != nil {
		return nil, err
	}
	if amountOut < s.MinAmountOut {
		return nil, ErrOutputSlippageExceeded
	}

	if err := storage.TransferToken(ctx, mu, s.TokenIn, actor, poolAddress, s.AmountIn); err != nil {
		return nil, err
	}
	if err := storage.TransferToken(ctx, mu, s.TokenOut, poolAddress, actor, amountOut); err != nil {
		return nil, err
	}

	result := &SellResult{AmountOut: amountOut}
	return result.Bytes(), nil
}

func (*Sell) ComputeUnits(chain.Rules) uint64 {
	return SellComputeUnits
}

func (*Sell) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*SellResult)(nil)

type SellResult struct {
	AmountOut uint64 `serialize:"true" json:"amountOut"`
}

func (*SellResult) GetTypeID() uint8 {
	return consts.SellID
}

func (s *SellResult) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, 16),
		MaxSize: MaxActionSize,
	}
	p.PackByte(consts.SellID)
	if err := codec.LinearCodec.MarshalInto(s, p); err != nil {
		panic(err)
	}
	return p.Bytes
}

func UnmarshalSellResult(b []byte) (codec.Typed, error) {
	s := &SellResult{}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: b[1:]},
		s,
	); err != nil {
		return nil, err
	}
	return s, nil
}

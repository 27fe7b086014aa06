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

var _ chain.Action = (*CreateToken)(nil)

type CreateToken struct {
	Name     []byte `serialize:"true" json:"name"`
	Symbol   []byte `serialize:"true" json:"symbol"`
	Metadata []byte `serialize:"true" json:"metadata"`
}

func (*CreateToken) GetTypeID() uint8 {
	return consts.CreateTokenID
}

func (c *CreateToken) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.TokenInfoKey(storage.TokenAddress(c.Name, c.Symbol, c.Metadata))): state.All,
	}
}

func (c *CreateToken) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, 256),
		MaxSize: MaxActionSize,
	}
	p.PackByte(consts.CreateTokenID)
	if err := codec.LinearCodec.MarshalInto(c, p); err != nil {
		panic(err)
	}
	return p.Bytes
}

func UnmarshalCreateToken(bytes []byte) (chain.Action, error) {
	c := &CreateToken{}
	if len(bytes) == 0 {
		return nil, ErrUnmarshalEmptyAction
	}
	if bytes[0] != consts.CreateTokenID {
		return nil, fmt.Errorf("unexpected create token typeID: %d != %d", bytes[0], consts.CreateTokenID)
	}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: bytes[1:]},
		c,
	); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CreateToken) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([]byte, error) {
	if len(c.Name) == 0 {
		return nil, ErrOutputTokenNameEmpty
	}
	if len(c.Symbol) == 0 {
		return nil, ErrOutputTokenSymbolEmpty
	}
	if len(c.Metadata) == 0 {
		return nil, ErrOutputTokenMetadataEmpty
	}
	if len(c.Name) > storage.MaxTokenNameSize {
		return nil, ErrOutputTokenNameTooLarge
	}
	if len(c.Symbol) > storage.MaxTokenSymbolSize {
		return nil, ErrOutputTokenSymbolTooLarge
	}
	if len(c.Metadata) > storage.MaxTokenMetadataSize {
		return nil, ErrOutputTokenMetadataTooLarge
	}

	tokenAddress := storage.TokenAddress(c.Name, c.Symbol, c.Metadata)
	if storage.TokenExists(ctx, mu, tokenAddress) {
		return nil, ErrOutputTokenAlreadyExists
	}

	if err := storage.SetTokenInfo(ctx, mu, tokenAddress, c.Name, c.Symbol, c.Metadata, 0, actor); err != nil {
		return nil, err
	}

	result := &CreateTokenResult{
		TokenAddress: tokenAddress,
	}
	return result.Bytes(), nil
}

func (*CreateToken) ComputeUnits(chain.Rules) uint64 {
	return CreateTokenComputeUnits
}

func (*CreateToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*CreateTokenResult)(nil)

type CreateTokenResult struct {
	TokenAddress codec.Address `serialize:"true" json:"tokenAddress"`
}

func (*CreateTokenResult) GetTypeID() uint8 {
	return consts.CreateTokenID
}

func (c *CreateTokenResult) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, 64),
		MaxSize: MaxActionSize,
	}
	p.PackByte(consts.CreateTokenID)
	if err := codec.LinearCodec.MarshalInto(c, p); err != nil {
		panic(err)
	}
	return p.Bytes
}

func UnmarshalCreateTokenResult(b []byte) (codec.Typed, error) {
	c := &CreateTokenResult{}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: b[1:]},
		c,
	); err != nil {
		return nil, err
	}
	return c, nil
}

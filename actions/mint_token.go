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

var _ chain.Action = (*MintToken)(nil)

type MintToken struct {
	To    codec.Address `serialize:"true" json:"to"`
	Token codec.Address `serialize:"true" json:"token"`
	Value uint64        `serialize:"true" json:"value"`
}

func (*MintToken) GetTypeID() uint8 {
	return consts.MintTokenID
}

func (m *MintToken) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.TokenInfoKey(m.Token)):                 state.All,
		string(storage.TokenAccountBalanceKey(m.Token, m.To)): state.All,
	}
}

func (m *MintToken) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, 128),
		MaxSize: MaxActionSize,
	}
	p.PackByte(consts.MintTokenID)
	if err := codec.LinearCodec.MarshalInto(m, p); err != nil {
		panic(err)
	}
	return p.Bytes
}

func UnmarshalMintToken(bytes []byte) (chain.Action, error) {
	m := &MintToken{}
	if len(bytes) == 0 {
		return nil, ErrUnmarshalEmptyAction
	}
	if bytes[0] != consts.MintTokenID {
		return nil, fmt.Errorf("unexpected mint token typeID: %d != %d", bytes[0], consts.MintTokenID)
	}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: bytes[1:]},
		m,
	); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MintToken) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([]byte, error) {
	if m.Value == 0 {
		return nil, ErrOutputMintValueZero
	}
	_, _, _, _, owner, err := storage.GetTokenInfoNoController(ctx, mu, m.Token)
	if err != nil {
		return nil, ErrOutputTokenDoesNotExist
	}
	// Only the creator may expand supply
	if owner != actor {
		return nil, ErrOutputTokenNotOwner
	}

	if err := storage.MintToken(ctx, mu, m.Token, m.To, m.Value); err != nil {
		return nil, err
	}

	balance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, m.Token, m.To)
	if err != nil {
		return nil, err
	}
	result := &MintTokenResult{
		Balance: balance,
	}
	return result.Bytes(), nil
}

func (*MintToken) ComputeUnits(chain.Rules) uint64 {
	return MintTokenComputeUnits
}

func (*MintToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*MintTokenResult)(nil)

type MintTokenResult struct {
	Balance uint64 `serialize:"true" json:"balance"`
}

func (*MintTokenResult) GetTypeID() uint8 {
	return consts.MintTokenID
}

func (m *MintTokenResult) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, 16),
		MaxSize: MaxActionSize,
	}
	p.PackByte(consts.MintTokenID)
	if err := codec.LinearCodec.MarshalInto(m, p); err != nil {
		panic(err)
	}
	return p.Bytes
}

func UnmarshalMintTokenResult(b []byte) (codec.Typed, error) {
	m := &MintTokenResult{}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: b[1:]},
		m,
	); err != nil {
		return nil, err
	}
	return m, nil
}

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

var _ chain.Action = (*TransferToken)(nil)

type TransferToken struct {
	To    codec.Address `serialize:"true" json:"to"`
	Token codec.Address `serialize:"true" json:"token"`
	Value uint64        `serialize:"true" json:"value"`
}

func (*TransferToken) GetTypeID() uint8 {
	return consts.TransferTokenID
}

func (t *TransferToken) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.TokenInfoKey(t.Token)):                  state.All,
		string(storage.TokenAccountBalanceKey(t.Token, actor)): state.All,
		string(storage.TokenAccountBalanceKey(t.Token, t.To)):  state.All,
	}
}

func (t *TransferToken) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, 128),
		MaxSize: MaxActionSize,
	}
	p.PackByte(consts.TransferTokenID)
	if err := codec.LinearCodec.MarshalInto(t, p); err != nil {
		panic(err)
	}
	return p.Bytes
}

func UnmarshalTransferToken(bytes []byte) (chain.Action, error) {
	t := &TransferToken{}
	if len(bytes) == 0 {
		return nil, ErrUnmarshalEmptyAction
	}
	if bytes[0] != consts.TransferTokenID {
		return nil, fmt.Errorf("unexpected transfer token typeID: %d != %d", bytes[0], consts.TransferTokenID)
	}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: bytes[1:]},
		t,
	); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *TransferToken) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([]byte, error) {
	if t.Value == 0 {
		return nil, ErrOutputTransferValueZero
	}
	if !storage.TokenExists(ctx, mu, t.Token) {
		return nil, ErrOutputTokenDoesNotExist
	}

	if err := storage.TransferToken(ctx, mu, t.Token, actor, t.To, t.Value); err != nil {
		return nil, err
	}

	senderBalance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, t.Token, actor)
	if err != nil {
		return nil, err
	}
	receiverBalance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, t.Token, t.To)
	if err != nil {
		return nil, err
	}
	result := &TransferTokenResult{
		SenderBalance:   senderBalance,
		ReceiverBalance: receiverBalance,
	}
	return result.Bytes(), nil
}

func (*TransferToken) ComputeUnits(chain.Rules) uint64 {
	return TransferTokenComputeUnits
}

func (*TransferToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*TransferTokenResult)(nil)

type TransferTokenResult struct {
	SenderBalance   uint64 `serialize:"true" json:"senderBalance"`
	ReceiverBalance uint64 `serialize:"true" json:"receiverBalance"`
}

func (*TransferTokenResult) GetTypeID() uint8 {
	return consts.TransferTokenID
}

func (t *TransferTokenResult) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, 32),
		MaxSize: MaxActionSize,
	}
	p.PackByte(consts.TransferTokenID)
	if err := codec.LinearCodec.MarshalInto(t, p); err != nil {
		panic(err)
	}
	return p.Bytes
}

func UnmarshalTransferTokenResult(b []byte) (codec.Typed, error) {
	t := &TransferTokenResult{}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: b[1:]},
		t,
	); err != nil {
		return nil, err
	}
	return t, nil
}
